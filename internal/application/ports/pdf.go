package ports

import (
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

// AlbaranData datos ya resueltos que necesita el generador del albarán.
// Products[i] corresponde a Pedido.Products[i]; nil si el producto se borró.
type AlbaranData struct {
	Pedido   *entity.Pedido
	Owner    *entity.User
	Products []*entity.Product
}

// AlbaranGenerator genera la representación PDF de un pedido.
type AlbaranGenerator interface {
	Generate(data AlbaranData) ([]byte, error)
}
