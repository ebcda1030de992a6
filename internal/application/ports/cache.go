package ports

import "github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"

// CatalogCache caché del listado completo de productos. Solo se usa para lecturas
// del catálogo, nunca para fijar precios de un pedido.
type CatalogCache interface {
	GetList() ([]*entity.Product, bool)
	SetList(list []*entity.Product)
	Invalidate()
}
