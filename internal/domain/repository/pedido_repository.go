package repository

import (
	"context"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

// PedidoConProductos pedido del historial con cada línea expandida a su producto.
// Products[i] corresponde a Pedido.Products[i]; es nil si el producto se borró después.
type PedidoConProductos struct {
	Pedido   *entity.Pedido
	Products []*entity.Product
}

// PedidoRepository persiste pedidos. No hay actualización ni borrado.
type PedidoRepository interface {
	// Save asigna timestamps, estado y total y guarda el pedido en una única escritura.
	Save(ctx context.Context, p *entity.Pedido) error
	GetByID(ctx context.Context, id string) (*entity.Pedido, error)
	// ListByOwner devuelve los pedidos del usuario, más recientes primero.
	ListByOwner(ctx context.Context, userID string) ([]PedidoConProductos, error)
}
