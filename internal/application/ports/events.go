package ports

import (
	"context"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

// EventPublisher publica hechos de negocio hacia otros sistemas (cocina, proveedores).
type EventPublisher interface {
	PublishPedidoCreated(ctx context.Context, p *entity.Pedido) error
}

// NopPublisher no publica nada.
type NopPublisher struct{}

func (NopPublisher) PublishPedidoCreated(context.Context, *entity.Pedido) error { return nil }
