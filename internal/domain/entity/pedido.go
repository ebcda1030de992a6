package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoStatus estado de un pedido.
type PedidoStatus string

const (
	PedidoPending   PedidoStatus = "pending"
	PedidoDelivered PedidoStatus = "delivered"
	PedidoCancelled PedidoStatus = "cancelled"
)

// Valid indica si el estado pertenece a la enumeración.
func (s PedidoStatus) Valid() bool {
	switch s {
	case PedidoPending, PedidoDelivered, PedidoCancelled:
		return true
	}
	return false
}

// LineaPedido línea de un pedido: referencia al producto, cantidad y precio unitario
// capturado al crear el pedido. No tiene identidad propia fuera del pedido.
type LineaPedido struct {
	ProductID string          `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Pedido agregado de compra. Las líneas se guardan embebidas junto al total.
type Pedido struct {
	ID        string
	UserID    string
	Products  []LineaPedido
	Total     decimal.Decimal
	Status    PedidoStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
