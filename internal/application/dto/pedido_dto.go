package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoItemRequest línea solicitada por el cliente. Cualquier precio enviado se ignora.
type PedidoItemRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// CreatePedidoRequest entrada de POST /pedidos/pedido.
type CreatePedidoRequest struct {
	Products []PedidoItemRequest `json:"products"`
}

// PedidoLineResponse línea con el producto expandido. Product es nil si el producto ya no existe.
type PedidoLineResponse struct {
	ProductID string           `json:"product_id"`
	Product   *ProductResponse `json:"product"`
	Quantity  int              `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
}

// PedidoResponse salida de un pedido con sus líneas expandidas.
type PedidoResponse struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user"`
	Products  []PedidoLineResponse `json:"products"`
	Total     decimal.Decimal      `json:"total"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// CreatePedidoResponse respuesta 201 de creación.
type CreatePedidoResponse struct {
	Detail string         `json:"detalle"`
	Pedido PedidoResponse `json:"pedido"`
}
