package pedido_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/pedido"
)

func linea(price string, qty int) entity.LineaPedido {
	return entity.LineaPedido{ProductID: "p", Quantity: qty, Price: decimal.RequireFromString(price)}
}

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []entity.LineaPedido
		want  string
	}{
		{"sin líneas", nil, "0"},
		{"una línea", []entity.LineaPedido{linea("1.50", 4)}, "6"},
		{"mitad redondea hacia arriba", []entity.LineaPedido{linea("2.005", 3), linea("1.00", 1)}, "7.02"},
		{"redondeo único sobre la suma", []entity.LineaPedido{linea("0.005", 1), linea("0.005", 1)}, "0.01"},
		{"sin error de coma flotante", []entity.LineaPedido{linea("0.1", 1), linea("0.2", 1)}, "0.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pedido.CalculateTotal(tt.items)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	ok := &entity.Pedido{UserID: "u1", Products: []entity.LineaPedido{linea("1", 1)}}
	require.NoError(t, pedido.Validate(ok))

	err := pedido.Validate(&entity.Pedido{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, pedido.MsgSinProductos, err.Error())

	err = pedido.Validate(&entity.Pedido{UserID: "u1", Products: []entity.LineaPedido{linea("1", 0)}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = pedido.Validate(&entity.Pedido{UserID: "u1", Products: []entity.LineaPedido{linea("-1", 1)}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrepareForSave(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &entity.Pedido{UserID: "u1", Products: []entity.LineaPedido{linea("2.005", 3), linea("1.00", 1)}}

	pedido.PrepareForSave(p, now)

	assert.Equal(t, entity.PedidoPending, p.Status)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
	assert.Equal(t, "7.02", p.Total.StringFixed(2))
}
