package pedido

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

// CalculateTotal implementa el total del pedido (servicio de dominio).
// Total = round2(Σ precio × cantidad). Se redondea una sola vez sobre la suma final,
// nunca por línea, para no acumular error de redondeo. Sin líneas el total es 0.
func CalculateTotal(items []entity.LineaPedido) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	// Round redondea la mitad alejándose de cero; con importes no negativos equivale a half-up.
	return total.Round(2)
}
