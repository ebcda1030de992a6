package pedido

import (
	"time"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

// MsgSinProductos mensaje cuando el pedido llega sin líneas.
const MsgSinProductos = "El pedido debe tener productos"

// Validate comprueba las invariantes del agregado antes de persistirlo.
func Validate(p *entity.Pedido) error {
	if p == nil || len(p.Products) == 0 {
		return domain.Validation(MsgSinProductos)
	}
	if p.UserID == "" {
		return domain.Validation("El pedido debe tener un usuario")
	}
	for i, it := range p.Products {
		if it.ProductID == "" {
			return domain.Validationf("La línea %d no tiene producto", i+1)
		}
		if it.Quantity < 1 {
			return domain.Validationf("La cantidad de la línea %d debe ser al menos 1", i+1)
		}
		if it.Price.IsNegative() {
			return domain.Validationf("El precio de la línea %d no puede ser negativo", i+1)
		}
	}
	if p.Status != "" && !p.Status.Valid() {
		return domain.Validationf("Estado de pedido inválido: %s", p.Status)
	}
	return nil
}

// PrepareForSave asigna timestamps, estado inicial y total. Lo invoca el repositorio al guardar;
// los llamadores no calculan el total por su cuenta.
func PrepareForSave(p *entity.Pedido, now time.Time) {
	if p.Status == "" {
		p.Status = entity.PedidoPending
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	p.Total = CalculateTotal(p.Products)
}
