package mocks

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// NewProduct producto de prueba con precio s.
func NewProduct(id, name, price string) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:          id,
		Name:        name,
		Distributor: entity.DistributorMakro,
		Image:       "https://res.cloudinary.com/demo/image/upload/v1/productos/" + id + ".jpg",
		Price:       mustDecimal(price),
		Category:    entity.CategoryBebidas,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
