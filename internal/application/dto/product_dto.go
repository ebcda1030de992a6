package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto (multipart, la imagen va aparte).
type CreateProductRequest struct {
	Name        string          `json:"nombre"`
	Distributor string          `json:"distribuidor"`
	Price       decimal.Decimal `json:"precio"`
	Category    string          `json:"categoria"`
}

// UpdateProductRequest entrada para actualizar un producto; los campos nil no se tocan.
type UpdateProductRequest struct {
	Name        *string          `json:"nombre"`
	Distributor *string          `json:"distribuidor"`
	Price       *decimal.Decimal `json:"precio"`
	Category    *string          `json:"categoria"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Distributor string          `json:"distribuidor"`
	Image       string          `json:"img"`
	Price       decimal.Decimal `json:"precio"`
	Category    string          `json:"categoria"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DeleteProductResponse confirmación de borrado con el producto eliminado.
type DeleteProductResponse struct {
	Message string          `json:"mensaje"`
	Product ProductResponse `json:"producto"`
}

// ToProductResponse proyecta la entidad a la salida pública.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Distributor: p.Distributor,
		Image:       p.Image,
		Price:       p.Price,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses proyecta una lista; nunca devuelve nil.
func ToProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductResponse(p))
	}
	return out
}
