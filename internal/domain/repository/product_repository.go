package repository

import (
	"context"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe o el id no es válido.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs devuelve los productos encontrados indexados por id; los ausentes no aparecen.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	SearchByName(ctx context.Context, term string) ([]*entity.Product, error)
	SearchByCategory(ctx context.Context, term string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
