package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/assets"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/dto"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/ports"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/repository"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

// Mensajes del catálogo visibles para el usuario.
const (
	MsgImageRequired  = "Imagen obligatoria"
	MsgProductDeleted = "Producto borrado"
	MsgEmptySearch    = "El término de búsqueda no puede estar vacío"
)

// ProductUseCase casos de uso del catálogo. Cada mutación invalida la caché del listado
// y programa el borrado de las imágenes que quedan huérfanas.
type ProductUseCase struct {
	repo    repository.ProductRepository
	store   ports.AssetStore
	cleaner *assets.Cleaner
	cache   ports.CatalogCache
	log     *logger.Logger
	now     func() time.Time
}

// NewProductUseCase construye el caso de uso. cache puede ser nil.
func NewProductUseCase(
	repo repository.ProductRepository,
	store ports.AssetStore,
	cleaner *assets.Cleaner,
	cache ports.CatalogCache,
	log *logger.Logger,
) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{
		repo:    repo,
		store:   store,
		cleaner: cleaner,
		cache:   cache,
		log:     log.Component("products"),
		now:     time.Now,
	}
}

func notFound(id string) error {
	return domain.NotFound(fmt.Sprintf("Producto con ID %s no encontrado", id))
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	if uc.cache != nil {
		if list, ok := uc.cache.GetList(); ok {
			return dto.ToProductResponses(list), nil
		}
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	if uc.cache != nil {
		uc.cache.SetList(list)
	}
	return dto.ToProductResponses(list), nil
}

// SearchByName busca por coincidencia parcial del nombre, sin distinguir mayúsculas.
func (uc *ProductUseCase) SearchByName(ctx context.Context, term string) ([]dto.ProductResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.Validation(MsgEmptySearch)
	}
	list, err := uc.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("buscar productos por nombre: %w", err)
	}
	return dto.ToProductResponses(list), nil
}

// SearchByCategory busca por coincidencia parcial de la categoría, sin distinguir mayúsculas.
func (uc *ProductUseCase) SearchByCategory(ctx context.Context, term string) ([]dto.ProductResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.Validation(MsgEmptySearch)
	}
	list, err := uc.repo.SearchByCategory(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("buscar productos por categoría: %w", err)
	}
	return dto.ToProductResponses(list), nil
}

// Create crea un producto. La imagen es obligatoria; si algo falla después de subirla se borra.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, img *assets.File) (*dto.ProductResponse, error) {
	if img == nil {
		return nil, domain.Validation(MsgImageRequired)
	}
	if err := img.ValidateExtension(); err != nil {
		return nil, err
	}
	url, err := uc.store.Upload(ctx, assets.FolderProductos, img.Filename, img.Content)
	if err != nil {
		return nil, fmt.Errorf("subir imagen: %w", err)
	}

	now := uc.now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Distributor: in.Distributor,
		Image:       url,
		Price:       in.Price,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	product.Normalize()
	if field, ok := product.Validate(); !ok {
		uc.cleaner.DeleteAsset(url)
		return nil, domain.Validationf("Campo inválido: %s", field)
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		uc.cleaner.DeleteAsset(url)
		return nil, err
	}
	uc.invalidate()
	uc.log.Info().Str("product_id", product.ID).Msg("producto creado")
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Update modifica los campos enviados. Con imagen nueva, la anterior se borra solo si la
// actualización se guarda; si falla, se borra la nueva.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest, img *assets.File) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if product == nil {
		return nil, notFound(id)
	}

	oldImage := product.Image
	var newImage string
	if img != nil {
		if err := img.ValidateExtension(); err != nil {
			return nil, err
		}
		newImage, err = uc.store.Upload(ctx, assets.FolderProductos, img.Filename, img.Content)
		if err != nil {
			return nil, fmt.Errorf("subir imagen: %w", err)
		}
		product.Image = newImage
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Distributor != nil {
		product.Distributor = *in.Distributor
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	product.UpdatedAt = uc.now()
	product.Normalize()

	if field, ok := product.Validate(); !ok {
		uc.cleaner.DeleteAsset(newImage)
		return nil, domain.Validationf("Campo inválido: %s", field)
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		uc.cleaner.DeleteAsset(newImage)
		return nil, err
	}
	if newImage != "" && oldImage != newImage {
		uc.cleaner.DeleteAsset(oldImage)
	}
	uc.invalidate()
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Delete elimina el producto y programa el borrado de su imagen.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.DeleteProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if product == nil {
		return nil, notFound(id)
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	uc.cleaner.DeleteAsset(product.Image)
	uc.invalidate()
	uc.log.Info().Str("product_id", id).Msg("producto borrado")
	return &dto.DeleteProductResponse{Message: MsgProductDeleted, Product: dto.ToProductResponse(product)}, nil
}

func (uc *ProductUseCase) invalidate() {
	if uc.cache != nil {
		uc.cache.Invalidate()
	}
}
