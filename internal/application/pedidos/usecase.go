package pedidos

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/dto"
	"github.com/jhoicas/pedidos-hosteleria/internal/application/ports"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/pedido"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/repository"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

// MsgPedidoCreado detalle de la respuesta de creación.
const MsgPedidoCreado = "Pedido realizado con éxito"

// PedidoUseCase construye pedidos con precio bloqueado y consulta el historial.
type PedidoUseCase struct {
	pedidos  repository.PedidoRepository
	products repository.ProductRepository
	users    repository.UserRepository
	pdf      ports.AlbaranGenerator
	metrics  ports.Metrics
	events   ports.EventPublisher
	log      *logger.Logger
}

// NewPedidoUseCase construye el caso de uso. pdf y metrics pueden ser nil.
func NewPedidoUseCase(
	pedidos repository.PedidoRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	pdf ports.AlbaranGenerator,
	metrics ports.Metrics,
	log *logger.Logger,
) *PedidoUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PedidoUseCase{
		pedidos:  pedidos,
		products: products,
		users:    users,
		pdf:      pdf,
		metrics:  metrics,
		events:   ports.NopPublisher{},
		log:      log.Component("pedidos"),
	}
}

// WithEvents activa la publicación del evento de pedido creado.
func (uc *PedidoUseCase) WithEvents(pub ports.EventPublisher) *PedidoUseCase {
	if pub != nil {
		uc.events = pub
	}
	return uc
}

// CreatePedido crea un pedido para userID. El precio de cada línea se toma del catálogo
// en el momento de la petición; el cliente no puede fijarlo. Si alguna referencia no
// existe no se guarda nada.
func (uc *PedidoUseCase) CreatePedido(ctx context.Context, userID string, in dto.CreatePedidoRequest) (*dto.CreatePedidoResponse, error) {
	if len(in.Products) == 0 {
		return nil, domain.Validation(pedido.MsgSinProductos)
	}

	resolved, err := uc.lookupProducts(ctx, in.Products)
	if err != nil {
		return nil, err
	}

	p := &entity.Pedido{
		UserID:   userID,
		Products: make([]entity.LineaPedido, len(in.Products)),
	}
	for i, it := range in.Products {
		p.Products[i] = entity.LineaPedido{
			ProductID: resolved[i].ID,
			Quantity:  it.Quantity,
			Price:     resolved[i].Price,
		}
	}
	if err := pedido.Validate(p); err != nil {
		return nil, err
	}
	if err := uc.pedidos.Save(ctx, p); err != nil {
		if domain.KindOf(err) != domain.KindInternal {
			return nil, err
		}
		return nil, domain.Internal("guardar pedido", err)
	}

	uc.metrics.PedidoCreated()
	uc.log.Info().
		Str("pedido_id", p.ID).
		Str("user_id", userID).
		Int("lineas", len(p.Products)).
		Str("total", p.Total.StringFixed(2)).
		Msg("pedido creado")

	// El pedido ya está guardado: un fallo al publicar solo se registra.
	if err := uc.events.PublishPedidoCreated(ctx, p); err != nil {
		uc.log.Warn().Err(err).Str("pedido_id", p.ID).Msg("no se pudo publicar el evento de pedido")
	}

	return &dto.CreatePedidoResponse{Detail: MsgPedidoCreado, Pedido: toPedidoResponse(p, resolved)}, nil
}

// lookupProducts resuelve todas las referencias en paralelo. results[i] corresponde a items[i];
// el primer fallo cancela el resto.
func (uc *PedidoUseCase) lookupProducts(ctx context.Context, items []dto.PedidoItemRequest) ([]*entity.Product, error) {
	results := make([]*entity.Product, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, it := range items {
		i, it := i, it
		g.Go(func() error {
			prod, err := uc.products.GetByID(gctx, it.Product)
			if err != nil {
				return domain.Internal(fmt.Sprintf("buscar producto %s", it.Product), err)
			}
			if prod == nil {
				return domain.NotFound(fmt.Sprintf("Producto con ID %s no encontrado", it.Product))
			}
			results[i] = prod
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Historial devuelve los pedidos del usuario, más recientes primero, con los productos expandidos.
func (uc *PedidoUseCase) Historial(ctx context.Context, userID string) ([]dto.PedidoResponse, error) {
	list, err := uc.pedidos.ListByOwner(ctx, userID)
	if err != nil {
		return nil, domain.Internal("listar pedidos", err)
	}
	out := make([]dto.PedidoResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toPedidoResponse(item.Pedido, item.Products))
	}
	return out, nil
}

// Albaran genera el PDF del pedido. Solo el dueño puede descargarlo.
//
// Retorna:
//   - domain.ErrNotFound   si el pedido no existe.
//   - domain.ErrForbidden  si el pedido es de otro usuario.
func (uc *PedidoUseCase) Albaran(ctx context.Context, userID, pedidoID string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", domain.Internal("albarán", fmt.Errorf("generador PDF no configurado"))
	}
	p, err := uc.pedidos.GetByID(ctx, pedidoID)
	if err != nil {
		return nil, "", domain.Internal("obtener pedido", err)
	}
	if p == nil {
		return nil, "", domain.NotFound(fmt.Sprintf("Pedido con ID %s no encontrado", pedidoID))
	}
	if p.UserID != userID {
		return nil, "", domain.Forbidden("Acceso denegado")
	}

	owner, err := uc.users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, "", domain.Internal("obtener usuario", err)
	}
	ids := make([]string, 0, len(p.Products))
	for _, it := range p.Products {
		ids = append(ids, it.ProductID)
	}
	byID, err := uc.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, "", domain.Internal("obtener productos", err)
	}
	snaps := make([]*entity.Product, len(p.Products))
	for i, it := range p.Products {
		snaps[i] = byID[it.ProductID]
	}

	pdfBytes, err := uc.pdf.Generate(ports.AlbaranData{Pedido: p, Owner: owner, Products: snaps})
	if err != nil {
		return nil, "", domain.Internal("generar albarán", err)
	}
	return pdfBytes, fmt.Sprintf("albaran-%s.pdf", p.ID), nil
}

func toPedidoResponse(p *entity.Pedido, products []*entity.Product) dto.PedidoResponse {
	lines := make([]dto.PedidoLineResponse, len(p.Products))
	for i, it := range p.Products {
		line := dto.PedidoLineResponse{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price}
		if i < len(products) && products[i] != nil {
			snap := dto.ToProductResponse(products[i])
			line.Product = &snap
		}
		lines[i] = line
	}
	return dto.PedidoResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Products:  lines,
		Total:     p.Total,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
