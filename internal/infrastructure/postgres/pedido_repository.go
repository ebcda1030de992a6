package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/pedido"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

const pedidoColumns = `id, user_id, products, total, status, created_at, updated_at`

// PedidoRepo guarda cada pedido como una fila con sus líneas embebidas en JSONB.
type PedidoRepo struct {
	q        Querier
	products repository.ProductRepository
	now      func() time.Time
}

// NewPedidoRepository construye el repositorio; products se usa para expandir el historial.
func NewPedidoRepository(q Querier, products repository.ProductRepository) *PedidoRepo {
	return &PedidoRepo{q: q, products: products, now: time.Now}
}

// Save valida, completa (timestamps, estado, total) e inserta el pedido en una única sentencia.
func (r *PedidoRepo) Save(ctx context.Context, p *entity.Pedido) error {
	if err := pedido.Validate(p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	pedido.PrepareForSave(p, r.now().UTC())

	items, err := json.Marshal(p.Products)
	if err != nil {
		return fmt.Errorf("marshal lineas pedido: %w", err)
	}
	query := `INSERT INTO pedidos (` + pedidoColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.q.Exec(ctx, query,
		p.ID, p.UserID, items, p.Total, string(p.Status), p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID; (nil, nil) si no existe.
func (r *PedidoRepo) GetByID(ctx context.Context, id string) (*entity.Pedido, error) {
	if !validID(id) {
		return nil, nil
	}
	p, err := scanPedido(r.q.QueryRow(ctx, `SELECT `+pedidoColumns+` FROM pedidos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return p, nil
}

// ListByOwner devuelve el historial del usuario (más recientes primero) con los productos expandidos.
// Un producto borrado después del pedido deja su línea con snapshot nil.
func (r *PedidoRepo) ListByOwner(ctx context.Context, userID string) ([]repository.PedidoConProductos, error) {
	out := make([]repository.PedidoConProductos, 0)
	if !validID(userID) {
		return out, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+pedidoColumns+` FROM pedidos WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	var pedidos []*entity.Pedido
	for rows.Next() {
		p, err := scanPedido(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		pedidos = append(pedidos, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	if len(pedidos) == 0 {
		return out, nil
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, p := range pedidos {
		for _, it := range p.Products {
			if _, ok := seen[it.ProductID]; !ok {
				seen[it.ProductID] = struct{}{}
				ids = append(ids, it.ProductID)
			}
		}
	}
	byID, err := r.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("expandir productos: %w", err)
	}

	for _, p := range pedidos {
		snaps := make([]*entity.Product, len(p.Products))
		for i, it := range p.Products {
			snaps[i] = byID[it.ProductID]
		}
		out = append(out, repository.PedidoConProductos{Pedido: p, Products: snaps})
	}
	return out, nil
}

func scanPedido(row pgx.Row) (*entity.Pedido, error) {
	var (
		p      entity.Pedido
		items  []byte
		status string
	)
	if err := row.Scan(&p.ID, &p.UserID, &items, &p.Total, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &p.Products); err != nil {
		return nil, fmt.Errorf("unmarshal lineas pedido: %w", err)
	}
	p.Status = entity.PedidoStatus(status)
	return &p, nil
}
