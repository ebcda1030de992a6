package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/pedido"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/repository"
)

var (
	_ repository.UserRepository    = (*UserRepo)(nil)
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.PedidoRepository  = (*PedidoRepo)(nil)
)

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct {
	mu    sync.Mutex
	Users map[string]*entity.User
	// Err si no es nil lo devuelven todas las operaciones.
	Err error
	// CreateErr si no es nil lo devuelve Create.
	CreateErr error
}

func NewUserRepo(users ...*entity.User) *UserRepo {
	r := &UserRepo{Users: make(map[string]*entity.User)}
	for _, u := range users {
		r.Users[u.ID] = u
	}
	return r
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, existing := range r.Users {
		if existing.Email == u.Email {
			return domain.Conflict("El usuario ya existe")
		}
	}
	cp := *u
	r.Users[u.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.Users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.Users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// ProductRepo repositorio de productos en memoria. Cuenta las lecturas por id.
type ProductRepo struct {
	mu       sync.Mutex
	Products map[string]*entity.Product
	Err      error
	// UpdateErr si no es nil lo devuelve Update.
	UpdateErr error
	Lookups   int
	Lists     int
}

func NewProductRepo(products ...*entity.Product) *ProductRepo {
	r := &ProductRepo{Products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.Products[p.ID] = p
	}
	return r
}

// SetPrice cambia el precio vigente de un producto.
func (r *ProductRepo) SetPrice(id string, price string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Products[id].Price = mustDecimal(price)
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, existing := range r.Products {
		if existing.Name == p.Name && existing.Distributor == p.Distributor {
			return domain.Conflict("Producto duplicado")
		}
	}
	cp := *p
	r.Products[p.ID] = &cp
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lookups++
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.Products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make(map[string]*entity.Product)
	for _, id := range ids {
		if p, ok := r.Products[id]; ok {
			cp := *p
			out[id] = &cp
		}
	}
	return out, nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lists++
	return r.filter(func(*entity.Product) bool { return true })
}

func (r *ProductRepo) SearchByName(_ context.Context, term string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := strings.ToLower(term)
	return r.filter(func(p *entity.Product) bool { return strings.Contains(strings.ToLower(p.Name), t) })
}

func (r *ProductRepo) SearchByCategory(_ context.Context, term string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := strings.ToLower(term)
	return r.filter(func(p *entity.Product) bool { return strings.Contains(strings.ToLower(p.Category), t) })
}

func (r *ProductRepo) filter(keep func(*entity.Product) bool) ([]*entity.Product, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*entity.Product, 0)
	for _, p := range r.Products {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	if _, ok := r.Products[p.ID]; !ok {
		return domain.NotFound(fmt.Sprintf("Producto con ID %s no encontrado", p.ID))
	}
	cp := *p
	r.Products[p.ID] = &cp
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Products[id]; !ok {
		return domain.NotFound(fmt.Sprintf("Producto con ID %s no encontrado", id))
	}
	delete(r.Products, id)
	return nil
}

// PedidoRepo repositorio de pedidos en memoria con el mismo contrato que el de PostgreSQL.
type PedidoRepo struct {
	mu       sync.Mutex
	Pedidos  []*entity.Pedido
	products repository.ProductRepository
	Err      error
	Saves    int
	// Now reloj usado por Save; por defecto time.Now.
	Now func() time.Time
}

func NewPedidoRepo(products repository.ProductRepository) *PedidoRepo {
	return &PedidoRepo{products: products, Now: time.Now}
}

func (r *PedidoRepo) Save(_ context.Context, p *entity.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if err := pedido.Validate(p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	pedido.PrepareForSave(p, r.Now())
	cp := *p
	cp.Products = append([]entity.LineaPedido(nil), p.Products...)
	r.Pedidos = append(r.Pedidos, &cp)
	r.Saves++
	return nil
}

func (r *PedidoRepo) GetByID(_ context.Context, id string) (*entity.Pedido, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, p := range r.Pedidos {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *PedidoRepo) ListByOwner(ctx context.Context, userID string) ([]repository.PedidoConProductos, error) {
	r.mu.Lock()
	if r.Err != nil {
		r.mu.Unlock()
		return nil, r.Err
	}
	var own []*entity.Pedido
	for _, p := range r.Pedidos {
		if p.UserID == userID {
			cp := *p
			own = append(own, &cp)
		}
	}
	r.mu.Unlock()

	sort.Slice(own, func(i, j int) bool {
		if !own[i].CreatedAt.Equal(own[j].CreatedAt) {
			return own[i].CreatedAt.After(own[j].CreatedAt)
		}
		return own[i].ID > own[j].ID
	})
	var ids []string
	for _, p := range own {
		for _, it := range p.Products {
			ids = append(ids, it.ProductID)
		}
	}
	byID, err := r.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]repository.PedidoConProductos, 0, len(own))
	for _, p := range own {
		snaps := make([]*entity.Product, len(p.Products))
		for i, it := range p.Products {
			snaps[i] = byID[it.ProductID]
		}
		out = append(out, repository.PedidoConProductos{Pedido: p, Products: snaps})
	}
	return out, nil
}
