package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/ports"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
)

var _ ports.CatalogCache = (*CatalogCache)(nil)

const listKey = "products:all"

// DefaultTTL vigencia del listado en caché si no se configura otra.
const DefaultTTL = 30 * time.Second

// HitRecorder recibe aciertos y fallos de la caché (métricas).
type HitRecorder interface {
	CatalogCache(hit bool)
}

// CatalogCache caché en memoria del listado de productos sobre go-cache.
type CatalogCache struct {
	c   *gocache.Cache
	rec HitRecorder
}

// NewCatalogCache crea la caché. rec puede ser nil.
func NewCatalogCache(ttl time.Duration, rec HitRecorder) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CatalogCache{c: gocache.New(ttl, 2*ttl), rec: rec}
}

// GetList devuelve una copia del listado para que el llamador no altere lo cacheado.
func (c *CatalogCache) GetList() ([]*entity.Product, bool) {
	v, found := c.c.Get(listKey)
	if c.rec != nil {
		c.rec.CatalogCache(found)
	}
	if !found {
		return nil, false
	}
	return cloneList(v.([]*entity.Product)), true
}

func (c *CatalogCache) SetList(list []*entity.Product) {
	c.c.SetDefault(listKey, cloneList(list))
}

func (c *CatalogCache) Invalidate() {
	c.c.Delete(listKey)
}

func cloneList(list []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, len(list))
	for i, p := range list {
		cp := *p
		out[i] = &cp
	}
	return out
}
