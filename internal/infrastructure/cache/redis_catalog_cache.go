package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/ports"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/pkg/config"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

var _ ports.CatalogCache = (*RedisCatalogCache)(nil)

// redisKey clave del listado en Redis.
const redisKey = "pedidos:" + listKey

// redisTimeout límite de cada operación; la caché nunca debe frenar una lectura del catálogo.
const redisTimeout = 500 * time.Millisecond

// RedisCatalogCache caché del listado compartida entre réplicas. Cualquier fallo de Redis
// se trata como fallo de caché y se sirve desde la base de datos.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	rec    HitRecorder
	log    *logger.Logger
}

// NewRedisCatalogCache conecta con Redis y comprueba la conexión.
func NewRedisCatalogCache(ctx context.Context, cfg config.RedisConfig, ttl time.Duration, rec HitRecorder, log *logger.Logger) (*RedisCatalogCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return newRedisCatalogCache(client, ttl, rec, log), nil
}

func newRedisCatalogCache(client *redis.Client, ttl time.Duration, rec HitRecorder, log *logger.Logger) *RedisCatalogCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RedisCatalogCache{client: client, ttl: ttl, rec: rec, log: log.Component("catalog_cache")}
}

func (c *RedisCatalogCache) GetList() ([]*entity.Product, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	list, err := c.get(ctx)
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Msg("leer catálogo de Redis")
	}
	hit := err == nil
	if c.rec != nil {
		c.rec.CatalogCache(hit)
	}
	return list, hit
}

func (c *RedisCatalogCache) get(ctx context.Context) ([]*entity.Product, error) {
	data, err := c.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		return nil, err
	}
	var list []*entity.Product
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *RedisCatalogCache) SetList(list []*entity.Product) {
	data, err := json.Marshal(list)
	if err != nil {
		c.log.Warn().Err(err).Msg("serializar catálogo")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := c.client.Set(ctx, redisKey, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("guardar catálogo en Redis")
	}
}

func (c *RedisCatalogCache) Invalidate() {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := c.client.Del(ctx, redisKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("invalidar catálogo en Redis")
	}
}

func (c *RedisCatalogCache) Close() error {
	return c.client.Close()
}
