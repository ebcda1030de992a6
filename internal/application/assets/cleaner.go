package assets

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/pedidos-hosteleria/internal/application/ports"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/pkg/logger"
)

// DefaultCleanupTimeout límite de cada borrado remoto si no se configura otro.
const DefaultCleanupTimeout = 10 * time.Second

// Resultados de limpieza, usados como etiqueta de métrica.
const (
	ResultDeleted = "deleted"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

// Cleaner borra imágenes huérfanas del almacenamiento remoto sin bloquear la petición.
// Los fallos se registran y nunca llegan al llamador.
type Cleaner struct {
	store   ports.AssetStore
	log     *logger.Logger
	metrics ports.Metrics
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewCleaner construye el coordinador. metrics puede ser nil.
func NewCleaner(store ports.AssetStore, log *logger.Logger, metrics ports.Metrics, timeout time.Duration) *Cleaner {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = DefaultCleanupTimeout
	}
	return &Cleaner{store: store, log: log.Component("assets"), metrics: metrics, timeout: timeout}
}

// DeleteAsset programa el borrado del asset de url y retorna de inmediato.
// URL vacía o imagen por defecto: no hace nada.
func (c *Cleaner) DeleteAsset(url string) {
	if url == "" || url == entity.DefaultProductImage {
		c.metrics.AssetCleanup(ResultSkipped)
		return
	}
	publicID := PublicIDFromURL(url)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		if err := c.store.Delete(ctx, publicID); err != nil {
			c.metrics.AssetCleanup(ResultFailed)
			c.log.Warn().Err(err).Str("public_id", publicID).Msg("no se pudo borrar la imagen")
			return
		}
		c.metrics.AssetCleanup(ResultDeleted)
		c.log.Debug().Str("public_id", publicID).Msg("imagen eliminada")
	}()
}

// Wait espera a que terminen los borrados en curso (apagado y tests).
func (c *Cleaner) Wait() {
	c.wg.Wait()
}
