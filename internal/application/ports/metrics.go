package ports

// Metrics contadores de negocio que exponen los casos de uso.
type Metrics interface {
	AssetCleanup(result string)
	PedidoCreated()
}

// NopMetrics descarta todas las observaciones.
type NopMetrics struct{}

func (NopMetrics) AssetCleanup(string) {}
func (NopMetrics) PedidoCreated()      {}
