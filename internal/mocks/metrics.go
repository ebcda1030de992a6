package mocks

import "sync"

// RecordingMetrics guarda las observaciones para inspeccionarlas en tests.
type RecordingMetrics struct {
	mu      sync.Mutex
	Cleanup map[string]int
	Pedidos int
}

func NewRecordingMetrics() *RecordingMetrics {
	return &RecordingMetrics{Cleanup: make(map[string]int)}
}

func (m *RecordingMetrics) AssetCleanup(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Cleanup[result]++
}

func (m *RecordingMetrics) PedidoCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Pedidos++
}

// CleanupCount devuelve cuántas limpiezas terminaron con result.
func (m *RecordingMetrics) CleanupCount(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Cleanup[result]
}
