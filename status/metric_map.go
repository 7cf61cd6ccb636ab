package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap is a keyed set of metric cells of type T
// Cells are allocated once and never removed; holders write them without the map lock
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	cell := m.cells[key]
	m.mu.RUnlock()
	if cell != nil {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cell = m.cells[key]; cell == nil {
		cell = new(T)
		m.cells[key] = cell
	}
	return cell
}

// Range calls fn for every cell in key order
func (m *MetricMap[T]) Range(fn func(key string, cell *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.cells)) {
		fn(k, m.cells[k])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}
