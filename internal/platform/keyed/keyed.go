package keyed

import (
	"errors"
	"sync"
)

// ErrConflict se devuelve cuando no se pudo adquirir el acceso de inmediato.
// El store está pensado para un request en vuelo por proceso: ante contención
// real el caller recibe el error y decide (reintentar, serializar), nunca
// queda bloqueado esperando.
var ErrConflict = errors.New("store busy: concurrent access in progress")

// Map es un contenedor genérico id→valor con arbitraje de acceso exclusivo.
// Las lecturas pueden correr en paralelo entre sí; una escritura exige
// exclusividad total. La adquisición es try-lock: si no se puede tomar el
// lock en el acto, la operación falla con ErrConflict en vez de esperar.
type Map[V any] struct {
	mu    sync.RWMutex
	items map[uint64]V
}

func NewMap[V any]() *Map[V] {
	return &Map[V]{items: make(map[uint64]V)}
}

// Read ejecuta f sobre una vista de solo lectura del mapa.
// f no debe mutar el mapa ni retener la referencia fuera del closure.
func (m *Map[V]) Read(f func(items map[uint64]V) error) error {
	if !m.mu.TryRLock() {
		return ErrConflict
	}
	defer m.mu.RUnlock()
	return f(m.items)
}

// Write ejecuta f con acceso exclusivo y vista mutable del mapa.
func (m *Map[V]) Write(f func(items map[uint64]V) error) error {
	if !m.mu.TryLock() {
		return ErrConflict
	}
	defer m.mu.Unlock()
	return f(m.items)
}

// NextID calcula el próximo identificador: max(ids actuales)+1, o 0 con el
// mapa vacío. La regla mira los ids presentes, no un contador histórico.
func NextID[V any](items map[uint64]V) uint64 {
	if len(items) == 0 {
		return 0
	}
	var max uint64
	for id := range items {
		if id > max {
			max = id
		}
	}
	return max + 1
}
