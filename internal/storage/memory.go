package storage

import "sync"

// MemoryEngine is an in-process Engine used by tests and as the default when
// no durable storage is configured. Values are copied on the way in and out
// so callers cannot alias the stored bytes.
type MemoryEngine struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryEngine creates an empty in-memory engine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{data: make(map[string][]byte)}
}

func (e *MemoryEngine) Get(key string) ([]byte, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	value, ok := e.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (e *MemoryEngine) Set(key string, value []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	e.data[key] = stored
	return nil
}

func (e *MemoryEngine) Delete(key string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.data, key)
	return nil
}

// Len reports the number of stored keys.
func (e *MemoryEngine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.data)
}
