// Package storage provides the key-value engines backing the forecast store.
package storage

// Engine is the persistence port the forecast store writes through. Get
// reports a missing key through its second return value rather than an
// error; errors are reserved for engine failures.
type Engine interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
