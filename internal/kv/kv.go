// Package kv defines the durable, synchronous, string-keyed local store the
// persistence layer is built on. It mirrors a browser's localStorage contract:
// whole-value reads and writes, no transactions, no size guarantees beyond
// what the backing store provides.
package kv

// Store is the local key/value boundary. Get reports ok=false when the key is
// absent; absence is not an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
