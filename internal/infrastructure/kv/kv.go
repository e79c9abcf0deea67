// Package kv defines the narrow key-value store contract the resource
// engine depends on. Values are opaque byte slices; collections are
// independent namespaces, one per record kind.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Collection.Get when the key is absent.
var ErrNotFound = errors.New("kv: key not found")

// Store is a handle to a single logical store. Collections share the
// underlying storage but never see each other's keys.
type Store interface {
	Collection(name string) Collection
	Close() error
}

// Collection is one namespace inside a Store. Delete of a missing key is a
// no-op, not an error. ForEach visits entries in no particular order and
// stops on the first error returned by fn.
type Collection interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	ForEach(ctx context.Context, fn func(key string, value []byte) error) error
}
