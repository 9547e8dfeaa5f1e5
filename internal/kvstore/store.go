// Package kvstore is the string-keyed persistence layer behind the
// character repository. Values are opaque bytes; callers store JSON.
package kvstore

//go:generate mockgen -destination=mock/mock_store.go -package=kvstoremock github.com/KirkDiggler/spellbook/internal/kvstore Store

import (
	"context"

	"github.com/KirkDiggler/spellbook/internal/errors"
)

// Backend names a Store implementation
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
	BackendBolt   Backend = "bolt"
	BackendSQLite Backend = "sqlite"
)

// Backends lists every supported backend name
func Backends() []string {
	return []string{string(BackendMemory), string(BackendRedis), string(BackendBolt), string(BackendSQLite)}
}

// Store is a goroutine-safe key-value store
type Store interface {
	// Get returns the value stored under key
	// Returns errors.NotFound if the key is absent
	// Returns errors.Unavailable or errors.Internal for backend failures
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Apply runs the operations as one atomic batch, in order
	Apply(ctx context.Context, ops []Op) error

	// Close releases backend resources
	Close() error
}

// OpKind is the type of a batched operation
type OpKind int

const (
	OpSet OpKind = iota
	OpDelete
)

// Op is one write inside an Apply batch
type Op struct {
	Kind  OpKind
	Key   string
	Value []byte
}

// SetOp builds a set operation
func SetOp(key string, value []byte) Op {
	return Op{Kind: OpSet, Key: key, Value: value}
}

// DeleteOp builds a delete operation
func DeleteOp(key string) Op {
	return Op{Kind: OpDelete, Key: key}
}

func validateOps(ops []Op) error {
	for _, op := range ops {
		if op.Key == "" {
			return errors.InvalidArgument("key cannot be empty")
		}
		if op.Kind != OpSet && op.Kind != OpDelete {
			return errors.InvalidArgumentf("unknown op kind %d", op.Kind)
		}
	}
	return nil
}

// checkContext fails fast on a canceled or expired context
func checkContext(ctx context.Context, backend, op string) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, backend+" "+op+" canceled")
	}
	return nil
}

// unavailable wraps a backend failure. Context errors keep CodeCanceled.
func unavailable(err error, message string) *errors.Error {
	if errors.IsCanceled(err) {
		return errors.Wrap(err, message)
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, message)
}
