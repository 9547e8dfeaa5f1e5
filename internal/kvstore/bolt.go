package kvstore

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/KirkDiggler/spellbook/internal/errors"
)

const boltBucket = "spellbook"

// BoltStore keeps every key in one BoltDB bucket
type BoltStore struct {
	db *bbolt.DB
}

var _ Store = (*BoltStore)(nil)

// OpenBolt opens or creates a BoltDB file
func OpenBolt(path string) (*BoltStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("bolt path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open bolt db")
	}

	store := &BoltStore{db: db}
	if err := store.ensureBucket(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (b *BoltStore) ensureBucket() error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucket)); err != nil {
			return errors.Wrap(err, "failed to create bucket")
		}
		return nil
	})
}

// Get reads a key in a read-only transaction
func (b *BoltStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkContext(ctx, "bolt", "get"); err != nil {
		return nil, err
	}

	var value []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucket))
		if bucket == nil {
			return errors.Internal("bucket is missing")
		}
		raw := bucket.Get([]byte(key))
		if raw == nil {
			return errors.NotFoundf("key %s not found", key)
		}
		// bolt memory is only valid inside the transaction
		value = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set writes one key
func (b *BoltStore) Set(ctx context.Context, key string, value []byte) error {
	return b.Apply(ctx, []Op{SetOp(key, value)})
}

// Delete removes keys in one transaction
func (b *BoltStore) Delete(ctx context.Context, keys ...string) error {
	ops := make([]Op, len(keys))
	for i, key := range keys {
		ops[i] = DeleteOp(key)
	}
	return b.Apply(ctx, ops)
}

// Apply runs the batch in a single read-write transaction
func (b *BoltStore) Apply(ctx context.Context, ops []Op) error {
	if err := checkContext(ctx, "bolt", "apply"); err != nil {
		return err
	}
	if err := validateOps(ops); err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucket))
		if bucket == nil {
			return errors.Internal("bucket is missing")
		}
		for _, op := range ops {
			var err error
			if op.Kind == OpSet {
				err = bucket.Put([]byte(op.Key), op.Value)
			} else {
				err = bucket.Delete([]byte(op.Key))
			}
			if err != nil {
				return errors.Wrapf(err, "failed to write key %s", op.Key)
			}
		}
		return nil
	})
}

// Close closes the database file
func (b *BoltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
