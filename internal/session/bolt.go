package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// boltFileName is the database file created under the session directory.
const boltFileName = "session.bolt"

// boltBucket holds all session keys.
var boltBucket = []byte("session")

// BoltStore persists session keys in a BoltDB file.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the session database under dir. The open
// is bounded by a timeout so a second process holding the file lock fails
// fast instead of blocking.
func NewBoltStore(dir string) (*BoltStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	db, err := bolt.Open(filepath.Join(dir, boltFileName), 0o600,
		&bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init session bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(_ context.Context, key string) (string, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(boltBucket).Get([]byte(key)); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if value == nil {
		return "", ErrKeyNotFound
	}
	return string(value), nil
}

func (s *BoltStore) Set(_ context.Context, key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), []byte(value))
	})
}

func (s *BoltStore) Delete(_ context.Context, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
