// Package session persists the client-side chat state: the conversation
// identifier handed out by the backend and the anonymous user identifier.
// The store is keyed by fixed strings and survives runs until a key is
// explicitly deleted. Backends are selected through types.StoreConfig.
package session

import (
	"context"
	"errors"

	"github.com/nepalailab/labsite/pkg/types"
)

// Fixed keys for the persisted chat state.
const (
	KeyConversationID = "chat_conversation_id"
	KeyUserID         = "chat_user_id"
)

// ErrKeyNotFound is returned by Get when the key has never been set or was
// deleted.
var ErrKeyNotFound = errors.New("session key not found")

// Store is the injected storage interface for persisted session state.
// Implementations do not coordinate across processes: two concurrent
// clients sharing one store can interleave reads and writes.
type Store interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set writes the value for key, overwriting any prior value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key succeeds.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Open creates the store selected by the config. It returns a sentinel
// validation error from pkg/types for malformed configs.
func Open(cfg types.StoreConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case types.StoreMemory:
		return NewMemoryStore(), nil
	case types.StoreSQLite:
		return NewSQLiteStore(cfg.Dir)
	case types.StoreBolt:
		return NewBoltStore(cfg.Dir)
	case types.StoreRedis:
		return NewRedisStore(cfg.Addr), nil
	default:
		return nil, types.ErrBackendUnknown
	}
}
