package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepalailab/labsite/pkg/types"
)

// openStores builds one store per local backend, each against a fresh
// temporary directory. The redis backend needs a server and is exercised
// only through Open's construction path.
func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sqliteStore, err := NewSQLiteStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	boltStore, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { boltStore.Close() })

	return map[string]Store{
		types.StoreMemory: NewMemoryStore(),
		types.StoreSQLite: sqliteStore,
		types.StoreBolt:   boltStore,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	for backend, store := range openStores(t) {
		t.Run(backend, func(t *testing.T) {
			_, err := store.Get(ctx, KeyConversationID)
			assert.ErrorIs(t, err, ErrKeyNotFound, "unset key reads as not found")

			require.NoError(t, store.Set(ctx, KeyConversationID, "conv-1"))
			got, err := store.Get(ctx, KeyConversationID)
			require.NoError(t, err)
			assert.Equal(t, "conv-1", got)

			require.NoError(t, store.Set(ctx, KeyConversationID, "conv-2"))
			got, err = store.Get(ctx, KeyConversationID)
			require.NoError(t, err)
			assert.Equal(t, "conv-2", got, "set overwrites the prior value")

			require.NoError(t, store.Delete(ctx, KeyConversationID))
			_, err = store.Get(ctx, KeyConversationID)
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, store.Delete(ctx, KeyConversationID),
				"deleting an absent key succeeds")
		})
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewSQLiteStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, KeyUserID, "user-1"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, KeyUserID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got, "session state survives restarts")
}

func TestBoltStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewBoltStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, KeyUserID, "user-1"))
	require.NoError(t, store.Close())

	reopened, err := NewBoltStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, KeyUserID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got)
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		config  types.StoreConfig
		wantErr error
	}{
		{name: "memory", config: types.StoreConfig{Backend: types.StoreMemory}},
		{name: "sqlite", config: types.StoreConfig{Backend: types.StoreSQLite}},
		{name: "bolt", config: types.StoreConfig{Backend: types.StoreBolt}},
		{name: "redis", config: types.StoreConfig{Backend: types.StoreRedis, Addr: "localhost:6379"}},
		{name: "empty backend", config: types.StoreConfig{}, wantErr: types.ErrBackendEmpty},
		{name: "unknown backend", config: types.StoreConfig{Backend: "etcd"}, wantErr: types.ErrBackendUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.config.Backend == types.StoreSQLite || tt.config.Backend == types.StoreBolt {
				tt.config.Dir = t.TempDir()
			}

			store, err := Open(tt.config)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, store)
			store.Close()
		})
	}
}
