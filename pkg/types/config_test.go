package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  StoreConfig
		wantErr error
	}{
		{
			name:   "memory backend valid",
			config: StoreConfig{Backend: StoreMemory},
		},
		{
			name:   "sqlite backend valid",
			config: StoreConfig{Backend: StoreSQLite, Dir: "/tmp/labsite"},
		},
		{
			name:   "bolt backend valid",
			config: StoreConfig{Backend: StoreBolt, Dir: "/tmp/labsite"},
		},
		{
			name:   "redis backend with addr valid",
			config: StoreConfig{Backend: StoreRedis, Addr: "localhost:6379"},
		},
		{
			name:    "redis backend without addr rejected",
			config:  StoreConfig{Backend: StoreRedis},
			wantErr: ErrAddrEmpty,
		},
		{
			name:    "empty backend rejected",
			config:  StoreConfig{},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend rejected",
			config:  StoreConfig{Backend: "etcd"},
			wantErr: ErrBackendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
