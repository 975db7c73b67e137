package types

import "errors"

// StoreConfig holds backend selection and parameters for opening the
// session store that persists the chat conversation and user identifiers.
type StoreConfig struct {
	Backend string `json:"backend" yaml:"backend"`

	// Dir is the directory holding the store file. Used by the sqlite
	// and bolt backends.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// Addr is the server address. Used by the redis backend.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

// Supported session store backend names.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreBolt   = "bolt"
	StoreRedis  = "redis"
)

// StoreConfig validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrAddrEmpty      = errors.New("addr must not be empty for redis backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	StoreMemory: true,
	StoreSQLite: true,
	StoreBolt:   true,
	StoreRedis:  true,
}

// Validate checks that the StoreConfig is well-formed. It returns a
// sentinel error from this package on failure.
func (c StoreConfig) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Backend == StoreRedis && c.Addr == "" {
		return ErrAddrEmpty
	}
	return nil
}
