// Package paths resolves configuration and session directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir  = "LABSITE_CONFIG_DIR"
	EnvSessionDir = "LABSITE_SESSION_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/labsite (fallback ~/.config/labsite)
// macOS:   ~/Library/Application Support/labsite
// Windows: %APPDATA%/labsite
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "labsite"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "labsite"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "labsite"), nil
	}
}

// DefaultSessionDir returns the platform-specific default session directory.
// The session directory holds the persisted chat conversation and user
// identifiers: the client-side storage of the site.
//
// Linux:   $XDG_DATA_HOME/labsite (fallback ~/.local/share/labsite)
// macOS:   ~/Library/Application Support/labsite
// Windows: %APPDATA%/labsite
func DefaultSessionDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "labsite"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "labsite"), nil
	default:
		// macOS and Windows: same as config dir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "labsite"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > LABSITE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveSessionDir returns the session directory following the precedence
// chain: flag > config.yaml session_dir > LABSITE_SESSION_DIR env >
// DefaultSessionDir().
func ResolveSessionDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvSessionDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultSessionDir()
}
