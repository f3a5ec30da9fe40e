// Package config loads and saves mpint's runtime-configurable settings:
// the knobs spec.md actually leaves open for an implementation to pick at
// runtime, plus the operational defaults for the CLI, console and HTTP
// service. spec.md §6 is explicit that limb width, ExpMod's maximum
// window size, GenPrime's maximum bit length, and FillRandom's maximum
// byte count are environmental configuration fixed "at build time", not
// runtime knobs — those stay as package constants in mpint
// (mpint.MaxPrimeBits, mpint.MaxRandomBytes, the unexported
// maxWindowSize) and are deliberately absent from this struct.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds mpint's runtime-configurable settings.
type Config struct {
	// Math settings bound the core algorithms without weakening their
	// documented minimums.
	Math struct {
		MillerRabinExtra int  `toml:"miller_rabin_extra"` // extra rounds run atop the size-selected minimum, never fewer; see service.NewServiceFromConfig
		SafePrimeDefault bool `toml:"safe_prime_default"` // GenPrime's default safe-prime mode when a caller doesn't override it
	} `toml:"math"`

	// CLI/console settings.
	Console struct {
		DefaultRadix int `toml:"default_radix"` // default of the CLI -radix flag; the console's literal parsing does not read it
		HistorySize  int `toml:"history_size"`
	} `toml:"console"`

	// Service settings.
	Service struct {
		Port             int  `toml:"port"`
		EnableRequestLog bool `toml:"enable_request_log"` // gates api.Server's per-request access log
	} `toml:"service"`
}

// DefaultConfig returns a Config populated so the program runs
// configuration-free.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Math.MillerRabinExtra = 0
	cfg.Math.SafePrimeDefault = false

	cfg.Console.DefaultRadix = 10
	cfg.Console.HistorySize = 1000

	cfg.Service.Port = 8484
	cfg.Service.EnableRequestLog = true

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "mpint")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "mpint")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file
// is not an error: DefaultConfig is returned as-is.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
