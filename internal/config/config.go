package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Backend names for the record store.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Profile identifies the service operator, returned by the /me endpoint.
type Profile struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Stack string `json:"stack,omitempty"`
}

// Config holds application configuration.
type Config struct {
	// Backend selects the record store: "json" (default) or "sqlite"
	Backend string `json:"backend,omitempty"`

	// MaxValueChars is the maximum character count accepted for a
	// submitted string value (runes, not bytes)
	MaxValueChars int `json:"max_value_chars"`

	// FactURL is the external fact endpoint used by /me
	FactURL string `json:"fact_url,omitempty"`

	// FactCacheTTLSeconds controls how long a fetched fact is reused
	FactCacheTTLSeconds int `json:"fact_cache_ttl_seconds,omitempty"`

	// Profile is the operator identity returned by /me
	Profile Profile `json:"profile,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Backend:             BackendJSON,
		MaxValueChars:       4096,
		FactURL:             "https://catfact.ninja/fact",
		FactCacheTTLSeconds: 300,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir().
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars when non-zero.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.Backend = overlay.Backend
	if result.Backend == "" {
		result.Backend = base.Backend
	}

	result.MaxValueChars = overlay.MaxValueChars
	if result.MaxValueChars == 0 {
		result.MaxValueChars = base.MaxValueChars
	}

	result.FactURL = overlay.FactURL
	if result.FactURL == "" {
		result.FactURL = base.FactURL
	}

	result.FactCacheTTLSeconds = overlay.FactCacheTTLSeconds
	if result.FactCacheTTLSeconds == 0 {
		result.FactCacheTTLSeconds = base.FactCacheTTLSeconds
	}

	result.Profile = overlay.Profile
	if result.Profile == (Profile{}) {
		result.Profile = base.Profile
	}

	result.DisabledTools = overlay.DisabledTools
	if len(result.DisabledTools) == 0 {
		result.DisabledTools = base.DisabledTools
	}

	return result
}
