package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const DefaultDataDir = "~/.local/share/spellsheet"

// DataDir returns the data directory from SPELLSHEET_DATA,
// falling back to DefaultDataDir. A leading ~ is expanded.
func DataDir() string {
	if env := os.Getenv("SPELLSHEET_DATA"); env != "" {
		return ExpandHome(env)
	}
	return ExpandHome(DefaultDataDir)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Config is the root application configuration
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Selection SelectionConfig `yaml:"selection"`
	Seed      SeedConfig      `yaml:"seed"`
	Log       LogConfig       `yaml:"log"`
}

// StoreConfig locates the durable store
type StoreConfig struct {
	// Path of the SQLite file. Empty means <data dir>/spellsheet.db.
	Path string `yaml:"path" env:"SPELLSHEET_STORE_PATH"`
}

// SelectionConfig controls random picking and the usage feedback loop
type SelectionConfig struct {
	Policy string `yaml:"policy" env:"SPELLSHEET_POLICY" env-default:"least-used" validate:"oneof=least-used uniform"`
	// cleanenv fills zero values from env-default, so switches default to false.
	DisableUsageTracking bool   `yaml:"disable_usage_tracking" env:"SPELLSHEET_DISABLE_USAGE_TRACKING"`
	Seed                 uint64 `yaml:"seed"                   env:"SPELLSHEET_RANDOM_SEED"`
	Locale               string `yaml:"locale"                 env:"SPELLSHEET_LOCALE" env-default:"en" validate:"required,bcp47_language_tag"`
}

// TrackUsage reports whether saved sheets feed usage counts back into the library
func (c SelectionConfig) TrackUsage() bool {
	return !c.DisableUsageTracking
}

// SeedConfig controls first-run seeding of an empty library
type SeedConfig struct {
	Disabled bool          `yaml:"disabled" env:"SPELLSHEET_SEED_DISABLED"`
	URL      string        `yaml:"url"      env:"SPELLSHEET_SEED_URL"      validate:"omitempty,url"`
	Timeout  time.Duration `yaml:"timeout"  env:"SPELLSHEET_SEED_TIMEOUT"  env-default:"5s" validate:"gt=0"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"  env:"SPELLSHEET_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"SPELLSHEET_LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
}

// StorePath returns the configured store path or the default in the data dir
func (c Config) StorePath() string {
	if c.Store.Path != "" {
		return ExpandHome(c.Store.Path)
	}
	return filepath.Join(DataDir(), "spellsheet.db")
}
