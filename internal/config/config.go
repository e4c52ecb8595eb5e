// Package config handles global tempio configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/tempio/internal/dates"
	"github.com/aidanlsb/tempio/internal/slugs"
)

// Config represents the global tempio configuration.
type Config struct {
	// DefaultFormat is the output format used when --format is not given.
	DefaultFormat string `toml:"default_format"`

	// Timezone is the IANA zone used to render and parse wall-clock times.
	// Empty means the system local zone.
	Timezone string `toml:"timezone"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`

	// Phrases maps saved phrase names to phrases, e.g. sprint = "2 week ago".
	Phrases map[string]string `toml:"phrases"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for code blocks in the
	// grammar reference.
	CodeTheme string `toml:"code_theme"`
}

// Format returns the validated default output format.
func (c *Config) Format() (string, error) {
	return dates.NormalizeFormat(c.DefaultFormat)
}

// Location returns the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Timezone)
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// Phrase returns the saved phrase for name. Names are compared by slug, so
// "Last Sprint" and "last-sprint" are the same entry.
// An exact key wins; otherwise keys are tried in sorted order.
func (c *Config) Phrase(name string) (string, error) {
	if v, ok := c.Phrases[name]; ok {
		return v, nil
	}
	key := slugs.PhraseName(name)
	for _, k := range c.PhraseNames() {
		if slugs.PhraseName(k) == key {
			return c.Phrases[k], nil
		}
	}
	return "", fmt.Errorf("saved phrase '%s' not found in config", name)
}

// SetPhrase stores phrase under the slug of name and returns that slug.
func (c *Config) SetPhrase(name, phrase string) (string, error) {
	key := slugs.PhraseName(name)
	if key == "" {
		return "", fmt.Errorf("invalid phrase name %q", name)
	}
	c.RemovePhrase(key)
	if c.Phrases == nil {
		c.Phrases = make(map[string]string)
	}
	c.Phrases[key] = phrase
	return key, nil
}

// RemovePhrase deletes every entry whose name slugs to the same key.
// Reports whether anything was removed.
func (c *Config) RemovePhrase(name string) bool {
	key := slugs.PhraseName(name)
	removed := false
	for k := range c.Phrases {
		if slugs.PhraseName(k) == key {
			delete(c.Phrases, k)
			removed = true
		}
	}
	return removed
}

// PhraseNames returns saved phrase names in sorted order.
func (c *Config) PhraseNames() []string {
	names := make([]string, 0, len(c.Phrases))
	for name := range c.Phrases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, err := config.Format(); err != nil {
		return nil, fmt.Errorf("config %s: default_format: %w", path, err)
	}
	return &config, nil
}

// ResolveConfigPath resolves the effective config path from an optional override.
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return explicitConfigPath
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/tempio/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "tempio", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "tempio", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

const defaultConfig = `# tempio configuration

# Output format for 'tempio resolve': ms, rfc3339, date, human
# default_format = "rfc3339"

# IANA time zone used for display and for --now dates (defaults to local)
# timezone = "Europe/Berlin"

# Optional UI accent color (ANSI 0-255 or #RRGGBB)
# [ui]
# accent = "39"
# code_theme = "monokai"

# Saved phrases, resolved with 'tempio resolve --saved <name>'
# [phrases]
# last-sprint = "2 week ago"
`

// CreateDefault writes a commented default config to path unless a file
// already exists there. Reports whether a file was created.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
