package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// SiteConfig contains site-level metadata
type SiteConfig struct {
	Domain    string   `toml:"domain"`
	Books     []string `toml:"books"`
	AuthorURL string   `toml:"author-url"`
}

// DefaultSiteConfig returns a site config with defaults
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Domain: "",
		Books:  []string{},
	}
}

// BuildConfig contains generation settings
type BuildConfig struct {
	DataDir       string   `toml:"data-dir"`
	ChaptersDir   string   `toml:"chapters-dir"`
	Manifest      string   `toml:"manifest"`
	MaxParagraphs int      `toml:"max-paragraphs"`
	ExcludeTitles []string `toml:"exclude-titles"`
}

// DefaultBuildConfig returns a build config with defaults
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		DataDir:       "data",
		ChaptersDir:   "chapters",
		Manifest:      ".chapter-urls.txt",
		MaxParagraphs: 3,
		ExcludeTitles: []string{"About the Author"},
	}
}

// Config is the top-level configuration
type Config struct {
	Site  SiteConfig  `toml:"site"`
	Build BuildConfig `toml:"build"`
}

// NewDefaultConfig returns a config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Site:  DefaultSiteConfig(),
		Build: DefaultBuildConfig(),
	}
}

// LoadFromFile loads configuration from a site.toml file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadFromString(string(data))
}

// LoadFromString loads configuration from a TOML string
func LoadFromString(content string) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := toml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.UpdateFromEnv()
	return cfg, nil
}

// UpdateFromEnv updates config from environment variables
// Variables starting with CHAPTERPAGES_ are used
// CHAPTERPAGES_FOO_BAR -> foo-bar
// CHAPTERPAGES_FOO__BAR -> foo.bar
func (c *Config) UpdateFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "CHAPTERPAGES_") {
			continue
		}

		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimPrefix(parts[0], "CHAPTERPAGES_")
		value := parts[1]

		configKey := strings.ToLower(key)
		configKey = strings.ReplaceAll(configKey, "__", ".")
		configKey = strings.ReplaceAll(configKey, "_", "-")

		c.Set(configKey, value)
	}
}

// Set sets a configuration value using dot notation (e.g., "site.domain", "build.data-dir")
func (c *Config) Set(key, value string) {
	parts := strings.Split(key, ".")
	if len(parts) < 2 {
		return
	}

	switch parts[0] {
	case "site":
		c.setSiteValue(parts[1], value)
	case "build":
		c.setBuildValue(parts[1], value)
	}
}

func (c *Config) setSiteValue(key, value string) {
	switch strings.ToLower(key) {
	case "domain":
		c.Site.Domain = value
	case "books":
		c.Site.Books = splitList(value)
	case "author-url":
		c.Site.AuthorURL = value
	}
}

func (c *Config) setBuildValue(key, value string) {
	switch strings.ToLower(key) {
	case "data-dir":
		c.Build.DataDir = value
	case "chapters-dir":
		c.Build.ChaptersDir = value
	case "manifest":
		c.Build.Manifest = value
	case "max-paragraphs":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			c.Build.MaxParagraphs = n
		}
	case "exclude-titles":
		c.Build.ExcludeTitles = splitList(value)
	}
}

// Excluded reports whether a chapter title matches one of the reserved
// titles that are never generated.
func (c *Config) Excluded(title string) bool {
	for _, t := range c.Build.ExcludeTitles {
		if t == title {
			return true
		}
	}
	return false
}

func splitList(value string) []string {
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
