package config

import "strings"

// Output formats understood by the presenters
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config provides read-only access to application configuration.
// The app layer never sees where the values came from beyond ConfigSource.
type Config interface {
	Home() string        // Base directory holding setting.json (VERVE_HOME)
	StderrLevel() string // Stderr log level
	Format() string      // Report format: text, json or yaml
	Corpus() string      // Corpus file, directory or glob; empty means the bundled entries
	Markdown() bool      // Treat entry files as markdown regardless of extension
	Seed() (int64, bool) // Fixed filler seed, if any

	ConfigSource() string // "json" or "default"
	SettingPath() string  // Path to setting.json if one was read
}

// AppConfig is the concrete Config
type AppConfig struct {
	home        string
	stderrLevel string
	format      string
	corpus      string
	markdown    bool
	seed        int64
	hasSeed     bool

	configSource string
	settingPath  string
}

// Home returns the settings directory
func (c *AppConfig) Home() string { return c.home }

// StderrLevel returns the stderr log level
func (c *AppConfig) StderrLevel() string { return c.stderrLevel }

// Format returns the report format
func (c *AppConfig) Format() string { return c.format }

// Corpus returns the configured corpus location
func (c *AppConfig) Corpus() string { return c.corpus }

// Markdown reports whether entry files are always parsed as markdown
func (c *AppConfig) Markdown() bool { return c.markdown }

// Seed returns the fixed filler seed and whether one is set
func (c *AppConfig) Seed() (int64, bool) { return c.seed, c.hasSeed }

// ConfigSource returns where the configuration was loaded from
func (c *AppConfig) ConfigSource() string { return c.configSource }

// SettingPath returns the path of the loaded setting.json
func (c *AppConfig) SettingPath() string { return c.settingPath }

// NewAppConfig creates an AppConfig. seed is nil when fillers should vary
// between runs.
func NewAppConfig(
	home, stderrLevel, format, corpus string,
	markdown bool, seed *int64,
	configSource, settingPath string,
) *AppConfig {
	c := &AppConfig{
		home:         home,
		stderrLevel:  stderrLevel,
		format:       strings.ToLower(format),
		corpus:       corpus,
		markdown:     markdown,
		configSource: configSource,
		settingPath:  settingPath,
	}
	if seed != nil {
		c.seed, c.hasSeed = *seed, true
	}
	return c
}

// DefaultHome is used when VERVE_HOME is unset
const DefaultHome = ".verve"

// NewDefaultConfig returns the configuration used when nothing is set
func NewDefaultConfig() *AppConfig {
	return NewAppConfig(DefaultHome, "warn", FormatText, "", false, nil, "default", "")
}

// IsValidFormat reports whether format names a known presenter
func IsValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}
