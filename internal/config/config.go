package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/indico/fieldkit/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "fieldkit.json"

	// DefaultLocale is used when no locale is configured.
	DefaultLocale = "en"

	// DefaultIndent is the indentation of pretty output.
	DefaultIndent = "  "

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "fieldkit"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// Config represents fieldkit.json.
type Config struct {
	// Locale is the preferred language, as a BCP 47 tag.
	Locale string `json:"locale,omitempty"`

	// Catalogs are extra YAML translation catalogs. Relative paths are
	// resolved against the config file's directory.
	Catalogs []string `json:"catalogs,omitempty"`

	// Render contains HTML output settings.
	Render RenderConfig `json:"render,omitempty"`

	// FileTypes contains settings of the add-file-type dialog.
	FileTypes FileTypesConfig `json:"filetypes,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Log contains logging settings.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	// Pretty indents the output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation unit for pretty output.
	Indent string `json:"indent,omitempty"`

	// Title is the page title of full-page output.
	Title string `json:"title,omitempty"`

	// StyleSheets are linked from full-page output.
	StyleSheets []string `json:"stylesheets,omitempty"`
}

// FileTypesConfig contains settings of the add-file-type dialog.
type FileTypesConfig struct {
	// Extensions are the suggested extensions.
	Extensions []string `json:"extensions,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled registers form metrics.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Locale: DefaultLocale,
		Render: RenderConfig{
			Indent: DefaultIndent,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: "text",
		},
	}
}

// Load reads fieldkit.json from the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// Find looks for fieldkit.json in dir and its parents. When none exists it
// returns the defaults with an empty Path.
func Find(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.New("F001").Wrap(err)
	}
	for {
		path := filepath.Join(abs, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return New(), nil
		}
		abs = parent
	}
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("F001").
				WithDetail("No fieldkit.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'fieldkit config --init' or create fieldkit.json manually")
		}
		return nil, errors.New("F002").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("F002").
			WithDetail("Failed to parse fieldkit.json: " + err.Error()).
			WithSuggestion("Check that fieldkit.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("F002").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("F002").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return errors.New("F003").
			WithDetail("locale " + c.Locale + " is not a valid language tag").
			WithSuggestion("Use a BCP 47 tag such as \"en\" or \"fr-CH\"")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return errors.New("F003").
			WithDetail("log.level must be one of debug, info, warn, error")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("F003").
			WithDetail("log.format must be text or json")
	}
	if strings.TrimSpace(c.Render.Indent) != "" {
		return errors.New("F003").
			WithDetail("render.indent may only contain whitespace")
	}
	return nil
}

// CatalogPaths returns Catalogs resolved against the config directory.
func (c *Config) CatalogPaths() []string {
	paths := make([]string, 0, len(c.Catalogs))
	for _, p := range c.Catalogs {
		if !filepath.IsAbs(p) && c.Dir() != "" {
			p = filepath.Join(c.Dir(), p)
		}
		paths = append(paths, p)
	}
	return paths
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}
