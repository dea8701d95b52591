// Package config holds the settings of the wording tools: output language and
// style, currency, tracing, and where person names come from.
//
// Settings are read from a YAML file and may be overridden by environment
// variables:
//
//	WORDING_LANGUAGE   BCP 47 language tag, e.g. "fr-FR"
//	WORDING_CURRENCY   currency symbol or ISO code
//	WORDING_STYLE      "plain" or "latex"
//	WORDING_TRACE      "error", "info" or "debug"
//	WORDING_NAMES_DB   path of a sqlite names database; selects names.source "sqlite"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wording/quantity"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// FallbackLanguage is used if the environment does not tell the user's
// locale.
const FallbackLanguage = "en-US"

// Config is the configuration of the wording tools.
type Config struct {
	Language  string      `yaml:"language"`
	Currency  string      `yaml:"currency,omitempty"`
	Style     string      `yaml:"style"`
	Trace     string      `yaml:"trace"`
	Precision int         `yaml:"precision"`
	Names     NamesConfig `yaml:"names"`
}

// NamesConfig selects the source of person names.
type NamesConfig struct {
	Source   string `yaml:"source"`             // "builtin" or "sqlite"
	Database string `yaml:"database,omitempty"` // path of the sqlite database
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Language:  DetectLanguage(),
		Style:     "plain",
		Trace:     "error",
		Precision: quantity.DefaultPrecision,
		Names: NamesConfig{
			Source: "builtin",
		},
	}
}

// DetectLanguage returns the user's language from the environment, or
// FallbackLanguage.
func DetectLanguage() string {
	userLocale, err := jj.DetectIETF()
	if err != nil || userLocale == "" {
		return FallbackLanguage
	}
	if _, err := language.Parse(userLocale); err != nil {
		return FallbackLanguage
	}
	return userLocale
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in either case.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if lang := os.Getenv("WORDING_LANGUAGE"); lang != "" {
		c.Language = lang
	}
	if cur := os.Getenv("WORDING_CURRENCY"); cur != "" {
		c.Currency = cur
	}
	if style := os.Getenv("WORDING_STYLE"); style != "" {
		c.Style = style
	}
	if trace := os.Getenv("WORDING_TRACE"); trace != "" {
		c.Trace = trace
	}
	if db := os.Getenv("WORDING_NAMES_DB"); db != "" {
		c.Names.Source = "sqlite"
		c.Names.Database = db
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("invalid language %q: %w", c.Language, err)
	}
	if _, err := quantity.ParseStyle(c.Style); err != nil {
		return err
	}
	if _, err := ParseTraceLevel(c.Trace); err != nil {
		return err
	}
	if c.Precision < 0 || c.Precision > 12 {
		return fmt.Errorf("precision must be within 0…12, is %d", c.Precision)
	}
	switch c.Names.Source {
	case "", "builtin":
	case "sqlite":
		if c.Names.Database == "" {
			return fmt.Errorf("names source sqlite requires a database path")
		}
	default:
		return fmt.Errorf("unknown names source %q", c.Names.Source)
	}
	return nil
}

// LanguageTag returns the configured language, or the fallback language if
// it does not parse.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.MustParse(FallbackLanguage)
	}
	return tag
}

// OutputStyle returns the configured output style.
func (c *Config) OutputStyle() quantity.Style {
	style, _ := quantity.ParseStyle(c.Style)
	return style
}

// CurrencySymbol returns the configured currency or, if none is configured,
// the symbol of the currency of the language's region.
func (c *Config) CurrencySymbol() string {
	if c.Currency != "" {
		return c.Currency
	}
	region, _ := c.LanguageTag().Region()
	unit, ok := currency.FromRegion(region)
	if !ok {
		return "€"
	}
	return message.NewPrinter(c.LanguageTag()).Sprint(currency.Symbol(unit))
}

// TraceLevel returns the configured trace level.
func (c *Config) TraceLevel() tracing.TraceLevel {
	level, _ := ParseTraceLevel(c.Trace)
	return level
}

// ParseTraceLevel reads "error", "info" or "debug". An empty string is
// "error".
func ParseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}
