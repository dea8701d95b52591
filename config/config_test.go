package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wording/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "plain", cfg.Style)
	assert.Equal(t, "builtin", cfg.Names.Source)
	assert.Equal(t, quantity.DefaultPrecision, cfg.Precision)
	assert.NotEmpty(t, cfg.Language)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("WORDING_STYLE", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.Style)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("WORDING_LANGUAGE", "")
	t.Setenv("WORDING_STYLE", "")
	t.Setenv("WORDING_NAMES_DB", "")
	path := filepath.Join(t.TempDir(), "wording.yaml")
	data := `
language: fr-FR
style: latex
trace: info
precision: 2
names:
  source: sqlite
  database: /tmp/names.db
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", cfg.Language)
	assert.Equal(t, quantity.LaTeX, cfg.OutputStyle())
	assert.Equal(t, tracing.LevelInfo, cfg.TraceLevel())
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, "/tmp/names.db", cfg.Names.Database)
	assert.Equal(t, "€", cfg.CurrencySymbol())
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wording.yaml")
	require.NoError(t, os.WriteFile(path, []byte("style: [broken"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("WORDING_NAMES_DB selects sqlite", func(t *testing.T) {
		t.Setenv("WORDING_NAMES_DB", "names.db")
		cfg := &Config{Names: NamesConfig{Source: "builtin"}}
		cfg.applyEnvOverrides()
		assert.Equal(t, "sqlite", cfg.Names.Source)
		assert.Equal(t, "names.db", cfg.Names.Database)
	})

	t.Run("language and currency", func(t *testing.T) {
		t.Setenv("WORDING_LANGUAGE", "en-GB")
		t.Setenv("WORDING_CURRENCY", "CHF")
		cfg := &Config{Language: "fr-FR"}
		cfg.applyEnvOverrides()
		assert.Equal(t, "en-GB", cfg.Language)
		assert.Equal(t, "CHF", cfg.CurrencySymbol())
	})

	t.Run("empty variables do not override", func(t *testing.T) {
		t.Setenv("WORDING_STYLE", "")
		cfg := &Config{Style: "latex"}
		cfg.applyEnvOverrides()
		assert.Equal(t, "latex", cfg.Style)
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{Language: "en-US", Style: "plain", Trace: "error", Precision: 4}
	}
	cfg := base()
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Style = "html"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Trace = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Precision = -1
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Names.Source = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Names.Source = "ldap"
	assert.Error(t, cfg.Validate())
}

func TestCurrencyFromRegion(t *testing.T) {
	cfg := &Config{Language: "en-US"}
	assert.Equal(t, "$", cfg.CurrencySymbol())
	cfg = &Config{Language: "en-GB"}
	assert.Equal(t, "£", cfg.CurrencySymbol())
	cfg = &Config{Language: "de-CH"}
	assert.Equal(t, "CHF", cfg.CurrencySymbol())
	for lang, sym := range map[string]string{
		"pl-PL": "zł",
		"ko-KR": "₩",
		"ja-JP": "￥",
	} {
		cfg = &Config{Language: lang}
		assert.Equal(t, sym, cfg.CurrencySymbol(), lang)
	}
	cfg = &Config{Language: "ko-KR", Currency: "EUR"}
	assert.Equal(t, "EUR", cfg.CurrencySymbol())
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("WORDING_LANGUAGE", "")
	t.Setenv("WORDING_STYLE", "")
	t.Setenv("WORDING_NAMES_DB", "")
	path := filepath.Join(t.TempDir(), "sub", "wording.yaml")
	cfg := DefaultConfig()
	cfg.Language = "fr-FR"
	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
