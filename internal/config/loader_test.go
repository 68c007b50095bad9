package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".aictx"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConventionVersion, cfg.ConventionVersion)
	assert.Equal(t, []string{"cursor", "copilot"}, cfg.Adapters)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_FromFile(t *testing.T) {
	aictxDir := t.TempDir()
	configYAML := `convention_version: "1.2.0"
adapters:
  - cursor
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(aictxDir, "config.yaml"), []byte(configYAML), 0o644))

	cfg, err := Load(aictxDir)
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", cfg.ConventionVersion)
	assert.Equal(t, []string{"cursor"}, cfg.Adapters)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset fields still default")
}

func TestLoad_EnvOverride(t *testing.T) {
	aictxDir := t.TempDir()
	configYAML := `convention_version: "1.2.0"
logging:
  level: info
`
	require.NoError(t, os.WriteFile(filepath.Join(aictxDir, "config.yaml"), []byte(configYAML), 0o644))

	t.Setenv("AICTX_CONVENTION_VERSION", "2.0.0")
	t.Setenv("AICTX_LOGGING_LEVEL", "warn")

	cfg, err := Load(aictxDir)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.ConventionVersion)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	aictxDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(aictxDir, "config.yaml"), []byte("adapters: [unclosed"), 0o644))

	_, err := Load(aictxDir)
	assert.Error(t, err)
}

func TestHasAdapter(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.HasAdapter("cursor"))
	assert.True(t, cfg.HasAdapter("copilot"))
	assert.False(t, cfg.HasAdapter("zed"))
}
