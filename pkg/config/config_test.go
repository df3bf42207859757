package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Davincible/seedxor/pkg/crypto/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, wordlist.Auto, cfg.Language())
	assert.Equal(t, 2, cfg.Defaults.Shares)
	assert.Equal(t, 24, cfg.Defaults.Words)
	assert.True(t, cfg.Defaults.Validate)
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, DefaultConfig().Defaults, cfg.Defaults)
	assert.Equal(t, DefaultConfig().UI, cfg.UI)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"defaults": {"language": "japanese", "shares": 4, "words": 12}, "ui": {"use_color": false}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, wordlist.Japanese, cfg.Language())
	assert.Equal(t, 4, cfg.Defaults.Shares)
	assert.Equal(t, 12, cfg.Defaults.Words)
	assert.False(t, cfg.UI.UseColor)
	// Unset keys keep their defaults.
	assert.True(t, cfg.Defaults.Validate)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
}

func TestLoadFileEnvOverride(t *testing.T) {
	t.Setenv("SEEDXOR_DEFAULTS_SHARES", "5")
	t.Setenv("SEEDXOR_DEFAULTS_SHORT", "true")

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Defaults.Shares)
	assert.True(t, cfg.Defaults.Short)
}

func TestLoadFileInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{"defaults": `},
		{"bad language", `{"defaults": {"language": "klingon"}}`},
		{"bad shares", `{"defaults": {"shares": 0}}`},
		{"too many shares", `{"defaults": {"shares": 256}}`},
		{"bad words", `{"defaults": {"words": 13}}`},
		{"bad log level", `{"ui": {"log_level": "loud"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0600))

			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("SEEDXOR_CONFIG", "/tmp/custom.json")
	path, err := getConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.json", path)

	t.Setenv("SEEDXOR_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err = getConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "seedxor", "config.json"), path)
}

func TestJSON(t *testing.T) {
	data, err := DefaultConfig().JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"shares": 2`)
	assert.NotContains(t, string(data), "Path")
}
