package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/radix"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10, cfg.From)
	assert.Equal(t, 2, cfg.To)
	assert.Equal(t, 20, cfg.Precision)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
from = 16
to = 36
precision = 5

[log]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.From)
	assert.Equal(t, 36, cfg.To)
	assert.Equal(t, 5, cfg.Precision)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Partial(t *testing.T) {
	path := writeFile(t, "to = 8\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultFrom, cfg.From)
	assert.Equal(t, 8, cfg.To)
	assert.Equal(t, DefaultPrecision, cfg.Precision)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"syntax":         "from = ",
		"base too small": "from = 1\n",
		"base too large": "to = 37\n",
		"precision":      "precision = -1\n",
		"log level":      "[log]\nlevel = \"loud\"\n",
		"log format":     "[log]\nformat = \"xml\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_RangeError(t *testing.T) {
	_, err := Load(writeFile(t, "to = 40\n"))
	var rerr *radix.RangeError
	require.True(t, errors.As(err, &rerr), "got %v", err)
	assert.Equal(t, 40, rerr.Base)
}

func TestLoad_MissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.From = 8
	cfg.Precision = 3
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
