package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tcvariant/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("should fall back to defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, models.NewDefaultConfig(), cfg)
	})

	t.Run("should read a yaml config file", func(t *testing.T) {
		path := writeConfigFile(t, `
debug: true
api:
  output: from-file.tsv
  concurrency: 3
ensembl:
  url: http://localhost:5000/vep/human/hgvs
  requestTimeout: 45s
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.True(t, cfg.Debug)
		assert.Equal(t, "from-file.tsv", cfg.Api.Output)
		assert.Equal(t, 3, cfg.Api.Concurrency)
		assert.Equal(t, "http://localhost:5000/vep/human/hgvs", cfg.Ensembl.Url)
		assert.Equal(t, 45*time.Second, cfg.Ensembl.RequestTimeout)
	})

	t.Run("should keep defaults for keys absent from the file", func(t *testing.T) {
		path := writeConfigFile(t, "api:\n  output: partial.tsv\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "partial.tsv", cfg.Api.Output)
		assert.Equal(t, models.DefaultEnsemblUrl, cfg.Ensembl.Url)
		assert.Equal(t, models.DefaultRequestTimeout, cfg.Ensembl.RequestTimeout)
	})

	t.Run("should accept an empty config file", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfigFile(t, ""))
		require.NoError(t, err)
		assert.Equal(t, models.NewDefaultConfig(), cfg)
	})

	t.Run("should let the environment override the file", func(t *testing.T) {
		path := writeConfigFile(t, "ensembl:\n  url: http://from-file\n")
		t.Setenv("TCVARIANT_ENSEMBL_URL", "http://from-env")
		t.Setenv("TCVARIANT_ENSEMBL_REQUEST_TIMEOUT", "2s")
		t.Setenv("TCVARIANT_OUTPUT", "from-env.tsv")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "http://from-env", cfg.Ensembl.Url)
		assert.Equal(t, 2*time.Second, cfg.Ensembl.RequestTimeout)
		assert.Equal(t, "from-env.tsv", cfg.Api.Output)
	})

	t.Run("should clamp concurrency to at least one", func(t *testing.T) {
		t.Setenv("TCVARIANT_CONCURRENCY", "0")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Api.Concurrency)
	})

	t.Run("should reject unknown keys and missing files", func(t *testing.T) {
		_, err := LoadConfig(writeConfigFile(t, "ensembl:\n  uri: http://typo\n"))
		assert.Error(t, err)

		_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Error(t, err)
	})

	t.Run("should reject malformed environment values", func(t *testing.T) {
		t.Setenv("TCVARIANT_ENSEMBL_REQUEST_TIMEOUT", "soon")

		_, err := LoadConfig("")
		assert.Error(t, err)
	})
}

func TestCreateEnsemblHttpClient(t *testing.T) {
	cfg := models.NewDefaultConfig()
	cfg.Ensembl.RequestTimeout = 7 * time.Second

	client := CreateEnsemblHttpClient(cfg)
	assert.Equal(t, 7*time.Second, client.Timeout)
	assert.NotNil(t, client.Transport)
}
