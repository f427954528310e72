package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCredentials(t *testing.T) {
	t.Setenv("CLIENT_ID", "123456")
	t.Setenv("SELLER_TOKEN", "abcdef")

	creds := GetCredentials()
	assert.Equal(t, "123456", creds.ClientID)
	assert.Equal(t, "abcdef", creds.SellerToken)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "https://api-seller.ozon.ru", cfg.Ozon.BaseURL)
	assert.Equal(t, 1000, cfg.Ozon.OzonValues.PageLimit)
	assert.Equal(t, 100, cfg.Ozon.OzonValues.StockBatchSize)
	assert.Equal(t, 900, cfg.Ozon.OzonValues.PriceBatchSize)
	assert.Equal(t, 1000, cfg.Ozon.OzonValues.PriceUploadBatchSize)
	assert.Equal(t, 17, cfg.Supplier.HeaderOffset)
	assert.Equal(t, "Код", cfg.Supplier.CodeColumn)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlText := `
ozon:
  base_url: http://localhost:9090
  default_values:
    page-limit: 50
supplier:
  archive_url: http://localhost:9091/ostatki.zip
  header_offset: 3
`
	require.NoError(t, os.WriteFile(path, []byte(yamlText), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090", cfg.Ozon.BaseURL)
	assert.Equal(t, 50, cfg.Ozon.OzonValues.PageLimit)
	assert.Equal(t, "http://localhost:9091/ostatki.zip", cfg.Supplier.ArchiveURL)
	assert.Equal(t, 3, cfg.Supplier.HeaderOffset)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
