package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "2024-10", cfg.Shopify.APIVersion)
	assert.Equal(t, "read_orders,write_orders", cfg.Shopify.Scopes)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "Elyta", cfg.SMTP.FromName)
	assert.Equal(t, "Maharashtra", cfg.Tax.SupplierState)
	assert.Equal(t, "MH", cfg.Tax.SupplierStateCode)
	assert.Equal(t, 3.0, cfg.Tax.RatePercent)
	assert.Equal(t, "71131130", cfg.Tax.HSNCode)
	assert.Equal(t, "NSKL Ventures LLP", cfg.Company.Name)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SHOPIFY_DOMAIN", "demo-shop.myshopify.com")
	t.Setenv("SHOPIFY_API_KEY", "key123")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "shpat_test")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("TAX_SUPPLIER_STATE", "Karnataka")
	t.Setenv("TAX_SUPPLIER_STATE_CODE", "KA")
	t.Setenv("TAX_RATE_PERCENT", "18")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "demo-shop.myshopify.com", cfg.Shopify.Domain)
	assert.Equal(t, "key123", cfg.Shopify.APIKey)
	assert.Equal(t, "shpat_test", cfg.Shopify.AccessToken)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "Karnataka", cfg.Tax.SupplierState)
	assert.Equal(t, 18.0, cfg.Tax.RatePercent)
}

func TestLoadShopNameAlias(t *testing.T) {
	t.Setenv("SHOP_NAME", "legacy-shop.myshopify.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "legacy-shop.myshopify.com", cfg.Shopify.Domain)
}

func TestLoadRejectsNonPositiveRate(t *testing.T) {
	t.Setenv("TAX_RATE_PERCENT", "-1")

	_, err := Load()
	assert.Error(t, err)
}
