package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Shopify ShopifyConfig
	SMTP    SMTPConfig
	Company CompanyConfig
	Tax     TaxConfig
}

type ServerConfig struct {
	Port          string
	Env           string
	SessionSecret string
}

type ShopifyConfig struct {
	Domain      string
	APIKey      string
	APISecret   string
	RedirectURL string
	AccessToken string
	APIVersion  string
	Scopes      string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
	FromAddr string
}

type CompanyConfig struct {
	Name     string
	Brand    string
	Address1 string
	Address2 string
	GSTIN    string
	Phone    string
	Email    string
}

type TaxConfig struct {
	SupplierState     string
	SupplierStateCode string
	RatePercent       float64
	HSNCode           string
}

// Load reads .env (if present) plus the process environment and returns the
// resolved configuration. Shopify credentials may be empty here; the fetch
// path reports them as a per-request configuration error instead.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// Not fatal: container deployments pass everything via environment.
		fmt.Printf("config: .env not loaded, relying on environment: %v\n", err)
	}

	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("SESSION_SECRET", "secret123")
	v.SetDefault("SHOPIFY_API_VERSION", "2024-10")
	v.SetDefault("SHOPIFY_SCOPES", "read_orders,write_orders")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "Elyta")
	v.SetDefault("SMTP_FROM_ADDR", "support@elyta.in")
	v.SetDefault("COMPANY_NAME", "NSKL Ventures LLP")
	v.SetDefault("COMPANY_BRAND", "ELYTA")
	v.SetDefault("COMPANY_ADDRESS1", "209, Shilpin Centre, G.D. Ambekar Marg,")
	v.SetDefault("COMPANY_ADDRESS2", "Wadala, Mumbai, 400301")
	v.SetDefault("COMPANY_GSTIN", "27AAWFN7036P1Z8")
	v.SetDefault("COMPANY_PHONE", "81690 96900")
	v.SetDefault("COMPANY_EMAIL", "support@elyta.in")
	v.SetDefault("TAX_SUPPLIER_STATE", "Maharashtra")
	v.SetDefault("TAX_SUPPLIER_STATE_CODE", "MH")
	v.SetDefault("TAX_RATE_PERCENT", 3.0)
	v.SetDefault("TAX_HSN_CODE", "71131130")

	// SHOP_NAME is the legacy alias for the storefront domain.
	_ = v.BindEnv("SHOPIFY_DOMAIN", "SHOPIFY_DOMAIN", "SHOP_NAME")

	cfg := &Config{
		Server: ServerConfig{
			Port:          v.GetString("PORT"),
			Env:           v.GetString("SERVER_ENV"),
			SessionSecret: v.GetString("SESSION_SECRET"),
		},
		Shopify: ShopifyConfig{
			Domain:      v.GetString("SHOPIFY_DOMAIN"),
			APIKey:      v.GetString("SHOPIFY_API_KEY"),
			APISecret:   v.GetString("SHOPIFY_API_SECRET"),
			RedirectURL: v.GetString("SHOPIFY_REDIRECT_URL"),
			AccessToken: v.GetString("SHOPIFY_ACCESS_TOKEN"),
			APIVersion:  v.GetString("SHOPIFY_API_VERSION"),
			Scopes:      v.GetString("SHOPIFY_SCOPES"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASS"),
			FromName: v.GetString("SMTP_FROM_NAME"),
			FromAddr: v.GetString("SMTP_FROM_ADDR"),
		},
		Company: CompanyConfig{
			Name:     v.GetString("COMPANY_NAME"),
			Brand:    v.GetString("COMPANY_BRAND"),
			Address1: v.GetString("COMPANY_ADDRESS1"),
			Address2: v.GetString("COMPANY_ADDRESS2"),
			GSTIN:    v.GetString("COMPANY_GSTIN"),
			Phone:    v.GetString("COMPANY_PHONE"),
			Email:    v.GetString("COMPANY_EMAIL"),
		},
		Tax: TaxConfig{
			SupplierState:     v.GetString("TAX_SUPPLIER_STATE"),
			SupplierStateCode: v.GetString("TAX_SUPPLIER_STATE_CODE"),
			RatePercent:       v.GetFloat64("TAX_RATE_PERCENT"),
			HSNCode:           v.GetString("TAX_HSN_CODE"),
		},
	}

	if cfg.Tax.RatePercent <= 0 {
		return nil, fmt.Errorf("config: TAX_RATE_PERCENT must be positive, got %v", cfg.Tax.RatePercent)
	}

	return cfg, nil
}
