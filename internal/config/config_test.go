package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Env: "development"},
		Catalog: CatalogConfig{Products: DefaultCatalog()},
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateEmptyCatalog(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.Products = nil

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Products")
}

func TestValidateProductDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProductConfig)
		wantMsg string
	}{
		{"missing name", func(p *ProductConfig) { p.Name = "" }, "Name"},
		{"negative price", func(p *ProductConfig) { p.Price = -1 }, "Price"},
		{"negative quantity", func(p *ProductConfig) { p.Quantity = -1 }, "Quantity"},
		{"bad kind", func(p *ProductConfig) { p.Kind = "subscription" }, "Kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg.Catalog.Products[0])

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidatePromotionDefinitions(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.Products[0].Promotions[0].Type = "mystery_discount"
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Type"))

	cfg = validConfig()
	cfg.Catalog.Products[0].Promotions[0].Percent = 130
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Percent")
}
