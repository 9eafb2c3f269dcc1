package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Env string
}

// CatalogConfig lists the products the store opens with.
type CatalogConfig struct {
	Products []ProductConfig `mapstructure:"products" validate:"required,min=1,dive"`
}

// ProductConfig is one initial product definition.
type ProductConfig struct {
	Name        string            `mapstructure:"name" validate:"required"`
	Price       float64           `mapstructure:"price" validate:"gte=0"`
	Quantity    int               `mapstructure:"quantity" validate:"gte=0"`
	Kind        string            `mapstructure:"kind" validate:"omitempty,oneof=standard non_stocked limited"`
	MaxPerOrder int               `mapstructure:"max_per_order" validate:"gte=0"`
	Promotions  []PromotionConfig `mapstructure:"promotions" validate:"omitempty,dive"`
}

// PromotionConfig is one promotion attached to a product definition.
type PromotionConfig struct {
	Name    string  `mapstructure:"name" validate:"required"`
	Type    string  `mapstructure:"type" validate:"required,oneof=percent_discount second_half_price third_one_free"`
	Percent float64 `mapstructure:"percent" validate:"gte=0,lte=100"`
}

func Load() (*Config, error) {
	viper.SetConfigName("store")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("server.env", "development")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Catalog.Products) == 0 {
		cfg.Catalog.Products = DefaultCatalog()
	}

	return cfg, nil
}

// DefaultCatalog is the catalog used when no config file supplies one.
func DefaultCatalog() []ProductConfig {
	return []ProductConfig{
		{
			Name:     "MacBook Air M2",
			Price:    1450,
			Quantity: 100,
			Promotions: []PromotionConfig{
				{Name: "30% off!", Type: "percent_discount", Percent: 30},
			},
		},
		{
			Name:     "Bose QuietComfort Earbuds",
			Price:    250,
			Quantity: 500,
			Promotions: []PromotionConfig{
				{Name: "Second Half price!", Type: "second_half_price"},
			},
		},
		{
			Name:     "Google Pixel 7",
			Price:    500,
			Quantity: 250,
			Promotions: []PromotionConfig{
				{Name: "Third One Free!", Type: "third_one_free"},
			},
		},
		{
			Name:  "Windows License",
			Price: 125,
			Kind:  "non_stocked",
			Promotions: []PromotionConfig{
				{Name: "30% off!", Type: "percent_discount", Percent: 30},
			},
		},
		{
			Name:        "Shipping",
			Price:       10,
			Quantity:    250,
			Kind:        "limited",
			MaxPerOrder: 1,
		},
	}
}

// Validator instance
var validate = validator.New()

// Validate checks the loaded configuration against its validation tags.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Namespace(), getErrorMessage(e)))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
}

func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "must have at least " + e.Param() + " entries"
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "value must be greater than or equal to " + e.Param()
	case "lte":
		return "value must be less than or equal to " + e.Param()
	default:
		return "invalid value"
	}
}
