package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	Shopify     ShopifyConfig
	App         AppConfig
	LogLevel    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ShopifyConfig holds Admin API settings. Store credentials live in the stores
// table; the CLI tools read SHOPIFY_SHOP_DOMAIN / SHOPIFY_ACCESS_TOKEN directly.
type ShopifyConfig struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
}

// AppConfig holds publisher behavior settings
type AppConfig struct {
	// FulfillmentServiceLocationName is the single location used for inventory
	// assignment when a store has registered a fulfillment service.
	FulfillmentServiceLocationName string
	// StorefrontUserAgent is sent on remote product/catalog fetches.
	StorefrontUserAgent string
	// FetchTimeout bounds each remote storefront fetch.
	FetchTimeout time.Duration
	// ResyncQueueSize bounds the fire-and-forget catalog resync queue.
	ResyncQueueSize int
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	fetchTimeout, err := time.ParseDuration(getEnvOrViper("STOREFRONT_FETCH_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STOREFRONT_FETCH_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "productpublisher"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
		Shopify: ShopifyConfig{
			ShopDomain:  strings.TrimSpace(getEnvOrViper("SHOPIFY_SHOP_DOMAIN", "")),
			AccessToken: strings.TrimSpace(getEnvOrViper("SHOPIFY_ACCESS_TOKEN", "")),
			APIVersion:  getEnvOrViper("SHOPIFY_API_VERSION", "2024-01"),
		},
		App: AppConfig{
			FulfillmentServiceLocationName: getEnvOrViper("FULFILLMENT_SERVICE_LOCATION_NAME", "My Fulfillment Service"),
			StorefrontUserAgent:            getEnvOrViper("STOREFRONT_USER_AGENT", "MyAgent/1.0"),
			FetchTimeout:                   fetchTimeout,
			ResyncQueueSize:                viper.GetInt("RESYNC_QUEUE_SIZE"),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}
	if cfg.App.ResyncQueueSize <= 0 {
		cfg.App.ResyncQueueSize = 64
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
