package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Dataset DatasetConfig
	Docs    DocsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `validate:"required"`
	Env  string `validate:"required"`
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Origins []string `validate:"required,min=1"`
}

// DatasetConfig controls the size of the generated dataset.
type DatasetConfig struct {
	Properties   int `validate:"gte=1"`
	Parties      int `validate:"gte=2"`
	Brokers      int `validate:"gte=1"`
	Transactions int `validate:"gte=0"`
}

// DocsConfig holds documentation serving configuration.
type DocsConfig struct {
	// SpecPath is the location of the static OpenAPI specification file.
	SpecPath string `validate:"required"`
}

// Load reads configuration from environment variables.
// It uses viper to read values and provides sensible defaults for running
// the mock server locally with no environment at all.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DATASET_PROPERTIES", 200)
	v.SetDefault("DATASET_PARTIES", 400)
	v.SetDefault("DATASET_BROKERS", 100)
	v.SetDefault("DATASET_TRANSACTIONS", 1000)
	v.SetDefault("OPENAPI_SPEC_PATH", "api/openapi.yaml")

	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		CORS: CORSConfig{
			Origins: parseOrigins(v.GetString("CORS_ORIGINS")),
		},
		Dataset: DatasetConfig{
			Properties:   v.GetInt("DATASET_PROPERTIES"),
			Parties:      v.GetInt("DATASET_PARTIES"),
			Brokers:      v.GetInt("DATASET_BROKERS"),
			Transactions: v.GetInt("DATASET_TRANSACTIONS"),
		},
		Docs: DocsConfig{
			SpecPath: v.GetString("OPENAPI_SPEC_PATH"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// parseOrigins splits a comma-separated string of origins into a slice.
func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
