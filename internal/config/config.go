package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Where ?modo=carpeta bundles are written by the HTTP API
	OutputPath string `mapstructure:"OUTPUT_PATH"`

	// QR symbol geometry (visual-QR spec values)
	QRBoxSize int `mapstructure:"QR_BOX_SIZE"`
	QRBorder  int `mapstructure:"QR_BORDER"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("OUTPUT_PATH", "/tmp/arcalinux/documentos")
	viper.SetDefault("QR_BOX_SIZE", 10)
	viper.SetDefault("QR_BORDER", 5)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
