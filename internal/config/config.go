package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration (relational fallback / audit store)
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Google Sheets configuration (primary document backend)
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	TakeoffTemplateID     string `mapstructure:"GOOGLE_TAKEOFF_TEMPLATE_ID"`
	WorkbookFolderID      string `mapstructure:"GOOGLE_WORKBOOK_FOLDER_ID"`

	// Upstream timeouts, seconds. Reads are cheap; generation writes a full
	// grid in one batch and gets a longer budget.
	SheetsReadTimeoutSec  int `mapstructure:"SHEETS_READ_TIMEOUT_SEC"`
	SheetsWriteTimeoutSec int `mapstructure:"SHEETS_WRITE_TIMEOUT_SEC"`
	GenerateTimeoutSec    int `mapstructure:"GENERATE_TIMEOUT_SEC"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "estimating_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Sheets defaults
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "service-account.json")
	viper.SetDefault("GOOGLE_TAKEOFF_TEMPLATE_ID", "")
	viper.SetDefault("GOOGLE_WORKBOOK_FOLDER_ID", "")

	// Timeouts
	viper.SetDefault("SHEETS_READ_TIMEOUT_SEC", 15)
	viper.SetDefault("SHEETS_WRITE_TIMEOUT_SEC", 15)
	viper.SetDefault("GENERATE_TIMEOUT_SEC", 30)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.SheetsReadTimeoutSec <= 0 || config.SheetsWriteTimeoutSec <= 0 || config.GenerateTimeoutSec <= 0 {
		return fmt.Errorf("upstream timeouts must be positive")
	}

	return nil
}

// SheetsReadTimeout returns the bound for document-service reads
func (c *Config) SheetsReadTimeout() time.Duration {
	return time.Duration(c.SheetsReadTimeoutSec) * time.Second
}

// SheetsWriteTimeout returns the bound for document-service writes
func (c *Config) SheetsWriteTimeout() time.Duration {
	return time.Duration(c.SheetsWriteTimeoutSec) * time.Second
}

// GenerateTimeout returns the bound for full grid generation
func (c *Config) GenerateTimeout() time.Duration {
	return time.Duration(c.GenerateTimeoutSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
