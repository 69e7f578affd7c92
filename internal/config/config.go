package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Directory configuration. Provider selects where assigned people come
	// from: "board" talks to the board HTTP API, "github" lists org members.
	DirectoryProvider string `mapstructure:"DIRECTORY_PROVIDER"`
	DefaultBoardID    string `mapstructure:"DEFAULT_BOARD_ID"`
	BoardAPIBaseURL   string `mapstructure:"BOARD_API_BASE_URL"`
	BoardAPIToken     string `mapstructure:"BOARD_API_TOKEN"`
	GitHubOrg         string `mapstructure:"GITHUB_ORG"`
	GitHubToken       string `mapstructure:"GITHUB_TOKEN"`

	// Presence configuration
	SettingsKey         string `mapstructure:"SETTINGS_KEY"`
	RefreshIntervalSec  int    `mapstructure:"REFRESH_INTERVAL_SEC"`
	TimezoneCatalogPath string `mapstructure:"TIMEZONE_CATALOG_PATH"`

	// Notification configuration
	NotifyWebhookURL string `mapstructure:"NOTIFY_WEBHOOK_URL"`
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
	viper.SetDefault("DB_NAME", "workclock")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Directory defaults
	viper.SetDefault("DIRECTORY_PROVIDER", "board")
	viper.SetDefault("DEFAULT_BOARD_ID", "")
	viper.SetDefault("BOARD_API_BASE_URL", "")
	viper.SetDefault("BOARD_API_TOKEN", "")
	viper.SetDefault("GITHUB_ORG", "")
	viper.SetDefault("GITHUB_TOKEN", "")

	// Presence defaults
	viper.SetDefault("SETTINGS_KEY", "workclock:user:settings")
	viper.SetDefault("REFRESH_INTERVAL_SEC", 60)
	viper.SetDefault("TIMEZONE_CATALOG_PATH", "config/timezones.yaml")

	// Notification defaults
	viper.SetDefault("NOTIFY_WEBHOOK_URL", "")
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
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.DirectoryProvider {
	case "board", "github", "":
	default:
		return fmt.Errorf("unknown DIRECTORY_PROVIDER %q", config.DirectoryProvider)
	}

	if config.RefreshIntervalSec < 0 {
		return fmt.Errorf("REFRESH_INTERVAL_SEC must not be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
