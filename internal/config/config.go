package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the coffee shop system
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Storefront StorefrontConfig `yaml:"storefront"`
	Checkout   CheckoutConfig   `yaml:"checkout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// RedisConfig holds the connection settings for the shared snapshot store
type RedisConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	DB   int    `yaml:"db"`
}

// StorefrontConfig holds settings for the storefront-facing pieces
type StorefrontConfig struct {
	APIBaseURL      string `yaml:"api_base_url"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
}

// CheckoutConfig holds the checkout flow timing and pricing knobs
type CheckoutConfig struct {
	ProcessingDelaySeconds   int     `yaml:"processing_delay_seconds"`
	ConfirmationDelaySeconds int     `yaml:"confirmation_delay_seconds"`
	DeliveryFee              float64 `yaml:"delivery_fee"`
}

// Load reads configuration from a YAML file. Values from the environment
// (optionally loaded from a .env file) override the file for credentials
// and ports, so deployments never bake secrets into config.yaml.
func Load(filename string) (*Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnvOverrides()

	if config.Storefront.CacheTTLMinutes <= 0 {
		config.Storefront.CacheTTLMinutes = 5
	}

	return config, nil
}

// applyEnvOverrides replaces file values with environment values when set.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v := os.Getenv("POSTGRES_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("POSTGRES_DB"); v != "" {
		c.Database.Database = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Redis.Port = port
		}
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.Storefront.APIBaseURL = v
	}
}

// DatabaseURL returns a PostgreSQL connection URL
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Database)
}

// RedisAddr returns the host:port address for the redis snapshot store
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// CacheTTL returns the product cache time-to-live
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Storefront.CacheTTLMinutes) * time.Minute
}

// ProcessingDelay returns the simulated checkout processing delay
func (c *Config) ProcessingDelay() time.Duration {
	return time.Duration(c.Checkout.ProcessingDelaySeconds) * time.Second
}

// ConfirmationDelay returns how long the confirmation screen is shown
func (c *Config) ConfirmationDelay() time.Duration {
	return time.Duration(c.Checkout.ConfirmationDelaySeconds) * time.Second
}
