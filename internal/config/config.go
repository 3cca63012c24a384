// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Cart     CartConfig
	Shop     ShopConfig
	Contact  ContactConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Tracing  TracingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// RedisConfig contains Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// CatalogConfig selects where the product catalog is loaded from at startup
type CatalogConfig struct {
	Source string // "static" or "postgres"
	Seed   bool
}

// CartConfig contains cart persistence configuration
type CartConfig struct {
	Store   string // "redis" or "memory"
	KeyName string
	TTL     time.Duration
}

// ShopConfig contains storefront business constants
type ShopConfig struct {
	Name           string
	CurrencySymbol string
	ShippingFee    int64
	PaymentMethod  string
	MessagingHost  string
	OrderRecipient string
	BestSellers    int
}

// ContactConfig contains contact relay configuration
type ContactConfig struct {
	Endpoint         string
	Timeout          time.Duration
	BreakerFailures  uint32
	BreakerOpenDelay time.Duration
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimitPerMinute int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
	SecureCookies      bool
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// TracingConfig contains OpenTelemetry configuration
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	PrettyPrint bool
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Hooked Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:            getEnv("APP_PORT", "8080"),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			MaxBodyBytes:    getEnvAsInt64("SERVER_MAX_BODY_BYTES", 1<<20),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			Name:         getEnv("DB_NAME", "hooked_store"),
			User:         getEnv("DB_USER", "hooked"),
			Password:     getEnv("DB_PASSWORD", "hooked_password"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 300*time.Second),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", "static"),
			Seed:   getEnvAsBool("CATALOG_SEED", true),
		},
		Cart: CartConfig{
			Store:   getEnv("CART_STORE", "redis"),
			KeyName: getEnv("CART_KEY", "hooked_cart"),
			TTL:     getEnvAsDuration("CART_TTL", 30*24*time.Hour),
		},
		Shop: ShopConfig{
			Name:           getEnv("SHOP_NAME", "Hooked"),
			CurrencySymbol: getEnv("SHOP_CURRENCY_SYMBOL", "₦"),
			ShippingFee:    getEnvAsInt64("SHOP_SHIPPING_FEE", 2500),
			PaymentMethod:  getEnv("SHOP_PAYMENT_METHOD", "Bank Transfer"),
			MessagingHost:  getEnv("SHOP_MESSAGING_HOST", "wa.me"),
			OrderRecipient: getEnv("SHOP_ORDER_RECIPIENT", "2348000000000"),
			BestSellers:    getEnvAsInt("SHOP_BEST_SELLERS", 4),
		},
		Contact: ContactConfig{
			Endpoint:         getEnv("CONTACT_ENDPOINT", "https://formsubmit.co/ajax/inbox@example.com"),
			Timeout:          getEnvAsDuration("CONTACT_TIMEOUT", 0),
			BreakerFailures:  uint32(getEnvAsInt("CONTACT_BREAKER_FAILURES", 5)),
			BreakerOpenDelay: getEnvAsDuration("CONTACT_BREAKER_OPEN_DELAY", 30*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
			SecureCookies:      getEnvAsBool("SECURE_COOKIES", false),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("TRACING_ENABLED", false),
			ServiceName: getEnv("TRACING_SERVICE_NAME", "hooked-storefront"),
			PrettyPrint: getEnvAsBool("TRACING_PRETTY_PRINT", false),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	switch c.Catalog.Source {
	case "static":
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required when CATALOG_SOURCE=postgres")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required when CATALOG_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be static or postgres, got %q", c.Catalog.Source)
	}

	switch c.Cart.Store {
	case "memory":
	case "redis":
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required when CART_STORE=redis")
		}
	default:
		return fmt.Errorf("CART_STORE must be redis or memory, got %q", c.Cart.Store)
	}

	if c.Cart.KeyName == "" {
		return fmt.Errorf("CART_KEY is required")
	}
	if c.Shop.ShippingFee < 0 {
		return fmt.Errorf("SHOP_SHIPPING_FEE cannot be negative")
	}
	if c.Shop.MessagingHost == "" || c.Shop.OrderRecipient == "" {
		return fmt.Errorf("SHOP_MESSAGING_HOST and SHOP_ORDER_RECIPIENT are required")
	}
	if c.Contact.Endpoint == "" {
		return fmt.Errorf("CONTACT_ENDPOINT is required")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// UsesRedis reports whether any component needs a Redis connection
func (c *Config) UsesRedis() bool {
	return c.Cart.Store == "redis"
}

// UsesPostgres reports whether the catalog is loaded from Postgres
func (c *Config) UsesPostgres() bool {
	return c.Catalog.Source == "postgres"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
