package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Capability token signing.
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	TokenTTLHours int    `mapstructure:"TOKEN_TTL_HOURS"`

	// Supplier (OCTO) API defaults. The per-request connection may
	// override the endpoint; these are fallbacks.
	OctoEndpoint       string `mapstructure:"OCTO_ENDPOINT"`
	OctoEnv            string `mapstructure:"OCTO_ENV"`
	AcceptLanguage     string `mapstructure:"ACCEPT_LANGUAGE"`
	SupplierTimeoutSec int    `mapstructure:"SUPPLIER_TIMEOUT_SEC"`

	// Availability fan-out bound.
	AvailabilityConcurrency int `mapstructure:"AVAILABILITY_CONCURRENCY"`

	// Redis configuration (product catalogue cache).
	RedisAddr           string `mapstructure:"REDIS_ADDR"`
	RedisPassword       string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB        int    `mapstructure:"REDIS_CACHE_DB"`
	ProductCacheTTLMins int    `mapstructure:"PRODUCT_CACHE_TTL_MINS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("TOKEN_TTL_HOURS", 72)
	viper.SetDefault("OCTO_ENDPOINT", "https://api.ventrata.com/octo")
	viper.SetDefault("OCTO_ENV", "live")
	viper.SetDefault("ACCEPT_LANGUAGE", "en")
	viper.SetDefault("SUPPLIER_TIMEOUT_SEC", 30)
	viper.SetDefault("AVAILABILITY_CONCURRENCY", 3)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("PRODUCT_CACHE_TTL_MINS", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
