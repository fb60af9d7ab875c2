package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Mongo     MongoConfig
	Billing   BillingConfig
	Redis     RedisConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type MongoConfig struct {
	URI              string
	Database         string
	CollectionPrefix string
	Timeout          time.Duration
}

// BillingConfig selects where per-user billing namespaces live
type BillingConfig struct {
	Store string // "mongo" or "memory"
}

type RedisConfig struct {
	Addr           string
	Username       string
	Password       string
	DB             int
	IdempotencyTTL time.Duration
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("APP_NAME", "medrep-crm")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "medrep")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "medrep")
	viper.SetDefault("MONGO_COLLECTION_PREFIX", "billing_")
	viper.SetDefault("MONGO_TIMEOUT_SECONDS", 10)
	viper.SetDefault("BILLING_STORE", "mongo")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("IDEMPOTENCY_TTL_HOURS", 24)
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		Mongo: MongoConfig{
			URI:              viper.GetString("MONGO_URI"),
			Database:         viper.GetString("MONGO_DATABASE"),
			CollectionPrefix: viper.GetString("MONGO_COLLECTION_PREFIX"),
			Timeout:          time.Duration(viper.GetInt("MONGO_TIMEOUT_SECONDS")) * time.Second,
		},
		Billing: BillingConfig{
			Store: viper.GetString("BILLING_STORE"),
		},
		Redis: RedisConfig{
			Addr:           viper.GetString("REDIS_ADDR"),
			Username:       viper.GetString("REDIS_USERNAME"),
			Password:       viper.GetString("REDIS_PASSWORD"),
			DB:             viper.GetInt("REDIS_DB"),
			IdempotencyTTL: time.Duration(viper.GetInt("IDEMPOTENCY_TTL_HOURS")) * time.Hour,
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// IdempotencyEnabled reports whether a Redis server is configured
func (c *RedisConfig) IdempotencyEnabled() bool {
	return c.Addr != ""
}
