package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	Shop   ShopConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ShopConfig holds shop-level behavior settings.
type ShopConfig struct {
	// Timezone used for business-day boundaries in reports and the
	// daily admin cleanup. Orders are stored in UTC.
	Timezone string `mapstructure:"timezone"`
	Name     string `mapstructure:"name"`
}

// Load reads configuration from environment variables with the CHAYEN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CHAYEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "chayen")
	v.SetDefault("db.password", "chayen_secret")
	v.SetDefault("db.name", "chayen_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "chayen")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Shop defaults
	v.SetDefault("shop.timezone", "Asia/Bangkok")
	v.SetDefault("shop.name", "chayen")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "CHAYEN_SERVER_PORT",
		"server.read_timeout":  "CHAYEN_SERVER_READ_TIMEOUT",
		"server.write_timeout": "CHAYEN_SERVER_WRITE_TIMEOUT",
		"server.environment":   "CHAYEN_SERVER_ENVIRONMENT",
		"db.host":              "CHAYEN_DB_HOST",
		"db.port":              "CHAYEN_DB_PORT",
		"db.user":              "CHAYEN_DB_USER",
		"db.password":          "CHAYEN_DB_PASSWORD",
		"db.name":              "CHAYEN_DB_NAME",
		"db.sslmode":           "CHAYEN_DB_SSLMODE",
		"db.max_open":          "CHAYEN_DB_MAX_OPEN",
		"db.max_idle":          "CHAYEN_DB_MAX_IDLE",
		"jwt.secret":           "CHAYEN_JWT_SECRET",
		"jwt.access_expiry":    "CHAYEN_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "CHAYEN_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "CHAYEN_JWT_ISSUER",
		"log.level":            "CHAYEN_LOG_LEVEL",
		"log.format":           "CHAYEN_LOG_FORMAT",
		"cors.allowed_origins": "CHAYEN_CORS_ALLOWED_ORIGINS",
		"shop.timezone":        "CHAYEN_SHOP_TIMEZONE",
		"shop.name":            "CHAYEN_SHOP_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CHAYEN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CHAYEN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Shop = ShopConfig{
		Timezone: v.GetString("shop.timezone"),
		Name:     v.GetString("shop.name"),
	}

	return cfg, nil
}
