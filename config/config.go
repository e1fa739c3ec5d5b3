package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Name    string
	GinMode string
}

type DatabaseConfig struct {
	Driver      string
	URL         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type LogConfig struct {
	Level string
}

type HTTPConfig struct {
	Port            string
	CORSOrigin      string
	EditorJWTSecret string
	ShutdownTimeout time.Duration
}

type TelemetryConfig struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
			URL:         v.GetString("DB_URL"),
			MaxOpen:     v.GetInt("DB_MAX_OPEN"),
			MaxIdle:     v.GetInt("DB_MAX_IDLE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Port:            v.GetString("PORT"),
			CORSOrigin:      v.GetString("CORS_ORIGIN"),
			EditorJWTSecret: v.GetString("EDITOR_JWT_SECRET"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Telemetry: TelemetryConfig{
			Enabled:      v.GetBool("OTEL_ENABLED"),
			OtlpEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			SampleRatio:  v.GetFloat64("OTEL_SAMPLE_RATIO"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "booking-app")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_MAX_OPEN", 20)
	v.SetDefault("DB_MAX_IDLE", 5)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SAMPLE_RATIO", 1.0)
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return errors.New("missing required environment variable: DB_URL")
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return errors.New("DB_DRIVER must be one of: postgres, sqlite")
	}
	return nil
}
