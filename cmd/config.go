package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"orders/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	DBAutoMigrate bool
	LogLevel      string

	ProductAPIURL     string
	ProductAPITimeout time.Duration

	PaymentAPIEnabled bool
	PaymentAPIURL     string
	PaymentAPITimeout time.Duration

	OTLPEndpoint string
	ServiceName  string
}

// LoadConfig reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "orders")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PRODUCT_API_URL", "http://localhost:8081")
	v.SetDefault("PRODUCT_API_TIMEOUT", "5s")
	v.SetDefault("PAYMENT_API_ENABLED", false)
	v.SetDefault("PAYMENT_API_URL", "http://localhost:8082")
	v.SetDefault("PAYMENT_API_TIMEOUT", "10s")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("SERVICE_NAME", "orders")

	productTimeout, err := time.ParseDuration(v.GetString("PRODUCT_API_TIMEOUT"))
	if err != nil {
		return Config{}, fmt.Errorf("PRODUCT_API_TIMEOUT: %w", err)
	}
	paymentTimeout, err := time.ParseDuration(v.GetString("PAYMENT_API_TIMEOUT"))
	if err != nil {
		return Config{}, fmt.Errorf("PAYMENT_API_TIMEOUT: %w", err)
	}

	return Config{
		HTTPPort:          v.GetString("HTTP_PORT"),
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBUser:            v.GetString("DB_USER"),
		DBPassword:        v.GetString("DB_PASSWORD"),
		DBName:            v.GetString("DB_NAME"),
		DBSslMode:         v.GetString("DB_SSLMODE"),
		DBAutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		ProductAPIURL:     v.GetString("PRODUCT_API_URL"),
		ProductAPITimeout: productTimeout,
		PaymentAPIEnabled: v.GetBool("PAYMENT_API_ENABLED"),
		PaymentAPIURL:     v.GetString("PAYMENT_API_URL"),
		PaymentAPITimeout: paymentTimeout,
		OTLPEndpoint:      v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:       v.GetString("SERVICE_NAME"),
	}, nil
}

func (c Config) Database() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SslMode:  c.DBSslMode,
	}
}

// TracingEnabled reports whether spans are exported.
func (c Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}
