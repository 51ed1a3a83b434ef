package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Auth     AuthConfig
	Store    StoreConfig
	AWS      AWSConfig
	Mail     MailConfig
	Alert    AlertConfig
	Payments PaymentsConfig
}

type ServerConfig struct {
	Port int
}

type LogConfig struct {
	Level string
}

// AuthConfig holds the two shared secrets. An empty secret denies every request it guards.
type AuthConfig struct {
	AdminPassword string
	CronSecret    string
}

type StoreConfig struct {
	Driver string
	Table  string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type MailConfig struct {
	User       string
	Pass       string
	Host       string
	Port       int
	AdminEmail string
}

// Enabled reports whether SMTP credentials are present.
func (m MailConfig) Enabled() bool {
	return m.User != "" && m.Pass != ""
}

type AlertConfig struct {
	// Schedule is a cron spec for the in-process scan; empty disables it.
	Schedule string
	Location *time.Location
}

type PaymentsConfig struct {
	AccessToken string
	Mock        bool
}

// Load reads configuration from the environment, with an optional config file
// (./config.yaml, or the path in SIEN_CONFIG) underneath it.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("CRON_SECRET", "")
	v.SetDefault("STORE_DRIVER", StoreDriverDynamoDB)
	v.SetDefault("KV_TABLE", "sien_kv")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("EMAIL_USER", "")
	v.SetDefault("EMAIL_PASS", "")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ALERT_SCHEDULE", "")
	v.SetDefault("ALERT_TIMEZONE", "UTC")
	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", "")

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	driver := strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER")))
	if driver != StoreDriverDynamoDB && driver != StoreDriverMemory {
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", driver)
	}

	loc, err := time.LoadLocation(v.GetString("ALERT_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALERT_TIMEZONE: %w", err)
	}

	adminEmail := v.GetString("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = v.GetString("EMAIL_USER")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			AdminPassword: v.GetString("ADMIN_PASSWORD"),
			CronSecret:    v.GetString("CRON_SECRET"),
		},
		Store: StoreConfig{
			Driver: driver,
			Table:  v.GetString("KV_TABLE"),
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Mail: MailConfig{
			User:       v.GetString("EMAIL_USER"),
			Pass:       v.GetString("EMAIL_PASS"),
			Host:       v.GetString("SMTP_HOST"),
			Port:       v.GetInt("SMTP_PORT"),
			AdminEmail: adminEmail,
		},
		Alert: AlertConfig{
			Schedule: strings.TrimSpace(v.GetString("ALERT_SCHEDULE")),
			Location: loc,
		},
		Payments: PaymentsConfig{
			AccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:        isTruthy(v.GetString("PAYMENT_GATEWAY_MOCK")),
		},
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper) error {
	if path := v.GetString("SIEN_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
