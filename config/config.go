// Package config loads application settings from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET_KEY" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type ExchangeRate struct {
	ApiUrl      string        `envconfig:"API_URL" default:"https://api.exchangerate-api.com/v4/latest"`
	ApiKey      string        `envconfig:"API_KEY"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	MaxRetries  int           `envconfig:"MAX_RETRIES" default:"1"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"swiftflow"`
}

type AppConfig struct {
	Env       string       `envconfig:"APP_ENV" default:"development"`
	Host      string       `envconfig:"APP_HOST" default:"localhost"`
	Port      int          `envconfig:"APP_PORT" default:"5000"`
	DB        DB           `envconfig:"DATABASE"`
	Jwt       Jwt          `envconfig:"JWT"`
	Exchange  ExchangeRate `envconfig:"EXCHANGE_RATE"`
	RateLimit RateLimit    `envconfig:"RATE_LIMIT"`
	Log       Log          `envconfig:"LOG"`
}

func maskSecret(s string) string {
	if len(s) <= 6 {
		return "****"
	}
	return s[:2] + "****" + s[len(s)-4:]
}

// Load reads an optional .env file and then the process environment.
func Load(logger *slog.Logger, envFilePath ...string) (*AppConfig, error) {
	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logger.Warn("No .env file found, using system environment variables")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"env", cfg.Env,
		"port", cfg.Port,
		"jwt_expiry", cfg.Jwt.Expiry,
		"exchange_api_url", cfg.Exchange.ApiUrl,
		"exchange_api_key", maskSecret(cfg.Exchange.ApiKey),
		"exchange_http_timeout", cfg.Exchange.HTTPTimeout,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
	)
	return &cfg, nil
}
