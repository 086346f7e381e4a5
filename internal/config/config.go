package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port     int    `envconfig:"PORT" default:"5000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Env      string `envconfig:"ENV" default:"production"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	ClientURL          string `envconfig:"CLIENT_URL" default:"http://localhost:3000"`
	GoogleClientID     string `envconfig:"GOOGLE_CLIENT_ID" required:"true"`
	GoogleClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET" required:"true"`
	GoogleCallbackURL  string `envconfig:"GOOGLE_CALLBACK_URL" default:"http://localhost:5000/auth/google/callback"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"168h"`
}

// Load reads configuration from a local .env file (if present) and the
// environment into a Config struct.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Development reports whether error detail may be exposed in responses.
func (c *Config) Development() bool {
	return c.Env == "development"
}
