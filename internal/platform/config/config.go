package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all process configuration. It is loaded once at startup and
// passed into components; nothing else reads the environment.
type Config struct {
	Addr string `env:"ADDR" envDefault:":3000"`

	MongoURL      string `env:"MONGO_URL,required,notEmpty"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"contacts_APIREST"`

	// APIKey authenticates calls to the phone validation service. Its absence
	// is not fatal at startup: only contact creation requires it.
	APIKey          string        `env:"API_KEY"`
	PhoneAPIURL     string        `env:"PHONE_API_URL" envDefault:"https://api.api-ninjas.com/v1/validatephone"`
	PhoneAPITimeout time.Duration `env:"PHONE_API_TIMEOUT" envDefault:"10s"`

	// RedisURL enables the phone validation cache when set.
	RedisURL      string        `env:"REDIS_URL"`
	PhoneCacheTTL time.Duration `env:"PHONE_CACHE_TTL" envDefault:"5m"`
}

// Load builds a Config from environment variables so main stays lean.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
