package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting the service reads from the
// environment. SUPABASE_URL, SUPABASE_SERVICE_KEY and JWT_SECRET have no
// sane defaults and must be provided.
type Config struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	SupabaseURL        string        `env:"SUPABASE_URL,required"`
	SupabaseServiceKey string        `env:"SUPABASE_SERVICE_KEY,required"`
	JWTSecret          string        `env:"JWT_SECRET,required"`
	StorageBucket      string        `env:"STORAGE_BUCKET" envDefault:"files"`
	AdminTokenTTL      time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"12h"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
