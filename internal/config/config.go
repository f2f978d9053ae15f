package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const ProductionEnv = "production"

type Config struct {
	// Server
	Port int    `env:"PORT" envDefault:"5000"`
	Env  string `env:"ENV"`

	// NodeEnv is read when ENV is unset so existing deployments keep their mode flag.
	NodeEnv string `env:"NODE_ENV"`

	// Gemini AI
	GeminiAPIKey      string  `env:"GEMINI_API_KEY,required,notEmpty"`
	GeminiModel       string  `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiTemperature float32 `env:"GEMINI_TEMPERATURE" envDefault:"0.7"`

	// Logging
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the environment (and a .env file when present). A missing
// GEMINI_API_KEY is reported as an error; callers are expected to exit.
func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Env == "" {
		cfg.Env = cfg.NodeEnv
	}
	if cfg.Env == "" {
		cfg.Env = ProductionEnv
	}

	return cfg, nil
}

// IsProduction reports whether upstream error details must be withheld from clients.
func (c *Config) IsProduction() bool {
	return c.Env == ProductionEnv
}

func (c *Config) ListenAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
