// Package config loads server settings from the environment.
//
// A .env file in the working directory is applied first (development only;
// real environment variables win), then variables are parsed into Config.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the server.
type Config struct {
	Port         string `env:"PORT" envDefault:"5175"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty    bool   `env:"LOG_PRETTY" envDefault:"false"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	SessionSecret  string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"24h"`
	CookieSecure   bool          `env:"COOKIE_SECURE" envDefault:"false"`

	HistoryDSN string `env:"HISTORY_DSN" envDefault:"file::memory:?cache=shared"`
	DailySalt  string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	WordsEasyFile   string `env:"WORDS_EASY_FILE"`
	WordsMediumFile string `env:"WORDS_MEDIUM_FILE"`
	WordsHardFile   string `env:"WORDS_HARD_FILE"`

	AdminUser         string `env:"ADMIN_USER" envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

// Load applies .env (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads Config from the current environment only.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.SessionSecret == "" {
		return errors.New("config: SESSION_SECRET must not be empty")
	}
	if c.SessionTTL <= 0 || c.SessionIdleTTL <= 0 {
		return errors.New("config: session TTLs must be positive")
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string { return ":" + c.Port }
