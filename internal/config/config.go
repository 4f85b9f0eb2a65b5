// Package config loads service settings from the environment, an optional
// .env file and an optional careercortex.yaml.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment variables. The unprefixed names are
// still honoured for existing deployments.
const EnvPrefix = "CAREERCORTEX"

type Config struct {
	Port           string
	DatabaseURL    string
	RedisURL       string
	ChromePath     string
	PDFTimeout     time.Duration
	PDFCacheTTL    time.Duration
	RenderAttempts int
	RunMigrations  bool
}

var keys = []string{
	"port",
	"database_url",
	"redis_url",
	"chrome_path",
	"pdf_timeout",
	"pdf_cache_ttl",
	"render_attempts",
	"run_migrations",
}

// Load reads configuration. A missing .env or careercortex.yaml is not an
// error.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file, which must exist when
// path is set.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not loaded", "err", err)
	}

	v := viper.New()
	v.SetDefault("port", "3000")
	v.SetDefault("pdf_timeout", 60*time.Second)
	v.SetDefault("pdf_cache_ttl", time.Hour)
	v.SetDefault("render_attempts", 3)
	v.SetDefault("run_migrations", true)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("careercortex")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		slog.Info("using config file", "path", v.ConfigFileUsed())
	}

	for _, k := range keys {
		env := strings.ToUpper(k)
		if err := v.BindEnv(k, EnvPrefix+"_"+env, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	cfg := &Config{
		Port:           strings.TrimSpace(v.GetString("port")),
		DatabaseURL:    v.GetString("database_url"),
		RedisURL:       v.GetString("redis_url"),
		ChromePath:     v.GetString("chrome_path"),
		PDFTimeout:     v.GetDuration("pdf_timeout"),
		PDFCacheTTL:    v.GetDuration("pdf_cache_ttl"),
		RenderAttempts: v.GetInt("render_attempts"),
		RunMigrations:  v.GetBool("run_migrations"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: port must not be empty")
	}
	if c.RenderAttempts < 1 {
		return fmt.Errorf("config: render_attempts must be at least 1, got %d", c.RenderAttempts)
	}
	if c.PDFTimeout <= 0 {
		return fmt.Errorf("config: pdf_timeout must be positive, got %s", c.PDFTimeout)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
