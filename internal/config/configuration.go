package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// WebServer Configuration
	WebServerPort int    `mapstructure:"WEBSERVER_PORT" validate:"min=1,max=65535"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	// Option catalog file; empty uses the built-in catalog
	CatalogPath string `mapstructure:"CATALOG_PATH"`

	// View store
	ViewIdleTTL time.Duration `mapstructure:"VIEW_IDLE_TTL" validate:"min=1s"`
	MaxViews    int           `mapstructure:"MAX_VIEWS" validate:"min=1"`

	LogLevel string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(v *viper.Viper, c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		if tag := typ.Field(i).Tag.Get("mapstructure"); tag != "" {
			_ = v.BindEnv(tag)
		}
	}
}

func LoadConfig(ctx context.Context) (*Config, error) {
	v := viper.New()
	bindEnv(v, Config{})
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("WEBSERVER_PORT", 8080)
	v.SetDefault("VIEW_IDLE_TTL", "30m")
	v.SetDefault("MAX_VIEWS", 1000)
	v.SetDefault("LOG_LEVEL", "info")

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	slog.InfoContext(ctx, "Loaded configuration",
		"port", cfg.WebServerPort,
		"catalog_path", cfg.CatalogPath,
		"view_idle_ttl", cfg.ViewIdleTTL,
		"max_views", cfg.MaxViews,
		"session_secret_set", cfg.SessionSecret != "")

	return &cfg, nil
}

// SlogLevel maps LogLevel onto slog.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
