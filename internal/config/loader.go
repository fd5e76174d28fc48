package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if ROTOBLOGS_CONFIG is set
//  3. env (prefix ROTOBLOGS_)
//
// A plain PORT variable (the convention of most hosting platforms) is
// honored when no explicit address was configured.
func Load(_ context.Context) (*Config, error) {
	// Pick up a local .env file when present; real env vars win.
	_ = godotenv.Load()

	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("ROTOBLOGS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ROTOBLOGS_ADDR, ROTOBLOGS_BLOGS_FILE, ...
	// Map env keys like ROTOBLOGS_BLOGS_FILE -> blogs_file (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ROTOBLOGS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "rotoblogs_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// PORT applies only when neither file nor env set an address.
	if port := os.Getenv("PORT"); port != "" && !k.Exists("addr") {
		cfg.Addr = ":" + port
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.BlogsFile == "" {
		return nil, fmt.Errorf("%w: blogs_file must not be empty", ErrInvalidConfig)
	}
	return &cfg, nil
}
