package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if PORTFOLIO_CONFIG is set
//  3. env (prefix PORTFOLIO_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PORTFOLIO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, WrapLoadError(err)
		}
	}

	// Environment variables: PORTFOLIO_ADDR, PORTFOLIO_RESUME_DIR, ...
	// Map env keys like PORTFOLIO_RESUME_DIR -> resume_dir (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PORTFOLIO_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "portfolio_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, WrapLoadError(err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, WrapLoadError(err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.ContactTransport {
	case TransportSimulated, TransportSMTP:
	default:
		return fmt.Errorf("%w: unknown contact transport %q", ErrInvalidConfig, c.ContactTransport)
	}
	if c.HeaderHeight < 0 || c.ScrollOffset < 0 {
		return fmt.Errorf("%w: scroll geometry must not be negative", ErrInvalidConfig)
	}
	if c.ScrollSettleMS <= 0 {
		return fmt.Errorf("%w: scroll_settle_ms must be positive", ErrInvalidConfig)
	}
	return nil
}
