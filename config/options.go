// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/entres/clustering"
)

// ClusteringMethod resolves Method through the clustering registry.
func (c *Config) ClusteringMethod() (clustering.Method, error) {
	m, err := clustering.ParseMethod(c.Method)
	if err != nil {
		return "", fmt.Errorf("method: %w: %w", ErrInvalid, err)
	}

	return m, nil
}

// StrategyOptions translates the set fields into clustering options; unset
// fields keep the method defaults. logger may be nil.
func (c *Config) StrategyOptions(logger *slog.Logger) ([]clustering.Option, error) {
	var opts []clustering.Option
	if c.Threshold != nil {
		opts = append(opts, clustering.WithThreshold(*c.Threshold))
	}
	if c.PreferredSide != "" {
		side, err := clustering.ParseSide(c.PreferredSide)
		if err != nil {
			return nil, fmt.Errorf("preferred_side: %w: %w", ErrInvalid, err)
		}
		opts = append(opts, clustering.WithPreferredSide(side))
	}
	if c.MoveBudget < 0 {
		return nil, fmt.Errorf("move_budget %d: %w", c.MoveBudget, ErrInvalid)
	}
	if c.MoveBudget > 0 {
		opts = append(opts, clustering.WithMoveBudget(c.MoveBudget))
	}
	if c.TimeLimit != "" {
		d, err := c.timeLimit()
		if err != nil {
			return nil, err
		}
		opts = append(opts, clustering.WithTimeLimit(d))
	}
	if c.Seed != 0 {
		opts = append(opts, clustering.WithSeed(c.Seed))
	}
	if logger != nil {
		opts = append(opts, clustering.WithLogger(logger))
	}

	return opts, nil
}

// Strategy builds the configured strategy.
func (c *Config) Strategy(logger *slog.Logger) (clustering.Strategy, error) {
	m, err := c.ClusteringMethod()
	if err != nil {
		return nil, err
	}
	opts, err := c.StrategyOptions(logger)
	if err != nil {
		return nil, err
	}

	return clustering.New(m, opts...)
}

func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", l.Level, ErrInvalid)
	}

	return lvl, nil
}

// NewLogger builds a text or JSON slog logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := l.level()
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(l.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("log.format %q: %w", l.Format, ErrInvalid)
	}
}
