// SPDX-License-Identifier: MIT

// Package config loads entres run settings from YAML or TOML files, a
// .env file and ENTRES_* environment variables, and turns them into
// clustering options and a slog logger.
//
// Precedence, lowest first: Default(), the config file, the .env file,
// the process environment. A .env entry never overrides a variable that
// is already set in the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/entres/clustering"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates a config file extension other than
	// .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("config: unsupported config file format")

	// ErrInvalid indicates a value that does not validate.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the full run configuration.
type Config struct {
	Method        string   `yaml:"method" toml:"method" json:"method"`
	Threshold     *float64 `yaml:"threshold,omitempty" toml:"threshold,omitempty" json:"threshold,omitempty"`
	PreferredSide string   `yaml:"preferred_side,omitempty" toml:"preferred_side,omitempty" json:"preferred_side,omitempty"`
	MoveBudget    int      `yaml:"move_budget,omitempty" toml:"move_budget,omitempty" json:"move_budget,omitempty"`
	TimeLimit     string   `yaml:"time_limit,omitempty" toml:"time_limit,omitempty" json:"time_limit,omitempty"`
	Seed          int64    `yaml:"seed,omitempty" toml:"seed,omitempty" json:"seed,omitempty"`

	Log    LogConfig    `yaml:"log" toml:"log" json:"log"`
	Server ServerConfig `yaml:"server" toml:"server" json:"server"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" json:"level"`    // debug, info, warn, error
	Format string `yaml:"format" toml:"format" json:"format"` // text or json
}

// ServerConfig configures the HTTP surface.
//
// MaxEntities bounds dataset1_size + dataset2_size of one request.
// MaxCells bounds the cost matrix the assignment methods allocate:
// |D1|·|D2| for row-column, max(|D1|,|D2|)² for best-assignment. Zero
// means the default.
type ServerConfig struct {
	Addr        string `yaml:"addr" toml:"addr" json:"addr"`
	MaxEntities int    `yaml:"max_entities,omitempty" toml:"max_entities,omitempty" json:"max_entities,omitempty"`
	MaxCells    int64  `yaml:"max_cells,omitempty" toml:"max_cells,omitempty" json:"max_cells,omitempty"`
}

// Limits returns MaxEntities and MaxCells with zero replaced by the
// defaults.
func (s ServerConfig) Limits() (entities int, cells int64) {
	entities, cells = s.MaxEntities, s.MaxCells
	if entities == 0 {
		entities = DefaultMaxEntities
	}
	if cells == 0 {
		cells = DefaultMaxCells
	}

	return entities, cells
}

// Defaults.
const (
	DefaultMethod     = clustering.MethodConnectedComponents
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultServerAddr = ":8080"

	// DefaultMaxEntities caps the entities of one HTTP request.
	DefaultMaxEntities = 1_000_000

	// DefaultMaxCells caps matrix cells per request: 16M float64, 128 MiB.
	DefaultMaxCells int64 = 16_000_000
)

// Default returns the built-in configuration. The threshold is left unset
// so that each method keeps its own default.
func Default() *Config {
	return &Config{
		Method: string(DefaultMethod),
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Server: ServerConfig{Addr: DefaultServerAddr},
	}
}

// Load reads path over Default(), choosing YAML or TOML by extension, and
// validates the result. Environment variables are not consulted; see
// Resolve.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.merge(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if err = toml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}

	return nil
}

// Validate checks every field that is later parsed.
func (c *Config) Validate() error {
	if _, err := clustering.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("method: %w: %w", ErrInvalid, err)
	}
	if c.Threshold != nil && (math.IsNaN(*c.Threshold) || math.IsInf(*c.Threshold, 0)) {
		return fmt.Errorf("threshold %v: %w", *c.Threshold, ErrInvalid)
	}
	if c.PreferredSide != "" {
		if _, err := clustering.ParseSide(c.PreferredSide); err != nil {
			return fmt.Errorf("preferred_side: %w: %w", ErrInvalid, err)
		}
	}
	if c.MoveBudget < 0 {
		return fmt.Errorf("move_budget %d: %w", c.MoveBudget, ErrInvalid)
	}
	if _, err := c.timeLimit(); err != nil {
		return err
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}
	if c.Server.MaxEntities < 0 {
		return fmt.Errorf("server.max_entities %d: %w", c.Server.MaxEntities, ErrInvalid)
	}
	if c.Server.MaxCells < 0 {
		return fmt.Errorf("server.max_cells %d: %w", c.Server.MaxCells, ErrInvalid)
	}

	return nil
}

// timeLimit parses TimeLimit. Callers treat an empty TimeLimit as "keep
// the method default"; "0s" disables the limit.
func (c *Config) timeLimit() (time.Duration, error) {
	if c.TimeLimit == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.TimeLimit)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("time_limit %q: %w", c.TimeLimit, ErrInvalid)
	}

	return d, nil
}
