// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvMethod     = "ENTRES_METHOD"
	EnvThreshold  = "ENTRES_THRESHOLD"
	EnvSeed       = "ENTRES_SEED"
	EnvServerAddr = "ENTRES_SERVER_ADDR"
	EnvMaxCells   = "ENTRES_SERVER_MAX_CELLS"
	EnvLogLevel   = "ENTRES_LOG_LEVEL"
	EnvLogFormat  = "ENTRES_LOG_FORMAT"
	EnvTimeLimit  = "ENTRES_TIME_LIMIT"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides c with the ENTRES_* variables visible through lookup.
// Unset and empty variables are ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)

		return v, ok && v != ""
	}

	if v, ok := get(EnvMethod); ok {
		c.Method = v
	}
	if v, ok := get(EnvThreshold); ok {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvThreshold, v, ErrInvalid)
		}
		c.Threshold = &t
	}
	if v, ok := get(EnvSeed); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalid)
		}
		c.Seed = s
	}
	if v, ok := get(EnvTimeLimit); ok {
		c.TimeLimit = v
	}
	if v, ok := get(EnvServerAddr); ok {
		c.Server.Addr = v
	}
	if v, ok := get(EnvMaxCells); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvMaxCells, v, ErrInvalid)
		}
		c.Server.MaxCells = n
	}
	if v, ok := get(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := get(EnvLogFormat); ok {
		c.Log.Format = v
	}

	return nil
}

// LoadDotEnv exports the variables of a .env file into the process
// environment without overriding existing ones. A missing file is not an
// error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

// Resolve builds the effective configuration: Default(), then the config
// file at path (skipped when empty), then the .env file at dotenv, then
// the process environment. The result is validated.
func Resolve(path, dotenv string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.merge(path); err != nil {
			return nil, err
		}
	}
	if err := LoadDotEnv(dotenv); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
