// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/entres/clustering"
	"github.com/katalvlaran/entres/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func env(vars map[string]string) config.LookupFunc {
	return func(k string) (string, bool) {
		v, ok := vars[k]

		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "connected-components", cfg.Method)
	assert.Nil(t, cfg.Threshold)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "entres.yaml", `
method: best-assignment
threshold: 0.35
move_budget: 5000
time_limit: 3s
seed: 17
log:
  level: debug
  format: json
server:
  addr: 127.0.0.1:9000
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "best-assignment", cfg.Method)
	require.NotNil(t, cfg.Threshold)
	assert.Equal(t, 0.35, *cfg.Threshold)
	assert.Equal(t, 5000, cfg.MoveBudget)
	assert.Equal(t, "3s", cfg.TimeLimit)
	assert.Equal(t, int64(17), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)

	s, err := cfg.Strategy(nil)
	require.NoError(t, err)
	assert.Equal(t, "threshold=0.35, move_budget=5000, time_limit=3s, seed=17", s.Config())
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "entres.toml", `
method = "kiraly"
preferred_side = "dataset2"

[log]
level = "warn"

[server]
addr = ":7070"
max_cells = 4000
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "kiraly", cfg.Method)
	assert.Nil(t, cfg.Threshold)
	assert.Equal(t, "text", cfg.Log.Format) // default kept
	assert.Equal(t, ":7070", cfg.Server.Addr)
	entities, cells := cfg.Server.Limits()
	assert.Equal(t, config.DefaultMaxEntities, entities) // default kept
	assert.Equal(t, int64(4000), cells)

	s, err := cfg.Strategy(nil)
	require.NoError(t, err)
	assert.Equal(t, clustering.MethodKiraly, s.Method())
	assert.Equal(t, "threshold=0.1, preferred_side=dataset2", s.Config())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeFile(t, "entres.ini", "method=cc"))
	require.ErrorIs(t, err, config.ErrUnknownFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	for name, body := range map[string]string{
		"method.yaml": "method: louvain\n",
		"side.yaml":   "preferred_side: both\n",
		"budget.yaml": "move_budget: -3\n",
		"time.yaml":   "time_limit: soon\n",
		"level.yaml":  "log:\n  level: loud\n",
		"format.yaml": "log:\n  format: xml\n",
		"cells.yaml":  "server:\n  max_cells: -1\n",
		"ents.yaml":   "server:\n  max_entities: -5\n",
	} {
		_, err = config.Load(writeFile(t, name, body))
		require.ErrorIs(t, err, config.ErrInvalid, name)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	err := cfg.ApplyEnv(env(map[string]string{
		config.EnvMethod:     "RowColumn",
		config.EnvThreshold:  "0.42",
		config.EnvSeed:       "9",
		config.EnvServerAddr: ":9999",
		config.EnvMaxCells:   "250000",
		config.EnvLogLevel:   "error",
		config.EnvTimeLimit:  "",
	}))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "RowColumn", cfg.Method)
	assert.Equal(t, 0.42, *cfg.Threshold)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, int64(250000), cfg.Server.MaxCells)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Empty(t, cfg.TimeLimit)

	m, err := cfg.ClusteringMethod()
	require.NoError(t, err)
	assert.Equal(t, clustering.MethodRowColumn, m)

	require.ErrorIs(t, config.Default().ApplyEnv(env(map[string]string{config.EnvThreshold: "high"})), config.ErrInvalid)
	require.ErrorIs(t, config.Default().ApplyEnv(env(map[string]string{config.EnvSeed: "1.5"})), config.ErrInvalid)
	require.ErrorIs(t, config.Default().ApplyEnv(env(map[string]string{config.EnvMaxCells: "lots"})), config.ErrInvalid)
}

func TestServerLimits_Defaults(t *testing.T) {
	entities, cells := config.Default().Server.Limits()
	assert.Equal(t, config.DefaultMaxEntities, entities)
	assert.Equal(t, config.DefaultMaxCells, cells)

	entities, cells = config.ServerConfig{MaxEntities: 7, MaxCells: 49}.Limits()
	assert.Equal(t, 7, entities)
	assert.Equal(t, int64(49), cells)
}

func TestResolve_Precedence(t *testing.T) {
	path := writeFile(t, "entres.yaml", "method: best-match\nthreshold: 0.3\n")
	dotenv := writeFile(t, ".env", "ENTRES_THRESHOLD=0.6\nENTRES_SERVER_ADDR=:1111\n")
	t.Setenv(config.EnvServerAddr, ":2222")
	t.Setenv(config.EnvThreshold, "")
	require.NoError(t, os.Unsetenv(config.EnvThreshold))

	cfg, err := config.Resolve(path, dotenv)
	require.NoError(t, err)
	assert.Equal(t, "best-match", cfg.Method)
	assert.Equal(t, 0.6, *cfg.Threshold)       // .env over file
	assert.Equal(t, ":2222", cfg.Server.Addr) // process env over .env
}

func TestLoadDotEnv_MissingIsFine(t *testing.T) {
	require.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestStrategyOptions_Empty(t *testing.T) {
	opts, err := config.Default().StrategyOptions(nil)
	require.NoError(t, err)
	assert.Empty(t, opts)

	zero := config.Default()
	zero.TimeLimit = "0s"
	opts, err = zero.StrategyOptions(nil)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	var o clustering.Options
	opts[0](&o)
	assert.Equal(t, time.Duration(0), o.TimeLimit)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	log, err = config.LogConfig{}.NewLogger(&buf)
	require.NoError(t, err)
	log.Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")

	_, err = config.LogConfig{Format: "xml"}.NewLogger(&buf)
	require.ErrorIs(t, err, config.ErrInvalid)
}
