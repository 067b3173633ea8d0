// SPDX-License-Identifier: MIT

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/entres/config"
)

// Version is set at build time with -ldflags "-X ...commands.Version=v1.2.3".
var Version = "dev"

// app carries the state shared by every command of one invocation.
type app struct {
	// global flags
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
	verbose    bool

	cfg *config.Config
	log *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "entres",
		Short: "Entity-resolution clustering of scored candidate pairs",
		Long: `entres - turns scored candidate pairs into equivalence clusters.

Strategies:
  connected-components   transitive closure (clean-clean and dirty)
  best-match             greedy one-sided best match
  reciprocal-best-match  mutual top-1 pairs only
  best-assignment        randomized assignment heuristic
  row-column             greedy row/column assignment
  kiraly                 3/2-approximate stable marriage

Configuration is read from --config (YAML or TOML), then .env, then
ENTRES_* environment variables, then command flags.

Examples:
  entres cluster -i cands.json -m kiraly -t 0.5 -o out.json
  entres evaluate -i cands.csv -g truth.csv --dataset1-size 100
  entres generate --planted 200 --noise 4 -o cands.json --truth truth.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded into the environment")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newClusterCmd(a),
		newEvaluateCmd(a),
		newGenerateCmd(a),
		newMethodsCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// init resolves the configuration and the logger; flags win over files
// and environment.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.configPath, a.envFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	log, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	return nil
}
