// SPDX-License-Identifier: MIT

package clustering

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
)

// Move budget defaults of the randomized assignment heuristic.
const (
	// DefaultMoveBudget is the number of random swap attempts.
	DefaultMoveBudget = 9_999_999

	// LargeInputEntities is the entity count above which the budget grows.
	LargeInputEntities = 20_000

	// LargeInputMultiplier scales DefaultMoveBudget for large inputs.
	LargeInputMultiplier = 100

	// DefaultTimeLimit bounds the wall-clock time of the swap loop.
	DefaultTimeLimit = 120 * time.Second
)

// Options configures a Strategy.
//
// Threshold      – candidates with score <= Threshold are ignored.
// PreferredSide  – proposing side (BestMatch, Kiraly).
// MoveBudget     – swap attempts for BestAssignment; 0 means automatic.
// TimeLimit      – wall-clock cap for BestAssignment; 0 disables it.
// Seed           – random seed for BestAssignment; 0 maps to a fixed default.
// Logger         – destination of run logs; nil means slog.Default().
type Options struct {
	Threshold     float64
	PreferredSide Side
	MoveBudget    int
	TimeLimit     time.Duration
	Seed          int64
	Logger        *slog.Logger
}

// Option represents a functional option for configuring a Strategy.
type Option func(*Options)

// DefaultOptions returns the defaults for method m.
//
// Defaults:
//   - Threshold:     0.5 for ConnectedComponents, BestAssignment and RowColumn;
//     0.1 for BestMatch, ReciprocalBestMatch and Kiraly.
//   - PreferredSide: SideDataset1, except SideSmaller for Kiraly.
//   - MoveBudget:    automatic (DefaultMoveBudget, ×100 above 20 000 entities).
//   - TimeLimit:     DefaultTimeLimit.
//   - Seed:          0 (fixed default seed).
func DefaultOptions(m Method) Options {
	o := Options{
		Threshold:     0.5,
		PreferredSide: SideDataset1,
		TimeLimit:     DefaultTimeLimit,
	}
	switch m {
	case MethodBestMatch, MethodReciprocalBestMatch:
		o.Threshold = 0.1
	case MethodKiraly:
		o.Threshold = 0.1
		o.PreferredSide = SideSmaller
	}

	return o
}

// WithThreshold sets the similarity threshold. Panics on NaN or ±Inf.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		panic("clustering: WithThreshold(non-finite)")
	}
	return func(o *Options) {
		o.Threshold = t
	}
}

// WithPreferredSide sets the proposing side. Panics on an unknown Side.
func WithPreferredSide(s Side) Option {
	if s < SideDataset1 || s > SideSmaller {
		panic("clustering: WithPreferredSide(unknown side)")
	}
	return func(o *Options) {
		o.PreferredSide = s
	}
}

// WithMoveBudget overrides the number of swap attempts. Zero restores the
// automatic budget; negative values panic.
func WithMoveBudget(n int) Option {
	if n < 0 {
		panic("clustering: WithMoveBudget(n<0)")
	}
	return func(o *Options) {
		o.MoveBudget = n
	}
}

// WithTimeLimit overrides the wall-clock budget. Zero disables the limit;
// negative values panic.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("clustering: WithTimeLimit(d<0)")
	}
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithSeed fixes the random source of the assignment heuristic.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger routes run logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("clustering: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// moveBudget resolves the automatic budget for n entities.
func (o Options) moveBudget(n int) int {
	if o.MoveBudget > 0 {
		return o.MoveBudget
	}
	if n > LargeInputEntities {
		return DefaultMoveBudget * LargeInputMultiplier
	}

	return DefaultMoveBudget
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

// render formats the parameters method m actually reads.
func (o Options) render(m Method) string {
	parts := []string{fmt.Sprintf("threshold=%g", o.Threshold)}
	switch m {
	case MethodBestMatch, MethodKiraly:
		parts = append(parts, "preferred_side="+o.PreferredSide.String())
	case MethodBestAssignment:
		budget := "auto"
		if o.MoveBudget > 0 {
			budget = fmt.Sprint(o.MoveBudget)
		}
		parts = append(parts,
			"move_budget="+budget,
			"time_limit="+o.TimeLimit.String(),
			fmt.Sprintf("seed=%d", o.Seed),
		)
	}

	return strings.Join(parts, ", ")
}
