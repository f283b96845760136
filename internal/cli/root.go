// SPDX-License-Identifier: MIT

// Package cli implements the lvstats command tree.
package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvstats/catalog"
	"github.com/katalvlaran/lvstats/internal/config"
	"github.com/katalvlaran/lvstats/internal/logging"
)

// app is the state shared by every subcommand: the flag-overridden
// configuration and the logger built from it before each run.
type app struct {
	cfg *config.Config
	log *logging.Logger
}

// NewRootCommand returns the lvstats command tree. cfg supplies the flag
// defaults (normally config.Load) and receives the parsed flag values.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &app{cfg: cfg, log: logging.NewNop()}

	root := &cobra.Command{
		Use:   "lvstats",
		Short: "Evaluate probability distributions and special functions",
		Long: `lvstats evaluates densities, distribution functions, quantiles and
variates of common distributions, plus the incomplete gamma and beta kernels,
using R-style names (dnorm, pt, qgamma, rpois, incbeta, ...).

Flags override LVSTATS_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			l, err := logging.New(a.cfg.Logging())
			if err != nil {
				return err
			}
			a.log = l
			a.log.Debug("configured",
				zap.String("command", cmd.Name()),
				zap.Int("workers", a.cfg.Workers),
				zap.Int("digits", a.cfg.Digits),
				zap.Bool("precise", a.cfg.Precise))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&cfg.LogDev, "dev", cfg.LogDev, "human-readable development logging")
	pf.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines used for elementwise evaluation")
	pf.IntVar(&cfg.MinChunk, "min-chunk", cfg.MinChunk, "minimum elements per worker chunk")
	pf.IntVar(&cfg.Digits, "digits", cfg.Digits, "significant digits printed (1..17)")
	pf.BoolVar(&cfg.Precise, "precise", cfg.Precise, "route kernels through the convergence-checked implementations")

	root.AddCommand(
		newEvalCommand(a),
		newBatchCommand(a),
		newListCommand(a),
		newSampleCommand(a),
	)
	return root
}

// lookup resolves name with or without the precise kernels.
func (a *app) lookup(name string, precise bool) (catalog.Entry, error) {
	if precise || a.cfg.Precise {
		return catalog.LookupPrecise(name)
	}
	return catalog.Lookup(name)
}

// formatValue renders v with the configured significant digits.
func (a *app) formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', a.cfg.Digits, 64)
}

// writeLines prints one formatted value per line.
func (a *app) writeLines(w io.Writer, vs []float64) error {
	buf := make([]byte, 0, 32)
	for _, v := range vs {
		buf = strconv.AppendFloat(buf[:0], v, 'g', a.cfg.Digits, 64)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// parseFloats parses positional numbers; NaN, Inf and -Inf are accepted.
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
