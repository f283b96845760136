// SPDX-License-Identifier: MIT

package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvstats/elementwise"
)

func newEvalCommand(a *app) *cobra.Command {
	var (
		params  []float64
		logForm bool
	)
	cmd := &cobra.Command{
		Use:   "eval <fn> [x...]",
		Short: "Evaluate a catalog function at each x",
		Long: `Evaluate a catalog function at each x and print one value per line.
Parameters are positional, in the order shown by "lvstats list".
Use "--" before negative x values.`,
		Example: `  lvstats eval qt -p 11 0.025 0.975
  lvstats eval dnorm -p 0 -p 2 --log -- -1 0 1
  lvstats eval incbeta -p 2,3 --precise 0.25`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.lookup(args[0], false)
			if err != nil {
				return err
			}
			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			f, err := e.Bind(params, logForm)
			if err != nil {
				return err
			}

			start := time.Now()
			out := elementwise.Apply[[]float64, float64](xs, elementwise.SliceAdapter[float64]{}, f, a.cfg.MapOptions()...)
			a.log.Info("eval",
				zap.String("fn", e.Name),
				zap.Stringer("kind", e.Kind),
				zap.Int("n", len(xs)),
				zap.Duration("elapsed", time.Since(start)))
			return a.writeLines(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().Float64SliceVarP(&params, "param", "p", nil, "function parameter (repeatable, positional)")
	cmd.Flags().BoolVar(&logForm, "log", false, "log form (log result, or log-probability input for quantiles)")
	return cmd
}
