// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvstats/elementwise"
	"github.com/katalvlaran/lvstats/matrix"
)

// Job is one entry of a batch file.
type Job struct {
	Name    string    `yaml:"name"`
	Fn      string    `yaml:"fn"`
	Params  []float64 `yaml:"params,omitempty"`
	X       []float64 `yaml:"x"`
	Log     bool      `yaml:"log,omitempty"`
	Precise bool      `yaml:"precise,omitempty"`
	Rows    int       `yaml:"rows,omitempty"`
	Cols    int       `yaml:"cols,omitempty"`
}

// Result is the outcome of one Job. Exactly one of Values, Matrix or Error
// is set; a job without rows/cols yields Values.
type Result struct {
	Name   string      `yaml:"name"`
	Fn     string      `yaml:"fn"`
	Kind   string      `yaml:"kind,omitempty"`
	Values []float64   `yaml:"values,omitempty,flow"`
	Matrix [][]float64 `yaml:"matrix,omitempty,flow"`
	Error  string      `yaml:"error,omitempty"`
}

type batchInput struct {
	Jobs []Job `yaml:"jobs"`
}

type batchOutput struct {
	Results []Result `yaml:"results"`
}

// errJobsFailed is returned after all results are written when any job failed.
var errJobsFailed = errors.New("batch: jobs failed")

func newBatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.yaml|->",
		Short: "Run a YAML file of evaluation jobs",
		Long: `Run every job of a YAML file and print the results as YAML.

A job is {name, fn, params, x, log, precise, rows, cols}. With rows and/or
cols, x is shaped row-major into a matrix and the result is a matrix;
otherwise the result is a flat list. Failed jobs carry an error message
and make the command exit non-zero after all results are printed.`,
		Example: `  jobs:
    - name: t-tails
      fn: qt
      params: [11]
      x: [0.025, 0.5, 0.975, 0.995]
      rows: 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.readJobs(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			out := batchOutput{Results: make([]Result, 0, len(in.Jobs))}
			failed := 0
			for i, job := range in.Jobs {
				if job.Name == "" {
					job.Name = "job-" + strconv.Itoa(i+1)
				}
				start := time.Now()
				res, err := a.runJob(job)
				if err != nil {
					failed++
					res.Error = err.Error()
					a.log.Warn("job failed", zap.String("job", job.Name), zap.Error(err))
				} else {
					a.log.Debug("job done", zap.String("job", job.Name), zap.Int("n", len(job.X)),
						zap.Duration("elapsed", time.Since(start)))
				}
				out.Results = append(out.Results, res)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return err
			}
			if err := enc.Close(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errJobsFailed, failed, len(in.Jobs))
			}
			return nil
		},
	}
}

// readJobs decodes a batch file; "-" reads stdin. Unknown keys are errors.
func (a *app) readJobs(stdin io.Reader, path string) (*batchInput, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var in batchInput
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("batch: %s: %w", path, err)
	}
	a.log.Info("batch loaded", zap.String("path", path), zap.Int("jobs", len(in.Jobs)))
	return &in, nil
}

// runJob evaluates one job. Results are rounded to the configured digits.
func (a *app) runJob(job Job) (Result, error) {
	res := Result{Name: job.Name, Fn: job.Fn}
	e, err := a.lookup(job.Fn, job.Precise)
	if err != nil {
		return res, err
	}
	res.Kind = e.Kind.String()
	f, err := e.Bind(job.Params, job.Log)
	if err != nil {
		return res, err
	}
	opts := a.cfg.MapOptions()

	if job.Rows == 0 && job.Cols == 0 {
		vs := elementwise.Apply[[]float64, float64](job.X, elementwise.SliceAdapter[float64]{}, f, opts...)
		for i, v := range vs {
			vs[i] = a.round(v)
		}
		res.Values = vs
		return res, nil
	}

	rows, cols := job.Rows, job.Cols
	switch {
	case rows == 0:
		rows = len(job.X) / cols
	case cols == 0:
		cols = len(job.X) / rows
	}
	x, err := matrix.NewDenseFrom(rows, cols, job.X)
	if err != nil {
		return res, err
	}
	da := matrix.DenseAdapter[float64]{}
	y := elementwise.Map[*matrix.Dense[float64], *matrix.Dense[float64], float64, float64](x, da, da, f, opts...)
	if err := matrix.ValidateSameShape[float64, float64](x, y); err != nil {
		return res, err
	}
	if err := y.Apply(func(_, _ int, v float64) float64 { return a.round(v) }); err != nil {
		return res, err
	}
	vals := y.Values()
	res.Matrix = make([][]float64, rows)
	for i := range res.Matrix {
		res.Matrix[i] = vals[i*cols : (i+1)*cols]
	}
	a.log.Debug("job matrix", zap.String("job", job.Name), zap.Stringer("result", y))
	return res, nil
}

// round truncates v to the configured significant digits.
func (a *app) round(v float64) float64 {
	r, err := strconv.ParseFloat(a.formatValue(v), 64)
	if err != nil {
		return v
	}
	return r
}
