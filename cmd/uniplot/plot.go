package main

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"uniplot/internal/logging"
	"uniplot/internal/plot"
	"uniplot/internal/series"
)

var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"exp":  math.Exp,
	"log":  math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
	"sq":   func(x float64) float64 { return x * x },
	"sinc": func(x float64) float64 {
		if x == 0 {
			return 1
		}
		return math.Sin(x) / x
	},
	"gauss": func(x float64) float64 { return math.Exp(-x * x / 2) },
}

func functionNames() string {
	names := make([]string, 0, len(functions))
	for n := range functions {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (a *app) lineCmd(use string, scatter bool) *cobra.Command {
	var xs, ys []float64
	cmd := &cobra.Command{
		Use:   use + " [FILE|-]",
		Short: "Plot series from a data file, stdin or --y",
		Long:  "Plot series read from CSV, TSV, JSON, GeoJSON, KML or WKT. The format\nof stdin is guessed from its first characters.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := readData(cmd, args, xs, ys)
			if err != nil {
				return err
			}
			o := a.cfg.PlotOptions()
			o.Scatter = o.Scatter || scatter || d.Scatter
			return a.plot(cmd, o, d.Series...)
		},
	}
	cmd.Flags().Float64SliceVar(&xs, "x", nil, "x values, paired with --y")
	cmd.Flags().Float64SliceVar(&ys, "y", nil, "y values")
	return cmd
}

func (a *app) funcCmd() *cobra.Command {
	var from, to float64
	var samples int
	cmd := &cobra.Command{
		Use:   "func NAME...",
		Short: "Plot builtin functions: " + functionNames(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from >= to {
				return errors.Errorf("empty domain [%g, %g]", from, to)
			}
			o := a.cfg.PlotOptions()
			n := samples
			if n <= 0 {
				// one sample per horizontal sub-pixel
				n = a.cfg.Width * o.Glyphs.SubX
			}
			s := make([]series.Series, 0, len(args))
			for _, name := range args {
				f, ok := functions[name]
				if !ok {
					return errors.Errorf("unknown function %q (want one of %s)", name, functionNames())
				}
				fs, err := series.FromFunc(name, from, to, n, f)
				if err != nil {
					return err
				}
				s = append(s, fs)
			}
			return a.plot(cmd, o, s...)
		},
	}
	cmd.Flags().Float64Var(&from, "from", -2*math.Pi, "start of the domain")
	cmd.Flags().Float64Var(&to, "to", 2*math.Pi, "end of the domain")
	cmd.Flags().IntVar(&samples, "samples", 0, "samples per function (default: one per sub-pixel column)")
	return cmd
}

// readData picks the input in order: --y values, a file argument, stdin.
// It also returns a name for the source.
func readData(cmd *cobra.Command, args []string, xs, ys []float64) (series.Dataset, string, error) {
	switch {
	case len(ys) > 0:
		var (
			s   series.Series
			err error
		)
		if len(xs) > 0 {
			s, err = series.FromXY("y", xs, series.Values(ys))
		} else {
			s, err = series.FromY("y", series.Values(ys))
		}
		if err != nil {
			return series.Dataset{}, "", err
		}
		return series.Dataset{Series: []series.Series{s}}, "flags", nil
	case len(xs) > 0:
		return series.Dataset{}, "", errors.New("--x needs --y")
	case len(args) == 1 && args[0] != "-":
		d, err := series.LoadFile(args[0])
		return d, args[0], err
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return series.Dataset{}, "", errors.Wrap(err, "read stdin")
	}
	d, err := series.Parse(string(b))
	if err != nil {
		return series.Dataset{}, "", errors.Wrap(err, "stdin")
	}
	return d, "stdin", nil
}

func (a *app) plot(cmd *cobra.Command, o plot.Options, s ...series.Series) error {
	ctx, cancel := a.context(cmd)
	defer cancel()
	res, err := plot.Fit(ctx, o, a.cfg.Width, a.cfg.Height, s...)
	if err != nil {
		return err
	}
	logging.For("cli").WithFields(logrus.Fields{
		"series":  res.Stats.Series,
		"points":  res.Stats.Points,
		"dropped": res.Stats.Dropped,
	}).Info("plotted")
	out := cmd.OutOrStdout()
	_, err = fmt.Fprintln(out, res.Matrix.Render(a.renderer(out)))
	return err
}
