package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mathsteps-go/mathsteps/pkg/equation"
	"github.com/mathsteps-go/mathsteps/pkg/parse"
	"github.com/mathsteps-go/mathsteps/pkg/solver"
	"github.com/spf13/cobra"
)

var symbol string

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <equation>",
		Short: "Solve a linear equation or inequality for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(args[0])
		},
	}
	cmd.Flags().StringVar(&symbol, "symbol", "x", "the symbol to isolate")
	return cmd
}

func runSolve(src string) error {
	entry := log.WithField("input", src).WithField("symbol", symbol)
	entry.Info("parsing equation")

	eq, err := parse.Equation(src)
	if err != nil {
		entry.WithError(err).Error("parse failed")
		return fmt.Errorf("parse %q: %w", src, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	value, trace, err := equation.Solve(ctx, eq, symbol)
	entry = entry.WithField("steps", len(trace))
	if err != nil {
		var unsolvable *solver.ErrUnsolvable
		if errors.As(err, &unsolvable) {
			entry.WithError(err).Warn("equation has no solution, or is outside solver capability")
		} else {
			entry.WithError(err).Error("solve failed")
		}
		return fmt.Errorf("solve %q: %w", src, err)
	}
	entry.WithField("result", value.String()).Info("solve finished")

	switch format {
	case "json":
		return equation.WriteJSONTrace(os.Stdout, trace)
	default:
		equation.WriteTextTrace(os.Stdout, trace)
		fmt.Fprintf(os.Stdout, "%s = %s\n", symbol, value.String())
		return nil
	}
}
