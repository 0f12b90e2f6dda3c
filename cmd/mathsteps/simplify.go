package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mathsteps-go/mathsteps/pkg/parse"
	"github.com/mathsteps-go/mathsteps/pkg/solver"
	"github.com/spf13/cobra"
)

func newSimplifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <expression>",
		Short: "Simplify an expression, printing the trace of steps taken",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimplify(args[0])
		},
	}
}

func runSimplify(src string) error {
	entry := log.WithField("input", src)
	entry.Info("parsing expression")

	n, err := parse.Expression(src)
	if err != nil {
		entry.WithError(err).Error("parse failed")
		return fmt.Errorf("parse %q: %w", src, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	final, trace, err := solver.Simplify(ctx, n)
	entry = entry.WithField("steps", len(trace))
	if err != nil {
		entry.WithError(err).Warn("simplify did not reach a normal form")
		return fmt.Errorf("simplify %q: %w", src, err)
	}
	entry.WithField("result", final.String()).Info("simplify finished")

	switch format {
	case "json":
		return solver.WriteJSONTrace(os.Stdout, trace)
	default:
		solver.WriteTextTrace(os.Stdout, trace)
		fmt.Fprintf(os.Stdout, "= %s\n", final.String())
		return nil
	}
}
