package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var (
	format  string
	timeout time.Duration
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mathsteps",
		Short: "Step-by-step symbolic algebra simplification and equation solving",
		Long: "mathsteps parses a mathematical expression or equation, rewrites it one\n" +
			"rule at a time toward a normal form, and prints the trace of steps that\n" +
			"got there — each tagged with the kind of change it made.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&format, "format", "text", "output format (text, json)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "maximum time to spend solving")
	root.AddCommand(newSimplifyCmd())
	root.AddCommand(newSolveCmd())
	return root
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
