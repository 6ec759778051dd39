package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

// errNoResult marks a negative answer, such as a path that does not match
// or a pattern that cannot be rendered. The command has already reported
// it, so main only sets the exit status.
var errNoResult = errors.New("no result")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoResult) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

// app holds the state shared by every command.
type app struct {
	logger    *logrus.Logger
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "routespec",
		Short: "Inspect, match and reverse route patterns",
		Long: `routespec works with route patterns such as "/users/:id(/*rest)".

It prints the parsed tree of a pattern, matches paths against it,
renders paths from parameters and validates YAML route tables.

Commands that produce a negative answer ("no match", "cannot render")
exit with status 1.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configureLogger(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warning", "Log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(
		astCmd(a),
		matchCmd(a),
		reverseCmd(a),
		tableCmd(a),
		versionCmd(),
	)

	return rootCmd
}

func (a *app) configureLogger(out io.Writer) error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}

	switch a.logFormat {
	case "text":
		a.logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	case "json":
		a.logger.Formatter = &logrus.JSONFormatter{DisableTimestamp: true}
	default:
		return fmt.Errorf("unknown log format %q", a.logFormat)
	}

	a.logger.Out = out
	a.logger.Level = level
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "routespec %s (%s)\n", version, commit)
		},
	}
}
