package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vitalvas/routekit/routespec"
)

func astCmd(a *app) *cobra.Command {
	var (
		canonical  bool
		showRegexp bool
	)

	cmd := &cobra.Command{
		Use:   "ast <pattern>",
		Short: "Print the parsed tree of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := routespec.New(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case canonical:
				fmt.Fprintln(out, spec.String())
			case showRegexp:
				m, err := spec.Matcher()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, m.String())
			default:
				fmt.Fprint(out, routespec.Dump(spec.AST()))
			}

			a.logger.WithFields(logrus.Fields{
				"pattern": spec.Pattern(),
				"names":   spec.Names(),
			}).Debug("parsed pattern")
			return nil
		},
	}

	cmd.Flags().BoolVar(&canonical, "canonical", false, "Print the canonical pattern text instead of the tree")
	cmd.Flags().BoolVar(&showRegexp, "regexp", false, "Print the compiled match expression instead of the tree")
	cmd.MarkFlagsMutuallyExclusive("canonical", "regexp")

	return cmd
}

func matchCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "match <pattern> <path>",
		Short: "Match a path against a pattern and print the captures",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := routespec.New(args[0])
			if err != nil {
				return err
			}

			m, err := spec.Matcher()
			if err != nil {
				return err
			}
			a.logger.WithFields(logrus.Fields{
				"pattern": spec.Pattern(),
				"regexp":  m.String(),
			}).Debug("compiled pattern")

			captures, ok := m.Match(args[1])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no match")
				return errNoResult
			}

			return printCaptures(cmd.OutOrStdout(), spec.Names(), captures, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print captures as a JSON object")

	return cmd
}

func reverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <pattern> [name=value...]",
		Short: "Render a path from a pattern and parameters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := routespec.New(args[0])
			if err != nil {
				return err
			}

			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			path, ok := spec.Reverse(params)
			if !ok {
				a.logger.WithFields(logrus.Fields{
					"pattern": spec.Pattern(),
					"params":  params,
				}).Info("required parameter missing")
				fmt.Fprintln(cmd.OutOrStdout(), "cannot render")
				return errNoResult
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// parseParams turns name=value arguments into reverse parameters.
func parseParams(args []string) (routespec.Params, error) {
	params := make(routespec.Params, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected name=value", arg)
		}
		params[name] = value
	}
	return params, nil
}

// printCaptures writes captures in the order the names appear in the
// pattern. Names that did not participate in the match are left out.
func printCaptures(w io.Writer, names []string, captures routespec.Captures, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		return enc.Encode(captures)
	}

	for _, name := range names {
		if value, ok := captures[name]; ok {
			fmt.Fprintf(w, "%s=%s\n", name, value)
		}
	}
	return nil
}
