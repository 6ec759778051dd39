package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vitalvas/routekit/routetable"
)

func tableCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Validate and query a YAML route table",
	}

	cmd.PersistentFlags().StringVarP(&file, "file", "f", "", "Route table file")
	_ = cmd.MarkPersistentFlagRequired("file")

	load := func() (*routetable.Table, error) {
		table, err := routetable.LoadFile(file)
		if err != nil {
			return nil, err
		}
		a.logger.WithFields(logrus.Fields{
			"file":   file,
			"routes": len(table.Routes()),
		}).Debug("loaded route table")
		return table, nil
	}

	cmd.AddCommand(
		tableCheckCmd(load),
		tableMatchCmd(a, load),
		tableReverseCmd(a, load),
	)

	return cmd
}

type tableLoader func() (*routetable.Table, error)

func tableCheckCmd(load tableLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the route table and list its routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := load()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range table.Routes() {
				methods := "*"
				if len(r.Methods) > 0 {
					methods = strings.Join(r.Methods, ",")
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, methods, r.Spec.Pattern())
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d routes\n", len(table.Routes()))
			return nil
		},
	}
}

func tableMatchCmd(a *app, load tableLoader) *cobra.Command {
	var (
		method     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "match <path>",
		Short: "Find the first route matching a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := load()
			if err != nil {
				return err
			}

			route, captures, ok := table.MatchMethod(strings.ToUpper(method), args[0])
			if !ok {
				a.logger.WithField("path", args[0]).Info("no route matched")
				fmt.Fprintln(cmd.OutOrStdout(), "no match")
				return errNoResult
			}

			if !jsonOutput {
				fmt.Fprintln(cmd.OutOrStdout(), route.Name)
			}
			return printCaptures(cmd.OutOrStdout(), route.Spec.Names(), captures, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&method, "method", "X", "", "Only consider routes allowing this HTTP method")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print captures as a JSON object")

	return cmd
}

func tableReverseCmd(a *app, load tableLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <name> [name=value...]",
		Short: "Render the path of a named route",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := load()
			if err != nil {
				return err
			}

			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			path, err := table.Reverse(args[0], params)
			if errors.Is(err, routetable.ErrMissingParams) {
				a.logger.WithError(err).Info("required parameter missing")
				fmt.Fprintln(cmd.OutOrStdout(), "cannot render")
				return errNoResult
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
