// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog implements the "warden catalog" command group for
// inspecting the host's operation catalog manifest.
package catalog

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

// Command returns the "catalog" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Summary: "Inspect the host's operation catalog",
		Description: `Inspect the operation catalog the resolver works against. The catalog
comes from the manifest named in the configuration; a host embedding
the library usually supplies it programmatically instead.`,
		Subcommands: []*cli.Command{
			operationsCommand(),
			groupsCommand(),
		},
	}
}

type operationsParams struct {
	cli.JSONOutput
	cli.ConfigFlag
}

func operationsCommand() *cli.Command {
	var params operationsParams

	return &cli.Command{
		Name:    "operations",
		Summary: "List every catalog operation",
		Usage:   "warden catalog operations [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("catalog operations", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			eng, err := params.OpenEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			operations := eng.Catalog().Operations()
			if done, jsonErr := params.EmitJSON(operations); done {
				return jsonErr
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tALIAS\tADMIN")
			for _, operation := range operations {
				admin := ""
				if operation.AdminDefault {
					admin = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", operation.ID(), operation.Alias, admin)
			}
			return tw.Flush()
		},
	}
}

type groupsParams struct {
	cli.JSONOutput
	cli.ConfigFlag
}

func groupsCommand() *cli.Command {
	var params groupsParams

	return &cli.Command{
		Name:    "groups",
		Summary: "List every catalog group",
		Usage:   "warden catalog groups [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("catalog groups", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			eng, err := params.OpenEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			groups := eng.Catalog().Groups()
			if done, jsonErr := params.EmitJSON(groups); done {
				return jsonErr
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tALIAS")
			for _, group := range groups {
				fmt.Fprintf(tw, "%s\t%s\n", group.ID(), group.Alias)
			}
			return tw.Flush()
		},
	}
}
