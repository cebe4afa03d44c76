// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package role

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

type listParams struct {
	cli.JSONOutput
	cli.ConfigFlag
}

// roleInfo is the JSON shape of one role in the listing.
type roleInfo struct {
	Name       string   `json:"name"`
	Principals []uint64 `json:"principals"`
	Operations []string `json:"operations"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List roles with their holders and grant counts",
		Usage:   "warden role list [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("role list", &params)
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

			store := eng.Store()
			var roles []roleInfo
			for _, name := range store.Roles() {
				operations, _ := store.OperationsForRole(name)
				roles = append(roles, roleInfo{
					Name:       name,
					Principals: store.PrincipalsWithRole(name),
					Operations: operations,
				})
			}

			if done, jsonErr := params.EmitJSON(roles); done {
				return jsonErr
			}

			if len(roles) == 0 {
				fmt.Println("no roles")
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPRINCIPALS\tOPERATIONS")
			for _, info := range roles {
				fmt.Fprintf(tw, "%s\t%d\t%d\n", info.Name, len(info.Principals), len(info.Operations))
			}
			return tw.Flush()
		},
	}
}
