// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package role

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

type deleteParams struct {
	cli.ConfigFlag
}

func deleteCommand() *cli.Command {
	var params deleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a role and unassign it everywhere",
		Description: `Delete a role. The role is removed from every principal that holds it;
there is no way to delete a role but keep its assignments.`,
		Usage: "warden role delete <name> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("role delete", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one role name, got %d arguments", len(args))
			}

			eng, err := params.OpenEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			store := eng.Store()
			name, ok := store.MatchRole(args[0])
			if !ok {
				return fmt.Errorf("role %q not found", args[0])
			}
			holders := len(store.PrincipalsWithRole(name))
			store.DeleteRole(name)

			if holders > 0 {
				fmt.Printf("deleted role %q (unassigned from %d principals)\n", name, holders)
			} else {
				fmt.Printf("deleted role %q\n", name)
			}
			return nil
		},
	}
}
