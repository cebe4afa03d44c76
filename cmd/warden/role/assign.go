// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package role

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

type assignParams struct {
	cli.ConfigFlag
}

func assignCommand() *cli.Command {
	var params assignParams

	return &cli.Command{
		Name:    "assign",
		Summary: "Assign a role to a principal",
		Usage:   "warden role assign <principal> <role> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("role assign", &params)
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <principal> <role>, got %d arguments", len(args))
			}
			principal, err := cli.ParsePrincipal(args[0])
			if err != nil {
				return err
			}

			eng, err := params.OpenEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			store := eng.Store()
			name, ok := store.MatchRole(args[1])
			if !ok {
				return fmt.Errorf("role %q not found", args[1])
			}
			if !store.AssignRole(principal, name) {
				return fmt.Errorf("principal %d already has role %q", principal, name)
			}
			fmt.Printf("assigned role %q to principal %d\n", name, principal)
			return nil
		},
	}
}
