// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package role

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

type unassignParams struct {
	cli.ConfigFlag
}

func unassignCommand() *cli.Command {
	var params unassignParams

	return &cli.Command{
		Name:    "unassign",
		Summary: "Remove a role from a principal",
		Description: `Remove a role from a principal's assignment list. The role itself does
not have to exist: this also cleans up assignment entries left behind
by hand-edited state files.`,
		Usage: "warden role unassign <principal> <role> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("role unassign", &params)
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

			if !eng.Store().UnassignRole(principal, args[1]) {
				return fmt.Errorf("principal %d does not have role %q", principal, args[1])
			}
			fmt.Printf("unassigned role %q from principal %d\n", args[1], principal)
			return nil
		},
	}
}
