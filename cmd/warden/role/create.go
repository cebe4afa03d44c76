// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package role

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

type createParams struct {
	cli.ConfigFlag
}

func createCommand() *cli.Command {
	var params createParams

	return &cli.Command{
		Name:    "create",
		Summary: "Create an empty role",
		Description: `Create a role with no grants. Use "warden grant" to add operations
afterwards. Role names are case-insensitive: "Mods" and "mods" are the
same role.`,
		Usage: "warden role create <name> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("role create", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one role name, got %d arguments", len(args))
			}
			name := sanitizeRoleName(args[0])

			eng, err := params.OpenEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			if !eng.Store().CreateRole(name) {
				return fmt.Errorf("role %q already exists", name)
			}
			fmt.Printf("created role %q\n", name)
			return nil
		},
	}
}
