// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package role

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

type operationsParams struct {
	cli.JSONOutput
	cli.ConfigFlag
}

func operationsCommand() *cli.Command {
	var params operationsParams

	return &cli.Command{
		Name:    "operations",
		Summary: "List the operations a role grants",
		Description: `List a role's grant set as canonical operation identifiers. Grants are
stored as written: an identifier that is no longer in the host's
catalog stays listed here but never matches a permission check.`,
		Usage: "warden role operations <role> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("role operations", &params)
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

			operations, ok := eng.Store().OperationsForRole(args[0])
			if !ok {
				return fmt.Errorf("role %q not found", args[0])
			}

			if done, jsonErr := params.EmitJSON(operations); done {
				return jsonErr
			}

			if len(operations) == 0 {
				fmt.Println("no operations granted")
				return nil
			}
			for _, id := range operations {
				fmt.Println(id)
			}
			return nil
		},
	}
}
