// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package role

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

type ofParams struct {
	cli.JSONOutput
	cli.ConfigFlag
}

func ofCommand() *cli.Command {
	var params ofParams

	return &cli.Command{
		Name:    "of",
		Summary: "List the roles assigned to a principal",
		Usage:   "warden role of <principal> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("role of", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one principal, got %d arguments", len(args))
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

			roles := eng.Store().RolesOf(principal)
			if done, jsonErr := params.EmitJSON(roles); done {
				return jsonErr
			}

			if len(roles) == 0 {
				fmt.Printf("principal %d has no roles\n", principal)
				return nil
			}
			for _, name := range roles {
				fmt.Println(name)
			}
			return nil
		},
	}
}
