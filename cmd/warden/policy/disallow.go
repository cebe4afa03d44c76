// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

type disallowParams struct {
	cli.ConfigFlag
}

func disallowCommand() *cli.Command {
	var params disallowParams

	return &cli.Command{
		Name:    "disallow",
		Summary: "Disallow an operation for everyone without a role",
		Usage:   "warden policy disallow <operation> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("policy disallow", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one operation, got %d arguments", len(args))
			}

			eng, err := params.OpenEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			operation, err := resolveOperation(eng, args[0])
			if err != nil {
				return err
			}
			eng.Store().Disallow(operation.ID(), operation.AdminDefault)
			fmt.Printf("disallowed %s\n", operation.ID())
			return nil
		},
	}
}

type disallowGroupParams struct {
	cli.ConfigFlag
}

func disallowGroupCommand() *cli.Command {
	var params disallowGroupParams

	return &cli.Command{
		Name:    "disallow-group",
		Summary: "Disallow every operation in a catalog group",
		Usage:   "warden policy disallow-group <group> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("policy disallow-group", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one group, got %d arguments", len(args))
			}

			eng, err := params.OpenEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			operations, err := resolveGroup(eng, args[0])
			if err != nil {
				return err
			}
			for _, operation := range operations {
				eng.Store().Disallow(operation.ID(), operation.AdminDefault)
				fmt.Printf("disallowed %s\n", operation.ID())
			}
			return nil
		},
	}
}
