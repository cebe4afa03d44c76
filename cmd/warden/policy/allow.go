// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

type allowParams struct {
	cli.ConfigFlag
}

func allowCommand() *cli.Command {
	var params allowParams

	return &cli.Command{
		Name:    "allow",
		Summary: "Allow an operation for everyone",
		Usage:   "warden policy allow <operation> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("policy allow", &params)
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
			eng.Store().Allow(operation.ID(), operation.AdminDefault)
			fmt.Printf("allowed %s\n", operation.ID())
			return nil
		},
	}
}

type allowGroupParams struct {
	cli.ConfigFlag
}

func allowGroupCommand() *cli.Command {
	var params allowGroupParams

	return &cli.Command{
		Name:    "allow-group",
		Summary: "Allow every operation in a catalog group",
		Usage:   "warden policy allow-group <group> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("policy allow-group", &params)
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
				eng.Store().Allow(operation.ID(), operation.AdminDefault)
				fmt.Printf("allowed %s\n", operation.ID())
			}
			return nil
		},
	}
}
