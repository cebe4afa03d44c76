// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package grant

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
	"github.com/warden-foundation/warden/lib/catalog"
	"github.com/warden-foundation/warden/lib/engine"
	"github.com/warden-foundation/warden/lib/resolve"
)

type grantParams struct {
	cli.ConfigFlag
	Group bool `flag:"group" desc:"treat the identifier as a catalog group and grant every operation in it"`
}

// Command returns the top-level "grant" command.
func Command() *cli.Command {
	var params grantParams

	return &cli.Command{
		Name:    "grant",
		Summary: "Grant an operation or group to a role",
		Description: `Add an operation to a role's grant set. The operation identifier may
be abbreviated the way principals type it: a bare name for ungrouped
operations, "group.name" or "namespace.name" with two segments, or the
full "namespace.group.name". Aliases match too. The grant is stored
under its canonical identifier.

With --group, the identifier names a catalog group and every operation
in it is granted.`,
		Usage: "warden grant <role> <operation> [flags]",
		Examples: []cli.Example{
			{
				Description: "Grant a single operation by abbreviated name",
				Command:     "warden grant mods ban",
			},
			{
				Description: "Grant a whole group",
				Command:     "warden grant mods core.role --group",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("grant", &params)
		},
		Run: func(args []string) error {
			return runGrantRevoke(&params.ConfigFlag, args, params.Group, true)
		},
	}
}

type revokeParams struct {
	cli.ConfigFlag
	Group bool `flag:"group" desc:"treat the identifier as a catalog group and revoke every operation in it"`
}

// RevokeCommand returns the top-level "revoke" command.
func RevokeCommand() *cli.Command {
	var params revokeParams

	return &cli.Command{
		Name:    "revoke",
		Summary: "Revoke an operation or group from a role",
		Description: `Remove an operation from a role's grant set. Identifier abbreviation
works the same as for "warden grant". With --group, every operation in
the named catalog group is revoked; operations the role never had are
skipped.`,
		Usage: "warden revoke <role> <operation> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("revoke", &params)
		},
		Run: func(args []string) error {
			return runGrantRevoke(&params.ConfigFlag, args, params.Group, false)
		},
	}
}

// runGrantRevoke is the shared implementation: resolve the role, the
// identifier (operation or group), then apply the mutation.
func runGrantRevoke(configFlag *cli.ConfigFlag, args []string, group, grant bool) error {
	if len(args) != 2 {
		return fmt.Errorf("expected <role> <operation>, got %d arguments", len(args))
	}

	eng, err := configFlag.OpenEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	store := eng.Store()
	roleName, ok := store.MatchRole(args[0])
	if !ok {
		return fmt.Errorf("role %q not found", args[0])
	}

	operations, err := resolveTargets(eng, args[1], group)
	if err != nil {
		return err
	}

	for _, operation := range operations {
		if grant {
			store.GrantOperation(roleName, operation.ID())
			fmt.Printf("granted %s to %q\n", operation.ID(), roleName)
			continue
		}
		if store.RevokeOperation(roleName, operation.ID()) {
			fmt.Printf("revoked %s from %q\n", operation.ID(), roleName)
		} else if !group {
			return fmt.Errorf("role %q does not have %s", roleName, operation.ID())
		}
	}
	return nil
}

// resolveTargets expands the identifier into the operations to act
// on: one for a plain identifier, the whole group for --group.
func resolveTargets(eng *engine.Engine, text string, group bool) ([]catalog.Operation, error) {
	if group {
		_, operations, err := eng.ResolveGroup(text)
		if errors.Is(err, resolve.ErrNotFound) {
			return nil, fmt.Errorf("group %q not found", text)
		}
		return operations, err
	}

	operation, err := eng.ResolveOperation(text)
	if errors.Is(err, resolve.ErrNotFound) {
		return nil, fmt.Errorf("operation %q not found", text)
	}
	if err != nil {
		return nil, err
	}
	return []catalog.Operation{operation}, nil
}
