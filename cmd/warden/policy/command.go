// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"errors"
	"fmt"

	"github.com/warden-foundation/warden/cmd/warden/cli"
	"github.com/warden-foundation/warden/lib/catalog"
	"github.com/warden-foundation/warden/lib/engine"
	"github.com/warden-foundation/warden/lib/resolve"
)

// Command returns the "policy" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "policy",
		Summary: "Manage the global allow and disallow overrides",
		Description: `Manage the two global override sets. They are asymmetric:

  allow     on an admin-default operation: open it up for everyone.
            on a regular operation: lift a standing global disallow.
  disallow  on a regular operation: block it for everyone without a
            role granting it.
            on an admin-default operation: withdraw a standing global
            allow.

Role grants always win over a global disallow, and admins are never
affected by either set.`,
		Subcommands: []*cli.Command{
			allowCommand(),
			disallowCommand(),
			allowGroupCommand(),
			disallowGroupCommand(),
			showCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Open an admin-default operation to everyone",
				Command:     "warden policy allow role.list",
			},
			{
				Description: "Block an operation server-wide",
				Command:     "warden policy disallow core.kick",
			},
		},
	}
}

// resolveOperation resolves user-typed text, mapping a resolver miss
// to a friendlier CLI error.
func resolveOperation(eng *engine.Engine, text string) (catalog.Operation, error) {
	operation, err := eng.ResolveOperation(text)
	if errors.Is(err, resolve.ErrNotFound) {
		return catalog.Operation{}, fmt.Errorf("operation %q not found", text)
	}
	return operation, err
}

// resolveGroup is the group flavor of resolveOperation.
func resolveGroup(eng *engine.Engine, text string) ([]catalog.Operation, error) {
	_, operations, err := eng.ResolveGroup(text)
	if errors.Is(err, resolve.ErrNotFound) {
		return nil, fmt.Errorf("group %q not found", text)
	}
	return operations, err
}
