// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package role

import (
	"strings"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

// Command returns the "role" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "role",
		Summary: "Manage roles and their assignment to principals",
		Description: `Manage roles: named bundles of operation grants that are assigned to
principals. A principal may hold any number of roles; a permission
check passes when any held role grants the checked operation.

Role names are case-insensitive. Characters that cannot appear in a
file name are replaced with "_" on creation, since each role is
persisted as its own record under the state directory.`,
		Subcommands: []*cli.Command{
			createCommand(),
			deleteCommand(),
			listCommand(),
			ofCommand(),
			operationsCommand(),
			assignCommand(),
			unassignCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Create a role and inspect it",
				Command:     "warden role create mods && warden role operations mods",
			},
			{
				Description: "Assign and verify",
				Command:     "warden role assign 76561198000000001 mods && warden role of 76561198000000001",
			},
		},
	}
}

// sanitizeRoleName replaces characters that cannot appear in a file
// name with "_". Each role is persisted as its own record keyed by
// name, so the name has to survive as a path segment.
func sanitizeRoleName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(`/\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, name)
}
