// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete warden CLI command tree.
package commands

import (
	auditcmd "github.com/warden-foundation/warden/cmd/warden/audit"
	authcmd "github.com/warden-foundation/warden/cmd/warden/auth"
	catalogcmd "github.com/warden-foundation/warden/cmd/warden/catalog"
	"github.com/warden-foundation/warden/cmd/warden/cli"
	grantcmd "github.com/warden-foundation/warden/cmd/warden/grant"
	policycmd "github.com/warden-foundation/warden/cmd/warden/policy"
	rolecmd "github.com/warden-foundation/warden/cmd/warden/role"
)

// Root builds and returns the complete warden CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "warden",
		Description: `Warden: role-based command permissions.

Manage roles, grants, and global overrides for a host's operation
catalog, and evaluate permission checks the way the host's dispatch
pipeline does.`,
		Subcommands: []*cli.Command{
			rolecmd.Command(),
			grantcmd.Command(),
			grantcmd.RevokeCommand(),
			policycmd.Command(),
			authcmd.Command(),
			catalogcmd.Command(),
			auditcmd.Command(),
		},
		Examples: []cli.Example{
			{
				Description: "Create a role and grant it an operation",
				Command:     "warden role create mods && warden grant mods core.ban",
			},
			{
				Description: "Assign the role to a principal",
				Command:     "warden role assign 76561198000000001 mods",
			},
			{
				Description: "Check what a permission decision would be",
				Command:     "warden auth check --principal 76561198000000001 core.ban",
			},
		},
	}
}
