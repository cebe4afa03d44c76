// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"github.com/warden-foundation/warden/cmd/warden/cli"
)

// Command returns the "auth" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "auth",
		Summary: "Evaluate permission checks",
		Description: `Evaluate permission checks against the durable policy state — the
same state the host's dispatch pipeline consults — and show which
rule decided the outcome.

Evaluation short-circuits in this order:

  1. administrators are allowed everything
  2. a global allow opens the operation to everyone
  3. a held role granting the operation allows it
  4. an admin-default operation nothing reopened is denied
  5. a global disallow denies it
  6. anything else is open`,
		Subcommands: []*cli.Command{
			checkCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Check a principal against an operation",
				Command:     "warden auth check --principal 76561198000000001 core.ban",
			},
		},
	}
}
