// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
	"github.com/warden-foundation/warden/lib/authz"
	"github.com/warden-foundation/warden/lib/resolve"
)

type checkParams struct {
	cli.JSONOutput
	cli.ConfigFlag
	Principal string `flag:"principal,p" desc:"numeric platform user ID of the principal"`
	Admin     bool   `flag:"admin" desc:"treat the principal as an administrator"`
}

// checkResult is the JSON shape of one evaluated check.
type checkResult struct {
	Principal uint64 `json:"principal"`
	Admin     bool   `json:"admin"`
	Operation string `json:"operation"`
	Decision  string `json:"decision"`
	Reason    string `json:"reason"`
	Role      string `json:"role,omitempty"`
}

func checkCommand() *cli.Command {
	var params checkParams

	return &cli.Command{
		Name:    "check",
		Summary: "Evaluate one permission check with its deciding rule",
		Description: `Evaluate whether a principal may invoke an operation. The operation
identifier may be abbreviated the way principals type it; the output
shows the canonical identifier, the decision, and the rule that
decided it.

Exits 0 for an allow decision and 1 for a deny, so the command works
in scripts:

	warden auth check -p 42 core.ban && echo permitted`,
		Usage: "warden auth check --principal <id> [--admin] <operation> [flags]",
		Examples: []cli.Example{
			{
				Description: "Check an ordinary principal",
				Command:     "warden auth check --principal 76561198000000001 core.ban",
			},
			{
				Description: "Check the admin path",
				Command:     "warden auth check --principal 76561198000000001 --admin role.create",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("auth check", &params)
		},
		Run: func(args []string) error {
			if params.Principal == "" {
				return fmt.Errorf("--principal is required")
			}
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one operation, got %d arguments", len(args))
			}
			id, err := cli.ParsePrincipal(params.Principal)
			if err != nil {
				return err
			}

			eng, err := params.OpenEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			operation, err := eng.ResolveOperation(args[0])
			if errors.Is(err, resolve.ErrNotFound) {
				return fmt.Errorf("operation %q not found", args[0])
			}
			if err != nil {
				return err
			}

			principal := authz.Principal{ID: id, Admin: params.Admin}
			result := eng.Check(principal, operation)

			output := checkResult{
				Principal: id,
				Admin:     params.Admin,
				Operation: operation.ID(),
				Decision:  result.Decision.String(),
				Reason:    result.Reason.String(),
				Role:      result.Role,
			}
			if done, jsonErr := params.EmitJSON(output); done {
				if jsonErr != nil {
					return jsonErr
				}
			} else {
				fmt.Printf("DECISION: %s\n", output.Decision)
				fmt.Printf("OPERATION: %s\n", output.Operation)
				fmt.Printf("REASON: %s\n", output.Reason)
				if output.Role != "" {
					fmt.Printf("ROLE: %s\n", output.Role)
				}
			}

			if result.Decision != authz.Allow {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
