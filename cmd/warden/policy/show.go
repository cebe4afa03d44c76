// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

type showParams struct {
	cli.JSONOutput
	cli.ConfigFlag
}

// overrides is the JSON shape of the two global override sets.
type overrides struct {
	Allowed    []string `json:"allowed"`
	Disallowed []string `json:"disallowed"`
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show both global override sets",
		Usage:   "warden policy show [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("policy show", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			eng, err := params.OpenEngine()
			if err != nil {
				return err
			}
			defer eng.Close()

			store := eng.Store()
			state := overrides{
				Allowed:    store.AllowedAdminOperations(),
				Disallowed: store.DisallowedNonAdminOperations(),
			}

			if done, jsonErr := params.EmitJSON(state); done {
				return jsonErr
			}

			fmt.Println("ALLOWED (admin-default operations opened to everyone):")
			if len(state.Allowed) == 0 {
				fmt.Println("  none")
			}
			for _, id := range state.Allowed {
				fmt.Printf("  %s\n", id)
			}

			fmt.Println("\nDISALLOWED (operations blocked without a role grant):")
			if len(state.Disallowed) == 0 {
				fmt.Println("  none")
			}
			for _, id := range state.Disallowed {
				fmt.Printf("  %s\n", id)
			}
			return nil
		},
	}
}
