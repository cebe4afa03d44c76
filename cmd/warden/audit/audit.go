// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package audit implements the "warden audit" command group for
// reading the administrative audit log.
package audit

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/warden-foundation/warden/cmd/warden/cli"
	"github.com/warden-foundation/warden/lib/audit"
)

// Command returns the "audit" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "audit",
		Summary: "Read the administrative audit log",
		Subcommands: []*cli.Command{
			listCommand(),
		},
	}
}

type listParams struct {
	cli.JSONOutput
	cli.ConfigFlag
	Limit int `flag:"limit,n" desc:"show only the most recent N records (0 for all)"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List audit records, oldest first",
		Description: `Decode and print the audit log configured as audit_log. Every
administrative mutation — role lifecycle, grants, assignment changes,
and global override changes — appends one record.`,
		Usage: "warden audit list [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("audit list", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			cfg, err := params.Load()
			if err != nil {
				return err
			}
			if cfg.AuditLog == "" {
				return fmt.Errorf("auditing is disabled: no audit_log configured")
			}

			records, err := audit.ReadFile(cfg.AuditLog, cli.NewCommandLogger())
			if err != nil {
				return err
			}
			if params.Limit > 0 && len(records) > params.Limit {
				records = records[len(records)-params.Limit:]
			}

			if done, jsonErr := params.EmitJSON(records); done {
				return jsonErr
			}

			if len(records) == 0 {
				fmt.Println("no audit records")
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "TIME\tACTION\tROLE\tOPERATION\tPRINCIPAL")
			for _, record := range records {
				principal := ""
				if record.Principal != 0 {
					principal = fmt.Sprintf("%d", record.Principal)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					record.Time.Format("2006-01-02 15:04:05"),
					record.Action, record.Role, record.Operation, principal)
			}
			return tw.Flush()
		},
	}
}
