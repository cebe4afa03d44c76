// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/warden-foundation/warden/cmd/warden/cli"
)

// writeFixture lays out a config file, a catalog manifest, and an
// empty state directory, returning the config path.
func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	manifest := filepath.Join(dir, "catalog.jsonc")
	manifestBody := `{
	// operations the test host exposes
	"operations": [
		{"namespace": "core", "name": "ban"},
		{"namespace": "core", "name": "kick"},
		{"namespace": "core", "group": "role", "name": "create", "admin": true},
		{"namespace": "core", "group": "role", "name": "list", "alias": "ls", "admin": true},
	],
}`
	if err := os.WriteFile(manifest, []byte(manifestBody), 0o644); err != nil {
		t.Fatal(err)
	}

	config := filepath.Join(dir, "warden.yaml")
	configBody := "state_dir: " + filepath.Join(dir, "state") + "\n" +
		"catalog: " + manifest + "\n" +
		"audit_log: " + filepath.Join(dir, "audit.log") + "\n"
	if err := os.WriteFile(config, []byte(configBody), 0o644); err != nil {
		t.Fatal(err)
	}
	return config
}

// run executes one command line against a fresh tree.
func run(t *testing.T, config string, args ...string) error {
	t.Helper()
	return Root().Execute(append(args, "--config", config))
}

func TestRoleGrantCheckFlow(t *testing.T) {
	config := writeFixture(t)

	steps := [][]string{
		{"role", "create", "mods"},
		{"grant", "mods", "ban"},
		{"role", "assign", "42", "mods"},
	}
	for _, step := range steps {
		if err := run(t, config, step...); err != nil {
			t.Fatalf("%v: %v", step, err)
		}
	}

	// The principal with the role passes; another principal is open
	// too since core.ban is an ordinary operation.
	if err := run(t, config, "auth", "check", "--principal", "42", "ban"); err != nil {
		t.Fatalf("auth check with role: %v", err)
	}

	// Admin-default operations deny without a grant, via exit code 1.
	err := run(t, config, "auth", "check", "--principal", "42", "role.create")
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("auth check on admin-default operation: got %v, want exit code 1", err)
	}
}

func TestDuplicateRoleFails(t *testing.T) {
	config := writeFixture(t)

	if err := run(t, config, "role", "create", "mods"); err != nil {
		t.Fatal(err)
	}
	err := run(t, config, "role", "create", "Mods")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("duplicate create: got %v, want already-exists error", err)
	}
}

func TestGrantUnknownOperationFails(t *testing.T) {
	config := writeFixture(t)

	if err := run(t, config, "role", "create", "mods"); err != nil {
		t.Fatal(err)
	}
	err := run(t, config, "grant", "mods", "nonexistent")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("grant unknown operation: got %v, want not-found error", err)
	}
}

func TestPolicyAllowReopensAdminDefault(t *testing.T) {
	config := writeFixture(t)

	// role.ls resolves through the group alias to core.role.list.
	if err := run(t, config, "policy", "allow", "role.ls"); err != nil {
		t.Fatalf("policy allow: %v", err)
	}
	if err := run(t, config, "auth", "check", "--principal", "7", "role.list"); err != nil {
		t.Fatalf("auth check after global allow: %v", err)
	}
}

func TestPolicyDisallowBlocksAndRoleWins(t *testing.T) {
	config := writeFixture(t)

	if err := run(t, config, "policy", "disallow", "kick"); err != nil {
		t.Fatal(err)
	}
	err := run(t, config, "auth", "check", "--principal", "7", "kick")
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("auth check after disallow: got %v, want exit code 1", err)
	}

	steps := [][]string{
		{"role", "create", "mods"},
		{"grant", "mods", "kick"},
		{"role", "assign", "7", "mods"},
	}
	for _, step := range steps {
		if err := run(t, config, step...); err != nil {
			t.Fatalf("%v: %v", step, err)
		}
	}
	if err := run(t, config, "auth", "check", "--principal", "7", "kick"); err != nil {
		t.Fatalf("role grant should beat the global disallow: %v", err)
	}
}

func TestGroupGrant(t *testing.T) {
	config := writeFixture(t)

	steps := [][]string{
		{"role", "create", "staff"},
		{"grant", "staff", "role", "--group"},
		{"role", "assign", "9", "staff"},
	}
	for _, step := range steps {
		if err := run(t, config, step...); err != nil {
			t.Fatalf("%v: %v", step, err)
		}
	}

	// Both operations of the group are granted.
	for _, operation := range []string{"role.create", "role.list"} {
		if err := run(t, config, "auth", "check", "--principal", "9", operation); err != nil {
			t.Fatalf("auth check %s after group grant: %v", operation, err)
		}
	}
}

func TestDeleteRoleCascades(t *testing.T) {
	config := writeFixture(t)

	steps := [][]string{
		{"role", "create", "mods"},
		{"grant", "mods", "role.create"},
		{"role", "assign", "42", "mods"},
		{"role", "delete", "mods"},
	}
	for _, step := range steps {
		if err := run(t, config, step...); err != nil {
			t.Fatalf("%v: %v", step, err)
		}
	}

	err := run(t, config, "auth", "check", "--principal", "42", "role.create")
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("auth check after role delete: got %v, want exit code 1", err)
	}
}

func TestUnknownSubcommandSuggestion(t *testing.T) {
	err := Root().Execute([]string{"rolle"})
	if err == nil || !strings.Contains(err.Error(), `"role"`) {
		t.Fatalf("unknown subcommand: got %v, want suggestion of role", err)
	}
}
