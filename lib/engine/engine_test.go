// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/warden-foundation/warden/lib/authz"
	"github.com/warden-foundation/warden/lib/catalog"
	"github.com/warden-foundation/warden/lib/config"
	"github.com/warden-foundation/warden/lib/resolve"
)

func testCatalog() *catalog.Static {
	return catalog.NewStatic([]catalog.Operation{
		{Namespace: "core", Name: "ban", AdminDefault: false},
		{Namespace: "core", Name: "kick", AdminDefault: false},
		{Namespace: "core", Group: "role", Name: "create", AdminDefault: true},
		{Namespace: "core", Group: "role", Name: "list", Alias: "ls", AdminDefault: true},
	}, nil)
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		StateDir: dir,
		AuditLog: filepath.Join(dir, "audit.log"),
	}
	e, err := New(cfg, testCatalog(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

// The role lifecycle scenario: a role grants an operation to its
// holders and only its holders, and unassignment withdraws it.
func TestRoleLifecycle(t *testing.T) {
	e := newEngine(t)
	store := e.Store()

	if !store.CreateRole("mods") {
		t.Fatal("CreateRole failed")
	}
	op, err := e.ResolveOperation("core.ban")
	if err != nil {
		t.Fatal(err)
	}
	store.GrantOperation("mods", op.ID())
	if !store.AssignRole(42, "mods") {
		t.Fatal("AssignRole failed")
	}

	member := authz.Principal{ID: 42}
	if !e.CanExecute(member, op) {
		t.Error("role-holder denied core.ban")
	}

	if !store.UnassignRole(42, "mods") {
		t.Fatal("UnassignRole failed")
	}
	if e.CanExecute(member, op) {
		t.Error("former role-holder still allowed core.ban")
	}
}

// A globally disallowed ordinary operation is blocked for everyone
// except admins and role-holders.
func TestGlobalDisallowScenario(t *testing.T) {
	e := newEngine(t)
	op, err := e.ResolveOperation("kick")
	if err != nil {
		t.Fatal(err)
	}

	nobody := authz.Principal{ID: 7}
	if !e.CanExecute(nobody, op) {
		t.Fatal("ordinary operation should start open")
	}

	e.Store().Disallow(op.ID(), op.AdminDefault)
	if e.CanExecute(nobody, op) {
		t.Error("disallowed operation still open to non-admins")
	}
	if !e.CanExecute(authz.Principal{ID: 1, Admin: true}, op) {
		t.Error("admin blocked by a non-admin disallow")
	}

	// A role grant beats the global disallow.
	e.Store().CreateRole("mods")
	e.Store().GrantOperation("mods", op.ID())
	e.Store().AssignRole(7, "mods")
	if !e.CanExecute(nobody, op) {
		t.Error("role grant did not beat the global disallow")
	}
}

// A global allow reopens an admin-default operation to everyone.
func TestGlobalAllowScenario(t *testing.T) {
	e := newEngine(t)
	op, err := e.ResolveOperation("role.ls")
	if err != nil {
		t.Fatal(err)
	}
	if op.ID() != "core.role.list" {
		t.Fatalf("resolved %q, want core.role.list", op.ID())
	}

	nobody := authz.Principal{ID: 7}
	if e.CanExecute(nobody, op) {
		t.Fatal("admin-default operation should start closed")
	}

	e.Store().Allow(op.ID(), op.AdminDefault)
	if !e.CanExecute(nobody, op) {
		t.Error("globally allowed admin operation still closed")
	}
}

// The full trace surfaces which rule decided.
func TestCheckTrace(t *testing.T) {
	e := newEngine(t)
	op, _ := e.ResolveOperation("core.ban")

	e.Store().CreateRole("mods")
	e.Store().GrantOperation("mods", op.ID())
	e.Store().AssignRole(42, "mods")

	result := e.Check(authz.Principal{ID: 42}, op)
	if result.Reason != authz.ReasonRoleGrant || result.Role != "mods" {
		t.Errorf("trace = %+v, want role grant by mods", result)
	}
}

// New with a manifest path loads the catalog from disk.
func TestNewFromManifest(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "catalog.jsonc")
	manifest := `{
		// host command surface
		"operations": [
			{"namespace": "core", "name": "ping"},
		],
	}`
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{StateDir: filepath.Join(dir, "state"), Catalog: manifestPath}
	e, err := New(cfg, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()

	if _, err := e.ResolveOperation("ping"); err != nil {
		t.Errorf("manifest catalog not resolvable: %v", err)
	}
}

func TestNewWithoutCatalog(t *testing.T) {
	e, err := New(&config.Config{StateDir: t.TempDir()}, nil, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer e.Close()

	// Administration works; resolution finds nothing.
	if !e.Store().CreateRole("mods") {
		t.Fatal("CreateRole failed")
	}
	if _, err := e.ResolveOperation("ban"); !errors.Is(err, resolve.ErrNotFound) {
		t.Fatalf("ResolveOperation on empty catalog: got %v, want ErrNotFound", err)
	}
}
