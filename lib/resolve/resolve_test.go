// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"errors"
	"testing"

	"github.com/warden-foundation/warden/lib/catalog"
)

// fixtureCatalog pins a catalog with a deliberately ambiguous "create"
// operation in two groups, aliases at both the group and operation
// level, and ungrouped operations in two namespaces.
func fixtureCatalog(t *testing.T) *catalog.Static {
	t.Helper()
	return catalog.NewStatic(
		[]catalog.Operation{
			{Namespace: "core", Group: "role", Name: "create", AdminDefault: true},
			{Namespace: "core", Group: "role", Name: "list", Alias: "ls", AdminDefault: true},
			{Namespace: "core", Name: "ping"},
			{Namespace: "core", Name: "kick", Alias: "k", AdminDefault: true},
			{Namespace: "core", Name: "ban", AdminDefault: false},
			{Namespace: "economy", Group: "shop", Name: "create", AdminDefault: true},
			{Namespace: "economy", Group: "shop", Name: "buy"},
			{Namespace: "economy", Name: "balance", Alias: "bal"},
		},
		[]catalog.Group{
			{Namespace: "core", Name: "role", Alias: "r"},
			{Namespace: "economy", Name: "shop", Alias: "s"},
		},
	)
}

func TestOperation(t *testing.T) {
	resolver := New(fixtureCatalog(t))

	tests := []struct {
		input string
		want  string
	}{
		// Bare names match only ungrouped operations.
		{"ping", "core.ping"},
		{"PING", "core.ping"},
		{"k", "core.kick"},
		{"bal", "economy.balance"},

		// Group.name forms, with group name or group alias.
		{"role.create", "core.role.create"},
		{"r.create", "core.role.create"},
		{"R.LS", "core.role.list"},
		{"shop.buy", "economy.shop.buy"},
		{"s.buy", "economy.shop.buy"},

		// A group segment on an ungrouped operation is tolerated as a
		// namespace disambiguator.
		{"core.ping", "core.ping"},
		{"economy.bal", "economy.balance"},

		// Fully qualified.
		{"core.role.create", "core.role.create"},
		{"economy.shop.create", "economy.shop.create"},
		{"Economy.S.Create", "economy.shop.create"},
	}

	for _, test := range tests {
		op, err := resolver.Operation(test.input)
		if err != nil {
			t.Errorf("Operation(%q): %v", test.input, err)
			continue
		}
		if op.ID() != test.want {
			t.Errorf("Operation(%q) = %q, want %q", test.input, op.ID(), test.want)
		}
	}
}

func TestOperationNotFound(t *testing.T) {
	resolver := New(fixtureCatalog(t))

	for _, input := range []string{
		"nope",
		"create",             // grouped operations never match bare names
		"role.ping",          // ping is not in the role group
		"economy.ping",       // ping lives in core
		"core.shop.buy",      // shop is an economy group
		"a.b.c.d",            // too many segments
		"ls",                 // operation alias does not escape its group
	} {
		_, err := resolver.Operation(input)
		if err == nil {
			t.Errorf("Operation(%q) resolved, want not found", input)
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Operation(%q) error = %v, want ErrNotFound", input, err)
		}
	}
}

// Ambiguous input resolves to the first entry in catalog enumeration
// order. The fixture registers core.role.create before
// economy.shop.create, so "role.create" vs "shop.create" are distinct
// but a hypothetical shared group name would pick core first. Pin the
// adminDefault flag alongside the identifier.
func TestOperationAmbiguityPinsEnumerationOrder(t *testing.T) {
	static := catalog.NewStatic([]catalog.Operation{
		{Namespace: "core", Group: "admin", Name: "create", AdminDefault: true},
		{Namespace: "economy", Group: "admin", Name: "create"},
	}, nil)
	resolver := New(static)

	op, err := resolver.Operation("admin.create")
	if err != nil {
		t.Fatalf("Operation: %v", err)
	}
	if op.ID() != "core.admin.create" {
		t.Errorf("ambiguous resolution = %q, want first-seen core.admin.create", op.ID())
	}
	if !op.AdminDefault {
		t.Errorf("resolved operation lost its admin-default flag")
	}
}

// Resolving the canonical form of a resolved operation yields the same
// operation.
func TestOperationIdempotence(t *testing.T) {
	resolver := New(fixtureCatalog(t))

	for _, input := range []string{"ping", "r.ls", "s.buy", "core.kick", "bal"} {
		first, err := resolver.Operation(input)
		if err != nil {
			t.Fatalf("Operation(%q): %v", input, err)
		}
		second, err := resolver.Operation(first.ID())
		if err != nil {
			t.Fatalf("Operation(%q): %v", first.ID(), err)
		}
		if first != second {
			t.Errorf("Operation(%q) = %+v, but Operation(%q) = %+v", input, first, first.ID(), second)
		}
	}
}

func TestGroup(t *testing.T) {
	resolver := New(fixtureCatalog(t))

	id, ops, err := resolver.Group("role")
	if err != nil {
		t.Fatalf("Group(role): %v", err)
	}
	if id != "core.role" {
		t.Errorf("Group(role) id = %q, want core.role", id)
	}
	if len(ops) != 2 {
		t.Errorf("Group(role) returned %d operations, want 2", len(ops))
	}

	// Group alias, namespace-qualified, case-insensitive.
	id, ops, err = resolver.Group("Economy.S")
	if err != nil {
		t.Fatalf("Group(Economy.S): %v", err)
	}
	if id != "economy.shop" {
		t.Errorf("Group(Economy.S) id = %q, want economy.shop", id)
	}
	if len(ops) != 2 {
		t.Errorf("Group(Economy.S) returned %d operations, want 2", len(ops))
	}

	if _, _, err := resolver.Group("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Group(nope) error = %v, want ErrNotFound", err)
	}
	if _, _, err := resolver.Group("a.b.c"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Group(a.b.c) error = %v, want ErrNotFound", err)
	}
}

// Without a namespace, a group name shared by several namespaces
// contributes operations from all of them; the canonical identifier is
// the first in enumeration order.
func TestGroupSpansNamespaces(t *testing.T) {
	static := catalog.NewStatic([]catalog.Operation{
		{Namespace: "core", Group: "admin", Name: "reload"},
		{Namespace: "economy", Group: "admin", Name: "reset"},
	}, nil)
	resolver := New(static)

	id, ops, err := resolver.Group("admin")
	if err != nil {
		t.Fatalf("Group(admin): %v", err)
	}
	if id != "core.admin" {
		t.Errorf("id = %q, want core.admin", id)
	}
	if len(ops) != 2 {
		t.Errorf("got %d operations, want 2 (both namespaces)", len(ops))
	}

	// Namespace-qualified picks one side only.
	_, ops, err = resolver.Group("economy.admin")
	if err != nil {
		t.Fatalf("Group(economy.admin): %v", err)
	}
	if len(ops) != 1 || ops[0].ID() != "economy.admin.reset" {
		t.Errorf("Group(economy.admin) = %v, want only economy.admin.reset", ops)
	}
}
