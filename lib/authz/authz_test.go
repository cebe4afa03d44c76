// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"strings"
	"testing"

	"github.com/warden-foundation/warden/lib/catalog"
)

// stubView is a fixed policy state for decision tests.
type stubView struct {
	allowed    map[string]bool
	disallowed map[string]bool
	grants     map[uint64]map[string]string // principal -> op -> granting role
}

func (v stubView) GlobalAllowed(id string) bool    { return v.allowed[strings.ToLower(id)] }
func (v stubView) GlobalDisallowed(id string) bool { return v.disallowed[strings.ToLower(id)] }

func (v stubView) RoleGrant(principal uint64, id string) (string, bool) {
	role, ok := v.grants[principal][strings.ToLower(id)]
	return role, ok
}

var (
	banOp  = catalog.Operation{Namespace: "core", Name: "ban", AdminDefault: true}
	kickOp = catalog.Operation{Namespace: "core", Name: "kick"}
	pingOp = catalog.Operation{Namespace: "core", Name: "ping"}
)

func TestAdminAlwaysAllowed(t *testing.T) {
	view := stubView{disallowed: map[string]bool{"core.kick": true}}
	admin := Principal{ID: 1, Admin: true}

	for _, op := range []catalog.Operation{banOp, kickOp, pingOp} {
		result := Check(view, admin, op)
		if result.Decision != Allow || result.Reason != ReasonAdmin {
			t.Errorf("%s: got %v (%v), want allow by admin", op.ID(), result.Decision, result.Reason)
		}
	}
}

func TestAdminDefaultDeniedWithoutOverride(t *testing.T) {
	result := Check(stubView{}, Principal{ID: 42}, banOp)
	if result.Decision != Deny || result.Reason != ReasonAdminDefault {
		t.Errorf("got %v (%v), want deny by admin-default", result.Decision, result.Reason)
	}
}

// A global allow reopens an admin-default operation to everyone, so
// it must be checked before the admin-default denial.
func TestGlobalAllowBeatsAdminDefault(t *testing.T) {
	view := stubView{allowed: map[string]bool{"core.ban": true}}
	result := Check(view, Principal{ID: 42}, banOp)
	if result.Decision != Allow || result.Reason != ReasonGlobalAllow {
		t.Errorf("got %v (%v), want allow by global allow", result.Decision, result.Reason)
	}
}

// A role grant reopens an admin-default operation for role-holders
// specifically.
func TestRoleGrantBeatsAdminDefault(t *testing.T) {
	view := stubView{grants: map[uint64]map[string]string{
		42: {"core.ban": "mods"},
	}}

	result := Check(view, Principal{ID: 42}, banOp)
	if result.Decision != Allow || result.Reason != ReasonRoleGrant {
		t.Fatalf("got %v (%v), want allow by role grant", result.Decision, result.Reason)
	}
	if result.Role != "mods" {
		t.Errorf("granting role = %q, want mods", result.Role)
	}

	// A different principal without the role is still denied.
	result = Check(view, Principal{ID: 77}, banOp)
	if result.Decision != Deny {
		t.Errorf("unassigned principal: got %v, want deny", result.Decision)
	}
}

// A role grant also beats a global disallow on a non-admin operation.
func TestRoleGrantBeatsGlobalDisallow(t *testing.T) {
	view := stubView{
		disallowed: map[string]bool{"core.kick": true},
		grants: map[uint64]map[string]string{
			42: {"core.kick": "mods"},
		},
	}

	if result := Check(view, Principal{ID: 42}, kickOp); result.Decision != Allow {
		t.Errorf("role-holder: got %v (%v), want allow", result.Decision, result.Reason)
	}
	result := Check(view, Principal{ID: 77}, kickOp)
	if result.Decision != Deny || result.Reason != ReasonGlobalDisallow {
		t.Errorf("non-holder: got %v (%v), want deny by global disallow", result.Decision, result.Reason)
	}
}

func TestDefaultOpen(t *testing.T) {
	result := Check(stubView{}, Principal{ID: 42}, pingOp)
	if result.Decision != Allow || result.Reason != ReasonDefaultOpen {
		t.Errorf("got %v (%v), want default-open allow", result.Decision, result.Reason)
	}
	if !Permitted(stubView{}, Principal{ID: 42}, pingOp) {
		t.Error("Permitted disagrees with Check")
	}
}

func TestStrings(t *testing.T) {
	if Allow.String() != "allow" || Deny.String() != "deny" {
		t.Errorf("Decision strings: %q, %q", Allow, Deny)
	}
	reasons := []Reason{ReasonAdmin, ReasonGlobalAllow, ReasonRoleGrant,
		ReasonAdminDefault, ReasonGlobalDisallow, ReasonDefaultOpen}
	for _, reason := range reasons {
		if reason.String() == "unknown" || reason.String() == "" {
			t.Errorf("Reason %d has no description", reason)
		}
	}
}
