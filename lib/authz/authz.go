// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"github.com/warden-foundation/warden/lib/catalog"
)

// Principal is the invoking identity: a stable numeric ID plus the
// host-supplied admin flag. Mapping a display name or session to this
// identity is the host's identity subsystem's job.
type Principal struct {
	ID    uint64
	Admin bool
}

// View is the read-only policy state a decision consumes. Implemented
// by *rolestore.Store.
type View interface {
	// GlobalAllowed reports membership in the admin-operation
	// allow-set.
	GlobalAllowed(operationID string) bool

	// GlobalDisallowed reports membership in the non-admin-operation
	// disallow-set.
	GlobalDisallowed(operationID string) bool

	// RoleGrant reports whether one of the principal's roles grants
	// the operation, naming the granting role.
	RoleGrant(principal uint64, operationID string) (string, bool)
}

// Decision is the outcome of a permission check.
type Decision int

const (
	// Deny means the invocation is not permitted.
	Deny Decision = iota

	// Allow means the invocation is permitted.
	Allow
)

// String returns "allow" or "deny".
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Reason identifies the rule that decided a check.
type Reason int

const (
	// ReasonAdmin means the principal is an administrator.
	ReasonAdmin Reason = iota

	// ReasonGlobalAllow means the operation is in the global
	// allow-set, open to everyone.
	ReasonGlobalAllow

	// ReasonRoleGrant means one of the principal's roles grants the
	// operation.
	ReasonRoleGrant

	// ReasonAdminDefault means the operation is reserved to
	// administrators and nothing reopened it.
	ReasonAdminDefault

	// ReasonGlobalDisallow means the operation is in the global
	// disallow-set.
	ReasonGlobalDisallow

	// ReasonDefaultOpen means no rule applied: ordinary operations
	// are open to everyone.
	ReasonDefaultOpen
)

// String returns a human-readable rule description.
func (r Reason) String() string {
	switch r {
	case ReasonAdmin:
		return "principal is an administrator"
	case ReasonGlobalAllow:
		return "operation is globally allowed for everyone"
	case ReasonRoleGrant:
		return "a held role grants the operation"
	case ReasonAdminDefault:
		return "operation is admin-only by default"
	case ReasonGlobalDisallow:
		return "operation is globally disallowed for non-admins"
	case ReasonDefaultOpen:
		return "no rule applies, operation is open"
	default:
		return "unknown"
	}
}

// Result describes the outcome of a permission check, including
// which rule decided it. The trace supports decision logging and
// "warden auth check".
type Result struct {
	// Decision is Allow or Deny.
	Decision Decision

	// Reason is the rule that decided the check.
	Reason Reason

	// Role is the granting role's name. Only set when Reason is
	// ReasonRoleGrant.
	Role string
}

// Check evaluates whether principal may invoke operation, reading
// policy state from view. See the package documentation for the rule
// order.
func Check(view View, principal Principal, operation catalog.Operation) Result {
	if principal.Admin {
		return Result{Decision: Allow, Reason: ReasonAdmin}
	}

	id := operation.ID()
	if view.GlobalAllowed(id) {
		return Result{Decision: Allow, Reason: ReasonGlobalAllow}
	}
	if role, granted := view.RoleGrant(principal.ID, id); granted {
		return Result{Decision: Allow, Reason: ReasonRoleGrant, Role: role}
	}
	if operation.AdminDefault {
		return Result{Decision: Deny, Reason: ReasonAdminDefault}
	}
	if view.GlobalDisallowed(id) {
		return Result{Decision: Deny, Reason: ReasonGlobalDisallow}
	}
	return Result{Decision: Allow, Reason: ReasonDefaultOpen}
}

// Permitted is the boolean shorthand for Check.
func Permitted(view View, principal Principal, operation catalog.Operation) bool {
	return Check(view, principal, operation).Decision == Allow
}
