// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package authz evaluates permission decisions for operation
// invocations.
//
// The evaluation is a pure function of the principal, the operation,
// and the current policy state read through the [View] interface
// (implemented by lib/rolestore). Rules are checked in strict
// precedence order, first match wins:
//
//  1. Admin principals may do anything.
//  2. A global allow reopens an admin-default operation to everyone.
//  3. A role grant permits the operation for role-holders.
//  4. Otherwise admin-default operations are denied.
//  5. Otherwise a global disallow denies the operation.
//  6. Otherwise ordinary operations are open to everyone.
//
// The order is load-bearing: the global allow and role-grant rules
// must precede the admin-default denial so that overrides and grants
// can reopen admin-default operations, and the global disallow is
// checked last among denials so it only affects operations that are
// not otherwise admin-default and not otherwise role-granted.
//
// [Check] returns a [Result] carrying the decision, the rule that
// decided it, and the granting role when one did — the evaluation
// trace backing "warden auth check" and decision logging.
package authz
