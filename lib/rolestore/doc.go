// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package rolestore owns Warden's durable policy state: role
// definitions, role-to-operation grants, principal-to-role
// assignments, and the two global override sets.
//
// All state lives in memory under one [Store] guarded by a single
// read-write mutex. Every mutation persists the affected unit
// synchronously before returning, so callers observe changes as
// immediately durable or logged-and-degraded, never eventually
// consistent. The on-disk layout is deliberately plain line-oriented
// text so that operators can read and repair it by hand:
//
//	<dir>/roles/<role>.txt                       one granted operation ID per line, sorted
//	<dir>/assignments.txt                        "principalID:role1, role2" per line, sorted
//	<dir>/allowed-admin-operations.txt           one operation ID per line, sorted
//	<dir>/disallowed-nonadmin-operations.txt     one operation ID per line, sorted
//
// Missing or unreadable files load as empty units; malformed lines
// are skipped individually with a logged warning. A failed write is
// logged and the in-memory mutation stands — the session continues in
// a degraded, non-durable mode and unwritten changes are lost on
// restart.
//
// Role names compare case-insensitively and are globally unique.
// Operation identifiers are opaque strings keyed case-insensitively;
// they are deliberately not validated against the live catalog, so a
// grant survives its operation being unregistered across host
// restarts. Such dangling grants are inert, not erroneous.
package rolestore
