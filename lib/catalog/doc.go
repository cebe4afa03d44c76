// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog defines the read-only view of a host's registered
// operations that the Warden engine consumes.
//
// The host owns the command surface: it knows which operations exist,
// which namespace and group each lives in, which short aliases are
// registered, and which operations its baseline policy reserves to
// administrators. Warden never introspects host internals to discover
// any of this — the host hands the engine a [Catalog] of plain
// [Operation] and [Group] values and the engine works only with those.
//
// Hosts that register operations programmatically use [Static]. Hosts
// that describe their command surface on disk author a JSONC manifest
// (JSON extended with comments and trailing commas) and load it with
// [ReadFile].
//
// Operation identifiers are canonical strings of the form
// "namespace.group.name", with the group segment omitted for
// ungrouped operations. All downstream state (role grants, global
// overrides) is keyed on this canonical form; see lib/resolve for how
// abbreviated user input is mapped onto it.
package catalog
