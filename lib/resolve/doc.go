// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package resolve maps user-typed operation and group names onto
// canonical catalog identifiers.
//
// Users abbreviate: they type "ban" instead of "core.ban", "r.create"
// instead of "core.role.create", or a registered short alias instead
// of the full name. The resolver expands any of these forms into
// exactly one fully-qualified [catalog.Operation], so that everything
// downstream (role grants, global overrides, the decision engine) is
// keyed on canonical identifiers only.
//
// Matching is case-insensitive on every segment. When an abbreviated
// name matches operations in more than one namespace, the first entry
// in catalog enumeration order wins. Hosts do not guarantee a stable
// enumeration order, so a tie between namespaces is resolved
// arbitrarily but consistently within one process run; operators who
// need a specific operation spell out the namespace.
package resolve
