// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

// Operation is one invocable action the host exposes. It is an
// immutable snapshot of the host's registration: Warden never mutates
// operations and never persists them.
type Operation struct {
	// Namespace is the top-level scope, typically the plugin or
	// subsystem that registered the operation.
	Namespace string `json:"namespace"`

	// Group is the optional command group within the namespace.
	Group string `json:"group,omitempty"`

	// Name is the operation name within its namespace and group.
	Name string `json:"name"`

	// Alias is an optional short form of Name, unique within the
	// operation's namespace+group scope.
	Alias string `json:"alias,omitempty"`

	// AdminDefault marks operations the host's baseline policy
	// reserves to administrators absent any override.
	AdminDefault bool `json:"admin,omitempty"`
}

// ID returns the canonical fully-qualified identifier:
// "namespace.group.name", with the group segment omitted when the
// operation has no group.
func (o Operation) ID() string {
	if o.Group == "" {
		return o.Namespace + "." + o.Name
	}
	return o.Namespace + "." + o.Group + "." + o.Name
}

// Group is a named command group within a namespace. Groups exist so
// that operators can grant or revoke a whole family of operations at
// once.
type Group struct {
	// Namespace is the scope the group lives in.
	Namespace string `json:"namespace"`

	// Name is the group name.
	Name string `json:"name"`

	// Alias is an optional short form of Name.
	Alias string `json:"alias,omitempty"`
}

// ID returns the canonical fully-qualified group identifier
// "namespace.name".
func (g Group) ID() string {
	return g.Namespace + "." + g.Name
}

// Catalog enumerates a host's registered operations and groups. The
// enumeration order is whatever the host supplies; it is not
// contractually stable across restarts.
type Catalog interface {
	// Operations returns every registered operation.
	Operations() []Operation

	// Groups returns every registered group.
	Groups() []Group
}

// Static is a Catalog over fixed slices. Hosts that register
// operations programmatically build one at startup; tests use it for
// pinned fixture catalogs.
type Static struct {
	ops    []Operation
	groups []Group
}

// NewStatic builds a Static catalog from the given operations and
// explicitly declared groups. Groups that appear on operations but are
// not declared explicitly are derived (without aliases) in first-seen
// operation order.
func NewStatic(ops []Operation, groups []Group) *Static {
	s := &Static{
		ops:    append([]Operation(nil), ops...),
		groups: append([]Group(nil), groups...),
	}
	s.groups = deriveGroups(s.ops, s.groups)
	return s
}

// Operations implements Catalog.
func (s *Static) Operations() []Operation {
	return append([]Operation(nil), s.ops...)
}

// Groups implements Catalog.
func (s *Static) Groups() []Group {
	return append([]Group(nil), s.groups...)
}

// deriveGroups appends a Group entry for every namespace+group pair
// that appears on an operation but has no explicit declaration.
func deriveGroups(ops []Operation, declared []Group) []Group {
	seen := make(map[string]bool, len(declared))
	for _, g := range declared {
		seen[g.ID()] = true
	}
	groups := declared
	for _, op := range ops {
		if op.Group == "" {
			continue
		}
		g := Group{Namespace: op.Namespace, Name: op.Group}
		if seen[g.ID()] {
			continue
		}
		seen[g.ID()] = true
		groups = append(groups, g)
	}
	return groups
}
