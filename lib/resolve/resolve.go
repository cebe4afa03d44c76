// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/warden-foundation/warden/lib/catalog"
)

// ErrNotFound indicates that no catalog entry matched the input text.
// Callers surface it as a rejection to the user; it is never fatal.
var ErrNotFound = errors.New("not found")

// Resolver expands abbreviated operation and group names against a
// host catalog. It is stateless: every resolution reads the catalog
// fresh, so a catalog that changes between calls is picked up
// immediately.
type Resolver struct {
	catalog catalog.Catalog
}

// New returns a Resolver over the given catalog.
func New(c catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Operation resolves user-typed text into exactly one catalog
// operation. The text is split on "." into one, two, or three
// segments, interpreted as {name}, {group-or-namespace}.{name}, or
// {namespace}.{group}.{name}. Every segment is matched
// case-insensitively; the final segment matches an operation's name
// or alias, a group segment matches a group's name or alias.
//
// A group segment given for an ungrouped operation is tolerated as a
// namespace-level disambiguator: "core.ping" matches the ungrouped
// operation ping in namespace core. A bare name never matches a
// grouped operation.
//
// The first matching entry in catalog enumeration order wins.
func (r *Resolver) Operation(text string) (catalog.Operation, error) {
	var namespace, group, name string
	switch segments := strings.Split(text, "."); len(segments) {
	case 1:
		name = segments[0]
	case 2:
		group, name = segments[0], segments[1]
	case 3:
		namespace, group, name = segments[0], segments[1], segments[2]
	default:
		return catalog.Operation{}, fmt.Errorf("operation %q: %w", text, ErrNotFound)
	}

	groupAliases := r.groupAliases()
	for _, op := range r.catalog.Operations() {
		if namespace != "" && !strings.EqualFold(namespace, op.Namespace) {
			continue
		}
		if !matchesName(name, op.Name, op.Alias) {
			continue
		}
		if op.Group == "" {
			// Ungrouped: a group segment, if present, must name the
			// operation's namespace.
			if group == "" || strings.EqualFold(group, op.Namespace) {
				return op, nil
			}
			continue
		}
		if group == "" {
			continue
		}
		alias := groupAliases[strings.ToLower(op.Namespace+"."+op.Group)]
		if matchesName(group, op.Group, alias) {
			return op, nil
		}
	}
	return catalog.Operation{}, fmt.Errorf("operation %q: %w", text, ErrNotFound)
}

// Group resolves user-typed text into a canonical group identifier
// plus every operation registered under a matching group. The text is
// one or two segments: {group} or {namespace}.{group}, matched
// case-insensitively against group names and aliases.
//
// Without a namespace segment, same-named groups in several
// namespaces all contribute their operations; the returned canonical
// identifier is the first match in catalog enumeration order. A group
// with no registered operations resolves as not found.
func (r *Resolver) Group(text string) (string, []catalog.Operation, error) {
	var namespace, name string
	switch segments := strings.Split(text, "."); len(segments) {
	case 1:
		name = segments[0]
	case 2:
		namespace, name = segments[0], segments[1]
	default:
		return "", nil, fmt.Errorf("group %q: %w", text, ErrNotFound)
	}

	groupAliases := r.groupAliases()
	var canonical string
	var ops []catalog.Operation
	for _, op := range r.catalog.Operations() {
		if op.Group == "" {
			continue
		}
		if namespace != "" && !strings.EqualFold(namespace, op.Namespace) {
			continue
		}
		alias := groupAliases[strings.ToLower(op.Namespace+"."+op.Group)]
		if !matchesName(name, op.Group, alias) {
			continue
		}
		if canonical == "" {
			canonical = op.Namespace + "." + op.Group
		}
		ops = append(ops, op)
	}
	if len(ops) == 0 {
		return "", nil, fmt.Errorf("group %q: %w", text, ErrNotFound)
	}
	return canonical, ops, nil
}

// groupAliases builds a lookup from lower-cased "namespace.group" to
// the group's registered alias.
func (r *Resolver) groupAliases() map[string]string {
	aliases := make(map[string]string)
	for _, g := range r.catalog.Groups() {
		if g.Alias != "" {
			aliases[strings.ToLower(g.ID())] = g.Alias
		}
	}
	return aliases
}

// matchesName reports whether input equals name or alias,
// case-insensitively. An empty alias never matches.
func matchesName(input, name, alias string) bool {
	if strings.EqualFold(input, name) {
		return true
	}
	return alias != "" && strings.EqualFold(input, alias)
}
