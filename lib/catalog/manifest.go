// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// manifest is the on-disk shape of a catalog manifest file.
type manifest struct {
	Operations []Operation `json:"operations"`
	Groups     []Group     `json:"groups,omitempty"`
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals and validates the result into a Static catalog. The
// input format is plain JSON extended with // line comments,
// /* block comments */, and trailing commas.
func Parse(data []byte) (*Static, error) {
	stripped := jsonc.ToJSON(data)

	var m manifest
	if err := json.Unmarshal(stripped, &m); err != nil {
		return nil, fmt.Errorf("parsing catalog manifest: %w", err)
	}
	if err := validate(m); err != nil {
		return nil, err
	}
	return NewStatic(m.Operations, m.Groups), nil
}

// ReadFile reads a JSONC catalog manifest from disk and parses it.
// Returns a descriptive error if the file cannot be read or the
// manifest is malformed.
func ReadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	static, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return static, nil
}

// validate checks structural requirements: namespace and name are
// required everywhere, operation IDs are unique (case-insensitive),
// and aliases do not collide with names or other aliases inside their
// namespace+group scope.
func validate(m manifest) error {
	ids := make(map[string]bool, len(m.Operations))
	// Per-scope view of names and aliases. An alias only has to be
	// unique within its own namespace+group scope.
	scoped := make(map[string]map[string]bool)

	for i, op := range m.Operations {
		if op.Namespace == "" {
			return fmt.Errorf("operation %d: namespace is required", i)
		}
		if op.Name == "" {
			return fmt.Errorf("operation %d: name is required", i)
		}
		id := strings.ToLower(op.ID())
		if ids[id] {
			return fmt.Errorf("duplicate operation %q", op.ID())
		}
		ids[id] = true

		scope := strings.ToLower(op.Namespace + "." + op.Group)
		names := scoped[scope]
		if names == nil {
			names = make(map[string]bool)
			scoped[scope] = names
		}
		names[strings.ToLower(op.Name)] = true
		if op.Alias != "" {
			alias := strings.ToLower(op.Alias)
			if names[alias] {
				return fmt.Errorf("operation %q: alias %q collides within its scope", op.ID(), op.Alias)
			}
			names[alias] = true
		}
	}

	groupIDs := make(map[string]bool, len(m.Groups))
	for i, g := range m.Groups {
		if g.Namespace == "" {
			return fmt.Errorf("group %d: namespace is required", i)
		}
		if g.Name == "" {
			return fmt.Errorf("group %d: name is required", i)
		}
		id := strings.ToLower(g.ID())
		if groupIDs[id] {
			return fmt.Errorf("duplicate group %q", g.ID())
		}
		groupIDs[id] = true
	}
	return nil
}
