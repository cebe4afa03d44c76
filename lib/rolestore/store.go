// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package rolestore

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/warden-foundation/warden/lib/audit"
)

// role is one role definition: its display name (the case it was
// created with) and its grant set, keyed by lower-cased operation
// identifier with the display form as value.
type role struct {
	name   string
	grants map[string]string
}

// Store holds all policy state in memory and persists every mutation
// synchronously. One Store instance is constructed at process start;
// there is no package-level state.
//
// A single read-write mutex guards the whole state. Structural
// updates such as a role deletion cascading into assignment edits are
// not individually atomic, so mutations serialize against each other
// and against readers.
type Store struct {
	mu     sync.RWMutex
	dir    string
	logger *slog.Logger
	audit  *audit.Log

	roles       map[string]*role    // lower role name -> definition
	assignments map[uint64][]string // principal -> display role names
	allowed     map[string]string   // lower op ID -> display form
	disallowed  map[string]string
}

// Open loads the store from the state directory dir. Missing state is
// an empty store; unreadable or malformed records are skipped with a
// logged warning, never a failure.
func Open(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{dir: dir, logger: logger}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s
}

// SetAudit attaches an audit log. Subsequent mutations append one
// record each. A nil log detaches.
func (s *Store) SetAudit(log *audit.Log) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = log
}

// Reload discards the in-memory state and re-reads every unit from
// disk. Hosts call this when an operator edits the state files by
// hand.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
}

// CreateRole creates an empty role and persists it. Returns false if
// a role with that name already exists (case-insensitive) or the name
// cannot serve as a record key.
func (s *Store) CreateRole(name string) bool {
	if !validRoleName(name) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := s.roles[key]; exists {
		return false
	}
	r := &role{name: name, grants: make(map[string]string)}
	s.roles[key] = r
	s.saveRole(r)
	s.audit.Append(audit.Record{Action: "role/create", Role: name})
	return true
}

// DeleteRole removes a role, cascades it out of every principal's
// assignment list, deletes its persisted record, and persists the
// assignment table when the cascade changed it. Returns false if the
// role does not exist.
func (s *Store) DeleteRole(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(name)
	r, exists := s.roles[key]
	if !exists {
		return false
	}
	delete(s.roles, key)

	cascaded := false
	for principal, assigned := range s.assignments {
		kept := removeRoleName(assigned, r.name)
		if len(kept) == len(assigned) {
			continue
		}
		cascaded = true
		if len(kept) == 0 {
			delete(s.assignments, principal)
		} else {
			s.assignments[principal] = kept
		}
	}

	s.removeRoleFile(r)
	if cascaded {
		s.saveAssignments()
	}
	s.audit.Append(audit.Record{Action: "role/delete", Role: r.name})
	return true
}

// MatchRole looks a role up by exact, case-insensitive name and
// returns its display name. Unlike operations, roles have no
// abbreviation support.
func (s *Store) MatchRole(text string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.roles[strings.ToLower(text)]
	if !exists {
		return "", false
	}
	return r.name, true
}

// GrantOperation adds an operation to a role's grant set and persists
// the role. No-op if the role does not exist.
func (s *Store) GrantOperation(roleName, operationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, exists := s.roles[strings.ToLower(roleName)]
	if !exists {
		return
	}
	r.grants[strings.ToLower(operationID)] = operationID
	s.saveRole(r)
	s.audit.Append(audit.Record{Action: "role/grant", Role: r.name, Operation: operationID})
}

// RevokeOperation removes an operation from a role's grant set and
// persists the role. Returns false if the role does not exist or the
// operation is not currently granted.
func (s *Store) RevokeOperation(roleName, operationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, exists := s.roles[strings.ToLower(roleName)]
	if !exists {
		return false
	}
	key := strings.ToLower(operationID)
	if _, granted := r.grants[key]; !granted {
		return false
	}
	delete(r.grants, key)
	s.saveRole(r)
	s.audit.Append(audit.Record{Action: "role/revoke", Role: r.name, Operation: operationID})
	return true
}

// AssignRole adds a role to a principal's assignment list and
// persists the assignment table. Returns false if the role does not
// exist or the principal already has it.
func (s *Store) AssignRole(principal uint64, roleName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, exists := s.roles[strings.ToLower(roleName)]
	if !exists {
		return false
	}
	for _, assigned := range s.assignments[principal] {
		if strings.EqualFold(assigned, r.name) {
			return false
		}
	}
	s.assignments[principal] = append(s.assignments[principal], r.name)
	s.saveAssignments()
	s.audit.Append(audit.Record{Action: "role/assign", Role: r.name, Principal: principal})
	return true
}

// UnassignRole removes a role from a principal's assignment list and
// persists the assignment table. Returns false if the principal does
// not have the role. The role itself need not exist: unassigning a
// dangling role name left behind by hand-edited state works.
func (s *Store) UnassignRole(principal uint64, roleName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	assigned, exists := s.assignments[principal]
	if !exists {
		return false
	}
	kept := removeRoleName(assigned, roleName)
	if len(kept) == len(assigned) {
		return false
	}
	if len(kept) == 0 {
		delete(s.assignments, principal)
	} else {
		s.assignments[principal] = kept
	}
	s.saveAssignments()
	s.audit.Append(audit.Record{Action: "role/unassign", Role: roleName, Principal: principal})
	return true
}

// Allow opens an operation up for everyone. The two override sets are
// asymmetric: an admin-default operation is added to the
// global allow-set, while for a non-admin operation "allow" means
// lifting a standing global disallow.
func (s *Store) Allow(operationID string, adminDefault bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(operationID)
	if adminDefault {
		s.allowed[key] = operationID
		s.saveAllowed()
		s.audit.Append(audit.Record{Action: "policy/allow", Operation: operationID})
		return
	}
	if _, present := s.disallowed[key]; present {
		delete(s.disallowed, key)
		s.saveDisallowed()
		s.audit.Append(audit.Record{Action: "policy/allow", Operation: operationID})
	}
}

// Disallow blocks an operation for everyone without a role granting
// it. The mirror of Allow: a non-admin operation is added to the
// global disallow-set, while for an admin-default operation
// "disallow" means withdrawing a standing global allow.
func (s *Store) Disallow(operationID string, adminDefault bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(operationID)
	if adminDefault {
		if _, present := s.allowed[key]; present {
			delete(s.allowed, key)
			s.saveAllowed()
			s.audit.Append(audit.Record{Action: "policy/disallow", Operation: operationID})
		}
		return
	}
	s.disallowed[key] = operationID
	s.saveDisallowed()
	s.audit.Append(audit.Record{Action: "policy/disallow", Operation: operationID})
}

// Roles returns every role name, sorted.
func (s *Store) Roles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.roles))
	for _, r := range s.roles {
		names = append(names, r.name)
	}
	sort.Strings(names)
	return names
}

// OperationsForRole returns a role's granted operation identifiers,
// sorted. The second return is false if the role does not exist.
func (s *Store) OperationsForRole(roleName string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.roles[strings.ToLower(roleName)]
	if !exists {
		return nil, false
	}
	return sortedValues(r.grants), true
}

// RolesOf returns the roles assigned to a principal, sorted. A
// principal with no assignment record has zero roles.
func (s *Store) RolesOf(principal uint64) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assigned := s.assignments[principal]
	names := append([]string(nil), assigned...)
	sort.Strings(names)
	return names
}

// PrincipalsWithRole returns the principals holding a role, sorted.
func (s *Store) PrincipalsWithRole(roleName string) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var principals []uint64
	for principal, assigned := range s.assignments {
		for _, name := range assigned {
			if strings.EqualFold(name, roleName) {
				principals = append(principals, principal)
				break
			}
		}
	}
	sort.Slice(principals, func(i, j int) bool { return principals[i] < principals[j] })
	return principals
}

// AllowedAdminOperations returns the global allow-set, sorted.
func (s *Store) AllowedAdminOperations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.allowed)
}

// DisallowedNonAdminOperations returns the global disallow-set, sorted.
func (s *Store) DisallowedNonAdminOperations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.disallowed)
}

// GlobalAllowed reports whether the operation is in the global
// allow-set.
func (s *Store) GlobalAllowed(operationID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, present := s.allowed[strings.ToLower(operationID)]
	return present
}

// GlobalDisallowed reports whether the operation is in the global
// disallow-set.
func (s *Store) GlobalDisallowed(operationID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, present := s.disallowed[strings.ToLower(operationID)]
	return present
}

// RoleGrant reports whether any of the principal's roles grants the
// operation, returning the first granting role's name. Assignment
// entries naming roles that no longer exist are skipped: dangling
// references are inert.
func (s *Store) RoleGrant(principal uint64, operationID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := strings.ToLower(operationID)
	for _, name := range s.assignments[principal] {
		r, exists := s.roles[strings.ToLower(name)]
		if !exists {
			continue
		}
		if _, granted := r.grants[key]; granted {
			return r.name, true
		}
	}
	return "", false
}

// validRoleName rejects names that cannot serve as a per-role record
// key.
func validRoleName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// removeRoleName returns names without any case-insensitive match of
// roleName. The original slice is left untouched.
func removeRoleName(names []string, roleName string) []string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if !strings.EqualFold(name, roleName) {
			kept = append(kept, name)
		}
	}
	return kept
}

// sortedValues returns the map's values, sorted.
func sortedValues(set map[string]string) []string {
	values := make([]string, 0, len(set))
	for _, value := range set {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}
