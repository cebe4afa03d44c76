// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package rolestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	rolesDirName    = "roles"
	assignmentsName = "assignments.txt"
	allowedName     = "allowed-admin-operations.txt"
	disallowedName  = "disallowed-nonadmin-operations.txt"
)

func (s *Store) rolesDir() string        { return filepath.Join(s.dir, rolesDirName) }
func (s *Store) assignmentsPath() string { return filepath.Join(s.dir, assignmentsName) }
func (s *Store) allowedPath() string     { return filepath.Join(s.dir, allowedName) }
func (s *Store) disallowedPath() string  { return filepath.Join(s.dir, disallowedName) }

func (s *Store) rolePath(r *role) string {
	return filepath.Join(s.rolesDir(), r.name+".txt")
}

// load re-reads every unit from disk into fresh maps. Caller holds
// the write lock.
func (s *Store) load() {
	s.roles = make(map[string]*role)
	s.assignments = make(map[uint64][]string)
	s.allowed = make(map[string]string)
	s.disallowed = make(map[string]string)

	s.loadRoles()
	s.loadAssignments()
	s.loadSet(s.allowedPath(), s.allowed)
	s.loadSet(s.disallowedPath(), s.disallowed)
}

// loadRoles reads every roles/<name>.txt file. The filename is the
// role's display name; the body is its grant set, one operation
// identifier per line.
func (s *Store) loadRoles() {
	entries, err := os.ReadDir(s.rolesDir())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("role directory unreadable, loading no roles",
				"dir", s.rolesDir(), "error", err)
		}
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".txt")
		r := &role{name: name, grants: make(map[string]string)}
		s.roles[strings.ToLower(name)] = r

		data, err := os.ReadFile(filepath.Join(s.rolesDir(), entry.Name()))
		if err != nil {
			s.logger.Warn("role file unreadable, loading role with empty grants",
				"role", name, "error", err)
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			r.grants[strings.ToLower(line)] = line
		}
	}
}

// loadAssignments reads the assignment table. Each line is
// "principalID:role1, role2". Lines that do not parse are skipped
// individually.
func (s *Store) loadAssignments() {
	data, err := os.ReadFile(s.assignmentsPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("assignment table unreadable, loading no assignments",
				"path", s.assignmentsPath(), "error", err)
		}
		return
	}
	for number, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, names, ok := strings.Cut(line, ":")
		if !ok {
			s.logger.Warn("skipping malformed assignment line",
				"path", s.assignmentsPath(), "line", number+1)
			continue
		}
		principal, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
		if err != nil {
			s.logger.Warn("skipping assignment with unparseable principal ID",
				"path", s.assignmentsPath(), "line", number+1, "id", id)
			continue
		}
		var roles []string
		for _, name := range strings.Split(names, ",") {
			if name = strings.TrimSpace(name); name != "" {
				roles = append(roles, name)
			}
		}
		if len(roles) > 0 {
			s.assignments[principal] = roles
		}
	}
}

// loadSet reads one override set, one operation identifier per line.
func (s *Store) loadSet(path string, set map[string]string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("override set unreadable, loading empty set",
				"path", path, "error", err)
		}
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		set[strings.ToLower(line)] = line
	}
}

// saveRole rewrites one role's record. Caller holds the write lock.
func (s *Store) saveRole(r *role) {
	s.writeUnit(s.rolePath(r), sortedValues(r.grants))
}

// removeRoleFile deletes a role's persisted record.
func (s *Store) removeRoleFile(r *role) {
	if err := os.Remove(s.rolePath(r)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Error("could not delete role record",
			"role", r.name, "path", s.rolePath(r), "error", err)
	}
}

// saveAssignments rewrites the whole assignment table. Caller holds
// the write lock.
func (s *Store) saveAssignments() {
	principals := make([]uint64, 0, len(s.assignments))
	for principal := range s.assignments {
		principals = append(principals, principal)
	}
	sort.Slice(principals, func(i, j int) bool { return principals[i] < principals[j] })

	lines := make([]string, 0, len(principals))
	for _, principal := range principals {
		names := append([]string(nil), s.assignments[principal]...)
		sort.Strings(names)
		lines = append(lines, fmt.Sprintf("%d:%s", principal, strings.Join(names, ", ")))
	}
	s.writeUnit(s.assignmentsPath(), lines)
}

func (s *Store) saveAllowed() {
	s.writeUnit(s.allowedPath(), sortedValues(s.allowed))
}

func (s *Store) saveDisallowed() {
	s.writeUnit(s.disallowedPath(), sortedValues(s.disallowed))
}

// writeUnit computes the full serialized content of one unit and
// overwrites the target record via a temp file and rename. A failed
// write is logged and swallowed: the in-memory mutation stands and
// the session continues non-durable.
func (s *Store) writeUnit(path string, lines []string) {
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err == nil {
		tmp := path + ".tmp"
		if err = os.WriteFile(tmp, []byte(content), 0o644); err == nil {
			err = os.Rename(tmp, path)
		}
	}
	if err != nil {
		s.logger.Error("state write failed, continuing non-durable",
			"path", path, "error", err)
	}
}
