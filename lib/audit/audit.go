// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/warden-foundation/warden/lib/codec"
)

// Record is one administrative mutation. Fields that do not apply to
// a given action are omitted from the encoding.
type Record struct {
	// Time is when the mutation was applied.
	Time time.Time `cbor:"time" json:"time"`

	// Action names the mutation: "role/create", "role/delete",
	// "role/grant", "role/revoke", "role/assign", "role/unassign",
	// "policy/allow", "policy/disallow".
	Action string `cbor:"action" json:"action"`

	// Role is the role the mutation touched, if any.
	Role string `cbor:"role,omitempty" json:"role,omitempty"`

	// Operation is the canonical operation identifier, if any.
	Operation string `cbor:"operation,omitempty" json:"operation,omitempty"`

	// Principal is the principal a role was assigned to or removed
	// from, if any.
	Principal uint64 `cbor:"principal,omitempty" json:"principal,omitempty"`
}

// Log is an open append-only audit log. The zero value and the nil
// pointer are inert: Append on a nil Log is a no-op, so callers can
// carry an optional log without nil checks at every call site.
type Log struct {
	mu      sync.Mutex
	file    *os.File
	encoder *codec.Encoder
	logger  *slog.Logger
}

// Open opens (creating if necessary) the audit log at path for
// appending.
func Open(path string, logger *slog.Logger) (*Log, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating audit log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	return &Log{
		file:    file,
		encoder: codec.NewEncoder(file),
		logger:  logger,
	}, nil
}

// Append writes one record to the log. Append failures are logged and
// swallowed: the audit log never blocks a mutation.
func (l *Log) Append(record Record) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if record.Time.IsZero() {
		record.Time = time.Now().UTC()
	}
	if err := l.encoder.Encode(record); err != nil {
		l.logger.Warn("audit append failed", "action", record.Action, "error", err)
	}
}

// Close closes the underlying file.
func (l *Log) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// ReadFile decodes every record in the audit log at path. A missing
// file is an empty history. A truncated or corrupt tail (a crash
// mid-append) ends the read at the last whole record with a logged
// warning rather than an error.
func ReadFile(path string, logger *slog.Logger) ([]Record, error) {
	if logger == nil {
		logger = slog.Default()
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer file.Close()

	var records []Record
	decoder := codec.NewDecoder(file)
	for {
		var record Record
		if err := decoder.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			logger.Warn("audit log has a corrupt tail, truncating read",
				"path", path, "records", len(records), "error", err)
			return records, nil
		}
		records = append(records, record)
	}
}
