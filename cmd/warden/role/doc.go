// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package role implements the "warden role" command group: role
// lifecycle (create, delete, list) and principal assignment (assign,
// unassign, of, operations).
package role
