// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command tree infrastructure for the warden
// binary: command dispatch with typo suggestions, struct-tag flag
// binding over pflag, JSON output support for list commands, and the
// shared configuration flag that opens an engine for a command.
package cli
