// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Warden is the administrative CLI for a Warden deployment. It
// provides subcommands for role management (role), grant management
// (grant, revoke), global overrides (policy), permission checks with
// a full evaluation trace (auth check), catalog inspection (catalog),
// and audit history (audit).
package main
