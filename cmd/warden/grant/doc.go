// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package grant implements the "warden grant" and "warden revoke"
// commands: adding operations (or whole catalog groups) to a role's
// grant set and removing them again.
package grant
