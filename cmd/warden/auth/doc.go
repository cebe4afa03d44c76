// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package auth implements the "warden auth" command group for
// evaluating permission checks against the durable policy state.
package auth
