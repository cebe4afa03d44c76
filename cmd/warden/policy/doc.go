// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package policy implements the "warden policy" command group: the
// two global override sets that open admin-default operations up to
// everyone or block non-admin operations for everyone without a role.
package policy
