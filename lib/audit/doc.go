// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package audit provides the append-only log of administrative
// mutations: role creation and deletion, grants and revocations, role
// assignments, and global override changes.
//
// Records are CBOR-encoded (lib/codec, Core Deterministic Encoding)
// and appended synchronously, one stream element per record, so that
// the site's policy history survives restarts and can be reviewed
// after the fact with "warden audit list".
//
// The log is an observability aid, not a source of truth: the role
// store's line-oriented state files remain authoritative. A log that
// cannot be opened or appended to degrades to logging a warning; it
// never blocks a mutation. A truncated final record (from a crash
// mid-append) is tolerated on read.
package audit
