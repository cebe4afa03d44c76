// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

// Package engine assembles the Warden components into one explicit
// instance: the role store opened on the configured state directory,
// the resolver over the host's catalog, the decision evaluation, and
// the optional audit log.
//
// A host constructs one [Engine] at process start and passes it to
// every call site; there are no package-level singletons and no
// hidden initialization. The host's dispatch pipeline calls
// [Engine.CanExecute] (or [Engine.Check] for the full trace) before
// executing an operation, and wires the store's administrative
// surface into its own command verbs.
package engine
