// Copyright 2026 The Warden Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"log/slog"

	"github.com/warden-foundation/warden/lib/audit"
	"github.com/warden-foundation/warden/lib/authz"
	"github.com/warden-foundation/warden/lib/catalog"
	"github.com/warden-foundation/warden/lib/config"
	"github.com/warden-foundation/warden/lib/resolve"
	"github.com/warden-foundation/warden/lib/rolestore"
)

// Engine is one assembled Warden instance.
type Engine struct {
	config   *config.Config
	catalog  catalog.Catalog
	resolver *resolve.Resolver
	store    *rolestore.Store
	audit    *audit.Log
	logger   *slog.Logger
}

// New assembles an engine from configuration. The catalog may be
// supplied programmatically by the host; when it is nil, the manifest
// named in the configuration is loaded instead. With neither, the
// engine runs against an empty catalog: role administration works,
// and every identifier resolves to nothing. The state directory is
// loaded immediately; an audit log is opened when configured.
func New(cfg *config.Config, cat catalog.Catalog, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cat == nil {
		if cfg.Catalog != "" {
			loaded, err := catalog.ReadFile(cfg.Catalog)
			if err != nil {
				return nil, err
			}
			cat = loaded
		} else {
			cat = catalog.NewStatic(nil, nil)
		}
	}

	e := &Engine{
		config:   cfg,
		catalog:  cat,
		resolver: resolve.New(cat),
		store:    rolestore.Open(cfg.StateDir, logger),
		logger:   logger,
	}

	if cfg.AuditLog != "" {
		log, err := audit.Open(cfg.AuditLog, logger)
		if err != nil {
			// Auditing is an aid, not a gate: run without it.
			logger.Warn("audit log unavailable", "path", cfg.AuditLog, "error", err)
		} else {
			e.audit = log
			e.store.SetAudit(log)
		}
	}
	return e, nil
}

// Catalog returns the host catalog the engine resolves against.
func (e *Engine) Catalog() catalog.Catalog { return e.catalog }

// Store returns the role store for administrative verbs.
func (e *Engine) Store() *rolestore.Store { return e.store }

// Audit returns the attached audit log, or nil when auditing is
// disabled.
func (e *Engine) Audit() *audit.Log { return e.audit }

// ResolveOperation expands user-typed text into one catalog
// operation.
func (e *Engine) ResolveOperation(text string) (catalog.Operation, error) {
	return e.resolver.Operation(text)
}

// ResolveGroup expands user-typed text into a canonical group
// identifier and its operations.
func (e *Engine) ResolveGroup(text string) (string, []catalog.Operation, error) {
	return e.resolver.Group(text)
}

// Check evaluates whether principal may invoke operation, returning
// the full trace. When decision logging is configured, one structured
// line is emitted per call.
func (e *Engine) Check(principal authz.Principal, operation catalog.Operation) authz.Result {
	result := authz.Check(e.store, principal, operation)
	if e.config.LogDecisions {
		attrs := []any{
			"principal", principal.ID,
			"admin", principal.Admin,
			"operation", operation.ID(),
			"decision", result.Decision.String(),
			"reason", result.Reason.String(),
		}
		if result.Role != "" {
			attrs = append(attrs, "role", result.Role)
		}
		e.logger.Info("permission decision", attrs...)
	}
	return result
}

// CanExecute is the interception point for the host's dispatch
// pipeline: the boolean form of Check.
func (e *Engine) CanExecute(principal authz.Principal, operation catalog.Operation) bool {
	return e.Check(principal, operation).Decision == authz.Allow
}

// Reload re-reads the durable policy state from disk.
func (e *Engine) Reload() {
	e.store.Reload()
}

// Close releases the audit log, if any. The store itself holds no
// open resources.
func (e *Engine) Close() error {
	return e.audit.Close()
}
