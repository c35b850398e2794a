// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

// Package compiler turns a parsed PL/pgSQL routine body into a fully
// resolved execution tree: it maintains the lexical namespace, builds
// and types the function's datums, resolves identifiers appearing in
// embedded SQL, and assembles the immutable compiled-function artifact
// consumed by the execution engine.
package compiler

import (
	"context"

	"github.com/Florents-Tselai/postgres/pkg/sql/plpgsql/scope"
	"github.com/Florents-Tselai/postgres/pkg/sql/sem/plpgsqltree"
)

// IdentifierLookup controls how eagerly the lexer-side resolution
// surface looks identifiers up in the namespace.
type IdentifierLookup int

const (
	// IdentifierLookupNormal performs normal lookups.
	IdentifierLookupNormal IdentifierLookup = iota
	// IdentifierLookupDeclare suppresses lookups entirely; identifiers
	// inside DECLARE sections name new variables, not existing ones.
	IdentifierLookupDeclare
	// IdentifierLookupExpr restricts lookups to what is needed while
	// scanning an embedded SQL expression: dotted references still
	// materialize record-field datums, but bare words are left for the
	// SQL parser to classify.
	IdentifierLookupExpr
)

// ResolveOption is a function's conflict-resolution policy for names
// that could be either a PL/pgSQL variable or a table column.
type ResolveOption int

const (
	// ResolveColumn resolves variables after the SQL parser's own
	// column resolution; when both sides match, the reference is
	// reported ambiguous.
	ResolveColumn ResolveOption = iota
	// ResolveVariable resolves variables eagerly, before the SQL
	// parser's column resolution; a namespace hit wins silently.
	ResolveVariable
)

// Session is the compile-time state of one in-flight compilation: the
// growable datum table, the namespace stack, and assorted bookkeeping.
// A session is created at compilation start, mutated only by that
// compilation (compilation is single-threaded and non-reentrant), and
// consumed when the datum table is frozen into the compiled function.
type Session struct {
	cat Catalog

	ns         scope.Stack
	datums     []Datum
	datumsLast int

	resolveOption ResolveOption
	// IdentifierLookup is adjusted by the parser as it moves in and
	// out of DECLARE sections and SQL expressions.
	IdentifierLookup IdentifierLookup

	// checkSyntax is set when compiling for validation only.
	checkSyntax bool
	errFuncName string
	nstatements uint
}

// NewSession initializes compile-time state against the given catalog.
func NewSession(cat Catalog) *Session {
	s := &Session{cat: cat}
	s.ns.Init()
	s.datums = make([]Datum, 0, 16)
	return s
}

// Scope exposes the namespace stack; the parser pushes and pops block
// scopes through it as it walks the body.
func (s *Session) Scope() *scope.Stack { return &s.ns }

// NextStmtID returns the next statement id. The parser calls this once
// per statement it builds.
func (s *Session) NextStmtID() uint {
	s.nstatements++
	return s.nstatements
}

// Parser produces the statement tree for a routine body, calling back
// into the session's resolution surface (ParseWord and friends, and
// per-expression SQLResolvers) while scanning.
type Parser interface {
	Parse(ctx context.Context, s *Session, source string) (*plpgsqltree.Block, error)
}
