// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package compiler

import (
	"github.com/Florents-Tselai/postgres/pkg/sql/plpgsql/scope"
	"github.com/Florents-Tselai/postgres/pkg/sql/sem/plpgsqltree"
	"golang.org/x/tools/container/intsets"
)

// Expr is an embedded SQL expression within a PL/pgSQL body.
type Expr struct {
	// SQL is the expression's source text.
	SQL string
	// ParamNos records the dno of every datum the expression
	// references, so the execution engine knows which datums to bind
	// as parameters when the expression runs.
	ParamNos intsets.Sparse
	// Ns is the namespace position current when the expression was
	// scanned; identifier resolution for this expression starts there.
	Ns *scope.Item
}

var _ plpgsqltree.Expression = (*Expr)(nil)

// SQLString implements the plpgsqltree.Expression interface.
func (e *Expr) SQLString() string { return e.SQL }

// NewExpr captures an expression together with the current namespace
// position for later resolution.
func (s *Session) NewExpr(sql string) *Expr {
	return &Expr{SQL: sql, Ns: s.ns.Top()}
}
