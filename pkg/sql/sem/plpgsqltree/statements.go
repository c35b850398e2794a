// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

// Package plpgsqltree contains the statement nodes produced by the
// PL/pgSQL parser and consumed by the compiler and the execution
// engine.
package plpgsqltree

import "github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgcode"

// Statement is implemented by all PL/pgSQL statement nodes.
type Statement interface {
	// PlpgSQLStatementTag returns a short name for the statement kind,
	// used in telemetry and debug output.
	PlpgSQLStatementTag() string
	// GetStmtID returns the statement's id, unique within one compiled
	// function and assigned by the compiler session.
	GetStmtID() uint
}

// StatementImpl is embedded by all statement nodes.
type StatementImpl struct {
	// StmtID is assigned at parse time via Session.NextStmtID.
	StmtID uint
	// LineNo is the 1-based source line the statement starts on.
	LineNo int
}

// GetStmtID implements the Statement interface.
func (s *StatementImpl) GetStmtID() uint { return s.StmtID }

// Expression is an embedded SQL expression carried by a statement. The
// concrete type lives in the compiler package; downstream consumers
// only need the source text here.
type Expression interface {
	SQLString() string
}

// Block is a BEGIN/END block, or the whole function body.
type Block struct {
	StatementImpl
	// Label is the block's label, or empty.
	Label string
	// InitVarNos lists the datums declared by this block's DECLARE
	// section; the execution engine (re)initializes them on block entry.
	InitVarNos []int
	Body       []Statement
	Exceptions []Exception
}

// PlpgSQLStatementTag implements the Statement interface.
func (s *Block) PlpgSQLStatementTag() string { return "stmt_block" }

// Exception is one WHEN ... THEN arm of a block's EXCEPTION clause.
type Exception struct {
	Conditions []Condition
	Action     []Statement
}

// Condition names one error condition an exception arm catches. A
// zero SQLErrState means the arm is the OTHERS catch-all.
type Condition struct {
	// SQLErrState is the SQLSTATE the condition label mapped to.
	SQLErrState pgcode.Code
	// Name is the condition label as written by the user.
	Name string
}

// IsCatchAll reports whether the condition matches every trappable
// error.
func (c Condition) IsCatchAll() bool {
	return c.SQLErrState == pgcode.Code{}
}

// Assignment assigns the result of an expression to a variable.
type Assignment struct {
	StatementImpl
	// VarNo is the target datum's index.
	VarNo int
	Value Expression
}

// PlpgSQLStatementTag implements the Statement interface.
func (s *Assignment) PlpgSQLStatementTag() string { return "stmt_assign" }

// Return terminates the function, optionally with a value.
type Return struct {
	StatementImpl
	// Expr is the returned expression; nil when returning a datum (or
	// nothing) directly.
	Expr Expression
	// RetVarNo is the datum to return, or -1. For the implicit
	// trailing RETURN it is the function's out-parameter/row slot.
	RetVarNo int
}

// PlpgSQLStatementTag implements the Statement interface.
func (s *Return) PlpgSQLStatementTag() string { return "stmt_return" }

// Exit is an EXIT or CONTINUE statement targeting an enclosing block
// or loop.
type Exit struct {
	StatementImpl
	// IsExit distinguishes EXIT from CONTINUE.
	IsExit bool
	// Label is the target label, or empty for the nearest loop.
	Label string
	Cond  Expression
}

// PlpgSQLStatementTag implements the Statement interface.
func (s *Exit) PlpgSQLStatementTag() string {
	if s.IsExit {
		return "stmt_exit"
	}
	return "stmt_continue"
}
