// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

// Package pgcode defines the PostgreSQL 5-character support codes
// (also known as SQLSTATE) used throughout the SQL layer.
package pgcode

// Code is a wrapper around a string to ensure that pgcodes are used in
// different pgwire implementations consistently.
type Code struct {
	code string
}

// MakeCode converts a string into a Code.
func MakeCode(code string) Code {
	return Code{code: code}
}

// String returns the underlying pgcode string.
func (c Code) String() string {
	return c.code
}

// SafeValue implements the redact.SafeValue interface.
func (c Code) SafeValue() {}

var (
	// Class 0A - Feature Not Supported.
	FeatureNotSupported = MakeCode("0A000")
	// Class 22 - Data Exception.
	DivisionByZero = MakeCode("22012")
	// Class 42 - Syntax Error or Access Rule Violation.
	Syntax                    = MakeCode("42601")
	AmbiguousColumn           = MakeCode("42702")
	UndefinedColumn           = MakeCode("42703")
	UndefinedObject           = MakeCode("42704")
	DuplicateColumn           = MakeCode("42701")
	DuplicateObject           = MakeCode("42710")
	DuplicateAlias            = MakeCode("42712")
	DatatypeMismatch          = MakeCode("42804")
	WrongObjectType           = MakeCode("42809")
	UndefinedFunction         = MakeCode("42883")
	UndefinedTable            = MakeCode("42P01")
	UndefinedParameter        = MakeCode("42P02")
	InvalidFunctionDefinition = MakeCode("42P13")
	// Class P0 - PL/pgSQL Error.
	PLpgSQL        = MakeCode("P0000")
	RaiseException = MakeCode("P0001")
	NoDataFound    = MakeCode("P0002")
	TooManyRows    = MakeCode("P0003")
	AssertFailure  = MakeCode("P0004")
	// Class XX - Internal Error.
	Internal = MakeCode("XX000")

	// Uncategorized is the pgcode given to errors that could not be
	// classified any better.
	Uncategorized = MakeCode("XXUUU")
)
