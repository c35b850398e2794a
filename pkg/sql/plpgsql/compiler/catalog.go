// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package compiler

import (
	"context"

	"github.com/lib/pq/oid"
)

// TypeKind mirrors pg_type.typtype.
type TypeKind byte

const (
	TypeKindBase       TypeKind = 'b'
	TypeKindComposite  TypeKind = 'c'
	TypeKindDomain     TypeKind = 'd'
	TypeKindEnum       TypeKind = 'e'
	TypeKindPseudo     TypeKind = 'p'
	TypeKindRange      TypeKind = 'r'
	TypeKindMultirange TypeKind = 'm'
)

// TypeEntry is the catalog's description of one type, as consumed by
// the type binder.
type TypeEntry struct {
	ID   oid.Oid
	Name string
	Kind TypeKind
	// IsShell is set for types that were declared but never defined.
	IsShell   bool
	Len       int16
	ByVal     bool
	Collation oid.Oid
	// PlainStorage is set when the type's storage strategy is PLAIN
	// (non-toastable); such array types are never expanded in place.
	PlainStorage bool
	// IsTrueArray is set for genuine array types (as opposed to
	// fixed-length pseudo-arrays like oidvector).
	IsTrueArray bool
	// BaseType is the domain's base type; zero for non-domains.
	BaseType oid.Oid
	// BaseElemType is the element type of the domain's base type if
	// that base is an array; zero otherwise.
	BaseElemType oid.Oid
}

// RowField describes one column of a composite type's layout.
type RowField struct {
	Name      string
	Type      oid.Oid
	Typmod    int32
	Collation oid.Oid
}

// RowLayout is the structural layout of a composite type, plus a
// version token that changes whenever the layout does. The execution
// engine compares tokens to detect schema drift between compilation
// and invocation.
type RowLayout struct {
	Fields []RowField
	// TupleDescID is the drift-detection version token. Zero is never
	// a valid token.
	TupleDescID uint64
}

// RelationEntry is the catalog's description of one relation.
type RelationEntry struct {
	ID   oid.Oid
	Name string
	// RowType is the relation's composite row type, or zero for
	// relation kinds that lack one.
	RowType oid.Oid
}

// ColumnEntry is the catalog's description of one relation column.
type ColumnEntry struct {
	Type      oid.Oid
	Typmod    int32
	Collation oid.Oid
}

// Catalog is the external type/relation catalog the compiler resolves
// against. Implementations return pgerror-coded errors for misses:
// UndefinedTable for unknown relations and UndefinedColumn for unknown
// columns. An unknown type OID is an internal error (the compiler only
// asks about OIDs it was handed by the catalog itself).
type Catalog interface {
	// LookupType returns the type with the given OID.
	LookupType(ctx context.Context, id oid.Oid) (*TypeEntry, error)

	// RowLayout returns the structural layout and version token of a
	// named composite type. Domains over composite types resolve
	// against their base type. It must fail with WrongObjectType when
	// the type is not composite.
	RowLayout(ctx context.Context, id oid.Oid) (*RowLayout, error)

	// LookupRelation resolves a possibly schema-qualified relation
	// name.
	LookupRelation(ctx context.Context, name []string) (*RelationEntry, error)

	// LookupColumn resolves a column of the given relation.
	LookupColumn(ctx context.Context, rel oid.Oid, column string) (*ColumnEntry, error)

	// ArrayTypeOf returns the array type over the given element type,
	// or zero if the element type has none.
	ArrayTypeOf(ctx context.Context, elem oid.Oid) (oid.Oid, error)
}

// ArgMode mirrors pg_proc.proargmodes.
type ArgMode byte

const (
	ArgModeIn       ArgMode = 'i'
	ArgModeOut      ArgMode = 'o'
	ArgModeInOut    ArgMode = 'b'
	ArgModeVariadic ArgMode = 'v'
	ArgModeTable    ArgMode = 't'
)

// ProcKind mirrors pg_proc.prokind.
type ProcKind byte

const (
	ProcKindFunction  ProcKind = 'f'
	ProcKindProcedure ProcKind = 'p'
)

// ProcedureDescriptor carries the catalog metadata of the routine being
// compiled.
type ProcedureDescriptor struct {
	ID   oid.Oid
	Name string
	// ArgTypes, ArgNames and ArgModes describe every declared
	// parameter, output parameters included. ArgNames may be nil when
	// no parameter is named; unnamed parameters have empty entries.
	// ArgModes may be nil when every parameter is IN.
	ArgTypes []oid.Oid
	ArgNames []string
	ArgModes []ArgMode
	// RetType is the declared return type, possibly polymorphic.
	RetType    oid.Oid
	ReturnsSet bool
	Kind       ProcKind
	// ReadOnly is set for STABLE and IMMUTABLE routines.
	ReadOnly bool
	// Source is the routine body handed to the parser.
	Source string
}
