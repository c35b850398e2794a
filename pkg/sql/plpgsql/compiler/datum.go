// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package compiler

import (
	"unsafe"

	"github.com/lib/pq/oid"
)

// DatumKind distinguishes the kinds of compile-time storage slots.
type DatumKind int

const (
	// DatumVar is a scalar variable.
	DatumVar DatumKind = iota
	// DatumRec is a record (composite) variable.
	DatumRec
	// DatumRecField is a projection of one named field of a record.
	DatumRecField
	// DatumRow groups several member datums into one synthesized tuple,
	// used to return multiple OUT parameters as a single value.
	DatumRow
)

// Datum is a typed compile-time storage slot. Every datum has a stable
// index (its "dno") assigned when it is added to the compiling
// session's datum table; the index is the sole handle other structures
// use to refer to it.
type Datum interface {
	// Dno is the datum's index in the function's datum array.
	Dno() int
	// DatumKind returns the slot's kind.
	DatumKind() DatumKind

	setDno(int)
}

type datumBase struct {
	dno int
}

func (d *datumBase) Dno() int     { return d.dno }
func (d *datumBase) setDno(n int) { d.dno = n }

// Promise marks a variable whose value is supplied by the execution
// engine on first read rather than by ordinary assignment. Trigger
// context variables are the only promises.
type Promise int

const (
	PromiseNone Promise = iota
	PromiseTgName
	PromiseTgWhen
	PromiseTgLevel
	PromiseTgOp
	PromiseTgRelid
	PromiseTgTableName
	PromiseTgTableSchema
	PromiseTgNargs
	PromiseTgArgv
	PromiseTgEvent
	PromiseTgTag
)

// Variable is the interface shared by the datum kinds that can be
// declared by name: scalar variables and records.
type Variable interface {
	Datum
	// RefName is the name the variable was declared under.
	RefName() string
	// IsConst reports whether the variable was declared CONSTANT.
	IsConst() bool
}

// Var is a scalar variable datum. The compiler leaves its value slot
// null-initialized; only the execution engine assigns to it.
type Var struct {
	datumBase
	Name    string
	Type    *Type
	LineNo  int
	Const   bool
	NotNull bool
	// Default is the declaration's DEFAULT expression, if any.
	Default *Expr
	// Promise is PromiseNone for ordinary variables.
	Promise Promise
}

// DatumKind implements the Datum interface.
func (v *Var) DatumKind() DatumKind { return DatumVar }

// RefName implements the Variable interface.
func (v *Var) RefName() string { return v.Name }

// IsConst implements the Variable interface.
func (v *Var) IsConst() bool { return v.Const }

// Rec is a record variable datum. Its field projections form a chain
// threaded through the datum table by index, with the most recently
// created projection first.
type Rec struct {
	datumBase
	Name string
	// Type is the record's declared type descriptor; nil for untyped
	// RECORD variables.
	Type *Type
	// RecTypeID is the record's catalog type OID (the generic record
	// OID for untyped records).
	RecTypeID oid.Oid
	LineNo    int
	Const     bool
	NotNull   bool
	Default   *Expr
	// FirstField heads the chain of RecField datums belonging to this
	// record, or -1 when none exist yet.
	FirstField int
}

// DatumKind implements the Datum interface.
func (r *Rec) DatumKind() DatumKind { return DatumRec }

// RefName implements the Variable interface.
func (r *Rec) RefName() string { return r.Name }

// IsConst implements the Variable interface.
func (r *Rec) IsConst() bool { return r.Const }

// RecField is a projection of one named field of a record.
type RecField struct {
	datumBase
	FieldName string
	// RecParentNo is the owning record's datum index.
	RecParentNo int
	// NextField continues the owning record's projection chain, or -1.
	NextField int
	// TupleDescID caches the version token of the record's row type as
	// of the last time the projection's field number was validated.
	// Zero means not yet validated.
	TupleDescID uint64
}

// DatumKind implements the Datum interface.
func (f *RecField) DatumKind() DatumKind { return DatumRecField }

// Row is a synthesized tuple datum grouping several member datums.
type Row struct {
	datumBase
	Name   string
	LineNo int
	// FieldNames and VarNos run in parallel: member i is the datum
	// VarNos[i], presented under FieldNames[i].
	FieldNames []string
	VarNos     []int
	// Layout is the synthesized tuple shape, built by concatenating
	// the members' types.
	Layout *RowLayout
}

// DatumKind implements the Datum interface.
func (r *Row) DatumKind() DatumKind { return DatumRow }

// AddDatum appends a datum to the session's datum table and assigns its
// dno. Indices increase monotonically and are never reused within one
// compilation.
func (s *Session) AddDatum(d Datum) {
	d.setDno(len(s.datums))
	s.datums = append(s.datums, d)
}

// NumDatums returns the number of datums created so far.
func (s *Session) NumDatums() int { return len(s.datums) }

// Datum returns the datum with the given index.
func (s *Session) Datum(dno int) Datum { return s.datums[dno] }

// finishDatums snapshots the session's datum table into the function's
// permanent datum array and precomputes the byte-size hint the
// execution engine uses to size per-invocation copies.
func (s *Session) finishDatums(fn *Function) {
	fn.Datums = append([]Datum(nil), s.datums...)

	// This must agree with the execution engine on what is copiable:
	// scalar variable and record headers are copied per invocation;
	// field projections and rows are derived or shared, not copied.
	var copiableSize uintptr
	for _, d := range fn.Datums {
		switch d.DatumKind() {
		case DatumVar:
			copiableSize += unsafe.Sizeof(Var{})
		case DatumRec:
			copiableSize += unsafe.Sizeof(Rec{})
		case DatumRecField, DatumRow:
			// Not copied.
		}
	}
	fn.CopiableSize = copiableSize
}

// MarkInitDatums forgets any datums created since the last checkpoint
// without reporting them. Called when entering a DECLARE section.
func (s *Session) MarkInitDatums() {
	s.datumsLast = len(s.datums)
}

// AddInitDatums returns the indices of all initializable datums created
// since the last checkpoint and advances the checkpoint. The block
// declaration code uses the result to tell the execution engine which
// datums need initialization on block entry.
//
// Only scalar variable and record datums are initializable: field
// projections and rows are set up lazily or structurally, so they are
// excluded. Datums can also be created outside DECLARE sections (for
// example by FOR loops); initializing those is their creator's
// responsibility.
func (s *Session) AddInitDatums() []int {
	var varnos []int
	for _, d := range s.datums[s.datumsLast:] {
		switch d.DatumKind() {
		case DatumVar, DatumRec:
			varnos = append(varnos, d.Dno())
		case DatumRecField, DatumRow:
			// Excluded, see above.
		}
	}
	s.datumsLast = len(s.datums)
	return varnos
}
