// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package compiler

import (
	"context"
	"fmt"
	"strings"

	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgcode"
	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgerror"
	"github.com/Florents-Tselai/postgres/pkg/sql/plpgsql/scope"
	"github.com/cockroachdb/errors"
)

// WordDatum is the result of classifying an identifier (or dotted
// identifier sequence) as a reference to an existing datum.
type WordDatum struct {
	Datum Datum
	// Idents holds the identifier parts that were matched.
	Idents []string
	// Quoted is set when the source token was double-quoted. Only
	// meaningful for single-word matches.
	Quoted bool
}

// ParseWord classifies a single non-keyword word. word is the
// downcased/dequoted identifier, yytxt the original token text (needed
// to detect quoting). The word is recognized as a variable only when
// lookup is set and the session's identifier-lookup mode permits it;
// otherwise it stays a plain word for the caller to handle.
func (s *Session) ParseWord(word, yytxt string, lookup bool) (WordDatum, bool) {
	// Lookups are suppressed in DECLARE sections. In SQL expressions
	// there is no need either: resolution happens when the expression
	// itself is compiled.
	if lookup && s.IdentifierLookup == IdentifierLookupNormal {
		if item, _ := scope.Lookup(s.ns.Top(), false, word, "", ""); item != nil {
			switch item.Kind {
			case scope.Variable, scope.Record:
				return WordDatum{
					Datum:  s.datums[item.DatumNo],
					Idents: []string{word},
					Quoted: strings.HasPrefix(yytxt, `"`),
				}, true
			}
		}
	}
	return WordDatum{}, false
}

// ParseDblWord classifies two words separated by a dot. On a record
// match with a trailing field name, the field-projection datum is
// materialized eagerly so later expression compilation can reference it
// directly.
func (s *Session) ParseDblWord(word1, word2 string) (WordDatum, bool) {
	// Nothing to do in DECLARE sections. In SQL expressions the only
	// job is making sure record-field datums exist when needed.
	if s.IdentifierLookup == IdentifierLookupDeclare {
		return WordDatum{}, false
	}
	idents := []string{word1, word2}
	item, namesUsed := scope.Lookup(s.ns.Top(), false, word1, word2, "")
	if item == nil {
		return WordDatum{}, false
	}
	switch item.Kind {
	case scope.Variable:
		// Block-qualified reference to a scalar variable.
		return WordDatum{Datum: s.datums[item.DatumNo], Idents: idents}, true
	case scope.Record:
		if namesUsed == 1 {
			// First word is a record name, so the second could be a
			// field in it. Build the projection whether it is or not;
			// any error is detected later, against the live row shape.
			rec := s.datums[item.DatumNo].(*Rec)
			return WordDatum{Datum: s.BuildRecField(rec, word2), Idents: idents}, true
		}
		// Block-qualified reference to a record variable.
		return WordDatum{Datum: s.datums[item.DatumNo], Idents: idents}, true
	}
	return WordDatum{}, false
}

// ParseTripWord classifies three words separated by dots. Only
// block-qualified record references can match; anything else is left to
// the SQL parser and catalog.
func (s *Session) ParseTripWord(word1, word2, word3 string) (WordDatum, bool) {
	if s.IdentifierLookup == IdentifierLookupDeclare {
		return WordDatum{}, false
	}
	item, namesUsed := scope.Lookup(s.ns.Top(), false, word1, word2, word3)
	if item == nil || item.Kind != scope.Record {
		return WordDatum{}, false
	}
	rec := s.datums[item.DatumNo].(*Rec)
	if namesUsed == 1 {
		// word1 is a record, word2 could be a field (and word3 a
		// sub-field reference, which is not our concern here).
		return WordDatum{
			Datum:  s.BuildRecField(rec, word2),
			Idents: []string{word1, word2},
		}, true
	}
	// Block-qualified record, word3 could be a field.
	return WordDatum{
		Datum:  s.BuildRecField(rec, word3),
		Idents: []string{word1, word2, word3},
	}, true
}

// ParseWordType resolves name%TYPE for a single-word name, which must
// be an existing variable or record.
func (s *Session) ParseWordType(name string) (*Type, error) {
	if item, _ := scope.Lookup(s.ns.Top(), false, name, "", ""); item != nil {
		switch item.Kind {
		case scope.Variable:
			return s.datums[item.DatumNo].(*Var).Type, nil
		case scope.Record:
			return s.datums[item.DatumNo].(*Rec).Type, nil
		}
	}
	return nil, pgerror.Newf(pgcode.UndefinedObject,
		"variable %q does not exist", name)
}

// ParseCWordType resolves name%TYPE for a dotted name: either a
// block-qualified variable, or a column of some table. If neither
// matches, the error assumes a table column was intended.
func (s *Session) ParseCWordType(ctx context.Context, idents []string) (*Type, error) {
	var relName []string
	var fieldName string

	if len(idents) == 2 {
		item, namesUsed := scope.Lookup(s.ns.Top(), false, idents[0], idents[1], "")
		if item != nil && item.Kind == scope.Variable {
			// Block-qualified reference to a scalar variable.
			return s.datums[item.DatumNo].(*Var).Type, nil
		}
		if item != nil && item.Kind == scope.Record && namesUsed == 2 {
			// Block-qualified reference to a record variable.
			return s.datums[item.DatumNo].(*Rec).Type, nil
		}
		// The first word could also be a table name.
		relName = idents[:1]
		fieldName = idents[1]
	} else {
		// A block-qualified field of a record could match here too, but
		// %TYPE is documented as applying to variables, not fields of
		// variables; allowing both readings would be ambiguous.
		relName = idents[:len(idents)-1]
		fieldName = idents[len(idents)-1]
	}

	rel, err := s.cat.LookupRelation(ctx, relName)
	if err != nil {
		return nil, err
	}
	col, err := s.cat.LookupColumn(ctx, rel.ID, fieldName)
	if err != nil {
		if pgerror.GetPGCode(err) == pgcode.UndefinedColumn {
			return nil, pgerror.Newf(pgcode.UndefinedColumn,
				"column %q of relation %q does not exist", fieldName, rel.Name)
		}
		return nil, err
	}
	return s.BuildDatatype(ctx, col.Type, col.Typmod, col.Collation, nil)
}

// ParseWordRowType resolves name%ROWTYPE, so name must be a relation.
func (s *Session) ParseWordRowType(ctx context.Context, name string) (*Type, error) {
	return s.parseRowType(ctx, []string{name})
}

// ParseCWordRowType resolves name%ROWTYPE for a schema-qualified
// relation name.
func (s *Session) ParseCWordRowType(ctx context.Context, idents []string) (*Type, error) {
	return s.parseRowType(ctx, idents)
}

func (s *Session) parseRowType(ctx context.Context, name []string) (*Type, error) {
	// This is a relation lookup, though it could equally be handled as
	// a type lookup since relation row types share their relation's
	// name; the errors here have traditionally referred to relations.
	rel, err := s.cat.LookupRelation(ctx, name)
	if err != nil {
		return nil, err
	}
	// Some relation kinds lack row types.
	if rel.RowType == 0 {
		return nil, pgerror.Newf(pgcode.WrongObjectType,
			"relation %q does not have a composite type", rel.Name)
	}
	return s.BuildDatatype(ctx, rel.RowType, -1, 0, name)
}

// ColumnRef is a column reference encountered by the SQL parser inside
// an embedded expression. Names holds the dotted identifier parts;
// Star is set when the reference ends in ".*".
type ColumnRef struct {
	Names    []string
	Star     bool
	Location int32
}

func (c *ColumnRef) String() string {
	out := strings.Join(c.Names, ".")
	if c.Star {
		out += ".*"
	}
	return out
}

// DatumParam is a resolved reference to a datum, handed back to the SQL
// parser in place of a column reference.
type DatumParam struct {
	Dno      int
	Location int32
}

// SQLResolver is the capability object handed to the SQL parser for the
// duration of one embedded expression's analysis. The parser invokes
// PreColumnRef before attempting its own column resolution,
// PostColumnRef after, and ParamRef for $n placeholders.
type SQLResolver struct {
	s    *Session
	expr *Expr
}

// MakeSQLResolver returns the resolution surface for one expression.
func (s *Session) MakeSQLResolver(expr *Expr) SQLResolver {
	return SQLResolver{s: s, expr: expr}
}

// PreColumnRef resolves a column reference before the SQL parser's own
// resolution. Under the variable-preference policy a namespace hit
// short-circuits column resolution entirely; otherwise this hook does
// nothing.
func (r SQLResolver) PreColumnRef(cref *ColumnRef) (*DatumParam, error) {
	if r.s.resolveOption == ResolveVariable {
		return r.s.resolveColumnRef(r.expr, cref, false /* errorIfNoField */)
	}
	return nil, nil
}

// PostColumnRef resolves a column reference after the SQL parser's own
// resolution; coreMatch reports whether that resolution found a table
// column. When both a namespace entry and a table column match, the
// reference is ambiguous: erroring here lets us add a more useful
// detail than the SQL parser could.
func (r SQLResolver) PostColumnRef(cref *ColumnRef, coreMatch bool) (*DatumParam, error) {
	if r.s.resolveOption == ResolveVariable {
		// Already established there is no variable match.
		return nil, nil
	}

	// If we find a record variable but cannot match a field name, and
	// the SQL parser found nothing either, the reference is going to
	// fail no matter what; complaining about the record variable is
	// likelier to be on point than the parser's own message.
	param, err := r.s.resolveColumnRef(r.expr, cref, !coreMatch)
	if err != nil {
		return nil, err
	}
	if param != nil && coreMatch {
		err := pgerror.Newf(pgcode.AmbiguousColumn,
			"column reference %q is ambiguous", cref.String())
		return nil, errors.WithDetailf(err,
			"It could refer to either a PL/pgSQL variable or a table column.")
	}
	return param, nil
}

// ParamRef resolves a $n placeholder against a namespace entry of the
// same name. A nil result without error means the placeholder is not
// known here (it may belong to an outer SQL-level mechanism).
func (r SQLResolver) ParamRef(number int, location int32) (*DatumParam, error) {
	pname := fmt.Sprintf("$%d", number)
	item, _ := scope.Lookup(r.expr.Ns, false, pname, "", "")
	if item == nil {
		return nil, nil
	}
	return r.s.makeDatumParam(r.expr, item.DatumNo, location), nil
}

// resolveColumnRef attempts to resolve a column reference as a datum
// reference. It returns nil (without error) when the name is not known
// to the namespace. errorIfNoField tells whether to error or quietly
// return nil when a record name matches but no field-projection datum
// matches the field part.
func (s *Session) resolveColumnRef(
	expr *Expr, cref *ColumnRef, errorIfNoField bool,
) (*DatumParam, error) {
	// The allowed syntaxes are:
	//
	//	A       scalar variable or whole-row record reference
	//	A.B     qualified scalar or whole-row reference, or field reference
	//	A.B.C   qualified record field reference
	//	A.*     whole-row record reference
	//	A.B.*   qualified whole-row record reference
	var name1, name2, name3, colname string
	var nnamesScalar, nnamesWholerow, nnamesField int

	parts := len(cref.Names)
	if cref.Star {
		parts++
	}
	switch {
	case parts == 1:
		name1 = cref.Names[0]
		nnamesScalar = 1
		nnamesWholerow = 1
	case parts == 2 && cref.Star:
		// Set name2 to the star marker to prevent matches to scalar
		// variables.
		name1, name2 = cref.Names[0], "*"
		nnamesWholerow = 1
	case parts == 2:
		name1, name2 = cref.Names[0], cref.Names[1]
		colname = name2
		nnamesScalar = 2
		nnamesWholerow = 2
		nnamesField = 1
	case parts == 3 && cref.Star:
		name1, name2, name3 = cref.Names[0], cref.Names[1], "*"
		nnamesWholerow = 2
	case parts == 3:
		name1, name2, name3 = cref.Names[0], cref.Names[1], cref.Names[2]
		colname = name3
		nnamesField = 2
	default:
		// Too many names; not ours to resolve.
		return nil, nil
	}

	item, nnames := scope.Lookup(expr.Ns, false, name1, name2, name3)
	if item == nil {
		return nil, nil
	}

	switch item.Kind {
	case scope.Variable:
		if nnames == nnamesScalar {
			return s.makeDatumParam(expr, item.DatumNo, cref.Location), nil
		}
	case scope.Record:
		if nnames == nnamesWholerow {
			return s.makeDatumParam(expr, item.DatumNo, cref.Location), nil
		}
		if nnames == nnamesField {
			// colname could be a field of this record: search for a
			// projection datum referencing it.
			rec := s.datums[item.DatumNo].(*Rec)
			for dno := rec.FirstField; dno >= 0; {
				fld := s.datums[dno].(*RecField)
				if fld.FieldName == colname {
					return s.makeDatumParam(expr, dno, cref.Location), nil
				}
				dno = fld.NextField
			}
			// A projection should have been built at scan time for
			// every qualified field reference in the source, but the
			// scanner only builds one when the field name lexes as a
			// plain identifier. If the would-be field name is a
			// reserved word, we lose; assume that happened and tell the
			// user to quote it, unless the caller prefers a quiet miss.
			if errorIfNoField {
				err := pgerror.Newf(pgcode.Syntax,
					"field name %q is a reserved key word", colname)
				return nil, errors.WithHint(err, "Use double quotes to quote it.")
			}
		}
	default:
		return nil, errors.AssertionFailedf("unrecognized namespace item kind: %d", item.Kind)
	}

	// The name format does not match the datum's kind.
	return nil, nil
}

// makeDatumParam builds a resolved datum reference and records the
// datum in the expression's parameter set.
func (s *Session) makeDatumParam(expr *Expr, dno int, location int32) *DatumParam {
	expr.ParamNos.Insert(dno)
	return &DatumParam{Dno: dno, Location: location}
}
