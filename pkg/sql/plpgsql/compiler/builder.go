// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package compiler

import (
	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgcode"
	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgerror"
	"github.com/Florents-Tselai/postgres/pkg/sql/plpgsql/scope"
	"github.com/cockroachdb/errors"
	"github.com/lib/pq/oid"
)

// BuildVariable builds a datum of the given datatype, adds it to the
// datum table and, optionally, binds it in the current scope. The
// result is a *Var or a *Rec depending on the datatype's category.
func (s *Session) BuildVariable(
	name string, lineNo int, typ *Type, addToNamespace bool,
) (Variable, error) {
	switch typ.Category {
	case TypeCategoryScalar:
		// Value slot stays null-initialized; the execution engine owns it.
		v := &Var{
			Name:   name,
			LineNo: lineNo,
			Type:   typ,
		}
		s.AddDatum(v)
		if addToNamespace {
			if err := s.ns.Add(scope.Variable, v.Dno(), name); err != nil {
				return nil, err
			}
		}
		return v, nil

	case TypeCategoryRecord:
		return s.BuildRecord(name, lineNo, typ, typ.Oid, addToNamespace)

	case TypeCategoryPseudo:
		return nil, pgerror.Newf(pgcode.FeatureNotSupported,
			"variable %q has pseudo-type %s", name, typ.Name)

	default:
		return nil, errors.AssertionFailedf("unrecognized type category: %d", typ.Category)
	}
}

// BuildRecord builds an empty named record variable with no field
// projections yet. typ may be nil for untyped RECORD variables;
// recTypeID is the record's catalog type OID either way.
func (s *Session) BuildRecord(
	name string, lineNo int, typ *Type, recTypeID oid.Oid, addToNamespace bool,
) (*Rec, error) {
	rec := &Rec{
		Name:       name,
		LineNo:     lineNo,
		Type:       typ,
		RecTypeID:  recTypeID,
		FirstField: -1,
	}
	s.AddDatum(rec)
	if addToNamespace {
		if err := s.ns.Add(scope.Record, rec.Dno(), name); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// buildRowFromVars synthesizes a row datum over the given member
// variables, along with the tuple shape needed to materialize the row
// result. The caller adds the row to the datum table. Used only to
// present multiple OUT parameters as one return value.
func (s *Session) buildRowFromVars(vars []Variable) (*Row, error) {
	row := &Row{
		Name:       "(unnamed row)",
		LineNo:     -1,
		FieldNames: make([]string, len(vars)),
		VarNos:     make([]int, len(vars)),
		Layout:     &RowLayout{Fields: make([]RowField, len(vars))},
	}

	for i, v := range vars {
		if v.IsConst() {
			return nil, errors.AssertionFailedf(
				"row member %q must not be a constant", v.RefName())
		}

		var field RowField
		switch m := v.(type) {
		case *Var:
			field = RowField{
				Type:      m.Type.Oid,
				Typmod:    m.Type.Typmod,
				Collation: m.Type.Collation,
			}
		case *Rec:
			// Typmod is unknown (if it is used at all), and composite
			// types have no collation.
			field = RowField{
				Type:   m.RecTypeID,
				Typmod: -1,
			}
		default:
			return nil, errors.AssertionFailedf("unrecognized row member kind: %T", v)
		}
		field.Name = v.RefName()

		row.FieldNames[i] = v.RefName()
		row.VarNos[i] = v.Dno()
		row.Layout.Fields[i] = field
	}

	return row, nil
}

// BuildRecField returns the projection datum for the named field of the
// given record, creating it on first reference. Re-requesting an
// already-projected field returns the existing datum; the chain scan is
// linear but chains are expected short.
func (s *Session) BuildRecField(rec *Rec, fieldName string) *RecField {
	for dno := rec.FirstField; dno >= 0; {
		fld := s.datums[dno].(*RecField)
		if fld.FieldName == fieldName {
			return fld
		}
		dno = fld.NextField
	}

	fld := &RecField{
		FieldName:   fieldName,
		RecParentNo: rec.Dno(),
	}
	s.AddDatum(fld)

	// Link it into the parent's chain only after it has a dno.
	fld.NextField = rec.FirstField
	rec.FirstField = fld.Dno()
	return fld
}
