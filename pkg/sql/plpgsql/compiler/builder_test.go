// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package compiler

import (
	"context"
	"testing"

	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgcode"
	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgerror"
	"github.com/Florents-Tselai/postgres/pkg/sql/plpgsql/scope"
	"github.com/lib/pq/oid"
	"github.com/stretchr/testify/require"
)

func TestBuildVariableKinds(t *testing.T) {
	ctx := context.Background()
	s := NewSession(newTestCatalog())
	s.Scope().Push("fn", scope.BlockLabel)

	intType, err := s.BuildDatatype(ctx, oid.T_int4, -1, 0, nil)
	require.NoError(t, err)
	v, err := s.BuildVariable("a", 1, intType, true)
	require.NoError(t, err)
	require.IsType(t, (*Var)(nil), v)
	require.Equal(t, DatumVar, v.DatumKind())

	// A composite-typed declaration yields a record datum.
	compType, err := s.BuildDatatype(ctx, testCompositeOid, -1, 0, nil)
	require.NoError(t, err)
	v, err = s.BuildVariable("r", 2, compType, true)
	require.NoError(t, err)
	rec, ok := v.(*Rec)
	require.True(t, ok)
	require.Equal(t, testCompositeOid, rec.RecTypeID)
	require.Equal(t, -1, rec.FirstField)

	// Both are findable in the namespace.
	item, _ := scope.Lookup(s.Scope().Top(), false, "a", "", "")
	require.NotNil(t, item)
	require.Equal(t, scope.Variable, item.Kind)
	item, _ = scope.Lookup(s.Scope().Top(), false, "r", "", "")
	require.NotNil(t, item)
	require.Equal(t, scope.Record, item.Kind)

	// Pseudo-typed declarations are rejected.
	pseudoType, err := s.BuildDatatype(ctx, oid.T_cstring, -1, 0, nil)
	require.NoError(t, err)
	_, err = s.BuildVariable("bad", 3, pseudoType, true)
	require.ErrorContains(t, err, `variable "bad" has pseudo-type cstring`)
	require.Equal(t, pgcode.FeatureNotSupported, pgerror.GetPGCode(err))
}

func TestBuildRecFieldDedup(t *testing.T) {
	s := NewSession(newTestCatalog())
	s.Scope().Push("fn", scope.BlockLabel)

	rec, err := s.BuildRecord("r", 1, nil, oid.T_record, true)
	require.NoError(t, err)

	f1 := s.BuildRecField(rec, "x")
	f2 := s.BuildRecField(rec, "y")
	// Re-requesting an already-projected field returns the same datum.
	require.Same(t, f1, s.BuildRecField(rec, "x"))
	require.Same(t, f2, s.BuildRecField(rec, "y"))
	require.Equal(t, 3, s.NumDatums())

	// The chain runs newest-first from the record header.
	require.Equal(t, f2.Dno(), rec.FirstField)
	require.Equal(t, f1.Dno(), f2.NextField)
	require.Equal(t, -1, f1.NextField)
	require.Equal(t, rec.Dno(), f1.RecParentNo)
	require.Equal(t, rec.Dno(), f2.RecParentNo)

	// Same field name on a different record is a distinct datum.
	rec2, err := s.BuildRecord("r2", 2, nil, oid.T_record, true)
	require.NoError(t, err)
	f3 := s.BuildRecField(rec2, "x")
	require.NotEqual(t, f1.Dno(), f3.Dno())
}

func TestBuildRowFromVars(t *testing.T) {
	ctx := context.Background()
	s := NewSession(newTestCatalog())
	s.Scope().Push("fn", scope.BlockLabel)

	textType, err := s.BuildDatatype(ctx, oid.T_text, -1, 0, nil)
	require.NoError(t, err)
	v1, err := s.BuildVariable("a", 1, textType, true)
	require.NoError(t, err)
	rec, err := s.BuildRecord("b", 2, nil, oid.T_record, true)
	require.NoError(t, err)

	row, err := s.buildRowFromVars([]Variable{v1, rec})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, row.FieldNames)
	require.Equal(t, []int{v1.Dno(), rec.Dno()}, row.VarNos)

	require.Equal(t, oid.T_text, row.Layout.Fields[0].Type)
	require.Equal(t, testDefaultCollation, row.Layout.Fields[0].Collation)
	require.Equal(t, oid.T_record, row.Layout.Fields[1].Type)
	require.Equal(t, int32(-1), row.Layout.Fields[1].Typmod)
}
