// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package compiler

import (
	"context"

	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgcode"
	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/errors"
	"github.com/lib/pq/oid"
)

// Type OIDs introduced after the lib/pq oid tables were generated.
const (
	oidAnyCompatible           oid.Oid = 5077
	oidAnyCompatibleArray      oid.Oid = 5078
	oidAnyCompatibleNonArray   oid.Oid = 5079
	oidAnyCompatibleRange      oid.Oid = 5080
	oidAnyCompatibleMultirange oid.Oid = 4538
	oidAnyMultirange           oid.Oid = 4537
	oidInt4Multirange          oid.Oid = 4451
)

// TypeCategory is the binder's three-way classification of a type,
// which decides what kind of datum a declaration of that type yields.
type TypeCategory int

const (
	// TypeCategoryScalar types yield scalar variable datums.
	TypeCategoryScalar TypeCategory = iota
	// TypeCategoryRecord types yield record datums.
	TypeCategoryRecord
	// TypeCategoryPseudo types cannot be used for variables.
	TypeCategoryPseudo
)

// Type is the compiler's descriptor for one resolved type.
type Type struct {
	Name     string
	Oid      oid.Oid
	Category TypeCategory
	Len      int16
	ByVal    bool
	Kind     TypeKind
	// Collation is the collation to use for values of the type, after
	// applying any declaration-site override.
	Collation oid.Oid
	// IsArray is set for true array types (and domains over them). It
	// is used only to decide whether a value needs expansion before
	// field access, never for type checking.
	IsArray bool
	Typmod  int32
	// OrigName is the name the user wrote for the type, kept for
	// re-resolution of named composite types. Nil when the type was
	// identified by OID to begin with.
	OrigName []string
	// Layout and TupleDescID are populated for named composite types
	// (and domains over them) only.
	Layout      *RowLayout
	TupleDescID uint64
}

// BuildDatatype resolves a catalog type into a compiler type
// descriptor.
//
// If collation is nonzero it overrides the type's default collation,
// but it is ignored when the type is non-collatable. origName is the
// parsed form of what the user wrote as the type name; it may be nil if
// the type cannot be composite or was identified by OID to begin with.
func (s *Session) BuildDatatype(
	ctx context.Context, id oid.Oid, typmod int32, collation oid.Oid, origName []string,
) (*Type, error) {
	entry, err := s.cat.LookupType(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildDatatype(ctx, entry, typmod, collation, origName)
}

func (s *Session) buildDatatype(
	ctx context.Context, entry *TypeEntry, typmod int32, collation oid.Oid, origName []string,
) (*Type, error) {
	if entry.IsShell {
		return nil, pgerror.Newf(pgcode.UndefinedObject,
			"type %q is only a shell", entry.Name)
	}

	typ := &Type{
		Name:      entry.Name,
		Oid:       entry.ID,
		Len:       entry.Len,
		ByVal:     entry.ByVal,
		Kind:      entry.Kind,
		Collation: entry.Collation,
		Typmod:    typmod,
	}

	switch entry.Kind {
	case TypeKindBase, TypeKindEnum, TypeKindRange, TypeKindMultirange:
		typ.Category = TypeCategoryScalar
	case TypeKindComposite:
		typ.Category = TypeCategoryRecord
	case TypeKindDomain:
		base, err := s.cat.LookupType(ctx, entry.BaseType)
		if err != nil {
			return nil, err
		}
		if typeIsRowType(base) {
			typ.Category = TypeCategoryRecord
		} else {
			typ.Category = TypeCategoryScalar
		}
	case TypeKindPseudo:
		if entry.ID == oid.T_record {
			typ.Category = TypeCategoryRecord
		} else {
			typ.Category = TypeCategoryPseudo
		}
	default:
		return nil, errors.AssertionFailedf("unrecognized typtype: %d", entry.Kind)
	}

	if collation != 0 && typ.Collation != 0 {
		typ.Collation = collation
	}

	// Detect if the type is a true array, or domain thereof. This is
	// only used to decide whether to expand a value before subscripting
	// or field access.
	switch entry.Kind {
	case TypeKindBase:
		typ.IsArray = entry.IsTrueArray && !entry.PlainStorage
	case TypeKindDomain:
		typ.IsArray = entry.Len == -1 && !entry.PlainStorage && entry.BaseElemType != 0
	}

	// If it's a named composite type (or domain over one), record the
	// current layout and its version token so schema drift can be
	// detected at execution time. The generic RECORD pseudo-type has no
	// fixed layout to record.
	if typ.Category == TypeCategoryRecord && typ.Oid != oid.T_record {
		layoutOid := typ.Oid
		if entry.Kind == TypeKindDomain {
			layoutOid = entry.BaseType
		}
		layout, err := s.cat.RowLayout(ctx, layoutOid)
		if err != nil {
			return nil, err
		}
		typ.OrigName = origName
		typ.Layout = layout
		typ.TupleDescID = layout.TupleDescID
	}

	return typ, nil
}

// BuildDatatypeArrayOf builds the array type over the given element
// type. If the element type is already an array it is returned as is,
// since arrays do not nest.
func (s *Session) BuildDatatypeArrayOf(ctx context.Context, elem *Type) (*Type, error) {
	if elem.IsArray {
		return elem, nil
	}
	arrayOid, err := s.cat.ArrayTypeOf(ctx, elem.Oid)
	if err != nil {
		return nil, err
	}
	if arrayOid == 0 {
		return nil, pgerror.Newf(pgcode.UndefinedObject,
			"could not find array type for data type %s", elem.Name)
	}
	// The element type's typmod and collation, if any, carry over.
	return s.BuildDatatype(ctx, arrayOid, elem.Typmod, elem.Collation, nil)
}

// typeIsRowType reports whether values of the type are composite rows.
func typeIsRowType(entry *TypeEntry) bool {
	return entry.Kind == TypeKindComposite || entry.ID == oid.T_record
}

// isPolymorphicType reports whether the type is a placeholder resolved
// to a concrete type only at invocation time.
func isPolymorphicType(id oid.Oid) bool {
	switch id {
	case oid.T_anyelement, oid.T_anyarray, oid.T_anynonarray, oid.T_anyenum,
		oid.T_anyrange, oidAnyMultirange, oidAnyCompatible, oidAnyCompatibleArray,
		oidAnyCompatibleNonArray, oidAnyCompatibleRange, oidAnyCompatibleMultirange:
		return true
	}
	return false
}
