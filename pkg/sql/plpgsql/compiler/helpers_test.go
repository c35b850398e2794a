// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package compiler

import (
	"context"
	"strings"

	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgcode"
	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgerror"
	"github.com/Florents-Tselai/postgres/pkg/sql/sem/plpgsqltree"
	"github.com/lib/pq/oid"
)

// OIDs local to the test catalog.
const (
	testCompositeOid oid.Oid = 90001
	testDomainOid    oid.Oid = 90002
	testShellOid     oid.Oid = 90003
	testRelationOid  oid.Oid = 90004
	testRowDomainOid oid.Oid = 90005
)

const testDefaultCollation oid.Oid = 100

// testCatalog is a fixed in-memory catalog with enough types and one
// relation to drive the compiler.
type testCatalog struct {
	types     map[oid.Oid]*TypeEntry
	layouts   map[oid.Oid]*RowLayout
	relations map[string]*RelationEntry
	columns   map[string]*ColumnEntry
}

var _ Catalog = (*testCatalog)(nil)

func newTestCatalog() *testCatalog {
	cat := &testCatalog{
		types:     make(map[oid.Oid]*TypeEntry),
		layouts:   make(map[oid.Oid]*RowLayout),
		relations: make(map[string]*RelationEntry),
		columns:   make(map[string]*ColumnEntry),
	}

	add := func(e TypeEntry) {
		cat.types[e.ID] = &e
	}
	add(TypeEntry{ID: oid.T_bool, Name: "boolean", Kind: TypeKindBase, Len: 1, ByVal: true})
	add(TypeEntry{ID: oid.T_int4, Name: "integer", Kind: TypeKindBase, Len: 4, ByVal: true})
	add(TypeEntry{ID: oid.T_int8, Name: "bigint", Kind: TypeKindBase, Len: 8, ByVal: true})
	add(TypeEntry{ID: oid.T_numeric, Name: "numeric", Kind: TypeKindBase, Len: -1})
	add(TypeEntry{ID: oid.T_text, Name: "text", Kind: TypeKindBase, Len: -1, Collation: testDefaultCollation})
	add(TypeEntry{ID: oid.T_name, Name: "name", Kind: TypeKindBase, Len: 64, Collation: testDefaultCollation})
	add(TypeEntry{ID: oid.T_oid, Name: "oid", Kind: TypeKindBase, Len: 4, ByVal: true})
	add(TypeEntry{ID: oid.T__text, Name: "text[]", Kind: TypeKindBase, Len: -1,
		Collation: testDefaultCollation, IsTrueArray: true})
	add(TypeEntry{ID: oid.T__int4, Name: "integer[]", Kind: TypeKindBase, Len: -1, IsTrueArray: true})
	add(TypeEntry{ID: oid.T_int4range, Name: "int4range", Kind: TypeKindRange, Len: -1})
	add(TypeEntry{ID: oidInt4Multirange, Name: "int4multirange", Kind: TypeKindMultirange, Len: -1})
	add(TypeEntry{ID: oid.T_void, Name: "void", Kind: TypeKindPseudo, Len: 4, ByVal: true})
	add(TypeEntry{ID: oid.T_record, Name: "record", Kind: TypeKindPseudo, Len: -1})
	add(TypeEntry{ID: oid.T_trigger, Name: "trigger", Kind: TypeKindPseudo, Len: 4, ByVal: true})
	add(TypeEntry{ID: oid.T_event_trigger, Name: "event_trigger", Kind: TypeKindPseudo, Len: 4, ByVal: true})
	add(TypeEntry{ID: oid.T_cstring, Name: "cstring", Kind: TypeKindPseudo, Len: -2})
	add(TypeEntry{ID: oid.T_anyelement, Name: "anyelement", Kind: TypeKindPseudo, Len: 4, ByVal: true})
	add(TypeEntry{ID: oid.T_anyarray, Name: "anyarray", Kind: TypeKindPseudo, Len: -1})

	add(TypeEntry{ID: testCompositeOid, Name: "two_ints", Kind: TypeKindComposite, Len: -1})
	cat.layouts[testCompositeOid] = &RowLayout{
		Fields: []RowField{
			{Name: "f1", Type: oid.T_int4, Typmod: -1},
			{Name: "f2", Type: oid.T_int4, Typmod: -1},
		},
		TupleDescID: 42,
	}
	add(TypeEntry{ID: testDomainOid, Name: "posint", Kind: TypeKindDomain, Len: 4, ByVal: true,
		BaseType: oid.T_int4})
	add(TypeEntry{ID: testRowDomainOid, Name: "two_ints_dom", Kind: TypeKindDomain, Len: -1,
		BaseType: testCompositeOid})
	add(TypeEntry{ID: testShellOid, Name: "shelltyp", Kind: TypeKindBase, IsShell: true})

	cat.relations["t"] = &RelationEntry{ID: testRelationOid, Name: "t", RowType: testCompositeOid}
	cat.relations["norowtype"] = &RelationEntry{ID: testRelationOid + 1, Name: "norowtype"}
	cat.columns["t.f1"] = &ColumnEntry{Type: oid.T_int4, Typmod: -1}
	cat.columns["t.f2"] = &ColumnEntry{Type: oid.T_int4, Typmod: -1}

	return cat
}

func (c *testCatalog) LookupType(ctx context.Context, id oid.Oid) (*TypeEntry, error) {
	if e, ok := c.types[id]; ok {
		return e, nil
	}
	return nil, pgerror.Newf(pgcode.Internal, "cache lookup failed for type %d", id)
}

func (c *testCatalog) RowLayout(ctx context.Context, id oid.Oid) (*RowLayout, error) {
	if l, ok := c.layouts[id]; ok {
		return l, nil
	}
	return nil, pgerror.Newf(pgcode.WrongObjectType, "type %d is not composite", id)
}

func (c *testCatalog) LookupRelation(ctx context.Context, name []string) (*RelationEntry, error) {
	if rel, ok := c.relations[name[len(name)-1]]; ok {
		return rel, nil
	}
	return nil, pgerror.Newf(pgcode.UndefinedTable,
		"relation %q does not exist", strings.Join(name, "."))
}

func (c *testCatalog) LookupColumn(
	ctx context.Context, rel oid.Oid, column string,
) (*ColumnEntry, error) {
	for name, r := range c.relations {
		if r.ID != rel {
			continue
		}
		if col, ok := c.columns[name+"."+column]; ok {
			return col, nil
		}
		break
	}
	return nil, pgerror.Newf(pgcode.UndefinedColumn, "column %q does not exist", column)
}

func (c *testCatalog) ArrayTypeOf(ctx context.Context, elem oid.Oid) (oid.Oid, error) {
	switch elem {
	case oid.T_int4:
		return oid.T__int4, nil
	case oid.T_text:
		return oid.T__text, nil
	}
	return 0, nil
}

// testParser returns a canned body, or calls fn if set.
type testParser struct {
	body *plpgsqltree.Block
	fn   func(ctx context.Context, s *Session, source string) (*plpgsqltree.Block, error)
}

var _ Parser = (*testParser)(nil)

func (p *testParser) Parse(
	ctx context.Context, s *Session, source string,
) (*plpgsqltree.Block, error) {
	if p.fn != nil {
		return p.fn(ctx, s, source)
	}
	body := p.body
	if body == nil {
		body = &plpgsqltree.Block{}
	}
	body.StmtID = s.NextStmtID()
	return body, nil
}
