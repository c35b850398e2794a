// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

// Package scope implements the lexical namespace used while compiling a
// PL/pgSQL function body. Scopes form a strict stack of blocks; each
// block is delimited by a label item and holds name bindings for the
// variables and records declared in it.
//
// Items form a singly linked chain growing toward the innermost scope.
// An *Item captured at any point (for example by an embedded SQL
// expression) remains a valid resolution starting point for the rest of
// the compilation, which is why the chain is never mutated in place.
package scope

import (
	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgcode"
	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgerror"
	"github.com/cockroachdb/errors"
)

// ItemKind distinguishes the kinds of namespace entries.
type ItemKind int

const (
	// Label delimits a block scope. The item's name is the block's
	// label, or the empty string for an unlabeled block.
	Label ItemKind = iota
	// Variable is a binding for a scalar variable datum.
	Variable
	// Record is a binding for a record datum.
	Record
)

// LabelKind tells what kind of construct a label item belongs to.
type LabelKind int

const (
	// BlockLabel labels a BEGIN/END block (or the function body itself).
	BlockLabel LabelKind = iota
	// LoopLabel labels a loop; EXIT and CONTINUE can target it.
	LoopLabel
)

// Item is one entry in the namespace chain.
type Item struct {
	Kind ItemKind
	// LabelKind is meaningful only when Kind == Label.
	LabelKind LabelKind
	// DatumNo is the bound datum's index. Unused for label items.
	DatumNo int
	Name    string

	prev *Item
}

// Prev returns the next-outer item in the chain, or nil at the
// outermost end.
func (it *Item) Prev() *Item { return it.prev }

// Stack is the mutable namespace of one compilation.
type Stack struct {
	top *Item
}

// Init resets the namespace to empty. Called at compile startup.
func (s *Stack) Init() {
	s.top = nil
}

// Top returns the innermost item, which is the starting point for
// unrestricted lookups.
func (s *Stack) Top() *Item { return s.top }

// Push opens a new block scope with the given label (may be empty).
func (s *Stack) Push(label string, kind LabelKind) {
	s.top = &Item{
		Kind:      Label,
		LabelKind: kind,
		Name:      label,
		prev:      s.top,
	}
}

// Pop closes the innermost block scope, discarding its bindings
// together with its label item.
func (s *Stack) Pop() {
	for s.top.Kind != Label {
		s.top = s.top.prev
	}
	s.top = s.top.prev
}

// Add binds a name to a datum in the innermost scope. Shadowing an
// outer scope's binding is legal; re-declaring a name already bound in
// the innermost scope is not.
func (s *Stack) Add(kind ItemKind, datumNo int, name string) error {
	if s.top == nil {
		return errors.AssertionFailedf("namespace has no open scope")
	}
	if item, _ := Lookup(s.top, true /* localMode */, name, "", ""); item != nil {
		return pgerror.Newf(pgcode.DuplicateObject, "duplicate declaration")
	}
	s.top = &Item{
		Kind:    kind,
		DatumNo: datumNo,
		Name:    name,
		prev:    s.top,
	}
	return nil
}

// Lookup resolves a possibly-qualified name against the namespace,
// starting at cur and walking outward. Absent name parts are passed as
// empty strings. If localMode is set, only the innermost scope is
// examined.
//
// The allowed syntaxes and what they can match:
//
//	name1                   scalar variable or record
//	label.name2             variable or record qualified by block label
//	name1.field             field of record name1
//	label.name2.field       field of record name2 in block label
//
// namesUsed reports how many of the given names were consumed by the
// match: callers need it to tell a whole-record match (all names used)
// from a record match with a trailing field reference. A scalar
// variable only matches when it consumes every given name; a record may
// leave exactly one trailing name to be interpreted as a field.
func Lookup(cur *Item, localMode bool, name1, name2, name3 string) (item *Item, namesUsed int) {
	// Outer loop iterates once per block level in the namespace chain.
	for cur != nil {
		// Check this level for an unqualified match to the variable name.
		it := cur
		for ; it.Kind != Label; it = it.prev {
			if it.Name == name1 {
				if name2 == "" || it.Kind != Variable {
					return it, 1
				}
			}
		}

		// it now points at this level's label. Check for a qualified
		// match against the label name.
		if name2 != "" && it.Name == name1 {
			for qit := cur; qit.Kind != Label; qit = qit.prev {
				if qit.Name == name2 {
					if name3 == "" || qit.Kind != Variable {
						return qit, 2
					}
				}
			}
		}

		if localMode {
			break
		}
		cur = it.prev
	}
	return nil, 0
}

// LookupLabel finds the block label with the given name, walking
// outward from cur.
func LookupLabel(cur *Item, name string) *Item {
	for ; cur != nil; cur = cur.prev {
		if cur.Kind == Label && cur.Name == name {
			return cur
		}
	}
	return nil
}

// FindNearestLoopLabel returns the innermost loop label enclosing cur,
// for unlabeled EXIT and CONTINUE.
func FindNearestLoopLabel(cur *Item) *Item {
	for ; cur != nil; cur = cur.prev {
		if cur.Kind == Label && cur.LabelKind == LoopLabel {
			return cur
		}
	}
	return nil
}
