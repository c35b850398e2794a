// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package scope

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestLookupShadowing(t *testing.T) {
	var ns Stack
	ns.Init()
	ns.Push("fn", BlockLabel)
	require.NoError(t, ns.Add(Variable, 0, "x"))

	ns.Push("inner", BlockLabel)
	require.NoError(t, ns.Add(Variable, 1, "x"))

	// The inner binding shadows the outer one.
	item, used := Lookup(ns.Top(), false, "x", "", "")
	require.NotNil(t, item)
	require.Equal(t, 1, used)
	require.Equal(t, 1, item.DatumNo)

	// Qualifying by the outer label reaches the shadowed binding.
	item, used = Lookup(ns.Top(), false, "fn", "x", "")
	require.NotNil(t, item)
	require.Equal(t, 2, used)
	require.Equal(t, 0, item.DatumNo)

	// After popping the inner scope the outer binding is visible again.
	ns.Pop()
	item, used = Lookup(ns.Top(), false, "x", "", "")
	require.NotNil(t, item)
	require.Equal(t, 1, used)
	require.Equal(t, 0, item.DatumNo)
}

func TestAddRejectsDuplicates(t *testing.T) {
	var ns Stack
	ns.Init()
	ns.Push("fn", BlockLabel)
	require.NoError(t, ns.Add(Variable, 0, "v"))

	// Same name in the same scope is rejected, even for a different
	// entry kind.
	err := ns.Add(Record, 1, "v")
	require.ErrorContains(t, err, "duplicate declaration")
	err = ns.Add(Variable, 2, "v")
	require.ErrorContains(t, err, "duplicate declaration")

	// The same name in a nested scope is fine.
	ns.Push("inner", BlockLabel)
	require.NoError(t, ns.Add(Record, 3, "v"))
}

func TestLookupQualifiedNames(t *testing.T) {
	var ns Stack
	ns.Init()
	ns.Push("fn", BlockLabel)
	require.NoError(t, ns.Add(Variable, 0, "a"))
	require.NoError(t, ns.Add(Record, 1, "r"))

	// A scalar must consume every given name; "a.b" does not resolve to
	// the scalar "a".
	item, _ := Lookup(ns.Top(), false, "a", "b", "")
	require.Nil(t, item)

	// A record may leave one trailing name as a field reference.
	item, used := Lookup(ns.Top(), false, "r", "f", "")
	require.NotNil(t, item)
	require.Equal(t, 1, used)
	require.Equal(t, Record, item.Kind)

	// Fully qualified: label.record.field consumes two names.
	item, used = Lookup(ns.Top(), false, "fn", "r", "f")
	require.NotNil(t, item)
	require.Equal(t, 2, used)
	require.Equal(t, 1, item.DatumNo)

	// label.scalar.field cannot resolve.
	item, _ = Lookup(ns.Top(), false, "fn", "a", "f")
	require.Nil(t, item)
}

func TestLookupLocalMode(t *testing.T) {
	var ns Stack
	ns.Init()
	ns.Push("fn", BlockLabel)
	require.NoError(t, ns.Add(Variable, 0, "outer_var"))
	ns.Push("inner", BlockLabel)

	// Local mode only sees the innermost scope.
	item, _ := Lookup(ns.Top(), true, "outer_var", "", "")
	require.Nil(t, item)
	item, _ = Lookup(ns.Top(), false, "outer_var", "", "")
	require.NotNil(t, item)
}

func TestLoopLabels(t *testing.T) {
	var ns Stack
	ns.Init()
	ns.Push("fn", BlockLabel)
	ns.Push("l1", LoopLabel)
	ns.Push("", BlockLabel)
	ns.Push("l2", LoopLabel)

	require.Equal(t, "l2", FindNearestLoopLabel(ns.Top()).Name)
	require.NotNil(t, LookupLabel(ns.Top(), "l1"))
	require.NotNil(t, LookupLabel(ns.Top(), "fn"))
	require.Nil(t, LookupLabel(ns.Top(), "nope"))

	ns.Pop()
	require.Equal(t, "l1", FindNearestLoopLabel(ns.Top()).Name)
	ns.Pop()
	require.Nil(t, FindNearestLoopLabel(ns.Top()))
}

func TestNamespaceDataDriven(t *testing.T) {
	var ns Stack
	ns.Init()
	nextDno := 0

	datadriven.RunTest(t, "testdata/namespace", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "push":
			label := ""
			d.MaybeScanArgs(t, "label", &label)
			kind := BlockLabel
			if d.HasArg("loop") {
				kind = LoopLabel
			}
			ns.Push(label, kind)
			return "ok"

		case "pop":
			ns.Pop()
			return "ok"

		case "add":
			var name string
			d.ScanArgs(t, "name", &name)
			kind := Variable
			if d.HasArg("record") {
				kind = Record
			}
			dno := nextDno
			nextDno++
			if err := ns.Add(kind, dno, name); err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			return fmt.Sprintf("dno=%d", dno)

		case "lookup":
			names := strings.Split(strings.TrimSpace(d.Input), ".")
			for len(names) < 3 {
				names = append(names, "")
			}
			item, used := Lookup(ns.Top(), d.HasArg("local"), names[0], names[1], names[2])
			if item == nil {
				return "not found"
			}
			kind := "variable"
			if item.Kind == Record {
				kind = "record"
			}
			return fmt.Sprintf("%s dno=%d names-used=%d", kind, item.DatumNo, used)

		default:
			return fmt.Sprintf("unknown command: %s", d.Cmd)
		}
	})
}
