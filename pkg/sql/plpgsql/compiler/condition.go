// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package compiler

import (
	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgcode"
	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgerror"
	"github.com/Florents-Tselai/postgres/pkg/sql/sem/plpgsqltree"
)

// RecognizeErrCondition translates a condition name occurring in a
// RAISE statement into a SQLSTATE. When allowSQLState is set, a literal
// five-character SQLSTATE (uppercase letters and digits) is accepted
// as-is. Some condition names map to more than one SQLSTATE; RAISE gets
// the first, most-common one.
func RecognizeErrCondition(condName string, allowSQLState bool) (pgcode.Code, error) {
	if allowSQLState && isSQLStateLiteral(condName) {
		return pgcode.MakeCode(condName), nil
	}
	for _, c := range exceptionLabelMap {
		if c.label == condName {
			return c.code, nil
		}
	}
	return pgcode.Code{}, pgerror.Newf(pgcode.UndefinedObject,
		"unrecognized exception condition %q", condName)
}

// ParseErrCondition translates a condition name occurring in an
// EXCEPTION clause into the list of matching conditions. Unlike RAISE,
// a name mapping to several SQLSTATEs matches all of them, and the
// special name "others" matches any error not caught by a sibling
// condition.
func ParseErrCondition(condName string) ([]plpgsqltree.Condition, error) {
	if condName == "others" {
		return []plpgsqltree.Condition{{Name: condName}}, nil
	}

	var conds []plpgsqltree.Condition
	for _, c := range exceptionLabelMap {
		if c.label == condName {
			conds = append(conds, plpgsqltree.Condition{
				SQLErrState: c.code,
				Name:        condName,
			})
		}
	}
	if conds == nil {
		return nil, pgerror.Newf(pgcode.UndefinedObject,
			"unrecognized exception condition %q", condName)
	}
	return conds, nil
}

func isSQLStateLiteral(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if (ch < 'A' || ch > 'Z') && (ch < '0' || ch > '9') {
			return false
		}
	}
	return true
}
