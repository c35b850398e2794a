// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

// Package pgerror provides constructors for errors that carry a
// candidate pgcode, to be reported to clients as SQLSTATE.
package pgerror

import (
	"fmt"

	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgcode"
	"github.com/cockroachdb/errors"
)

// New creates an error with a pg error code.
func New(code pgcode.Code, msg string) error {
	err := errors.NewWithDepth(1, msg)
	return WithCandidateCode(err, code)
}

// Newf creates an error with a pg error code via message formatting.
func Newf(code pgcode.Code, format string, args ...interface{}) error {
	return NewWithDepthf(1, code, format, args...)
}

// NewWithDepthf creates an error with a pg error code, with a depth
// offset for the stack trace annotation.
func NewWithDepthf(depth int, code pgcode.Code, format string, args ...interface{}) error {
	err := errors.NewWithDepthf(1+depth, format, args...)
	return WithCandidateCode(err, code)
}

// Wrapf wraps an error and adds a pg error code. See the doc on
// WrapWithDepthf for details.
func Wrapf(err error, code pgcode.Code, format string, args ...interface{}) error {
	return WrapWithDepthf(1, err, code, format, args...)
}

// WrapWithDepthf wraps an error. It also annotates the provided pg code
// as new candidate code, to be used if the underlying error does not
// have one already.
func WrapWithDepthf(
	depth int, err error, code pgcode.Code, format string, args ...interface{},
) error {
	err = errors.WrapWithDepthf(1+depth, err, format, args...)
	return WithCandidateCode(err, code)
}

// Wrap wraps an error and adds a pg error code. Only the code is added
// if the message is empty.
func Wrap(err error, code pgcode.Code, msg string) error {
	if msg == "" {
		return WithCandidateCode(err, code)
	}
	return WrapWithDepthf(1, err, code, "%s", msg)
}

// WithCandidateCode decorates the error with a candidate postgres
// error code. The code is used by GetPGCode if the underlying error
// does not carry a candidate code of its own already.
func WithCandidateCode(err error, code pgcode.Code) error {
	if err == nil {
		return nil
	}
	return &withCandidateCode{cause: err, code: code}
}

// HasCandidateCode returns true iff the error or one of its causes has
// a candidate pg error code.
func HasCandidateCode(err error) bool {
	return errors.HasType(err, (*withCandidateCode)(nil))
}

// GetPGCode retrieves the candidate code for the error, or
// pgcode.Uncategorized if none was set. The innermost candidate code
// wins: wrapping an error that already carries a code does not
// override it.
func GetPGCode(err error) pgcode.Code {
	code := pgcode.Uncategorized
	for e := err; e != nil; e = errors.UnwrapOnce(e) {
		if w, ok := e.(*withCandidateCode); ok {
			code = w.code
		}
	}
	return code
}

type withCandidateCode struct {
	cause error
	code  pgcode.Code
}

var _ error = (*withCandidateCode)(nil)
var _ fmt.Formatter = (*withCandidateCode)(nil)

func (w *withCandidateCode) Error() string { return w.cause.Error() }
func (w *withCandidateCode) Cause() error  { return w.cause }
func (w *withCandidateCode) Unwrap() error { return w.cause }

func (w *withCandidateCode) Format(s fmt.State, verb rune) { errors.FormatError(w, s, verb) }

func (w *withCandidateCode) FormatError(p errors.Printer) (next error) {
	if p.Detail() {
		p.Printf("candidate pg code: %s", w.code)
	}
	return w.cause
}
