// Copyright 2025 The Postgres Authors.
//
// Use of this software is governed by the PostgreSQL License
// included in the /LICENSE file.

package compiler

import (
	"context"
	"fmt"

	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgcode"
	"github.com/Florents-Tselai/postgres/pkg/sql/pgwire/pgerror"
	"github.com/Florents-Tselai/postgres/pkg/sql/plpgsql/scope"
	"github.com/Florents-Tselai/postgres/pkg/sql/sem/plpgsqltree"
	"github.com/cockroachdb/errors"
	"github.com/lib/pq/oid"
)

// TriggerKind tells what kind of trigger, if any, a routine is compiled
// as.
type TriggerKind int

const (
	NotTrigger TriggerKind = iota
	DMLTrigger
	EventTrigger
)

// Function is the immutable compiled form of one routine. Once
// assembled it is shared read-only across all invocations; any
// per-invocation mutable copies of the copiable datums are the
// execution engine's responsibility.
type Function struct {
	Name           string
	Oid            oid.Oid
	InputCollation oid.Oid
	TriggerKind    TriggerKind
	ProcKind       ProcKind

	RetType     oid.Oid
	RetSet      bool
	RetIsTuple  bool
	RetIsDomain bool
	RetByVal    bool
	RetTypLen   int16

	ReadOnly      bool
	ResolveOption ResolveOption

	// NArgs and ArgVarNos map input parameters, call-position order, to
	// their datum indices.
	NArgs     int
	ArgVarNos []int
	// OutParamVarNo is the datum returned when control falls off the
	// end: a single OUT parameter, or the synthesized row over all of
	// them. -1 when the function has no OUT parameters.
	OutParamVarNo int
	FoundVarNo    int
	// NewVarNo and OldVarNo are set for DML triggers only.
	NewVarNo int
	OldVarNo int

	Action      *plpgsqltree.Block
	NStatements uint

	// Datums is the frozen datum array, indexed by dno.
	Datums []Datum
	// CopiableSize is a byte-size hint for the per-invocation copy of
	// the copiable datum kinds.
	CopiableSize uintptr
}

// CompileOptions carries per-compilation configuration.
type CompileOptions struct {
	// ForValidator is set when compiling only to validate the routine
	// definition; polymorphic types are then replaced with fixed
	// stand-ins rather than resolved from a call site.
	ForValidator bool
	TriggerKind  TriggerKind
	// InputCollation is the collation derived from the call's input
	// arguments.
	InputCollation oid.Oid
	// CallArgTypes and CallReturnType carry the concrete types derived
	// from the call-site expression, used to resolve polymorphic
	// parameter and return types when not validating. Zero entries mean
	// "unknown".
	CallArgTypes   []oid.Oid
	CallReturnType oid.Oid
	ResolveOption  ResolveOption
}

// Compile makes an execution tree for one routine from its catalog
// metadata and source. It is not reentrant: nothing it calls may
// trigger another compilation.
func Compile(
	ctx context.Context,
	cat Catalog,
	parser Parser,
	proc *ProcedureDescriptor,
	opts CompileOptions,
) (*Function, error) {
	fn, err := compile(ctx, cat, parser, proc, opts)
	if err != nil {
		// No partially-built state survives: the session and everything
		// it allocated are abandoned along with this error.
		return nil, errors.Wrapf(err, "compilation of PL/pgSQL function %q", proc.Name)
	}
	return fn, nil
}

func compile(
	ctx context.Context,
	cat Catalog,
	parser Parser,
	proc *ProcedureDescriptor,
	opts CompileOptions,
) (*Function, error) {
	s := NewSession(cat)
	s.checkSyntax = opts.ForValidator
	s.errFuncName = proc.Name
	s.resolveOption = opts.ResolveOption

	fn := &Function{
		Name:           proc.Name,
		Oid:            proc.ID,
		InputCollation: opts.InputCollation,
		TriggerKind:    opts.TriggerKind,
		ProcKind:       proc.Kind,
		ReadOnly:       proc.ReadOnly,
		ResolveOption:  opts.ResolveOption,
		OutParamVarNo:  -1,
		FoundVarNo:     -1,
		NewVarNo:       -1,
		OldVarNo:       -1,
	}

	// The outermost namespace contains the parameters and other special
	// variables, and is named after the routine itself.
	s.ns.Push(proc.Name, scope.BlockLabel)

	var numOutArgs int
	var inArgVarNos []int
	switch opts.TriggerKind {
	case NotTrigger:
		n, err := s.buildParameters(ctx, fn, proc, opts)
		if err != nil {
			return nil, err
		}
		numOutArgs = n.numOut
		inArgVarNos = n.inVarNos

	case DMLTrigger:
		if err := s.buildDMLTriggerContext(ctx, fn, proc); err != nil {
			return nil, err
		}

	case EventTrigger:
		if err := s.buildEventTriggerContext(ctx, fn, proc); err != nil {
			return nil, err
		}

	default:
		return nil, errors.AssertionFailedf("unrecognized trigger kind: %d", opts.TriggerKind)
	}

	// Create the magic FOUND variable.
	boolType, err := s.BuildDatatype(ctx, oid.T_bool, -1, 0, nil)
	if err != nil {
		return nil, err
	}
	found, err := s.BuildVariable("found", 0, boolType, true)
	if err != nil {
		return nil, err
	}
	fn.FoundVarNo = found.Dno()

	action, err := parser.Parse(ctx, s, proc.Source)
	if err != nil {
		return nil, err
	}
	fn.Action = action

	// If the routine has OUT parameters, returns VOID or returns a set,
	// control may fall off the end of the body without an explicit
	// RETURN; append one.
	if numOutArgs > 0 || fn.RetType == oid.T_void || fn.RetSet {
		s.addDummyReturn(fn)
	}

	fn.NArgs = len(inArgVarNos)
	fn.ArgVarNos = inArgVarNos
	fn.NStatements = s.nstatements

	s.finishDatums(fn)
	// The namespace stack dies with the session here; only datum
	// indices survive into the compiled function.
	return fn, nil
}

// CompileInline makes an execution tree for an anonymous code block,
// set up as a one-shot routine returning VOID.
func CompileInline(
	ctx context.Context, cat Catalog, parser Parser, source string,
) (*Function, error) {
	const funcName = "inline_code_block"

	fn, err := func() (*Function, error) {
		s := NewSession(cat)
		s.errFuncName = funcName

		fn := &Function{
			Name:          funcName,
			TriggerKind:   NotTrigger,
			ProcKind:      ProcKindFunction,
			RetType:       oid.T_void,
			RetByVal:      true,
			RetTypLen:     4,
			OutParamVarNo: -1,
			FoundVarNo:    -1,
			NewVarNo:      -1,
			OldVarNo:      -1,
		}

		s.ns.Push(funcName, scope.BlockLabel)

		boolType, err := s.BuildDatatype(ctx, oid.T_bool, -1, 0, nil)
		if err != nil {
			return nil, err
		}
		found, err := s.BuildVariable("found", 0, boolType, true)
		if err != nil {
			return nil, err
		}
		fn.FoundVarNo = found.Dno()

		action, err := parser.Parse(ctx, s, source)
		if err != nil {
			return nil, err
		}
		fn.Action = action

		// Returns VOID: allow control to fall off the end.
		s.addDummyReturn(fn)
		fn.NStatements = s.nstatements
		s.finishDatums(fn)
		return fn, nil
	}()
	if err != nil {
		return nil, errors.Wrapf(err, "compilation of PL/pgSQL function %q", funcName)
	}
	return fn, nil
}

type paramInfo struct {
	numOut   int
	inVarNos []int
}

// buildParameters creates the variables for an ordinary routine's
// parameters, registers their $n and declared-name aliases, determines
// the out-parameter return slot, and resolves the return type.
func (s *Session) buildParameters(
	ctx context.Context, fn *Function, proc *ProcedureDescriptor, opts CompileOptions,
) (paramInfo, error) {
	var info paramInfo

	argTypes, err := resolvePolymorphicArgTypes(proc, opts)
	if err != nil {
		return info, err
	}

	var outArgVariables []Variable
	for i, argTypeID := range argTypes {
		mode := ArgModeIn
		if proc.ArgModes != nil {
			mode = proc.ArgModes[i]
		}
		argName := ""
		if proc.ArgNames != nil {
			argName = proc.ArgNames[i]
		}
		posName := fmt.Sprintf("$%d", i+1)

		argType, err := s.BuildDatatype(ctx, argTypeID, -1, opts.InputCollation, nil)
		if err != nil {
			return info, err
		}
		// Disallow pseudo-type arguments (polymorphic ones were already
		// replaced). BuildVariable would reject this too, but with a
		// message about variables rather than the routine signature.
		if argType.Category == TypeCategoryPseudo {
			return info, pgerror.Newf(pgcode.FeatureNotSupported,
				"PL/pgSQL functions cannot accept type %s", argType.Name)
		}

		// Build the variable; if the argument has a name, use it as the
		// reference name, else the $n name.
		refName := posName
		if argName != "" {
			refName = argName
		}
		argVar, err := s.BuildVariable(refName, 0, argType, false)
		if err != nil {
			return info, err
		}

		var itemKind scope.ItemKind
		switch argVar.DatumKind() {
		case DatumVar:
			itemKind = scope.Variable
		case DatumRec:
			itemKind = scope.Record
		default:
			return info, errors.AssertionFailedf("unexpected parameter datum kind: %d", argVar.DatumKind())
		}

		if mode == ArgModeIn || mode == ArgModeInOut || mode == ArgModeVariadic {
			info.inVarNos = append(info.inVarNos, argVar.Dno())
		}
		if mode == ArgModeOut || mode == ArgModeInOut || mode == ArgModeTable {
			outArgVariables = append(outArgVariables, argVar)
			info.numOut++
		}

		// Add to the namespace under the $n name, and under the declared
		// name when there is one.
		if err := s.addParameterName(itemKind, argVar.Dno(), posName); err != nil {
			return info, err
		}
		if argName != "" {
			if err := s.addParameterName(itemKind, argVar.Dno(), argName); err != nil {
				return info, err
			}
		}
	}

	// If there is exactly one OUT parameter the return slot points
	// straight at it; more than one gets a row holding all of them.
	// Procedures return a row even for a single OUT parameter.
	if info.numOut > 1 || (info.numOut == 1 && proc.Kind == ProcKindProcedure) {
		row, err := s.buildRowFromVars(outArgVariables)
		if err != nil {
			return info, err
		}
		s.AddDatum(row)
		fn.OutParamVarNo = row.Dno()
	} else if info.numOut == 1 {
		fn.OutParamVarNo = outArgVariables[0].Dno()
	}

	// Resolve a polymorphic return type from the call-site expression
	// when we have one; in validation mode, arbitrarily assume integers.
	retTypeID := proc.RetType
	if isPolymorphicType(retTypeID) {
		if opts.ForValidator {
			retTypeID = validatorStandInType(retTypeID)
		} else if opts.CallReturnType != 0 {
			retTypeID = opts.CallReturnType
		} else {
			return info, pgerror.Newf(pgcode.FeatureNotSupported,
				"could not determine actual return type for polymorphic function %q",
				s.errFuncName)
		}
	}
	fn.RetType = retTypeID
	fn.RetSet = proc.ReturnsSet

	retEntry, err := s.cat.LookupType(ctx, retTypeID)
	if err != nil {
		return info, err
	}
	// Disallow pseudo-type results, except VOID and RECORD (polymorphic
	// ones were already replaced).
	if retEntry.Kind == TypeKindPseudo {
		switch retTypeID {
		case oid.T_void, oid.T_record:
			// Okay.
		case oid.T_trigger, oid.T_event_trigger:
			return info, pgerror.Newf(pgcode.FeatureNotSupported,
				"trigger functions can only be called as triggers")
		default:
			return info, pgerror.Newf(pgcode.FeatureNotSupported,
				"PL/pgSQL functions cannot return type %s", retEntry.Name)
		}
	}
	fn.RetIsTuple = typeIsRowType(retEntry)
	fn.RetIsDomain = retEntry.Kind == TypeKindDomain
	fn.RetByVal = retEntry.ByVal
	fn.RetTypLen = retEntry.Len

	// Install a $0 reference to the resolved return type, but only for
	// polymorphic returns not already routed through an OUT parameter.
	if isPolymorphicType(proc.RetType) && info.numOut == 0 {
		retType, err := s.buildDatatype(ctx, retEntry, -1, fn.InputCollation, nil)
		if err != nil {
			return info, err
		}
		if _, err := s.BuildVariable("$0", 0, retType, true); err != nil {
			return info, err
		}
	}

	return info, nil
}

// addParameterName registers a routine parameter in the outermost
// scope, rejecting duplicates. The check is needed even though CREATE
// FUNCTION has a similar one, because that one deliberately tolerates
// IN and OUT parameters sharing a name; in PL/pgSQL both live in the
// same namespace, so there would be no way to disambiguate.
func (s *Session) addParameterName(kind scope.ItemKind, dno int, name string) error {
	if item, _ := scope.Lookup(s.ns.Top(), true, name, "", ""); item != nil {
		return pgerror.Newf(pgcode.InvalidFunctionDefinition,
			"parameter name %q used more than once", name)
	}
	return s.ns.Add(kind, dno, name)
}

// addDummyReturn appends an implicit RETURN to the routine body so that
// control can legally fall off the end.
func (s *Session) addDummyReturn(fn *Function) {
	// If the outer block has an EXCEPTION clause the added RETURN must
	// not act like it is inside it; likewise a label would let EXIT
	// skip the RETURN. Wrap the body in a fresh outer block first in
	// either case.
	if len(fn.Action.Exceptions) > 0 || fn.Action.Label != "" {
		outer := &plpgsqltree.Block{
			Body: []plpgsqltree.Statement{fn.Action},
		}
		outer.StmtID = s.NextStmtID()
		fn.Action = outer
	}
	body := fn.Action.Body
	if len(body) == 0 || body[len(body)-1].PlpgSQLStatementTag() != "stmt_return" {
		ret := &plpgsqltree.Return{RetVarNo: fn.OutParamVarNo}
		ret.StmtID = s.NextStmtID()
		fn.Action.Body = append(fn.Action.Body, ret)
	}
}

// resolvePolymorphicArgTypes replaces polymorphic parameter types with
// concrete ones: from the call-site expression when compiling for real
// execution, or fixed stand-ins when only validating.
func resolvePolymorphicArgTypes(proc *ProcedureDescriptor, opts CompileOptions) ([]oid.Oid, error) {
	out := append([]oid.Oid(nil), proc.ArgTypes...)
	for i, id := range out {
		if !isPolymorphicType(id) {
			continue
		}
		if opts.ForValidator {
			out[i] = validatorStandInType(id)
			continue
		}
		if i < len(opts.CallArgTypes) && opts.CallArgTypes[i] != 0 {
			out[i] = opts.CallArgTypes[i]
			continue
		}
		return nil, pgerror.Newf(pgcode.FeatureNotSupported,
			"could not determine actual argument type for polymorphic function %q",
			proc.Name)
	}
	return out, nil
}

// validatorStandInType picks the fixed stand-in used for a polymorphic
// type when compiling for validation only.
func validatorStandInType(id oid.Oid) oid.Oid {
	switch id {
	case oid.T_anyarray, oidAnyCompatibleArray:
		return oid.T__int4
	case oid.T_anyrange, oidAnyCompatibleRange:
		return oid.T_int4range
	case oidAnyMultirange, oidAnyCompatibleMultirange:
		return oidInt4Multirange
	default:
		// ANYELEMENT, ANYNONARRAY, ANYCOMPATIBLE; nothing better exists
		// for ANYENUM.
		return oid.T_int4
	}
}

// buildDMLTriggerContext seeds the pre-bound trigger context variables
// in place of ordinary parameters.
func (s *Session) buildDMLTriggerContext(
	ctx context.Context, fn *Function, proc *ProcedureDescriptor,
) error {
	// The return type of a DML trigger is not known until it runs.
	fn.RetType = 0
	fn.RetIsTuple = true

	if len(proc.ArgTypes) != 0 {
		err := pgerror.Newf(pgcode.InvalidFunctionDefinition,
			"trigger functions cannot have declared arguments")
		return errors.WithHint(err,
			"The arguments of the trigger can be accessed through TG_NARGS and TG_ARGV instead.")
	}

	// Records for referencing the NEW and OLD rows.
	newRec, err := s.BuildRecord("new", 0, nil, oid.T_record, true)
	if err != nil {
		return err
	}
	fn.NewVarNo = newRec.Dno()
	oldRec, err := s.BuildRecord("old", 0, nil, oid.T_record, true)
	if err != nil {
		return err
	}
	fn.OldVarNo = oldRec.Dno()

	for _, tv := range []struct {
		name    string
		typeID  oid.Oid
		collate bool
		promise Promise
	}{
		{"tg_name", oid.T_name, true, PromiseTgName},
		{"tg_when", oid.T_text, true, PromiseTgWhen},
		{"tg_level", oid.T_text, true, PromiseTgLevel},
		{"tg_op", oid.T_text, true, PromiseTgOp},
		{"tg_relid", oid.T_oid, false, PromiseTgRelid},
		// tg_relname is a deprecated alias for tg_table_name.
		{"tg_relname", oid.T_name, true, PromiseTgTableName},
		{"tg_table_name", oid.T_name, true, PromiseTgTableName},
		{"tg_table_schema", oid.T_name, true, PromiseTgTableSchema},
		{"tg_nargs", oid.T_int4, false, PromiseTgNargs},
		{"tg_argv", oid.T__text, true, PromiseTgArgv},
	} {
		if err := s.buildPromiseVariable(ctx, fn, tv.name, tv.typeID, tv.collate, tv.promise); err != nil {
			return err
		}
	}
	return nil
}

// buildEventTriggerContext seeds the event trigger context variables.
func (s *Session) buildEventTriggerContext(
	ctx context.Context, fn *Function, proc *ProcedureDescriptor,
) error {
	fn.RetType = oid.T_void
	fn.RetIsTuple = true

	if len(proc.ArgTypes) != 0 {
		return pgerror.Newf(pgcode.InvalidFunctionDefinition,
			"event trigger functions cannot have declared arguments")
	}

	for _, tv := range []struct {
		name    string
		promise Promise
	}{
		{"tg_event", PromiseTgEvent},
		{"tg_tag", PromiseTgTag},
	} {
		if err := s.buildPromiseVariable(ctx, fn, tv.name, oid.T_text, true, tv.promise); err != nil {
			return err
		}
	}
	return nil
}

// buildPromiseVariable builds one read-only trigger context variable
// whose value the execution engine supplies on first read.
func (s *Session) buildPromiseVariable(
	ctx context.Context, fn *Function, name string, typeID oid.Oid, collate bool, promise Promise,
) error {
	collation := oid.Oid(0)
	if collate {
		collation = fn.InputCollation
	}
	typ, err := s.BuildDatatype(ctx, typeID, -1, collation, nil)
	if err != nil {
		return err
	}
	v, err := s.BuildVariable(name, 0, typ, true)
	if err != nil {
		return err
	}
	v.(*Var).Promise = promise
	return nil
}
