// Package diag is the Diagnostics Sink: a handful of typed reporting
// primitives, an error/warning counter, and a renderer that turns each
// diagnostic (types rendered via typesys) into a
// "file:line:col: severity: message" string, with a dedicated
// method per diagnostic shape instead of one catch-all errorf.
package diag

import (
	"errors"
	"fmt"

	"github.com/susji/minic/ast"
	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typesys"
)

// The sentinel errors below are what a caller matches against with
// errors.Is. Each diagnostic's rendered message wraps one of these.
var (
	ErrTypeExpected         = errors.New("type expected")
	ErrTypeExpectedSpecific = errors.New("specific type expected")
	ErrOperatorType         = errors.New("operator not valid for operand type")
	ErrLValueRequired       = errors.New("l-value required")
	ErrMismatch             = errors.New("type mismatch")
	ErrDegree               = errors.New("wrong number of elements")
	ErrParameterMismatch    = errors.New("parameter type mismatch")
	ErrUnknownMember        = errors.New("unknown member")
	ErrConflictingDecl      = errors.New("conflicting declaration")
	ErrRedeclaration        = errors.New("redeclaration")
	ErrIllegalSymbolAsValue = errors.New("illegal use of symbol as value")
)

// Severity distinguishes errors (which should stop downstream phases) from
// warnings (which should not).
type Severity int

const (
	SevError Severity = iota
	SevWarning
)

func (s Severity) String() string {
	if s == SevWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one rendered message.
type Diagnostic struct {
	Pos      ast.Position
	Severity Severity
	Wrapped  error
}

func (d *Diagnostic) Error() string { return d.Wrapped.Error() }
func (d *Diagnostic) Unwrap() error { return d.Wrapped }

// Located renders "file:line:col: severity: message".
func (d *Diagnostic) Located(filename string) string {
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		filename, d.Pos.Line, d.Pos.Col, d.Severity, d.Wrapped)
}

// Sink accumulates diagnostics for one translation unit. Every primitive
// method increments Errors; there is no warning-producing primitive in the
// contract this core exposes today, but Warnings/Warnf exist for a future
// collaborator that needs one without changing the error-counting
// contract.
type Sink struct {
	Filename string

	diags    []*Diagnostic
	errCount int
	warnCount int
}

func New(filename string) *Sink {
	return &Sink{Filename: filename}
}

func (s *Sink) Errors() int        { return s.errCount }
func (s *Sink) Warnings() int      { return s.warnCount }
func (s *Sink) Diagnostics() []*Diagnostic { return s.diags }

func (s *Sink) report(n ast.Node, sev Severity, wrapped error) {
	d := &Diagnostic{Pos: n.Pos(), Severity: sev, Wrapped: wrapped}
	s.diags = append(s.diags, d)
	if sev == SevWarning {
		s.warnCount++
	} else {
		s.errCount++
	}
}

func (s *Sink) Warnf(n ast.Node, format string, args ...interface{}) {
	s.report(n, SevWarning, fmt.Errorf(format, args...))
}

// ErrInternal backs Sink.Internal: the "unhandled / internal" taxonomy
// entry for a node shape the analyzer cannot dispatch, which indicates a
// bug in a collaborator (parser or symbol-table builder), not in the
// program being analyzed.
var ErrInternal = errors.New("internal: unhandled node")

// Internal reports that the analyzer could not dispatch n at all.
func (s *Sink) Internal(n ast.Node, format string, args ...interface{}) {
	s.report(n, SevError, fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...)))
}

// TypeExpected reports that ctx requires a class of type (numeric, pointer,
// condition, callable, ...) that got did not satisfy.
func (s *Sink) TypeExpected(n ast.Node, ctx string, got *typesys.Type) {
	s.report(n, SevError, fmt.Errorf("%w: %s requires a %s operand, got %s",
		ErrTypeExpected, ctx, ctx, typesys.StringEmbedded(got, "")))
}

// TypeExpectedSpecific reports that ctx requires exactly want, not got
// (return type, initializer target, argument type).
func (s *Sink) TypeExpectedSpecific(n ast.Node, ctx string, want, got *typesys.Type) {
	s.report(n, SevError, fmt.Errorf("%w: %s wants %s, got %s",
		ErrTypeExpectedSpecific, ctx, typesys.StringEmbedded(want, ""), typesys.StringEmbedded(got, "")))
}

// OperatorType reports that op cannot be applied to operands of type t.
func (s *Sink) OperatorType(n ast.Node, op string, t *typesys.Type) {
	s.report(n, SevError, fmt.Errorf("%w: %q on %s",
		ErrOperatorType, op, typesys.StringEmbedded(t, "")))
}

// LValueRequired reports that n's context (assignment target, ++/--
// operand, &-operand) requires an l-value.
func (s *Sink) LValueRequired(n ast.Node) {
	s.report(n, SevError, fmt.Errorf("%w", ErrLValueRequired))
}

// Mismatch reports that l and r must be compatible and are not.
func (s *Sink) Mismatch(n ast.Node, l, r *typesys.Type) {
	s.report(n, SevError, fmt.Errorf("%w: %s vs %s",
		ErrMismatch, typesys.StringEmbedded(l, ""), typesys.StringEmbedded(r, "")))
}

// Degree reports an arity mismatch: ctx names what was being counted
// (arguments, fields, elements).
func (s *Sink) Degree(n ast.Node, ctx string, want, got int) {
	s.report(n, SevError, fmt.Errorf("%w: %s wanted %d, got %d",
		ErrDegree, ctx, want, got))
}

// ParameterMismatch reports an incompatible argument at a 1-based parameter
// index, for a call through an arbitrary function-pointer-valued
// expression (no callee identifier available).
func (s *Sink) ParameterMismatch(n ast.Node, index int, want, got *typesys.Type) {
	s.report(n, SevError, fmt.Errorf("%w: argument %d wants %s, got %s",
		ErrParameterMismatch, index, typesys.StringEmbedded(want, ""), typesys.StringEmbedded(got, "")))
}

// NamedParameterMismatch is ParameterMismatch with the callee's identifier,
// for a direct call through a resolved function symbol.
func (s *Sink) NamedParameterMismatch(n ast.Node, callee symbol.Symbol, index int, want, got *typesys.Type) {
	s.report(n, SevError, fmt.Errorf("%w: %s argument %d wants %s, got %s",
		ErrParameterMismatch, callee.Ident(), index, typesys.StringEmbedded(want, ""), typesys.StringEmbedded(got, "")))
}

// UnknownMember reports that name is not a field of record.
func (s *Sink) UnknownMember(n ast.Node, record *typesys.Type, name string) {
	s.report(n, SevError, fmt.Errorf("%w: %s has no member %q",
		ErrUnknownMember, typesys.StringEmbedded(record, ""), name))
}

// ConflictingDeclaration reports that name was already declared with a
// different type.
func (s *Sink) ConflictingDeclaration(n ast.Node, name string) {
	s.report(n, SevError, fmt.Errorf("%w: %q", ErrConflictingDecl, name))
}

// Redeclaration reports a plain duplicate declaration of name.
func (s *Sink) Redeclaration(n ast.Node, name string) {
	s.report(n, SevError, fmt.Errorf("%w: %q", ErrRedeclaration, name))
}

// IllegalSymbolAsValue reports that a symbol of the given kind (e.g. a
// struct tag or a type name) was used where a value was required.
func (s *Sink) IllegalSymbolAsValue(n ast.Node, kind fmt.Stringer, name string) {
	s.report(n, SevError, fmt.Errorf("%w: cannot use %s %q as a value",
		ErrIllegalSymbolAsValue, kind, name))
}
