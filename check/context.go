// Package check is the Expression Analyzer and Initializer Analyzer --
// the core this repository exists to implement: one small function per
// node kind, dispatched from a single entry point, each visiting its
// children before typing itself. Two notable design choices:
//
//   - Invalid is a real bottom Type variant, not a nil the caller must
//     guard against at every step. Every classification predicate in
//     package typesys already answers true for Invalid, so a checkX
//     function here never needs its own nil/Invalid special case before
//     calling one -- it only special-cases Invalid where a particular
//     operator's rule says so explicitly (e.g. Deref, Index).
//   - Type and value category are computed together, in one Result, per
//     node, instead of through a side table keyed by node identity.
package check

import (
	"github.com/susji/minic/ast"
	"github.com/susji/minic/diag"
	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typeexpr"
	"github.com/susji/minic/typesys"
)

// Result is what every expression visit returns: a borrowed view of the
// node's own derived type (also stored on the node itself) plus its value
// category.
type Result struct {
	Type   *typesys.Type
	LValue bool
}

// Context holds everything the Expression/Initializer Analyzer needs that
// is not itself an AST node: where to report diagnostics, how to resolve a
// type-expression child, and the builtin scalar types for literals. It has
// no bookkeeping map keyed by node identity -- there is no scope to
// maintain (symbol resolution already happened upstream) and no
// "assignable" side-table, since that category lives directly in
// Result.LValue.
type Context struct {
	Sink     *diag.Sink
	Types    typeexpr.Analyzer
	Builtins *symbol.Builtins
}

func NewContext(sink *diag.Sink, types typeexpr.Analyzer, builtins *symbol.Builtins) *Context {
	return &Context{Sink: sink, Types: types, Builtins: builtins}
}

func (c *Context) intType() *typesys.Type  { return typesys.DeepDuplicate(c.Builtins.Int()) }
func (c *Context) charType() *typesys.Type { return typesys.DeepDuplicate(c.Builtins.Char()) }
func (c *Context) boolType() *typesys.Type { return typesys.DeepDuplicate(c.Builtins.Bool()) }

func setDT(n ast.Node, t *typesys.Type) { n.SetType(t) }

func asStruct(t *typesys.Type) (symbol.Symbol, bool) {
	if !t.IsBasic() {
		return nil, false
	}
	s, ok := t.BasicSymbol().(symbol.Symbol)
	if !ok || s.Kind() != symbol.KindStruct {
		return nil, false
	}
	return s, true
}

func calleeSymbolOf(n ast.Node) symbol.Symbol {
	if id, ok := n.(*ast.Ident); ok {
		return id.Sym
	}
	return nil
}
