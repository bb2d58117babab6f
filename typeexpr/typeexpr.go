// Package typeexpr is the external Type Analyzer collaborator: something
// that, given a type-expression AST, returns a *typesys.Type. It is
// invoked from Cast, Sizeof, and Compound-literal (package check) and,
// outside this core's scope, by declaration analysis.
//
// This package provides the contract (Analyzer) and one concrete
// implementation (Registry): map a builtin name through the symbol
// builtins table, or a struct/typedef name through a small name registry,
// then thread pointer/array levels through
// typesys.NewPointer/typesys.NewArray.
package typeexpr

import (
	"github.com/susji/minic/ast"
	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typesys"
)

// Analyzer resolves a type-expression node to a Type. Implementations never
// emit diagnostics of their own onto package diag's Sink in this core --
// that belongs to the (external) declaration analyzer -- so an
// unresolvable name yields typesys.NewInvalid() here, and the caller in
// package check is responsible for noticing and reporting it if its own
// contract requires that.
type Analyzer interface {
	AnalyzeType(te *ast.TypeExpr) *typesys.Type
}

// Registry is a minimal Analyzer: a builtins table plus a flat map of
// user-defined type names (struct tags, typedefs) to their symbols.
type Registry struct {
	Builtins *symbol.Builtins
	Named    map[string]symbol.Symbol
}

func NewRegistry(builtins *symbol.Builtins) *Registry {
	return &Registry{Builtins: builtins, Named: map[string]symbol.Symbol{}}
}

// Define registers a struct or typedef name so later type expressions can
// reference it.
func (r *Registry) Define(sym symbol.Symbol) {
	r.Named[sym.Ident()] = sym
}

func (r *Registry) AnalyzeType(te *ast.TypeExpr) *typesys.Type {
	if te == nil {
		return typesys.NewInvalid()
	}
	var base *typesys.Type
	if sym := r.Builtins.Lookup(te.BaseName); sym != nil {
		base = sym.DeclaredType()
	} else if sym, ok := r.Named[te.BaseName]; ok {
		base = sym.DeclaredType()
	} else {
		return typesys.NewInvalid()
	}

	t := typesys.DeepDuplicate(base)
	for i := 0; i < te.PointerLevel; i++ {
		t = typesys.NewPointer(t)
	}
	// Array dimensions apply innermost-first, matching a C declarator
	// read outside-in: `int a[3][4]` is an array of 3 arrays of 4 ints,
	// so the last-declared dimension wraps tightest around the base.
	for i := len(te.ArrayLevels) - 1; i >= 0; i-- {
		t = typesys.NewArray(t, te.ArrayLevels[i])
	}
	return t
}
