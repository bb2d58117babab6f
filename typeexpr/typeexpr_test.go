package typeexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susji/minic/ast"
	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typeexpr"
)

func TestAnalyzeTypeBuiltin(t *testing.T) {
	r := typeexpr.NewRegistry(symbol.NewBuiltins())
	te := ast.NewTypeExpr(ast.Position{}, "int", 0, nil)

	got := r.AnalyzeType(te)
	require.True(t, got.IsBasic())
	assert.Equal(t, "int", got.BasicSymbol().Ident())
}

func TestAnalyzeTypeUnknownNameIsInvalid(t *testing.T) {
	r := typeexpr.NewRegistry(symbol.NewBuiltins())
	te := ast.NewTypeExpr(ast.Position{}, "nosuchtype", 0, nil)
	assert.True(t, r.AnalyzeType(te).IsInvalid())
}

func TestAnalyzeTypePointerLevels(t *testing.T) {
	r := typeexpr.NewRegistry(symbol.NewBuiltins())
	te := ast.NewTypeExpr(ast.Position{}, "int", 2, nil)

	got := r.AnalyzeType(te)
	require.True(t, got.IsPointer())
	require.True(t, got.Pointee().IsPointer())
	assert.True(t, got.Pointee().Pointee().IsBasic())
}

func TestAnalyzeTypeArrayDimensionsWrapInnermostFirst(t *testing.T) {
	r := typeexpr.NewRegistry(symbol.NewBuiltins())
	// int a[3][4]: an array of 3 arrays of 4 ints.
	te := ast.NewTypeExpr(ast.Position{}, "int", 0, []int{3, 4})

	got := r.AnalyzeType(te)
	require.True(t, got.IsArray())
	assert.Equal(t, 3, got.ArraySize())
	require.True(t, got.Elem().IsArray())
	assert.Equal(t, 4, got.Elem().ArraySize())
}

func TestAnalyzeTypeNamedStruct(t *testing.T) {
	builtins := symbol.NewBuiltins()
	r := typeexpr.NewRegistry(builtins)
	rec := symbol.NewStruct("point", nil)
	r.Define(rec)

	te := ast.NewTypeExpr(ast.Position{}, "point", 1, nil)
	got := r.AnalyzeType(te)
	require.True(t, got.IsPointer())
	assert.True(t, got.Pointee().IsBasic())
}

func TestAnalyzeTypeNilExpr(t *testing.T) {
	r := typeexpr.NewRegistry(symbol.NewBuiltins())
	assert.True(t, r.AnalyzeType(nil).IsInvalid())
}
