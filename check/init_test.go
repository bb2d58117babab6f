package check_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susji/minic/ast"
	"github.com/susji/minic/diag"
	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typesys"
)

func TestInitScalarFromBareValue(t *testing.T) {
	c, sink, builtins, _ := newTestContext()
	r := c.Init(ast.NewIntLit(ast.Position{}, 5), builtins.Int())

	assert.Equal(t, 0, sink.Errors())
	assert.True(t, r.Type.IsBasic())
}

func TestInitScalarFromSingleBraceElement(t *testing.T) {
	c, sink, builtins, _ := newTestContext()
	list := ast.NewInitList(ast.Position{}, []ast.Node{ast.NewIntLit(ast.Position{}, 5)})
	c.Init(list, builtins.Int())
	assert.Equal(t, 0, sink.Errors())
}

func TestInitScalarWithWrongElementCount(t *testing.T) {
	c, sink, builtins, _ := newTestContext()
	list := ast.NewInitList(ast.Position{}, []ast.Node{
		ast.NewIntLit(ast.Position{}, 1),
		ast.NewIntLit(ast.Position{}, 2),
	})
	c.Init(list, builtins.Int())

	require.Len(t, sink.Diagnostics(), 1)
	assert.True(t, errors.Is(sink.Diagnostics()[0], diag.ErrDegree))
}

func TestInitArrayElementTypeMismatchPerElement(t *testing.T) {
	c, sink, builtins, _ := newTestContext()
	arrT := typesys.NewArray(builtins.Int(), 3)
	list := ast.NewInitList(ast.Position{}, []ast.Node{
		ast.NewIntLit(ast.Position{}, 1),
		ast.NewBoolLit(ast.Position{}, true),
		ast.NewBoolLit(ast.Position{}, false),
	})
	c.Init(list, arrT)

	// Every bad element reports, uncapped -- two bool elements against an
	// int array each produce their own diagnostic.
	require.Len(t, sink.Diagnostics(), 2)
	for _, d := range sink.Diagnostics() {
		assert.True(t, errors.Is(d, diag.ErrTypeExpectedSpecific))
	}
}

func TestInitArrayTooManyElements(t *testing.T) {
	c, sink, builtins, _ := newTestContext()
	arrT := typesys.NewArray(builtins.Int(), 2)
	list := ast.NewInitList(ast.Position{}, []ast.Node{
		ast.NewIntLit(ast.Position{}, 1),
		ast.NewIntLit(ast.Position{}, 2),
		ast.NewIntLit(ast.Position{}, 3),
	})
	c.Init(list, arrT)

	require.Len(t, sink.Diagnostics(), 1)
	assert.True(t, errors.Is(sink.Diagnostics()[0], diag.ErrDegree))
}

func TestInitArrayUnknownSizeAcceptsAnyCount(t *testing.T) {
	c, sink, builtins, _ := newTestContext()
	arrT := typesys.NewArray(builtins.Int(), typesys.ArrayUnknown)
	list := ast.NewInitList(ast.Position{}, []ast.Node{
		ast.NewIntLit(ast.Position{}, 1),
		ast.NewIntLit(ast.Position{}, 2),
		ast.NewIntLit(ast.Position{}, 3),
	})
	c.Init(list, arrT)
	assert.Equal(t, 0, sink.Errors())
}

func TestInitStructFieldByFieldDegreeMismatch(t *testing.T) {
	c, sink, builtins, _ := newTestContext()
	fieldX := symbol.NewField("x", builtins.Int())
	fieldY := symbol.NewField("y", builtins.Int())
	rec := symbol.NewStruct("point", []symbol.Symbol{fieldX, fieldY})

	list := ast.NewInitList(ast.Position{}, []ast.Node{ast.NewIntLit(ast.Position{}, 1)})
	r := c.Init(list, rec.DeclaredType())

	require.Len(t, sink.Diagnostics(), 1)
	assert.True(t, errors.Is(sink.Diagnostics()[0], diag.ErrDegree))
	assert.True(t, r.Type.IsBasic())
}

func TestInitStructNestedAggregate(t *testing.T) {
	c, sink, builtins, _ := newTestContext()
	innerFieldA := symbol.NewField("a", builtins.Int())
	inner := symbol.NewStruct("inner", []symbol.Symbol{innerFieldA})
	outerFieldI := symbol.NewField("i", inner.DeclaredType())
	outer := symbol.NewStruct("outer", []symbol.Symbol{outerFieldI})

	nestedList := ast.NewInitList(ast.Position{}, []ast.Node{ast.NewIntLit(ast.Position{}, 7)})
	list := ast.NewInitList(ast.Position{}, []ast.Node{nestedList})

	c.Init(list, outer.DeclaredType())
	assert.Equal(t, 0, sink.Errors())
}

func TestInitEveryTouchedNodeGetsADerivedType(t *testing.T) {
	c, _, builtins, _ := newTestContext()
	lit := ast.NewIntLit(ast.Position{}, 1)
	c.Init(lit, builtins.Int())
	assert.False(t, lit.Type() == nil)
	assert.True(t, lit.Type().IsBasic())
}
