package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typesys"
)

func TestNewBuiltinSelfReferential(t *testing.T) {
	s := symbol.NewBuiltin("int", 4, typesys.MaskNumeric)
	require.True(t, s.DeclaredType().IsBasic())
	assert.Equal(t, s, s.DeclaredType().BasicSymbol())
}

func TestNewStructChildren(t *testing.T) {
	fieldA := symbol.NewField("a", symbol.NewBuiltin("int", 4, typesys.MaskNumeric).DeclaredType())
	fieldB := symbol.NewField("b", symbol.NewBuiltin("bool", 1, 0).DeclaredType())
	rec := symbol.NewStruct("point", []symbol.Symbol{fieldA, fieldB})

	assert.Equal(t, symbol.KindStruct, rec.Kind())
	require.Len(t, rec.Children(), 2)
	assert.Equal(t, "a", rec.Children()[0].Ident())
	assert.Equal(t, "b", rec.Children()[1].Ident())
}

func TestChildLookup(t *testing.T) {
	fieldA := symbol.NewField("a", nil)
	fieldB := symbol.NewField("b", nil)
	rec := symbol.NewStruct("pair", []symbol.Symbol{fieldA, fieldB})

	assert.Equal(t, fieldB, symbol.Child(rec, "b"))
	assert.Nil(t, symbol.Child(rec, "nope"))
	assert.Nil(t, symbol.Child(nil, "b"))
}

func TestEveryConstructorAssignsDistinctID(t *testing.T) {
	a := symbol.NewVariable("x", nil)
	b := symbol.NewVariable("x", nil)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestKindStringer(t *testing.T) {
	table := []struct {
		k    symbol.Kind
		want string
	}{
		{symbol.KindType, "type"},
		{symbol.KindStruct, "struct"},
		{symbol.KindVariable, "variable"},
		{symbol.KindParam, "parameter"},
		{symbol.KindEnumConstant, "enum constant"},
		{symbol.KindFunction, "function"},
	}
	for _, cur := range table {
		t.Run(cur.want, func(t *testing.T) {
			assert.Equal(t, cur.want, cur.k.String())
		})
	}
}
