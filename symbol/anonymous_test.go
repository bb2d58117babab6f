package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typesys"
)

func TestAnonymousStartsInvalid(t *testing.T) {
	a := symbol.NewAnonymous()
	assert.True(t, a.DeclaredType().IsInvalid())
	assert.Equal(t, symbol.KindVariable, a.Kind())
	assert.Empty(t, a.Children())
}

func TestAnonymousSetDeclaredType(t *testing.T) {
	a := symbol.NewAnonymous()
	intType := symbol.NewBuiltin("int", 4, typesys.MaskNumeric).DeclaredType()
	a.SetDeclaredType(intType)
	assert.True(t, a.DeclaredType().IsBasic())
}
