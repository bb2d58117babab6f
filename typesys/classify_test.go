package typesys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/susji/minic/typesys"
)

func TestClassifyInvalidAbsorbsEverything(t *testing.T) {
	inv := typesys.NewInvalid()
	assert.True(t, typesys.IsNumeric(inv))
	assert.True(t, typesys.IsOrdinal(inv))
	assert.True(t, typesys.IsEquality(inv))
	assert.True(t, typesys.IsAssignable(inv))
	assert.True(t, typesys.IsCondition(inv))
}

func TestClassifyPointerExcludesNumericOnly(t *testing.T) {
	ptr := typesys.NewPointer(typesys.NewBasic(intSym()))
	assert.False(t, typesys.IsNumeric(ptr))
	assert.True(t, typesys.IsOrdinal(ptr))
	assert.True(t, typesys.IsEquality(ptr))
	assert.True(t, typesys.IsAssignable(ptr))
	assert.True(t, typesys.IsCondition(ptr))
}

func TestClassifyArraySatisfiesNone(t *testing.T) {
	arr := typesys.NewArray(typesys.NewBasic(intSym()), 4)
	assert.False(t, typesys.IsNumeric(arr))
	assert.False(t, typesys.IsOrdinal(arr))
	assert.False(t, typesys.IsEquality(arr))
	assert.False(t, typesys.IsAssignable(arr))
	assert.False(t, typesys.IsCondition(arr))
}

func TestClassifyByMask(t *testing.T) {
	boolT := typesys.NewBasic(boolSym())
	assert.False(t, typesys.IsNumeric(boolT))
	assert.False(t, typesys.IsOrdinal(boolT))
	assert.True(t, typesys.IsEquality(boolT))
	assert.True(t, typesys.IsAssignable(boolT))
	assert.True(t, typesys.IsCondition(boolT))

	intT := typesys.NewBasic(intSym())
	assert.True(t, typesys.IsNumeric(intT))
	assert.True(t, typesys.IsOrdinal(intT))
}

func TestIsCallableMatchesCallable(t *testing.T) {
	fn := typesys.NewFunction(typesys.NewBasic(intSym()), nil, false)
	assert.True(t, typesys.IsCallable(fn))
	assert.False(t, typesys.IsCallable(typesys.NewBasic(intSym())))
}
