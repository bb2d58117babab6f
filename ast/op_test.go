package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/susji/minic/ast"
)

func TestParseBinaryOp(t *testing.T) {
	table := []struct {
		spelling string
		want     ast.OpKind
	}{
		{"+", ast.OpAdd},
		{"-", ast.OpSub},
		{"*", ast.OpMul},
		{"&", ast.OpBAnd},
		{"=", ast.OpAssign},
		{"+=", ast.OpAddAssign},
		{"==", ast.OpEq},
		{"&&", ast.OpLAnd},
		{".", ast.OpMember},
		{"->", ast.OpArrow},
		{",", ast.OpComma},
		{"nope", ast.OpInvalid},
	}
	for _, cur := range table {
		t.Run(cur.spelling, func(t *testing.T) {
			assert.Equal(t, cur.want, ast.ParseBinaryOp(cur.spelling))
		})
	}
}

func TestParseUnaryOp(t *testing.T) {
	table := []struct {
		spelling string
		want     ast.OpKind
	}{
		{"+", ast.OpPlus},
		{"-", ast.OpNeg},
		{"*", ast.OpDeref},
		{"&", ast.OpAddrOf},
		{"++", ast.OpIncr},
		{"--", ast.OpDecr},
		{"!", ast.OpLNot},
		{"~", ast.OpBNot},
		{"nope", ast.OpInvalid},
	}
	for _, cur := range table {
		t.Run(cur.spelling, func(t *testing.T) {
			assert.Equal(t, cur.want, ast.ParseUnaryOp(cur.spelling))
		})
	}
}

func TestOpKindString(t *testing.T) {
	assert.Equal(t, "+", ast.OpAdd.String())
	assert.Equal(t, "?", ast.OpKind(999).String())
}

func TestClassificationSets(t *testing.T) {
	assert.True(t, ast.IsNumericBinary(ast.OpAdd))
	assert.True(t, ast.IsNumericBinary(ast.OpAddAssign))
	assert.False(t, ast.IsNumericBinary(ast.OpAssign))

	assert.True(t, ast.IsAssignmentBinary(ast.OpAssign))
	assert.True(t, ast.IsAssignmentBinary(ast.OpAddAssign))
	assert.False(t, ast.IsAssignmentBinary(ast.OpAdd))

	assert.True(t, ast.IsOrdinalBinary(ast.OpLt))
	assert.True(t, ast.IsEqualityBinary(ast.OpEq))
	assert.True(t, ast.IsLogicalBinary(ast.OpLOr))
	assert.True(t, ast.IsMemberBinary(ast.OpMember))
	assert.True(t, ast.IsMemberBinary(ast.OpArrow))
	assert.True(t, ast.IsCommaBinary(ast.OpComma))

	assert.True(t, ast.IsUnaryNumeric(ast.OpNeg))
	assert.True(t, ast.IsIncrDecr(ast.OpIncr))
	assert.True(t, ast.IsIncrDecr(ast.OpDecr))
	assert.False(t, ast.IsIncrDecr(ast.OpNeg))
}
