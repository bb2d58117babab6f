package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/susji/minic/ast"
	"github.com/susji/minic/fixture"
	"github.com/susji/minic/symbol"
)

func TestBuildResolvesStructFieldsIntoTypeRegistry(t *testing.T) {
	b := fixture.NewBuilder(symbol.NewBuiltins())
	prog := &fixture.Program{
		Structs: []fixture.StructDef{
			{Name: "point", Fields: []fixture.FieldDef{
				{Name: "x", Type: fixture.TypeRef{Base: "int"}},
				{Name: "y", Type: fixture.TypeRef{Base: "int"}},
			}},
		},
	}
	mod, err := b.Build(prog)
	require.NoError(t, err)
	require.Len(t, mod.Decls, 1)

	decl, ok := mod.Decls[0].(*ast.Decl)
	require.True(t, ok)
	assert.Equal(t, "point", decl.Sym.Ident())
	assert.Len(t, decl.Sym.Children(), 2)
}

func TestBuildGlobalVarDeclAppearsAsDecl(t *testing.T) {
	b := fixture.NewBuilder(symbol.NewBuiltins())
	prog := &fixture.Program{
		Globals: []fixture.VarDecl{
			{Name: "counter", Type: fixture.TypeRef{Base: "int"}},
		},
	}
	mod, err := b.Build(prog)
	require.NoError(t, err)
	require.Len(t, mod.Decls, 1)

	decl := mod.Decls[0].(*ast.Decl)
	assert.Equal(t, "counter", decl.Sym.Ident())
}

func TestBuildMutuallyRecursiveFunctionsResolve(t *testing.T) {
	b := fixture.NewBuilder(symbol.NewBuiltins())
	prog := &fixture.Program{
		Functions: []fixture.FuncDecl{
			{
				Name:   "isEven",
				Return: fixture.TypeRef{Base: "bool"},
				Params: []fixture.FieldDef{{Name: "n", Type: fixture.TypeRef{Base: "int"}}},
				Body: []fixture.Stmt{
					{Kind: "return", Value: &fixture.Expr{
						Kind:   "call",
						Callee: &fixture.Expr{Kind: "ident", Name: "isOdd"},
						Args:   []fixture.Expr{{Kind: "ident", Name: "n"}},
					}},
				},
			},
			{
				Name:   "isOdd",
				Return: fixture.TypeRef{Base: "bool"},
				Params: []fixture.FieldDef{{Name: "n", Type: fixture.TypeRef{Base: "int"}}},
				Body: []fixture.Stmt{
					{Kind: "return", Value: &fixture.Expr{
						Kind:   "call",
						Callee: &fixture.Expr{Kind: "ident", Name: "isEven"},
						Args:   []fixture.Expr{{Kind: "ident", Name: "n"}},
					}},
				},
			},
		},
	}
	mod, err := b.Build(prog)
	require.NoError(t, err)
	require.Len(t, mod.Decls, 2)

	for _, d := range mod.Decls {
		impl, ok := d.(*ast.FuncImpl)
		require.True(t, ok)
		assert.NotNil(t, impl.Proto.Sym)
	}
}

func TestBuildFunctionWithoutBodyIsPrototypeOnly(t *testing.T) {
	b := fixture.NewBuilder(symbol.NewBuiltins())
	prog := &fixture.Program{
		Functions: []fixture.FuncDecl{
			{Name: "puts", Return: fixture.TypeRef{Base: "int"}},
		},
	}
	mod, err := b.Build(prog)
	require.NoError(t, err)
	require.Len(t, mod.Decls, 1)

	_, isDecl := mod.Decls[0].(*ast.Decl)
	assert.True(t, isDecl)
}

func TestBuildDeclWithInitializerProducesAssignment(t *testing.T) {
	b := fixture.NewBuilder(symbol.NewBuiltins())
	prog := &fixture.Program{
		Functions: []fixture.FuncDecl{
			{
				Name:   "main",
				Return: fixture.TypeRef{Base: "int"},
				Body: []fixture.Stmt{
					{Kind: "decl", Name: "x", Type: &fixture.TypeRef{Base: "int"}, Init: &fixture.Expr{Kind: "int", Int: int64p(5)}},
					{Kind: "return", Value: &fixture.Expr{Kind: "ident", Name: "x"}},
				},
			},
		},
	}
	mod, err := b.Build(prog)
	require.NoError(t, err)

	impl := mod.Decls[0].(*ast.FuncImpl)
	block := impl.Body.(*ast.Block)
	require.Len(t, block.Stmts, 2)

	declBlock, ok := block.Stmts[0].(*ast.Block)
	require.True(t, ok, "a decl-with-init lowers to a block of [decl, assignment]")
	require.Len(t, declBlock.Stmts, 2)
}

func TestBuildMemberAccessRightOperandIsBareIdent(t *testing.T) {
	b := fixture.NewBuilder(symbol.NewBuiltins())
	prog := &fixture.Program{
		Structs: []fixture.StructDef{
			{Name: "point", Fields: []fixture.FieldDef{{Name: "x", Type: fixture.TypeRef{Base: "int"}}}},
		},
		Functions: []fixture.FuncDecl{
			{
				Name:   "main",
				Return: fixture.TypeRef{Base: "int"},
				Body: []fixture.Stmt{
					{Kind: "decl", Name: "p", Type: &fixture.TypeRef{Base: "point"}},
					{Kind: "return", Value: &fixture.Expr{
						Kind: "binary", Op: ".",
						Left:  &fixture.Expr{Kind: "ident", Name: "p"},
						Right: &fixture.Expr{Kind: "ident", Name: "x"},
					}},
				},
			},
		},
	}
	mod, err := b.Build(prog)
	require.NoError(t, err)

	impl := mod.Decls[0].(*ast.FuncImpl)
	block := impl.Body.(*ast.Block)
	ret := block.Stmts[1].(*ast.Return)
	bin := ret.Value.(*ast.Binary)
	rhs := bin.Right.(*ast.Ident)

	// "x" names a struct field, never resolved against the enclosing
	// scope -- its Sym stays nil coming out of the builder.
	assert.Equal(t, "x", rhs.Name)
	assert.Nil(t, rhs.Sym)
}

func int64p(v int64) *int64 { return &v }
