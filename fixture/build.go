package fixture

import (
	"fmt"

	"github.com/susji/minic/ast"
	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typeexpr"
	"github.com/susji/minic/typesys"
)

// scope is a small parent-linked lookup table, just enough to resolve
// identifiers while building a tree -- a minimal stand-in for the
// (external, out of scope) symbol-table builder's own scoping.
type scope struct {
	parent *scope
	names  map[string]symbol.Symbol
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, names: map[string]symbol.Symbol{}}
}

func (s *scope) define(sym symbol.Symbol) {
	s.names[sym.Ident()] = sym
}

func (s *scope) lookup(name string) symbol.Symbol {
	for cur := s; cur != nil; cur = cur.parent {
		if sym, ok := cur.names[name]; ok {
			return sym
		}
	}
	return nil
}

// Builder turns a Program into an *ast.Module, resolving every identifier
// as it goes. One Builder builds exactly one Program.
type Builder struct {
	builtins *symbol.Builtins
	types    *typeexpr.Registry
	global   *scope
	cur      *scope
}

func NewBuilder(builtins *symbol.Builtins) *Builder {
	b := &Builder{builtins: builtins, types: typeexpr.NewRegistry(builtins)}
	b.global = newScope(nil)
	b.cur = b.global
	return b
}

// Types exposes the type registry the builder populated, so a caller can
// reuse it (e.g. to build check.Context) against the same struct/typedef
// names this program defined.
func (b *Builder) Types() *typeexpr.Registry { return b.types }

func (b *Builder) pushScope() { b.cur = newScope(b.cur) }
func (b *Builder) popScope()  { b.cur = b.cur.parent }

// Build decodes prog into a module tree with every Ident.Sym already
// resolved, ready for driver.Walk.
func (b *Builder) Build(prog *Program) (*ast.Module, error) {
	var decls []ast.Node

	for _, sd := range prog.Structs {
		sym, err := b.buildStruct(sd)
		if err != nil {
			return nil, err
		}
		decls = append(decls, ast.NewDecl(ast.Position{}, sym))
	}
	for _, vd := range prog.Globals {
		t := b.resolveType(vd.Type)
		sym := symbol.NewVariable(vd.Name, t)
		b.global.define(sym)
		decls = append(decls, ast.NewDecl(ast.Position{}, sym))
	}

	// Function symbols are all registered before any body is built, so
	// mutually recursive calls resolve regardless of declaration order.
	fnSyms := make([]symbol.Symbol, len(prog.Functions))
	for i, fd := range prog.Functions {
		params := make([]*typesys.Type, len(fd.Params))
		for j, p := range fd.Params {
			params[j] = b.resolveType(p.Type)
		}
		ret := b.resolveType(fd.Return)
		fn := typesys.NewFunction(ret, params, fd.Variadic)
		sym := symbol.NewFunction(fd.Name, fn)
		fnSyms[i] = sym
		b.global.define(sym)
	}

	for i, fd := range prog.Functions {
		sym := fnSyms[i]
		protoDecl := ast.NewDecl(ast.Position{}, sym)
		if fd.Body == nil {
			decls = append(decls, protoDecl)
			continue
		}
		b.pushScope()
		fnType := sym.DeclaredType()
		for j, p := range fd.Params {
			b.cur.define(symbol.NewParam(p.Name, fnType.Params()[j]))
		}
		body := b.buildStmt(Stmt{Kind: "block", Stmts: fd.Body})
		b.popScope()
		decls = append(decls, ast.NewFuncImpl(ast.Position{}, protoDecl, body))
	}

	return ast.NewModule(ast.Position{}, decls), nil
}

func (b *Builder) buildStruct(sd StructDef) (symbol.Symbol, error) {
	fields := make([]symbol.Symbol, len(sd.Fields))
	for i, f := range sd.Fields {
		fields[i] = symbol.NewField(f.Name, b.resolveType(f.Type))
	}
	sym := symbol.NewStruct(sd.Name, fields)
	b.types.Define(sym)
	return sym, nil
}

func (b *Builder) resolveType(t TypeRef) *typesys.Type {
	te := ast.NewTypeExpr(ast.Position{}, t.Base, t.Pointer, t.Arrays)
	return b.types.AnalyzeType(te)
}

func (b *Builder) resolveTypeRef(t *TypeRef) *typesys.Type {
	if t == nil {
		return typesys.NewInvalid()
	}
	return b.resolveType(*t)
}

func (b *Builder) buildStmt(s Stmt) ast.Node {
	switch s.Kind {
	case "decl":
		t := b.resolveTypeRef(s.Type)
		sym := symbol.NewVariable(s.Name, t)
		b.cur.define(sym)
		decl := ast.NewDecl(ast.Position{}, sym)
		if s.Init == nil {
			return decl
		}
		assign := ast.NewBinary(ast.Position{}, ast.OpAssign, b.identFor(s.Name), b.buildExpr(*s.Init))
		return ast.NewBlock(ast.Position{}, []ast.Node{decl, ast.NewExprStmt(ast.Position{}, assign)})
	case "block":
		b.pushScope()
		defer b.popScope()
		stmts := make([]ast.Node, len(s.Stmts))
		for i, st := range s.Stmts {
			stmts[i] = b.buildStmt(st)
		}
		return ast.NewBlock(ast.Position{}, stmts)
	case "if":
		var elseNode ast.Node
		if s.Else != nil {
			elseNode = b.buildStmt(*s.Else)
		}
		var thenNode ast.Node
		if s.Then != nil {
			thenNode = b.buildStmt(*s.Then)
		}
		return ast.NewBranch(ast.Position{}, b.buildExpr(*s.Cond), thenNode, elseNode)
	case "while":
		return ast.NewLoop(ast.Position{}, b.buildExpr(*s.Cond), b.buildStmt(*s.Body), false)
	case "do_while":
		return ast.NewLoop(ast.Position{}, b.buildExpr(*s.Cond), b.buildStmt(*s.Body), true)
	case "for":
		b.pushScope()
		defer b.popScope()
		var init ast.Node
		if s.ForInit != nil {
			init = b.buildStmt(*s.ForInit)
		}
		var cond, post ast.Node
		if s.Cond != nil {
			cond = b.buildExpr(*s.Cond)
		}
		if s.Post != nil {
			post = b.buildExpr(*s.Post)
		}
		return ast.NewIter(ast.Position{}, init, cond, post, b.buildStmt(*s.Body))
	case "return":
		var v ast.Node
		if s.Value != nil {
			v = b.buildExpr(*s.Value)
		}
		return ast.NewReturn(ast.Position{}, v)
	case "break":
		return ast.NewBreak(ast.Position{})
	case "expr":
		return ast.NewExprStmt(ast.Position{}, b.buildExpr(*s.Expr))
	default:
		panic(fmt.Sprintf("fixture: unknown statement kind %q", s.Kind))
	}
}

func (b *Builder) identFor(name string) *ast.Ident {
	id := ast.NewIdent(ast.Position{}, name)
	id.Sym = b.cur.lookup(name)
	return id
}

func (b *Builder) buildExpr(e Expr) ast.Node {
	switch e.Kind {
	case "ident":
		return b.identFor(e.Name)
	case "int":
		v := int64(0)
		if e.Int != nil {
			v = *e.Int
		}
		return ast.NewIntLit(ast.Position{}, v)
	case "char":
		r := rune(0)
		if len(e.Char) > 0 {
			r = []rune(e.Char)[0]
		}
		return ast.NewCharLit(ast.Position{}, r)
	case "bool":
		return ast.NewBoolLit(ast.Position{}, e.Bool)
	case "str":
		return ast.NewStrLit(ast.Position{}, e.Str)
	case "binary":
		op := ast.ParseBinaryOp(e.Op)
		return ast.NewBinary(ast.Position{}, op, b.buildExpr(*e.Left), b.buildMemberAware(op, e.Right))
	case "unary":
		return ast.NewUnary(ast.Position{}, ast.ParseUnaryOp(e.Op), b.buildExpr(*e.Operand))
	case "ternary":
		return ast.NewTernary(ast.Position{}, b.buildExpr(*e.Cond), b.buildExpr(*e.Left), b.buildExpr(*e.Right))
	case "index":
		return ast.NewIndex(ast.Position{}, b.buildExpr(*e.Left), b.buildExpr(*e.Right))
	case "call":
		args := make([]ast.Node, len(e.Args))
		for i, a := range e.Args {
			args[i] = b.buildExpr(a)
		}
		return ast.NewCall(ast.Position{}, b.buildExpr(*e.Callee), args)
	case "cast":
		te := ast.NewTypeExpr(ast.Position{}, e.Type.Base, e.Type.Pointer, e.Type.Arrays)
		return ast.NewCast(ast.Position{}, te, b.buildExpr(*e.Value))
	case "sizeof_type":
		te := ast.NewTypeExpr(ast.Position{}, e.Type.Base, e.Type.Pointer, e.Type.Arrays)
		return ast.NewSizeofType(ast.Position{}, te)
	case "sizeof_value":
		return ast.NewSizeofValue(ast.Position{}, b.buildExpr(*e.Value))
	case "init_list":
		elems := make([]ast.Node, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = b.buildExpr(el)
		}
		return ast.NewInitList(ast.Position{}, elems)
	case "compound_literal":
		te := ast.NewTypeExpr(ast.Position{}, e.Type.Base, e.Type.Pointer, e.Type.Arrays)
		init := b.buildExpr(*e.InitList).(*ast.InitList)
		return ast.NewCompoundLiteral(ast.Position{}, te, init)
	default:
		panic(fmt.Sprintf("fixture: unknown expression kind %q", e.Kind))
	}
}

// buildMemberAware builds a binary's right operand. For "." and "->" the
// right side is a bare field-name identifier -- never resolved against the
// current scope, since it is a struct member, not a local binding.
func (b *Builder) buildMemberAware(op ast.OpKind, right *Expr) ast.Node {
	if ast.IsMemberBinary(op) && right.Kind == "ident" {
		return ast.NewIdent(ast.Position{}, right.Name)
	}
	return b.buildExpr(*right)
}
