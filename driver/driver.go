// Package driver is the Statement/Declaration Driver: the outermost walk
// over a function body (and, transitively, a whole module), responsible
// for everything that is not itself an expression or initializer --
// sequencing statements, tracking which function's return type is
// currently in force, and rejecting a `break` that is not inside a loop.
// It delegates every value-producing position to package check.
package driver

import (
	"github.com/susji/minic/ast"
	"github.com/susji/minic/check"
	"github.com/susji/minic/diag"
	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typesys"
)

// Driver walks statement and declaration nodes. loopDepth and the
// expected-return stack are driver-local state, not Context state: a
// Context is reused across an entire translation unit, but "am I inside a
// loop" and "what must this return" are properties of where the walk
// currently is.
type Driver struct {
	Checker *check.Context
	Sink    *diag.Sink

	loopDepth int
	returns   []*typesys.Type // stack of expected return types, one per enclosing function
	sawReturn []int           // parallel stack: return-statement count (valid or not) for the function at that depth
}

func New(checker *check.Context, sink *diag.Sink) *Driver {
	return &Driver{Checker: checker, Sink: sink}
}

// Walk drives a top-level module: a flat list of declarations and function
// implementations.
func (d *Driver) Walk(n ast.Node) {
	switch t := n.(type) {
	case nil:
		return
	case *ast.Module:
		for _, decl := range t.Decls {
			d.Walk(decl)
		}
	case *ast.Using:
		for _, decl := range t.Decls {
			d.Walk(decl)
		}
	case *ast.Decl:
		// Declaration validity itself is an external collaborator's
		// concern; the driver only reads t.Sym when it needs a return
		// type, below.
	case *ast.FuncImpl:
		d.funcImpl(t)
	case *ast.Block:
		d.block(t)
	case *ast.Branch:
		d.branch(t)
	case *ast.Loop:
		d.loop(t)
	case *ast.Iter:
		d.iter(t)
	case *ast.Return:
		d.ret(t)
	case *ast.Break:
		d.brk(t)
	case *ast.ExprStmt:
		d.Checker.Expr(t.Expr)
	default:
		d.Sink.Internal(n, "%T", n)
	}
}

func (d *Driver) funcImpl(n *ast.FuncImpl) {
	d.Walk(n.Proto)
	if n.Proto == nil || n.Proto.Sym == nil || n.Proto.Sym.Kind() != symbol.KindFunction {
		d.Sink.Internal(n, "function implementation has no resolved function symbol")
		d.Walk(n.Body)
		return
	}
	ret := n.Proto.Sym.DeclaredType().Return()
	d.pushReturn(ret)
	d.Walk(n.Body)
	required := !isVoid(ret)
	seen := d.popReturn()
	if required && seen == 0 {
		d.Sink.TypeExpectedSpecific(n, "function body", ret, typesys.NewInvalid())
	}
}

// isVoid reports whether t names the builtin void type -- the one basic
// type a function is allowed to never return.
func isVoid(t *typesys.Type) bool {
	if !t.IsBasic() {
		return false
	}
	return t.BasicSymbol().Ident() == "void"
}

func (d *Driver) pushReturn(t *typesys.Type) {
	d.returns = append(d.returns, t)
	d.sawReturn = append(d.sawReturn, 0)
}

func (d *Driver) popReturn() int {
	n := len(d.sawReturn) - 1
	seen := d.sawReturn[n]
	d.returns = d.returns[:n]
	d.sawReturn = d.sawReturn[:n]
	return seen
}

func (d *Driver) currentReturn() *typesys.Type {
	if len(d.returns) == 0 {
		return nil
	}
	return d.returns[len(d.returns)-1]
}

func (d *Driver) block(n *ast.Block) {
	for _, stmt := range n.Stmts {
		d.Walk(stmt)
	}
}

func (d *Driver) branch(n *ast.Branch) {
	cond := d.Checker.Expr(n.Cond)
	if !typesys.IsCondition(cond.Type) {
		d.Sink.TypeExpected(n.Cond, "condition", cond.Type)
	}
	d.Walk(n.Then)
	d.Walk(n.Else)
}

func (d *Driver) loop(n *ast.Loop) {
	d.loopDepth++
	defer func() { d.loopDepth-- }()

	if n.DoWhile {
		d.Walk(n.Body)
		d.checkLoopCond(n.Cond)
		return
	}
	d.checkLoopCond(n.Cond)
	d.Walk(n.Body)
}

func (d *Driver) iter(n *ast.Iter) {
	d.loopDepth++
	defer func() { d.loopDepth-- }()

	d.Walk(n.Init)
	d.checkLoopCond(n.Cond)
	if n.Post != nil {
		d.Checker.Expr(n.Post)
	}
	d.Walk(n.Body)
}

func (d *Driver) checkLoopCond(cond ast.Node) {
	if cond == nil {
		return
	}
	r := d.Checker.Expr(cond)
	if !typesys.IsCondition(r.Type) {
		d.Sink.TypeExpected(cond, "condition", r.Type)
	}
}

func (d *Driver) ret(n *ast.Return) {
	want := d.currentReturn()
	if want == nil {
		d.Sink.Internal(n, "return statement outside any function")
		if n.Value != nil {
			d.Checker.Expr(n.Value)
		}
		return
	}
	d.sawReturn[len(d.sawReturn)-1]++

	if n.Value == nil {
		if !isVoid(want) {
			d.Sink.TypeExpectedSpecific(n, "return", want, typesys.NewInvalid())
		}
		return
	}
	got := d.Checker.Expr(n.Value)
	if !typesys.Compatible(got.Type, want) {
		d.Sink.TypeExpectedSpecific(n, "return", want, got.Type)
	}
}

func (d *Driver) brk(n *ast.Break) {
	if d.loopDepth == 0 {
		d.Sink.Internal(n, "break outside any loop")
	}
}
