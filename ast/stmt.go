package ast

import "github.com/susji/minic/symbol"

// The statement-level nodes below belong to the Statement/Declaration
// Driver's external boundary: declaration analysis itself is an external
// collaborator, represented here only as an opaque Decl the driver passes
// through without inspecting further.

// Module is the translation unit root: a flat sequence of top-level
// declarations.
type Module struct {
	*Common
	Decls []Node
}

func NewModule(pos Position, decls []Node) *Module {
	return &Module{Common: newCommon(pos), Decls: decls}
}

// Using groups a nested declaration list (e.g. a `using` block of type or
// constant declarations) without introducing its own scope.
type Using struct {
	*Common
	Decls []Node
}

func NewUsing(pos Position, decls []Node) *Using {
	return &Using{Common: newCommon(pos), Decls: decls}
}

// Decl is an opaque declaration the (external) declaration analyzer already
// validated; the driver only needs to know, for a function implementation,
// that the declared symbol is Function-typed.
type Decl struct {
	*Common
	Sym symbol.Symbol
}

func NewDecl(pos Position, sym symbol.Symbol) *Decl {
	return &Decl{Common: newCommon(pos), Sym: sym}
}

// FuncImpl is a function implementation: a prototype declaration plus a
// body. Visiting it swaps in the function's return type as the driver's
// "current expected return type" for the duration of the body.
type FuncImpl struct {
	*Common
	Proto *Decl
	Body  Node
}

func NewFuncImpl(pos Position, proto *Decl, body Node) *FuncImpl {
	return &FuncImpl{Common: newCommon(pos), Proto: proto, Body: body}
}

// Block is a brace-enclosed statement sequence.
type Block struct {
	*Common
	Stmts []Node
}

func NewBlock(pos Position, stmts []Node) *Block {
	return &Block{Common: newCommon(pos), Stmts: stmts}
}

// Branch is `if (Cond) Then [else Else]`. Else may be nil.
type Branch struct {
	*Common
	Cond, Then, Else Node
}

func NewBranch(pos Position, cond, then, els Node) *Branch {
	return &Branch{Common: newCommon(pos), Cond: cond, Then: then, Else: els}
}

// Loop is `while (Cond) Body` or, when DoWhile is set, `do Body while
// (Cond);`.
type Loop struct {
	*Common
	Cond, Body Node
	DoWhile    bool
}

func NewLoop(pos Position, cond, body Node, doWhile bool) *Loop {
	return &Loop{Common: newCommon(pos), Cond: cond, Body: body, DoWhile: doWhile}
}

// Iter is a C-style `for (Init; Cond; Post) Body`. Any of Init/Cond/Post may
// be nil and is skipped; Init may be a declaration.
type Iter struct {
	*Common
	Init, Cond, Post, Body Node
}

func NewIter(pos Position, init, cond, post, body Node) *Iter {
	return &Iter{Common: newCommon(pos), Init: init, Cond: cond, Post: post, Body: body}
}

// Return is `return [Value];`. Value is nil for a bare `return;`.
type Return struct {
	*Common
	Value Node
}

func NewReturn(pos Position, value Node) *Return {
	return &Return{Common: newCommon(pos), Value: value}
}

// Break marks a `break;`. Validating that it sits inside a breakable
// construct is the parser's responsibility; the driver reports a break
// outside any loop only as an internal (collaborator-bug) diagnostic.
type Break struct {
	*Common
}

func NewBreak(pos Position) *Break { return &Break{Common: newCommon(pos)} }

// ExprStmt is a value expression used at statement position; its result is
// discarded.
type ExprStmt struct {
	*Common
	Expr Node
}

func NewExprStmt(pos Position, expr Node) *ExprStmt {
	return &ExprStmt{Common: newCommon(pos), Expr: expr}
}
