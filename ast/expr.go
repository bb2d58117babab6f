package ast

// The concrete expression node types below use one small struct per
// construct, embedding *Common, rather than a generic
// tag/first_child/next_sibling shape. Representing each construct with its
// own Go type is the idiomatic rendering of that same contract once it
// reaches a type-switch dispatcher (package check).

// Ident is an identifier literal. Its Sym is pre-resolved by the (external)
// symbol-table builder -- the Expression Analyzer only reads
// Sym.Kind()/DeclaredType(), it never resolves names itself. The same
// struct is reused, unanalyzed, as the bare field-name child of a Member
// node: in that position its Name is read directly and it is never passed
// to check.Expr.
type Ident struct {
	*Common
	Name string
}

// NewIdent builds an identifier node. Its Sym field is populated separately
// by the symbol-table builder (the input contract assumes it is already
// resolved by the time the Expression Analyzer sees it); set it with
// `id.Sym = resolved` after construction.
func NewIdent(pos Position, name string) *Ident {
	return &Ident{Common: newCommon(pos), Name: name}
}

type IntLit struct {
	*Common
	Value int64
}

func NewIntLit(pos Position, v int64) *IntLit { return &IntLit{Common: newCommon(pos), Value: v} }

type CharLit struct {
	*Common
	Value rune
}

func NewCharLit(pos Position, v rune) *CharLit { return &CharLit{Common: newCommon(pos), Value: v} }

type BoolLit struct {
	*Common
	Value bool
}

func NewBoolLit(pos Position, v bool) *BoolLit { return &BoolLit{Common: newCommon(pos), Value: v} }

type StrLit struct {
	*Common
	Value string
}

func NewStrLit(pos Position, v string) *StrLit { return &StrLit{Common: newCommon(pos), Value: v} }

// Binary covers every two-operand operator: arithmetic, assignment,
// comparison, logical, member access, and comma. check.Expr routes further
// by Op.
type Binary struct {
	*Common
	Op    OpKind
	Left  Node
	Right Node
}

func NewBinary(pos Position, op OpKind, l, r Node) *Binary {
	return &Binary{Common: newCommon(pos), Op: op, Left: l, Right: r}
}

// Unary covers every one-operand operator.
type Unary struct {
	*Common
	Op      OpKind
	Operand Node
}

func NewUnary(pos Position, op OpKind, operand Node) *Unary {
	return &Unary{Common: newCommon(pos), Op: op, Operand: operand}
}

// Ternary is `cond ? l : r`.
type Ternary struct {
	*Common
	Cond, Left, Right Node
}

func NewTernary(pos Position, cond, l, r Node) *Ternary {
	return &Ternary{Common: newCommon(pos), Cond: cond, Left: l, Right: r}
}

// Index is `l[r]`.
type Index struct {
	*Common
	Left, Right Node
}

func NewIndex(pos Position, l, r Node) *Index {
	return &Index{Common: newCommon(pos), Left: l, Right: r}
}

// Call is `callee(args...)`.
type Call struct {
	*Common
	Callee Node
	Args   []Node
}

func NewCall(pos Position, callee Node, args []Node) *Call {
	return &Call{Common: newCommon(pos), Callee: callee, Args: args}
}

// TypeExpr is a type-expression node: the thing handed to the external
// Type Analyzer collaborator (package typeexpr) from Cast, Sizeof, and
// Compound-literal. Its shape is intentionally small -- a base name plus
// pointer/array suffixes -- since constructing full type-expression syntax
// is a parser concern, out of scope here.
type TypeExpr struct {
	*Common
	BaseName     string
	PointerLevel int
	// ArrayLevels holds one entry per array dimension, each either a
	// non-negative size or typesys.ArrayUnknown.
	ArrayLevels []int
}

func NewTypeExpr(pos Position, base string, ptr int, arrays []int) *TypeExpr {
	return &TypeExpr{Common: newCommon(pos), BaseName: base, PointerLevel: ptr, ArrayLevels: arrays}
}

// Cast is `(T)value`.
type Cast struct {
	*Common
	Type  *TypeExpr
	Value Node
}

func NewCast(pos Position, t *TypeExpr, v Node) *Cast {
	return &Cast{Common: newCommon(pos), Type: t, Value: v}
}

// Sizeof is `sizeof(T)` or `sizeof(expr)`: exactly one of Type/Value is set.
type Sizeof struct {
	*Common
	Type  *TypeExpr
	Value Node
}

func NewSizeofType(pos Position, t *TypeExpr) *Sizeof {
	return &Sizeof{Common: newCommon(pos), Type: t}
}

func NewSizeofValue(pos Position, v Node) *Sizeof {
	return &Sizeof{Common: newCommon(pos), Value: v}
}

// InitList is a brace-enclosed aggregate initializer, `{ e1, e2, ... }`.
// Each element is either a nested *InitList or an ordinary value
// expression.
type InitList struct {
	*Common
	Elements []Node
}

func NewInitList(pos Position, elems []Node) *InitList {
	return &InitList{Common: newCommon(pos), Elements: elems}
}

// CompoundLiteral is `(T){ ... }`. Unlike an ordinary literal, this denotes
// storage and is an l-value.
type CompoundLiteral struct {
	*Common
	Type *TypeExpr
	Init *InitList
}

func NewCompoundLiteral(pos Position, t *TypeExpr, init *InitList) *CompoundLiteral {
	return &CompoundLiteral{Common: newCommon(pos), Type: t, Init: init}
}

// Invalid is an explicit parser-inserted error node: its type is always
// Invalid and it is never further analyzed.
type Invalid struct {
	*Common
}

func NewInvalidNode(pos Position) *Invalid { return &Invalid{Common: newCommon(pos)} }
