package check

import (
	"github.com/susji/minic/ast"
	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typesys"
)

// Expr is the Expression Analyzer's single entry point: a post-order walk
// that types n and every node beneath it in one pass, writing the result
// back onto each node as it goes, one small function per node kind instead
// of one large switch body.
func (c *Context) Expr(n ast.Node) Result {
	var r Result
	switch v := n.(type) {
	case nil:
		r = Result{Type: typesys.NewInvalid()}
	case *ast.Invalid:
		r = Result{Type: typesys.NewInvalid()}
	case *ast.Ident:
		r = c.ident(v)
	case *ast.IntLit:
		r = Result{Type: c.intType()}
	case *ast.CharLit:
		r = Result{Type: c.charType()}
	case *ast.BoolLit:
		r = Result{Type: c.boolType()}
	case *ast.StrLit:
		r = Result{Type: typesys.NewPointer(c.charType())}
	case *ast.Binary:
		r = c.binary(v)
	case *ast.Unary:
		r = c.unary(v)
	case *ast.Ternary:
		r = c.ternary(v)
	case *ast.Index:
		r = c.index(v)
	case *ast.Call:
		r = c.call(v)
	case *ast.Cast:
		r = c.cast(v)
	case *ast.Sizeof:
		r = c.sizeof(v)
	case *ast.CompoundLiteral:
		r = c.compoundLiteral(v)
	default:
		c.Sink.Internal(n, "%T", n)
		r = Result{Type: typesys.NewInvalid()}
	}
	setDT(n, r.Type)
	return r
}

func (c *Context) binary(n *ast.Binary) Result {
	if ast.IsMemberBinary(n.Op) {
		return c.member(n)
	}
	if ast.IsCommaBinary(n.Op) {
		return c.comma(n)
	}
	l := c.Expr(n.Left)
	r := c.Expr(n.Right)
	switch {
	case ast.IsOrdinalBinary(n.Op) || ast.IsEqualityBinary(n.Op):
		return c.comparison(n, l, r)
	case ast.IsLogicalBinary(n.Op):
		return c.logical(n, l, r)
	default:
		return c.numericAssign(n, l, r)
	}
}

// numericAssign covers the plain arithmetic/bitwise operators and their
// compound and plain assignment forms. Every assignment form ("=" and the
// compound ones) requires the left side to be an l-value and both operands
// to be assignable; the arithmetic and compound forms require both
// operands to be numeric.
func (c *Context) numericAssign(n *ast.Binary, l, r Result) Result {
	if ast.IsNumericBinary(n.Op) {
		if !typesys.IsNumeric(l.Type) {
			c.Sink.OperatorType(n.Left, n.Op.String(), l.Type)
		}
		if !typesys.IsNumeric(r.Type) {
			c.Sink.OperatorType(n.Right, n.Op.String(), r.Type)
		}
	}
	if ast.IsAssignmentBinary(n.Op) {
		if !l.LValue {
			c.Sink.LValueRequired(n.Left)
		}
		if !typesys.IsAssignable(l.Type) {
			c.Sink.OperatorType(n.Left, n.Op.String(), l.Type)
		}
		if !typesys.IsAssignable(r.Type) {
			c.Sink.OperatorType(n.Right, n.Op.String(), r.Type)
		}
	}
	if !typesys.Compatible(r.Type, l.Type) {
		c.Sink.Mismatch(n, l.Type, r.Type)
		return Result{Type: typesys.NewInvalid()}
	}
	return Result{Type: typesys.DeriveFromTwo(l.Type, r.Type)}
}

func (c *Context) comparison(n *ast.Binary, l, r Result) Result {
	if ast.IsOrdinalBinary(n.Op) {
		if !typesys.IsOrdinal(l.Type) {
			c.Sink.OperatorType(n.Left, n.Op.String(), l.Type)
		}
		if !typesys.IsOrdinal(r.Type) {
			c.Sink.OperatorType(n.Right, n.Op.String(), r.Type)
		}
	} else {
		if !typesys.IsEquality(l.Type) {
			c.Sink.OperatorType(n.Left, n.Op.String(), l.Type)
		}
		if !typesys.IsEquality(r.Type) {
			c.Sink.OperatorType(n.Right, n.Op.String(), r.Type)
		}
	}
	if !typesys.Compatible(r.Type, l.Type) && !typesys.Compatible(l.Type, r.Type) {
		c.Sink.Mismatch(n, l.Type, r.Type)
	}
	return Result{Type: c.boolType()}
}

func (c *Context) logical(n *ast.Binary, l, r Result) Result {
	if !typesys.IsCondition(l.Type) {
		c.Sink.OperatorType(n.Left, n.Op.String(), l.Type)
	}
	if !typesys.IsCondition(r.Type) {
		c.Sink.OperatorType(n.Right, n.Op.String(), r.Type)
	}
	return Result{Type: c.boolType()}
}

// member covers "." and "->". Its right child is a bare field-name
// identifier, never itself run through Expr -- there is no value to type,
// only a name to look up on the left side's record.
func (c *Context) member(n *ast.Binary) Result {
	l := c.Expr(n.Left)
	fieldName, ok := n.Right.(*ast.Ident)
	if !ok {
		c.Sink.Internal(n.Right, "member access right operand is not an identifier")
		return Result{Type: typesys.NewInvalid()}
	}

	if l.Type.IsInvalid() {
		return Result{Type: typesys.NewInvalid(), LValue: l.LValue}
	}

	wantPointer := n.Op == ast.OpArrow
	recordType := l.Type
	if wantPointer {
		if !l.Type.IsPointer() {
			c.Sink.TypeExpected(n.Left, "pointer", l.Type)
			return Result{Type: typesys.NewInvalid()}
		}
		recordType = l.Type.Pointee()
	}

	record, ok := asStruct(recordType)
	if !ok {
		c.Sink.TypeExpected(n.Left, "struct", recordType)
		return Result{Type: typesys.NewInvalid()}
	}
	field := symbol.Child(record, fieldName.Name)
	if field == nil {
		c.Sink.UnknownMember(n, recordType, fieldName.Name)
		return Result{Type: typesys.NewInvalid()}
	}
	fieldName.Sym = field
	return Result{Type: typesys.DeepDuplicate(field.DeclaredType()), LValue: wantPointer || l.LValue}
}

func (c *Context) comma(n *ast.Binary) Result {
	c.Expr(n.Left)
	r := c.Expr(n.Right)
	return Result{Type: typesys.DeepDuplicate(r.Type), LValue: r.LValue}
}

func (c *Context) unary(n *ast.Unary) Result {
	switch {
	case ast.IsUnaryNumeric(n.Op):
		r := c.Expr(n.Operand)
		if !typesys.IsNumeric(r.Type) {
			c.Sink.OperatorType(n, n.Op.String(), r.Type)
		}
		if ast.IsIncrDecr(n.Op) && !r.LValue {
			c.Sink.LValueRequired(n.Operand)
		}
		return Result{Type: typesys.DeriveFrom(r.Type)}
	case n.Op == ast.OpLNot:
		r := c.Expr(n.Operand)
		if !typesys.IsCondition(r.Type) {
			c.Sink.OperatorType(n, n.Op.String(), r.Type)
		}
		return Result{Type: c.boolType()}
	case n.Op == ast.OpDeref:
		r := c.Expr(n.Operand)
		if !r.Type.IsPointer() && !r.Type.IsInvalid() {
			c.Sink.TypeExpected(n.Operand, "pointer", r.Type)
			return Result{Type: typesys.NewInvalid(), LValue: true}
		}
		return Result{Type: typesys.DeriveBase(r.Type), LValue: true}
	case n.Op == ast.OpAddrOf:
		r := c.Expr(n.Operand)
		if !r.LValue {
			c.Sink.LValueRequired(n.Operand)
		}
		return Result{Type: typesys.DerivePointer(r.Type)}
	default:
		c.Sink.Internal(n, "unhandled unary operator %s", n.Op)
		return Result{Type: typesys.NewInvalid()}
	}
}

func (c *Context) ternary(n *ast.Ternary) Result {
	cond := c.Expr(n.Cond)
	if !typesys.IsCondition(cond.Type) {
		c.Sink.OperatorType(n.Cond, "?:", cond.Type)
	}
	l := c.Expr(n.Left)
	r := c.Expr(n.Right)
	lvalue := l.LValue && r.LValue
	if typesys.Compatible(l.Type, r.Type) || typesys.Compatible(r.Type, l.Type) {
		return Result{Type: typesys.DeriveUnified(l.Type, r.Type), LValue: lvalue}
	}
	c.Sink.Mismatch(n, l.Type, r.Type)
	return Result{Type: typesys.NewInvalid(), LValue: lvalue}
}

func (c *Context) index(n *ast.Index) Result {
	l := c.Expr(n.Left)
	r := c.Expr(n.Right)
	if !typesys.IsNumeric(r.Type) {
		c.Sink.OperatorType(n.Right, "[]", r.Type)
	}
	if !l.Type.IsArray() && !l.Type.IsPointer() && !l.Type.IsInvalid() {
		c.Sink.TypeExpected(n.Left, "array or pointer", l.Type)
		return Result{Type: typesys.NewInvalid(), LValue: l.LValue}
	}
	return Result{Type: typesys.DeriveBase(l.Type), LValue: l.LValue}
}

func (c *Context) call(n *ast.Call) Result {
	callee := c.Expr(n.Callee)
	if !typesys.IsCallable(callee.Type) {
		c.Sink.TypeExpected(n.Callee, "callable", callee.Type)
		for _, a := range n.Args {
			c.Expr(a)
		}
		return Result{Type: typesys.NewInvalid()}
	}

	fn := typesys.FunctionOf(callee.Type)
	result := Result{Type: typesys.DeriveReturn(callee.Type)}
	if fn.IsInvalid() {
		for _, a := range n.Args {
			c.Expr(a)
		}
		return result
	}

	params := fn.Params()
	nargs, nparams := len(n.Args), len(params)
	arityOK := nargs == nparams
	if fn.Variadic() {
		arityOK = nargs >= nparams
	}
	if !arityOK {
		c.Sink.Degree(n, "arguments", nparams, nargs)
		for _, a := range n.Args {
			c.Expr(a)
		}
		return result
	}

	callSym := calleeSymbolOf(n.Callee)
	paired := min(nargs, nparams)
	for i := 0; i < paired; i++ {
		arg := c.Expr(n.Args[i])
		if !typesys.Compatible(arg.Type, params[i]) {
			if callSym != nil {
				c.Sink.NamedParameterMismatch(n.Args[i], callSym, i+1, params[i], arg.Type)
			} else {
				c.Sink.ParameterMismatch(n.Args[i], i+1, params[i], arg.Type)
			}
		}
	}
	for i := paired; i < nargs; i++ {
		c.Expr(n.Args[i])
	}
	return result
}

// castAllowed implements the conservative cast policy: numeric-to-numeric,
// pointer-like-to-pointer (an array source decays; an array target is
// rejected), and numeric-to-pointer-like in either direction. Invalid on either side is always allowed, per the
// error-absorption rule every relation here follows.
func castAllowed(target, src *typesys.Type) bool {
	if target.IsInvalid() || src.IsInvalid() {
		return true
	}
	targetPointerLike := target.IsPointer()
	srcPointerLike := src.IsPointer() || src.IsArray()
	targetNumeric := typesys.IsNumeric(target) && target.IsBasic()
	srcNumeric := typesys.IsNumeric(src) && src.IsBasic()

	switch {
	case targetNumeric && srcNumeric:
		return true
	case targetPointerLike && srcPointerLike:
		return true
	case targetNumeric && srcPointerLike:
		return true
	case targetPointerLike && srcNumeric:
		return true
	default:
		return false
	}
}

func (c *Context) cast(n *ast.Cast) Result {
	target := c.Types.AnalyzeType(n.Type)
	v := c.Expr(n.Value)
	if !castAllowed(target, v.Type) {
		c.Sink.TypeExpectedSpecific(n, "cast", target, v.Type)
	}
	return Result{Type: typesys.DeepDuplicate(target), LValue: v.LValue}
}

func (c *Context) sizeof(n *ast.Sizeof) Result {
	if n.Type != nil {
		c.Types.AnalyzeType(n.Type)
	} else {
		c.Expr(n.Value)
	}
	return Result{Type: c.intType()}
}

// ident covers the identifier-literal dispatch table: the symbol a name
// resolves to decides both its type and whether referencing it bare is
// legal at all. A Type or Struct symbol named bare (not through a type
// expression or member access) is never a value.
func (c *Context) ident(n *ast.Ident) Result {
	if n.Sym == nil {
		c.Sink.Internal(n, "identifier %q has no resolved symbol", n.Name)
		return Result{Type: typesys.NewInvalid()}
	}
	switch n.Sym.Kind() {
	case symbol.KindEnumConstant, symbol.KindVariable, symbol.KindParam:
		return Result{Type: typesys.DeepDuplicate(n.Sym.DeclaredType()), LValue: true}
	case symbol.KindFunction:
		return Result{Type: typesys.DeepDuplicate(n.Sym.DeclaredType())}
	default:
		c.Sink.IllegalSymbolAsValue(n, n.Sym.Kind(), n.Sym.Ident())
		return Result{Type: typesys.NewInvalid()}
	}
}

// compoundLiteral types `(T){ ... }`. Unlike an ordinary literal it denotes
// fresh storage and is an l-value; the anonymous variable symbol backing
// that storage is created here, since nothing upstream names it.
func (c *Context) compoundLiteral(n *ast.CompoundLiteral) Result {
	target := c.Types.AnalyzeType(n.Type)
	c.Init(n.Init, target)

	anon, ok := n.Sym.(*symbol.Anonymous)
	if !ok {
		anon = symbol.NewAnonymous()
		n.Sym = anon
	}
	result := typesys.DeepDuplicate(target)
	anon.SetDeclaredType(typesys.DeepDuplicate(result))
	return Result{Type: result, LValue: true}
}
