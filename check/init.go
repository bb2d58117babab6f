package check

import (
	"github.com/susji/minic/ast"
	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typesys"
)

// Init is the Initializer Analyzer: given the node representing an
// initializer (either a brace-enclosed aggregate or a plain value
// expression) and the type it must initialize, it recurses structurally
// over the expected type's shape, matching elements to fields or array
// slots and falling back to Expr for scalars.
//
// Every node it ever touches gets a derived type written onto it, even on
// mismatch, so nothing downstream sees a node with no type at all.
func (c *Context) Init(n ast.Node, expected *typesys.Type) Result {
	setDT(n, typesys.DeepDuplicate(expected))

	if record, ok := asStruct(expected); ok {
		return c.initStruct(n, record)
	}
	if expected.IsArray() {
		return c.initArray(n, expected)
	}
	return c.initScalar(n, expected)
}

// initElement types one initializer element, recursing through Init for a
// nested brace list and falling back to Expr for an ordinary value.
func (c *Context) initElement(n ast.Node, expected *typesys.Type) Result {
	if list, ok := n.(*ast.InitList); ok {
		return c.Init(list, expected)
	}
	return c.Expr(n)
}

func (c *Context) initStruct(n ast.Node, record symbol.Symbol) Result {
	list, ok := n.(*ast.InitList)
	if !ok {
		return c.initScalarFallback(n, record.DeclaredType())
	}
	fields := record.Children()
	if len(list.Elements) != len(fields) {
		c.Sink.Degree(list, "fields", len(fields), len(list.Elements))
	}
	paired := min(len(list.Elements), len(fields))
	for i := 0; i < paired; i++ {
		elem := list.Elements[i]
		field := fields[i]
		r := c.initElement(elem, field.DeclaredType())
		if !typesys.Compatible(r.Type, field.DeclaredType()) {
			c.Sink.TypeExpectedSpecific(elem, "initializer field", field.DeclaredType(), r.Type)
		}
	}
	for i := paired; i < len(list.Elements); i++ {
		c.initElement(list.Elements[i], typesys.NewInvalid())
	}
	return Result{Type: typesys.NewBasic(record)}
}

// initArray types every element against the array's element type. An
// over-long initializer gets one count diagnostic; unlike initStruct, which
// leaves surplus elements unchecked, every element here is still checked,
// uncapped -- there is no limit on how many bad-element diagnostics one
// aggregate can produce.
func (c *Context) initArray(n ast.Node, expected *typesys.Type) Result {
	list, ok := n.(*ast.InitList)
	if !ok {
		return c.initScalarFallback(n, expected)
	}
	size := expected.ArraySize()
	if size != typesys.ArrayUnknown && len(list.Elements) > size {
		c.Sink.Degree(list, "elements", size, len(list.Elements))
	}
	elemType := expected.Elem()
	for _, elem := range list.Elements {
		r := c.initElement(elem, elemType)
		if !typesys.Compatible(r.Type, elemType) {
			c.Sink.TypeExpectedSpecific(elem, "initializer element", elemType, r.Type)
		}
	}
	return Result{Type: typesys.DeepDuplicate(expected)}
}

func (c *Context) initScalar(n ast.Node, expected *typesys.Type) Result {
	list, ok := n.(*ast.InitList)
	if !ok {
		return c.initScalarFallback(n, expected)
	}
	if len(list.Elements) != 1 {
		c.Sink.Degree(list, "elements", 1, len(list.Elements))
		for _, elem := range list.Elements {
			c.initElement(elem, typesys.NewInvalid())
		}
		return Result{Type: typesys.DeepDuplicate(expected)}
	}
	elem := list.Elements[0]
	r := c.initElement(elem, expected)
	if !typesys.Compatible(r.Type, expected) {
		c.Sink.TypeExpectedSpecific(elem, "variable initialization", expected, r.Type)
	}
	return Result{Type: typesys.DeepDuplicate(expected)}
}

// initScalarFallback handles a bare (non-brace) initializer expression:
// the value itself is checked directly against expected.
func (c *Context) initScalarFallback(n ast.Node, expected *typesys.Type) Result {
	r := c.Expr(n)
	if !typesys.Compatible(r.Type, expected) {
		c.Sink.TypeExpectedSpecific(n, "variable initialization", expected, r.Type)
	}
	return Result{Type: typesys.DeepDuplicate(expected)}
}
