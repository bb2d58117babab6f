// Package symbol is the analyzer's read-only view of whatever the (external)
// symbol-table builder produced: named declarations, their kind, their
// declared type, and -- for structs -- their fields in declaration order.
// Nothing in this package, or in package check/driver, ever mutates a
// Symbol (the lone exception, symbol.Anonymous, documents itself).
package symbol

import (
	"github.com/google/uuid"

	"github.com/susji/minic/typesys"
)

// Kind classifies what a declaration names.
type Kind int

const (
	KindType Kind = iota
	KindStruct
	KindVariable
	KindParam
	KindEnumConstant
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindStruct:
		return "struct"
	case KindVariable:
		return "variable"
	case KindParam:
		return "parameter"
	case KindEnumConstant:
		return "enum constant"
	case KindFunction:
		return "function"
	default:
		return "symbol"
	}
}

// Symbol is the opaque handle the analyzer reads. It satisfies
// typesys.SymbolRef structurally, so a *typesys.Type can hold one as its
// Basic payload without typesys importing this package.
type Symbol interface {
	typesys.SymbolRef

	// ID is the symbol-table builder's durable identity for this
	// declaration -- stable across analyzer runs over the same build,
	// unlike an ast.NodeId (which is only a tree-local arena index).
	ID() uuid.UUID
	Kind() Kind
	// DeclaredType is the symbol's own type: a variable/param/enum
	// constant's declared type, a function's signature, or -- for a
	// Struct/Type-kind symbol naming a builtin or record -- the Basic
	// type that names the symbol itself.
	DeclaredType() *typesys.Type
	// Children returns a struct symbol's fields, in declaration order (the
	// same order they appear in an aggregate initializer). Empty for every
	// other kind.
	Children() []Symbol
	// Size is the symbol's declared size in bytes; meaningful
	// only for Type-kind builtin symbols (typesys.Size reads it through
	// a structural interface, not this one, to avoid an import cycle).
	Size() int
}

type entry struct {
	id       uuid.UUID
	ident    string
	kind     Kind
	declared *typesys.Type
	children []Symbol
	size     int
	mask     typesys.Mask
}

func (e *entry) ID() uuid.UUID               { return e.id }
func (e *entry) Ident() string                { return e.ident }
func (e *entry) Kind() Kind                   { return e.kind }
func (e *entry) DeclaredType() *typesys.Type  { return e.declared }
func (e *entry) Children() []Symbol           { return e.children }
func (e *entry) Size() int                    { return e.size }
func (e *entry) TypeMask() typesys.Mask       { return e.mask }

// NewBuiltin registers a builtin scalar type symbol (int, bool, char, ...).
// Its own DeclaredType is the Basic type naming itself.
func NewBuiltin(name string, size int, mask typesys.Mask) Symbol {
	e := &entry{id: uuid.New(), ident: name, kind: KindType, size: size, mask: mask}
	e.declared = typesys.NewBasic(e)
	return e
}

// NewStruct registers a record type with its fields. fields must already be
// Param- or Variable-kind symbols naming each field (Children order is
// declaration order).
func NewStruct(name string, fields []Symbol) Symbol {
	e := &entry{id: uuid.New(), ident: name, kind: KindStruct, children: fields}
	e.declared = typesys.NewBasic(e)
	return e
}

// NewField is a convenience constructor for a struct member: a
// Variable-kind symbol whose declared type is the field's type.
func NewField(name string, declared *typesys.Type) Symbol {
	return &entry{id: uuid.New(), ident: name, kind: KindVariable, declared: declared}
}

// NewVariable registers a local/global variable symbol.
func NewVariable(name string, declared *typesys.Type) Symbol {
	return &entry{id: uuid.New(), ident: name, kind: KindVariable, declared: declared}
}

// NewParam registers a function parameter symbol.
func NewParam(name string, declared *typesys.Type) Symbol {
	return &entry{id: uuid.New(), ident: name, kind: KindParam, declared: declared}
}

// NewEnumConstant registers an enum constant; its declared type is
// conventionally the enclosing enum's underlying type (usually int).
func NewEnumConstant(name string, declared *typesys.Type) Symbol {
	return &entry{id: uuid.New(), ident: name, kind: KindEnumConstant, declared: declared}
}

// NewFunction registers a function symbol; declared is its Function type.
func NewFunction(name string, declared *typesys.Type) Symbol {
	return &entry{id: uuid.New(), ident: name, kind: KindFunction, declared: declared}
}

// Child looks up a named field on a Struct-kind symbol.
func Child(record Symbol, name string) Symbol {
	if record == nil {
		return nil
	}
	for _, c := range record.Children() {
		if c.Ident() == name {
			return c
		}
	}
	return nil
}
