package symbol

import "github.com/susji/minic/typesys"

// Builtin indexes the builtin-types table ({void, bool, char, int, ...}).
type Builtin int

const (
	Void Builtin = iota
	Bool
	Char
	Int
	Long
	Float
)

// Builtins is a read-only table of the language's scalar builtin symbols.
// The (external, out of scope) declaration analyzer and lexer/parser share
// exactly this table with the core; the core never constructs a builtin
// symbol itself.
type Builtins struct {
	byEnum map[Builtin]Symbol
	byName map[string]Symbol
}

// NewBuiltins constructs the standard table. Word size is platform-specific
// and only affects typesys.Size, not any symbol here.
func NewBuiltins() *Builtins {
	mk := func(name string, size int, mask typesys.Mask) Symbol {
		return NewBuiltin(name, size, mask)
	}
	full := typesys.MaskNumeric | typesys.MaskOrdinal | typesys.MaskEquality |
		typesys.MaskAssignable | typesys.MaskCondition
	b := &Builtins{
		byEnum: map[Builtin]Symbol{
			Void:  mk("void", 0, 0),
			Bool:  mk("bool", 1, typesys.MaskEquality|typesys.MaskAssignable|typesys.MaskCondition),
			Char:  mk("char", 1, full),
			Int:   mk("int", 4, full),
			Long:  mk("long", 8, full),
			Float: mk("float", 4, typesys.MaskNumeric|typesys.MaskOrdinal|typesys.MaskEquality|typesys.MaskAssignable),
		},
	}
	b.byName = map[string]Symbol{}
	for _, s := range b.byEnum {
		b.byName[s.Ident()] = s
	}
	return b
}

func (b *Builtins) Get(which Builtin) Symbol { return b.byEnum[which] }
func (b *Builtins) Lookup(name string) Symbol {
	s, ok := b.byName[name]
	if !ok {
		return nil
	}
	return s
}

func (b *Builtins) Void() *typesys.Type  { return b.Get(Void).DeclaredType() }
func (b *Builtins) Bool() *typesys.Type  { return b.Get(Bool).DeclaredType() }
func (b *Builtins) Char() *typesys.Type  { return b.Get(Char).DeclaredType() }
func (b *Builtins) Int() *typesys.Type   { return b.Get(Int).DeclaredType() }
func (b *Builtins) Long() *typesys.Type  { return b.Get(Long).DeclaredType() }
func (b *Builtins) Float() *typesys.Type { return b.Get(Float).DeclaredType() }
