// Package typesys captures everything this analyzer needs to know about the
// type of an expression: a tagged, tree-shaped Type, the derivations that
// build new types out of old ones, and the two relations ("equal" and
// "compatible") code elsewhere in the analyzer runs types through.
//
// Every Type is owned exclusively by whatever holds it -- there is no
// sharing between nodes. A derivation that wants to "reuse" part of an
// existing Type always deep-duplicates it first.
package typesys

import (
	"fmt"
	"strings"
)

// Variant tags the payload a Type actually carries.
type Variant int

const (
	// Invalid is the zero value on purpose: a Type built without a
	// constructor (e.g. the zero value of a map) reads as the bottom
	// element, never as a silently-wrong Basic.
	Invalid Variant = iota
	BasicV
	PointerV
	ArrayV
	FunctionV
)

func (v Variant) String() string {
	switch v {
	case BasicV:
		return "basic"
	case PointerV:
		return "pointer"
	case ArrayV:
		return "array"
	case FunctionV:
		return "function"
	default:
		return "invalid"
	}
}

// Mask is the classification bitmask a Basic type's referenced symbol
// carries. Pointer and Invalid types answer the classification predicates
// without consulting a mask at all; see IsNumeric et al in classify.go.
type Mask uint8

const (
	MaskNumeric Mask = 1 << iota
	MaskOrdinal
	MaskEquality
	MaskAssignable
	MaskCondition
)

func (m Mask) Has(bit Mask) bool { return m&bit != 0 }

// SymbolRef is the minimal view of a symbol the type algebra itself needs:
// enough to decide equality and classification. The fuller read-only
// contract (kind, declared type, children, size) lives in package symbol,
// which also provides the concrete implementation; SymbolRef is satisfied
// structurally by anything in that package without an import cycle.
type SymbolRef interface {
	Ident() string
	TypeMask() Mask
}

// ArrayUnknown is the Array size sentinel meaning "unspecified/unknown
// length".
const ArrayUnknown = -1

// Type is a tagged value: exactly one of the payload fields below is
// meaningful, selected by Variant. Treat a Type as immutable once built;
// every derivation returns a freshly-owned value rather than mutating its
// inputs.
type Type struct {
	variant Variant

	basic SymbolRef // BasicV

	pointee *Type // PointerV

	elem *Type // ArrayV
	size int   // ArrayV: element count, or ArrayUnknown

	ret      *Type   // FunctionV
	params   []*Type // FunctionV
	variadic bool    // FunctionV
}

// NewInvalid returns the error-absorbing bottom type.
func NewInvalid() *Type { return &Type{variant: Invalid} }

// NewBasic returns a Type naming a builtin or user-defined symbol.
func NewBasic(sym SymbolRef) *Type {
	if sym == nil {
		panic("typesys: NewBasic with nil symbol")
	}
	return &Type{variant: BasicV, basic: sym}
}

// NewPointer returns a pointer-to-pointee Type. NewPointer takes ownership
// of pointee; callers that still need their own copy must DeepDuplicate it
// first.
func NewPointer(pointee *Type) *Type {
	if pointee == nil {
		panic("typesys: NewPointer with nil pointee")
	}
	return &Type{variant: PointerV, pointee: pointee}
}

// NewArray returns an array-of-elem Type. size is a non-negative element
// count, or ArrayUnknown for "unspecified length" (e.g. `int a[]`).
func NewArray(elem *Type, size int) *Type {
	if elem == nil {
		panic("typesys: NewArray with nil element")
	}
	if size < ArrayUnknown {
		panic("typesys: NewArray with invalid size")
	}
	return &Type{variant: ArrayV, elem: elem, size: size}
}

// NewFunction returns a function Type with the given return type and
// ordered parameter types.
func NewFunction(ret *Type, params []*Type, variadic bool) *Type {
	if ret == nil {
		panic("typesys: NewFunction with nil return type")
	}
	return &Type{variant: FunctionV, ret: ret, params: params, variadic: variadic}
}

func (t *Type) Variant() Variant { return t.variant }
func (t *Type) IsInvalid() bool  { return t == nil || t.variant == Invalid }
func (t *Type) IsBasic() bool    { return t != nil && t.variant == BasicV }
func (t *Type) IsPointer() bool  { return t != nil && t.variant == PointerV }
func (t *Type) IsArray() bool    { return t != nil && t.variant == ArrayV }
func (t *Type) IsFunction() bool { return t != nil && t.variant == FunctionV }

// BasicSymbol returns the referenced symbol for a Basic type, or nil.
func (t *Type) BasicSymbol() SymbolRef {
	if !t.IsBasic() {
		return nil
	}
	return t.basic
}

// Pointee returns the pointed-to type for a Pointer type, or nil.
func (t *Type) Pointee() *Type {
	if !t.IsPointer() {
		return nil
	}
	return t.pointee
}

// Elem returns the element type for an Array type, or nil.
func (t *Type) Elem() *Type {
	if !t.IsArray() {
		return nil
	}
	return t.elem
}

// ArraySize returns an Array type's declared size, or ArrayUnknown if it is
// not an Array.
func (t *Type) ArraySize() int {
	if !t.IsArray() {
		return ArrayUnknown
	}
	return t.size
}

// Return returns a Function type's return type, or nil.
func (t *Type) Return() *Type {
	if !t.IsFunction() {
		return nil
	}
	return t.ret
}

// Params returns a Function type's ordered parameter types.
func (t *Type) Params() []*Type {
	if !t.IsFunction() {
		return nil
	}
	return t.params
}

// Variadic reports whether a Function type accepts trailing arguments
// beyond its fixed parameter list.
func (t *Type) Variadic() bool {
	return t.IsFunction() && t.variadic
}

// DeepDuplicate returns a structural copy of t, owned independently of it.
// Mutating the copy (there is no mutator today, but arrays/functions may
// gain one) must never be visible through t.
func DeepDuplicate(t *Type) *Type {
	if t == nil {
		return NewInvalid()
	}
	switch t.variant {
	case BasicV:
		return NewBasic(t.basic)
	case PointerV:
		return NewPointer(DeepDuplicate(t.pointee))
	case ArrayV:
		return NewArray(DeepDuplicate(t.elem), t.size)
	case FunctionV:
		params := make([]*Type, len(t.params))
		for i, p := range t.params {
			params[i] = DeepDuplicate(p)
		}
		return NewFunction(DeepDuplicate(t.ret), params, t.variadic)
	default:
		return NewInvalid()
	}
}

// DeriveFrom is an alias for DeepDuplicate: the semantic marker used where a
// unary operator preserves its operand's type verbatim.
func DeriveFrom(t *Type) *Type { return DeepDuplicate(t) }

// DeriveFromTwo returns a duplicate of l. The caller must already have
// established Compatible(l, r); this derivation is left-biased and does not
// itself re-check compatibility.
func DeriveFromTwo(l, r *Type) *Type {
	return DeepDuplicate(l)
}

// DeriveUnified returns a single type representing both l and r (used for
// the ternary operator's two arms): a duplicate of l if the two are
// structurally Equal, else DeriveFromTwo(l, r).
func DeriveUnified(l, r *Type) *Type {
	if Equal(l, r) {
		return DeepDuplicate(l)
	}
	return DeriveFromTwo(l, r)
}

// DeriveBase returns a duplicate of t's element type for a Pointer or Array
// t. Callers must check IsPointer/IsArray (or tolerate Invalid) first.
func DeriveBase(t *Type) *Type {
	if t.IsInvalid() {
		return NewInvalid()
	}
	switch t.variant {
	case PointerV:
		return DeepDuplicate(t.pointee)
	case ArrayV:
		return DeepDuplicate(t.elem)
	default:
		return NewInvalid()
	}
}

// DerivePointer returns a pointer to a duplicate of t.
func DerivePointer(t *Type) *Type {
	return NewPointer(DeepDuplicate(t))
}

// DeriveReturn returns a duplicate of t's return type for a Function t, or,
// for a pointer to function, recurses through the pointer -- function
// pointers are transparently callable.
func DeriveReturn(t *Type) *Type {
	if t.IsInvalid() {
		return NewInvalid()
	}
	if t.IsPointer() {
		return DeriveReturn(t.pointee)
	}
	if !t.IsFunction() {
		return NewInvalid()
	}
	return DeepDuplicate(t.ret)
}

// Callable reports whether t can appear as a call's callee: a Function
// type, a pointer to one, or Invalid (the absorbing bottom element).
func Callable(t *Type) bool {
	if t.IsInvalid() {
		return true
	}
	if t.IsFunction() {
		return true
	}
	if t.IsPointer() {
		return t.pointee.IsFunction()
	}
	return false
}

// functionOf unwraps a Function type directly, or through one pointer
// indirection, for callers that already know t is Callable.
func functionOf(t *Type) *Type {
	if t.IsPointer() {
		return t.pointee
	}
	return t
}

// FunctionOf exposes functionOf for callers (e.g. call-argument checking)
// that need the underlying Function type of a callable value.
func FunctionOf(t *Type) *Type { return functionOf(t) }

// Equal is structural equality: two Basics are equal iff they reference the
// same symbol; Function equality defers to Compatible.
func Equal(a, b *Type) bool {
	if a.IsInvalid() || b.IsInvalid() {
		return true
	}
	if a.variant != b.variant {
		return false
	}
	switch a.variant {
	case BasicV:
		return a.basic == b.basic
	case PointerV:
		return Equal(a.pointee, b.pointee)
	case ArrayV:
		return a.size == b.size && Equal(a.elem, b.elem)
	case FunctionV:
		return Compatible(a, b) && Compatible(b, a)
	default:
		return true
	}
}

// Compatible decides "will actual do where model is expected". It is the
// weaker-than-equality relation used at assignment, argument, return, and
// initializer sites. Parameters are asymmetric: (actual, model).
func Compatible(actual, model *Type) bool {
	if actual.IsInvalid() || model.IsInvalid() {
		return true
	}
	switch model.variant {
	case FunctionV:
		if !actual.IsFunction() {
			return false
		}
		if actual.variadic != model.variadic {
			return false
		}
		if len(actual.params) != len(model.params) {
			return false
		}
		for i := range model.params {
			if !Equal(actual.params[i], model.params[i]) {
				return false
			}
		}
		return Equal(actual.ret, model.ret)
	case PointerV:
		if actual.IsPointer() {
			if isVoidPointerPointee(model.pointee) || isVoidPointerPointee(actual.pointee) {
				return true
			}
			return Compatible(actual.pointee, model.pointee) || Equal(actual.pointee, model.pointee)
		}
		if actual.IsArray() {
			if isVoidPointerPointee(model.pointee) {
				return true
			}
			return Compatible(actual.elem, model.pointee) || Equal(actual.elem, model.pointee)
		}
		if actual.IsBasic() && actual.basic.TypeMask().Has(MaskNumeric) {
			return true
		}
		return false
	case ArrayV:
		if !actual.IsArray() {
			return false
		}
		if model.size != ArrayUnknown && actual.size != model.size {
			return false
		}
		return Compatible(actual.elem, model.elem) || Equal(actual.elem, model.elem)
	case BasicV:
		if actual.IsPointer() {
			return model.basic.TypeMask().Has(MaskNumeric)
		}
		if actual.IsArray() {
			return false
		}
		if !actual.IsBasic() {
			return false
		}
		return actual.basic == model.basic
	default:
		return true
	}
}

func isVoidPointerPointee(t *Type) bool {
	if !t.IsBasic() {
		return false
	}
	return t.basic.Ident() == "void"
}

// Size returns a type's size in the target's abstract machine. Size(Invalid)
// is 0; arrays are elements times element size; pointers and functions are
// one platform word; basic types defer to their symbol's declared size.
func Size(t *Type, wordSize int) int {
	if t.IsInvalid() {
		return 0
	}
	switch t.variant {
	case ArrayV:
		n := t.size
		if n < 0 {
			n = 0
		}
		return n * Size(t.elem, wordSize)
	case PointerV, FunctionV:
		return wordSize
	case BasicV:
		return basicSize(t.basic)
	default:
		return 0
	}
}

// basicSizer lets a concrete symbol report its own declared size without
// typesys importing package symbol (which would cycle back here).
type basicSizer interface {
	Size() int
}

func basicSize(sym SymbolRef) int {
	if s, ok := sym.(basicSizer); ok {
		return s.Size()
	}
	return 0
}

// String renders t as a C-style declarator with no embedded name.
func (t *Type) String() string {
	return StringEmbedded(t, "")
}

// StringEmbedded renders t, threading embedded (typically a variable or
// parameter name, or the empty string) through the derivation the way a C
// declarator reads: pointers prepend '*', arrays append "[n]"/"[]",
// functions wrap "(embedded)(params)" and recurse on the return type.
func StringEmbedded(t *Type, embedded string) string {
	if t.IsInvalid() {
		if embedded == "" {
			return "<invalid>"
		}
		return "<invalid> " + embedded
	}
	switch t.variant {
	case BasicV:
		if embedded == "" {
			return t.basic.Ident()
		}
		return t.basic.Ident() + " " + embedded
	case PointerV:
		return StringEmbedded(t.pointee, "*"+embedded)
	case ArrayV:
		suffix := "[]"
		if t.size != ArrayUnknown {
			suffix = fmt.Sprintf("[%d]", t.size)
		}
		return StringEmbedded(t.elem, embedded+suffix)
	case FunctionV:
		parts := make([]string, len(t.params))
		for i, p := range t.params {
			parts[i] = StringEmbedded(p, "")
		}
		if t.variadic {
			parts = append(parts, "...")
		}
		wrapped := embedded
		if wrapped != "" {
			wrapped = "(" + wrapped + ")"
		}
		return StringEmbedded(t.ret, fmt.Sprintf("%s(%s)", wrapped, strings.Join(parts, ", ")))
	default:
		return "<invalid>"
	}
}
