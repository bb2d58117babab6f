package typesys

// The classification predicates below are what every contextual rule in
// package check is built out of (is this numeric, is this a condition, is
// this callable). Invalid answers every one of them with true: this is the
// error-containment device that keeps one bad subexpression from
// cascading diagnostics through every ancestor. Once a subexpression is
// known-bad, its containing expression behaves as though it satisfies any
// context, so the analyzer emits at most one diagnostic per root cause.
//
// Pointers satisfy every predicate except IsNumeric: pointer/pointer
// arithmetic-style operators are not modeled as "numeric", but a pointer is
// otherwise ordinal, equality-comparable, an assignment target, and a
// valid condition (a non-null check).
//
// Arrays satisfy none of these directly -- they only participate via
// Compatible's decay rule (Array actual against a Pointer model), never
// through these predicates.

func IsNumeric(t *Type) bool {
	if t.IsInvalid() {
		return true
	}
	return t.IsBasic() && t.basic.TypeMask().Has(MaskNumeric)
}

func IsOrdinal(t *Type) bool {
	if t.IsInvalid() {
		return true
	}
	if t.IsPointer() {
		return true
	}
	return t.IsBasic() && t.basic.TypeMask().Has(MaskOrdinal)
}

func IsEquality(t *Type) bool {
	if t.IsInvalid() {
		return true
	}
	if t.IsPointer() {
		return true
	}
	return t.IsBasic() && t.basic.TypeMask().Has(MaskEquality)
}

func IsAssignable(t *Type) bool {
	if t.IsInvalid() {
		return true
	}
	if t.IsPointer() {
		return true
	}
	return t.IsBasic() && t.basic.TypeMask().Has(MaskAssignable)
}

func IsCondition(t *Type) bool {
	if t.IsInvalid() {
		return true
	}
	if t.IsPointer() {
		return true
	}
	return t.IsBasic() && t.basic.TypeMask().Has(MaskCondition)
}

// IsCallable is Callable's predicate form, kept alongside the others for
// call sites in package check that want the uniform is* spelling.
func IsCallable(t *Type) bool {
	return Callable(t)
}
