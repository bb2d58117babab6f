package symbol

import (
	"github.com/google/uuid"

	"github.com/susji/minic/typesys"
)

// Anonymous is the mutable symbol a compound literal's owning node carries:
// unlike every other Symbol, which the analyzer only reads, an Anonymous
// symbol's declared type is written by the Expression Analyzer itself once
// the literal's shape is known, since nothing in the (external)
// declaration analyzer ever named this storage.
type Anonymous struct {
	id       uuid.UUID
	declared *typesys.Type
}

func NewAnonymous() *Anonymous {
	return &Anonymous{id: uuid.New(), declared: typesys.NewInvalid()}
}

func (a *Anonymous) ID() uuid.UUID                   { return a.id }
func (a *Anonymous) Ident() string                   { return "<compound-literal>" }
func (a *Anonymous) Kind() Kind                      { return KindVariable }
func (a *Anonymous) DeclaredType() *typesys.Type     { return a.declared }
func (a *Anonymous) Children() []Symbol              { return nil }
func (a *Anonymous) Size() int                       { return 0 }
func (a *Anonymous) TypeMask() typesys.Mask          { return 0 }
func (a *Anonymous) SetDeclaredType(t *typesys.Type) { a.declared = t }
