// Package ast is the analyzer's view of the parsed tree: the external
// parser and symbol-table builder hand it a tree of these nodes (tag,
// operator spelling already resolved to an OpKind, children), and this
// package's core writes back onto the tree each expression node's derived
// type and, for member access, the resolved field symbol (on the
// field-name identifier); identifier literals arrive with their symbol
// already resolved.
package ast

import (
	"github.com/susji/minic/symbol"
	"github.com/susji/minic/typesys"
)

// NodeId is a tree-local arena index, assigned when a node is built. Unlike
// a symbol.Symbol's uuid.UUID, it has no meaning outside this particular
// parse -- it is not a durable identity, just a map key for per-node
// bookkeeping.
type NodeId uint64

var nextID NodeId

func newID() NodeId {
	nextID++
	return nextID
}

// Position is a source location, line/col only: reconstructing anything
// richer than pass-through location is out of scope for this core.
type Position struct {
	Line, Col int
}

// Common is embedded by every node. It carries the two fields the analyzer
// mutates -- DT (derived type) and Sym (resolved symbol, for member access
// and identifier literals) -- plus the identity and location the parser
// assigns once and never changes.
type Common struct {
	id  NodeId
	pos Position

	// DT is the derived type this node's analysis produced. It is
	// owned exclusively by this node: every derivation that builds it
	// deep-duplicates rather than aliases an existing Type.
	DT *typesys.Type
	// Sym is the resolved symbol. For an identifier literal the
	// symbol-table builder sets it before analysis; the Expression
	// Analyzer sets it on a member access's field-name identifier (the
	// resolved field) and on a compound literal (an anonymous symbol
	// receiving the literal's derived type).
	Sym symbol.Symbol
}

func newCommon(pos Position) *Common {
	return &Common{id: newID(), pos: pos}
}

func (c *Common) Id() NodeId    { return c.id }
func (c *Common) Pos() Position { return c.pos }
func (c *Common) Type() *typesys.Type {
	if c.DT == nil {
		return typesys.NewInvalid()
	}
	return c.DT
}

// SetType overwrites the node's derived type. Concrete node types normally
// set DT directly (it is an exported, promoted field); SetType exists so
// code working through the Node interface -- the Initializer Analyzer,
// which recurses over whatever node shape an aggregate's elements turn out
// to be -- can write it without a type switch.
func (c *Common) SetType(t *typesys.Type) { c.DT = t }

// Node is the interface every syntax tree node satisfies.
type Node interface {
	Id() NodeId
	Pos() Position
	// Type returns the node's derived type, or Invalid if analysis has
	// not set one yet.
	Type() *typesys.Type
	SetType(t *typesys.Type)
}
