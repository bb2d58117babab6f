// Package fixture decodes YAML-described demo/test programs into the
// ast/symbol trees this repository's core consumes. It plays the role of
// the external parser and declaration analyzer for exactly one purpose:
// producing ready-to-check trees for cmd/minicsema and for package tests,
// the same way the teacher's own test corpus was hand-written C0 source --
// here expressed as data instead of a second parser.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TypeRef is a type expression in its YAML-serializable form: a base name
// plus pointer/array suffixes, mirroring ast.TypeExpr.
type TypeRef struct {
	Base    string `yaml:"base"`
	Pointer int    `yaml:"pointer,omitempty"`
	Arrays  []int  `yaml:"arrays,omitempty"`
}

// FieldDef names one struct field or function parameter.
type FieldDef struct {
	Name string  `yaml:"name"`
	Type TypeRef `yaml:"type"`
}

// StructDef declares a record type and its fields, in declaration order.
type StructDef struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// VarDecl declares a global variable.
type VarDecl struct {
	Name string  `yaml:"name"`
	Type TypeRef `yaml:"type"`
}

// FuncDecl declares a function: its signature and, optionally, a body.
// A FuncDecl with no Body is a prototype only.
type FuncDecl struct {
	Name     string     `yaml:"name"`
	Return   TypeRef    `yaml:"return"`
	Params   []FieldDef `yaml:"params,omitempty"`
	Variadic bool       `yaml:"variadic,omitempty"`
	Body     []Stmt     `yaml:"body,omitempty"`
}

// Program is the root of a fixture file.
type Program struct {
	Structs   []StructDef `yaml:"structs,omitempty"`
	Globals   []VarDecl   `yaml:"globals,omitempty"`
	Functions []FuncDecl  `yaml:"functions,omitempty"`
}

// Stmt is one statement. Kind selects which of the remaining fields apply;
// unused fields are simply left zero. Recognized kinds: "decl", "block",
// "if", "while", "do_while", "for", "return", "break", "expr".
type Stmt struct {
	Kind string `yaml:"kind"`

	// decl
	Name string   `yaml:"name,omitempty"`
	Type *TypeRef `yaml:"type,omitempty"`
	Init *Expr    `yaml:"init,omitempty"`

	// block
	Stmts []Stmt `yaml:"stmts,omitempty"`

	// if / while / do_while / for
	Cond    *Expr `yaml:"cond,omitempty"`
	Then    *Stmt `yaml:"then,omitempty"`
	Else    *Stmt `yaml:"else,omitempty"`
	Body    *Stmt `yaml:"body,omitempty"`
	ForInit *Stmt `yaml:"for_init,omitempty"`
	Post    *Expr `yaml:"post,omitempty"`

	// return
	Value *Expr `yaml:"value,omitempty"`

	// expr
	Expr *Expr `yaml:"expr,omitempty"`
}

// Expr is one expression. Kind selects which of the remaining fields
// apply. Recognized kinds: "ident", "int", "char", "bool", "str",
// "binary", "unary", "ternary", "index", "call", "cast", "sizeof_type",
// "sizeof_value", "init_list", "compound_literal".
type Expr struct {
	Kind string `yaml:"kind"`

	Name string `yaml:"name,omitempty"`
	Int  *int64 `yaml:"int,omitempty"`
	Char string `yaml:"char,omitempty"`
	Bool bool   `yaml:"bool,omitempty"`
	Str  string `yaml:"str,omitempty"`

	Op      string `yaml:"op,omitempty"`
	Left    *Expr  `yaml:"left,omitempty"`
	Right   *Expr  `yaml:"right,omitempty"`
	Operand *Expr  `yaml:"operand,omitempty"`
	Cond    *Expr  `yaml:"cond,omitempty"`

	Callee *Expr  `yaml:"callee,omitempty"`
	Args   []Expr `yaml:"args,omitempty"`

	Type     *TypeRef `yaml:"type,omitempty"`
	Value    *Expr    `yaml:"value,omitempty"`
	Elements []Expr   `yaml:"elements,omitempty"`
	InitList *Expr    `yaml:"init_list,omitempty"`
}

// Load reads and decodes a fixture file from path.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}
	var p Program
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("fixture: parsing %s: %w", path, err)
	}
	return &p, nil
}
