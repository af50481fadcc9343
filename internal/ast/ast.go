// Package ast defines the statement and expression node types produced by
// the parser and walked by the executor. Nodes are plain data: dispatch
// happens by type switch in the parser/executor rather than through
// virtual methods on the nodes themselves (spec.md section 9).
package ast

import "github.com/ReleasedGroup/go-basic/pkg/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() token.Position
}

// Expression is any node that evaluates to a Value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// BaseNode carries the source position shared by every concrete node.
// Concrete node types embed it to satisfy Node.
type BaseNode struct {
	Position token.Position
}

func (b BaseNode) Pos() token.Position { return b.Position }

// Line is one stored program line after parsing: its number and the
// ordered statements produced by splitting the line on ':'.
type Line struct {
	Number     int
	Statements []Statement
}

// VariableTarget names a scalar or array variable reference: a bare name
// for a scalar, or a name with an index expression list for an array
// element. A name ending in '$' is string-typed.
type VariableTarget struct {
	BaseNode
	Name    string
	Indices []Expression // nil for a scalar target
}

func (v *VariableTarget) expressionNode() {}

// IsString reports whether the target's sigil marks it as string-typed.
func (v *VariableTarget) IsString() bool {
	return len(v.Name) > 0 && v.Name[len(v.Name)-1] == '$'
}
