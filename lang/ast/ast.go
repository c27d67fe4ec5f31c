// Package ast defines the Go representation of the abstract syntax tree
// consumed by the evaluator. The lexer/parser that produces this tree from
// program source is out of scope for this module; programs instead arrive
// as a JSON-encoded tree decoded by DecodeProgram. The evaluator only ever
// needs to know the shape described here.
package ast

import "github.com/mna/evalscript/lang/token"

// Kind identifies the concrete shape of a Node. The evaluator dispatches on
// Kind with a single switch statement per spec, rather than a reflective
// visitor.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindList
	KindRange
	KindPrint
	KindVariable
	KindBinaryOp
	KindBoolOp
	KindVariableBinopReassign
	KindVariableIncrDecr
	KindIfElseBlock
	KindIfStmt
	KindElseStmt
	KindForStmt
	KindWhileStmt
	KindSwitchStmt
	KindCaseStmt
	KindDefaultStmt
	KindBreakStmt
	KindReturnStmt
	KindFuncDecl
	KindFuncCall
	KindFuncBlock

	maxKind
)

var kindNames = [...]string{
	KindLiteral:               "Literal",
	KindList:                  "List",
	KindRange:                 "Range",
	KindPrint:                 "Print",
	KindVariable:              "Variable",
	KindBinaryOp:              "BinaryOp",
	KindBoolOp:                "BoolOp",
	KindVariableBinopReassign: "VariableBinopReassign",
	KindVariableIncrDecr:      "VariableIncrDecr",
	KindIfElseBlock:           "IfElseBlock",
	KindIfStmt:                "IfStmt",
	KindElseStmt:              "ElseStmt",
	KindForStmt:               "ForStmt",
	KindWhileStmt:             "WhileStmt",
	KindSwitchStmt:            "SwitchStmt",
	KindCaseStmt:              "CaseStmt",
	KindDefaultStmt:           "DefaultStmt",
	KindBreakStmt:             "BreakStmt",
	KindReturnStmt:            "ReturnStmt",
	KindFuncDecl:              "FuncDecl",
	KindFuncCall:              "FuncCall",
	KindFuncBlock:             "FuncBlock",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Node is any node of the tree. Every concrete node type in this package
// implements it.
type Node interface {
	Kind() Kind
	Pos() token.Pos
}

// Expr is a node that produces a value when evaluated.
type Expr interface {
	Node
	expr()
}

// Stmt is a node executed for effect. Some statements (the ones listed in
// scope-needing constructs) also produce a control-flow result; that is
// modeled by the evaluator, not by this interface.
type Stmt interface {
	Node
	stmt()
}

// Program is the root of the tree: an ordered sequence of top-level
// statements, corresponding to the parser's "eval"-tagged node.
type Program struct {
	Stmts []Stmt
}
