package ast

import (
	"fmt"

	"github.com/pseudolang/pseudo/internal/lexer/token"
)

// Operators accepted inside the condition of an 'if' or 'loop while'.
// They all live at one precedence level and chain left-associatively.
var CONDITION map[token.Kind]bool = map[token.Kind]bool{
	token.EQUAL:      true,
	token.BANG_EQUAL: true,
	token.GREATER:    true,
	token.GREATER_EQ: true,
	token.LESS:       true,
	token.LESS_EQ:    true,
	token.AND:        true,
	token.OR:         true,
}

var TERM map[token.Kind]bool = map[token.Kind]bool{
	token.MINUS: true,
	token.PLUS:  true,
}

var FACTOR map[token.Kind]bool = map[token.Kind]bool{
	token.SLASH: true,
	token.STAR:  true,
	token.MOD:   true,
	token.DIV:   true,
}

type Expr interface {
	Node
	exprNode()
}

type NumberExpr struct {
	Expr
	Value int64
}

func (number NumberExpr) String() string {
	return fmt.Sprintf("Number: %d", number.Value)
}
func (number NumberExpr) exprNode() {}

type StringExpr struct {
	Expr
	Value string
}

func (str StringExpr) String() string {
	return fmt.Sprintf("String: %s", str.Value)
}
func (str StringExpr) exprNode() {}

type IdExpr struct {
	Expr
	Name *token.Token
}

func (idExpr IdExpr) String() string {
	return idExpr.Name.Name()
}
func (idExpr IdExpr) exprNode() {}

type BinaryExpr struct {
	Expr
	Left  Expr
	Op    token.Kind
	OpPos token.Pos
	Right Expr
}

func (binary BinaryExpr) String() string {
	return fmt.Sprintf("BinOp: %s %s %s", binary.Left, binary.Op, binary.Right)
}
func (binary BinaryExpr) exprNode() {}
