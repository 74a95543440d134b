package ast

import (
	"fmt"

	"github.com/pseudolang/pseudo/internal/lexer/token"
)

type Stmt interface {
	Node
	stmtNode()
}

type AssignStmt struct {
	Stmt
	Name  *token.Token
	Value Expr
}

func (assign AssignStmt) String() string {
	return fmt.Sprintf("Assignment: %s", assign.Name.Name())
}
func (assign AssignStmt) stmtNode() {}

type OutputStmt struct {
	Stmt
	Output token.Pos
	Value  Expr
}

func (output OutputStmt) String() string {
	return fmt.Sprintf("Output: %s", output.Value)
}
func (output OutputStmt) stmtNode() {}

type CondStmt struct {
	Stmt
	If   token.Pos
	Cond Expr
	Then []Stmt
	// Empty exactly when the 'else' clause was not written.
	Else []Stmt
}

func (cond CondStmt) String() string {
	return fmt.Sprintf("If: %s", cond.Cond)
}
func (cond CondStmt) stmtNode() {}

type LoopStmt struct {
	Stmt
	Loop token.Pos
	Cond Expr
	Body []Stmt
}

func (loop LoopStmt) String() string {
	return fmt.Sprintf("Loop: %s", loop.Cond)
}
func (loop LoopStmt) stmtNode() {}
