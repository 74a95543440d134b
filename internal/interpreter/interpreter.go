package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/pseudolang/pseudo/internal/ast"
	"github.com/pseudolang/pseudo/internal/lexer/token"
)

// Env maps a variable name to its current value. There is no declaration
// step and no block scoping: the first assignment creates the binding and
// it stays visible until the program ends.
type Env map[string]int64

type Interpreter struct {
	env Env
	out io.Writer
}

func New() *Interpreter {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput sends 'output' statements to w instead of stdout. Tests
// use it to capture program output.
func NewWithOutput(w io.Writer) *Interpreter {
	return &Interpreter{env: Env{}, out: w}
}

// Lookup reports the current value of a variable, if bound.
func (i *Interpreter) Lookup(name string) (int64, bool) {
	value, ok := i.env[name]
	return value, ok
}

// Run executes the program top to bottom. The first runtime error aborts
// execution; no further statements run.
func (i *Interpreter) Run(program *ast.Program) error {
	for _, statement := range program.Body {
		err := i.execStmt(statement)
		if err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execStmt(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case *ast.AssignStmt:
		value, err := i.evalExpr(stmt.Value)
		if err != nil {
			return err
		}
		i.env[stmt.Name.Name()] = value
		return nil
	case *ast.OutputStmt:
		// A literal string is emitted as-is, without evaluation. A
		// string can never be the result of a computation, so this is
		// the only place one is legal.
		if str, ok := stmt.Value.(*ast.StringExpr); ok {
			fmt.Fprintln(i.out, str.Value)
			return nil
		}
		value, err := i.evalExpr(stmt.Value)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, value)
		return nil
	case *ast.CondStmt:
		cond, err := i.evalExpr(stmt.Cond)
		if err != nil {
			return err
		}
		branch := stmt.Then
		if cond == 0 {
			branch = stmt.Else
		}
		for _, statement := range branch {
			err := i.execStmt(statement)
			if err != nil {
				return err
			}
		}
		return nil
	case *ast.LoopStmt:
		// An always-true condition loops forever. That is the
		// program's business, not an error.
		for {
			cond, err := i.evalExpr(stmt.Cond)
			if err != nil {
				return err
			}
			if cond == 0 {
				return nil
			}
			for _, statement := range stmt.Body {
				err := i.execStmt(statement)
				if err != nil {
					return err
				}
			}
		}
	default:
		return &RuntimeError{
			Kind:    InternalError,
			Message: fmt.Sprintf("unknown statement: %s", stmt),
		}
	}
}

func (i *Interpreter) evalExpr(expr ast.Expr) (int64, error) {
	switch expr := expr.(type) {
	case *ast.NumberExpr:
		return expr.Value, nil
	case *ast.StringExpr:
		return 0, &RuntimeError{
			Kind:    TypeError,
			Message: "cannot evaluate string as number",
		}
	case *ast.IdExpr:
		value, ok := i.env[expr.Name.Name()]
		if !ok {
			return 0, &RuntimeError{
				Kind:    UndefinedVariable,
				Pos:     expr.Name.Pos,
				Message: fmt.Sprintf("undefined variable: %s", expr.Name.Name()),
			}
		}
		return value, nil
	case *ast.BinaryExpr:
		return i.evalBinary(expr)
	default:
		return 0, &RuntimeError{
			Kind:    InternalError,
			Message: fmt.Sprintf("unknown expression: %s", expr),
		}
	}
}

func (i *Interpreter) evalBinary(expr *ast.BinaryExpr) (int64, error) {
	// Both operands are always evaluated before the operator is applied.
	// 'and' and 'or' do not short-circuit.
	left, err := i.evalExpr(expr.Left)
	if err != nil {
		return 0, err
	}
	right, err := i.evalExpr(expr.Right)
	if err != nil {
		return 0, err
	}

	switch expr.Op {
	case token.PLUS:
		return left + right, nil
	case token.MINUS:
		return left - right, nil
	case token.STAR:
		return left * right, nil
	case token.SLASH:
		if right == 0 {
			return 0, &RuntimeError{
				Kind:    DivisionByZero,
				Pos:     expr.OpPos,
				Message: "division by zero",
			}
		}
		return left / right, nil
	case token.MOD:
		if right == 0 {
			return 0, &RuntimeError{
				Kind:    DivisionByZero,
				Pos:     expr.OpPos,
				Message: "modulo by zero",
			}
		}
		return left % right, nil
	case token.EQUAL_EQUAL:
		return boolToInt(left == right), nil
	case token.BANG_EQUAL:
		return boolToInt(left != right), nil
	case token.GREATER:
		return boolToInt(left > right), nil
	case token.GREATER_EQ:
		return boolToInt(left >= right), nil
	case token.LESS:
		return boolToInt(left < right), nil
	case token.LESS_EQ:
		return boolToInt(left <= right), nil
	case token.AND:
		return boolToInt(left != 0 && right != 0), nil
	case token.OR:
		return boolToInt(left != 0 || right != 0), nil
	default:
		return 0, &RuntimeError{
			Kind:    InternalError,
			Pos:     expr.OpPos,
			Message: fmt.Sprintf("unknown binary operator: %s", expr.Op),
		}
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
