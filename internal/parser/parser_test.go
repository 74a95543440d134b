package parser

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/pseudolang/pseudo/internal/ast"
	"github.com/pseudolang/pseudo/internal/diagnostics"
	"github.com/pseudolang/pseudo/internal/lexer"
	"github.com/pseudolang/pseudo/internal/lexer/token"
)

const filename = "test.pseudo"

func parseProgram(src string) (*ast.Program, *diagnostics.Collector, error) {
	collector := diagnostics.NewWithOutput(io.Discard)
	lex := lexer.New(filename, []byte(src), collector)
	parser := New(lex, collector)
	program, err := parser.Parse()
	return program, collector, err
}

func assertEqualNodes(t *testing.T, expected, got any) {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("ast mismatch:\n%s", strings.Join(pretty.Diff(expected, got), "\n"))
	}
}

type stmtTest struct {
	input string
	node  ast.Stmt
}

func TestStatements(t *testing.T) {
	tests := []stmtTest{
		{
			input: "x = 5",
			node: &ast.AssignStmt{
				Name:  token.New([]byte("x"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 1}),
				Value: &ast.NumberExpr{Value: 5},
			},
		},
		{
			input: "total = total + 1",
			node: &ast.AssignStmt{
				Name: token.New([]byte("total"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 1}),
				Value: &ast.BinaryExpr{
					Left:  &ast.IdExpr{Name: token.New([]byte("total"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 9})},
					Op:    token.PLUS,
					OpPos: token.Pos{Filename: filename, Line: 1, Column: 15},
					Right: &ast.NumberExpr{Value: 1},
				},
			},
		},
		{
			input: `output "hello"`,
			node: &ast.OutputStmt{
				Output: token.Pos{Filename: filename, Line: 1, Column: 1},
				Value:  &ast.StringExpr{Value: "hello"},
			},
		},
		{
			input: "output x",
			node: &ast.OutputStmt{
				Output: token.Pos{Filename: filename, Line: 1, Column: 1},
				Value:  &ast.IdExpr{Name: token.New([]byte("x"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 8})},
			},
		},
		{
			input: "if x > 0 then output x endif",
			node: &ast.CondStmt{
				If: token.Pos{Filename: filename, Line: 1, Column: 1},
				Cond: &ast.BinaryExpr{
					Left:  &ast.IdExpr{Name: token.New([]byte("x"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 4})},
					Op:    token.GREATER,
					OpPos: token.Pos{Filename: filename, Line: 1, Column: 6},
					Right: &ast.NumberExpr{Value: 0},
				},
				Then: []ast.Stmt{
					&ast.OutputStmt{
						Output: token.Pos{Filename: filename, Line: 1, Column: 15},
						Value:  &ast.IdExpr{Name: token.New([]byte("x"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 22})},
					},
				},
				Else: nil,
			},
		},
		{
			input: "loop while x > 0 x = x - 1 endloop",
			node: &ast.LoopStmt{
				Loop: token.Pos{Filename: filename, Line: 1, Column: 1},
				Cond: &ast.BinaryExpr{
					Left:  &ast.IdExpr{Name: token.New([]byte("x"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 12})},
					Op:    token.GREATER,
					OpPos: token.Pos{Filename: filename, Line: 1, Column: 14},
					Right: &ast.NumberExpr{Value: 0},
				},
				Body: []ast.Stmt{
					&ast.AssignStmt{
						Name: token.New([]byte("x"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 18}),
						Value: &ast.BinaryExpr{
							Left:  &ast.IdExpr{Name: token.New([]byte("x"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 22})},
							Op:    token.MINUS,
							OpPos: token.Pos{Filename: filename, Line: 1, Column: 24},
							Right: &ast.NumberExpr{Value: 1},
						},
					},
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestStatement('%q')", test.input), func(t *testing.T) {
			program, _, err := parseProgram(test.input)
			if err != nil {
				t.Fatalf("unexpected error '%v'", err)
			}
			if len(program.Body) != 1 {
				t.Fatalf("expected 1 statement, got %d", len(program.Body))
			}
			assertEqualNodes(t, test.node, program.Body[0])
		})
	}
}

type exprTest struct {
	input string
	node  ast.Expr
}

func TestExprs(t *testing.T) {
	tests := []exprTest{
		{
			// '*' binds tighter than '+'
			input: "2 + 3 * 4",
			node: &ast.BinaryExpr{
				Left:  &ast.NumberExpr{Value: 2},
				Op:    token.PLUS,
				OpPos: token.Pos{Filename: filename, Line: 1, Column: 3},
				Right: &ast.BinaryExpr{
					Left:  &ast.NumberExpr{Value: 3},
					Op:    token.STAR,
					OpPos: token.Pos{Filename: filename, Line: 1, Column: 7},
					Right: &ast.NumberExpr{Value: 4},
				},
			},
		},
		{
			// '-' chains to the left
			input: "10 - 3 - 2",
			node: &ast.BinaryExpr{
				Left: &ast.BinaryExpr{
					Left:  &ast.NumberExpr{Value: 10},
					Op:    token.MINUS,
					OpPos: token.Pos{Filename: filename, Line: 1, Column: 4},
					Right: &ast.NumberExpr{Value: 3},
				},
				Op:    token.MINUS,
				OpPos: token.Pos{Filename: filename, Line: 1, Column: 8},
				Right: &ast.NumberExpr{Value: 2},
			},
		},
		{
			// parentheses override precedence
			input: "(2 + 3) * 4",
			node: &ast.BinaryExpr{
				Left: &ast.BinaryExpr{
					Left:  &ast.NumberExpr{Value: 2},
					Op:    token.PLUS,
					OpPos: token.Pos{Filename: filename, Line: 1, Column: 4},
					Right: &ast.NumberExpr{Value: 3},
				},
				Op:    token.STAR,
				OpPos: token.Pos{Filename: filename, Line: 1, Column: 9},
				Right: &ast.NumberExpr{Value: 4},
			},
		},
		{
			input: "7 mod 2",
			node: &ast.BinaryExpr{
				Left:  &ast.NumberExpr{Value: 7},
				Op:    token.MOD,
				OpPos: token.Pos{Filename: filename, Line: 1, Column: 3},
				Right: &ast.NumberExpr{Value: 2},
			},
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestExpr('%q')", test.input), func(t *testing.T) {
			expr, err := ParseExprFrom(test.input, filename)
			if err != nil {
				t.Fatalf("unexpected error '%v'", err)
			}
			assertEqualNodes(t, test.node, expr)
		})
	}
}

// '=' inside a condition must come out of the parser as equality, not
// assignment.
func TestConditionEquality(t *testing.T) {
	program, _, err := parseProgram("if x = 5 then output 1 else output 0 endif")
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}

	expected := &ast.CondStmt{
		If: token.Pos{Filename: filename, Line: 1, Column: 1},
		Cond: &ast.BinaryExpr{
			Left:  &ast.IdExpr{Name: token.New([]byte("x"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 4})},
			Op:    token.EQUAL_EQUAL,
			OpPos: token.Pos{Filename: filename, Line: 1, Column: 6},
			Right: &ast.NumberExpr{Value: 5},
		},
		Then: []ast.Stmt{
			&ast.OutputStmt{
				Output: token.Pos{Filename: filename, Line: 1, Column: 15},
				Value:  &ast.NumberExpr{Value: 1},
			},
		},
		Else: []ast.Stmt{
			&ast.OutputStmt{
				Output: token.Pos{Filename: filename, Line: 1, Column: 29},
				Value:  &ast.NumberExpr{Value: 0},
			},
		},
	}

	if len(program.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Body))
	}
	assertEqualNodes(t, ast.Stmt(expected), program.Body[0])
}

// The condition is one flat left-associative chain: every relational and
// logical operator folds onto everything parsed so far.
func TestConditionChainsLeft(t *testing.T) {
	program, _, err := parseProgram("loop while x > 0 and y endloop")
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}

	expected := &ast.LoopStmt{
		Loop: token.Pos{Filename: filename, Line: 1, Column: 1},
		Cond: &ast.BinaryExpr{
			Left: &ast.BinaryExpr{
				Left:  &ast.IdExpr{Name: token.New([]byte("x"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 12})},
				Op:    token.GREATER,
				OpPos: token.Pos{Filename: filename, Line: 1, Column: 14},
				Right: &ast.NumberExpr{Value: 0},
			},
			Op:    token.AND,
			OpPos: token.Pos{Filename: filename, Line: 1, Column: 18},
			Right: &ast.IdExpr{Name: token.New([]byte("y"), token.ID, token.Pos{Filename: filename, Line: 1, Column: 22})},
		},
		Body: nil,
	}

	if len(program.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Body))
	}
	assertEqualNodes(t, ast.Stmt(expected), program.Body[0])
}

// Outside a condition '=' is only the assignment operator, so a second
// '=' in the same statement is a syntax error, not equality.
func TestAssignIsNotEquality(t *testing.T) {
	_, collector, err := parseProgram("x = y = 5")
	if !errors.Is(err, diagnostics.ErrorFound) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	expected := "test.pseudo:1:7: expected statement, not ="
	if len(collector.Diags) != 1 || collector.Diags[0].Message != expected {
		t.Errorf("expected diagnostic %q, got %v", expected, collector.Diags)
	}
}

type syntaxErrorTest struct {
	input   string
	message string
}

func TestSyntaxErrors(t *testing.T) {
	tests := []syntaxErrorTest{
		{"output", "test.pseudo:1:7: expected expression, not end of file"},
		{"x 5", "test.pseudo:1:3: expected =, not number literal"},
		{"then", "test.pseudo:1:1: expected statement, not then"},
		{"if x then output 1", "test.pseudo:1:19: expected endif, not end of file"},
		{"loop x = 1 endloop", "test.pseudo:1:6: expected while, not identifier"},
		{"loop while x > 0 output x", "test.pseudo:1:26: expected endloop, not end of file"},
		{"output ,", "test.pseudo:1:8: expected expression, not ,"},
		{"x = (1 + 2", "test.pseudo:1:11: expected ), not end of file"},
		{"x = not 1", "test.pseudo:1:5: expected expression, not not"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestSyntaxError('%q')", test.input), func(t *testing.T) {
			_, collector, err := parseProgram(test.input)
			if !errors.Is(err, diagnostics.ErrorFound) {
				t.Fatalf("expected syntax error, got %v", err)
			}
			if len(collector.Diags) == 0 {
				t.Fatal("expected a diagnostic, got none")
			}
			if collector.Diags[0].Message != test.message {
				t.Errorf("expected message %q, got %q", test.message, collector.Diags[0].Message)
			}
		})
	}
}

func TestMultiStatementProgram(t *testing.T) {
	src := "x = 10\nloop while x > 0\n  x = x - 1\nendloop\noutput x"
	program, _, err := parseProgram(src)
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	if len(program.Body) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(program.Body))
	}
	if _, ok := program.Body[0].(*ast.AssignStmt); !ok {
		t.Errorf("expected assignment, got %T", program.Body[0])
	}
	loop, ok := program.Body[1].(*ast.LoopStmt)
	if !ok {
		t.Fatalf("expected loop, got %T", program.Body[1])
	}
	if len(loop.Body) != 1 {
		t.Errorf("expected 1 loop body statement, got %d", len(loop.Body))
	}
	if _, ok := program.Body[2].(*ast.OutputStmt); !ok {
		t.Errorf("expected output, got %T", program.Body[2])
	}
}
