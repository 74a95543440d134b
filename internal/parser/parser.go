package parser

import (
	"fmt"
	"strconv"

	"github.com/pseudolang/pseudo/internal/ast"
	"github.com/pseudolang/pseudo/internal/diagnostics"
	"github.com/pseudolang/pseudo/internal/lexer"
	"github.com/pseudolang/pseudo/internal/lexer/token"
)

type Parser struct {
	lex       *lexer.Lexer
	collector *diagnostics.Collector
}

func New(lex *lexer.Lexer, collector *diagnostics.Collector) *Parser {
	return &Parser{lex: lex, collector: collector}
}

// Parse consumes the whole token stream and returns the program root, or
// the first error. There is no recovery and no partial tree.
func (p *Parser) Parse() (*ast.Program, error) {
	var body []ast.Stmt
	for {
		if p.lex.NextIs(token.EOF) {
			break
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return &ast.Program{Body: body}, nil
}

// Useful for testing
func ParseExprFrom(expr, filename string) (ast.Expr, error) {
	collector := diagnostics.New()

	src := []byte(expr)
	lex := lexer.New(filename, src, collector)
	parser := New(lex, collector)

	exprAst, err := parser.parseExpr()
	if err != nil {
		return nil, err
	}
	return exprAst, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	tok := p.lex.Peek()
	switch tok.Kind {
	case token.ID:
		return p.parseAssign()
	case token.OUTPUT:
		return p.parseOutput()
	case token.IF:
		return p.parseIf()
	case token.LOOP:
		return p.parseLoop()
	case token.INVALID:
		// the lexer already reported the lexical error
		return nil, diagnostics.ErrorFound
	default:
		pos := tok.Pos
		unexpectedToken := diagnostics.Diag{
			Message: fmt.Sprintf(
				"%s:%d:%d: expected statement, not %s",
				pos.Filename,
				pos.Line,
				pos.Column,
				tok.Kind,
			),
		}
		p.collector.ReportAndSave(unexpectedToken)
		return nil, diagnostics.ErrorFound
	}
}

func (p *Parser) parseAssign() (*ast.AssignStmt, error) {
	name, ok := p.eat(token.ID)
	// should never hit, parseStmt peeked an identifier
	if !ok {
		return nil, diagnostics.ErrorFound
	}

	_, ok = p.eat(token.EQUAL)
	if !ok {
		return nil, diagnostics.ErrorFound
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.AssignStmt{Name: name, Value: value}, nil
}

func (p *Parser) parseOutput() (*ast.OutputStmt, error) {
	output, ok := p.eat(token.OUTPUT)
	if !ok {
		return nil, diagnostics.ErrorFound
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.OutputStmt{Output: output.Pos, Value: value}, nil
}

func (p *Parser) parseIf() (*ast.CondStmt, error) {
	ifTok, ok := p.eat(token.IF)
	if !ok {
		return nil, diagnostics.ErrorFound
	}

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	_, ok = p.eat(token.THEN)
	if !ok {
		return nil, diagnostics.ErrorFound
	}

	var thenBranch []ast.Stmt
	for {
		if p.lex.NextIs(token.ELSE) || p.lex.NextIs(token.ENDIF) || p.lex.NextIs(token.EOF) {
			break
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		thenBranch = append(thenBranch, stmt)
	}

	var elseBranch []ast.Stmt
	if p.lex.NextIs(token.ELSE) {
		p.lex.Skip()
		for {
			if p.lex.NextIs(token.ENDIF) || p.lex.NextIs(token.EOF) {
				break
			}
			stmt, err := p.parseStmt()
			if err != nil {
				return nil, err
			}
			elseBranch = append(elseBranch, stmt)
		}
	}

	_, ok = p.eat(token.ENDIF)
	if !ok {
		return nil, diagnostics.ErrorFound
	}

	return &ast.CondStmt{If: ifTok.Pos, Cond: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) parseLoop() (*ast.LoopStmt, error) {
	loopTok, ok := p.eat(token.LOOP)
	if !ok {
		return nil, diagnostics.ErrorFound
	}

	_, ok = p.eat(token.WHILE)
	if !ok {
		return nil, diagnostics.ErrorFound
	}

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}

	var body []ast.Stmt
	for {
		if p.lex.NextIs(token.ENDLOOP) || p.lex.NextIs(token.EOF) {
			break
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	_, ok = p.eat(token.ENDLOOP)
	if !ok {
		return nil, diagnostics.ErrorFound
	}

	return &ast.LoopStmt{Loop: loopTok.Pos, Cond: cond, Body: body}, nil
}

// parseCondition parses the boolean head of an 'if' or 'loop while'. This
// is the one place where '=' means equality: the EQUAL token is folded
// into a BinaryExpr carrying EQUAL_EQUAL, so the tree is unambiguous and
// the evaluator never needs to know where the expression came from.
func (p *Parser) parseCondition() (ast.Expr, error) {
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	for {
		next := p.lex.Peek()
		if _, ok := ast.CONDITION[next.Kind]; !ok {
			break
		}
		p.lex.Skip()

		op := next.Kind
		if op == token.EQUAL {
			op = token.EQUAL_EQUAL
		}

		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Left: lhs, Op: op, OpPos: next.Pos, Right: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		next := p.lex.Peek()
		if _, ok := ast.TERM[next.Kind]; !ok {
			break
		}
		p.lex.Skip()

		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Left: lhs, Op: next.Kind, OpPos: next.Pos, Right: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	lhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		next := p.lex.Peek()
		if _, ok := ast.FACTOR[next.Kind]; !ok {
			break
		}
		p.lex.Skip()

		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Left: lhs, Op: next.Kind, OpPos: next.Pos, Right: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	tok := p.lex.Peek()
	switch tok.Kind {
	case token.INTEGER_LITERAL:
		p.lex.Skip()
		value, err := strconv.ParseInt(string(tok.Lexeme), 10, 64)
		// should never hit, the lexer validated the literal
		if err != nil {
			pos := tok.Pos
			invalidNumber := diagnostics.Diag{
				Message: fmt.Sprintf(
					"%s:%d:%d: invalid number literal: %s",
					pos.Filename,
					pos.Line,
					pos.Column,
					tok.Lexeme,
				),
			}
			p.collector.ReportAndSave(invalidNumber)
			return nil, diagnostics.ErrorFound
		}
		return &ast.NumberExpr{Value: value}, nil
	case token.STRING_LITERAL:
		p.lex.Skip()
		return &ast.StringExpr{Value: string(tok.Lexeme)}, nil
	case token.ID:
		p.lex.Skip()
		return &ast.IdExpr{Name: tok}, nil
	case token.OPEN_PAREN:
		p.lex.Skip() // (
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		_, ok := p.eat(token.CLOSE_PAREN)
		if !ok {
			return nil, diagnostics.ErrorFound
		}
		return expr, nil
	case token.INVALID:
		return nil, diagnostics.ErrorFound
	default:
		pos := tok.Pos
		expectedExpr := diagnostics.Diag{
			Message: fmt.Sprintf(
				"%s:%d:%d: expected expression, not %s",
				pos.Filename,
				pos.Line,
				pos.Column,
				tok.Kind,
			),
		}
		p.collector.ReportAndSave(expectedExpr)
		return nil, diagnostics.ErrorFound
	}
}

// eat consumes the current token when it has the expected kind. A
// mismatch reports expected vs. actual with the token's position.
func (p *Parser) eat(expectedKind token.Kind) (*token.Token, bool) {
	tok := p.lex.Peek()
	if tok.Kind != expectedKind {
		if tok.Kind == token.INVALID {
			return tok, false
		}
		pos := tok.Pos
		unexpectedToken := diagnostics.Diag{
			Message: fmt.Sprintf(
				"%s:%d:%d: expected %s, not %s",
				pos.Filename,
				pos.Line,
				pos.Column,
				expectedKind,
				tok.Kind,
			),
		}
		p.collector.ReportAndSave(unexpectedToken)
		return tok, false
	}
	p.lex.Skip()
	return tok, true
}
