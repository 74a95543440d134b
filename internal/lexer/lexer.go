package lexer

import (
	"fmt"
	"os"
	"strconv"
	"unicode"

	"github.com/pseudolang/pseudo/internal/diagnostics"
	"github.com/pseudolang/pseudo/internal/lexer/token"
)

const eof = '\000'

type Lexer struct {
	Collector *diagnostics.Collector

	src    []byte
	offset int
	pos    token.Pos

	// start offset of the token being lexed and offset of the last
	// reported lexical error, so that Peek followed by Next does not
	// report the same byte twice
	tokStart  int
	errOffset int
}

func New(filename string, src []byte, collector *diagnostics.Collector) *Lexer {
	lexer := new(Lexer)

	lexer.Collector = collector
	lexer.pos = token.NewPosition(filename, 1, 1)
	lexer.src = src
	lexer.offset = 0
	lexer.errOffset = -1

	return lexer
}

func NewFromFilePath(path string, collector *diagnostics.Collector) (*Lexer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l := New(path, src, collector)
	return l, nil
}

func (lex *Lexer) Filename() string { return lex.pos.Filename }

func (lex *Lexer) Peek() *token.Token {
	prevPos := lex.pos
	prevOffset := lex.offset

	token := lex.Next()

	lex.pos.SetPosition(prevPos)
	lex.offset = prevOffset
	return token
}

func (lex *Lexer) Skip() {
	lex.Next()
}

func (lex *Lexer) NextIs(expectedKind token.Kind) bool {
	token := lex.Peek()
	return token.Kind == expectedKind
}

// Next returns the next token in the input. Once the input is exhausted,
// every call returns EOF.
func (lex *Lexer) Next() *token.Token {
	lex.skipWhitespace()
	lex.tokStart = lex.offset
	character := lex.peekChar()

	tok := &token.Token{}
	tok.Kind = token.INVALID

	if character == eof {
		lex.consumeTokenNoLex(tok, token.EOF)
		return tok
	}

	token := lex.getToken(tok, character)
	return token
}

// Useful for testing
func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok := lex.Next()
		if tok.Kind == token.INVALID {
			return nil, diagnostics.ErrorFound
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, nil
}

func (lex *Lexer) getToken(tok *token.Token, ch byte) *token.Token {
	switch ch {
	case '(':
		lex.consumeTokenNoLex(tok, token.OPEN_PAREN)
		lex.nextChar()
	case ')':
		lex.consumeTokenNoLex(tok, token.CLOSE_PAREN)
		lex.nextChar()
	case ',':
		lex.consumeTokenNoLex(tok, token.COMMA)
		lex.nextChar()
	case '+':
		lex.consumeTokenNoLex(tok, token.PLUS)
		lex.nextChar()
	case '-':
		lex.consumeTokenNoLex(tok, token.MINUS)
		lex.nextChar()
	case '*':
		lex.consumeTokenNoLex(tok, token.STAR)
		lex.nextChar()
	case '/':
		lex.consumeTokenNoLex(tok, token.SLASH)
		lex.nextChar()
	case '=':
		// A single '=' is always one token. Whether it means
		// assignment or equality is decided by the parser.
		lex.consumeTokenNoLex(tok, token.EQUAL)
		lex.nextChar()
	case '"':
		lex.getStringLit(tok)
	case '!':
		tok.Pos = lex.pos
		lex.nextChar() // !

		next := lex.peekChar()
		if next == '=' {
			lex.nextChar() // =
			tok.Kind = token.BANG_EQUAL
			return tok
		}

		invalidCharacter := diagnostics.Diag{
			Message: fmt.Sprintf(
				"%s:%d:%d: invalid character !",
				tok.Pos.Filename,
				tok.Pos.Line,
				tok.Pos.Column,
			),
		}
		lex.report(invalidCharacter)
		return tok
	case '>':
		tok.Kind = token.GREATER
		tok.Pos = lex.pos
		lex.nextChar() // >

		next := lex.peekChar()
		if next != '=' {
			return tok
		}
		lex.nextChar() // =
		tok.Kind = token.GREATER_EQ
	case '<':
		tok.Kind = token.LESS
		tok.Pos = lex.pos
		lex.nextChar() // <

		next := lex.peekChar()
		if next != '=' {
			return tok
		}
		lex.nextChar() // =
		tok.Kind = token.LESS_EQ
	default:
		if unicode.IsLetter(rune(ch)) {
			lex.getIdOrKeyword(tok)
		} else if ch >= '0' && ch <= '9' {
			lex.getNumberLit(tok)
		} else {
			tokenPosition := lex.pos
			invalidCharacter := diagnostics.Diag{
				Message: fmt.Sprintf("%s:%d:%d: invalid character %c", tokenPosition.Filename, tokenPosition.Line, tokenPosition.Column, ch),
			}
			lex.report(invalidCharacter)
		}
	}
	return tok
}

func (lex *Lexer) getStringLit(tok *token.Token) {
	tok.Pos = lex.pos
	lex.nextChar() // "

	// No escape sequences: every byte up to the closing quote is taken
	// verbatim.
	str := lex.readWhile(func(ch byte) bool { return ch != '"' })

	ch := lex.peekChar()
	if ch != '"' {
		unterminatedStringLiteral := diagnostics.Diag{
			Message: fmt.Sprintf(
				"%s:%d:%d: unterminated string literal",
				tok.Pos.Filename,
				tok.Pos.Line,
				tok.Pos.Column,
			),
		}
		lex.report(unterminatedStringLiteral)
		return
	}
	lex.nextChar() // "

	tok.Kind = token.STRING_LITERAL
	tok.Lexeme = str
}

func (lex *Lexer) getNumberLit(tok *token.Token) {
	tok.Pos = lex.pos

	number := lex.readWhile(func(chr byte) bool { return chr >= '0' && chr <= '9' })

	// Every number literal must fit a 64-bit signed integer.
	_, err := strconv.ParseInt(string(number), 10, 64)
	if err != nil {
		invalidNumber := diagnostics.Diag{
			Message: fmt.Sprintf(
				"%s:%d:%d: number literal out of range: %s",
				tok.Pos.Filename,
				tok.Pos.Line,
				tok.Pos.Column,
				number,
			),
		}
		lex.report(invalidNumber)
		return
	}

	tok.Kind = token.INTEGER_LITERAL
	tok.Lexeme = number
}

func (lex *Lexer) getIdOrKeyword(tok *token.Token) {
	tok.Pos = lex.pos

	identifier := lex.readWhile(
		func(chr byte) bool { return unicode.IsNumber(rune(chr)) || unicode.IsLetter(rune(chr)) },
	)
	tok.Kind = token.ID
	tok.Lexeme = identifier
	keyword, ok := token.KEYWORDS[string(identifier)]
	if ok {
		tok.Kind = keyword
	}
}

func (lex *Lexer) report(diag diagnostics.Diag) {
	if lex.tokStart == lex.errOffset {
		return
	}
	lex.errOffset = lex.tokStart
	lex.Collector.ReportAndSave(diag)
}

func (lex *Lexer) consumeTokenNoLex(tok *token.Token, kind token.Kind) {
	tok.Lexeme = nil
	tok.Kind = kind
	tok.Pos = lex.pos
}

func (lex *Lexer) skipWhitespace() {
	lex.readWhile(func(ch byte) bool {
		return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
	})
}

func (lex *Lexer) readWhile(isValid func(byte) bool) []byte {
	var start, end int
	start = lex.offset

	for {
		character := lex.peekChar()
		if character == eof {
			break
		}

		if isValid(character) {
			lex.nextChar()
		} else {
			break
		}
	}

	end = lex.offset

	return lex.src[start:end]
}

func (lex *Lexer) nextChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	lex.pos.Move(character)
	lex.offset++
	return character
}

func (lex *Lexer) peekChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	return character
}
