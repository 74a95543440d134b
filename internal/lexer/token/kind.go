package token

type Kind int

const (
	// EOF
	EOF Kind = iota
	INVALID

	// Identifier
	ID

	// Literals
	INTEGER_LITERAL
	STRING_LITERAL

	// Keywords
	OUTPUT
	IF
	THEN
	ELSE
	ENDIF
	LOOP
	ENDLOOP
	WHILE
	AND
	OR
	NOT
	MOD
	DIV

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN

	// ,
	COMMA

	// =
	//
	// The lexer emits EQUAL for every '=' in the source. The parser
	// decides whether it means assignment or equality from where it
	// appears (see parser.parseCondition).
	EQUAL
	// ==, never lexed. The parser rewrites EQUAL into EQUAL_EQUAL when
	// '=' appears inside a condition, so the evaluator sees an
	// unambiguous operator.
	EQUAL_EQUAL
	// !=
	BANG_EQUAL

	// >
	GREATER
	// >=
	GREATER_EQ
	// <
	LESS
	// <=
	LESS_EQ

	// +
	PLUS
	// -
	MINUS
	// *
	STAR
	// /
	SLASH
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"output":  OUTPUT,
	"if":      IF,
	"then":    THEN,
	"else":    ELSE,
	"endif":   ENDIF,
	"loop":    LOOP,
	"endloop": ENDLOOP,
	"while":   WHILE,
	"and":     AND,
	"or":      OR,
	"not":     NOT,
	"mod":     MOD,
	"div":     DIV,
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "end of file"
	case INVALID:
		return "INVALID"
	case ID:
		return "identifier"
	case INTEGER_LITERAL:
		return "number literal"
	case STRING_LITERAL:
		return "string literal"
	case OUTPUT:
		return "output"
	case IF:
		return "if"
	case THEN:
		return "then"
	case ELSE:
		return "else"
	case ENDIF:
		return "endif"
	case LOOP:
		return "loop"
	case ENDLOOP:
		return "endloop"
	case WHILE:
		return "while"
	case AND:
		return "and"
	case OR:
		return "or"
	case NOT:
		return "not"
	case MOD:
		return "mod"
	case DIV:
		return "div"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case COMMA:
		return ","
	case EQUAL:
		return "="
	case EQUAL_EQUAL:
		return "=="
	case BANG_EQUAL:
		return "!="
	case GREATER:
		return ">"
	case GREATER_EQ:
		return ">="
	case LESS:
		return "<"
	case LESS_EQ:
		return "<="
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	default:
		return "UNKNOWN"
	}
}
