// Package surface lexes and parses the concrete syntax into the term model
// of internal/term, plus the three top-level statement kinds (axiom,
// theorem, proof) that drive a kernel.Context.
package surface

import "fmt"

// TokenType enumerates the lexical categories of the surface language.
type TokenType int

const (
	EOF TokenType = iota
	IDENT
	UNIVERSE // U<n>, e.g. U0, U12
	LAMBDA   // \ or λ
	PI       // Pi or Π
	COLON
	DOT
	COMMA
	ASSIGN // :=
	LPAREN
	RPAREN
	AXIOM
	THEOREM
	PROOF
	ILLEGAL
)

// Token is a single lexical unit with its source position, for error
// messages that point back at the offending column.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case UNIVERSE:
		return "UNIVERSE"
	case LAMBDA:
		return "LAMBDA"
	case PI:
		return "PI"
	case COLON:
		return "COLON"
	case DOT:
		return "DOT"
	case COMMA:
		return "COMMA"
	case ASSIGN:
		return "ASSIGN"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case AXIOM:
		return "AXIOM"
	case THEOREM:
		return "THEOREM"
	case PROOF:
		return "PROOF"
	default:
		return "ILLEGAL"
	}
}

var keywords = map[string]TokenType{
	"axiom":   AXIOM,
	"theorem": THEOREM,
	"proof":   PROOF,
	"Pi":      PI,
	"fun":     LAMBDA,
}
