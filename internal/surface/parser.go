package surface

import (
	"math/big"

	"github.com/sinepia-lang/sinepia/internal/term"
)

// Parser is a small recursive-descent parser over a two-token lookahead
// window (curToken/peekToken). There are no infix operators to Pratt-parse,
// only binders, application by juxtaposition, and parenthesized grouping.
type Parser struct {
	lex *Lexer

	curToken  Token
	peekToken Token
}

// NewParser returns a Parser ready to read statements from src.
func NewParser(src string) *Parser {
	p := &Parser{lex: New(src)}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curTokenIs(t TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expect(t TokenType) (Token, error) {
	if !p.curTokenIs(t) {
		return Token{}, newParseError(p.curToken, "expected %s, got %s", t, p.curToken.Type)
	}
	tok := p.curToken
	p.nextToken()
	return tok, nil
}

// ParseExpr parses src as a single standalone expression, with no trailing
// period and nothing else following it. Used by callers that already know
// the statement kind and only need the expression text parsed, such as the
// gRPC kernel service's Submit handler.
func ParseExpr(src string) (term.Expr, error) {
	p := NewParser(src)
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.curTokenIs(EOF) {
		return nil, newParseError(p.curToken, "unexpected trailing input after expression: %s", p.curToken.Type)
	}
	return e, nil
}

// ParseStatements reads every statement in src in order, stopping at EOF.
func ParseStatements(src string) ([]Statement, error) {
	p := NewParser(src)
	var stmts []Statement
	for !p.curTokenIs(EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (Statement, error) {
	switch p.curToken.Type {
	case AXIOM:
		return p.parseAxiomOrTheorem(true)
	case THEOREM:
		return p.parseAxiomOrTheorem(false)
	case PROOF:
		return p.parseProof()
	default:
		return nil, newParseError(p.curToken, "expected axiom, theorem, or proof, got %s", p.curToken.Type)
	}
}

func (p *Parser) parseAxiomOrTheorem(isAxiom bool) (Statement, error) {
	p.nextToken() // consume 'axiom' / 'theorem'
	nameTok, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(DOT); err != nil {
		return nil, err
	}
	name := term.NewVar(nameTok.Lexeme)
	if isAxiom {
		return AxiomStmt{Name: name, Type: typ}, nil
	}
	return TheoremStmt{Name: name, Type: typ}, nil
}

func (p *Parser) parseProof() (Statement, error) {
	p.nextToken() // consume 'proof'
	nameTok, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	proof, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(DOT); err != nil {
		return nil, err
	}
	return ProofStmt{Name: term.NewVar(nameTok.Lexeme), Proof: proof}, nil
}

// parseExpr parses one full expression: a binder, if one starts here,
// otherwise a juxtaposition-application chain of atoms.
func (p *Parser) parseExpr() (term.Expr, error) {
	switch p.curToken.Type {
	case LAMBDA:
		return p.parseBinder(false)
	case PI:
		return p.parseBinder(true)
	default:
		return p.parseApp()
	}
}

func (p *Parser) parseBinder(isPi bool) (term.Expr, error) {
	p.nextToken() // consume 'fun'/'\'/'Pi'/'Π'
	boundTok, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(COLON); err != nil {
		return nil, err
	}
	ann, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(COMMA); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	bound := term.NewVar(boundTok.Lexeme)
	if isPi {
		return term.NewPi(bound, ann, body), nil
	}
	return term.NewLam(bound, ann, body), nil
}

// parseApp parses a left-associative chain of atoms: "f a b" parses as
// ((f a) b). Each atom may itself be a parenthesized full expression,
// including a binder, so "(\x : T, x) y" is valid.
func (p *Parser) parseApp() (term.Expr, error) {
	fn, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.startsAtom() {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		fn = term.App{Fn: fn, Arg: arg}
	}
	return fn, nil
}

func (p *Parser) startsAtom() bool {
	switch p.curToken.Type {
	case IDENT, UNIVERSE, LPAREN:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAtom() (term.Expr, error) {
	switch p.curToken.Type {
	case IDENT:
		tok := p.curToken
		p.nextToken()
		return term.Var{Name: term.NewVar(tok.Lexeme)}, nil
	case UNIVERSE:
		tok := p.curToken
		p.nextToken()
		level, ok := new(big.Int).SetString(tok.Lexeme[1:], 10)
		if !ok {
			return nil, newParseError(tok, "invalid universe literal %q", tok.Lexeme)
		}
		return term.Uni{Level: term.Universe{Level: level}}, nil
	case LPAREN:
		p.nextToken()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, newParseError(p.curToken, "expected an expression, got %s", p.curToken.Type)
	}
}
