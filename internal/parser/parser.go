// Package parser implements IsiLang's Pratt/precedence-climbing parser: it
// turns a token stream into a Program AST or fails at the furthest-advanced
// offset with a human-readable description of the rule it was matching.
package parser

import (
	"fmt"

	"github.com/isilang/isic/internal/ast"
	"github.com/isilang/isic/internal/diagnostics"
	"github.com/isilang/isic/internal/pipeline"
	"github.com/isilang/isic/internal/span"
	"github.com/isilang/isic/internal/token"
)

type Parser struct {
	stream    pipeline.TokenStream
	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	// err is set the moment any rule fails; parsing stops advancing once
	// set, and ParseProgram returns it instead of a Program.
	err *diagnostics.DiagnosticError
	// furthest is the highest offset any attempted match reached, used to
	// report the error at the furthest-advanced position as required.
	furthest int
	// lastEnd is the end offset of the most recently consumed closing
	// delimiter, used by statement rules whose span must cover a
	// '}'-terminated block.
	lastEnd int
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Precedence levels, lowest to highest. && and || share one level per the
// grammar's precedence table; PREFIX binds tighter than any binary
// operator so `!a && b` parses as `(!a) && b`.
const (
	LOWEST = iota
	LOGIC
	COMPARISON
	SUM
	PRODUCT
	MODULO
	PREFIX
)

var precedences = map[token.TokenType]int{
	token.AND:     LOGIC,
	token.OR:      LOGIC,
	token.LT:      COMPARISON,
	token.GT:      COMPARISON,
	token.LTE:     COMPARISON,
	token.GTE:     COMPARISON,
	token.EQ:      COMPARISON,
	token.NOT_EQ:  COMPARISON,
	token.PLUS:    SUM,
	token.MINUS:   SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:   PRODUCT,
	token.PERCENT: MODULO,
}

var binOps = map[token.TokenType]ast.BinOp{
	token.PLUS:    ast.Add,
	token.MINUS:   ast.Sub,
	token.ASTERISK: ast.Mul,
	token.SLASH:   ast.Div,
	token.PERCENT: ast.Mod,
	token.GT:      ast.Gt,
	token.LT:      ast.Lt,
	token.GTE:     ast.Geq,
	token.LTE:     ast.Leq,
	token.EQ:      ast.Eq,
	token.NOT_EQ:  ast.Neq,
	token.AND:     ast.And,
	token.OR:      ast.Or,
}

func New(stream pipeline.TokenStream) *Parser {
	p := &Parser{stream: stream}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:  p.parseIdentOrCallExpr,
		token.INT:    p.parseIntegerLiteral,
		token.FLOAT:  p.parseFloatLiteral,
		token.STRING: p.parseStringLiteral,
		token.BANG:   p.parsePrefixNegation,
		token.LPAREN: p.parseGroupedExpression,
	}

	p.infixParseFns = map[token.TokenType]infixParseFn{}
	for tt := range precedences {
		p.registerInfix(tt, p.parseBinExpr)
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerInfix(tt token.TokenType, fn infixParseFn) {
	p.infixParseFns[tt] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	peeked := p.stream.Peek(1)
	if len(peeked) > 0 {
		p.peekToken = peeked[0]
	} else {
		p.peekToken = token.Token{Type: token.EOF}
	}
	p.stream.Next()
}

func (p *Parser) curTokenIs(tt token.TokenType) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt token.TokenType) bool { return p.peekToken.Type == tt }

// expect consumes curToken if it matches tt and advances, otherwise fails
// the parse at curToken's offset naming what was expected.
func (p *Parser) expect(tt token.TokenType, expected string) bool {
	if p.curTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.fail(expected)
	return false
}

// fail records a parse failure at the furthest offset reached so far; once
// set, the parser keeps running (so callers can bail out cleanly), and a
// later failure replaces the recorded one only if it is at the same or a
// further offset.
func (p *Parser) fail(expected string) {
	if p.curToken.Start < p.furthest && p.err != nil {
		return
	}
	p.furthest = p.curToken.Start
	got := string(p.curToken.Type)
	if p.curToken.Type == token.EOF {
		got = "end of input"
	}
	p.err = diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrParseUnexpected,
		span.New(p.curToken.Start, p.curToken.End), expected, fmt.Sprintf("%q", got))
}

func (p *Parser) failed() bool { return p.err != nil }

// ParseProgram parses a full `programa ... fimprog.` unit, returning either
// the Program or the first parse error encountered.
func ParseProgram(stream pipeline.TokenStream) (*ast.Program, *diagnostics.DiagnosticError) {
	p := New(stream)
	prog := p.parseProgram()
	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

func (p *Parser) parseProgram() *ast.Program {
	if !p.expect(token.PROGRAMA, "'programa'") {
		return nil
	}

	var statements []ast.Statement
	for !p.curTokenIs(token.FIMPROG) && !p.curTokenIs(token.EOF) && !p.failed() {
		stmt := p.parseStatement()
		if p.failed() {
			break
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}

	if p.failed() {
		return nil
	}

	if !p.expect(token.FIMPROG, "'fimprog'") {
		return nil
	}
	if !p.expect(token.DOT, "'.' after 'fimprog'") {
		return nil
	}

	return &ast.Program{Statements: statements}
}
