package parser

import (
	"github.com/isilang/isic/internal/ast"
	"github.com/isilang/isic/internal/span"
	"github.com/isilang/isic/internal/token"
)

// parseExpression is the Pratt loop: parse one prefix term, then keep
// folding in infix operators whose precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.fail("an expression")
		return nil
	}
	left := prefix()
	if p.failed() {
		return nil
	}

	for {
		infix, ok := p.infixParseFns[p.curToken.Type]
		if !ok || precedence >= precedences[p.curToken.Type] {
			return left
		}
		left = infix(left)
		if p.failed() {
			return nil
		}
	}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curToken
	val, _ := tok.Literal.(uint64)
	p.nextToken()
	return ast.ImmInt{Value: val, Span: span.New(tok.Start, tok.End)}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curToken
	val, _ := tok.Literal.(float32)
	p.nextToken()
	return ast.ImmFloat{Value: val, Span: span.New(tok.Start, tok.End)}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.curToken
	val, _ := tok.Literal.(string)
	p.nextToken()
	return ast.ImmString{Value: val, Span: span.New(tok.Start, tok.End)}
}

// parseIdentOrCallExpr parses either a bare identifier or a function call.
// Per the grammar's resolved ambiguity (§9.1 of the reference design), a
// call used as an expression does NOT consume a trailing '.' — only a call
// at statement position does.
func (p *Parser) parseIdentOrCallExpr() ast.Expression {
	if p.peekTokenIs(token.LPAREN) {
		call := p.parseFnCall()
		return call
	}
	tok := p.curToken
	id := ast.Ident{Name: tok.Lexeme, Span: span.New(tok.Start, tok.End)}
	p.nextToken()
	return ast.IdentExpr{Ident: id}
}

// parseFnCall parses `ident ( expr (, expr)* )` without the trailing '.' —
// callers at statement position are responsible for consuming it.
func (p *Parser) parseFnCall() ast.FnCall {
	start := p.curToken.Start
	name := ast.Ident{Name: p.curToken.Lexeme, Span: span.New(p.curToken.Start, p.curToken.End)}
	p.nextToken() // consume ident
	p.nextToken() // consume '('

	var args []ast.Expression
	if !p.curTokenIs(token.RPAREN) {
		for {
			arg := p.parseExpression(LOWEST)
			if p.failed() {
				return ast.FnCall{}
			}
			args = append(args, arg)
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
				continue
			}
			break
		}
	}

	end := p.curToken.End
	if !p.expect(token.RPAREN, "')' to close function call") {
		return ast.FnCall{}
	}

	return ast.FnCall{Name: name, Args: args, Span: span.New(start, end)}
}

// parsePrefixNegation parses `!expr`.
func (p *Parser) parsePrefixNegation() ast.Expression {
	bangTok := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if p.failed() {
		return nil
	}
	return ast.Negation{Operand: operand, BangSpan: span.New(bangTok.Start, bangTok.End)}
}

// parseGroupedExpression parses `( expr )`.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // consume '('
	expr := p.parseExpression(LOWEST)
	if p.failed() {
		return nil
	}
	if !p.expect(token.RPAREN, "')' to close grouped expression") {
		return nil
	}
	return expr
}

// parseBinExpr consumes curToken as a binary operator and parses its right
// operand at one precedence level higher, so same-precedence chains (e.g.
// `a + b - c`) fold left-associatively.
func (p *Parser) parseBinExpr(left ast.Expression) ast.Expression {
	op, ok := binOps[p.curToken.Type]
	if !ok {
		p.fail("a binary operator")
		return nil
	}
	prec := precedences[p.curToken.Type]
	p.nextToken()
	right := p.parseExpression(prec)
	if p.failed() {
		return nil
	}
	return ast.BinExpr{Op: op, Left: left, Right: right}
}
