package parser

import (
	"github.com/isilang/isic/internal/ast"
	"github.com/isilang/isic/internal/span"
	"github.com/isilang/isic/internal/token"
)

// parseStatement dispatches on the current token to the matching statement
// rule: multi_decl | fn_call | assignment | conditional | while_loop |
// do_while_loop.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.DECLARE:
		return p.parseMultiVarDecl()
	case token.SE:
		return p.parseConditional()
	case token.ENQUANTO:
		return p.parseWhileLoop()
	case token.FACA:
		return p.parseDoWhileLoop()
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseAssignment()
		}
		if p.peekTokenIs(token.LPAREN) {
			return p.parseFnCallStatement()
		}
		p.fail("assignment ':=' or function call")
		return nil
	default:
		p.fail("a statement ('declare', 'se', 'enquanto', 'faca', or an identifier)")
		return nil
	}
}

// parseMultiVarDecl parses `declare a: int, b: float.` and its variants; every
// decl before a ',' separator shares nothing with its neighbors but the
// statement's trailing '.'.
func (p *Parser) parseMultiVarDecl() ast.Statement {
	start := p.curToken.Start
	p.nextToken() // consume 'declare'

	var decls []ast.VarDecl
	for {
		d := p.parseVarDecl()
		if p.failed() {
			return nil
		}
		decls = append(decls, d)

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}

	end := p.curToken.Start
	if !p.expect(token.DOT, "'.' after declaration") {
		return nil
	}

	return ast.MultiVarDecl{Decls: decls, Span: span.New(start, end)}
}

// parseVarDecl parses `ident : ident` — no trailing '.' here, that belongs
// to the enclosing MultiVarDecl.
func (p *Parser) parseVarDecl() ast.VarDecl {
	start := p.curToken.Start
	if !p.curTokenIs(token.IDENT) {
		p.fail("a variable name")
		return ast.VarDecl{}
	}
	name := ast.Ident{Name: p.curToken.Lexeme, Span: span.New(p.curToken.Start, p.curToken.End)}
	p.nextToken()

	if !p.expect(token.COLON, "':' in declaration") {
		return ast.VarDecl{}
	}

	if !p.curTokenIs(token.IDENT) {
		p.fail("a type name")
		return ast.VarDecl{}
	}
	ty := ast.Ident{Name: p.curToken.Lexeme, Span: span.New(p.curToken.Start, p.curToken.End)}
	end := p.curToken.End
	p.nextToken()

	return ast.VarDecl{VarName: name, VarType: ty, Span: span.New(start, end)}
}

// parseAssignment parses `ident := expr.`.
func (p *Parser) parseAssignment() ast.Statement {
	start := p.curToken.Start
	name := ast.Ident{Name: p.curToken.Lexeme, Span: span.New(p.curToken.Start, p.curToken.End)}
	p.nextToken()

	if !p.expect(token.ASSIGN, "':='") {
		return nil
	}

	val := p.parseExpression(LOWEST)
	if p.failed() {
		return nil
	}
	end := p.curToken.Start
	if !p.expect(token.DOT, "'.' after assignment") {
		return nil
	}

	return ast.Assignment{Name: name, Value: val, Span: span.New(start, end)}
}

// parseFnCallStatement parses `ident(args).` — statement position requires
// the trailing '.', unlike the same call parsed as an expression.
func (p *Parser) parseFnCallStatement() ast.Statement {
	call := p.parseFnCall()
	if p.failed() {
		return nil
	}
	if !p.expect(token.DOT, "'.' after function call") {
		return nil
	}
	return ast.FnCallStmt{Call: call}
}

// parseConditional parses `se (c) entao {T} (senao {F})?`.
func (p *Parser) parseConditional() ast.Statement {
	start := p.curToken.Start
	p.nextToken() // consume 'se'

	if !p.expect(token.LPAREN, "'(' after 'se'") {
		return nil
	}
	cond := p.parseExpression(LOWEST)
	if p.failed() {
		return nil
	}
	if !p.expect(token.RPAREN, "')' after condition") {
		return nil
	}
	if !p.expect(token.ENTAO, "'entao'") {
		return nil
	}
	taken := p.parseBlock()
	if p.failed() {
		return nil
	}

	var notTaken []ast.Statement
	if p.curTokenIs(token.SENAO) {
		p.nextToken()
		notTaken = p.parseBlock()
		if p.failed() {
			return nil
		}
	}

	return ast.Conditional{Cond: cond, Taken: taken, NotTaken: notTaken, Span: span.New(start, p.lastEnd)}
}

// parseWhileLoop parses `enquanto (c) {B}`.
func (p *Parser) parseWhileLoop() ast.Statement {
	start := p.curToken.Start
	p.nextToken() // consume 'enquanto'

	if !p.expect(token.LPAREN, "'(' after 'enquanto'") {
		return nil
	}
	cond := p.parseExpression(LOWEST)
	if p.failed() {
		return nil
	}
	if !p.expect(token.RPAREN, "')' after condition") {
		return nil
	}
	body := p.parseBlock()
	if p.failed() {
		return nil
	}
	return ast.WhileLoop{Cond: cond, Body: body, Span: span.New(start, p.lastEnd)}
}

// parseDoWhileLoop parses `faca {B} enquanto (c).`.
func (p *Parser) parseDoWhileLoop() ast.Statement {
	start := p.curToken.Start
	p.nextToken() // consume 'faca'

	body := p.parseBlock()
	if p.failed() {
		return nil
	}
	if !p.expect(token.ENQUANTO, "'enquanto'") {
		return nil
	}
	if !p.expect(token.LPAREN, "'(' after 'enquanto'") {
		return nil
	}
	cond := p.parseExpression(LOWEST)
	if p.failed() {
		return nil
	}
	if !p.expect(token.RPAREN, "')' after condition") {
		return nil
	}
	end := p.curToken.Start
	if !p.expect(token.DOT, "'.' after do-while condition") {
		return nil
	}
	return ast.DoWhileLoop{Cond: cond, Body: body, Span: span.New(start, end)}
}

// parseBlock parses `{ statement* }`.
func (p *Parser) parseBlock() []ast.Statement {
	if !p.expect(token.LBRACE, "'{'") {
		return nil
	}
	var stmts []ast.Statement
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) && !p.failed() {
		s := p.parseStatement()
		if p.failed() {
			return nil
		}
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	p.lastEnd = p.curToken.End
	if !p.expect(token.RBRACE, "'}'") {
		return nil
	}
	return stmts
}
