package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isilang/isic/internal/ast"
)

// countingVisitor counts how many times each leaf handler fires, proving
// VisitExpr/VisitStatement/VisitProgram route to the right leaf and not
// just whichever one happens to compile.
type countingVisitor struct {
	counts map[string]int
}

func newCountingVisitor() *countingVisitor {
	return &countingVisitor{counts: make(map[string]int)}
}

func (c *countingVisitor) VisitIntLiteral(ast.ImmInt) int       { c.counts["int"]++; return 0 }
func (c *countingVisitor) VisitFloatLiteral(ast.ImmFloat) int   { c.counts["float"]++; return 0 }
func (c *countingVisitor) VisitStringLiteral(ast.ImmString) int { c.counts["string"]++; return 0 }
func (c *countingVisitor) VisitIdent(ast.Ident) int             { c.counts["ident"]++; return 0 }
func (c *countingVisitor) VisitVarDecl(ast.VarDecl) int         { c.counts["vardecl"]++; return 0 }
func (c *countingVisitor) VisitMultiVarDecl(d ast.MultiVarDecl) int {
	c.counts["multivardecl"]++
	return 1
}
func (c *countingVisitor) VisitBinExpr(ast.BinExpr) int { c.counts["binexpr"]++; return 0 }
func (c *countingVisitor) VisitNegation(ast.Negation) int { c.counts["negation"]++; return 0 }
func (c *countingVisitor) VisitFnCall(ast.FnCall) int     { c.counts["fncall"]++; return 0 }
func (c *countingVisitor) VisitAssignment(ast.Assignment) int {
	c.counts["assignment"]++
	return 2
}
func (c *countingVisitor) VisitConditional(ast.Conditional) int {
	c.counts["conditional"]++
	return 0
}
func (c *countingVisitor) VisitWhileLoop(ast.WhileLoop) int { c.counts["whileloop"]++; return 0 }
func (c *countingVisitor) VisitDoWhileLoop(ast.DoWhileLoop) int {
	c.counts["dowhileloop"]++
	return 0
}

var _ ast.Visitor[int] = (*countingVisitor)(nil)

func TestVisitExprDispatchesToEveryLeafKind(t *testing.T) {
	v := newCountingVisitor()
	ast.VisitExpr[int](v, ast.ImmInt{Value: 1})
	ast.VisitExpr[int](v, ast.ImmFloat{Value: 1})
	ast.VisitExpr[int](v, ast.ImmString{Value: "a"})
	ast.VisitExpr[int](v, ast.IdentExpr{Ident: ast.Ident{Name: "x"}})
	ast.VisitExpr[int](v, ast.BinExpr{Op: ast.Add})
	ast.VisitExpr[int](v, ast.Negation{})
	ast.VisitExpr[int](v, ast.FnCall{})

	assert.Equal(t, 1, v.counts["int"])
	assert.Equal(t, 1, v.counts["float"])
	assert.Equal(t, 1, v.counts["string"])
	assert.Equal(t, 1, v.counts["ident"])
	assert.Equal(t, 1, v.counts["binexpr"])
	assert.Equal(t, 1, v.counts["negation"])
	assert.Equal(t, 1, v.counts["fncall"])
}

func TestVisitStatementRoutesFnCallStmtThroughVisitFnCall(t *testing.T) {
	v := newCountingVisitor()
	ast.VisitStatement[int](v, ast.FnCallStmt{Call: ast.FnCall{Name: ast.Ident{Name: "escreva"}}})
	assert.Equal(t, 1, v.counts["fncall"])
}

func TestVisitProgramPreservesOrderAndLength(t *testing.T) {
	v := newCountingVisitor()
	prog := ast.Program{Statements: []ast.Statement{
		ast.MultiVarDecl{Decls: []ast.VarDecl{{VarName: ast.Ident{Name: "x"}}}},
		ast.Assignment{Name: ast.Ident{Name: "x"}, Value: ast.ImmInt{Value: 1}},
	}}
	results := ast.VisitProgram[int](v, prog)
	assert.Len(t, results, 2)
	assert.Equal(t, []int{1, 2}, results, "results must follow statement order")
	assert.Equal(t, 1, v.counts["multivardecl"])
	assert.Equal(t, 1, v.counts["assignment"])
}
