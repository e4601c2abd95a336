package semantic

import (
	"sort"

	"github.com/isilang/isic/internal/ast"
	"github.com/isilang/isic/internal/config"
	"github.com/isilang/isic/internal/diagnostics"
	"github.com/isilang/isic/internal/span"
)

// usageInfo tracks, per declared identifier, where it was declared and
// every span at which it was subsequently read from or written to.
type usageInfo struct {
	declared    span.Span
	assignments []span.Span
	uses        []span.Span
}

// UsageChecker never fails: it only produces warnings about variables that
// are declared-but-dead or write-only at runtime.
type UsageChecker struct {
	table map[string]*usageInfo
}

func NewUsageChecker() *UsageChecker {
	return &UsageChecker{table: make(map[string]*usageInfo)}
}

// Check walks prog and returns its warnings sorted by declaration offset,
// so the result is deterministic regardless of map iteration order.
func (c *UsageChecker) Check(prog ast.Program) []*diagnostics.DiagnosticError {
	ast.VisitProgram[struct{}](c, prog)

	var warnings []*diagnostics.DiagnosticError
	for name, info := range c.table {
		switch {
		case len(info.uses) == 0:
			warnings = append(warnings, diagnostics.New(diagnostics.PhaseUsageCheck, diagnostics.WarnUnusedVariable, info.declared, name))
		case len(info.assignments) == 0:
			warnings = append(warnings, diagnostics.New(diagnostics.PhaseUsageCheck, diagnostics.WarnNeverAssigned, info.declared, name))
		}
	}

	sort.Slice(warnings, func(i, j int) bool {
		return warnings[i].Span.Start < warnings[j].Span.Start
	})
	return warnings
}

func (c *UsageChecker) markAssignment(id ast.Ident, sp span.Span) {
	if entry, ok := c.table[id.Name]; ok {
		entry.assignments = append(entry.assignments, sp)
	}
}

func (c *UsageChecker) markUse(id ast.Ident, sp span.Span) {
	if entry, ok := c.table[id.Name]; ok {
		entry.uses = append(entry.uses, sp)
	}
}

func (c *UsageChecker) VisitIntLiteral(ast.ImmInt) struct{}       { return struct{}{} }
func (c *UsageChecker) VisitFloatLiteral(ast.ImmFloat) struct{}   { return struct{}{} }
func (c *UsageChecker) VisitStringLiteral(ast.ImmString) struct{} { return struct{}{} }

// VisitIdent is a no-op by itself: use-sites are only recorded where an
// Ident appears as a sub-expression, via visitExpr below, because a bare
// VisitIdent call can't distinguish a read from the identifier naming a
// declaration or an assignment target.
func (c *UsageChecker) VisitIdent(ast.Ident) struct{} { return struct{}{} }

func (c *UsageChecker) visitExpr(e ast.Expression) {
	if id, ok := e.(ast.IdentExpr); ok {
		c.markUse(id.Ident, e.GetSpan())
		return
	}
	ast.VisitExpr[struct{}](c, e)
}

func (c *UsageChecker) VisitVarDecl(decl ast.VarDecl) struct{} {
	if _, ok := c.table[decl.VarName.Name]; ok {
		return struct{}{}
	}
	c.table[decl.VarName.Name] = &usageInfo{declared: decl.Span}
	return struct{}{}
}

func (c *UsageChecker) VisitMultiVarDecl(mdecl ast.MultiVarDecl) struct{} {
	for _, d := range mdecl.Decls {
		c.VisitVarDecl(d)
	}
	return struct{}{}
}

func (c *UsageChecker) VisitBinExpr(bexpr ast.BinExpr) struct{} {
	c.visitExpr(bexpr.Left)
	c.visitExpr(bexpr.Right)
	return struct{}{}
}

func (c *UsageChecker) VisitNegation(neg ast.Negation) struct{} {
	c.visitExpr(neg.Operand)
	return struct{}{}
}

// VisitFnCall special-cases leia(id): its first argument is a write target,
// not a read, matching the runtime semantics of "read into variable".
// Every other call walks its arguments as reads.
func (c *UsageChecker) VisitFnCall(call ast.FnCall) struct{} {
	if call.Name.Name == config.LeiaFuncName && len(call.Args) > 0 {
		if id, ok := call.Args[0].(ast.IdentExpr); ok {
			c.markAssignment(id.Ident, call.GetSpan())
			return struct{}{}
		}
	}
	for _, arg := range call.Args {
		c.visitExpr(arg)
	}
	return struct{}{}
}

func (c *UsageChecker) VisitAssignment(a ast.Assignment) struct{} {
	c.markAssignment(a.Name, a.Span)
	c.visitExpr(a.Value)
	return struct{}{}
}

func (c *UsageChecker) VisitConditional(cond ast.Conditional) struct{} {
	c.visitExpr(cond.Cond)
	for _, s := range cond.Taken {
		ast.VisitStatement[struct{}](c, s)
	}
	for _, s := range cond.NotTaken {
		ast.VisitStatement[struct{}](c, s)
	}
	return struct{}{}
}

func (c *UsageChecker) VisitWhileLoop(loop ast.WhileLoop) struct{} {
	c.visitExpr(loop.Cond)
	for _, s := range loop.Body {
		ast.VisitStatement[struct{}](c, s)
	}
	return struct{}{}
}

func (c *UsageChecker) VisitDoWhileLoop(loop ast.DoWhileLoop) struct{} {
	c.visitExpr(loop.Cond)
	for _, s := range loop.Body {
		ast.VisitStatement[struct{}](c, s)
	}
	return struct{}{}
}

var _ ast.Visitor[struct{}] = (*UsageChecker)(nil)
