// Package semantic implements the two independent post-parse passes every
// program goes through before codegen or interpretation: a type checker
// that builds the symbol table and rejects ill-typed programs, and a usage
// checker that flags variables which are dead weight at runtime.
package semantic

import (
	"github.com/hashicorp/go-multierror"

	"github.com/isilang/isic/internal/ast"
	"github.com/isilang/isic/internal/diagnostics"
	"github.com/isilang/isic/internal/symbols"
)

// tcResult is the type checker's per-node Visitor result: the node's
// checked type, or the first error encountered beneath it. A non-nil Err
// short-circuits the enclosing expression/statement exactly the way the
// reference design's `Result<IsiType, CheckError>` plus `?` does — but that
// short-circuiting stops at the boundary between top-level statements,
// where Check folds every statement's outcome into one accumulated error
// instead of aborting at the first.
type tcResult struct {
	Ty  symbols.IsiType
	Err *diagnostics.DiagnosticError
}

// TypeChecker walks a Program once, populating Table as it goes and
// collecting every statement's type error without letting one statement's
// failure hide the next's.
type TypeChecker struct {
	Table symbols.Table
}

func NewTypeChecker() *TypeChecker {
	return &TypeChecker{Table: symbols.NewTable()}
}

// Check type-checks prog in source order. Every top-level statement is
// visited regardless of whether an earlier one failed; their errors are
// folded into one *multierror.Error so the accumulation itself goes
// through the same library the CLI's multi-file check uses for "keep
// going and report everything", rather than a hand-rolled slice append.
// The returned slice is nil when prog is well-typed.
func (c *TypeChecker) Check(prog ast.Program) []*diagnostics.DiagnosticError {
	var result *multierror.Error
	for _, stmt := range prog.Statements {
		r := ast.VisitStatement[tcResult](c, stmt)
		if r.Err != nil {
			result = multierror.Append(result, r.Err)
		}
	}
	if result == nil {
		return nil
	}
	errs := make([]*diagnostics.DiagnosticError, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = e.(*diagnostics.DiagnosticError)
	}
	return errs
}

func (c *TypeChecker) VisitIntLiteral(ast.ImmInt) tcResult       { return tcResult{Ty: symbols.Int} }
func (c *TypeChecker) VisitFloatLiteral(ast.ImmFloat) tcResult   { return tcResult{Ty: symbols.Float} }
func (c *TypeChecker) VisitStringLiteral(ast.ImmString) tcResult { return tcResult{Ty: symbols.String} }

func (c *TypeChecker) VisitIdent(id ast.Ident) tcResult {
	info, ok := c.Table.Lookup(id)
	if !ok {
		return tcResult{Err: diagnostics.New(diagnostics.PhaseTypeCheck, diagnostics.ErrUndefinedVariable, id.Span, id.Name)}
	}
	return tcResult{Ty: info.Ty}
}

func (c *TypeChecker) VisitVarDecl(decl ast.VarDecl) tcResult {
	if _, ok := c.Table.Lookup(decl.VarName); ok {
		return tcResult{Err: diagnostics.New(diagnostics.PhaseTypeCheck, diagnostics.ErrRedeclaration, decl.Span, decl.VarName.Name)}
	}

	ty, ok := symbols.SourceTypeName(decl.VarType.Name)
	if !ok {
		return tcResult{Err: diagnostics.New(diagnostics.PhaseTypeCheck, diagnostics.ErrUnknownType, decl.Span, decl.VarType.Name)}
	}

	c.Table.Declare(decl.VarName, ty)
	return tcResult{Ty: ty}
}

func (c *TypeChecker) VisitMultiVarDecl(mdecl ast.MultiVarDecl) tcResult {
	for _, d := range mdecl.Decls {
		if r := c.VisitVarDecl(d); r.Err != nil {
			return tcResult{Err: r.Err}
		}
	}
	return tcResult{Ty: symbols.Unit}
}

func (c *TypeChecker) VisitBinExpr(bexpr ast.BinExpr) tcResult {
	sp := bexpr.GetSpan()

	left := ast.VisitExpr[tcResult](c, bexpr.Left)
	if left.Err != nil {
		return left
	}
	right := ast.VisitExpr[tcResult](c, bexpr.Right)
	if right.Err != nil {
		return right
	}

	if left.Ty != right.Ty {
		return tcResult{Err: diagnostics.New(diagnostics.PhaseTypeCheck, diagnostics.ErrMismatchedTypes, sp, left.Ty.String(), right.Ty.String())}
	}

	switch bexpr.Op {
	case ast.Add:
		if left.Ty == symbols.Bool || left.Ty == symbols.Unit {
			return tcResult{Err: diagnostics.New(diagnostics.PhaseTypeCheck, diagnostics.ErrBadOperandType, sp, bexpr.Op.String(), left.Ty.String())}
		}
		return tcResult{Ty: left.Ty}
	case ast.Sub, ast.Mul, ast.Div:
		if left.Ty == symbols.String || left.Ty == symbols.Unit {
			return tcResult{Err: diagnostics.New(diagnostics.PhaseTypeCheck, diagnostics.ErrBadOperandType, sp, bexpr.Op.String(), left.Ty.String())}
		}
		return tcResult{Ty: left.Ty}
	case ast.Mod:
		if left.Ty != symbols.Int {
			return tcResult{Err: diagnostics.New(diagnostics.PhaseTypeCheck, diagnostics.ErrBadOperandType, sp, bexpr.Op.String(), left.Ty.String())}
		}
		return tcResult{Ty: symbols.Int}
	case ast.And, ast.Or:
		if left.Ty != symbols.Bool {
			return tcResult{Err: diagnostics.New(diagnostics.PhaseTypeCheck, diagnostics.ErrBadOperandType, sp, bexpr.Op.String(), left.Ty.String())}
		}
		return tcResult{Ty: symbols.Bool}
	default: // Gt, Lt, Geq, Leq, Eq, Neq
		return tcResult{Ty: symbols.Bool}
	}
}

func (c *TypeChecker) VisitNegation(neg ast.Negation) tcResult {
	operand := ast.VisitExpr[tcResult](c, neg.Operand)
	if operand.Err != nil {
		return operand
	}
	if operand.Ty != symbols.Bool {
		return tcResult{Err: diagnostics.New(diagnostics.PhaseTypeCheck, diagnostics.ErrBadOperandType, neg.GetSpan(), "!", operand.Ty.String())}
	}
	return tcResult{Ty: symbols.Bool}
}

// VisitFnCall always checks out as Unit without type-checking its
// arguments: the only callees are the built-ins escreva/leia, which accept
// any scalar.
func (c *TypeChecker) VisitFnCall(ast.FnCall) tcResult {
	return tcResult{Ty: symbols.Unit}
}

func (c *TypeChecker) VisitAssignment(a ast.Assignment) tcResult {
	left := c.VisitIdent(a.Name)
	if left.Err != nil {
		return left
	}
	right := ast.VisitExpr[tcResult](c, a.Value)
	if right.Err != nil {
		return right
	}
	if left.Ty != right.Ty {
		return tcResult{Err: diagnostics.New(diagnostics.PhaseTypeCheck, diagnostics.ErrMismatchedTypes, a.Span, right.Ty.String(), left.Ty.String())}
	}
	return tcResult{Ty: left.Ty}
}

func (c *TypeChecker) checkCondition(cond ast.Expression) *diagnostics.DiagnosticError {
	r := ast.VisitExpr[tcResult](c, cond)
	if r.Err != nil {
		return r.Err
	}
	if r.Ty != symbols.Bool {
		return diagnostics.New(diagnostics.PhaseTypeCheck, diagnostics.ErrNonBoolCondition, cond.GetSpan(), r.Ty.String())
	}
	return nil
}

func (c *TypeChecker) checkBody(body []ast.Statement) *diagnostics.DiagnosticError {
	for _, stmt := range body {
		if r := ast.VisitStatement[tcResult](c, stmt); r.Err != nil {
			return r.Err
		}
	}
	return nil
}

func (c *TypeChecker) VisitConditional(cond ast.Conditional) tcResult {
	if err := c.checkCondition(cond.Cond); err != nil {
		return tcResult{Err: err}
	}
	if err := c.checkBody(cond.Taken); err != nil {
		return tcResult{Err: err}
	}
	if err := c.checkBody(cond.NotTaken); err != nil {
		return tcResult{Err: err}
	}
	return tcResult{Ty: symbols.Unit}
}

func (c *TypeChecker) VisitWhileLoop(loop ast.WhileLoop) tcResult {
	if err := c.checkCondition(loop.Cond); err != nil {
		return tcResult{Err: err}
	}
	if err := c.checkBody(loop.Body); err != nil {
		return tcResult{Err: err}
	}
	return tcResult{Ty: symbols.Unit}
}

func (c *TypeChecker) VisitDoWhileLoop(loop ast.DoWhileLoop) tcResult {
	if err := c.checkCondition(loop.Cond); err != nil {
		return tcResult{Err: err}
	}
	if err := c.checkBody(loop.Body); err != nil {
		return tcResult{Err: err}
	}
	return tcResult{Ty: symbols.Unit}
}

var _ ast.Visitor[tcResult] = (*TypeChecker)(nil)
