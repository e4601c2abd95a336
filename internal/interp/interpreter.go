// Package interp tree-walks a type-checked Program directly, without
// generating any intermediate form. Running it on a program that hasn't
// passed the type checker is undefined behaviour.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/isilang/isic/internal/ast"
	"github.com/isilang/isic/internal/config"
	"github.com/isilang/isic/internal/diagnostics"
	"github.com/isilang/isic/internal/symbols"
)

// irResult is the interpreter's per-node Visitor result. A non-nil Err
// aborts the run at the point it's first produced — unlike the type
// checker, a runtime fault in one statement leaves every later statement
// unexecuted, so there is nothing to accumulate.
type irResult struct {
	Val Value
	Err *diagnostics.DiagnosticError
}

// Interpreter holds the two maps the evaluation rules need: values for
// everything a later read can observe, and types solely so leia knows how
// to parse a line of input for a variable it never type-checked itself.
type Interpreter struct {
	values map[string]Value
	types  map[string]symbols.IsiType

	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Interpreter {
	return &Interpreter{
		values: make(map[string]Value),
		types:  make(map[string]symbols.IsiType),
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run executes prog's statements in source order, stopping at the first
// runtime error.
func (ip *Interpreter) Run(prog ast.Program) error {
	for _, stmt := range prog.Statements {
		if r := ast.VisitStatement[irResult](ip, stmt); r.Err != nil {
			return r.Err
		}
	}
	return nil
}

func (ip *Interpreter) VisitIntLiteral(lit ast.ImmInt) irResult {
	return irResult{Val: IntValue(lit.Value)}
}

func (ip *Interpreter) VisitFloatLiteral(lit ast.ImmFloat) irResult {
	return irResult{Val: FloatValue(lit.Value)}
}

func (ip *Interpreter) VisitStringLiteral(lit ast.ImmString) irResult {
	return irResult{Val: StringValue(lit.Value)}
}

func (ip *Interpreter) VisitIdent(id ast.Ident) irResult {
	v, ok := ip.values[id.Name]
	if !ok {
		return irResult{Err: diagnostics.New(diagnostics.PhaseInterp, diagnostics.ErrRuntimeNoValue, id.Span, id.Name)}
	}
	return irResult{Val: v}
}

// sourceTypeName mirrors the type checker's declarable-type mapping, plus
// a "bool" case the grammar and type checker make unreachable in practice
// (declare can never legally name "bool") but which the reference
// interpreter accepted anyway. Kept as the same harmless dead code rather
// than quietly diverging from it.
func sourceTypeName(name string) (symbols.IsiType, bool) {
	if ty, ok := symbols.SourceTypeName(name); ok {
		return ty, true
	}
	if name == "bool" {
		return symbols.Bool, true
	}
	return symbols.Unit, false
}

// VisitVarDecl re-derives the variable's type from its declaration rather
// than consulting the type checker's symbol table — a deliberate
// redundancy, not a dependency the interpreter happens to have.
func (ip *Interpreter) VisitVarDecl(decl ast.VarDecl) irResult {
	ty, ok := sourceTypeName(decl.VarType.Name)
	if !ok {
		return irResult{Err: diagnostics.New(diagnostics.PhaseInterp, diagnostics.ErrUnknownType, decl.Span, decl.VarType.Name)}
	}
	ip.types[decl.VarName.Name] = ty
	return irResult{Val: UnitValue()}
}

func (ip *Interpreter) VisitMultiVarDecl(mdecl ast.MultiVarDecl) irResult {
	for _, d := range mdecl.Decls {
		if r := ip.VisitVarDecl(d); r.Err != nil {
			return r
		}
	}
	return irResult{Val: UnitValue()}
}

func (ip *Interpreter) VisitBinExpr(bexpr ast.BinExpr) irResult {
	lhs := ast.VisitExpr[irResult](ip, bexpr.Left)
	if lhs.Err != nil {
		return lhs
	}
	rhs := ast.VisitExpr[irResult](ip, bexpr.Right)
	if rhs.Err != nil {
		return rhs
	}

	l, r := lhs.Val, rhs.Val
	sp := bexpr.GetSpan()
	badOperand := func() irResult {
		return irResult{Err: diagnostics.New(diagnostics.PhaseInterp, diagnostics.ErrRuntimeBadOperand, sp,
			fmt.Sprintf("%s does not apply to %s and %s", bexpr.Op, l.Ty, r.Ty))}
	}

	switch bexpr.Op {
	case ast.Add:
		switch {
		case l.Ty == symbols.Int && r.Ty == symbols.Int:
			return irResult{Val: IntValue(l.Int + r.Int)}
		case l.Ty == symbols.Float && r.Ty == symbols.Float:
			return irResult{Val: FloatValue(l.Float + r.Float)}
		case l.Ty == symbols.String && r.Ty == symbols.String:
			return irResult{Val: StringValue(l.Str + r.Str)}
		default:
			return badOperand()
		}
	case ast.Sub, ast.Mul, ast.Div:
		if l.Ty == symbols.Int && r.Ty == symbols.Int {
			return irResult{Val: IntValue(arith(bexpr.Op, l.Int, r.Int))}
		}
		if l.Ty == symbols.Float && r.Ty == symbols.Float {
			return irResult{Val: FloatValue(arithF(bexpr.Op, l.Float, r.Float))}
		}
		return badOperand()
	case ast.Mod:
		if l.Ty == symbols.Int && r.Ty == symbols.Int {
			return irResult{Val: IntValue(l.Int % r.Int)}
		}
		return badOperand()
	case ast.Gt, ast.Lt, ast.Geq, ast.Leq, ast.Eq, ast.Neq:
		if l.Ty == symbols.Int && r.Ty == symbols.Int {
			return irResult{Val: BoolValue(compare(bexpr.Op, float64(l.Int), float64(r.Int)))}
		}
		if l.Ty == symbols.Float && r.Ty == symbols.Float {
			return irResult{Val: BoolValue(compare(bexpr.Op, float64(l.Float), float64(r.Float)))}
		}
		return badOperand()
	case ast.And:
		if l.Ty == symbols.Bool && r.Ty == symbols.Bool {
			return irResult{Val: BoolValue(l.Bool && r.Bool)}
		}
		return badOperand()
	case ast.Or:
		if l.Ty == symbols.Bool && r.Ty == symbols.Bool {
			return irResult{Val: BoolValue(l.Bool || r.Bool)}
		}
		return badOperand()
	default:
		return badOperand()
	}
}

func arith(op ast.BinOp, l, r uint64) uint64 {
	switch op {
	case ast.Sub:
		return l - r
	case ast.Mul:
		return l * r
	case ast.Div:
		return l / r
	default:
		panic("interp: arith called with non-arithmetic op")
	}
}

func arithF(op ast.BinOp, l, r float32) float32 {
	switch op {
	case ast.Sub:
		return l - r
	case ast.Mul:
		return l * r
	case ast.Div:
		return l / r
	default:
		panic("interp: arithF called with non-arithmetic op")
	}
}

func compare(op ast.BinOp, l, r float64) bool {
	switch op {
	case ast.Gt:
		return l > r
	case ast.Lt:
		return l < r
	case ast.Geq:
		return l >= r
	case ast.Leq:
		return l <= r
	case ast.Eq:
		return l == r
	case ast.Neq:
		return l != r
	default:
		panic("interp: compare called with a non-comparison op")
	}
}

func (ip *Interpreter) VisitNegation(neg ast.Negation) irResult {
	operand := ast.VisitExpr[irResult](ip, neg.Operand)
	if operand.Err != nil {
		return operand
	}
	if operand.Val.Ty != symbols.Bool {
		return irResult{Err: diagnostics.New(diagnostics.PhaseInterp, diagnostics.ErrRuntimeBadOperand, neg.GetSpan(),
			fmt.Sprintf("! does not apply to %s", operand.Val.Ty))}
	}
	return irResult{Val: BoolValue(!operand.Val.Bool)}
}

// VisitFnCall implements the two built-ins; any other name is a runtime
// error since the grammar and type checker never validate call targets.
func (ip *Interpreter) VisitFnCall(call ast.FnCall) irResult {
	switch call.Name.Name {
	case config.EscrevaFuncName:
		return ip.execEscreva(call)
	case config.LeiaFuncName:
		return ip.execLeia(call)
	default:
		return irResult{Err: diagnostics.New(diagnostics.PhaseInterp, diagnostics.ErrRuntimeBadOperand, call.Span,
			fmt.Sprintf("unknown function %q", call.Name.Name))}
	}
}

func (ip *Interpreter) execEscreva(call ast.FnCall) irResult {
	if len(call.Args) == 0 {
		return irResult{Val: UnitValue()}
	}
	arg := ast.VisitExpr[irResult](ip, call.Args[0])
	if arg.Err != nil {
		return arg
	}
	fmt.Fprintf(ip.out, "%s\n", arg.Val.String())
	if f, ok := ip.out.(interface{ Flush() error }); ok {
		f.Flush()
	}
	return irResult{Val: UnitValue()}
}

func (ip *Interpreter) execLeia(call ast.FnCall) irResult {
	if len(call.Args) == 0 {
		return irResult{Val: UnitValue()}
	}
	id, ok := call.Args[0].(ast.IdentExpr)
	if !ok {
		return irResult{Val: UnitValue()}
	}

	line, err := ip.in.ReadString('\n')
	if err != nil && line == "" {
		return irResult{Err: diagnostics.New(diagnostics.PhaseInterp, diagnostics.ErrRuntimeParseInput, call.Span, "<eof>", "a value to read")}
	}
	line = strings.TrimRight(line, "\r\n")

	ty, ok := ip.types[id.Ident.Name]
	if !ok {
		return irResult{Err: diagnostics.New(diagnostics.PhaseInterp, diagnostics.ErrRuntimeNoValue, id.Ident.Span, id.Ident.Name)}
	}

	var val Value
	switch ty {
	case symbols.Int:
		n, perr := strconv.ParseUint(line, 10, 64)
		if perr != nil {
			return irResult{Err: diagnostics.New(diagnostics.PhaseInterp, diagnostics.ErrRuntimeParseInput, call.Span, line, "Int")}
		}
		val = IntValue(n)
	case symbols.Float:
		f, perr := strconv.ParseFloat(line, 32)
		if perr != nil {
			return irResult{Err: diagnostics.New(diagnostics.PhaseInterp, diagnostics.ErrRuntimeParseInput, call.Span, line, "Float")}
		}
		val = FloatValue(float32(f))
	case symbols.String:
		val = StringValue(line)
	case symbols.Bool:
		b, perr := strconv.ParseBool(line)
		if perr != nil {
			return irResult{Err: diagnostics.New(diagnostics.PhaseInterp, diagnostics.ErrRuntimeParseInput, call.Span, line, "Bool")}
		}
		val = BoolValue(b)
	default:
		val = UnitValue()
	}

	ip.values[id.Ident.Name] = val
	return irResult{Val: UnitValue()}
}

func (ip *Interpreter) VisitAssignment(a ast.Assignment) irResult {
	rhs := ast.VisitExpr[irResult](ip, a.Value)
	if rhs.Err != nil {
		return rhs
	}
	ip.values[a.Name.Name] = rhs.Val
	return irResult{Val: UnitValue()}
}

func (ip *Interpreter) execBody(body []ast.Statement) *diagnostics.DiagnosticError {
	for _, s := range body {
		if r := ast.VisitStatement[irResult](ip, s); r.Err != nil {
			return r.Err
		}
	}
	return nil
}

func (ip *Interpreter) VisitConditional(cond ast.Conditional) irResult {
	c := ast.VisitExpr[irResult](ip, cond.Cond)
	if c.Err != nil {
		return c
	}
	body := cond.NotTaken
	if c.Val.Ty == symbols.Bool && c.Val.Bool {
		body = cond.Taken
	}
	if err := ip.execBody(body); err != nil {
		return irResult{Err: err}
	}
	return irResult{Val: UnitValue()}
}

func (ip *Interpreter) VisitWhileLoop(loop ast.WhileLoop) irResult {
	for {
		c := ast.VisitExpr[irResult](ip, loop.Cond)
		if c.Err != nil {
			return c
		}
		if !(c.Val.Ty == symbols.Bool && c.Val.Bool) {
			break
		}
		if err := ip.execBody(loop.Body); err != nil {
			return irResult{Err: err}
		}
	}
	return irResult{Val: UnitValue()}
}

func (ip *Interpreter) VisitDoWhileLoop(loop ast.DoWhileLoop) irResult {
	for {
		if err := ip.execBody(loop.Body); err != nil {
			return irResult{Err: err}
		}
		c := ast.VisitExpr[irResult](ip, loop.Cond)
		if c.Err != nil {
			return c
		}
		if !(c.Val.Ty == symbols.Bool && c.Val.Bool) {
			break
		}
	}
	return irResult{Val: UnitValue()}
}

var _ ast.Visitor[irResult] = (*Interpreter)(nil)
