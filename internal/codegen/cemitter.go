// Package codegen translates a type-checked Program into a standalone C
// translation unit. It assumes its input has already passed the type
// checker; running it on an unchecked AST is undefined (a missing symbol
// table entry panics).
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/isilang/isic/internal/ast"
	"github.com/isilang/isic/internal/config"
	"github.com/isilang/isic/internal/symbols"
)

// CEmitter streams a C translation of a Program to w. Indentation is
// threaded through a counter rather than computed from block nesting, so
// the emitted source stays readable however deep the control flow gets.
type CEmitter struct {
	w      io.Writer
	table  symbols.Table
	indent int
}

func NewCEmitter(w io.Writer, table symbols.Table) *CEmitter {
	return &CEmitter{w: w, table: table, indent: 4}
}

// Emit writes the full translation unit: headers, a translated main body,
// and footers.
func (e *CEmitter) Emit(prog ast.Program) error {
	if _, err := fmt.Fprintln(e.w, "/* !!! auto-gerado por isic-back !!! */"); err != nil {
		return err
	}
	fmt.Fprintln(e.w, "#include <stdio.h>")
	fmt.Fprintln(e.w, "#include <stdlib.h>")
	fmt.Fprintln(e.w)
	fmt.Fprintln(e.w, "int main() {")

	for _, stmt := range prog.Statements {
		ast.VisitStatement[error](e, stmt)
	}

	fmt.Fprintln(e.w, "}")
	return nil
}

func (e *CEmitter) pad() string { return strings.Repeat(" ", e.indent) }

func (e *CEmitter) withIndent(body func()) {
	e.indent += 4
	body()
	e.indent -= 4
}

func (e *CEmitter) VisitIntLiteral(lit ast.ImmInt) error {
	fmt.Fprintf(e.w, "%d", lit.Value)
	return nil
}

func (e *CEmitter) VisitFloatLiteral(lit ast.ImmFloat) error {
	fmt.Fprintf(e.w, "%vf", lit.Value)
	return nil
}

func (e *CEmitter) VisitStringLiteral(lit ast.ImmString) error {
	fmt.Fprint(e.w, lit.Value)
	return nil
}

func (e *CEmitter) VisitIdent(id ast.Ident) error {
	fmt.Fprint(e.w, id.Name)
	return nil
}

func (e *CEmitter) cType(ty symbols.IsiType) string {
	switch ty {
	case symbols.Int:
		return "int"
	case symbols.Float:
		return "float"
	case symbols.String:
		return "char*"
	default:
		panic(fmt.Sprintf("codegen: %s has no declarable C representation", ty))
	}
}

func (e *CEmitter) VisitVarDecl(decl ast.VarDecl) error {
	info, ok := e.table.Lookup(decl.VarName)
	if !ok {
		panic("codegen: VarDecl for " + decl.VarName.Name + " missing from symbol table; run the type checker first")
	}
	fmt.Fprintf(e.w, "%s%s %s;\n", e.pad(), e.cType(info.Ty), decl.VarName.Name)
	return nil
}

func (e *CEmitter) VisitMultiVarDecl(mdecl ast.MultiVarDecl) error {
	for _, d := range mdecl.Decls {
		e.VisitVarDecl(d)
	}
	return nil
}

// binOpC maps every BinOp to its C operator spelling. Add is emitted
// uniformly across operand types; string concatenation with C's '+' is not
// valid C and is a known gap of this straight-line backend, not something
// the emitter works around.
var binOpC = map[ast.BinOp]string{
	ast.Add: "+", ast.Sub: "-", ast.Mul: "*", ast.Div: "/", ast.Mod: "%",
	ast.Gt: ">", ast.Lt: "<", ast.Geq: ">=", ast.Leq: "<=",
	ast.Eq: "==", ast.Neq: "!=", ast.And: "&&", ast.Or: "||",
}

func (e *CEmitter) VisitBinExpr(bexpr ast.BinExpr) error {
	fmt.Fprint(e.w, "(")
	ast.VisitExpr[error](e, bexpr.Left)
	fmt.Fprintf(e.w, " %s ", binOpC[bexpr.Op])
	ast.VisitExpr[error](e, bexpr.Right)
	fmt.Fprint(e.w, ")")
	return nil
}

func (e *CEmitter) VisitNegation(neg ast.Negation) error {
	fmt.Fprint(e.w, "!(")
	ast.VisitExpr[error](e, neg.Operand)
	fmt.Fprint(e.w, ")")
	return nil
}

func (e *CEmitter) VisitFnCall(call ast.FnCall) error {
	switch call.Name.Name {
	case config.EscrevaFuncName:
		e.emitPrint(call)
	case config.LeiaFuncName:
		e.emitScan(call)
	default:
		fmt.Fprintf(e.w, "%s/* not yet supported: call to %s */\n", e.pad(), call.Name.Name)
	}
	return nil
}

// emitPrint lowers escreva's lone argument. Anything beyond a bare
// identifier or immediate literal is out of scope for this backend.
func (e *CEmitter) emitPrint(call ast.FnCall) {
	if len(call.Args) == 0 {
		fmt.Fprintf(e.w, "%s/* not yet supported: escreva with no argument */\n", e.pad())
		return
	}

	switch arg := call.Args[0].(type) {
	case ast.IdentExpr:
		info, ok := e.table.Lookup(arg.Ident)
		if !ok {
			panic("codegen: escreva argument " + arg.Ident.Name + " missing from symbol table")
		}
		fmt.Fprintf(e.w, "%sprintf(\"%s\\n\", %s);\n", e.pad(), printfFmt(info.Ty), arg.Ident.Name)
	case ast.ImmInt:
		fmt.Fprintf(e.w, "%sprintf(\"%%d\\n\", %d);\n", e.pad(), arg.Value)
	case ast.ImmFloat:
		fmt.Fprintf(e.w, "%sprintf(\"%%f\\n\", %vf);\n", e.pad(), arg.Value)
	case ast.ImmString:
		fmt.Fprintf(e.w, "%sprintf(\"%s\\n\");\n", e.pad(), arg.Value)
	default:
		fmt.Fprintf(e.w, "%s/* not yet supported */\n", e.pad())
	}
}

// emitScan lowers leia's lone argument. Only an identifier argument is
// lowered to scanf; the type checker does not check call arguments, so any
// other argument form gets a "not yet supported" comment instead.
func (e *CEmitter) emitScan(call ast.FnCall) {
	if len(call.Args) == 0 {
		fmt.Fprintf(e.w, "%s/* not yet supported: leia with no argument */\n", e.pad())
		return
	}

	id, ok := call.Args[0].(ast.IdentExpr)
	if !ok {
		fmt.Fprintf(e.w, "%s/* not yet supported */\n", e.pad())
		return
	}
	info, ok := e.table.Lookup(id.Ident)
	if !ok {
		panic("codegen: leia argument " + id.Ident.Name + " missing from symbol table")
	}
	// No malloc for the char* case: reading a string into an undersized
	// buffer is the same hazard the teaching backend has always accepted.
	fmt.Fprintf(e.w, "%sscanf(\"%s\", &%s);\n", e.pad(), printfFmt(info.Ty), id.Ident.Name)
}

func printfFmt(ty symbols.IsiType) string {
	switch ty {
	case symbols.Int:
		return "%d"
	case symbols.Float:
		return "%f"
	case symbols.String:
		return "%s"
	default:
		panic(fmt.Sprintf("codegen: %s has no printf/scanf format", ty))
	}
}

func (e *CEmitter) VisitAssignment(a ast.Assignment) error {
	fmt.Fprintf(e.w, "%s%s = ", e.pad(), a.Name.Name)
	ast.VisitExpr[error](e, a.Value)
	fmt.Fprintln(e.w, ";")
	return nil
}

func (e *CEmitter) VisitConditional(cond ast.Conditional) error {
	fmt.Fprintf(e.w, "%sif (", e.pad())
	ast.VisitExpr[error](e, cond.Cond)
	fmt.Fprintln(e.w, ") {")
	e.withIndent(func() {
		for _, s := range cond.Taken {
			ast.VisitStatement[error](e, s)
		}
	})
	if len(cond.NotTaken) == 0 {
		fmt.Fprintf(e.w, "%s}\n", e.pad())
		return nil
	}
	fmt.Fprintf(e.w, "%s} else {\n", e.pad())
	e.withIndent(func() {
		for _, s := range cond.NotTaken {
			ast.VisitStatement[error](e, s)
		}
	})
	fmt.Fprintf(e.w, "%s}\n", e.pad())
	return nil
}

func (e *CEmitter) VisitWhileLoop(loop ast.WhileLoop) error {
	fmt.Fprintf(e.w, "%swhile (", e.pad())
	ast.VisitExpr[error](e, loop.Cond)
	fmt.Fprintln(e.w, ") {")
	e.withIndent(func() {
		for _, s := range loop.Body {
			ast.VisitStatement[error](e, s)
		}
	})
	fmt.Fprintf(e.w, "%s}\n", e.pad())
	return nil
}

func (e *CEmitter) VisitDoWhileLoop(loop ast.DoWhileLoop) error {
	fmt.Fprintf(e.w, "%sdo {\n", e.pad())
	e.withIndent(func() {
		for _, s := range loop.Body {
			ast.VisitStatement[error](e, s)
		}
	})
	fmt.Fprintf(e.w, "%s} while (", e.pad())
	ast.VisitExpr[error](e, loop.Cond)
	fmt.Fprintln(e.w, ");")
	return nil
}

var _ ast.Visitor[error] = (*CEmitter)(nil)
