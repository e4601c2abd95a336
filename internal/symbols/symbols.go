// Package symbols holds the name-keyed symbol table the type checker
// populates and the C emitter later borrows read-only.
package symbols

import (
	"github.com/isilang/isic/internal/ast"
	"github.com/isilang/isic/internal/span"
)

// IsiType is IsiLang's closed set of value types. Unit is the type of
// statements and of a FnCall used as an expression.
type IsiType int

const (
	Int IsiType = iota
	Float
	String
	Bool
	Unit
)

func (t IsiType) String() string {
	switch t {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Bool:
		return "Bool"
	case Unit:
		return "Unit"
	default:
		return "?"
	}
}

// SourceTypeName maps the declarable source-level type names (the ones
// that may legally appear after ':' in a VarDecl) to IsiType. "bool" is
// deliberately absent: Bool is not a declarable source type, it only
// arises from comparison/logical operators.
func SourceTypeName(name string) (IsiType, bool) {
	switch name {
	case "int":
		return Int, true
	case "float":
		return Float, true
	case "string":
		return String, true
	default:
		return Unit, false
	}
}

// SymbolInfo is one symbol table entry: the identifier's checked type and
// the span of its declaration.
type SymbolInfo struct {
	Ty          IsiType
	Declaration span.Span
}

// Table is keyed by identifier name only — never by span — so that a
// declaration and every later use of the same name hash to one entry.
type Table map[string]SymbolInfo

func NewTable() Table {
	return make(Table)
}

func (t Table) Lookup(id ast.Ident) (SymbolInfo, bool) {
	info, ok := t[id.Name]
	return info, ok
}

func (t Table) Declare(id ast.Ident, ty IsiType) {
	t[id.Name] = SymbolInfo{Ty: ty, Declaration: id.Span}
}
