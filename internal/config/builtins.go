// Package config catalogs the handful of names the compiler reserves: the
// keyword table, the built-in function catalog, and the source file
// extension. The built-in callee names are read from here by the semantic,
// codegen, and interp packages; the keyword table documents the lexer's
// own table in internal/token, and a test keeps the two in sync.
package config

// Reserved callee names, referenced by name throughout the semantic,
// codegen, and interp packages instead of repeating the string literal.
const (
	EscrevaFuncName = "escreva"
	LeiaFuncName    = "leia"
)

// BuiltinFunc documents one reserved callee name the type checker,
// usage checker, emitter, and interpreter all treat specially.
type BuiltinFunc struct {
	Name        string
	Description string
	Arity       int
}

// Builtins is IsiLang's entire callable surface: two names, both taking
// exactly one argument in this MVP.
var Builtins = []BuiltinFunc{
	{Name: EscrevaFuncName, Description: "writes one value followed by a newline to standard output", Arity: 1},
	{Name: LeiaFuncName, Description: "reads one line from standard input into the given variable", Arity: 1},
}

// IsBuiltin reports whether name is a recognized callee.
func IsBuiltin(name string) bool {
	for _, b := range Builtins {
		if b.Name == name {
			return true
		}
	}
	return false
}

// ReservedWord documents one keyword the lexer reserves; see
// token.keywords for the authoritative table this mirrors.
type ReservedWord struct {
	Word        string
	Description string
}

var ReservedWords = []ReservedWord{
	{Word: "programa", Description: "opens a program unit"},
	{Word: "fimprog", Description: "closes a program unit, followed by '.'"},
	{Word: "declare", Description: "introduces one or more variable declarations"},
	{Word: "se", Description: "opens a conditional"},
	{Word: "entao", Description: "introduces a conditional's taken branch"},
	{Word: "senao", Description: "introduces a conditional's not-taken branch"},
	{Word: "enquanto", Description: "opens a while-loop"},
	{Word: "faca", Description: "opens a do-while-loop's body"},
}

// SourceFileExt is the canonical extension for IsiLang source files.
const SourceFileExt = ".isi"
