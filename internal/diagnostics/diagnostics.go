// Package diagnostics defines IsiLang's error/warning taxonomy: a
// phase-tagged, span-anchored, template-rendered diagnostic type shared by
// every stage of the pipeline.
package diagnostics

import (
	"fmt"

	"github.com/isilang/isic/internal/span"
)

// Phase is the pipeline stage that produced a diagnostic.
type Phase string

const (
	PhaseLexer      Phase = "lexer"
	PhaseParser     Phase = "parser"
	PhaseTypeCheck  Phase = "typecheck"
	PhaseUsageCheck Phase = "usagecheck"
	PhaseCodegen    Phase = "codegen"
	PhaseInterp     Phase = "interp"
)

type ErrorCode string

const (
	ErrParseUnexpected ErrorCode = "P001" // unexpected token / failed to match a grammar rule
	ErrParseOverflow   ErrorCode = "P002" // integer literal does not fit in u64

	ErrUndefinedVariable ErrorCode = "T001"
	ErrRedeclaration     ErrorCode = "T002"
	ErrUnknownType       ErrorCode = "T003"
	ErrMismatchedTypes   ErrorCode = "T004"
	ErrBadOperandType    ErrorCode = "T005"
	ErrNonBoolCondition  ErrorCode = "T006"

	WarnUnusedVariable     ErrorCode = "U001"
	WarnNeverAssigned      ErrorCode = "U002"

	ErrRuntimeNoValue    ErrorCode = "R001"
	ErrRuntimeBadOperand ErrorCode = "R002"
	ErrRuntimeParseInput ErrorCode = "R003"
)

var errorTemplates = map[ErrorCode]string{
	ErrParseUnexpected: "expected %s, but got %s",
	ErrParseOverflow:   "could not parse '%s' as an unsigned 64-bit integer",

	ErrUndefinedVariable: "undefined variable: '%s'",
	ErrRedeclaration:     "redeclaration of variable: '%s'",
	ErrUnknownType:       "unknown type: '%s'",
	ErrMismatchedTypes:   "mismatched types: %s vs %s",
	ErrBadOperandType:    "operator '%s' does not accept operand type %s",
	ErrNonBoolCondition:  "condition must have type Bool, got %s",

	WarnUnusedVariable: "variable %s was declared but not used anywhere",
	WarnNeverAssigned:  "variable %s is used without being written to",

	ErrRuntimeNoValue:    "no value for variable %s",
	ErrRuntimeBadOperand: "runtime error: %s",
	ErrRuntimeParseInput: "could not parse input %q as %s",
}

// DiagnosticError is a single span-anchored diagnostic. Whether it is fatal
// depends on which phase produced it: type-checker diagnostics are errors
// that abort the pipeline before codegen/interp runs; usage-checker
// diagnostics are warnings the pipeline continues past.
type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Span  span.Span
	Args  []interface{}
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)

	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}

	return fmt.Sprintf("%serror at %s [%s]: %s", phaseStr, e.Span, e.Code, message)
}

// Describe renders the diagnostic without the span/phase/code decoration —
// the raw `description: text` half of the {span, description} pair the
// data model calls for, for callers that render the span separately.
func (e *DiagnosticError) Describe() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return string(e.Code)
	}
	return fmt.Sprintf(template, e.Args...)
}

func New(phase Phase, code ErrorCode, sp span.Span, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Phase: phase, Span: sp, Args: args}
}

// IsWarning reports whether this diagnostic belongs to a non-fatal phase
// (currently only the usage checker produces warnings; every other phase's
// diagnostics abort the pipeline).
func (e *DiagnosticError) IsWarning() bool {
	return e.Phase == PhaseUsageCheck
}
