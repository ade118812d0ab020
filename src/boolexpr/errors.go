package boolexpr

import (
	"errors"
	"fmt"
)

// ErrEmptyExpression is returned when the input contains no tokens at all.
var ErrEmptyExpression = errors.New("empty expression")

// UnboundVariableError is returned when an expression references a variable
// that the assignment has no value for.
type UnboundVariableError struct {
	VariableName string
}

// NewUnboundVariableError creates a new UnboundVariableError with the given variable name.
func NewUnboundVariableError(variableName string) error {
	return &UnboundVariableError{VariableName: variableName}
}

func (e UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.VariableName)
}

// UnbalancedParenthesesError is returned for a ')' without a matching '(', or
// a '(' that is never closed.
type UnbalancedParenthesesError struct {
	// Unclosed is true when a '(' was left open, false for a stray ')'
	Unclosed bool
}

func NewUnbalancedParenthesesError(unclosed bool) error {
	return &UnbalancedParenthesesError{Unclosed: unclosed}
}

func (e UnbalancedParenthesesError) Error() string {
	if e.Unclosed {
		return "unbalanced parentheses: '(' is never closed"
	}
	return "unbalanced parentheses: ')' has no matching '('"
}

// StructuralError is returned when the postfix sequence does not describe
// exactly one tree, e.g. an operator missing operands or operands without an
// operator joining them.
type StructuralError struct {
	Reason string
}

func NewStructuralError(format string, a ...any) error {
	return &StructuralError{Reason: fmt.Sprintf(format, a...)}
}

func (e StructuralError) Error() string {
	return "malformed expression: " + e.Reason
}

// UnexpectedCharacterError is returned when the input contains a character
// that is not a letter, a parenthesis or whitespace.
type UnexpectedCharacterError struct {
	Char     rune
	Position int
}

func NewUnexpectedCharacterError(char rune, position int) error {
	return &UnexpectedCharacterError{Char: char, Position: position}
}

func (e UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Position)
}
