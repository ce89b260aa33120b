package decimal

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	ErrInvalidDigit = errors.New("invalid digit")
	ErrEmptyInput   = errors.New("empty input")
)

// Operand identifies which argument of an operation failed validation.
// For Add and Trace it is OperandA or OperandB; for Sum it is the
// zero-based position of the operand.
type Operand int

// Operands of a binary addition.
const (
	OperandA Operand = 0
	OperandB Operand = 1
)

// String returns the operand name used in error messages.
func (o Operand) String() string {
	switch o {
	case OperandA:
		return "a"
	case OperandB:
		return "b"
	default:
		return fmt.Sprintf("operand %d", int(o))
	}
}

// InvalidDigitError reports a character outside '0'..'9'.
type InvalidDigitError struct {
	Operand Operand
	Index   int  // byte offset within the operand
	Char    rune // offending byte
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("%s: invalid digit %q at index %d", e.Operand, e.Char, e.Index)
}

// Is reports whether target is ErrInvalidDigit.
func (e *InvalidDigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}

// EmptyInputError reports a zero-length operand.
type EmptyInputError struct {
	Operand Operand
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: empty input", e.Operand)
}

// Is reports whether target is ErrEmptyInput.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}
