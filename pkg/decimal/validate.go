package decimal

// Validate checks that s is a non-empty string of ASCII decimal digits.
// Errors report the operand as OperandA.
func Validate(s string) error {
	return validateOperand(s, OperandA)
}

func validateOperand(s string, op Operand) error {
	if s == "" {
		return &EmptyInputError{Operand: op}
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return &InvalidDigitError{Operand: op, Index: i, Char: rune(c)}
		}
	}
	return nil
}
