package decimal

import "strings"

// Add returns the decimal digit sequence of a + b.
//
// Operands may differ in length; the shorter one reads as zero-padded on the
// left. Leading zeros in the inputs are not stripped (see Normalize), so the
// result has no leading zero only when neither input has one.
func Add(a, b string) (string, error) {
	if err := validateOperand(a, OperandA); err != nil {
		return "", err
	}
	if err := validateOperand(b, OperandB); err != nil {
		return "", err
	}
	return add(a, b, nil), nil
}

// add assumes both operands are valid. When steps is non-nil every emitted
// column is appended to it, least significant first.
func add(a, b string, steps *[]Step) string {
	// Digits are written right to left, so the buffer never needs reversing.
	buf := make([]byte, max(len(a), len(b))+1)
	pos := len(buf)

	i, j := len(a)-1, len(b)-1
	carry := 0
	for i >= 0 || j >= 0 || carry > 0 {
		da, db := 0, 0
		if i >= 0 {
			da = int(a[i] - '0')
			i--
		}
		if j >= 0 {
			db = int(b[j] - '0')
			j--
		}

		sum := da + db + carry
		pos--
		buf[pos] = byte('0' + sum%10)

		if steps != nil {
			*steps = append(*steps, Step{
				Position: len(buf) - 1 - pos,
				DigitA:   da,
				DigitB:   db,
				CarryIn:  carry,
				Sum:      sum,
				Digit:    sum % 10,
				CarryOut: sum / 10,
			})
		}
		carry = sum / 10
	}
	return string(buf[pos:])
}

// Sum adds any number of digit sequences left to right. With no operands the
// result is "0". Validation errors name the failing operand by position.
func Sum(operands ...string) (string, error) {
	for n, s := range operands {
		if err := validateOperand(s, Operand(n)); err != nil {
			return "", err
		}
	}
	if len(operands) == 0 {
		return "0", nil
	}

	acc := operands[0]
	for _, s := range operands[1:] {
		acc = add(acc, s, nil)
	}
	return acc, nil
}

// Normalize strips superfluous leading zeros, keeping a single "0" for zero.
func Normalize(s string) (string, error) {
	if err := Validate(s); err != nil {
		return "", err
	}
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0", nil
	}
	return t, nil
}
