package decimal

// Step is one column of a traced addition.
type Step struct {
	Position int `json:"position"` // 0 is the least significant column
	DigitA   int `json:"digit_a"`
	DigitB   int `json:"digit_b"`
	CarryIn  int `json:"carry_in"`
	Sum      int `json:"sum"`
	Digit    int `json:"digit"`
	CarryOut int `json:"carry_out"`
}

// Trace adds a and b like Add and also returns every column it computed,
// least significant first. There is exactly one step per result digit.
func Trace(a, b string) (string, []Step, error) {
	if err := validateOperand(a, OperandA); err != nil {
		return "", nil, err
	}
	if err := validateOperand(b, OperandB); err != nil {
		return "", nil, err
	}

	steps := make([]Step, 0, max(len(a), len(b))+1)
	result := add(a, b, &steps)
	return result, steps, nil
}
