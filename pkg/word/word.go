// Package word adds fixed-width machine integers.
//
// The hardware already propagates carries, so the functions here are thin
// wrappers over native addition that make the overflow policy explicit.
package word

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrOverflow is matched by OverflowError via errors.Is.
var ErrOverflow = errors.New("integer overflow")

// OverflowError reports an addition whose result does not fit the type.
type OverflowError struct {
	A, B string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s + %s: %v", e.A, e.B, ErrOverflow)
}

// Is reports whether target is ErrOverflow.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// AddWrapping returns a + b with two's complement wraparound.
func AddWrapping(a, b int64) int64 {
	return a + b
}

// AddChecked returns a + b, or an error if the sum overflows int64.
func AddChecked(a, b int64) (int64, error) {
	sum := a + b
	// Overflow iff both operands share a sign that the sum does not.
	if (sum^a)&(sum^b) < 0 {
		return 0, &OverflowError{A: fmt.Sprint(a), B: fmt.Sprint(b)}
	}
	return sum, nil
}

// AddUint64 returns a + b, or an error if the sum overflows uint64.
func AddUint64(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, &OverflowError{A: fmt.Sprint(a), B: fmt.Sprint(b)}
	}
	return sum, nil
}

// AddCarryChain adds without the + operator: XOR gives the sum bits, AND
// gives the carries, which are shifted left and fed back until none remain.
// The result always equals AddWrapping(a, b).
func AddCarryChain(a, b int64) int64 {
	for b != 0 {
		carry := a & b
		a ^= b
		b = carry << 1
	}
	return a
}
