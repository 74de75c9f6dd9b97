package calcpad

import (
	"errors"
	"fmt"
)

// Calculate raises exactly one of four error kinds. The first two are
// sentinels; the latter two carry detail.
var (
	// ErrInvalidFormat marks a buffer that ends in a dangling operator or
	// an incomplete exponent tail; the user must keep editing.
	ErrInvalidFormat = errors.New("equation is incomplete")

	// ErrDivisionByZero marks a division whose literal right operand is
	// exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// CalculationError wraps any evaluation fault: a not-a-number result, an
// unbalanced or otherwise malformed token sequence, or a contained panic.
type CalculationError struct {
	cause error
}

func (err CalculationError) Error() string {
	if err.cause != nil {
		return fmt.Sprintf("cannot calculate: %v", err.cause)
	}
	return "cannot calculate"
}

func (err CalculationError) Unwrap() error { return err.cause }

// InfinityError marks a result of positive or negative infinity, carrying
// the sign so the caller can render it correctly.
type InfinityError struct {
	Negative bool
}

func (err InfinityError) Error() string {
	if err.Negative {
		return "result is negative infinity"
	}
	return "result is infinity"
}
