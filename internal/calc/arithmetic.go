package calc

import "errors"

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Add adds two numbers
func Add(a, b int) int {
	return a + b
}

// Subtract subtracts b from a
func Subtract(a, b int) int {
	return a - b
}

// Multiply multiplies using repeated addition. The accumulator starts
// at zero and Add runs y times, so a negative y yields 0.
func Multiply(x, y int) int {
	result := 0
	for i := 0; i < y; i++ {
		result = Add(result, x)
	}
	return result
}

// Divide divides a by b, failing with ErrDivisionByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power raises base to exponent using repeated multiplication. A zero
// exponent yields 1; a negative exponent returns base unchanged since
// the multiply loop never runs.
func Power(base, exponent int) int {
	if exponent == 0 {
		return 1
	}

	result := base
	for i := 1; i < exponent; i++ {
		result = Multiply(result, base)
	}
	return result
}
