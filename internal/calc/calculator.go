package calc

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Calculator wraps the arithmetic functions with an ordered,
// append-only operation history. Each operation is formatted as
// "{a} {op} {b} = {result}", appended to the history, and written to
// the output writer.
type Calculator struct {
	history []string
	out     io.Writer
	logger  *zap.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithOutput overrides the output writer (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *Calculator) { c.out = w }
}

// WithLogger attaches a structured logger for operation debug logs.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Calculator) { c.logger = logger }
}

// NewCalculator creates a calculator with an empty history.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add adds two numbers and logs the operation.
func (c *Calculator) Add(a, b int) int {
	result := Add(a, b)
	c.logOperation(fmt.Sprintf("%d + %d = %d", a, b, result))
	return result
}

// Subtract subtracts two numbers and logs the operation.
func (c *Calculator) Subtract(a, b int) int {
	result := Subtract(a, b)
	c.logOperation(fmt.Sprintf("%d - %d = %d", a, b, result))
	return result
}

// Multiply multiplies two numbers and logs the operation.
func (c *Calculator) Multiply(a, b int) int {
	result := Multiply(a, b)
	c.logOperation(fmt.Sprintf("%d * %d = %d", a, b, result))
	return result
}

// History returns a snapshot of the operation history in call order.
// Mutating the returned slice does not affect the calculator.
func (c *Calculator) History() []string {
	snapshot := make([]string, len(c.history))
	copy(snapshot, c.history)
	return snapshot
}

// logOperation appends to the history and emits the line.
func (c *Calculator) logOperation(operation string) {
	c.history = append(c.history, operation)
	fmt.Fprintln(c.out, operation)
	c.logger.Debug("operation recorded",
		zap.String("operation", operation),
		zap.Int("history_len", len(c.history)),
	)
}
