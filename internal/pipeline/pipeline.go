package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// DefaultFetchLatency is the simulated latency of a fetch step.
const DefaultFetchLatency = 100 * time.Millisecond

// Record is a user record keyed by string.
type Record map[string]interface{}

// Flow runs the fetch -> validate -> greet sequence. Steps are
// strictly sequential; each one starts only after its predecessor
// completed.
type Flow struct {
	fetchLatency time.Duration
	out          io.Writer
	logger       *zap.Logger
}

// Option configures a Flow.
type Option func(*Flow)

// WithFetchLatency overrides the simulated fetch latency.
func WithFetchLatency(d time.Duration) Option {
	return func(f *Flow) { f.fetchLatency = d }
}

// WithLogger attaches a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Flow) { f.logger = logger }
}

// NewFlow creates a flow writing its output to w.
func NewFlow(w io.Writer, opts ...Option) *Flow {
	f := &Flow{
		fetchLatency: DefaultFetchLatency,
		out:          w,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchData simulates fetching from url: it waits the configured
// latency and returns the literal mock record. There is no real
// network access and no error path beyond context cancellation.
func (f *Flow) FetchData(ctx context.Context, url string) (Record, error) {
	f.logger.Debug("fetching", zap.String("url", url), zap.Duration("latency", f.fetchLatency))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(f.fetchLatency):
	}

	return Record{"data": "mock"}, nil
}

// FetchUser fetches the raw user record and applies ProcessUserData.
func (f *Flow) FetchUser(ctx context.Context, userID int) (Record, error) {
	data, err := f.FetchData(ctx, fmt.Sprintf("/users/%d", userID))
	if err != nil {
		return nil, err
	}
	return ProcessUserData(data), nil
}

// ProcessUserData returns a new record equal to data with the
// processed flag merged in. The input is never mutated; on key
// collision the flag wins.
func ProcessUserData(data Record) Record {
	processed := make(Record, len(data)+1)
	for k, v := range data {
		processed[k] = v
	}
	processed["processed"] = true
	return processed
}

// ValidateUser reports whether the record passes validation.
func (f *Flow) ValidateUser(ctx context.Context, user Record) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}
	return checkValidation(user), nil
}

// checkValidation accepts any non-nil record.
func checkValidation(user Record) bool {
	return user != nil
}

// FormatGreeting formats a greeting message.
func FormatGreeting(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// Greet returns the greeting for name, wrapped by the call-logging
// decorator so the surrounding "Calling greet" / "Result: ..." lines
// land on the flow's output writer.
func (f *Flow) Greet(name string) string {
	greet := WithCallLog(f.out, "greet", FormatGreeting)
	return greet(name)
}

// WithCallLog wraps fn in a decorator that writes "Calling {name}"
// before the call and "Result: {value}" after it, returning the
// result unchanged.
func WithCallLog(w io.Writer, name string, fn func(string) string) func(string) string {
	return func(arg string) string {
		fmt.Fprintf(w, "Calling %s\n", name)
		result := fn(arg)
		fmt.Fprintf(w, "Result: %s\n", result)
		return result
	}
}

// Run orchestrates the full demo sequence: fetch user 1, validate it,
// print the validity line when valid, then greet the world.
func (f *Flow) Run(ctx context.Context) error {
	user, err := f.FetchUser(ctx, 1)
	if err != nil {
		return fmt.Errorf("fetch user: %w", err)
	}

	valid, err := f.ValidateUser(ctx, user)
	if err != nil {
		return fmt.Errorf("validate user: %w", err)
	}

	if valid {
		fmt.Fprintf(f.out, "User is valid: %v\n", user)
	}

	greeting := f.Greet("World")
	fmt.Fprintln(f.out, greeting)

	f.logger.Info("pipeline run complete", zap.Bool("valid", valid))
	return nil
}
