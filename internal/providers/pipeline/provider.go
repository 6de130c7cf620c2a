package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shaharia-lab/code-navigator/internal/pipeline"
	"github.com/shaharia-lab/code-navigator/internal/types"
)

// Provider exposes the pipeline demo flow as a tool service. It keeps
// a bounded in-memory log of pipeline activity; each run is tagged
// with a generated run ID.
type Provider struct {
	out          io.Writer
	fetchLatency time.Duration
	logCapacity  int

	mu   sync.Mutex
	logs []LogEntry
}

// LogEntry represents a pipeline provider log
type LogEntry struct {
	Timestamp time.Time
	Level     string
	Stage     string
	Message   string
}

// Option configures a Provider.
type Option func(*Provider)

// WithOutput overrides the demo output writer (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(p *Provider) { p.out = w }
}

// WithFetchLatency overrides the simulated fetch latency.
func WithFetchLatency(d time.Duration) Option {
	return func(p *Provider) { p.fetchLatency = d }
}

// WithLogCapacity bounds the in-memory log (default 100 entries).
func WithLogCapacity(n int) Option {
	return func(p *Provider) { p.logCapacity = n }
}

// NewProvider creates a pipeline provider.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		out:          os.Stdout,
		fetchLatency: pipeline.DefaultFetchLatency,
		logCapacity:  100,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Definition returns the service definition
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "pipeline",
		Name:        "Pipeline Demo",
		Description: "Sequential fetch, validate and greet demo flow",
		Category:    types.CategoryDemo,
		Capabilities: []string{
			"run",
			"fetch_user",
			"validate",
			"greet",
		},
		Tools: []types.Tool{
			{
				ID:          "pipeline.run",
				Name:        "Run Pipeline",
				Description: "Run the full fetch-validate-greet sequence",
				Parameters:  []types.Parameter{},
				Returns:     "Run summary",
			},
			{
				ID:          "pipeline.fetch_user",
				Name:        "Fetch User",
				Description: "Fetch and process a user record",
				Parameters: []types.Parameter{
					{Name: "id", Type: "number", Description: "User ID", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "pipeline.validate",
				Name:        "Validate User",
				Description: "Check whether a user record is valid",
				Parameters: []types.Parameter{
					{Name: "user", Type: "object", Description: "User record (may be null)", Required: false},
				},
				Returns: "boolean",
			},
			{
				ID:          "pipeline.greet",
				Name:        "Greet",
				Description: "Format a greeting through the call-logging decorator",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "Name to greet", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "pipeline.logs",
				Name:        "Get Logs",
				Description: "Return recorded pipeline activity",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "pipeline.clear_logs",
				Name:        "Clear Logs",
				Description: "Clear all pipeline logs",
				Parameters:  []types.Parameter{},
				Returns:     "Logs cleared",
			},
		},
	}
}

// Execute handles pipeline tool execution
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "pipeline.run":
		return p.run(ctx)
	case "pipeline.fetch_user":
		return p.fetchUser(ctx, params)
	case "pipeline.validate":
		return p.validate(ctx, params)
	case "pipeline.greet":
		return p.greet(params)
	case "pipeline.logs":
		return p.getLogs()
	case "pipeline.clear_logs":
		return p.clearLogs()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// run executes the full demo sequence
func (p *Provider) run(ctx context.Context) (*types.Result, error) {
	runID := uuid.NewString()
	p.addLog("INFO", "RUN", fmt.Sprintf("Starting pipeline run %s", runID))

	flow := p.newFlow()
	if err := flow.Run(ctx); err != nil {
		p.addLog("ERROR", "RUN", fmt.Sprintf("Run %s failed: %v", runID, err))
		return failure(err.Error())
	}

	p.addLog("INFO", "RUN", fmt.Sprintf("Run %s complete", runID))
	return success(map[string]interface{}{
		"run_id": runID,
		"status": "complete",
	})
}

func (p *Provider) fetchUser(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	id, ok := getInt(params, "id")
	if !ok {
		return failure("id parameter required")
	}

	p.addLog("INFO", "FETCH", fmt.Sprintf("Fetching user %d", id))
	user, err := p.newFlow().FetchUser(ctx, id)
	if err != nil {
		p.addLog("ERROR", "FETCH", fmt.Sprintf("Fetch failed: %v", err))
		return failure(err.Error())
	}

	return success(map[string]interface{}{"user": map[string]interface{}(user)})
}

func (p *Provider) validate(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	var user pipeline.Record
	if raw, ok := params["user"].(map[string]interface{}); ok {
		user = pipeline.Record(raw)
	}

	valid, err := p.newFlow().ValidateUser(ctx, user)
	if err != nil {
		return failure(err.Error())
	}

	p.addLog("INFO", "VALIDATE", fmt.Sprintf("Validation result: %t", valid))
	return success(map[string]interface{}{"valid": valid})
}

func (p *Provider) greet(params map[string]interface{}) (*types.Result, error) {
	name, ok := params["name"].(string)
	if !ok {
		return failure("name parameter required")
	}

	greeting := p.newFlow().Greet(name)
	p.addLog("INFO", "GREET", fmt.Sprintf("Greeted %s", name))
	return success(map[string]interface{}{"greeting": greeting})
}

func (p *Provider) getLogs() (*types.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	entries := make([]interface{}, 0, len(p.logs))
	for _, e := range p.logs {
		entries = append(entries, map[string]interface{}{
			"timestamp": e.Timestamp,
			"level":     e.Level,
			"stage":     e.Stage,
			"message":   e.Message,
		})
	}

	return success(map[string]interface{}{"logs": entries})
}

func (p *Provider) clearLogs() (*types.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.logs = nil

	return success(map[string]interface{}{"status": "cleared"})
}

func (p *Provider) newFlow() *pipeline.Flow {
	return pipeline.NewFlow(p.out, pipeline.WithFetchLatency(p.fetchLatency))
}

// addLog appends a log entry, keeping only the newest logCapacity entries.
func (p *Provider) addLog(level, stage, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.logs = append(p.logs, LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Stage:     stage,
		Message:   message,
	})
	if len(p.logs) > p.logCapacity {
		p.logs = p.logs[len(p.logs)-p.logCapacity:]
	}
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

func getInt(params map[string]interface{}, key string) (int, bool) {
	switch v := params[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
