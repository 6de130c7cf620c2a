package pipeline

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(out *bytes.Buffer) *Provider {
	return NewProvider(WithOutput(out), WithFetchLatency(time.Millisecond))
}

func TestPipelineProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("Run", func(t *testing.T) {
		var out bytes.Buffer
		p := newTestProvider(&out)

		result, err := p.Execute(ctx, "pipeline.run", nil, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, "complete", result.Data["status"])
		assert.NotEmpty(t, result.Data["run_id"])

		assert.Contains(t, out.String(), "User is valid:")
		assert.Contains(t, out.String(), "Calling greet")
		assert.Contains(t, out.String(), "Result: Hello, World!")
	})

	t.Run("FetchUser", func(t *testing.T) {
		p := newTestProvider(&bytes.Buffer{})

		result, err := p.Execute(ctx, "pipeline.fetch_user", map[string]interface{}{"id": 1.0}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, map[string]interface{}{"data": "mock", "processed": true}, result.Data["user"])
	})

	t.Run("FetchUser requires id", func(t *testing.T) {
		p := newTestProvider(&bytes.Buffer{})

		result, err := p.Execute(ctx, "pipeline.fetch_user", nil, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
	})

	t.Run("Validate record", func(t *testing.T) {
		p := newTestProvider(&bytes.Buffer{})

		result, err := p.Execute(ctx, "pipeline.validate", map[string]interface{}{
			"user": map[string]interface{}{"data": "mock"},
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, true, result.Data["valid"])
	})

	t.Run("Validate nil record", func(t *testing.T) {
		p := newTestProvider(&bytes.Buffer{})

		result, err := p.Execute(ctx, "pipeline.validate", nil, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, false, result.Data["valid"])
	})

	t.Run("Greet", func(t *testing.T) {
		var out bytes.Buffer
		p := newTestProvider(&out)

		result, err := p.Execute(ctx, "pipeline.greet", map[string]interface{}{"name": "World"}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, "Hello, World!", result.Data["greeting"])
		assert.Equal(t, "Calling greet\nResult: Hello, World!\n", out.String())
	})

	t.Run("Logs record activity and can be cleared", func(t *testing.T) {
		p := newTestProvider(&bytes.Buffer{})

		_, err := p.Execute(ctx, "pipeline.run", nil, nil)
		require.NoError(t, err)

		result, err := p.Execute(ctx, "pipeline.logs", nil, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		logs := result.Data["logs"].([]interface{})
		assert.NotEmpty(t, logs)

		_, err = p.Execute(ctx, "pipeline.clear_logs", nil, nil)
		require.NoError(t, err)

		result, err = p.Execute(ctx, "pipeline.logs", nil, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Data["logs"])
	})

	t.Run("Log capacity is bounded", func(t *testing.T) {
		p := NewProvider(
			WithOutput(&bytes.Buffer{}),
			WithFetchLatency(time.Millisecond),
			WithLogCapacity(3),
		)

		for i := 0; i < 5; i++ {
			_, err := p.Execute(ctx, "pipeline.greet", map[string]interface{}{"name": "World"}, nil)
			require.NoError(t, err)
		}

		result, err := p.Execute(ctx, "pipeline.logs", nil, nil)
		require.NoError(t, err)
		assert.Len(t, result.Data["logs"], 3)
	})

	t.Run("Run honors cancellation", func(t *testing.T) {
		p := NewProvider(WithOutput(&bytes.Buffer{}), WithFetchLatency(time.Second))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		result, err := p.Execute(cancelled, "pipeline.run", nil, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
	})

	t.Run("Unknown tool", func(t *testing.T) {
		p := newTestProvider(&bytes.Buffer{})

		result, err := p.Execute(ctx, "pipeline.unknown", nil, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		assert.Contains(t, *result.Error, "unknown tool")
	})
}

func TestPipelineProviderDefinition(t *testing.T) {
	def := NewProvider().Definition()

	assert.Equal(t, "pipeline", def.ID)
	assert.Len(t, def.Tools, 6)
}
