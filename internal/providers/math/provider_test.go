package math

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaharia-lab/code-navigator/internal/calc"
)

func TestMathProvider(t *testing.T) {
	provider := NewProvider(calc.WithOutput(&bytes.Buffer{}))
	ctx := context.Background()

	t.Run("Add", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.add", map[string]interface{}{
			"a": 5.0,
			"b": 3.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 8, result.Data["result"])
	})

	t.Run("Subtract", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.subtract", map[string]interface{}{
			"a": 10,
			"b": 3,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 7, result.Data["result"])
	})

	t.Run("Multiply", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.multiply", map[string]interface{}{
			"a": 4.0,
			"b": 5.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 20, result.Data["result"])
	})

	t.Run("Multiply with negative multiplier", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.multiply", map[string]interface{}{
			"a": 4.0,
			"b": -5.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 0, result.Data["result"])
	})

	t.Run("Divide", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.divide", map[string]interface{}{
			"a": 10.0,
			"b": 4.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 2.5, result.Data["result"])
	})

	t.Run("Divide by zero", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.divide", map[string]interface{}{
			"a": 10.0,
			"b": 0.0,
		}, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		assert.Contains(t, *result.Error, "division by zero")
	})

	t.Run("Power", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.power", map[string]interface{}{
			"base":     2.0,
			"exponent": 5.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 32, result.Data["result"])
	})

	t.Run("Power with zero exponent", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.power", map[string]interface{}{
			"base":     7.0,
			"exponent": 0.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 1, result.Data["result"])
	})

	t.Run("History reflects logged operations", func(t *testing.T) {
		p := NewProvider(calc.WithOutput(&bytes.Buffer{}))

		_, err := p.Execute(ctx, "math.add", map[string]interface{}{"a": 5, "b": 3}, nil)
		require.NoError(t, err)
		_, err = p.Execute(ctx, "math.multiply", map[string]interface{}{"a": 4, "b": 5}, nil)
		require.NoError(t, err)

		result, err := p.Execute(ctx, "math.history", nil, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, []string{"5 + 3 = 8", "4 * 5 = 20"}, result.Data["history"])
	})

	t.Run("Divide and power are not logged", func(t *testing.T) {
		p := NewProvider(calc.WithOutput(&bytes.Buffer{}))

		_, err := p.Execute(ctx, "math.divide", map[string]interface{}{"a": 10, "b": 2}, nil)
		require.NoError(t, err)

		result, err := p.Execute(ctx, "math.history", nil, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Data["history"])
	})

	t.Run("Missing parameter", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.add", map[string]interface{}{"a": 1}, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		assert.Contains(t, *result.Error, "b parameter required")
	})

	t.Run("Fractional value rejected for integer tool", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.add", map[string]interface{}{
			"a": 1.5,
			"b": 2.0,
		}, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
	})

	t.Run("Unknown tool", func(t *testing.T) {
		result, err := provider.Execute(ctx, "math.unknown", nil, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		assert.Contains(t, *result.Error, "unknown tool")
	})
}

func TestMathProviderDefinition(t *testing.T) {
	def := NewProvider(calc.WithOutput(&bytes.Buffer{})).Definition()

	assert.Equal(t, "math", def.ID)
	assert.Len(t, def.Tools, 6)

	ids := make([]string, 0, len(def.Tools))
	for _, tool := range def.Tools {
		ids = append(ids, tool.ID)
	}
	assert.Contains(t, ids, "math.divide")
	assert.Contains(t, ids, "math.history")
}
