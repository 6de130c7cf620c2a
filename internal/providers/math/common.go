package math

import (
	gomath "math"

	"github.com/shaharia-lab/code-navigator/internal/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetInt extracts an integer from params. JSON numbers arrive as
// float64, so whole-valued floats are accepted; fractional values are
// rejected.
func GetInt(params map[string]interface{}, key string) (int, bool) {
	val, ok := GetNumber(params, key)
	if !ok {
		return 0, false
	}
	if val != gomath.Trunc(val) {
		return 0, false
	}
	return int(val), true
}
