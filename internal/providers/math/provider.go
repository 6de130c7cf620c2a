package math

import (
	"context"
	"fmt"

	"github.com/shaharia-lab/code-navigator/internal/calc"
	"github.com/shaharia-lab/code-navigator/internal/types"
)

// Provider exposes the calc package as a tool service. Add, subtract
// and multiply route through an owned Calculator so every call lands
// in its history; divide and power are stateless.
type Provider struct {
	calculator *calc.Calculator
}

// NewProvider creates a math provider with a fresh calculator.
func NewProvider(opts ...calc.Option) *Provider {
	return &Provider{
		calculator: calc.NewCalculator(opts...),
	}
}

// Definition returns service metadata
func (m *Provider) Definition() types.Service {
	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Integer arithmetic with operation history",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"history",
		},
		Tools: []types.Tool{
			{
				ID:          "math.add",
				Name:        "Add",
				Description: "Add two integers",
				Parameters: []types.Parameter{
					{Name: "a", Type: "number", Description: "First number", Required: true},
					{Name: "b", Type: "number", Description: "Second number", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "math.subtract",
				Name:        "Subtract",
				Description: "Subtract b from a",
				Parameters: []types.Parameter{
					{Name: "a", Type: "number", Description: "First number", Required: true},
					{Name: "b", Type: "number", Description: "Second number", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "math.multiply",
				Name:        "Multiply",
				Description: "Multiply via repeated addition (negative multiplier yields 0)",
				Parameters: []types.Parameter{
					{Name: "a", Type: "number", Description: "First number", Required: true},
					{Name: "b", Type: "number", Description: "Second number", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "math.divide",
				Name:        "Divide",
				Description: "Divide a by b; fails when b is zero",
				Parameters: []types.Parameter{
					{Name: "a", Type: "number", Description: "Dividend", Required: true},
					{Name: "b", Type: "number", Description: "Divisor", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "math.power",
				Name:        "Power",
				Description: "Raise base to exponent via repeated multiplication",
				Parameters: []types.Parameter{
					{Name: "base", Type: "number", Description: "Base", Required: true},
					{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
				},
				Returns: "number",
			},
			{
				ID:          "math.history",
				Name:        "History",
				Description: "Operation history of the calculator, in call order",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
		},
	}
}

// Execute routes a tool call to the matching operation
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "math.add":
		return m.add(params)
	case "math.subtract":
		return m.subtract(params)
	case "math.multiply":
		return m.multiply(params)
	case "math.divide":
		return m.divide(params)
	case "math.power":
		return m.power(params)
	case "math.history":
		return m.history()
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (m *Provider) add(params map[string]interface{}) (*types.Result, error) {
	a, ok := GetInt(params, "a")
	if !ok {
		return Failure("a parameter required")
	}
	b, ok := GetInt(params, "b")
	if !ok {
		return Failure("b parameter required")
	}

	return Success(map[string]interface{}{"result": m.calculator.Add(a, b)})
}

func (m *Provider) subtract(params map[string]interface{}) (*types.Result, error) {
	a, ok := GetInt(params, "a")
	if !ok {
		return Failure("a parameter required")
	}
	b, ok := GetInt(params, "b")
	if !ok {
		return Failure("b parameter required")
	}

	return Success(map[string]interface{}{"result": m.calculator.Subtract(a, b)})
}

func (m *Provider) multiply(params map[string]interface{}) (*types.Result, error) {
	a, ok := GetInt(params, "a")
	if !ok {
		return Failure("a parameter required")
	}
	b, ok := GetInt(params, "b")
	if !ok {
		return Failure("b parameter required")
	}

	return Success(map[string]interface{}{"result": m.calculator.Multiply(a, b)})
}

func (m *Provider) divide(params map[string]interface{}) (*types.Result, error) {
	a, ok := GetNumber(params, "a")
	if !ok {
		return Failure("a parameter required")
	}
	b, ok := GetNumber(params, "b")
	if !ok {
		return Failure("b parameter required")
	}

	result, err := calc.Divide(a, b)
	if err != nil {
		return Failure(err.Error())
	}

	return Success(map[string]interface{}{"result": result})
}

func (m *Provider) power(params map[string]interface{}) (*types.Result, error) {
	base, ok := GetInt(params, "base")
	if !ok {
		return Failure("base parameter required")
	}
	exponent, ok := GetInt(params, "exponent")
	if !ok {
		return Failure("exponent parameter required")
	}

	return Success(map[string]interface{}{"result": calc.Power(base, exponent)})
}

func (m *Provider) history() (*types.Result, error) {
	return Success(map[string]interface{}{"history": m.calculator.History()})
}
