// Package providers implements the service provider system.
//
// Service providers expose capabilities through a standardized
// tool-based interface dispatched by the service registry.
//
// Available Providers:
//   - Math: integer arithmetic with an operation history
//   - Pipeline: sequential fetch-validate-greet demo flow
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	m := math.NewProvider()
//	result, err := m.Execute(ctx, "math.add", params, appCtx)
package providers
