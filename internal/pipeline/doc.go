// Package pipeline implements a sequential fetch -> validate -> greet
// demo flow with a fixed simulated fetch latency.
//
// The flow is single-threaded by construction: every step runs only
// after its predecessor finished. FetchData stands in for a network
// call but never touches the network; its only failure mode is
// context cancellation. Greet is composed with a call-logging
// decorator (WithCallLog) rather than wrapped at definition time, so
// the same decorator can wrap any func(string) string at a call site.
package pipeline
