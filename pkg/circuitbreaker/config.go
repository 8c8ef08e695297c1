package circuitbreaker

import "time"

// Config holds the configuration for a circuit breaker.
type Config struct {
	// Name identifies the circuit breaker in logs and health reports.
	Name string

	// Enabled determines whether the circuit breaker is active.
	// When false, New returns nil and Execute passes through directly.
	Enabled bool

	// MaxRequests is the number of trial requests allowed while half-open.
	// Zero lets a single request through.
	MaxRequests uint

	// Interval is the cyclic period of the closed state after which the
	// internal counts are cleared. Zero never clears them.
	Interval time.Duration

	// Timeout is how long the breaker stays open before going half-open.
	// Zero defaults to 60 seconds.
	Timeout time.Duration

	// FailureThreshold is the number of consecutive failures that trips the breaker.
	FailureThreshold uint

	// IsSuccessful reports whether an error returned by the wrapped call
	// counts as a success. Context cancellation is always treated as success
	// so that abandoned requests never trip the breaker.
	IsSuccessful func(err error) bool

	// OnStateChange is invoked on every state transition.
	OnStateChange func(name string, from, to State)
}
