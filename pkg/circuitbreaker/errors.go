package circuitbreaker

import "errors"

var (
	// ErrCircuitOpen is returned while the breaker rejects calls to let the
	// downstream dependency recover.
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrTooManyRequests is returned when the half-open trial budget is used up.
	ErrTooManyRequests = errors.New("too many requests in half-open state")
)

// IsUnavailable reports whether err was produced by the breaker itself rather
// than the wrapped call.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrCircuitOpen) || errors.Is(err, ErrTooManyRequests)
}
