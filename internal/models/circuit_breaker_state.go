package models

// CircuitBreakerState represents the state of a circuit breaker protecting
// an external dependency (closed, open, half-open).
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half-open"
	default:
		return "unknown"
	}
}
