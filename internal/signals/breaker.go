package signals

import (
	"github.com/sony/gobreaker/v2"

	"resumescope/internal/config"
	"resumescope/internal/errors"
)

// Breaker wraps upstream fetches with circuit breaker protection.
// A nil Breaker executes calls directly.
type Breaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

// NewBreaker creates a circuit breaker configured for one upstream platform
func NewBreaker[T any](name string, cfg config.CircuitBreakerConfig, logger *errors.Logger) *Breaker[T] {
	// If circuit breaker is disabled, return nil to indicate no circuit breaker
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Info("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String(),
					"max_requests", cfg.MaxRequests,
					"failure_threshold", cfg.FailureThreshold)
			}
		},
	}

	return &Breaker[T]{
		cb: gobreaker.NewCircuitBreaker[T](settings),
	}
}

// Execute executes the provided function with circuit breaker protection
func (b *Breaker[T]) Execute(fn func() (T, error)) (T, error) {
	if b == nil || b.cb == nil {
		// If breaker is disabled/nil, just execute the function directly
		return fn()
	}
	return b.cb.Execute(fn)
}

// GetStats returns circuit breaker statistics
func (b *Breaker[T]) GetStats() map[string]any {
	if b == nil || b.cb == nil {
		return map[string]any{
			"enabled": false,
		}
	}

	return map[string]any{
		"name":    b.cb.Name(),
		"state":   b.cb.State().String(),
		"counts":  b.cb.Counts(),
		"enabled": true,
	}
}

// IsHealthy returns true if the circuit breaker is in closed state
func (b *Breaker[T]) IsHealthy() bool {
	if b == nil || b.cb == nil {
		return true // If no circuit breaker, consider it healthy
	}
	return b.cb.State() == gobreaker.StateClosed
}
