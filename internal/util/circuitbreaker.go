package util

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// CircuitState represents the state of the circuit breaker
type CircuitState string

const (
	CircuitStateClosed   CircuitState = "CLOSED"    // 정상 작동
	CircuitStateOpen     CircuitState = "OPEN"      // 요청 차단
	CircuitStateHalfOpen CircuitState = "HALF_OPEN" // 시험 요청 1건 허용
)

func (s CircuitState) String() string {
	return string(s)
}

// CircuitBreaker stops calling a failing dependency for a cooldown period.
// After the cooldown a single trial call is let through; its outcome closes or
// reopens the circuit.
type CircuitBreaker struct {
	mu        sync.Mutex
	state     CircuitState
	failures  int
	threshold int
	cooldown  time.Duration
	openedAt  time.Time
	probing   bool
	now       func() time.Time
	logger    *zap.Logger
}

func NewCircuitBreaker(threshold int, cooldown time.Duration, logger *zap.Logger) *CircuitBreaker {
	if threshold <= 0 {
		threshold = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CircuitBreaker{
		state:     CircuitStateClosed,
		threshold: threshold,
		cooldown:  cooldown,
		now:       time.Now,
		logger:    logger,
	}
}

// Allow reports whether a call may proceed. In HALF_OPEN only one trial call is admitted.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case CircuitStateOpen:
		if cb.now().Sub(cb.openedAt) < cb.cooldown {
			return false
		}
		cb.transitionTo(CircuitStateHalfOpen)
		cb.probing = true
		return true
	case CircuitStateHalfOpen:
		if cb.probing {
			return false
		}
		cb.probing = true
		return true
	default:
		return true
	}
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	cb.probing = false
	if cb.state != CircuitStateClosed {
		cb.transitionTo(CircuitStateClosed)
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	cb.probing = false

	if cb.state == CircuitStateHalfOpen || cb.failures >= cb.threshold {
		cb.openedAt = cb.now()
		if cb.state != CircuitStateOpen {
			cb.transitionTo(CircuitStateOpen)
		}
	}
}

func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// must be called with mu held
func (cb *CircuitBreaker) transitionTo(newState CircuitState) {
	oldState := cb.state
	cb.state = newState

	fields := []zap.Field{
		zap.String("from", oldState.String()),
		zap.String("to", newState.String()),
		zap.Int("failure_count", cb.failures),
	}
	if newState == CircuitStateOpen {
		fields = append(fields, zap.Time("next_trial", cb.openedAt.Add(cb.cooldown)))
		cb.logger.Warn("Circuit breaker opened", fields...)
		return
	}
	cb.logger.Info("Circuit breaker state transition", fields...)
}
