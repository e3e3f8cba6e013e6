package util

import (
	"testing"
	"time"
)

func TestCircuitBreakerOpensAtThreshold(t *testing.T) {
	cb := NewCircuitBreaker(2, time.Minute, nil)

	cb.RecordFailure()
	if !cb.Allow() || cb.State() != CircuitStateClosed {
		t.Fatalf("one failure must not open the circuit")
	}

	cb.RecordFailure()
	if cb.State() != CircuitStateOpen {
		t.Fatalf("expected OPEN, got %s", cb.State())
	}
	if cb.Allow() {
		t.Fatalf("open circuit must reject calls")
	}
}

func TestCircuitBreakerHalfOpenTrial(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(1, 10*time.Second, nil)
	cb.now = func() time.Time { return now }

	cb.RecordFailure()
	now = now.Add(11 * time.Second)

	if !cb.Allow() {
		t.Fatalf("expected trial call after cooldown")
	}
	if cb.Allow() {
		t.Fatalf("only one trial call may run while HALF_OPEN")
	}

	cb.RecordFailure()
	if cb.State() != CircuitStateOpen || cb.Allow() {
		t.Fatalf("failed trial call must reopen the circuit")
	}

	now = now.Add(11 * time.Second)
	if !cb.Allow() {
		t.Fatalf("expected second trial call")
	}
	cb.RecordSuccess()
	if cb.State() != CircuitStateClosed || !cb.Allow() {
		t.Fatalf("successful trial call must close the circuit")
	}
}
