package verification

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// defaultMockDelay simulates the latency of a real verification call.
const defaultMockDelay = 2 * time.Second

// MockStrategy simulates verification for demonstrations and tests. It
// classifies by filename hints when present and falls back to a randomized
// choice: names containing "fake" (and the mtech slot, which the demo always
// flags) come back Fraud, names containing "valid" come back Genuine.
type MockStrategy struct {
	delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockStrategy creates a mock strategy with the default delay and a
// time-seeded random source.
func NewMockStrategy() *MockStrategy {
	return NewSeededMockStrategy(time.Now().UnixNano(), defaultMockDelay)
}

// NewSeededMockStrategy creates a mock strategy with a fixed seed and delay,
// for deterministic tests.
func NewSeededMockStrategy(seed int64, delay time.Duration) *MockStrategy {
	return &MockStrategy{
		delay: delay,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Verify waits for the simulated delay and returns a heuristic classification.
// Cancellation resolves to an Error outcome.
func (m *MockStrategy) Verify(ctx context.Context, req Request) Outcome {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return Outcome{Status: StatusError, Detail: "Verification cancelled."}
		}
	}

	name := strings.ToLower(req.FileName)
	if name == "" {
		name = strings.ToLower(req.ExternalRef)
	}

	switch {
	case strings.Contains(name, "fake") || req.DocumentType == "mtech":
		return Outcome{Status: StatusFraud}
	case strings.Contains(name, "valid"):
		return Outcome{Status: StatusGenuine}
	}

	m.mu.Lock()
	genuine := m.rng.Float64() > 0.5
	m.mu.Unlock()
	if genuine {
		return Outcome{Status: StatusGenuine}
	}
	return Outcome{Status: StatusFraud}
}
