package sqlclock

import (
	"context"
	"sync/atomic"
	"time"
)

// MockClock is a DatabaseClock returning a fixed time or a fixed error.
type MockClock struct {
	Time  time.Time
	Err   error
	calls atomic.Int64
}

func NewMockClock(ts time.Time) *MockClock {
	return &MockClock{Time: ts}
}

func NewFailingMockClock(err error) *MockClock {
	return &MockClock{Err: err}
}

func (m *MockClock) Now(ctx context.Context) (time.Time, error) {
	m.calls.Add(1)

	if m.Err != nil {
		return time.Time{}, m.Err
	}
	return m.Time, nil
}

// Calls returns how many times Now was invoked.
func (m *MockClock) Calls() int {
	return int(m.calls.Load())
}
