package engine

import "time"

// MockClock provides a controllable time source for testing.
// The scheduler and all game timers run off Clock.Now, so advancing a
// MockClock and pumping Scheduler.RunDue replays any timing scenario
// deterministically.
type MockClock struct {
	currentTime time.Time
}

// NewMockClock creates a new mock clock with the given start time.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{currentTime: startTime}
}

// Now returns the current mocked time.
func (m *MockClock) Now() time.Time {
	return m.currentTime
}

// SetTime sets the current time for the mock.
func (m *MockClock) SetTime(t time.Time) {
	m.currentTime = t
}

// Advance advances the current time by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}
