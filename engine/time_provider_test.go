package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	startTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if !mock.Now().Equal(startTime) {
		t.Errorf("Expected initial time %v, got %v", startTime, mock.Now())
	}

	mock.Advance(time.Second)
	mock.AdvanceSeconds(0.5)

	expected := startTime.Add(1500 * time.Millisecond)
	if !mock.Now().Equal(expected) {
		t.Errorf("Expected %v after advances, got %v", expected, mock.Now())
	}
}

func TestPausableClockElapsed(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	if clock.Seconds() != 0 {
		t.Errorf("Expected 0 seconds at creation, got %f", clock.Seconds())
	}

	mock.Advance(2 * time.Second)
	if clock.Seconds() != 2 {
		t.Errorf("Expected 2 seconds, got %f", clock.Seconds())
	}
}

func TestPausableClockFreezesDuringPause(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(10 * time.Second)

	if !clock.IsPaused() {
		t.Fatal("Expected clock to be paused")
	}
	if clock.Elapsed() != time.Second {
		t.Errorf("Expected elapsed frozen at 1s, got %v", clock.Elapsed())
	}
	if clock.TotalPauseDuration() != 10*time.Second {
		t.Errorf("Expected active pause of 10s, got %v", clock.TotalPauseDuration())
	}

	clock.Resume()
	mock.Advance(time.Second)

	if clock.Elapsed() != 2*time.Second {
		t.Errorf("Expected elapsed 2s after resume, got %v", clock.Elapsed())
	}
}

func TestPausableClockToggle(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	if !clock.Toggle() {
		t.Error("Expected first toggle to pause")
	}
	// Double pause is a no-op
	clock.Pause()
	mock.Advance(time.Second)
	if clock.Toggle() {
		t.Error("Expected second toggle to resume")
	}
	if clock.Elapsed() != 0 {
		t.Errorf("Expected no game time to pass while paused, got %v", clock.Elapsed())
	}
}
