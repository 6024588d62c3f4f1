package engine

import "testing"

func TestDeferredActionFiresOnce(t *testing.T) {
	var d DeferredAction
	fired := 0
	d.Schedule(1, 5, func() { fired++ })

	if !d.Pending() || d.FireAt() != 6 {
		t.Fatalf("Expected pending at 6, got pending=%v at %f", d.Pending(), d.FireAt())
	}
	if d.Advance(5.9) {
		t.Error("Expected no fire before deadline")
	}
	if !d.Advance(6) {
		t.Error("Expected fire at deadline")
	}
	if d.Advance(7) {
		t.Error("Expected one-shot")
	}
	if fired != 1 {
		t.Errorf("Expected 1 call, got %d", fired)
	}
}

func TestDeferredActionCancel(t *testing.T) {
	var d DeferredAction
	fired := false
	d.Schedule(0, 1, func() { fired = true })
	gen := d.Generation()

	d.Cancel()
	d.Cancel()

	if d.Pending() {
		t.Error("Expected nothing pending after cancel")
	}
	if d.Generation() == gen {
		t.Error("Expected generation to change on cancel")
	}
	if d.Advance(10) || fired {
		t.Error("Expected cancelled action not to fire")
	}
}

func TestDeferredActionRescheduleReplaces(t *testing.T) {
	var d DeferredAction
	first, second := false, false
	d.Schedule(0, 1, func() { first = true })
	d.Schedule(0, 3, func() { second = true })

	d.Advance(2)
	if first || second {
		t.Error("Expected replaced schedule not to fire at the old deadline")
	}
	d.Advance(3)
	if first || !second {
		t.Errorf("Expected only the second action, first=%v second=%v", first, second)
	}
}

func TestDeferredActionFireEarly(t *testing.T) {
	var d DeferredAction
	if d.Fire() {
		t.Error("Expected Fire with nothing pending to report false")
	}

	fired := false
	d.Schedule(0, 100, func() { fired = true })
	if !d.Fire() || !fired {
		t.Error("Expected Fire to run the pending action immediately")
	}
}

func TestDeferredActionScheduleGeneration(t *testing.T) {
	var d DeferredAction
	seen := uint64(0)
	first := d.Schedule(0, 1, nil)
	second := d.Schedule(0, 1, func() { seen = d.Generation() })

	if second != first+1 {
		t.Errorf("Expected generation %d, got %d", first+1, second)
	}
	d.Advance(1)
	if seen != second {
		t.Errorf("Expected generation %d while firing, got %d", second, seen)
	}
}
