package engine

// DeferredAction is a cancellable one-shot action fired by the game clock
// Scheduling again replaces the pending action; Cancel drops it
type DeferredAction struct {
	fireAt     float64
	fn         func()
	armed      bool
	generation uint64
}

// Schedule arms fn to run on the first Advance at or after now+delay
// Returns the generation keying this schedule; Generation still reports it while fn runs
func (d *DeferredAction) Schedule(now, delay float64, fn func()) uint64 {
	d.fireAt = now + delay
	d.fn = fn
	d.armed = true
	d.generation++
	return d.generation
}

// Cancel disarms the pending action; safe when nothing is pending
func (d *DeferredAction) Cancel() {
	if !d.armed {
		return
	}
	d.armed = false
	d.fn = nil
	d.generation++
}

// Pending reports whether an action is armed
func (d *DeferredAction) Pending() bool {
	return d.armed
}

// FireAt returns the game time of the pending action
func (d *DeferredAction) FireAt() float64 {
	return d.fireAt
}

// Generation identifies the current schedule; it changes on every Schedule and Cancel
func (d *DeferredAction) Generation() uint64 {
	return d.generation
}

// Advance runs the action if it is due and reports whether it fired
func (d *DeferredAction) Advance(now float64) bool {
	if !d.armed || now < d.fireAt {
		return false
	}
	fn := d.fn
	d.armed = false
	d.fn = nil
	if fn != nil {
		fn()
	}
	return true
}

// Fire runs the pending action immediately regardless of its deadline
func (d *DeferredAction) Fire() bool {
	if !d.armed {
		return false
	}
	return d.Advance(d.fireAt)
}
