package engine

// TickFeed is a synchronous TickSource: Publish calls subscribers in registration order
type TickFeed struct {
	subscribers []func(now float64)
	last        float64
	count       uint64
}

// NewTickFeed creates an empty feed
func NewTickFeed() *TickFeed {
	return &TickFeed{}
}

// Subscribe registers fn for every subsequent tick
func (f *TickFeed) Subscribe(fn func(now float64)) {
	f.subscribers = append(f.subscribers, fn)
}

// Publish delivers one tick; timestamps earlier than the last one are clamped
func (f *TickFeed) Publish(now float64) {
	if now < f.last {
		now = f.last
	}
	f.last = now
	f.count++
	for _, fn := range f.subscribers {
		fn(now)
	}
}

// Count returns the number of ticks published
func (f *TickFeed) Count() uint64 {
	return f.count
}
