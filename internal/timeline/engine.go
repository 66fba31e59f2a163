package timeline

import "time"

// DefaultMinBarWidth is the narrowest bar, in pixels, the engine will emit
const DefaultMinBarWidth = 4

// Engine computes timeline geometry. The zero value is not usable; build one
// with NewEngine.
type Engine struct {
	now         func() time.Time
	minBarWidth int
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces the wall clock used for "today" and overdue checks
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithMinBarWidth sets the minimum rendered bar width in pixels. Values
// below 1 are ignored so bars never disappear.
func WithMinBarWidth(px int) Option {
	return func(e *Engine) {
		if px >= 1 {
			e.minBarWidth = px
		}
	}
}

// NewEngine creates a layout engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:         time.Now,
		minBarWidth: DefaultMinBarWidth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine's notion of the current time
func (e *Engine) Now() time.Time {
	return e.now()
}

// MinBarWidth returns the minimum bar width in pixels
func (e *Engine) MinBarWidth() int {
	return e.minBarWidth
}
