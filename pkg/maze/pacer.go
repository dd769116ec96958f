package maze

import "time"

// DefaultMaxBurst bounds the catch-up work of a single paced Step.
const DefaultMaxBurst = 64

// Pacer turns a monotonic clock into a number of work units.
//
// With a zero Interval every call is worth exactly one unit. Otherwise the
// pacer owes one unit per Interval elapsed since its last unit, so a driver
// that ticks faster than Interval gets zero-unit calls and one that ticks
// slower catches up, at most MaxBurst units per call. Backlog beyond the
// burst is dropped.
type Pacer struct {
	Interval time.Duration
	MaxBurst int

	last time.Duration
}

// Reset rewinds the pacer's clock to zero.
func (p *Pacer) Reset() { p.last = 0 }

// Due returns the number of units owed at time now and advances the clock.
func (p *Pacer) Due(now time.Duration) int {
	if p.Interval <= 0 {
		return 1
	}
	limit := p.MaxBurst
	if limit <= 0 {
		limit = DefaultMaxBurst
	}
	n := 0
	for p.last < now && n < limit {
		p.last += p.Interval
		n++
	}
	if p.last < now {
		p.last = now
	}
	return n
}

// Drive runs next as many times as are due at now, stopping early when next
// reports completion.
func (p *Pacer) Drive(now time.Duration, next func() (Marker, bool)) bool {
	done := false
	for n := p.Due(now); n > 0 && !done; n-- {
		_, done = next()
	}
	return done
}
