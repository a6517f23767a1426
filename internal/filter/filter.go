package filter

import (
	"math"
	"time"

	"github.com/atikulmunna/logan/internal/model"
)

// Filter decides which entries take part in an analysis.
// The recency cutoff is fixed when the Filter is built so every entry in a
// run is compared against the same reference instant.
type Filter struct {
	level     model.Level
	cutoff    time.Time
	hasCutoff bool
}

// New builds a Filter for the given criteria, anchoring any recency window at now.
func New(c model.FilterCriteria, now time.Time) Filter {
	f := Filter{level: c.Level}
	// A window wider than time.Duration can hold admits everything.
	if window := c.SinceHours * float64(time.Hour); window > 0 && window < math.MaxInt64 {
		f.cutoff = now.Add(-time.Duration(window))
		f.hasCutoff = true
	}
	return f
}

// Match reports whether entry passes every configured criterion.
func (f Filter) Match(entry model.LogEntry) bool {
	if f.hasCutoff && entry.Timestamp.Before(f.cutoff) {
		return false
	}
	if f.level != "" && entry.Level != f.level {
		return false
	}
	return true
}

// Cutoff returns the oldest timestamp the recency window admits.
func (f Filter) Cutoff() (time.Time, bool) {
	return f.cutoff, f.hasCutoff
}
