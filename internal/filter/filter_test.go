package filter

import (
	"math"
	"testing"
	"time"

	"github.com/atikulmunna/logan/internal/model"
)

var now = time.Date(2026, 2, 17, 12, 0, 0, 0, time.Local)

func entryAt(d time.Duration, level model.Level) model.LogEntry {
	return model.LogEntry{Timestamp: now.Add(-d), Level: level, Message: "m"}
}

func TestNoCriteriaMatchesEverything(t *testing.T) {
	f := New(model.FilterCriteria{}, now)

	for _, e := range []model.LogEntry{
		entryAt(1000*time.Hour, model.LevelDebug),
		entryAt(-5*time.Hour, model.LevelInfo),
		{},
	} {
		if !f.Match(e) {
			t.Errorf("expected %+v to match", e)
		}
	}
	if _, ok := f.Cutoff(); ok {
		t.Error("expected no cutoff")
	}
}

func TestRecencyWindow(t *testing.T) {
	f := New(model.FilterCriteria{SinceHours: 2}, now)

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"just now", 0, true},
		{"one hour ago", time.Hour, true},
		{"exactly at cutoff", 2 * time.Hour, true},
		{"just past cutoff", 2*time.Hour + time.Second, false},
		{"yesterday", 24 * time.Hour, false},
		{"future dated", -3 * time.Hour, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Match(entryAt(tt.age, model.LevelInfo)); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}

	cutoff, ok := f.Cutoff()
	if !ok || !cutoff.Equal(now.Add(-2*time.Hour)) {
		t.Errorf("unexpected cutoff %v (set=%v)", cutoff, ok)
	}
}

func TestFractionalHours(t *testing.T) {
	f := New(model.FilterCriteria{SinceHours: 0.5}, now)

	if !f.Match(entryAt(29*time.Minute, model.LevelInfo)) {
		t.Error("expected entry 29m old to match a 30m window")
	}
	if f.Match(entryAt(31*time.Minute, model.LevelInfo)) {
		t.Error("expected entry 31m old to be excluded from a 30m window")
	}
}

func TestHugeWindowAdmitsEverything(t *testing.T) {
	for _, hours := range []float64{1e300, math.MaxFloat64, math.Inf(1)} {
		f := New(model.FilterCriteria{SinceHours: hours}, now)
		if _, ok := f.Cutoff(); ok {
			t.Errorf("hours=%g: expected no cutoff", hours)
		}
		if !f.Match(entryAt(100*365*24*time.Hour, model.LevelInfo)) {
			t.Errorf("hours=%g: expected a century-old entry to match", hours)
		}
	}
}

func TestLevelFilter(t *testing.T) {
	f := New(model.FilterCriteria{Level: model.LevelError}, now)

	for _, l := range model.Levels {
		want := l == model.LevelError
		if got := f.Match(entryAt(time.Hour, l)); got != want {
			t.Errorf("level %s: Match() = %v, want %v", l, got, want)
		}
	}
}

func TestCombinedCriteria(t *testing.T) {
	f := New(model.FilterCriteria{SinceHours: 1, Level: model.LevelWarn}, now)

	tests := []struct {
		e    model.LogEntry
		want bool
	}{
		{entryAt(10*time.Minute, model.LevelWarn), true},
		{entryAt(10*time.Minute, model.LevelError), false},
		{entryAt(2*time.Hour, model.LevelWarn), false},
		{entryAt(2*time.Hour, model.LevelInfo), false},
	}
	for _, tt := range tests {
		if got := f.Match(tt.e); got != tt.want {
			t.Errorf("Match(%s @ %v) = %v, want %v", tt.e.Level, tt.e.Timestamp, got, tt.want)
		}
	}
}
