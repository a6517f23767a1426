package model

import (
	"strings"
	"time"
)

// Level is one of the four supported log severities.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelDebug Level = "DEBUG"
)

// Levels lists every level in report order.
var Levels = [...]Level{LevelInfo, LevelWarn, LevelError, LevelDebug}

// ParseLevel returns the Level named by s, ignoring case and surrounding space.
func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if l.index() < 0 {
		return "", false
	}
	return l, true
}

// index returns the position of l in Levels, or -1.
func (l Level) index() int {
	for i, v := range Levels {
		if v == l {
			return i
		}
	}
	return -1
}

// LogEntry represents a single parsed log line.
type LogEntry struct {
	Timestamp time.Time
	Level     Level
	Message   string
}

// FilterCriteria narrows which entries take part in an analysis.
// Zero values impose no restriction.
type FilterCriteria struct {
	SinceHours float64 // recency window in hours
	Level      Level   // exact level match
}
