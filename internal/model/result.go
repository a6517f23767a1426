package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// LevelCounts holds one counter per level. All four levels are always present.
type LevelCounts [len(Levels)]int

// Inc adds one to the counter for l. Unknown levels are ignored.
func (c *LevelCounts) Inc(l Level) {
	if i := l.index(); i >= 0 {
		c[i]++
	}
}

// Get returns the counter for l.
func (c LevelCounts) Get(l Level) int {
	if i := l.index(); i >= 0 {
		return c[i]
	}
	return 0
}

// Total returns the sum of all counters.
func (c LevelCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// MarshalJSON emits an object keyed by level name in report order.
func (c LevelCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range Levels {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(string(l)))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(c[i]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form written by MarshalJSON.
func (c *LevelCounts) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*c = LevelCounts{}
	for k, v := range m {
		if l, ok := ParseLevel(k); ok {
			c[l.index()] = v
		}
	}
	return nil
}

// ErrorCount is one row of the top error table.
type ErrorCount struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// AnalysisResult is the aggregated summary of one analysis run.
type AnalysisResult struct {
	File         string       `json:"file"`
	TotalEntries int          `json:"totalEntries"`
	LevelCounts  LevelCounts  `json:"levelCounts"`
	TopErrors    []ErrorCount `json:"topErrors"`
}
