package model

import (
	"encoding/json"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"INFO", LevelInfo, true},
		{"warn", LevelWarn, true},
		{" Error ", LevelError, true},
		{"debug", LevelDebug, true},
		{"FATAL", "", false},
		{"WARNING", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLevelCounts(t *testing.T) {
	var c LevelCounts
	c.Inc(LevelInfo)
	c.Inc(LevelInfo)
	c.Inc(LevelError)
	c.Inc(Level("FATAL"))

	if c.Get(LevelInfo) != 2 {
		t.Errorf("expected 2 INFO, got %d", c.Get(LevelInfo))
	}
	if c.Get(LevelError) != 1 {
		t.Errorf("expected 1 ERROR, got %d", c.Get(LevelError))
	}
	if c.Get(Level("FATAL")) != 0 {
		t.Errorf("unknown level should read as 0")
	}
	if c.Total() != 3 {
		t.Errorf("expected total 3, got %d", c.Total())
	}
}

func TestLevelCountsJSONKeyOrder(t *testing.T) {
	var c LevelCounts
	c.Inc(LevelWarn)

	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"INFO":0,"WARN":1,"ERROR":0,"DEBUG":0}`
	if string(raw) != want {
		t.Errorf("got %s, want %s", raw, want)
	}

	var back LevelCounts
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back != c {
		t.Errorf("decoded %v, want %v", back, c)
	}
}
