package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/atikulmunna/logan/internal/model"
)

// TimestampLayout is the date and time prefix of every well-formed line.
const TimestampLayout = "2006-01-02 15:04:05"

// maxLineSize bounds a single line read by Scan.
const maxLineSize = 1024 * 1024

// Format: YYYY-MM-DD HH:MM:SS [LEVEL] message
var lineRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) \[(INFO|WARN|ERROR|DEBUG)\] (.*)$`)

// ParseLine converts one raw line into a LogEntry.
// It reports false for blank or malformed lines, including lines whose
// timestamp is not a real calendar date-time.
func ParseLine(line string) (model.LogEntry, bool) {
	matches := lineRe.FindStringSubmatch(line)
	if matches == nil {
		return model.LogEntry{}, false
	}

	// Naive local time; the log carries no zone.
	ts, err := time.ParseInLocation(TimestampLayout, matches[1], time.Local)
	if err != nil {
		return model.LogEntry{}, false
	}

	msg := strings.TrimRight(matches[3], " \t\r")
	if strings.TrimSpace(msg) == "" {
		return model.LogEntry{}, false
	}

	return model.LogEntry{
		Timestamp: ts,
		Level:     model.Level(matches[2]),
		Message:   msg,
	}, true
}

// Stats counts what Scan saw.
type Stats struct {
	Lines   int // total lines read
	Parsed  int // lines that produced an entry
	Skipped int // blank or malformed lines
}

// Scan reads r line by line and calls fn for every well-formed entry.
// Malformed lines are counted and dropped; only read failures are returned.
func Scan(r io.Reader, fn func(model.LogEntry)) (Stats, error) {
	var st Stats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		st.Lines++
		entry, ok := ParseLine(scanner.Text())
		if !ok {
			st.Skipped++
			continue
		}
		st.Parsed++
		fn(entry)
	}
	if err := scanner.Err(); err != nil {
		return st, fmt.Errorf("scan line %d: %w", st.Lines+1, err)
	}
	return st, nil
}
