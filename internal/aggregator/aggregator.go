package aggregator

import (
	"sort"

	"github.com/atikulmunna/logan/internal/model"
)

// DefaultTopN is how many error messages a report lists by default.
const DefaultTopN = 5

// Aggregator folds log entries into level counts and an error frequency table.
type Aggregator struct {
	topN        int
	levelCounts model.LevelCounts

	// errorIndex maps a message to its slot in errors; errors keeps
	// first-seen order for tie-breaking.
	errorIndex map[string]int
	errors     []model.ErrorCount
}

// New creates an Aggregator that keeps the topN most frequent error messages.
// A non-positive topN selects DefaultTopN.
func New(topN int) *Aggregator {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Aggregator{
		topN:       topN,
		errorIndex: make(map[string]int),
	}
}

// Add records one entry.
func (a *Aggregator) Add(entry model.LogEntry) {
	a.levelCounts.Inc(entry.Level)
	if entry.Level != model.LevelError {
		return
	}

	if i, ok := a.errorIndex[entry.Message]; ok {
		a.errors[i].Count++
		return
	}
	a.errorIndex[entry.Message] = len(a.errors)
	a.errors = append(a.errors, model.ErrorCount{Message: entry.Message, Count: 1})
}

// Result returns the current aggregation for file. It does not reset state.
func (a *Aggregator) Result(file string) model.AnalysisResult {
	top := make([]model.ErrorCount, len(a.errors))
	copy(top, a.errors)

	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > a.topN {
		top = top[:a.topN]
	}

	return model.AnalysisResult{
		File:         file,
		TotalEntries: a.levelCounts.Total(),
		LevelCounts:  a.levelCounts,
		TopErrors:    top,
	}
}
