// Package analyzer composes the parse, filter and aggregate stages into a
// single pass over one log file.
package analyzer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/atikulmunna/logan/internal/aggregator"
	"github.com/atikulmunna/logan/internal/filter"
	"github.com/atikulmunna/logan/internal/model"
	"github.com/atikulmunna/logan/internal/parser"
)

var (
	// ErrFileNotFound reports that the log file does not exist.
	ErrFileNotFound = errors.New("log file not found")
	// ErrFileUnreadable reports any other failure to read the log file.
	ErrFileUnreadable = errors.New("cannot read log file")
)

// Options configures one analysis run.
type Options struct {
	Criteria model.FilterCriteria
	TopN     int              // defaults to aggregator.DefaultTopN
	Now      func() time.Time // reference clock, defaults to time.Now
	Logger   *slog.Logger     // defaults to slog.Default()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Analyze parses r, keeps the entries that pass opts.Criteria and aggregates
// them into a result labelled with file.
func Analyze(r io.Reader, file string, opts Options) (model.AnalysisResult, parser.Stats, error) {
	log := opts.logger()

	f := filter.New(opts.Criteria, opts.now())
	if cutoff, ok := f.Cutoff(); ok {
		log.Debug("recency window", "hours", opts.Criteria.SinceHours, "cutoff", cutoff.Format(parser.TimestampLayout))
	}
	if opts.Criteria.Level != "" {
		log.Debug("level filter", "level", opts.Criteria.Level)
	}

	agg := aggregator.New(opts.TopN)
	st, err := parser.Scan(r, func(e model.LogEntry) {
		if f.Match(e) {
			agg.Add(e)
		}
	})
	if err != nil {
		return model.AnalysisResult{}, st, err
	}

	result := agg.Result(file)
	log.Debug("analysis complete",
		"file", file,
		"lines", st.Lines,
		"parsed", st.Parsed,
		"skipped", st.Skipped,
		"included", result.TotalEntries,
	)
	return result, st, nil
}

// AnalyzeFile reads the whole file at path and analyzes it.
// Nothing is parsed unless the read succeeds.
func AnalyzeFile(path string, opts Options) (model.AnalysisResult, parser.Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.AnalysisResult{}, parser.Stats{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return model.AnalysisResult{}, parser.Stats{}, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
	}
	opts.logger().Debug("read log file", "path", path, "bytes", len(data))

	return Analyze(bytes.NewReader(data), path, opts)
}
