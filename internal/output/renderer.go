package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atikulmunna/logan/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownFormat is returned for a format other than text or json.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects a report renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat returns the Format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (want text or json)", ErrUnknownFormat, s)
	}
}

// Renderer writes an AnalysisResult to an output stream.
type Renderer interface {
	Render(result model.AnalysisResult) error
}

// NewRenderer returns the Renderer for format writing to w.
// color only affects text output.
func NewRenderer(format Format, w io.Writer, color bool) (Renderer, error) {
	switch format {
	case FormatText:
		return NewTextRenderer(w, color), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// ---------------------------------------------------------------------------
// Text Renderer (human-readable report)
// ---------------------------------------------------------------------------

const reportTitle = "Log Analysis Report"

// palette holds the styles used by the text report.
type palette struct {
	title  lipgloss.Style
	header lipgloss.Style
	levels map[model.Level]lipgloss.Style
	count  lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		title:  r.NewStyle().Bold(true),
		header: r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true), // cyan
		levels: map[model.Level]lipgloss.Style{
			model.LevelInfo:  r.NewStyle().Foreground(lipgloss.Color("245")),            // gray
			model.LevelDebug: r.NewStyle().Foreground(lipgloss.Color("245")).Faint(true),
			model.LevelWarn:  r.NewStyle().Foreground(lipgloss.Color("220")),            // yellow
			model.LevelError: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // red bold
		},
		count: r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// TextRenderer prints the report as aligned text with severity-based colors.
type TextRenderer struct {
	w      io.Writer
	color  bool
	styles palette
}

// NewTextRenderer returns a Renderer that writes a text report to w.
// Colors are only emitted when color is set and w is a capable terminal.
func NewTextRenderer(w io.Writer, color bool) *TextRenderer {
	return &TextRenderer{
		w:      w,
		color:  color,
		styles: newPalette(lipgloss.NewRenderer(w)),
	}
}

func (r *TextRenderer) Render(result model.AnalysisResult) error {
	var b strings.Builder

	fmt.Fprintln(&b, r.style(r.styles.title, reportTitle))
	fmt.Fprintln(&b, strings.Repeat("=", len(reportTitle)))
	fmt.Fprintf(&b, "File: %s\n", result.File)
	fmt.Fprintf(&b, "Total Entries: %d\n", result.TotalEntries)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, r.style(r.styles.header, "Log Level Summary:"))
	for _, l := range model.Levels {
		tag := string(l) + ":"
		pad := strings.Repeat(" ", len("ERROR:")-len(tag)+1)
		fmt.Fprintf(&b, "  %s%s%d\n", r.style(r.styles.levels[l], tag), pad, result.LevelCounts.Get(l))
	}

	if result.LevelCounts.Get(model.LevelError) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, r.style(r.styles.header, "Top Error Messages:"))
		for i, ec := range result.TopErrors {
			count := r.style(r.styles.count, fmt.Sprintf("(%d)", ec.Count))
			fmt.Fprintf(&b, "  %d. %s %s\n", i+1, ec.Message, count)
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TextRenderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints the result as a single JSON document.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes one JSON object to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONRenderer{enc: enc}
}

func (r *JSONRenderer) Render(result model.AnalysisResult) error {
	if result.TopErrors == nil {
		result.TopErrors = []model.ErrorCount{}
	}
	return r.enc.Encode(result)
}
