// Package report renders aggregated release download statistics.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/inhies/go-bytesize"

	"github.com/codingconcepts/relstats/models"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatConsole  = "console"
	FormatJSON     = "json"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatMarkdown, FormatConsole, FormatJSON}

// Header describes the whole report.
type Header struct {
	Repo     string
	Shown    int
	Filtered bool
}

// Title returns the document title line.
func (h Header) Title() string {
	return "GitHub Release Download Tables — " + h.Repo
}

// Summary returns the line stating how many releases follow.
func (h Header) Summary() string {
	s := fmt.Sprintf("Showing up to %d release(s)", h.Shown)
	if h.Filtered {
		s += " (filtered)"
	}
	return s + "."
}

// Section is one release's part of the report. Rows are already sorted.
type Section struct {
	Tag       string
	Name      string
	Published string
	Rows      []models.Row
	Total     int64
}

// NewSection builds the section for rel from its aggregated rows. The
// publish date is shortened to YYYY-MM-DD and rows are put in report
// order, so every renderer shows the same thing.
func NewSection(rel models.GitRelease, rows []models.Row, total int64) Section {
	return Section{
		Tag:       rel.TagName,
		Name:      rel.Name,
		Published: models.FormatDate(rel.PublishedAt),
		Rows:      SortRows(rows),
		Total:     total,
	}
}

// Title returns "tag — name (date)", omitting whichever parts are empty.
func (s Section) Title() string {
	var b strings.Builder
	b.WriteString(s.Tag)
	if s.Name != "" {
		b.WriteString(" — ")
		b.WriteString(s.Name)
	}
	if s.Published != "" {
		b.WriteString(" (")
		b.WriteString(s.Published)
		b.WriteString(")")
	}
	return b.String()
}

// TotalLine returns the release-wide download count line.
func (s Section) TotalLine() string {
	return fmt.Sprintf("Total downloads (all assets): %d", s.Total)
}

// SortRows returns a copy of rows ordered by downloads descending, then
// platform ascending, then packaging ascending.
func SortRows(rows []models.Row) []models.Row {
	sorted := make([]models.Row, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Downloads != b.Downloads {
			return a.Downloads > b.Downloads
		}
		if pa, pb := a.Platform.String(), b.Platform.String(); pa != pb {
			return pa < pb
		}
		return a.Packaging < b.Packaging
	})

	return sorted
}

// SizeMB formats a byte count in mebibytes with two decimals and no unit
// suffix.
func SizeMB(n int64) string {
	return strings.TrimSuffix(bytesize.New(float64(n)).Format("%.2f", "MB", false), "MB")
}

// Renderer writes a report. Header is called once, then Release once per
// release in order, then Flush.
type Renderer interface {
	Header(h Header) error
	Release(s Section) error
	Flush() error
}

// New returns the renderer for format writing to w. color only affects the
// console renderer.
func New(format string, w io.Writer, color bool) (Renderer, error) {
	switch format {
	case FormatMarkdown, "":
		return NewMarkdown(w), nil
	case FormatConsole:
		return NewConsole(w, color), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, models.NewUsageError("unknown format %q, expected one of %s", format, strings.Join(Formats, ", "))
	}
}
