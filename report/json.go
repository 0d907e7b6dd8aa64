package report

import (
	"encoding/json"
	"io"
)

type jsonReport struct {
	Repo     string        `json:"repo"`
	Shown    int           `json:"shown"`
	Filtered bool          `json:"filtered"`
	Releases []jsonRelease `json:"releases"`
}

type jsonRelease struct {
	Tag            string    `json:"tag"`
	Name           string    `json:"name,omitempty"`
	Published      string    `json:"published,omitempty"`
	TotalDownloads int64     `json:"total_downloads"`
	Rows           []jsonRow `json:"rows"`
}

type jsonRow struct {
	Platform  string `json:"platform"`
	Package   string `json:"package"`
	Downloads int64  `json:"downloads"`
	SizeBytes int64  `json:"size_bytes"`
	SizeMB    string `json:"size_mb"`
	Asset     string `json:"asset"`
}

// JSON renders the report as a single indented JSON document, written on
// Flush.
type JSON struct {
	w      io.Writer
	report jsonReport
}

// NewJSON returns a JSON renderer writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w, report: jsonReport{Releases: []jsonRelease{}}}
}

// Header implements Renderer.
func (j *JSON) Header(h Header) error {
	j.report.Repo = h.Repo
	j.report.Shown = h.Shown
	j.report.Filtered = h.Filtered
	return nil
}

// Release implements Renderer.
func (j *JSON) Release(s Section) error {
	rel := jsonRelease{
		Tag:            s.Tag,
		Name:           s.Name,
		Published:      s.Published,
		TotalDownloads: s.Total,
		Rows:           make([]jsonRow, 0, len(s.Rows)),
	}
	for _, r := range s.Rows {
		rel.Rows = append(rel.Rows, jsonRow{
			Platform:  r.Platform.String(),
			Package:   string(r.Packaging),
			Downloads: r.Downloads,
			SizeBytes: r.SizeBytes,
			SizeMB:    SizeMB(r.SizeBytes),
			Asset:     r.ShortName,
		})
	}

	j.report.Releases = append(j.report.Releases, rel)
	return nil
}

// Flush implements Renderer.
func (j *JSON) Flush() error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(j.report)
}
