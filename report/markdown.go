package report

import (
	"fmt"
	"io"
	"strings"
)

// Markdown renders GitHub-flavoured Markdown, suitable for pasting into
// issues and pull requests.
type Markdown struct {
	w io.Writer
}

// NewMarkdown returns a Markdown renderer writing to w.
func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{w: w}
}

// Header implements Renderer.
func (m *Markdown) Header(h Header) error {
	_, err := fmt.Fprintf(m.w, "# %s\n\n_%s_\n", h.Title(), h.Summary())
	return err
}

// Release implements Renderer.
func (m *Markdown) Release(s Section) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n## %s\n\n", s.Title())
	fmt.Fprintf(&b, "**%s**\n\n", s.TotalLine())
	b.WriteString("| Platform | Package | Downloads | Size (MB) | Asset (short) |\n")
	b.WriteString("|---|---:|---:|---:|---|\n")

	for _, r := range s.Rows {
		fmt.Fprintf(&b, "| %s | %s | %d | %s | `%s` |\n",
			r.Platform, r.Packaging, r.Downloads, SizeMB(r.SizeBytes), r.ShortName)
	}

	_, err := io.WriteString(m.w, b.String())
	return err
}

// Flush implements Renderer.
func (m *Markdown) Flush() error {
	return nil
}
