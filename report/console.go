package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

var consoleHeaders = []string{"Platform", "Pkg", "Downloads", "Size (MB)", "Asset"}

// Palette.
var (
	blue   = lipgloss.Color("#0078D4")
	cyan   = lipgloss.Color("#00B4D8")
	white  = lipgloss.Color("#FAFAFA")
	dim    = lipgloss.Color("#6B7280")
	subtle = lipgloss.Color("#374151")
)

// Console renders styled tables for an interactive terminal. With colour
// enabled it draws lipgloss tables; otherwise it falls back to plain pterm
// boxed tables.
type Console struct {
	w     io.Writer
	color bool
	r     *lipgloss.Renderer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Console{w: w, color: color, r: r}
}

// Header implements Renderer.
func (c *Console) Header(h Header) error {
	title := c.r.NewStyle().Bold(true).Foreground(blue).Render(h.Title())
	summary := c.r.NewStyle().Foreground(dim).Render(h.Summary())

	_, err := fmt.Fprintf(c.w, "%s\n%s\n", title, summary)
	return err
}

// Release implements Renderer.
func (c *Console) Release(s Section) error {
	title := c.r.NewStyle().Bold(true).Render(s.Title())
	if _, err := fmt.Fprintf(c.w, "\n%s\n%s\n\n", title, s.TotalLine()); err != nil {
		return err
	}

	rows := make([][]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, []string{
			r.Platform.String(),
			string(r.Packaging),
			strconv.FormatInt(r.Downloads, 10),
			SizeMB(r.SizeBytes),
			r.ShortName,
		})
	}

	var out string
	if c.color {
		out = c.styledTable(rows)
	} else {
		var err error
		if out, err = plainTable(rows); err != nil {
			return fmt.Errorf("rendering table: %w", err)
		}
	}

	_, err := fmt.Fprintln(c.w, out)
	return err
}

// Flush implements Renderer.
func (c *Console) Flush() error {
	return nil
}

func (c *Console) styledTable(rows [][]string) string {
	headerStyle := c.r.NewStyle().Bold(true).Foreground(cyan).Padding(0, 1)
	cellStyle := c.r.NewStyle().Foreground(white).Padding(0, 1)
	dimCellStyle := c.r.NewStyle().Foreground(dim).Padding(0, 1)

	t := lgtable.New().
		Headers(consoleHeaders...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(c.r.NewStyle().Foreground(subtle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == lgtable.HeaderRow:
				s = headerStyle
			case row%2 == 0:
				s = cellStyle
			default:
				s = dimCellStyle
			}
			// Pkg, Downloads and Size are right aligned.
			if col >= 1 && col <= 3 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	for _, r := range rows {
		t = t.Row(r...)
	}

	return t.Render()
}

func plainTable(rows [][]string) (string, error) {
	plain := pterm.NewStyle()

	data := pterm.TableData{consoleHeaders}
	data = append(data, rows...)

	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithStyle(plain).
		WithHeaderStyle(plain).
		WithSeparatorStyle(plain).
		WithHeaderRowSeparatorStyle(plain).
		WithData(data).
		Srender()
	if err != nil {
		return "", err
	}

	// The box border keeps pterm's default colours.
	return pterm.RemoveColorFromString(out), nil
}
