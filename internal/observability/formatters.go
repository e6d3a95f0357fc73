// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/resume-builder/internal/exchange"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow caps the entries listed per section
	maxItemsToShow = 5
	// timeLayout is how version timestamps are shown
	timeLayout = "2006-01-02 15:04"
)

// Styles are the lipgloss styles used by the printer.
type Styles struct {
	Title lipgloss.Style
	Bold  lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
	Box   lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		Bold:  lipgloss.NewStyle().Bold(true),
		Body:  lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Error: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2a3850")).
			Padding(0, 1).
			Width(boxWidth),
	}
}

// Printer writes human-readable summaries to a terminal
type Printer struct {
	out    io.Writer
	styles Styles
	loc    *time.Location
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, styles: DefaultStyles(), loc: time.Local}
}

// WithLocation sets the zone used to show timestamps.
func (p *Printer) WithLocation(loc *time.Location) *Printer {
	if loc != nil {
		p.loc = loc
	}
	return p
}

// printBox prints a bordered box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	body := p.styles.Title.Render(title) + "\n\n" + content
	fmt.Fprintln(p.out, p.styles.Box.Render(body))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintDocument outputs a summary of the document with the ids the edit
// commands take.
func (p *Printer) PrintDocument(doc types.AppData, template types.TemplateID) {
	r := doc.Resume
	var sb strings.Builder

	fmt.Fprintf(&sb, "Name:      %s\n", r.PersonalInfo.FullName)
	fmt.Fprintf(&sb, "Title:     %s\n", r.PersonalInfo.JobTitle)
	fmt.Fprintf(&sb, "Template:  %s (%s)\n", template.Name(), template)

	p.writeEntries(&sb, "Experience", len(r.Experience), func(i int) (string, string) {
		e := r.Experience[i]
		return e.ID, e.Position + " at " + e.Company
	})
	p.writeEntries(&sb, "Education", len(r.Education), func(i int) (string, string) {
		e := r.Education[i]
		return e.ID, e.Degree + ", " + e.Institution
	})
	p.writeEntries(&sb, "Projects", len(r.Projects), func(i int) (string, string) {
		return r.Projects[i].ID, r.Projects[i].Name
	})
	p.writeEntries(&sb, "Sections", len(r.CustomSections), func(i int) (string, string) {
		s := r.CustomSections[i]
		return s.ID, fmt.Sprintf("%s [%s, %d items]", s.Title, s.Type, len(s.Items))
	})

	if len(r.Skills) > 0 {
		sb.WriteString("\n" + p.styles.Bold.Render("Skills") + "\n")
		sb.WriteString("  " + truncate(strings.Join(r.Skills, ", "), boxWidth-6) + "\n")
	}

	cl := doc.CoverLetter
	sb.WriteString("\n" + p.styles.Bold.Render("Cover letter") + "\n")
	fmt.Fprintf(&sb, "  To %s, %d paragraphs, dated %s", orDash(cl.Recipient.Company), len(cl.Paragraphs), orDash(cl.Date))

	p.printBox("DOCUMENT", sb.String())
}

func (p *Printer) writeEntries(sb *strings.Builder, title string, n int, entry func(int) (string, string)) {
	if n == 0 {
		return
	}
	sb.WriteString("\n" + p.styles.Bold.Render(title) + "\n")
	count := min(n, maxItemsToShow)
	for i := 0; i < count; i++ {
		id, label := entry(i)
		fmt.Fprintf(sb, "  %d. %s %s\n", i, truncate(label, 40), p.styles.Muted.Render("("+truncate(id, 12)+")"))
	}
	if n > maxItemsToShow {
		fmt.Fprintf(sb, "  ... and %d more\n", n-maxItemsToShow)
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// PrintHistory outputs the version list as a table, newest first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHistory(history []types.Version) {
	if len(history) == 0 {
		fmt.Fprintln(p.out, p.styles.Muted.Render("No saved versions."))
		return
	}

	headers := []string{"#", "ID", "SAVED", "LABEL", "NAME"}
	rows := make([][]string, len(history))
	for i, v := range history {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			v.ID,
			v.CreatedAt().In(p.loc).Format(timeLayout),
			truncate(v.Label, 24),
			truncate(v.Data.Resume.PersonalInfo.FullName, 24),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	cell := func(style lipgloss.Style, i int, s string) string {
		return style.Width(widths[i] + 2).Render(s)
	}
	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render(fmt.Sprintf("HISTORY (%d)", len(history))) + "\n")
	for i, h := range headers {
		sb.WriteString(cell(p.styles.Bold, i, h))
	}
	sb.WriteString("\n")
	for _, row := range rows {
		for i, c := range row {
			sb.WriteString(cell(p.styles.Body, i, c))
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(p.out, sb.String())
}

// PrintVersion outputs one stored version's metadata and document summary.
func (p *Printer) PrintVersion(v types.Version) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID:     %s\n", v.ID)
	fmt.Fprintf(&sb, "Label:  %s\n", v.Label)
	fmt.Fprintf(&sb, "Saved:  %s\n", v.CreatedAt().In(p.loc).Format(timeLayout))
	fmt.Fprintf(&sb, "Name:   %s", v.Data.Resume.PersonalInfo.FullName)
	p.printBox("VERSION", sb.String())
}

// PrintImportError outputs the user-facing import message and its details.
func (p *Printer) PrintImportError(err *exchange.ValidationError) {
	if err == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(p.styles.Error.Render(err.UserMessage()) + "\n")
	sb.WriteString(err.Message)
	for _, f := range err.Fields {
		sb.WriteString("\n  • " + truncate(f, boxWidth-8))
	}
	p.printBox("IMPORT REJECTED", sb.String())
}
