package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/nguyentantai21042004/meeting-flow/internal/pipeline"
)

// PreviewLimit is the number of transcript characters shown before a run.
const PreviewLimit = 1000

var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	red    = lipgloss.Color("204")
	dim    = lipgloss.Color("243")
)

type implTerminal struct {
	w       io.Writer
	heading lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	body    lipgloss.Style
}

// NewTerminal creates a Presenter writing to w. Colors are dropped when w is not a terminal.
func NewTerminal(w io.Writer) Presenter {
	r := lipgloss.NewRenderer(w)
	return &implTerminal{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(purple),
		muted:   r.NewStyle().Foreground(dim),
		success: r.NewStyle().Foreground(green),
		failure: r.NewStyle().Foreground(red).Bold(true),
		body:    r.NewStyle().PaddingLeft(2),
	}
}

func (t *implTerminal) Transcript(text string) {
	fmt.Fprintln(t.w, t.heading.Render("Transcript preview"))
	fmt.Fprintln(t.w, t.muted.Render(Preview(text, PreviewLimit)))
	fmt.Fprintln(t.w)
}

func (t *implTerminal) Step(result pipeline.Result) {
	title := fmt.Sprintf("Step %d: %s", result.Index+1, result.Kind.Label())
	fmt.Fprintln(t.w, t.heading.Render(title))
	if result.Agent != "" {
		fmt.Fprintln(t.w, t.muted.Render(fmt.Sprintf("by %s in %s", result.Agent, result.Duration.Round(time.Millisecond))))
	}
	fmt.Fprintln(t.w, t.body.Render(strings.TrimSpace(result.Output)))
	fmt.Fprintln(t.w)
}

func (t *implTerminal) Failure(err error) {
	fmt.Fprintln(t.w, t.failure.Render("✗ ")+err.Error())
}

func (t *implTerminal) Notice(format string, args ...any) {
	fmt.Fprintln(t.w, t.success.Render("✓ ")+fmt.Sprintf(format, args...))
}

// Preview returns the first limit characters of text, marking a cut with "...".
func Preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
