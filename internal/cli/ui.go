package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - numbers
	colorGreen = lipgloss.Color("35")  // Green - positive verdict
	colorRed   = lipgloss.Color("167") // Soft red - negative verdict, errors
)

// =============================================================================
// Messages
// =============================================================================

const (
	msgSummary  = "Random graph generated with %s vertices and %s edges, seed: %s."
	msgEuler    = "The graph has an Eulerian cycle."
	msgNotEuler = "The graph does not have an Eulerian cycle."
)

// printer renders the command output through a lipgloss renderer bound to w,
// so styling is dropped automatically when w is not a terminal.
type printer struct {
	w       io.Writer
	number  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		number:  r.NewStyle().Foreground(colorCyan),
		success: r.NewStyle().Bold(true).Foreground(colorGreen),
		failure: r.NewStyle().Bold(true).Foreground(colorRed),
	}
}

// summary prints the generation parameters line.
func (p *printer) summary(vertices, edges int, seed int64) {
	fmt.Fprintf(p.w, msgSummary+"\n",
		p.number.Render(fmt.Sprint(vertices)),
		p.number.Render(fmt.Sprint(edges)),
		p.number.Render(fmt.Sprint(seed)),
	)
}

// verdict prints the Eulerian-cycle answer.
func (p *printer) verdict(has bool) {
	if has {
		fmt.Fprintln(p.w, p.success.Render(msgEuler))
		return
	}
	fmt.Fprintln(p.w, p.failure.Render(msgNotEuler))
}

// PrintError writes err to w in the error style.
func PrintError(w io.Writer, err error) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(colorRed)
	fmt.Fprintln(w, style.Render("✗")+" "+err.Error())
}
