package output

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/raatiniemi/linker/pkg/node"
)

// Styles used for each node kind
type Styles struct {
	Leaf   lipgloss.Style
	Link   lipgloss.Style
	Branch lipgloss.Style
}

// DefaultStyles returns the styles bound to renderer
func DefaultStyles(renderer *lipgloss.Renderer) Styles {
	return Styles{
		Leaf:   renderer.NewStyle(),
		Link:   renderer.NewStyle().Faint(true),
		Branch: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	}
}

// Printer writes node sequences one path per line
type Printer struct {
	w      io.Writer
	styled bool
	styles Styles
}

// NewPrinter creates a Printer for w. FormatAuto detects whether w is a
// terminal.
func NewPrinter(w io.Writer, format Format) *Printer {
	if format == FormatAuto {
		format = DetectFormat(w)
	}

	p := &Printer{w: w, styled: format == FormatTerminal}
	if p.styled {
		renderer := lipgloss.NewRenderer(w)
		// Forced terminal output on a writer lipgloss cannot probe.
		if renderer.ColorProfile() == termenv.Ascii {
			renderer.SetColorProfile(termenv.ANSI)
		}
		p.styles = DefaultStyles(renderer)
	}
	return p
}

// Print writes nodes in canonical order. A Leaf prints its path, a Link
// its link path, and a Branch its path followed by its children.
func (p *Printer) Print(nodes []node.Node) error {
	bw := bufio.NewWriter(p.w)
	if err := p.print(bw, nodes); err != nil {
		return err
	}
	return bw.Flush()
}

func (p *Printer) print(w *bufio.Writer, nodes []node.Node) error {
	for _, n := range node.Sorted(nodes) {
		if err := p.line(w, n); err != nil {
			return err
		}
		if b, ok := n.(node.Branch); ok {
			if err := p.print(w, b.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Printer) line(w *bufio.Writer, n node.Node) error {
	text := node.PathOf(n)
	if p.styled {
		switch n.(type) {
		case node.Leaf:
			text = p.styles.Leaf.Render(text)
		case node.Link:
			text = p.styles.Link.Render(text)
		case node.Branch:
			text = p.styles.Branch.Render(text)
		}
	}

	if _, err := w.WriteString(text); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
