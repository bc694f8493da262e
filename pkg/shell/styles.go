package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles renders the prompt and error messages.
type Styles struct {
	Prompt lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles binds the styles to out so colors are only emitted when out is a
// terminal. With color disabled every style renders text unchanged.
func NewStyles(out io.Writer, color bool) Styles {
	renderer := lipgloss.NewRenderer(out)

	prompt := renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	errStyle := renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if !color {
		renderer.SetColorProfile(termenv.Ascii)
		return Styles{Prompt: prompt, Error: errStyle}
	}

	return Styles{
		Prompt: prompt.Foreground(lipgloss.Color("12")).Bold(true),
		Error:  errStyle.Foreground(lipgloss.Color("9")),
	}
}
