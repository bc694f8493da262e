package shell

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestNewStyles(t *testing.T) {

	tests := []struct {
		name        string
		color       bool
		promptColor lipgloss.TerminalColor
		errorColor  lipgloss.TerminalColor
		bold        bool
	}{
		{
			name:        "color disabled",
			color:       false,
			promptColor: lipgloss.NoColor{},
			errorColor:  lipgloss.NoColor{},
		},
		{
			name:        "color enabled",
			color:       true,
			promptColor: lipgloss.Color("12"),
			errorColor:  lipgloss.Color("9"),
			bold:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			styles := NewStyles(&out, tt.color)

			assert.Equal(t, tt.promptColor, styles.Prompt.GetForeground())
			assert.Equal(t, tt.errorColor, styles.Error.GetForeground())
			assert.Equal(t, tt.bold, styles.Prompt.GetBold())

			// out is not a terminal, so nothing is colored either way
			assert.Equal(t, "> ", styles.Prompt.Render("> "))
			assert.Equal(t, "Unknown command: x\ty", styles.Error.Render("Unknown command: x\ty"))
		})
	}
}
