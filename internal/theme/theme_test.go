package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestApplySelectsPaletteVariant(t *testing.T) {
	Apply("light")
	assert.False(t, lipgloss.HasDarkBackground())

	Apply("dark")
	assert.True(t, lipgloss.HasDarkBackground())

	// Unknown names keep the dark palette.
	Apply("solarized")
	assert.True(t, lipgloss.HasDarkBackground())
}
