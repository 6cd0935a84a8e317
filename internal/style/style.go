// Package style provides the terminal styles used by kpart output.
package style

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Ayu palette.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorPass   = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#aad94c"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	colorFail   = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#8a9199", Dark: "#6c7380"}
)

var (
	Bold    = lipgloss.NewStyle().Bold(true)
	Dim     = lipgloss.NewStyle().Foreground(colorMuted)
	Info    = lipgloss.NewStyle().Foreground(colorAccent)
	Success = lipgloss.NewStyle().Foreground(colorPass)
	Warning = lipgloss.NewStyle().Foreground(colorWarn)
	Error   = lipgloss.NewStyle().Foreground(colorFail)

	// Marker highlights the partition marker inside a filename.
	Marker = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)

// Status prefixes.
var (
	SuccessPrefix = Success.Render("✓")
	WarningPrefix = Warning.Render("⚠")
	ErrorPrefix   = Error.Render("✗")
	ArrowPrefix   = Dim.Render("→")
)

// warnOut is where PrintWarning writes; tests replace it.
var warnOut io.Writer = os.Stderr

// PrintWarning prints a formatted warning to stderr.
func PrintWarning(format string, args ...interface{}) {
	fmt.Fprintf(warnOut, "%s %s\n", WarningPrefix, fmt.Sprintf(format, args...))
}

// SetColor forces styled output on or off. Used when stdout is not a
// terminal or --no-color is given.
func SetColor(enabled bool) {
	if enabled {
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
	SuccessPrefix = Success.Render("✓")
	WarningPrefix = Warning.Render("⚠")
	ErrorPrefix = Error.Render("✗")
	ArrowPrefix = Dim.Render("→")
}
