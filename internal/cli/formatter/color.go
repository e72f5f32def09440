package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pincecheck/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette, plus the plant brand orange.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorBrand  = lipgloss.Color("#FFA500")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleBrand  = lipgloss.NewStyle().Foreground(ColorBrand).Bold(true)
)

// StatusPill returns a colored indicator for a remediation status.
func StatusPill(status domain.RemediationStatus) string {
	switch status {
	case domain.StatusDone:
		return StyleGreen.Render("✔ " + status.Label())
	case domain.StatusInProgress:
		return StyleYellow.Render("● " + status.Label())
	default:
		return StyleDim.Render(string(status))
	}
}

// CheckMark renders a checklist item state: green tick when verified,
// red KO otherwise.
func CheckMark(verified bool) string {
	if verified {
		return StyleGreen.Render("✔ OK")
	}
	return StyleRed.Render("✖ KO")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success renders a confirmation line.
func Success(text string) string {
	return StyleGreen.Render("✔ " + text)
}

// Error renders a recoverable error line.
func Error(text string) string {
	return StyleRed.Render("✖ " + text)
}
