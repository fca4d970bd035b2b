package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kostyay/drivemon/internal/config"
	"github.com/kostyay/drivemon/internal/model"
)

// severityColors is the single fixed severity→color table shared by all
// status cards and the battery fill. Not themable.
var severityColors = map[model.Severity]lipgloss.Color{
	model.SeverityGood:    lipgloss.Color("#149948"),
	model.SeverityWarning: lipgloss.Color("#DACA25"),
	model.SeverityDanger:  lipgloss.Color("#C92231"),
}

// SeverityColor returns the fixed color for a severity. Unrecognized
// values land on the danger color.
func SeverityColor(s model.Severity) lipgloss.Color {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return severityColors[model.SeverityDanger]
}

// Theme-aware style getters

// TextStyle returns the style for primary panel text.
func TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Panel.FgColor)))
}

// MutedStyle returns the style for secondary text and empty indicators.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Panel.MutedFgColor)))
}

// WarnStyle returns the style for warning/attention text.
func WarnStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Panel.WarnFgColor)))
}

// LiveIndicatorStyle returns the style for the live telemetry indicator.
func LiveIndicatorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Panel.AccentFgColor))).
		Bold(true)
}

// LoadingStyle returns the style for loading indicators.
func LoadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Panel.MutedFgColor))).
		Italic(true)
}

// BorderStyle returns the style for card outlines. The outline reads as
// semi-transparent against the dark panel background.
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Border.FgColor)))
}

// SettingsButtonStyle returns the style for the settings button, dimmed
// the way the device UI draws it at reduced opacity.
func SettingsButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Panel.FgColor))).
		Faint(true)
}

// HomeButtonStyle returns the style for the home button, drawn at full
// intensity.
func HomeButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Panel.FgColor))).
		Bold(true)
}

// BatteryFillStyle returns the style for the battery overlay bar: the
// good-severity entry of the fixed table.
func BatteryFillStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeverityColor(model.SeverityGood))
}

// FooterStyle returns the style for footer text.
func FooterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Footer.FgColor)))
}

// FooterKeyStyle returns the style for keyboard shortcut keys in footer.
func FooterKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Footer.KeyFgColor)))
}

// FooterDescStyle returns the style for key descriptions in footer.
func FooterDescStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Footer.DescFgColor)))
}

// DimmedStyle returns a style for dimmed background content when a modal
// is visible.
func DimmedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Modal.DimmedFgColor))).
		Faint(true)
}

// SelectedRowStyle returns the style for the selected settings row.
func SelectedRowStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(config.CurrentTheme.Styles.Modal.AccentFgColor))).
		Bold(true)
}

// RenderFrameWithTitle renders content in a frame with a centered title
// on the top border. Uses heavy box drawing for modal prominence.
func RenderFrameWithTitle(content string, title string, width, height int) string {
	borderColor := lipgloss.Color(string(config.CurrentTheme.Styles.Modal.BorderFgColor))
	titleColor := lipgloss.Color(string(config.CurrentTheme.Styles.Modal.AccentFgColor))
	return renderFrameWithColors(content, title, width, height, borderColor, titleColor)
}

// renderFrameWithColors renders a frame with specified border and title
// colors.
func renderFrameWithColors(content, title string, width, height int, borderColor, titleColor lipgloss.Color) string {
	topLeft := "┏"
	topRight := "┓"
	bottomLeft := "┗"
	bottomRight := "┛"
	horizontal := "━"
	vertical := "┃"

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(true)

	innerWidth := width - 2

	titleWithPadding := " " + title + " "
	titleLen := len(titleWithPadding)

	remainingWidth := innerWidth - titleLen
	if remainingWidth < 0 {
		remainingWidth = 0
		titleWithPadding = titleWithPadding[:innerWidth]
	}
	leftPad := remainingWidth / 2
	rightPad := remainingWidth - leftPad

	topBorder := borderStyle.Render(topLeft)
	topBorder += borderStyle.Render(strings.Repeat(horizontal, leftPad))
	topBorder += titleStyle.Render(titleWithPadding)
	topBorder += borderStyle.Render(strings.Repeat(horizontal, rightPad))
	topBorder += borderStyle.Render(topRight)

	bottomBorder := borderStyle.Render(bottomLeft)
	bottomBorder += borderStyle.Render(strings.Repeat(horizontal, innerWidth))
	bottomBorder += borderStyle.Render(bottomRight)

	contentStyle := lipgloss.NewStyle().
		Width(innerWidth).
		Height(height - 2).
		Padding(0, 1)

	styledContent := contentStyle.Render(content)

	var result strings.Builder
	result.WriteString(topBorder)
	result.WriteString("\n")

	for _, line := range splitLines(styledContent) {
		result.WriteString(borderStyle.Render(vertical))
		result.WriteString(padRight(line, innerWidth))
		result.WriteString(borderStyle.Render(vertical))
		result.WriteString("\n")
	}

	result.WriteString(bottomBorder)

	return result.String()
}

// splitLines splits a string into lines.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Use lipgloss to measure visible width (handles ANSI escape codes)
	visibleWidth := lipgloss.Width(s)
	if visibleWidth >= width {
		return s
	}
	padding := width - visibleWidth
	return s + strings.Repeat(" ", padding)
}

// stripAnsi removes ANSI escape codes from a string.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
