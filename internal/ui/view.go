package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kostyay/drivemon/internal/config"
	"github.com/kostyay/drivemon/internal/model"
	"github.com/kostyay/drivemon/internal/params"
	"github.com/kostyay/drivemon/internal/status"
)

// View renders the UI. It is a pure function of the last committed
// display state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return LoadingStyle().Render("Initializing...")
	}

	base := m.renderPanel()

	if m.settingsMode {
		return m.overlayModal(base, m.renderSettingsModalContent(), "Settings", 44)
	}

	return base
}

// renderPanel lays the panel out top to bottom at fixed offsets: settings
// button, signal dots, network text, battery gauge, then the three status
// cards in fixed order (thermal, vehicle, connectivity). The home button
// and footer are anchored to the bottom edge.
func (m Model) renderPanel() string {
	var lines []string

	lines = append(lines, m.renderSettingsButton()...)
	lines = append(lines, "")
	lines = append(lines, m.renderSignalDots())
	lines = append(lines, m.renderNetworkText())
	lines = append(lines, "")
	lines = append(lines, m.renderBattery())
	lines = append(lines, "")

	// Card order matches the device UI: thermal, vehicle, connectivity.
	for _, item := range []model.ItemStatus{m.state.TempStatus, m.state.VehicleStatus, m.state.ConnectStatus} {
		lines = append(lines, m.renderStatusCard(item)...)
		lines = append(lines, "")
	}

	if !m.hasTelemetry {
		lines = append(lines, strings.Repeat(" ", PanelMargin)+m.spin.View()+LoadingStyle().Render("waiting for telemetry"))
	}

	// Bottom-anchored rows: home button + two footer rows.
	for len(lines) < m.height-3 {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderHomeButton())
	lines = append(lines, m.renderStatusLine())
	lines = append(lines, m.renderKeybindingsText())

	return strings.Join(lines, "\n")
}

// renderSettingsButton draws the dimmed settings button; its cells are
// exactly SettingsButtonRect, which the mouse hit test checks against.
func (m Model) renderSettingsButton() []string {
	label := SettingsButtonStyle().
		Width(SettingsButtonRect.W - 2).
		Align(lipgloss.Center).
		Render("⚙ SETTINGS")

	btn := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(string(config.CurrentTheme.Styles.Border.FgColor))).
		Render(label)

	indent := strings.Repeat(" ", SettingsButtonRect.X)
	btnLines := strings.Split(btn, "\n")
	out := make([]string, 0, len(btnLines))
	for _, line := range btnLines {
		out = append(out, indent+line)
	}
	return out
}

// renderSignalDots draws the five network-strength dots at fixed spacing;
// dot i is filled iff i < signalLevel.
func (m Model) renderSignalDots() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", PanelMargin))
	for i := 0; i < status.MaxSignalLevel; i++ {
		if i > 0 {
			b.WriteString("  ")
		}
		if i < m.state.SignalLevel {
			b.WriteString(TextStyle().Render("●"))
		} else {
			b.WriteString(MutedStyle().Render("○"))
		}
	}
	return b.String()
}

// renderNetworkText centers the network label, or the Wi-Fi address on
// platform variants that display it while on Wi-Fi.
func (m Model) renderNetworkText() string {
	label := m.state.NetworkLabel
	if m.platform.SupportsWifiAddress() && m.state.NetworkType == model.NetWifi && m.state.WifiAddress != "" {
		label = m.state.WifiAddress
	}
	return TextStyle().Width(PanelWidth).Align(lipgloss.Center).Render(label)
}

// renderBattery draws the battery gauge: an overlay bar in the fixed
// accent color whose width is floor(BatteryBarWidth * percent / 100),
// the charging/discharging icon variant, and the percent text.
func (m Model) renderBattery() string {
	percent := m.state.BatteryPercent
	filled := BatteryBarWidth * percent / 100

	bar := BatteryFillStyle().Render(strings.Repeat("█", filled)) +
		MutedStyle().Render(strings.Repeat("░", BatteryBarWidth-filled))

	icon := MutedStyle().Render("·")
	if m.state.BatteryCharging {
		icon = BatteryFillStyle().Render("↯")
	}

	return fmt.Sprintf("%s[%s] %s %s",
		strings.Repeat(" ", PanelMargin),
		bar,
		icon,
		TextStyle().Render(fmt.Sprintf("%d%%", percent)),
	)
}

// renderStatusCard draws one status card: a left accent bar filled with
// the severity color, a rounded outline, and the centered label.
func (m Model) renderStatusCard(item model.ItemStatus) []string {
	accent := lipgloss.NewStyle().
		Background(SeverityColor(item.Severity)).
		Width(2).
		Height(CardContentHeight).
		Render("")

	label := TextStyle().
		Width(CardTextWidth).
		Height(CardContentHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(item.Label)

	inner := lipgloss.JoinHorizontal(lipgloss.Top, accent, label)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(string(config.CurrentTheme.Styles.Border.FgColor))).
		Render(inner)

	indent := strings.Repeat(" ", PanelMargin)
	cardLines := strings.Split(card, "\n")
	out := make([]string, 0, len(cardLines))
	for _, line := range cardLines {
		out = append(out, indent+line)
	}
	return out
}

// renderHomeButton draws the non-interactive home button at full
// intensity.
func (m Model) renderHomeButton() string {
	return HomeButtonStyle().Width(PanelWidth).Align(lipgloss.Center).Render("⌂ HOME")
}

// renderStatusLine renders the footer status row: the last source error
// if one is pending, otherwise the live indicator and platform name.
func (m Model) renderStatusLine() string {
	if m.lastError != nil {
		return WarnStyle().Render(fmt.Sprintf("⚠ %s", truncateString(m.lastError.Error(), PanelWidth-2)))
	}

	live := "◉"
	if m.animations && m.animationFrame == 1 {
		live = "○"
	}
	return LiveIndicatorStyle().Render(live+" LIVE") +
		FooterDescStyle().Render("  ·  "+m.platform.String())
}

// renderKeybindingsText returns the contextual keybindings row.
func (m Model) renderKeybindingsText() string {
	keyStyle := FooterKeyStyle()
	descStyle := FooterDescStyle()

	btn := func(key, label string) string {
		return keyStyle.Render(key) + " " + descStyle.Render(label)
	}
	sep := descStyle.Render("  ·  ")

	var parts []string
	if m.settingsMode {
		parts = []string{
			btn("↑↓", "navigate"),
			btn("space", "toggle"),
			btn("esc", "close"),
		}
	} else {
		parts = []string{
			btn("S", "settings"),
			btn("q", "quit"),
		}
	}

	return strings.Join(parts, sep)
}

// renderSettingsModalContent returns the settings modal content.
func (m Model) renderSettingsModalContent() string {
	var lines []string

	settings := []struct {
		name    string
		enabled bool
		desc    string
	}{
		{"Animations", config.CurrentSettings.Animations, "Enable UI animations (live pulse)"},
		{"Prime Redirected", params.CurrentParams.PrimeRedirected, "Offline state reports NO PRIME"},
	}

	for i, s := range settings {
		cursor := "  "
		if i == m.settingsCursor {
			cursor = "▸ "
		}
		toggle := "[ ]"
		if s.enabled {
			toggle = "[■]"
		}
		row := fmt.Sprintf("%s%s %s", cursor, toggle, s.name)
		if i == m.settingsCursor {
			row = SelectedRowStyle().Render(row)
		}
		lines = append(lines, row)
		lines = append(lines, DimmedStyle().Render("      "+s.desc))
	}

	lines = append(lines, "")
	keyStyle := FooterKeyStyle()
	descStyle := FooterDescStyle()
	footer := keyStyle.Render("↑↓") + descStyle.Render(" Navigate  ") +
		keyStyle.Render("Space") + descStyle.Render(" Toggle  ") +
		keyStyle.Render("Esc") + descStyle.Render(" Close")
	lines = append(lines, footer)

	return strings.Join(lines, "\n")
}

// overlayModal renders a modal on top of background content with a dimmed
// backdrop.
func (m Model) overlayModal(background, content, title string, modalWidth int) string {
	if m.width < modalWidth+4 {
		modalWidth = m.width - 4
	}

	contentLines := strings.Split(content, "\n")
	modalHeight := len(contentLines) + 4

	framedModal := RenderFrameWithTitle(content, title, modalWidth, modalHeight)
	modalLines := strings.Split(framedModal, "\n")

	leftPad := max((m.width-modalWidth-4)/2, 0)
	topPad := max((m.height-modalHeight)/2, 0)

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < m.height {
		bgLines = append(bgLines, "")
	}

	dimStyle := DimmedStyle()
	for i := range bgLines {
		bgLines[i] = dimStyle.Render(stripAnsi(bgLines[i]))
	}

	for i, modalLine := range modalLines {
		bgIdx := topPad + i
		if bgIdx >= 0 && bgIdx < len(bgLines) {
			leftBg := ""
			if leftPad > 0 {
				leftBg = dimStyle.Render(strings.Repeat(" ", leftPad))
			}
			bgLines[bgIdx] = leftBg + modalLine
		}
	}

	return strings.Join(bgLines[:m.height], "\n")
}

// truncateString truncates a string to maxLen with ellipsis if needed.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
