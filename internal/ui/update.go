package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kostyay/drivemon/internal/config"
	"github.com/kostyay/drivemon/internal/params"
	"github.com/kostyay/drivemon/internal/source"
	"github.com/kostyay/drivemon/internal/status"
)

// settingsEntryCount is the number of rows in the settings modal.
const settingsEntryCount = 2

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.fetchTelemetry(),
		m.spin.Tick,
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		// Settings modal intercepts all keys
		if m.settingsMode {
			return m.updateSettingsModal(msg.String())
		}

		switch {
		case matchKey(msg.String(), KeyQuit, KeyQuitAlt):
			m.quitting = true
			return m, tea.Quit

		case matchKey(msg.String(), KeySettings):
			return m, openSettings
		}
		return m, nil

	case tea.MouseMsg:
		// The settings button is the only interactive region; everything
		// else on the panel ignores the pointer.
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.settingsMode {
			return m, nil
		}
		if SettingsButtonRect.Contains(msg.X, msg.Y) {
			return m, openSettings
		}
		return m, nil

	case OpenSettingsMsg:
		m.settingsMode = true
		m.settingsCursor = 0
		return m, nil

	case TickMsg:
		if m.animations {
			m.animationFrame = (m.animationFrame + 1) % 2
		}
		// Schedule next tick and fetch new telemetry
		return m, tea.Batch(
			m.tickCmd(),
			m.fetchTelemetry(),
		)

	case TelemetryMsg:
		if msg.Err != nil {
			// Keep the last good state; surface the error in the footer
			m.lastError = msg.Err
			m.lastErrorTime = time.Now()
			return m, nil
		}
		m.lastError = nil
		m.device = msg.Device
		m.vehicle = msg.Vehicle
		m.hasTelemetry = true
		m.recompute()
		return m, nil

	case spinner.TickMsg:
		if m.hasTelemetry {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// recompute replaces the display state wholesale from the last snapshots.
func (m *Model) recompute() {
	m.state = status.Compute(m.device, m.vehicle, params.CurrentParams.PrimeRedirected, source.NowNanos())
}

// updateSettingsModal handles keys while the settings modal is open.
func (m Model) updateSettingsModal(key string) (tea.Model, tea.Cmd) {
	switch {
	case matchKey(key, KeyEsc, KeySettings, KeyQuit):
		m.settingsMode = false
		return m, nil

	case matchKey(key, KeyUp, KeyUpAlt):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
		return m, nil

	case matchKey(key, KeyDown, KeyDownAlt):
		if m.settingsCursor < settingsEntryCount-1 {
			m.settingsCursor++
		}
		return m, nil

	case matchKey(key, KeyToggle):
		switch m.settingsCursor {
		case 0:
			config.CurrentSettings.Animations = !config.CurrentSettings.Animations
			m.animations = config.CurrentSettings.Animations
			_ = config.SaveSettings(config.CurrentSettings)
		case 1:
			params.CurrentParams.PrimeRedirected = !params.CurrentParams.PrimeRedirected
			_ = params.SaveParams(params.CurrentParams)
			if m.hasTelemetry {
				m.recompute()
			}
		}
		return m, nil
	}
	return m, nil
}

// openSettings is the outbound "open settings" notification.
func openSettings() tea.Msg {
	return OpenSettingsMsg{}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) fetchTelemetry() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		dev, veh, err := m.source.Collect(ctx)
		return TelemetryMsg{Device: dev, Vehicle: veh, Err: err}
	}
}
