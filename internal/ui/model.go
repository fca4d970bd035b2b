package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kostyay/drivemon/internal/config"
	"github.com/kostyay/drivemon/internal/hw"
	"github.com/kostyay/drivemon/internal/model"
	"github.com/kostyay/drivemon/internal/source"
)

// Refresh interval bounds.
const (
	MinRefreshInterval     = 500 * time.Millisecond
	MaxRefreshInterval     = 10 * time.Second
	DefaultRefreshInterval = 2 * time.Second
)

// Model is the Bubble Tea model for the status panel.
type Model struct {
	// Display state: replaced wholesale on every telemetry update, never
	// mutated field by field. View only reads the last committed value.
	state model.SidebarState

	// Last raw snapshots, kept so the state can be recomputed when the
	// prime flag is toggled between telemetry updates.
	device  model.DeviceSnapshot
	vehicle model.VehicleSnapshot

	// Collaborators
	source   source.Source
	platform hw.Platform

	// UI state
	quitting     bool
	ready        bool // true after first WindowSizeMsg
	hasTelemetry bool // true after first successful TelemetryMsg

	// Settings modal
	settingsMode   bool
	settingsCursor int

	// Error tracking
	lastError     error
	lastErrorTime time.Time

	// Configuration
	refreshInterval time.Duration
	animations      bool
	animationFrame  int

	// Spinner shown until the first telemetry arrives
	spin spinner.Model

	// Dimensions
	width  int
	height int
}

// NewModel creates a new Model with the configured source and detected
// platform. A bad source name in settings falls back to the sim script.
func NewModel() Model {
	src, err := source.New(config.CurrentSettings.Source)
	if err != nil {
		src = source.NewSim()
	}

	refresh := config.CurrentSettings.RefreshInterval
	if refresh < MinRefreshInterval || refresh > MaxRefreshInterval {
		refresh = DefaultRefreshInterval
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = LoadingStyle()

	return Model{
		state:           model.DefaultSidebarState(),
		source:          src,
		platform:        hw.Detect(),
		refreshInterval: refresh,
		animations:      config.CurrentSettings.Animations,
		spin:            sp,
	}
}

// WithSource returns a copy of the model using the given telemetry source.
func (m Model) WithSource(s source.Source) Model {
	m.source = s
	return m
}

// WithPlatform returns a copy of the model pinned to the given platform.
func (m Model) WithPlatform(p hw.Platform) Model {
	m.platform = p
	return m
}

// State returns the last committed display state.
func (m Model) State() model.SidebarState {
	return m.state
}

var _ tea.Model = Model{}
