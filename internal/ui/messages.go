package ui

import (
	"time"

	"github.com/kostyay/drivemon/internal/model"
)

// TickMsg is sent on each refresh interval.
type TickMsg time.Time

// TelemetryMsg contains one telemetry update.
type TelemetryMsg struct {
	Device  model.DeviceSnapshot
	Vehicle model.VehicleSnapshot
	Err     error
}

// OpenSettingsMsg asks the host to open the settings surface. It is
// emitted by the settings-button hit test and by the keyboard shortcut.
type OpenSettingsMsg struct{}
