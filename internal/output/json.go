package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/kostyay/drivemon/internal/model"
)

// JSONItemStatus represents one classified indicator in JSON output.
type JSONItemStatus struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// JSONNetwork represents the network display values in JSON output.
type JSONNetwork struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	WifiAddress string `json:"wifi_address,omitempty"`
	SignalLevel int    `json:"signal_level"`
}

// JSONBattery represents the battery display values in JSON output.
type JSONBattery struct {
	Percent  int  `json:"percent"`
	Charging bool `json:"charging"`
}

// JSONOutput is the root JSON output structure.
type JSONOutput struct {
	Timestamp    time.Time      `json:"timestamp"`
	Connectivity JSONItemStatus `json:"connectivity"`
	Thermal      JSONItemStatus `json:"thermal"`
	Vehicle      JSONItemStatus `json:"vehicle"`
	Network      JSONNetwork    `json:"network"`
	Battery      JSONBattery    `json:"battery"`
}

// RenderJSON writes the classified panel state as JSON to the writer.
func RenderJSON(w io.Writer, state model.SidebarState) error {
	out := JSONOutput{
		Timestamp:    state.UpdatedAt,
		Connectivity: jsonItem(state.ConnectStatus),
		Thermal:      jsonItem(state.TempStatus),
		Vehicle:      jsonItem(state.VehicleStatus),
		Network: JSONNetwork{
			Type:        state.NetworkType.Label(),
			Label:       state.NetworkLabel,
			WifiAddress: state.WifiAddress,
			SignalLevel: state.SignalLevel,
		},
		Battery: JSONBattery{
			Percent:  state.BatteryPercent,
			Charging: state.BatteryCharging,
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func jsonItem(item model.ItemStatus) JSONItemStatus {
	return JSONItemStatus{
		Label:    item.Label,
		Severity: item.Severity.String(),
	}
}
