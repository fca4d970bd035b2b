// Package status maps raw telemetry snapshots to display-ready panel
// state. Every function here is pure: no I/O, no clocks, no globals.
package status

import (
	"fmt"
	"time"

	"github.com/kostyay/drivemon/internal/model"
)

// AthenaPingTimeout is how stale the last athena keepalive may be before
// connectivity is reported as an error.
const AthenaPingTimeout = 80 * time.Second

// MaxSignalLevel is the number of signal indicator dots on the panel.
const MaxSignalLevel = 5

// ConnectStatus classifies connectivity from the last athena ping.
// lastPingNS and nowNS are on the same monotonic nanosecond clock;
// lastPingNS == 0 means no ping was ever received.
func ConnectStatus(lastPingNS int64, primeRedirected bool, nowNS int64) model.ItemStatus {
	if lastPingNS == 0 {
		if primeRedirected {
			return model.ItemStatus{Label: "NO\nPRIME", Severity: model.SeverityDanger}
		}
		return model.ItemStatus{Label: "CONNECT\nOFFLINE", Severity: model.SeverityWarning}
	}
	if nowNS-lastPingNS < int64(AthenaPingTimeout) {
		return model.ItemStatus{Label: "CONNECT\nONLINE", Severity: model.SeverityGood}
	}
	return model.ItemStatus{Label: "CONNECT\nERROR", Severity: model.SeverityDanger}
}

// TempStatus classifies thermals. The displayed temperature is the max
// over the ambient reading and every cpu/gpu reading; empty slices are
// skipped. The tier comes from the device-reported thermal status, and
// any tier other than green/yellow lands on the danger branch. The danger
// label has two lines where the others have three; that asymmetry is
// intentional and matched by the shipped device UI.
func TempStatus(ambientC float64, cpuTempsC, gpuTempsC []float64, thermal model.ThermalStatus) model.ItemStatus {
	temp := ambientC
	for _, t := range cpuTempsC {
		if t > temp {
			temp = t
		}
	}
	for _, t := range gpuTempsC {
		if t > temp {
			temp = t
		}
	}

	switch thermal {
	case model.ThermalGreen:
		return model.ItemStatus{Label: fmt.Sprintf("%.1f°C\nGOOD\nCPU", temp), Severity: model.SeverityGood}
	case model.ThermalYellow:
		return model.ItemStatus{Label: fmt.Sprintf("%.1f°C\nOK\nCPU", temp), Severity: model.SeverityWarning}
	default:
		return model.ItemStatus{Label: fmt.Sprintf("%.1f°C\nHIGH_TEMP", temp), Severity: model.SeverityDanger}
	}
}

// VehicleStatus classifies the vehicle interface. The no-panda check has
// priority over the GPS check; GPS search state is only meaningful once
// the panda type is known. Do not reorder.
func VehicleStatus(panda model.PandaType, started, gpsOK bool) model.ItemStatus {
	if panda == model.PandaUnknown {
		return model.ItemStatus{Label: "NO\nPANDA", Severity: model.SeverityDanger}
	}
	if started && !gpsOK {
		return model.ItemStatus{Label: "GPS\nSEARCHING", Severity: model.SeverityWarning}
	}
	return model.ItemStatus{Label: "VEHICLE\nONLINE", Severity: model.SeverityGood}
}

// SignalLevel maps the raw modem strength to filled indicator dots:
// raw <= 0 means no link and renders zero dots, otherwise raw+1 clamped
// to MaxSignalLevel.
func SignalLevel(raw int) int {
	if raw <= 0 {
		return 0
	}
	level := raw + 1
	if level > MaxSignalLevel {
		return MaxSignalLevel
	}
	return level
}

// ClampPercent normalizes a battery percentage into [0,100].
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Compute builds a complete SidebarState from one telemetry update.
// The result replaces the previous state wholesale.
func Compute(dev model.DeviceSnapshot, veh model.VehicleSnapshot, primeRedirected bool, nowNS int64) model.SidebarState {
	return model.SidebarState{
		ConnectStatus: ConnectStatus(dev.LastAthenaPingNS, primeRedirected, nowNS),
		TempStatus:    TempStatus(dev.AmbientTempC, dev.CPUTempsC, dev.GPUTempsC, dev.ThermalStatus),
		VehicleStatus: VehicleStatus(veh.PandaType, veh.Started, veh.GPSOk),

		NetworkType:  dev.NetworkType,
		NetworkLabel: dev.NetworkType.Label(),
		WifiAddress:  dev.WifiAddress,
		SignalLevel:  SignalLevel(dev.NetworkStrength),

		BatteryPercent:  ClampPercent(dev.BatteryPercent),
		BatteryCharging: dev.BatteryCharging,

		UpdatedAt: dev.Timestamp,
	}
}
