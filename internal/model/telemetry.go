package model

import (
	"fmt"
	"time"
)

// Severity classifies how urgent a status indicator is.
type Severity int

const (
	SeverityGood Severity = iota
	SeverityWarning
	SeverityDanger
)

// String returns a human-readable name for the Severity.
func (s Severity) String() string {
	switch s {
	case SeverityGood:
		return "good"
	case SeverityWarning:
		return "warning"
	case SeverityDanger:
		return "danger"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ItemStatus is one display-ready status indicator. The label may contain
// line breaks; the renderer centers each line.
type ItemStatus struct {
	Label    string   // e.g. "CONNECT\nONLINE"
	Severity Severity // drives the card accent color
}

// NetworkType identifies the active network connection type.
type NetworkType int

const (
	NetNone NetworkType = iota
	NetWifi
	NetCell2G
	NetCell3G
	NetCell4G
	NetCell5G
	NetEthernet
)

// Label returns the display string for the network type. Unrecognized
// values fall back to the none label.
func (n NetworkType) Label() string {
	switch n {
	case NetWifi:
		return "WiFi"
	case NetCell2G:
		return "2G"
	case NetCell3G:
		return "3G"
	case NetCell4G:
		return "LTE"
	case NetCell5G:
		return "5G"
	case NetEthernet:
		return "ethernet"
	default:
		return "--"
	}
}

// ThermalStatus is the device-reported coarse temperature tier, distinct
// from the raw numeric temperatures.
type ThermalStatus int

const (
	ThermalGreen ThermalStatus = iota
	ThermalYellow
	ThermalRed
)

// PandaType identifies the vehicle CAN interface hardware. Unknown means
// the panda is not detected.
type PandaType int

const (
	PandaUnknown PandaType = iota
	PandaWhite
	PandaGrey
	PandaBlack
	PandaUno
	PandaDos
)

// DeviceSnapshot is one reading of device telemetry.
type DeviceSnapshot struct {
	NetworkType      NetworkType
	NetworkStrength  int     // raw modem strength, domain-dependent range
	WifiAddress      string  // e.g. 192.168.1.17
	LastAthenaPingNS int64   // monotonic nanoseconds, 0 = never heard from athena
	AmbientTempC     float64 // ambient sensor reading
	CPUTempsC        []float64
	GPUTempsC        []float64
	ThermalStatus    ThermalStatus
	BatteryPercent   int
	BatteryCharging  bool
	Timestamp        time.Time // when this snapshot was taken
}

// VehicleSnapshot is one reading of vehicle-interface telemetry.
type VehicleSnapshot struct {
	PandaType PandaType
	Started   bool // ignition on / drive active
	GPSOk     bool
}

// SidebarState is the complete classified display state of the panel.
// It is built wholesale by the classifier and never mutated in place;
// the renderer only reads the most recently committed value.
type SidebarState struct {
	ConnectStatus ItemStatus
	TempStatus    ItemStatus
	VehicleStatus ItemStatus

	NetworkType  NetworkType
	NetworkLabel string
	WifiAddress  string
	SignalLevel  int // 0..5 filled indicator dots

	BatteryPercent  int // 0..100
	BatteryCharging bool

	UpdatedAt time.Time
}

// DefaultSidebarState returns the conservative construction defaults: the
// panel never claims health it has not observed.
func DefaultSidebarState() SidebarState {
	return SidebarState{
		ConnectStatus: ItemStatus{Label: "CONNECT\nOFFLINE", Severity: SeverityWarning},
		TempStatus:    ItemStatus{Label: "--\nHIGH_TEMP", Severity: SeverityDanger},
		VehicleStatus: ItemStatus{Label: "NO\nPANDA", Severity: SeverityDanger},
		NetworkType:   NetNone,
		NetworkLabel:  NetNone.Label(),
	}
}
