// Package hw identifies the platform variant the panel runs on.
package hw

import "os"

// Platform is the hardware variant.
type Platform int

const (
	PlatformPC Platform = iota // development host
	PlatformEON
	PlatformTICI
)

// String returns a human-readable name for the Platform.
func (p Platform) String() string {
	switch p {
	case PlatformEON:
		return "eon"
	case PlatformTICI:
		return "tici"
	default:
		return "pc"
	}
}

// FromName maps a platform name to a Platform. Unrecognized names map to
// the development host.
func FromName(name string) Platform {
	switch name {
	case "eon":
		return PlatformEON
	case "tici":
		return PlatformTICI
	default:
		return PlatformPC
	}
}

// Detect returns the platform variant, honoring the DRIVEMON_PLATFORM
// environment override.
func Detect() Platform {
	return FromName(os.Getenv("DRIVEMON_PLATFORM"))
}

// SupportsWifiAddress reports whether this variant shows the Wi-Fi IP
// address in the panel's network text region instead of the type label.
func (p Platform) SupportsWifiAddress() bool {
	return p == PlatformEON
}
