package status

import (
	"strings"
	"testing"
	"time"

	"github.com/kostyay/drivemon/internal/model"
)

const second = int64(time.Second)

func TestConnectStatus_NeverPinged_NoPrime(t *testing.T) {
	got := ConnectStatus(0, false, 100*second)

	if got.Label != "CONNECT\nOFFLINE" {
		t.Errorf("Label = %q, want %q", got.Label, "CONNECT\nOFFLINE")
	}
	if got.Severity != model.SeverityWarning {
		t.Errorf("Severity = %v, want warning", got.Severity)
	}
}

func TestConnectStatus_NeverPinged_PrimeRedirected(t *testing.T) {
	got := ConnectStatus(0, true, 100*second)

	if got.Label != "NO\nPRIME" {
		t.Errorf("Label = %q, want %q", got.Label, "NO\nPRIME")
	}
	if got.Severity != model.SeverityDanger {
		t.Errorf("Severity = %v, want danger", got.Severity)
	}
}

func TestConnectStatus_FreshPing(t *testing.T) {
	now := 100 * second
	got := ConnectStatus(now-1*second, false, now)

	if got.Label != "CONNECT\nONLINE" {
		t.Errorf("Label = %q, want %q", got.Label, "CONNECT\nONLINE")
	}
	if got.Severity != model.SeverityGood {
		t.Errorf("Severity = %v, want good", got.Severity)
	}
}

func TestConnectStatus_JustUnderTimeout(t *testing.T) {
	now := 1000 * second
	got := ConnectStatus(now-int64(AthenaPingTimeout)+1, false, now)

	if got.Severity != model.SeverityGood {
		t.Errorf("delta just under %v should be good, got %v", AthenaPingTimeout, got.Severity)
	}
}

func TestConnectStatus_ExactlyAtTimeout(t *testing.T) {
	now := 1000 * second
	got := ConnectStatus(now-int64(AthenaPingTimeout), false, now)

	if got.Label != "CONNECT\nERROR" {
		t.Errorf("Label = %q, want %q", got.Label, "CONNECT\nERROR")
	}
	if got.Severity != model.SeverityDanger {
		t.Errorf("delta of exactly %v should be danger, got %v", AthenaPingTimeout, got.Severity)
	}
}

func TestConnectStatus_StalePing(t *testing.T) {
	now := 1000 * second
	got := ConnectStatus(now-300*second, false, now)

	if got.Label != "CONNECT\nERROR" {
		t.Errorf("Label = %q, want %q", got.Label, "CONNECT\nERROR")
	}
	if got.Severity != model.SeverityDanger {
		t.Errorf("Severity = %v, want danger", got.Severity)
	}
}

func TestConnectStatus_PrimeIgnoredWhenPinged(t *testing.T) {
	// primeRedirected only matters when no ping was ever received
	now := 100 * second
	got := ConnectStatus(now-1*second, true, now)

	if got.Label != "CONNECT\nONLINE" {
		t.Errorf("Label = %q, want %q", got.Label, "CONNECT\nONLINE")
	}
}

func TestTempStatus_Green(t *testing.T) {
	got := TempStatus(35.0, []float64{42.5, 40.0}, []float64{38.0}, model.ThermalGreen)

	if got.Label != "42.5°C\nGOOD\nCPU" {
		t.Errorf("Label = %q, want %q", got.Label, "42.5°C\nGOOD\nCPU")
	}
	if got.Severity != model.SeverityGood {
		t.Errorf("Severity = %v, want good", got.Severity)
	}
}

func TestTempStatus_Yellow(t *testing.T) {
	got := TempStatus(40.0, []float64{45.0, 38.0}, []float64{30.0}, model.ThermalYellow)

	if got.Label != "45.0°C\nOK\nCPU" {
		t.Errorf("Label = %q, want %q", got.Label, "45.0°C\nOK\nCPU")
	}
	if got.Severity != model.SeverityWarning {
		t.Errorf("Severity = %v, want warning", got.Severity)
	}
}

func TestTempStatus_Red(t *testing.T) {
	got := TempStatus(50.0, []float64{88.0}, nil, model.ThermalRed)

	if got.Label != "88.0°C\nHIGH_TEMP" {
		t.Errorf("Label = %q, want %q", got.Label, "88.0°C\nHIGH_TEMP")
	}
	if got.Severity != model.SeverityDanger {
		t.Errorf("Severity = %v, want danger", got.Severity)
	}
}

func TestTempStatus_UnknownTierIsDanger(t *testing.T) {
	got := TempStatus(30.0, nil, nil, model.ThermalStatus(99))

	if got.Severity != model.SeverityDanger {
		t.Errorf("unrecognized tier should be danger, got %v", got.Severity)
	}
}

func TestTempStatus_EmptySequences(t *testing.T) {
	// With no cpu/gpu readings the ambient value is displayed as-is
	got := TempStatus(33.4, nil, nil, model.ThermalGreen)

	if got.Label != "33.4°C\nGOOD\nCPU" {
		t.Errorf("Label = %q, want %q", got.Label, "33.4°C\nGOOD\nCPU")
	}
}

func TestTempStatus_AmbientHighest(t *testing.T) {
	got := TempStatus(60.0, []float64{45.0}, []float64{50.0}, model.ThermalGreen)

	if got.Label != "60.0°C\nGOOD\nCPU" {
		t.Errorf("Label = %q, want %q", got.Label, "60.0°C\nGOOD\nCPU")
	}
}

func TestTempStatus_GPUHighest(t *testing.T) {
	got := TempStatus(30.0, []float64{45.0, 47.5}, []float64{52.0, 49.0}, model.ThermalYellow)

	if got.Label != "52.0°C\nOK\nCPU" {
		t.Errorf("Label = %q, want %q", got.Label, "52.0°C\nOK\nCPU")
	}
}

func TestTempStatus_DangerLabelHasTwoLines(t *testing.T) {
	// The danger label intentionally has one line fewer than the
	// good/warning labels.
	danger := TempStatus(90.0, nil, nil, model.ThermalRed)
	good := TempStatus(40.0, nil, nil, model.ThermalGreen)

	if lines := strings.Count(danger.Label, "\n") + 1; lines != 2 {
		t.Errorf("danger label has %d lines, want 2", lines)
	}
	if lines := strings.Count(good.Label, "\n") + 1; lines != 3 {
		t.Errorf("good label has %d lines, want 3", lines)
	}
}

func TestVehicleStatus_NoPanda(t *testing.T) {
	got := VehicleStatus(model.PandaUnknown, false, true)

	if got.Label != "NO\nPANDA" {
		t.Errorf("Label = %q, want %q", got.Label, "NO\nPANDA")
	}
	if got.Severity != model.SeverityDanger {
		t.Errorf("Severity = %v, want danger", got.Severity)
	}
}

func TestVehicleStatus_NoPandaBeatsGPSCheck(t *testing.T) {
	// Unknown panda wins even while started with no GPS fix
	got := VehicleStatus(model.PandaUnknown, true, false)

	if got.Label != "NO\nPANDA" {
		t.Errorf("Label = %q, want %q", got.Label, "NO\nPANDA")
	}
	if got.Severity != model.SeverityDanger {
		t.Errorf("Severity = %v, want danger", got.Severity)
	}
}

func TestVehicleStatus_GPSSearching(t *testing.T) {
	got := VehicleStatus(model.PandaUno, true, false)

	if got.Label != "GPS\nSEARCHING" {
		t.Errorf("Label = %q, want %q", got.Label, "GPS\nSEARCHING")
	}
	if got.Severity != model.SeverityWarning {
		t.Errorf("Severity = %v, want warning", got.Severity)
	}
}

func TestVehicleStatus_OnlineWhenNotStarted(t *testing.T) {
	// GPS search state only matters while started
	got := VehicleStatus(model.PandaUno, false, false)

	if got.Label != "VEHICLE\nONLINE" {
		t.Errorf("Label = %q, want %q", got.Label, "VEHICLE\nONLINE")
	}
	if got.Severity != model.SeverityGood {
		t.Errorf("Severity = %v, want good", got.Severity)
	}
}

func TestVehicleStatus_OnlineWithGPS(t *testing.T) {
	got := VehicleStatus(model.PandaBlack, true, true)

	if got.Label != "VEHICLE\nONLINE" {
		t.Errorf("Label = %q, want %q", got.Label, "VEHICLE\nONLINE")
	}
	if got.Severity != model.SeverityGood {
		t.Errorf("Severity = %v, want good", got.Severity)
	}
}

func TestSignalLevel_Mapping(t *testing.T) {
	cases := []struct {
		raw  int
		want int
	}{
		{-3, 0},
		{0, 0},
		{1, 2},
		{2, 3},
		{3, 4},
		{4, 5},
		{5, 5},
		{99, 5},
	}

	for _, tc := range cases {
		if got := SignalLevel(tc.raw); got != tc.want {
			t.Errorf("SignalLevel(%d) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestClampPercent(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{150, 100},
	}

	for _, tc := range cases {
		if got := ClampPercent(tc.in); got != tc.want {
			t.Errorf("ClampPercent(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCompute_FullState(t *testing.T) {
	now := 500 * second
	dev := model.DeviceSnapshot{
		NetworkType:      model.NetCell4G,
		NetworkStrength:  3,
		WifiAddress:      "192.168.1.42",
		LastAthenaPingNS: now - 10*second,
		AmbientTempC:     40.0,
		CPUTempsC:        []float64{45.0, 38.0},
		GPUTempsC:        []float64{30.0},
		ThermalStatus:    model.ThermalYellow,
		BatteryPercent:   50,
		BatteryCharging:  true,
		Timestamp:        time.Unix(1700000000, 0),
	}
	veh := model.VehicleSnapshot{PandaType: model.PandaUno, Started: true, GPSOk: true}

	state := Compute(dev, veh, false, now)

	if state.ConnectStatus.Label != "CONNECT\nONLINE" {
		t.Errorf("ConnectStatus.Label = %q, want ONLINE", state.ConnectStatus.Label)
	}
	if state.TempStatus.Label != "45.0°C\nOK\nCPU" {
		t.Errorf("TempStatus.Label = %q, want %q", state.TempStatus.Label, "45.0°C\nOK\nCPU")
	}
	if state.VehicleStatus.Label != "VEHICLE\nONLINE" {
		t.Errorf("VehicleStatus.Label = %q, want VEHICLE\\nONLINE", state.VehicleStatus.Label)
	}
	if state.NetworkLabel != "LTE" {
		t.Errorf("NetworkLabel = %q, want LTE", state.NetworkLabel)
	}
	if state.SignalLevel != 4 {
		t.Errorf("SignalLevel = %d, want 4", state.SignalLevel)
	}
	if state.WifiAddress != "192.168.1.42" {
		t.Errorf("WifiAddress = %q, want passthrough", state.WifiAddress)
	}
	if state.BatteryPercent != 50 {
		t.Errorf("BatteryPercent = %d, want 50", state.BatteryPercent)
	}
	if !state.BatteryCharging {
		t.Error("BatteryCharging should be true")
	}
	if !state.UpdatedAt.Equal(dev.Timestamp) {
		t.Errorf("UpdatedAt = %v, want %v", state.UpdatedAt, dev.Timestamp)
	}
}

func TestCompute_NormalizesOutOfRangeInputs(t *testing.T) {
	dev := model.DeviceSnapshot{
		NetworkType:     model.NetworkType(99),
		NetworkStrength: 42,
		BatteryPercent:  -10,
		ThermalStatus:   model.ThermalStatus(7),
	}
	veh := model.VehicleSnapshot{PandaType: model.PandaType(42)}

	state := Compute(dev, veh, false, 100*second)

	if state.SignalLevel < 0 || state.SignalLevel > MaxSignalLevel {
		t.Errorf("SignalLevel = %d, out of [0,%d]", state.SignalLevel, MaxSignalLevel)
	}
	if state.BatteryPercent < 0 || state.BatteryPercent > 100 {
		t.Errorf("BatteryPercent = %d, out of [0,100]", state.BatteryPercent)
	}
	if state.NetworkLabel != "--" {
		t.Errorf("NetworkLabel = %q, want fallback --", state.NetworkLabel)
	}
	if state.TempStatus.Severity != model.SeverityDanger {
		t.Errorf("unknown thermal tier should classify danger, got %v", state.TempStatus.Severity)
	}
	// An unrecognized but non-unknown panda type still counts as present
	if state.VehicleStatus.Severity == model.SeverityDanger {
		t.Errorf("non-unknown panda should not be danger, got %v", state.VehicleStatus.Severity)
	}
}
