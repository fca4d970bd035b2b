package model

import "testing"

func TestNetworkTypeLabel(t *testing.T) {
	cases := []struct {
		net  NetworkType
		want string
	}{
		{NetNone, "--"},
		{NetWifi, "WiFi"},
		{NetCell2G, "2G"},
		{NetCell3G, "3G"},
		{NetCell4G, "LTE"},
		{NetCell5G, "5G"},
		{NetEthernet, "ethernet"},
		{NetworkType(42), "--"},
	}

	for _, tc := range cases {
		if got := tc.net.Label(); got != tc.want {
			t.Errorf("NetworkType(%d).Label() = %q, want %q", tc.net, got, tc.want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	cases := []struct {
		sev  Severity
		want string
	}{
		{SeverityGood, "good"},
		{SeverityWarning, "warning"},
		{SeverityDanger, "danger"},
		{Severity(9), "Severity(9)"},
	}

	for _, tc := range cases {
		if got := tc.sev.String(); got != tc.want {
			t.Errorf("Severity.String() = %q, want %q", got, tc.want)
		}
	}
}

func TestDefaultSidebarState(t *testing.T) {
	s := DefaultSidebarState()

	// Construction defaults never claim unobserved health
	if s.ConnectStatus.Severity == SeverityGood {
		t.Error("default connect status should not be good")
	}
	if s.TempStatus.Severity != SeverityDanger {
		t.Errorf("default temp severity = %v, want danger", s.TempStatus.Severity)
	}
	if s.VehicleStatus.Label != "NO\nPANDA" {
		t.Errorf("default vehicle label = %q, want NO\\nPANDA", s.VehicleStatus.Label)
	}
	if s.SignalLevel != 0 {
		t.Errorf("default signal level = %d, want 0", s.SignalLevel)
	}
	if s.NetworkLabel != "--" {
		t.Errorf("default network label = %q, want --", s.NetworkLabel)
	}
	if s.BatteryPercent != 0 {
		t.Errorf("default battery percent = %d, want 0", s.BatteryPercent)
	}
}
