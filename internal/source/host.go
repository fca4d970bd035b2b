package source

import (
	"context"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/kostyay/drivemon/internal/model"
)

// Host overlays real host readings on the scripted baseline: sensor
// temperatures and network interface state come from the machine, while
// vehicle/battery/backend fields keep the sim script (a development host
// has no panda or modem to read).
type Host struct {
	sim *Sim
}

// NewHost returns a host-backed source.
func NewHost() *Host {
	return &Host{sim: NewSim()}
}

// Collect gathers the current snapshots. Sensor or interface probe
// failures are not fatal; the affected fields keep their baseline values.
func (h *Host) Collect(ctx context.Context) (model.DeviceSnapshot, model.VehicleSnapshot, error) {
	dev, veh, err := h.sim.Collect(ctx)
	if err != nil {
		return dev, veh, err
	}

	if temps, err := host.SensorsTemperaturesWithContext(ctx); err == nil {
		cpu, gpu, ambient := splitSensorTemps(temps)
		if len(cpu) > 0 {
			dev.CPUTempsC = cpu
		}
		if len(gpu) > 0 {
			dev.GPUTempsC = gpu
		}
		if ambient > 0 {
			dev.AmbientTempC = ambient
		}
	}

	if netType, addr, ok := detectNetwork(ctx); ok {
		dev.NetworkType = netType
		dev.WifiAddress = addr
		// Host adapters expose no modem-style strength; report full
		// scale whenever a link is up.
		dev.NetworkStrength = 4
	}

	dev.Timestamp = time.Now()
	return dev, veh, nil
}

// splitSensorTemps buckets sensor readings into cpu and gpu groups and
// picks an ambient reading if one is present.
func splitSensorTemps(stats []host.TemperatureStat) (cpu, gpu []float64, ambient float64) {
	for _, st := range stats {
		if st.Temperature <= 0 {
			continue
		}
		key := strings.ToLower(st.SensorKey)
		switch {
		case strings.Contains(key, "coretemp"), strings.Contains(key, "cpu"),
			strings.Contains(key, "k10temp"), strings.Contains(key, "soc"):
			cpu = append(cpu, st.Temperature)
		case strings.Contains(key, "gpu"), strings.Contains(key, "amdgpu"),
			strings.Contains(key, "nouveau"):
			gpu = append(gpu, st.Temperature)
		case strings.Contains(key, "ambient"), strings.Contains(key, "acpitz"):
			if st.Temperature > ambient {
				ambient = st.Temperature
			}
		}
	}
	return cpu, gpu, ambient
}

// detectNetwork finds the first up, non-loopback interface with an IPv4
// address. Wi-Fi interfaces win over wired ones.
func detectNetwork(ctx context.Context) (model.NetworkType, string, bool) {
	ifaces, err := gnet.InterfacesWithContext(ctx)
	if err != nil {
		return model.NetNone, "", false
	}

	var wiredAddr string
	for _, iface := range ifaces {
		if !hasFlag(iface.Flags, "up") || hasFlag(iface.Flags, "loopback") {
			continue
		}
		addr := firstIPv4(iface.Addrs)
		if addr == "" {
			continue
		}
		if isWifiName(iface.Name) {
			return model.NetWifi, addr, true
		}
		if wiredAddr == "" {
			wiredAddr = addr
		}
	}

	if wiredAddr != "" {
		return model.NetEthernet, wiredAddr, true
	}
	return model.NetNone, "", false
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, want) {
			return true
		}
	}
	return false
}

// isWifiName matches common wireless interface naming schemes (wlan0,
// wlp3s0, wlx…, en0 on darwin laptops).
func isWifiName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "wl") ||
		strings.Contains(lower, "wifi") ||
		lower == "en0"
}

// firstIPv4 returns the first IPv4 address, stripped of its prefix length.
func firstIPv4(addrs []gnet.InterfaceAddr) string {
	for _, a := range addrs {
		ip := a.Addr
		if idx := strings.Index(ip, "/"); idx != -1 {
			ip = ip[:idx]
		}
		if strings.Count(ip, ".") == 3 {
			return ip
		}
	}
	return ""
}
