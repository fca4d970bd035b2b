package source

import (
	"context"
	"sync"
	"time"

	"github.com/kostyay/drivemon/internal/model"
)

// Phase lengths for the scripted drive scenario, in Collect calls.
const (
	simPhaseLen = 8
	simPhases   = 5
)

// Sim is a deterministic scripted telemetry source. It plays back one
// drive scenario in a loop: boot on the charger, pull away while GPS
// searches, cruise, overheat, then lose the backend connection.
type Sim struct {
	mu   sync.Mutex
	step int
}

// NewSim returns a Sim positioned at the start of the scenario.
func NewSim() *Sim {
	return &Sim{}
}

// Collect returns the next scripted snapshot pair. Safe for concurrent
// use; each call advances the scenario by one step.
func (s *Sim) Collect(ctx context.Context) (model.DeviceSnapshot, model.VehicleSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.DeviceSnapshot{}, model.VehicleSnapshot{}, err
	}

	s.mu.Lock()
	step := s.step
	s.step++
	s.mu.Unlock()

	return simSnapshotAt(step)
}

// simSnapshotAt computes the scripted snapshots for an absolute step.
// Split out so tests can probe arbitrary points in the scenario.
func simSnapshotAt(step int) (model.DeviceSnapshot, model.VehicleSnapshot, error) {
	phase := (step / simPhaseLen) % simPhases
	tick := step % simPhaseLen

	dev := model.DeviceSnapshot{
		NetworkType:      model.NetCell4G,
		NetworkStrength:  3,
		LastAthenaPingNS: NowNanos(),
		AmbientTempC:     33.0,
		CPUTempsC:        []float64{46.0 + float64(tick), 44.5 + float64(tick)},
		GPUTempsC:        []float64{41.0 + float64(tick)},
		ThermalStatus:    model.ThermalGreen,
		BatteryPercent:   70,
		BatteryCharging:  false,
		Timestamp:        time.Now(),
	}
	veh := model.VehicleSnapshot{
		PandaType: model.PandaUno,
		Started:   true,
		GPSOk:     true,
	}

	switch phase {
	case 0: // parked on the charger, Wi-Fi at home
		dev.NetworkType = model.NetWifi
		dev.NetworkStrength = 4
		dev.WifiAddress = "192.168.1.42"
		dev.BatteryCharging = true
		dev.BatteryPercent = 60 + tick*5
		veh.Started = false
		if tick < 2 {
			// panda enumerates a beat after boot
			veh.PandaType = model.PandaUnknown
		}
	case 1: // pulling away, GPS still searching
		veh.GPSOk = false
		dev.BatteryPercent = 95 - tick
	case 2: // cruising
		dev.NetworkStrength = 4
		dev.BatteryPercent = 88 - tick
	case 3: // heat soak
		dev.AmbientTempC = 41.0
		dev.CPUTempsC = []float64{68.0 + 3.0*float64(tick), 66.0 + 3.0*float64(tick)}
		dev.GPUTempsC = []float64{71.0 + 3.0*float64(tick)}
		dev.ThermalStatus = model.ThermalYellow
		if tick >= simPhaseLen/2 {
			dev.ThermalStatus = model.ThermalRed
		}
		dev.BatteryPercent = 80 - tick
	case 4: // backend drops out
		dev.NetworkType = model.NetNone
		dev.NetworkStrength = 0
		dev.LastAthenaPingNS = 0
		dev.BatteryPercent = 72 - tick
	}

	if dev.BatteryPercent > 100 {
		dev.BatteryPercent = 100
	}

	return dev, veh, nil
}
