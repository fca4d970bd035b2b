// Package source provides the telemetry feeds the panel consumes. The
// panel itself never touches hardware; it only classifies the snapshots a
// Source hands it.
package source

import (
	"context"
	"fmt"

	"github.com/kostyay/drivemon/internal/model"
)

// Source is the interface for collecting one telemetry snapshot pair.
type Source interface {
	// Collect gathers the current device and vehicle snapshots.
	Collect(ctx context.Context) (model.DeviceSnapshot, model.VehicleSnapshot, error)
}

// New returns the source with the given name: "sim" for the scripted
// drive scenario, "host" for real host readings over the sim baseline.
func New(name string) (Source, error) {
	switch name {
	case "", "sim":
		return NewSim(), nil
	case "host":
		return NewHost(), nil
	default:
		return nil, fmt.Errorf("unknown telemetry source %q", name)
	}
}

// CollectOnce performs a single snapshot collection from the named
// source. This is a convenience for one-shot output modes.
func CollectOnce(ctx context.Context, name string) (model.DeviceSnapshot, model.VehicleSnapshot, error) {
	s, err := New(name)
	if err != nil {
		return model.DeviceSnapshot{}, model.VehicleSnapshot{}, err
	}
	return s.Collect(ctx)
}
