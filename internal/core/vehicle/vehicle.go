// Package vehicle is the host-side aggregate of a multi-thruster vehicle.
//
// It owns mutable thruster state and sequences one allocation cycle as
// gather (Snapshot), pure compute (a strategy.PureStrategy) and apply (Apply).
package vehicle

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/thrusters/internal/core/physics"
	"github.com/zeusync/thrusters/internal/core/physics/sixdof"
	"github.com/zeusync/thrusters/internal/core/strategy"
	"github.com/zeusync/thrusters/internal/core/thruster"
)

var (
	ErrThrusterNotFound = errors.New("thruster not found")
	ErrThrusterExists   = errors.New("thruster already mounted")
)

// ThrusterID identifies a mounted thruster.
type ThrusterID = uuid.UUID

// Mount is one thruster attached to a vehicle.
type Mount struct {
	ID        ThrusterID
	Name      string
	Thruster  thruster.Thruster
	ForceAxis thruster.ForceAxis
	// Force is the last synced physical force; nil until prepared.
	Force *physics.Vec3
}

// Vehicle is safe for concurrent use. All mutation is serialized by its mutex.
type Vehicle struct {
	name string

	mu        sync.Mutex
	current   thruster.CurrentVelocity
	intended  thruster.IntendedVelocity
	thrusters map[ThrusterID]*Mount
	order     []ThrusterID
}

func New(name string) *Vehicle {
	return &Vehicle{
		name:      name,
		thrusters: make(map[ThrusterID]*Mount),
	}
}

func (v *Vehicle) Name() string { return v.name }

// Mount attaches a thruster under a fresh random ID.
func (v *Vehicle) Mount(name string, t thruster.Thruster, axis thruster.ForceAxis) ThrusterID {
	v.mu.Lock()
	defer v.mu.Unlock()

	// redraw on collision so Mount never fails
	id := uuid.New()
	for v.thrusters[id] != nil {
		id = uuid.New()
	}
	v.mountLocked(id, name, t, axis)
	return id
}

// MountWithID attaches a thruster under a caller-chosen ID.
func (v *Vehicle) MountWithID(id ThrusterID, name string, t thruster.Thruster, axis thruster.ForceAxis) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.thrusters[id]; ok {
		return fmt.Errorf("%w: %s", ErrThrusterExists, id)
	}
	v.mountLocked(id, name, t, axis)
	return nil
}

func (v *Vehicle) mountLocked(id ThrusterID, name string, t thruster.Thruster, axis thruster.ForceAxis) {
	v.thrusters[id] = &Mount{ID: id, Name: name, Thruster: t, ForceAxis: axis}
	v.order = append(v.order, id)
}

func (v *Vehicle) Unmount(id ThrusterID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.thrusters[id]; !ok {
		return fmt.Errorf("%w: %s", ErrThrusterNotFound, id)
	}
	delete(v.thrusters, id)
	for i, o := range v.order {
		if o == id {
			v.order = append(v.order[:i], v.order[i+1:]...)
			break
		}
	}
	return nil
}

// Thruster returns a copy of the mounted thruster.
func (v *Vehicle) Thruster(id ThrusterID) (Mount, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	m, ok := v.thrusters[id]
	if !ok {
		return Mount{}, false
	}
	return m.copy(), true
}

// Thrusters returns copies of all mounts in mount order.
func (v *Vehicle) Thrusters() []Mount {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]Mount, 0, len(v.order))
	for _, id := range v.order {
		out = append(out, v.thrusters[id].copy())
	}
	return out
}

func (v *Vehicle) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.thrusters)
}

// SetForceAxis replaces the axis of a mounted thruster.
func (v *Vehicle) SetForceAxis(id ThrusterID, axis thruster.ForceAxis) error {
	return v.update(id, func(m *Mount) { m.ForceAxis = axis })
}

// SetStrengthFactor writes through the thruster's clamped setter.
func (v *Vehicle) SetStrengthFactor(id ThrusterID, factor float64) error {
	return v.update(id, func(m *Mount) { m.Thruster.SetStrengthFactor(factor) })
}

func (v *Vehicle) SetVelocities(current, intended sixdof.Vec6) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = thruster.NewCurrentVelocity(current)
	v.intended = thruster.NewIntendedVelocity(intended)
}

func (v *Vehicle) SetCurrentVelocity(current sixdof.Vec6) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = thruster.NewCurrentVelocity(current)
}

func (v *Vehicle) SetIntendedVelocity(intended sixdof.Vec6) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.intended = thruster.NewIntendedVelocity(intended)
}

// Snapshot copies the thruster and velocity state consumed by one strategy call.
func (v *Vehicle) Snapshot() (map[ThrusterID]strategy.ThrusterInfo, strategy.ParentInfo) {
	v.mu.Lock()
	defer v.mu.Unlock()

	blocks := make(map[ThrusterID]strategy.ThrusterInfo, len(v.thrusters))
	for id, m := range v.thrusters {
		blocks[id] = strategy.ThrusterInfo{Thruster: m.Thruster, ForceAxis: m.ForceAxis}
	}
	return blocks, strategy.ParentInfo{CurrentVelocity: v.current, IntendedVelocity: v.intended}
}

// Apply writes strengths into the mounted thrusters through their clamped setter.
// IDs that are no longer mounted are skipped and counted in the returned value.
func (v *Vehicle) Apply(strengths map[ThrusterID]float64) (skipped int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for id, s := range strengths {
		m, ok := v.thrusters[id]
		if !ok {
			skipped++
			continue
		}
		m.Thruster.SetCurrentStatus(s)
	}
	return skipped
}

// Allocate runs one gather, compute and apply cycle with s.
func (v *Vehicle) Allocate(s strategy.PureStrategy[ThrusterID]) (map[ThrusterID]float64, int) {
	blocks, parent := v.Snapshot()
	strengths := s.Calculate(blocks, parent)
	return strengths, v.Apply(strengths)
}

// Prepare gives every unprepared thruster a zero force slot and reports how many it touched.
func (v *Vehicle) Prepare() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	prepared := 0
	for _, id := range v.order {
		m := v.thrusters[id]
		if m.Force == nil {
			m.Force = &physics.Vec3{}
			prepared++
		}
	}
	return prepared
}

// SyncForces recomputes the physical force of every prepared thruster.
func (v *Vehicle) SyncForces() map[ThrusterID]physics.Vec3 {
	v.mu.Lock()
	defer v.mu.Unlock()

	forces := make(map[ThrusterID]physics.Vec3, len(v.thrusters))
	for id, m := range v.thrusters {
		if m.Force == nil {
			continue
		}
		*m.Force = m.Thruster.Force()
		forces[id] = *m.Force
	}
	return forces
}

func (v *Vehicle) update(id ThrusterID, fn func(*Mount)) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	m, ok := v.thrusters[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrThrusterNotFound, id)
	}
	fn(m)
	return nil
}

func (m *Mount) copy() Mount {
	c := *m
	if m.Force != nil {
		f := *m.Force
		c.Force = &f
	}
	return c
}
