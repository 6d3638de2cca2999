package thruster

import (
	"github.com/zeusync/thrusters/internal/core/observability/log"
	"github.com/zeusync/thrusters/internal/core/physics"
)

const (
	MinStatus = 0.0
	MaxStatus = 1.0
)

// Thruster is the commanded state of one thruster.
//
// Both values are clamped when written: the strength factor to >= 0 and the
// current status to [MinStatus, MaxStatus]. Out-of-range input is corrected and
// reported as a warning, never as an error.
//
// A Thruster is not safe for concurrent mutation.
type Thruster struct {
	// multiplied by the current status to get the physical force magnitude
	strengthFactor float64
	// allocator output, overwritten every cycle
	currentStatus float64
}

// New returns a thruster with strength factor 1 and status 0.
func New() Thruster {
	return NewWithStrengthFactor(1)
}

func NewWithStrengthFactor(strengthFactor float64) Thruster {
	t := Thruster{}
	t.SetStrengthFactor(strengthFactor)
	return t
}

func (t Thruster) StrengthFactor() float64 {
	return clampFactor(t.strengthFactor)
}

func (t *Thruster) SetStrengthFactor(strengthFactor float64) *Thruster {
	if !(strengthFactor >= 0) {
		log.Provide().Warn("strength factor must be >= 0, clamping",
			log.Float64("strength_factor", strengthFactor))
	}
	t.strengthFactor = clampFactor(strengthFactor)
	return t
}

func (t Thruster) CurrentStatus() float64 {
	return clampStatus(t.currentStatus)
}

func (t *Thruster) SetCurrentStatus(status float64) *Thruster {
	if !(status >= MinStatus && status <= MaxStatus) {
		log.Provide().Warn("current status must be within [0, 1], clamping",
			log.Float64("current_status", status))
	}
	t.currentStatus = clampStatus(status)
	return t
}

// Strength is an alias of CurrentStatus.
func (t Thruster) Strength() float64 { return t.CurrentStatus() }

// SetStrength is an alias of SetCurrentStatus.
func (t *Thruster) SetStrength(strength float64) *Thruster { return t.SetCurrentStatus(strength) }

// UpdateStatus applies fn to the current status in place and re-clamps the result.
func (t *Thruster) UpdateStatus(fn func(status float64) float64) *Thruster {
	return t.SetCurrentStatus(fn(t.CurrentStatus()))
}

// Force is the thruster's physical force in its local frame:
// UnitZ * current status * strength factor.
func (t Thruster) Force() physics.Vec3 {
	return physics.UnitZ.Scale(t.CurrentStatus() * t.StrengthFactor())
}

// NaN clamps to the lower bound.
func clampStatus(v float64) float64 {
	if !(v >= MinStatus) {
		return MinStatus
	}
	return min(v, MaxStatus)
}

func clampFactor(v float64) float64 {
	if !(v >= 0) {
		return 0
	}
	return v
}
