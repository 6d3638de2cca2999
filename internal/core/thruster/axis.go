package thruster

import "github.com/zeusync/thrusters/internal/core/physics/sixdof"

// ForceAxis describes how a thruster's output projects onto each of the six
// degrees of freedom. Values are not range-checked; a zero axis never fires.
type ForceAxis struct {
	sixdof.Vec6
}

// NewForceAxis wraps v as a thruster axis.
func NewForceAxis(v sixdof.Vec6) ForceAxis { return ForceAxis{Vec6: v} }

// CurrentVelocity is the vehicle's measured velocity in its local 6-DOF frame.
type CurrentVelocity struct {
	sixdof.Vec6
}

func NewCurrentVelocity(v sixdof.Vec6) CurrentVelocity { return CurrentVelocity{Vec6: v} }

// IntendedVelocity is the velocity the vehicle should reach.
type IntendedVelocity struct {
	sixdof.Vec6
}

func NewIntendedVelocity(v sixdof.Vec6) IntendedVelocity { return IntendedVelocity{Vec6: v} }

var (
	_ sixdof.Relative6D = ForceAxis{}
	_ sixdof.Relative6D = CurrentVelocity{}
	_ sixdof.Relative6D = IntendedVelocity{}
)
