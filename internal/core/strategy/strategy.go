// Package strategy maps a vehicle's thruster axes and its desired velocity correction
// to per-thruster firing strengths.
//
// Strategies are pure: they never mutate their inputs, perform no I/O and keep no
// state between calls, so one value may be shared by any number of goroutines.
// Identifiers are opaque to strategies; the host chooses any comparable key type.
package strategy

import (
	"github.com/zeusync/thrusters/internal/core/physics/sixdof"
	"github.com/zeusync/thrusters/internal/core/thruster"
)

// ThrusterInfo is a read-only snapshot of one candidate thruster.
type ThrusterInfo struct {
	Thruster  thruster.Thruster
	ForceAxis thruster.ForceAxis
}

// ParentInfo pairs the vehicle's current and intended velocity.
type ParentInfo struct {
	CurrentVelocity  thruster.CurrentVelocity
	IntendedVelocity thruster.IntendedVelocity
}

// Difference returns the correction vector, intended minus current.
func (p ParentInfo) Difference() sixdof.Vec6 {
	return sixdof.Generic(p.IntendedVelocity).Sub(sixdof.Generic(p.CurrentVelocity))
}

// PureStrategy calculates a strength for every thruster in blocks.
//
// The result holds exactly the keys of blocks. An empty input yields an empty,
// non-nil result. Implementations must not fail; a thruster that cannot be
// scored gets 0.
type PureStrategy[ID comparable] interface {
	Name() string
	Calculate(blocks map[ID]ThrusterInfo, parent ParentInfo) map[ID]float64
}

// Func adapts a per-thruster scoring function to a PureStrategy.
type Func[ID comparable] struct {
	StrategyName string
	Score        func(info ThrusterInfo, aim sixdof.Vec6) float64
}

var _ PureStrategy[string] = Func[string]{}

func (f Func[ID]) Name() string { return f.StrategyName }

func (f Func[ID]) Calculate(blocks map[ID]ThrusterInfo, parent ParentInfo) map[ID]float64 {
	return scoreEach(blocks, parent.Difference(), f.Score)
}

func scoreEach[ID comparable](blocks map[ID]ThrusterInfo, aim sixdof.Vec6, score func(ThrusterInfo, sixdof.Vec6) float64) map[ID]float64 {
	result := make(map[ID]float64, len(blocks))
	for id, info := range blocks {
		result[id] = score(info, aim)
	}
	return result
}
