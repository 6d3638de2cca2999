package strategy

import (
	"math"

	"github.com/zeusync/thrusters/internal/core/physics/sixdof"
	"github.com/zeusync/thrusters/internal/core/thruster"
)

// ExactAxis scores each thruster by the dot product of its force axis and the
// correction vector.
//
// Scores are returned raw: negative values and values above 1 are left for
// Thruster.SetCurrentStatus to clamp when applied. Use Saturating for scores
// that are already within [0, 1].
type ExactAxis[ID comparable] struct{}

var _ PureStrategy[int] = ExactAxis[int]{}

func (ExactAxis[ID]) Name() string { return ExactAxisName }

func (ExactAxis[ID]) Calculate(blocks map[ID]ThrusterInfo, parent ParentInfo) map[ID]float64 {
	return scoreEach(blocks, parent.Difference(), projection)
}

// Saturating is ExactAxis with each score clamped to [0, 1] inside the strategy.
// A thruster cannot push against its own axis, so opposing thrusters score 0.
type Saturating[ID comparable] struct{}

func (Saturating[ID]) Name() string { return SaturatingName }

func (Saturating[ID]) Calculate(blocks map[ID]ThrusterInfo, parent ParentInfo) map[ID]float64 {
	return scoreEach(blocks, parent.Difference(), func(info ThrusterInfo, aim sixdof.Vec6) float64 {
		return clamp(projection(info, aim))
	})
}

// Proportional floors negative projections to 0 and, when the strongest
// projection exceeds 1, scales every score down by it. Ratios between
// thrusters survive, unlike clamping each score independently.
type Proportional[ID comparable] struct{}

func (Proportional[ID]) Name() string { return ProportionalName }

func (Proportional[ID]) Calculate(blocks map[ID]ThrusterInfo, parent ParentInfo) map[ID]float64 {
	result := scoreEach(blocks, parent.Difference(), func(info ThrusterInfo, aim sixdof.Vec6) float64 {
		return max(projection(info, aim), 0)
	})

	peak := 0.0
	for _, score := range result {
		peak = max(peak, score)
	}
	if peak <= thruster.MaxStatus {
		return result
	}
	// an infinite peak saturates its own thrusters and drowns out the rest
	if math.IsInf(peak, 1) {
		for id, score := range result {
			result[id] = 0
			if math.IsInf(score, 1) {
				result[id] = thruster.MaxStatus
			}
		}
		return result
	}
	for id, score := range result {
		result[id] = score / peak
	}
	return result
}

func projection(info ThrusterInfo, aim sixdof.Vec6) float64 {
	score := info.ForceAxis.Dot(aim)
	if math.IsNaN(score) {
		return 0
	}
	return score
}

func clamp(v float64) float64 {
	return min(max(v, thruster.MinStatus), thruster.MaxStatus)
}
