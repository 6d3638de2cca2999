// Package sixdof holds the 6-DOF vector shape shared by thruster axes and vehicle velocities.
//
// The six components are always ordered forward, right, upwards, turn right (yaw),
// pitch up and roll right. Translational components come first.
package sixdof

import (
	"fmt"
	"iter"
)

// Dimensions is the number of components in a 6-DOF vector.
const Dimensions = 6

// Relative6D is implemented by every value shaped like a 6-DOF vector.
// Types gain Generic and Dot through the package functions of the same name.
type Relative6D interface {
	GetForward() float64
	GetRight() float64
	GetUpwards() float64
	GetTurnRight() float64
	GetPitchUp() float64
	GetRollRight() float64
}

// Vec6 is the canonical 6-DOF vector.
type Vec6 struct {
	Forward   float64 `json:"forward" yaml:"forward"`
	Right     float64 `json:"right" yaml:"right"`
	Upwards   float64 `json:"upwards" yaml:"upwards"`
	TurnRight float64 `json:"turn_right" yaml:"turn_right"`
	PitchUp   float64 `json:"pitch_up" yaml:"pitch_up"`
	RollRight float64 `json:"roll_right" yaml:"roll_right"`
}

var _ Relative6D = Vec6{}

// New builds a Vec6 from its six components in fixed order.
func New(forward, right, upwards, turnRight, pitchUp, rollRight float64) Vec6 {
	return Vec6{
		Forward:   forward,
		Right:     right,
		Upwards:   upwards,
		TurnRight: turnRight,
		PitchUp:   pitchUp,
		RollRight: rollRight,
	}
}

// FromArray builds a Vec6 from an array in fixed order.
func FromArray(a [Dimensions]float64) Vec6 {
	return New(a[0], a[1], a[2], a[3], a[4], a[5])
}

func (v Vec6) GetForward() float64   { return v.Forward }
func (v Vec6) GetRight() float64     { return v.Right }
func (v Vec6) GetUpwards() float64   { return v.Upwards }
func (v Vec6) GetTurnRight() float64 { return v.TurnRight }
func (v Vec6) GetPitchUp() float64   { return v.PitchUp }
func (v Vec6) GetRollRight() float64 { return v.RollRight }

// Generic projects any 6-DOF shaped value into a Vec6.
func Generic(v Relative6D) Vec6 {
	if vec, ok := v.(Vec6); ok {
		return vec
	}
	return Vec6{
		Forward:   v.GetForward(),
		Right:     v.GetRight(),
		Upwards:   v.GetUpwards(),
		TurnRight: v.GetTurnRight(),
		PitchUp:   v.GetPitchUp(),
		RollRight: v.GetRollRight(),
	}
}

// Dot returns the sum of the six pairwise products of a and b.
func Dot(a, b Relative6D) float64 {
	lhs, rhs := Generic(a), Generic(b)
	return lhs.Forward*rhs.Forward +
		lhs.Right*rhs.Right +
		lhs.Upwards*rhs.Upwards +
		lhs.TurnRight*rhs.TurnRight +
		lhs.PitchUp*rhs.PitchUp +
		lhs.RollRight*rhs.RollRight
}

// Dot returns the dot product of v and o.
func (v Vec6) Dot(o Relative6D) float64 { return Dot(v, o) }

// Add returns the element-wise sum of two vectors.
func (v Vec6) Add(o Vec6) Vec6 {
	return Vec6{
		Forward:   v.Forward + o.Forward,
		Right:     v.Right + o.Right,
		Upwards:   v.Upwards + o.Upwards,
		TurnRight: v.TurnRight + o.TurnRight,
		PitchUp:   v.PitchUp + o.PitchUp,
		RollRight: v.RollRight + o.RollRight,
	}
}

// Sub returns the element-wise difference v - o.
func (v Vec6) Sub(o Vec6) Vec6 {
	return Vec6{
		Forward:   v.Forward - o.Forward,
		Right:     v.Right - o.Right,
		Upwards:   v.Upwards - o.Upwards,
		TurnRight: v.TurnRight - o.TurnRight,
		PitchUp:   v.PitchUp - o.PitchUp,
		RollRight: v.RollRight - o.RollRight,
	}
}

// IsZero reports whether all six components are zero.
func (v Vec6) IsZero() bool { return v == Vec6{} }

// At returns the i-th component. It panics when i is outside [0, Dimensions).
func (v Vec6) At(i int) float64 {
	switch i {
	case 0:
		return v.Forward
	case 1:
		return v.Right
	case 2:
		return v.Upwards
	case 3:
		return v.TurnRight
	case 4:
		return v.PitchUp
	case 5:
		return v.RollRight
	default:
		panic(fmt.Sprintf("sixdof: index %d out of bounds [0, %d)", i, Dimensions))
	}
}

// Array returns the components in fixed order.
func (v Vec6) Array() [Dimensions]float64 {
	return [Dimensions]float64{v.Forward, v.Right, v.Upwards, v.TurnRight, v.PitchUp, v.RollRight}
}

// All yields index/value pairs in fixed order.
// The sequence iterates over a copy of v taken when All is called.
func (v Vec6) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := 0; i < Dimensions; i++ {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

// Values yields the six components in fixed order.
func (v Vec6) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, value := range v.All() {
			if !yield(value) {
				return
			}
		}
	}
}

func (v Vec6) String() string {
	return fmt.Sprintf("Vec6{forward: %g, right: %g, upwards: %g, turn_right: %g, pitch_up: %g, roll_right: %g}",
		v.Forward, v.Right, v.Upwards, v.TurnRight, v.PitchUp, v.RollRight)
}
