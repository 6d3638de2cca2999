package physics

import (
	"fmt"
	"math"
)

type Vec3 struct{ Xv, Yv, Zv float64 }

var _ Vector3 = Vec3{}

// UnitZ is the local thrust direction of every thruster.
var UnitZ = Vec3{Zv: 1}

func (v Vec3) X() float64 { return v.Xv }
func (v Vec3) Y() float64 { return v.Yv }
func (v Vec3) Z() float64 { return v.Zv }

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.Xv + o.Xv, v.Yv + o.Yv, v.Zv + o.Zv} }

// Scale multiplies every component by k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.Xv * k, v.Yv * k, v.Zv * k} }

// Length returns the Euclidean norm.
func (v Vec3) Length() float64 { return math.Sqrt(v.Xv*v.Xv + v.Yv*v.Yv + v.Zv*v.Zv) }

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// ToVec3 copies any Vector3 into a Vec3.
func ToVec3(v Vector3) Vec3 { return Vec3{v.X(), v.Y(), v.Z()} }

func (v Vec3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.Xv, v.Yv, v.Zv) }
