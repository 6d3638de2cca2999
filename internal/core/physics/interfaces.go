package physics

// Lightweight physics shapes for forces applied by the host simulation.
// Rotational quantities live in the sixdof subpackage.

// Vector3 represents a 3D vector in a body's local frame.
type Vector3 interface {
	X() float64
	Y() float64
	Z() float64
}
