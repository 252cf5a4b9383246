package components

import "gonum.org/v1/gonum/spatial/r3"

// Position represents an entity's world position (center).
type Position struct {
	X, Y, Z float32
}

// PositionOf converts a simulation vector into a Position.
func PositionOf(v r3.Vec) Position {
	return Position{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Extent is the full width, height and depth of an entity's box.
type Extent struct {
	W, H, D float32
}

// ExtentOf converts a simulation size vector into an Extent.
func ExtentOf(v r3.Vec) Extent {
	return Extent{W: float32(v.X), H: float32(v.Y), D: float32(v.Z)}
}
