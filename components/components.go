// Package components defines ECS components for the render host's scene graph.
package components

// Rack identifies a rack entity by its grid indices.
type Rack struct {
	Level, Row, Aisle int
}

// Robot marks the patrolling robot entity.
type Robot struct {
	Target int // waypoint index the robot is heading for
}

// MarkerKind mirrors the waypoint's role in the route.
type MarkerKind uint8

const (
	MarkerSweep MarkerKind = iota
	MarkerLift
	MarkerClosing
)

// Marker is a waypoint drawn as part of the path overlay.
type Marker struct {
	Index  int
	Kind   MarkerKind
	Active bool // current robot target
}
