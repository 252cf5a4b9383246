package warehouse

import "gonum.org/v1/gonum/spatial/r3"

// Route describes the fixed patrol sweep: one aisle per level, a lift
// between levels and a final return to base.
type Route struct {
	Levels      int
	RacksPerRow int
	LevelHeight float64
	AisleZ      float64 // depth of the patrolled aisle
	XSpacing    float64
	BaseX       float64 // X of the first column
	BaseY       float64 // sweep height on level 0
}

// WaypointKind classifies a waypoint by its role in the route.
type WaypointKind uint8

const (
	KindSweep   WaypointKind = iota // one per rack column
	KindLift                        // raise to the next level
	KindClosing                     // return to base
)

// String returns the lowercase kind name.
func (k WaypointKind) String() string {
	switch k {
	case KindSweep:
		return "sweep"
	case KindLift:
		return "lift"
	case KindClosing:
		return "closing"
	}
	return "unknown"
}

// Len returns the number of waypoints GeneratePath produces: L*(R+1)+1.
func (r Route) Len() int {
	if r.Levels <= 0 || r.RacksPerRow <= 0 {
		return 0
	}
	return r.Levels*(r.RacksPerRow+1) + 1
}

// GeneratePath builds the ordered, cyclic waypoint list for r.
// Levels ascend from 0; the last waypoint brings the robot back to base.
// Non-positive counts yield an empty path.
func GeneratePath(r Route) []r3.Vec {
	n := r.Len()
	if n == 0 {
		return nil
	}

	lastX := r.BaseX + float64(r.RacksPerRow-1)*r.XSpacing
	path := make([]r3.Vec, 0, n)
	for level := 0; level < r.Levels; level++ {
		y := float64(level)*r.LevelHeight + r.BaseY
		for i := 0; i < r.RacksPerRow; i++ {
			path = append(path, r3.Vec{X: r.BaseX + float64(i)*r.XSpacing, Y: y, Z: r.AisleZ})
		}
		path = append(path, r3.Vec{X: lastX, Y: y + r.LevelHeight, Z: r.AisleZ})
	}
	path = append(path, r3.Vec{X: r.BaseX, Y: r.BaseY, Z: r.AisleZ})
	return path
}

// Kind reports the role of waypoint i in the path GeneratePath(r) returns.
// i must satisfy 0 <= i < r.Len().
func (r Route) Kind(i int) WaypointKind {
	if i == r.Len()-1 {
		return KindClosing
	}
	if i%(r.RacksPerRow+1) == r.RacksPerRow {
		return KindLift
	}
	return KindSweep
}

// Level returns the level on which waypoint i starts.
func (r Route) Level(i int) int {
	if i == r.Len()-1 {
		return 0
	}
	return i / (r.RacksPerRow + 1)
}
