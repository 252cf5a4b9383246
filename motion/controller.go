// Package motion moves an agent along a cyclic list of waypoints at constant speed.
package motion

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// State is the controller state derived from the waypoint list.
type State uint8

const (
	Idle    State = iota // no waypoints
	Seeking              // heading for Agent.Target
)

// String returns the state name.
func (s State) String() string {
	if s == Seeking {
		return "seeking"
	}
	return "idle"
}

// Agent is the robot's mutable state.
type Agent struct {
	Position r3.Vec
	Target   int // index into the waypoint list
}

// NewAgent places an agent at start, seeking the first waypoint.
func NewAgent(start r3.Vec, waypoints []r3.Vec) Agent {
	return Agent{Position: start}
}

// State reports Idle when there is nothing to follow.
func (a Agent) State(waypoints []r3.Vec) State {
	if len(waypoints) == 0 {
		return Idle
	}
	return Seeking
}

// Distance returns the distance to the current target, or 0 when idle.
func (a Agent) Distance(waypoints []r3.Vec) float64 {
	if len(waypoints) == 0 {
		return 0
	}
	return r3.Norm(r3.Sub(a.target(waypoints), a.Position))
}

func (a Agent) target(waypoints []r3.Vec) r3.Vec {
	if a.Target < 0 || a.Target >= len(waypoints) {
		panic(fmt.Sprintf("motion: target index %d out of range [0,%d)", a.Target, len(waypoints)))
	}
	return waypoints[a.Target]
}

// Tick returns the agent one frame later. See Advance.
func Tick(a Agent, waypoints []r3.Vec, speed, epsilon float64) Agent {
	next, _ := Advance(a, waypoints, speed, epsilon)
	return next
}

// Advance applies one update and reports whether the agent arrived.
// Within epsilon of the target (including exactly on it) the target index
// moves to the next waypoint and the position stays put; otherwise the
// position moves speed units straight at the target.
// An empty waypoint list leaves the agent unchanged.
func Advance(a Agent, waypoints []r3.Vec, speed, epsilon float64) (Agent, bool) {
	if len(waypoints) == 0 {
		return a, false
	}

	delta := r3.Sub(a.target(waypoints), a.Position)
	dist := r3.Norm(delta)
	if dist < epsilon || dist == 0 {
		a.Target = (a.Target + 1) % len(waypoints)
		return a, true
	}

	a.Position = r3.Add(a.Position, r3.Scale(speed/dist, delta))
	return a, false
}
