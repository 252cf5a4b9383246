// Package patrol holds the scene's pure data: rack layout, waypoints and the
// robot agent. It owns no rendering resources and no timers; a scheduler
// calls Step once per frame.
package patrol

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rackbot/config"
	"github.com/pthm-cable/rackbot/motion"
	"github.com/pthm-cable/rackbot/warehouse"
)

// Core is the simulation state read by the render host.
type Core struct {
	Layout    []warehouse.RackCell
	Route     warehouse.Route
	Waypoints []r3.Vec // shared, never mutated after New
	Agent     motion.Agent
	Start     r3.Vec
	Speed     float64
	Epsilon   float64
}

// Event describes what happened during one Step.
type Event struct {
	Arrived     bool
	Reached     int // waypoint index arrived at, valid when Arrived
	LapComplete bool
	Moved       float64 // distance travelled this step
}

// GridFromConfig converts the warehouse section into a layout description.
func GridFromConfig(cfg *config.Config) warehouse.Grid {
	w := cfg.Warehouse
	return warehouse.Grid{
		Levels:        w.Levels,
		RacksPerRow:   w.RacksPerRow,
		RacksPerAisle: w.RacksPerAisle,
		LevelHeight:   w.LevelHeight,
		Spacing:       w.Spacing,
		XOffset:       w.XOffset,
		ZOffset:       w.ZOffset,
		RackSize:      r3.Vec{X: w.RackSize[0], Y: w.RackSize[1], Z: w.RackSize[2]},
	}
}

// RouteFromConfig converts the warehouse and patrol sections into a route.
func RouteFromConfig(cfg *config.Config) warehouse.Route {
	return warehouse.Route{
		Levels:      cfg.Warehouse.Levels,
		RacksPerRow: cfg.Warehouse.RacksPerRow,
		LevelHeight: cfg.Warehouse.LevelHeight,
		AisleZ:      cfg.Derived.AisleZ,
		XSpacing:    cfg.Warehouse.Spacing,
		BaseX:       cfg.Derived.BaseX,
		BaseY:       cfg.Patrol.BaseY,
	}
}

// New generates the layout and route once and places the agent at the start.
func New(cfg *config.Config) *Core {
	route := RouteFromConfig(cfg)
	waypoints := warehouse.GeneratePath(route)
	start := cfg.Derived.Start

	return &Core{
		Layout:    warehouse.GenerateLayout(GridFromConfig(cfg)),
		Route:     route,
		Waypoints: waypoints,
		Agent:     motion.NewAgent(start, waypoints),
		Start:     start,
		Speed:     cfg.Patrol.Speed,
		Epsilon:   cfg.Patrol.Epsilon,
	}
}

// Step advances the agent by one tick.
func (c *Core) Step() Event {
	before := c.Agent
	next, arrived := motion.Advance(before, c.Waypoints, c.Speed, c.Epsilon)
	c.Agent = next

	ev := Event{Moved: r3.Norm(r3.Sub(before.Position, next.Position))}
	if arrived {
		ev.Arrived = true
		ev.Reached = before.Target
		ev.LapComplete = before.Target == len(c.Waypoints)-1
	}
	return ev
}

// Reset puts the agent back at the start, seeking the first waypoint.
func (c *Core) Reset() {
	c.Agent = motion.NewAgent(c.Start, c.Waypoints)
}

// State reports whether the agent has a path to follow.
func (c *Core) State() motion.State {
	return c.Agent.State(c.Waypoints)
}

// Target returns the current target waypoint and true, or false when idle.
func (c *Core) Target() (r3.Vec, bool) {
	if len(c.Waypoints) == 0 {
		return r3.Vec{}, false
	}
	return c.Waypoints[c.Agent.Target], true
}

// Distance returns the distance to the current target.
func (c *Core) Distance() float64 {
	return c.Agent.Distance(c.Waypoints)
}

// LapLength returns the length of one full cycle of the route.
func (c *Core) LapLength() float64 {
	n := len(c.Waypoints)
	if n < 2 {
		return 0
	}
	var total float64
	for i := range c.Waypoints {
		total += r3.Norm(r3.Sub(c.Waypoints[i], c.Waypoints[(i+1)%n]))
	}
	return total
}
