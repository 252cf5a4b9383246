package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rackbot/components"
	"github.com/pthm-cable/rackbot/patrol"
)

// SyncSystem copies the agent state from the core into the scene graph.
type SyncSystem struct {
	robotFilter  ecs.Filter2[components.Position, components.Robot]
	markerFilter ecs.Filter1[components.Marker]
	lastTarget   int
}

// NewSyncSystem creates a new sync system.
func NewSyncSystem(w *ecs.World) *SyncSystem {
	return &SyncSystem{
		robotFilter:  *ecs.NewFilter2[components.Position, components.Robot](w),
		markerFilter: *ecs.NewFilter1[components.Marker](w),
		lastTarget:   -1,
	}
}

// Update moves the robot entity to the agent position and flags the
// marker of the current target.
func (s *SyncSystem) Update(c *patrol.Core) {
	target := c.Agent.Target

	query := s.robotFilter.Query()
	for query.Next() {
		pos, robot := query.Get()
		*pos = components.PositionOf(c.Agent.Position)
		robot.Target = target
	}

	// Markers only change when the target does
	if target == s.lastTarget {
		return
	}
	s.lastTarget = target

	markers := s.markerFilter.Query()
	for markers.Next() {
		m := markers.Get()
		m.Active = m.Index == target
	}
}
