// Package systems contains ECS systems for the render host's scene graph.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rackbot/components"
	"github.com/pthm-cable/rackbot/patrol"
	"github.com/pthm-cable/rackbot/warehouse"
)

// Scene holds the entity handles created for one patrol core.
type Scene struct {
	Robot   ecs.Entity
	Racks   int
	Markers int
}

// SceneBuilder spawns rack, robot and waypoint marker entities.
type SceneBuilder struct {
	rackMapper   *ecs.Map3[components.Position, components.Extent, components.Rack]
	robotMapper  *ecs.Map3[components.Position, components.Extent, components.Robot]
	markerMapper *ecs.Map2[components.Position, components.Marker]
}

// NewSceneBuilder creates a builder bound to w.
func NewSceneBuilder(w *ecs.World) *SceneBuilder {
	return &SceneBuilder{
		rackMapper:   ecs.NewMap3[components.Position, components.Extent, components.Rack](w),
		robotMapper:  ecs.NewMap3[components.Position, components.Extent, components.Robot](w),
		markerMapper: ecs.NewMap2[components.Position, components.Marker](w),
	}
}

// Build spawns the scene for c. robotSize is the cube edge length.
func (b *SceneBuilder) Build(c *patrol.Core, robotSize float32) Scene {
	var scene Scene

	for _, cell := range c.Layout {
		pos := components.PositionOf(cell.Center)
		ext := components.ExtentOf(cell.Size)
		rack := components.Rack{Level: cell.Level, Row: cell.Row, Aisle: cell.Aisle}
		b.rackMapper.NewEntity(&pos, &ext, &rack)
		scene.Racks++
	}

	for i, wp := range c.Waypoints {
		pos := components.PositionOf(wp)
		marker := components.Marker{
			Index:  i,
			Kind:   markerKind(c.Route.Kind(i)),
			Active: i == c.Agent.Target,
		}
		b.markerMapper.NewEntity(&pos, &marker)
		scene.Markers++
	}

	pos := components.PositionOf(c.Agent.Position)
	ext := components.Extent{W: robotSize, H: robotSize, D: robotSize}
	robot := components.Robot{Target: c.Agent.Target}
	scene.Robot = b.robotMapper.NewEntity(&pos, &ext, &robot)

	return scene
}

func markerKind(k warehouse.WaypointKind) components.MarkerKind {
	switch k {
	case warehouse.KindLift:
		return components.MarkerLift
	case warehouse.KindClosing:
		return components.MarkerClosing
	}
	return components.MarkerSweep
}
