package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/rackbot/components"
	"github.com/pthm-cable/rackbot/config"
	"github.com/pthm-cable/rackbot/patrol"
)

func TestSceneBuilderCounts(t *testing.T) {
	w := ecs.NewWorld()
	core := patrol.New(config.Default())

	scene := NewSceneBuilder(w).Build(core, 1.5)

	assert.Equal(t, 200, scene.Racks)
	assert.Equal(t, 46, scene.Markers)

	racks := 0
	q := ecs.NewFilter1[components.Rack](w).Query()
	for q.Next() {
		racks++
	}
	assert.Equal(t, 200, racks)

	lifts, closing := 0, 0
	mq := ecs.NewFilter1[components.Marker](w).Query()
	for mq.Next() {
		m := mq.Get()
		switch m.Kind {
		case components.MarkerLift:
			lifts++
		case components.MarkerClosing:
			closing++
		}
	}
	assert.Equal(t, 5, lifts)
	assert.Equal(t, 1, closing)

	pos := ecs.NewMap[components.Position](w).Get(scene.Robot)
	require.NotNil(t, pos)
	assert.Equal(t, components.Position{X: -10, Y: 1, Z: -8}, *pos)
}

func TestSyncSystemFollowsAgent(t *testing.T) {
	w := ecs.NewWorld()
	core := patrol.New(config.Default())
	scene := NewSceneBuilder(w).Build(core, 1.5)
	sync := NewSyncSystem(w)

	// Run until the first arrival retargets the robot
	for core.Agent.Target == 0 {
		core.Step()
	}
	sync.Update(core)

	pos := ecs.NewMap[components.Position](w).Get(scene.Robot)
	robot := ecs.NewMap[components.Robot](w).Get(scene.Robot)
	assert.Equal(t, components.PositionOf(core.Agent.Position), *pos)
	assert.Equal(t, 1, robot.Target)

	active := -1
	count := 0
	mq := ecs.NewFilter1[components.Marker](w).Query()
	for mq.Next() {
		m := mq.Get()
		if m.Active {
			active = m.Index
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one marker is active")
	assert.Equal(t, 1, active)
}

func TestSceneBuilderEmptyCore(t *testing.T) {
	cfg := config.Default()
	cfg.Warehouse.Levels = 0
	w := ecs.NewWorld()

	scene := NewSceneBuilder(w).Build(patrol.New(cfg), 1.5)

	assert.Zero(t, scene.Racks)
	assert.Zero(t, scene.Markers)

	// Syncing an idle core must not touch anything but the robot
	NewSyncSystem(w).Update(patrol.New(cfg))
}
