package patrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rackbot/config"
	"github.com/pthm-cable/rackbot/motion"
)

func TestNewFromDefaults(t *testing.T) {
	c := New(config.Default())

	assert.Len(t, c.Layout, 200)
	require.Len(t, c.Waypoints, 46)
	assert.Equal(t, r3.Vec{X: -10, Y: 1, Z: -8}, c.Agent.Position)
	assert.Equal(t, 0, c.Agent.Target)
	assert.Equal(t, motion.Seeking, c.State())

	target, ok := c.Target()
	require.True(t, ok)
	assert.Equal(t, r3.Vec{X: -10, Y: 1.5, Z: -8}, target)
	assert.InDelta(t, 0.5, c.Distance(), 1e-12)
}

func TestStepFirstArrival(t *testing.T) {
	c := New(config.Default())

	// 0.5 units at 0.05 per tick: nine moves put the robot within epsilon
	var ev Event
	ticks := 0
	for !ev.Arrived {
		ev = c.Step()
		ticks++
		require.Less(t, ticks, 100)
	}

	assert.Equal(t, 0, ev.Reached)
	assert.False(t, ev.LapComplete)
	assert.Equal(t, 1, c.Agent.Target)
	assert.Zero(t, ev.Moved)
}

func TestStepCompletesLap(t *testing.T) {
	cfg := config.Default()
	cfg.Warehouse.Levels = 1
	cfg.Warehouse.RacksPerRow = 2
	cfg.Patrol.Speed = 0.09
	c := New(cfg)
	require.Len(t, c.Waypoints, 4)

	laps := 0
	for i := 0; i < 5000 && laps < 2; i++ {
		ev := c.Step()
		if ev.LapComplete {
			laps++
			assert.Equal(t, len(c.Waypoints)-1, ev.Reached)
			assert.Equal(t, 0, c.Agent.Target)
		}
	}
	assert.Equal(t, 2, laps)
}

func TestStepIdle(t *testing.T) {
	cfg := config.Default()
	cfg.Warehouse.Levels = 0
	c := New(cfg)

	assert.Empty(t, c.Waypoints)
	assert.Empty(t, c.Layout)
	assert.Equal(t, motion.Idle, c.State())

	for i := 0; i < 10; i++ {
		ev := c.Step()
		assert.False(t, ev.Arrived)
		assert.Zero(t, ev.Moved)
	}
	assert.Equal(t, c.Start, c.Agent.Position)

	_, ok := c.Target()
	assert.False(t, ok)
	assert.Zero(t, c.LapLength())
}

func TestReset(t *testing.T) {
	c := New(config.Default())
	for i := 0; i < 50; i++ {
		c.Step()
	}
	require.NotEqual(t, c.Start, c.Agent.Position)

	c.Reset()
	assert.Equal(t, c.Start, c.Agent.Position)
	assert.Equal(t, 0, c.Agent.Target)
}

func TestLapLength(t *testing.T) {
	cfg := config.Default()
	cfg.Warehouse.Levels = 1
	cfg.Warehouse.RacksPerRow = 2
	c := New(cfg)

	// (-10,1.5) -> (-7,1.5) -> (-7,5.5) -> (-10,1.5) -> back to the first point
	assert.InDelta(t, 3+4+5+0, c.LapLength(), 1e-9)
}

func TestStepReportsMovedDistance(t *testing.T) {
	c := New(config.Default())

	ev := c.Step()

	assert.False(t, ev.Arrived)
	assert.InDelta(t, c.Speed, ev.Moved, 1e-12)
	assert.InDelta(t, 0.45, c.Distance(), 1e-12)
}
