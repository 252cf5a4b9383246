package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/rackbot/config"
	"github.com/pthm-cable/rackbot/motion"
	"github.com/pthm-cable/rackbot/telemetry"
)

// smallConfig is one level of two racks: a 12 unit lap.
func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Warehouse.Levels = 1
	cfg.Warehouse.RacksPerRow = 2
	cfg.Telemetry.StatsWindow = 100
	cfg.Telemetry.TraceEvery = 10
	return cfg
}

func TestHeadlessRunWritesOutput(t *testing.T) {
	dir := t.TempDir()
	g := NewGameWithOptions(Options{
		Config:         smallConfig(),
		RunID:          "test-run",
		OutputDir:      dir,
		Headless:       true,
		StepsPerUpdate: 50,
	})

	assert.Equal(t, 10, g.scene.Racks)
	assert.Equal(t, 4, g.scene.Markers)

	for i := 0; i < 20; i++ {
		g.UpdateHeadless()
	}
	require.Equal(t, int64(1000), g.Tick())

	// About 250 ticks per lap including arrival ticks
	laps := g.laps.Count()
	assert.GreaterOrEqual(t, laps, 3)
	assert.LessOrEqual(t, laps, 4)

	g.Unload()

	var lapRows []*telemetry.LapRecord
	require.NoError(t, gocsv.UnmarshalFile(mustOpen(t, filepath.Join(dir, "laps.csv")), &lapRows))
	require.Len(t, lapRows, laps)
	assert.Equal(t, "test-run", lapRows[0].Run)
	assert.Equal(t, 1, lapRows[0].Lap)
	assert.Equal(t, 4, lapRows[1].Arrivals)

	var windows []*telemetry.WindowStats
	require.NoError(t, gocsv.UnmarshalFile(mustOpen(t, filepath.Join(dir, "telemetry.csv")), &windows))
	assert.Len(t, windows, 10)

	var trace []*telemetry.TraceRow
	require.NoError(t, gocsv.UnmarshalFile(mustOpen(t, filepath.Join(dir, "trace.csv")), &trace))
	assert.Len(t, trace, 100)

	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
	assert.FileExists(t, filepath.Join(dir, "perf.csv"))
}

func TestResetKeepsCompletedLaps(t *testing.T) {
	g := NewGameWithOptions(Options{
		Config:         smallConfig(),
		Headless:       true,
		StepsPerUpdate: 300,
	})
	g.UpdateHeadless()
	require.Equal(t, 1, g.laps.Count())

	g.reset()

	c := g.Core()
	assert.Equal(t, c.Start, c.Agent.Position)
	assert.Equal(t, 0, c.Agent.Target)
	assert.Equal(t, motion.Seeking, c.State())
	assert.Equal(t, 1, g.laps.Count())
}

func TestRunIDGenerated(t *testing.T) {
	a := NewGameWithOptions(Options{Config: smallConfig(), Headless: true})
	b := NewGameWithOptions(Options{Config: smallConfig(), Headless: true})

	assert.Len(t, a.RunID(), 36)
	assert.NotEqual(t, a.RunID(), b.RunID())
}

func mustOpen(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestLayoutCenter(t *testing.T) {
	g := NewGameWithOptions(Options{Config: config.Default(), Headless: true})

	// Racks span x [-11, 12], y [0, 19], z [-9, 5]
	center, ok := layoutCenter(g.Core())
	require.True(t, ok)
	assert.Equal(t, [3]float32{0.5, 9.5, -2}, center)

	cfg := config.Default()
	cfg.Warehouse.Levels = 0
	empty := NewGameWithOptions(Options{Config: cfg, Headless: true})
	_, ok = layoutCenter(empty.Core())
	assert.False(t, ok)
}
