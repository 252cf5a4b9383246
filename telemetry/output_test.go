package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/rackbot/config"
	"github.com/pthm-cable/rackbot/patrol"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)

	// A nil manager swallows every write
	assert.NoError(t, om.WriteTelemetry(WindowStats{}))
	assert.NoError(t, om.WriteLap(LapRecord{}))
	assert.NoError(t, om.WriteTrace(TraceRow{}))
	assert.NoError(t, om.WriteConfig(config.Default()))
	assert.NoError(t, om.Close())
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	require.NoError(t, om.WriteLap(LapRecord{Run: "r", Lap: 1, EndTick: 900, Ticks: 900, Distance: 45}))
	require.NoError(t, om.WriteLap(LapRecord{Run: "r", Lap: 2, StartTick: 900, EndTick: 1800, Ticks: 900, Distance: 45}))
	require.NoError(t, om.WriteTelemetry(WindowStats{WindowEndTick: 600, Arrivals: 3}))
	require.NoError(t, om.WriteConfig(config.Default()))
	require.NoError(t, om.Close())

	f, err := os.Open(filepath.Join(dir, "laps.csv"))
	require.NoError(t, err)
	defer f.Close()

	var laps []LapRecord
	require.NoError(t, gocsv.UnmarshalFile(f, &laps))
	require.Len(t, laps, 2, "header must be written once")
	assert.Equal(t, 2, laps[1].Lap)
	assert.Equal(t, int64(900), laps[1].StartTick)

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}

func TestTraceRowFromCore(t *testing.T) {
	c := patrol.New(config.Default())
	ev := c.Step()

	row := NewTraceRow(1, c, ev)
	assert.Equal(t, int64(1), row.Tick)
	assert.Equal(t, -10.0, row.X)
	assert.InDelta(t, 1.05, row.Y, 1e-9)
	assert.Equal(t, 0, row.Target)
	assert.InDelta(t, 0.45, row.Distance, 1e-9)
	assert.Equal(t, "seeking", row.State)
	assert.False(t, row.Arrived)
}
