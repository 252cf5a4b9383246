package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/rackbot/config"
)

func TestDumpWaypoints(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump(&buf, config.Default(), "waypoints"))

	var rows []*waypointRow
	require.NoError(t, gocsv.UnmarshalBytes(buf.Bytes(), &rows))
	require.Len(t, rows, 46)

	assert.Equal(t, "sweep", rows[0].Kind)
	assert.Equal(t, -10.0, rows[0].X)
	assert.Equal(t, "lift", rows[8].Kind)
	assert.Equal(t, 4.0, rows[8].Segment)
	assert.Equal(t, 1, rows[9].Level)
	assert.Equal(t, "closing", rows[45].Kind)
	assert.Equal(t, 1.5, rows[45].Y)
}

func TestDumpLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump(&buf, config.Default(), "layout"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "level,row,aisle,x,y,z", lines[0])
	assert.Len(t, lines, 201)
}

func TestDumpUnknown(t *testing.T) {
	assert.Error(t, dump(&bytes.Buffer{}, config.Default(), "racks"))
}
