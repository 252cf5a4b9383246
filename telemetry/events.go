// Package telemetry provides patrol statistics, lap tracking, timing and CSV output.
package telemetry

import (
	"github.com/pthm-cable/rackbot/patrol"
)

// TraceRow samples the robot state at one tick.
type TraceRow struct {
	Tick     int64   `csv:"tick"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	Z        float64 `csv:"z"`
	Target   int     `csv:"target"`
	Distance float64 `csv:"distance"`
	State    string  `csv:"state"`
	Arrived  bool    `csv:"arrived"`
}

// NewTraceRow captures c after the step that produced ev.
func NewTraceRow(tick int64, c *patrol.Core, ev patrol.Event) TraceRow {
	p := c.Agent.Position
	return TraceRow{
		Tick:     tick,
		X:        p.X,
		Y:        p.Y,
		Z:        p.Z,
		Target:   c.Agent.Target,
		Distance: c.Distance(),
		State:    c.State().String(),
		Arrived:  ev.Arrived,
	}
}
