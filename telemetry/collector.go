package telemetry

import "github.com/pthm-cable/rackbot/warehouse"

// Collector accumulates patrol events within tick windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int64
	dt                  float64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	arrivals int
	lifts    int
	laps     int
	distance float64
}

// NewCollector creates a new stats collector.
// windowTicks: ticks per stats window
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowTicks int, dt float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: int64(windowTicks),
		dt:                  dt,
	}
}

// RecordArrival records reaching a waypoint of the given kind.
func (c *Collector) RecordArrival(kind warehouse.WaypointKind) {
	c.arrivals++
	if kind == warehouse.KindLift {
		c.lifts++
	}
}

// RecordLap records a completed patrol cycle.
func (c *Collector) RecordLap() {
	c.laps++
}

// RecordDistance adds distance travelled this tick.
func (c *Collector) RecordDistance(d float64) {
	c.distance += d
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// target and level describe where the robot is at the end of the window.
func (c *Collector) Flush(currentTick int64, target, level int) WindowStats {
	ticks := currentTick - c.windowStartTick
	var avgSpeed float64
	if ticks > 0 {
		avgSpeed = c.distance / float64(ticks)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,
		Arrivals:        c.arrivals,
		Lifts:           c.lifts,
		Laps:            c.laps,
		Distance:        c.distance,
		AvgSpeed:        avgSpeed,
		Target:          target,
		Level:           level,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.arrivals = 0
	c.lifts = 0
	c.laps = 0
	c.distance = 0

	return stats
}
