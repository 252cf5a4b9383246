package telemetry

// LapRecord is one completed patrol cycle.
type LapRecord struct {
	Run       string  `csv:"run"`
	Lap       int     `csv:"lap"`
	StartTick int64   `csv:"start_tick"`
	EndTick   int64   `csv:"end_tick"`
	Ticks     int64   `csv:"ticks"`
	Distance  float64 `csv:"distance"`
	Arrivals  int     `csv:"arrivals"`
}

// LapTracker measures patrol cycles from one return-to-base to the next.
type LapTracker struct {
	run       string
	startTick int64
	distance  float64
	arrivals  int
	laps      []LapRecord
}

// NewLapTracker creates a tracker tagging every record with run.
func NewLapTracker(run string) *LapTracker {
	return &LapTracker{run: run}
}

// RecordStep accumulates one tick of motion.
func (lt *LapTracker) RecordStep(moved float64, arrived bool) {
	lt.distance += moved
	if arrived {
		lt.arrivals++
	}
}

// CompleteLap closes the current lap at tick and starts the next one.
func (lt *LapTracker) CompleteLap(tick int64) LapRecord {
	rec := LapRecord{
		Run:       lt.run,
		Lap:       len(lt.laps) + 1,
		StartTick: lt.startTick,
		EndTick:   tick,
		Ticks:     tick - lt.startTick,
		Distance:  lt.distance,
		Arrivals:  lt.arrivals,
	}
	lt.laps = append(lt.laps, rec)

	lt.startTick = tick
	lt.distance = 0
	lt.arrivals = 0
	return rec
}

// Reset discards the lap in progress, restarting it at tick.
// Completed laps are kept.
func (lt *LapTracker) Reset(tick int64) {
	lt.startTick = tick
	lt.distance = 0
	lt.arrivals = 0
}

// Count returns the number of completed laps.
func (lt *LapTracker) Count() int {
	return len(lt.laps)
}

// Last returns the most recent lap, or false if none completed.
func (lt *LapTracker) Last() (LapRecord, bool) {
	if len(lt.laps) == 0 {
		return LapRecord{}, false
	}
	return lt.laps[len(lt.laps)-1], true
}

// Stats summarizes completed lap durations.
func (lt *LapTracker) Stats() LapStats {
	ticks := make([]float64, len(lt.laps))
	for i, l := range lt.laps {
		ticks[i] = float64(l.Ticks)
	}
	return ComputeLapStats(ticks)
}
