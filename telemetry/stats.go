package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Events during window
	Arrivals int `csv:"arrivals"`
	Lifts    int `csv:"lifts"`
	Laps     int `csv:"laps"`

	// Motion
	Distance float64 `csv:"distance"`
	AvgSpeed float64 `csv:"avg_speed"` // units per tick

	// Robot at window end
	Target int `csv:"target"`
	Level  int `csv:"level"`
}

// LapStats summarizes completed lap durations in ticks.
type LapStats struct {
	Count int
	Mean  float64
	Std   float64
	P50   float64
	P90   float64
	Min   float64
	Max   float64
}

// ComputeLapStats calculates summary statistics over lap durations.
func ComputeLapStats(ticks []float64) LapStats {
	n := len(ticks)
	if n == 0 {
		return LapStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, ticks)
	sort.Float64s(sorted)

	s := LapStats{
		Count: n,
		Mean:  stat.Mean(sorted, nil),
		P50:   stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:   stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Min:   sorted[0],
		Max:   sorted[n-1],
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("arrivals", s.Arrivals),
		slog.Int("lifts", s.Lifts),
		slog.Int("laps", s.Laps),
		slog.Float64("distance", s.Distance),
		slog.Float64("avg_speed", s.AvgSpeed),
		slog.Int("target", s.Target),
		slog.Int("level", s.Level),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s LapStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("count", s.Count),
		slog.Float64("mean", s.Mean),
		slog.Float64("std", s.Std),
		slog.Float64("p50", s.P50),
		slog.Float64("p90", s.P90),
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
	)
}
