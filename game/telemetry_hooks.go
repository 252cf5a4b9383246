package game

import (
	"log/slog"

	"github.com/pthm-cable/rackbot/patrol"
	"github.com/pthm-cable/rackbot/telemetry"
)

// recordStep feeds one tick's event to the collectors and output files.
func (g *Game) recordStep(ev patrol.Event) {
	g.collector.RecordDistance(ev.Moved)
	g.laps.RecordStep(ev.Moved, ev.Arrived)

	if ev.Arrived {
		g.collector.RecordArrival(g.core.Route.Kind(ev.Reached))
	}
	if ev.LapComplete {
		g.collector.RecordLap()
		g.completeLap()
	}

	if every := int64(g.cfg.Telemetry.TraceEvery); every > 0 && g.tick%every == 0 {
		if err := g.outputManager.WriteTrace(telemetry.NewTraceRow(g.tick, g.core, ev)); err != nil {
			slog.Error("failed to write trace", "error", err)
		}
	}

	g.flushTelemetry()
}

// completeLap closes the current lap and records it.
func (g *Game) completeLap() {
	lap := g.laps.CompleteLap(g.tick)
	slog.Info("lap complete",
		"run", lap.Run,
		"lap", lap.Lap,
		"ticks", lap.Ticks,
		"distance", lap.Distance,
		"arrivals", lap.Arrivals,
	)

	if err := g.outputManager.WriteLap(lap); err != nil {
		slog.Error("failed to write lap", "error", err)
	}
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	target, level := g.core.Agent.Target, 0
	if len(g.core.Waypoints) > 0 {
		level = g.core.Route.Level(target)
	}

	stats := g.collector.Flush(g.tick, target, level)
	perfStats := g.perfCollector.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
