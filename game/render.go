package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rackbot/telemetry"
	"github.com/pthm-cable/rackbot/ui"
)

const controlsLegend = "Space pause | , . speed | R reset | P path | Drag orbit | Wheel zoom | Home view | C center | Tab panel | F3 perf"

// Draw renders the frame and closes the timing sample opened by Update.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	g.renderer.Clear()
	g.renderer.Draw(g.camera, g.showPath)
	g.drawUI()
	rl.EndDrawing()

	g.perfCollector.EndTick()
	g.perfCollector.RecordFrame()
}

// drawUI renders the HUD, controls and the optional perf panel.
func (g *Game) drawUI() {
	g.hud.Draw(g.hudData())
	g.hud.DrawControls(int32(g.screenHeight), controlsLegend)

	state := ui.ControlState{
		Paused:   g.paused,
		Speed:    g.stepsPerUpdate,
		ShowPath: g.showPath,
	}
	actions := g.controls.Draw(int32(g.screenWidth), &state)
	g.paused = state.Paused
	g.stepsPerUpdate = max(1, min(state.Speed, MaxStepsPerUpdate))
	g.showPath = state.ShowPath
	if actions.Reset {
		g.reset()
	}
	if actions.ResetView {
		g.camera.Reset()
	}

	if g.showPerf {
		stats := g.perfCollector.Stats()
		g.perfPanel.SetPosition(10, int32(g.screenHeight)-200)
		g.perfPanel.Draw(ui.PerfPanelData{
			PhaseAvg: stats.PhaseAvg,
			Total:    stats.AvgTickDuration,
			Registry: g.registry,
		}, g.registry.IDs())
	}
}

// hudData snapshots the values shown in the HUD.
func (g *Game) hudData() ui.HUDData {
	c := g.core
	data := ui.HUDData{
		Title:     "Warehouse Patrol",
		Tick:      g.tick,
		State:     c.State().String(),
		Target:    c.Agent.Target,
		Waypoints: len(c.Waypoints),
		Distance:  c.Distance(),
		Laps:      g.laps.Count(),
		Speed:     g.stepsPerUpdate,
		FPS:       rl.GetFPS(),
		Paused:    g.paused,
	}
	if n := len(c.Waypoints); n > 0 {
		data.TargetKind = c.Route.Kind(c.Agent.Target).String()
		data.Level = c.Route.Level(c.Agent.Target)
		data.LapProgress = float32(c.Agent.Target) / float32(n)
	}
	if last, ok := g.laps.Last(); ok {
		data.LastLapTicks = last.Ticks
	}
	return data
}
