// Package game hosts the patrol scene: it owns the window-side state
// (camera, scene graph, HUD, telemetry) and drives a patrol.Core.
package game

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rackbot/camera"
	"github.com/pthm-cable/rackbot/config"
	"github.com/pthm-cable/rackbot/patrol"
	"github.com/pthm-cable/rackbot/renderer"
	"github.com/pthm-cable/rackbot/systems"
	"github.com/pthm-cable/rackbot/telemetry"
	"github.com/pthm-cable/rackbot/ui"
	"github.com/pthm-cable/rackbot/warehouse"
)

// DT is the nominal duration of one tick in seconds.
const DT = 1.0 / 60.0

// MaxStepsPerUpdate caps the speed multiplier.
const MaxStepsPerUpdate = 10

// Options configures a new game.
type Options struct {
	Config         *config.Config // nil uses config.Cfg()
	RunID          string         // empty generates a new one
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete scene state.
type Game struct {
	cfg   *config.Config
	core  *patrol.Core
	runID string

	// Scene graph
	world *ecs.World
	scene systems.Scene
	sync  *systems.SyncSystem

	// Rendering, nil when headless
	camera    *camera.Camera
	renderer  *renderer.SceneRenderer
	hud       *ui.HUD
	controls  *ui.ControlsPanel
	perfPanel *ui.PerfPanel
	registry  *systems.SystemRegistry

	// Telemetry
	collector     *telemetry.Collector
	laps          *telemetry.LapTracker
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	// State
	tick           int64
	paused         bool
	headless       bool
	stepsPerUpdate int
	showPath       bool
	showPerf       bool
	dragging       bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions builds the core, spawns the scene graph and, unless
// headless, creates the camera and UI. Raylib must already have a window
// open when not headless.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:            cfg,
		core:           patrol.New(cfg),
		runID:          runID,
		world:          world,
		sync:           systems.NewSyncSystem(world),
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow, DT),
		laps:           telemetry.NewLapTracker(runID),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		showPath:       cfg.Render.ShowPath,
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
	}

	g.scene = systems.NewSceneBuilder(world).Build(g.core, float32(cfg.Render.RobotSize))
	g.sync.Update(g.core)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else {
		g.outputManager = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config", "error", err)
		}
	}

	if !g.headless {
		g.initGraphics()
	}

	slog.Info("patrol started",
		"run", runID,
		"racks", g.scene.Racks,
		"waypoints", len(g.core.Waypoints),
		"lap_length", g.core.LapLength(),
		"speed", g.core.Speed,
		"epsilon", g.core.Epsilon,
		"headless", g.headless,
	)

	return g
}

// initGraphics creates the camera and UI.
func (g *Game) initGraphics() {
	cc := g.cfg.Camera
	g.camera = camera.New(vec3(cc.Position), vec3(cc.Target), float32(cc.Fovy))
	g.camera.Damping = float32(cc.Damping)
	g.camera.MinDistance = float32(cc.MinDistance)
	g.camera.MaxDistance = float32(cc.MaxDistance)
	if cc.MaxPolar > 0 {
		g.camera.MaxPolar = float32(cc.MaxPolar)
	}

	rc := g.cfg.Render
	g.renderer = renderer.NewSceneRenderer(g.world, renderer.SceneColors{
		Background: rc.Background,
		Rack:       rc.RackColor,
		Robot:      rc.RobotColor,
		Path:       rc.PathColor,
	}, renderer.Light{
		Position:  vec3(rc.LightPosition),
		Ambient:   float32(rc.Ambient),
		Shininess: float32(rc.Shininess),
	}, float32(rc.GridSize), rc.GridSlices)

	g.hud = ui.NewHUD()
	g.controls = ui.NewControlsPanel(200, MaxStepsPerUpdate)
	g.registry = systems.NewSystemRegistry()
	g.perfPanel = ui.NewPerfPanel(10, 0)
}

func vec3(v [3]float64) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

// layoutCenter returns the middle of the racks' bounding box,
// or false when the layout is empty.
func layoutCenter(c *patrol.Core) ([3]float32, bool) {
	if len(c.Layout) == 0 {
		return [3]float32{}, false
	}
	lo, hi := warehouse.Bounds(c.Layout)
	mid := r3.Scale(0.5, r3.Add(lo, hi))
	return [3]float32{float32(mid.X), float32(mid.Y), float32(mid.Z)}, true
}

// centerView orbits around the middle of the racks.
func (g *Game) centerView() {
	if center, ok := layoutCenter(g.core); ok {
		g.camera.LookAt(center[0], center[1], center[2])
	}
}

// Update handles input and runs stepsPerUpdate ticks unless paused.
// Timing for the frame is closed by Draw.
func (g *Game) Update() {
	g.handleInput()
	g.camera.Update()

	g.perfCollector.StartTick()
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless runs stepsPerUpdate ticks without input or drawing.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartTick()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
	g.perfCollector.EndTick()
}

// step runs a single tick.
func (g *Game) step() {
	g.perfCollector.StartPhase(telemetry.PhaseMotion)
	ev := g.core.Step()

	g.perfCollector.StartPhase(telemetry.PhaseSync)
	g.sync.Update(g.core)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.recordStep(ev)
}

// reset puts the robot back at its start position.
func (g *Game) reset() {
	g.core.Reset()
	g.laps.Reset(g.tick)
	g.sync.Update(g.core)
	slog.Info("patrol reset", "run", g.runID, "tick", g.tick)
}

// Unload frees GPU resources and closes output files.
func (g *Game) Unload() {
	if g.renderer != nil {
		g.renderer.Unload()
	}
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
	if g.laps.Count() > 0 {
		slog.Info("patrol finished", "run", g.runID, "tick", g.tick, "laps", g.laps.Stats())
	}
}

// Tick returns the number of ticks simulated.
func (g *Game) Tick() int64 {
	return g.tick
}

// RunID returns the identifier tagging this run's output.
func (g *Game) RunID() string {
	return g.runID
}

// Core returns the simulation state.
func (g *Game) Core() *patrol.Core {
	return g.core
}
