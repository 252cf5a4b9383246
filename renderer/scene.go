package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rackbot/camera"
	"github.com/pthm-cable/rackbot/components"
)

// SceneColors holds the palette as 0xRRGGBB values.
type SceneColors struct {
	Background uint32
	Rack       uint32
	Robot      uint32
	Path       uint32
}

// SceneRenderer draws the warehouse scene graph in 3D.
type SceneRenderer struct {
	rackFilter   ecs.Filter3[components.Position, components.Extent, components.Rack]
	robotFilter  ecs.Filter3[components.Position, components.Extent, components.Robot]
	markerFilter ecs.Filter2[components.Position, components.Marker]

	background, rack, robot, path, lift, active rl.Color

	gridSlices  int32
	gridSpacing float32

	lighting *Lighting

	pathBuf []rl.Vector3
}

// NewSceneRenderer creates a renderer bound to w.
// The grid spans gridSize world units split into gridSlices cells.
// Must be called after the raylib window is created.
func NewSceneRenderer(w *ecs.World, colors SceneColors, light Light, gridSize float32, gridSlices int) *SceneRenderer {
	if gridSlices < 1 {
		gridSlices = 1
	}
	return &SceneRenderer{
		rackFilter:   *ecs.NewFilter3[components.Position, components.Extent, components.Rack](w),
		robotFilter:  *ecs.NewFilter3[components.Position, components.Extent, components.Robot](w),
		markerFilter: *ecs.NewFilter2[components.Position, components.Marker](w),
		background:   hexColor(colors.Background),
		rack:         hexColor(colors.Rack),
		robot:        hexColor(colors.Robot),
		path:         hexColor(colors.Path),
		lift:         rl.Orange,
		active:       rl.Gold,
		gridSlices:   int32(gridSlices),
		gridSpacing:  gridSize / float32(gridSlices),
		lighting:     NewLighting(light),
	}
}

// hexColor converts 0xRRGGBB into an opaque raylib color.
func hexColor(rgb uint32) rl.Color {
	return rl.GetColor(uint(rgb)<<8 | 0xff)
}

// Camera3D builds the raylib camera for cam.
func Camera3D(cam *camera.Camera) rl.Camera3D {
	x, y, z := cam.Eye()
	return rl.Camera3D{
		Position:   rl.NewVector3(x, y, z),
		Target:     rl.NewVector3(cam.TargetX, cam.TargetY, cam.TargetZ),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       cam.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// Clear fills the frame with the background color.
func (r *SceneRenderer) Clear() {
	rl.ClearBackground(r.background)
}

// Draw renders grid, racks, optional path overlay and the robot.
// Must be called between rl.BeginDrawing and rl.EndDrawing.
func (r *SceneRenderer) Draw(cam *camera.Camera, showPath bool) {
	rl.BeginMode3D(Camera3D(cam))

	rl.DrawGrid(r.gridSlices, r.gridSpacing)

	racks := r.rackFilter.Query()
	for racks.Next() {
		pos, ext, _ := racks.Get()
		rl.DrawCubeWiresV(vec(pos), size(ext), r.rack)
	}

	if showPath {
		r.drawPath()
	}

	r.lighting.Begin(cam)
	robots := r.robotFilter.Query()
	for robots.Next() {
		pos, ext, _ := robots.Get()
		rl.DrawCubeV(vec(pos), size(ext), r.robot)
	}
	r.lighting.End()

	rl.EndMode3D()
}

// Unload frees GPU resources.
func (r *SceneRenderer) Unload() {
	r.lighting.Unload()
}

// drawPath draws the route polyline and a marker per waypoint.
func (r *SceneRenderer) drawPath() {
	r.pathBuf = r.pathBuf[:0]

	markers := r.markerFilter.Query()
	for markers.Next() {
		pos, m := markers.Get()
		for len(r.pathBuf) <= m.Index {
			r.pathBuf = append(r.pathBuf, rl.Vector3{})
		}
		r.pathBuf[m.Index] = vec(pos)

		switch {
		case m.Active:
			rl.DrawSphere(vec(pos), 0.35, r.active)
		case m.Kind == components.MarkerLift:
			rl.DrawSphere(vec(pos), 0.25, r.lift)
		default:
			rl.DrawSphere(vec(pos), 0.15, r.path)
		}
	}

	n := len(r.pathBuf)
	for i := 0; i < n && n > 1; i++ {
		rl.DrawLine3D(r.pathBuf[i], r.pathBuf[(i+1)%n], r.path)
	}
}

func vec(p *components.Position) rl.Vector3 {
	return rl.NewVector3(p.X, p.Y, p.Z)
}

func size(e *components.Extent) rl.Vector3 {
	return rl.NewVector3(e.W, e.H, e.D)
}
