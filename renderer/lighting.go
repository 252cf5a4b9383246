package renderer

import (
	_ "embed"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rackbot/camera"
)

//go:embed shaders/lit.vs
var litVS string

//go:embed shaders/lit.fs
var litFS string

// Light is a directional light plus a flat ambient term.
type Light struct {
	Position  [3]float32 // the light shines from here toward the origin
	Ambient   float32
	Shininess float32
}

// Lighting shades solid geometry drawn between Begin and End.
type Lighting struct {
	shader     rl.Shader
	viewPosLoc int32
	light      Light
}

// NewLighting compiles the lighting shader (must be called after the raylib window is created).
func NewLighting(light Light) *Lighting {
	l := &Lighting{
		shader: rl.LoadShaderFromMemory(litVS, litFS),
		light:  light,
	}
	l.viewPosLoc = rl.GetShaderLocation(l.shader, "viewPos")

	dir := lightDirection(light.Position)
	rl.SetShaderValue(l.shader, rl.GetShaderLocation(l.shader, "lightDir"), dir[:], rl.ShaderUniformVec3)
	rl.SetShaderValue(l.shader, rl.GetShaderLocation(l.shader, "ambient"), []float32{light.Ambient}, rl.ShaderUniformFloat)
	rl.SetShaderValue(l.shader, rl.GetShaderLocation(l.shader, "shininess"), []float32{max(light.Shininess, 1)}, rl.ShaderUniformFloat)
	return l
}

// Begin starts shaded drawing as seen from cam.
func (l *Lighting) Begin(cam *camera.Camera) {
	x, y, z := cam.Eye()
	rl.SetShaderValue(l.shader, l.viewPosLoc, []float32{x, y, z}, rl.ShaderUniformVec3)
	rl.BeginShaderMode(l.shader)
}

// End returns to unlit drawing.
func (l *Lighting) End() {
	rl.EndShaderMode()
}

// Unload frees the shader.
func (l *Lighting) Unload() {
	rl.UnloadShader(l.shader)
}

// lightDirection returns the unit vector from the origin toward pos.
// A light at the origin shines straight down.
func lightDirection(pos [3]float32) [3]float32 {
	n := float32(math.Sqrt(float64(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])))
	if n == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{pos[0] / n, pos[1] / n, pos[2] / n}
}
