package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlState is what the controls panel edits.
type ControlState struct {
	Paused   bool
	Speed    int // simulation steps per frame
	ShowPath bool
}

// ControlActions reports one-shot button presses.
type ControlActions struct {
	Reset     bool
	ResetView bool
}

// ControlsPanel renders raygui controls in the top-right corner.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
	maxSpeed int
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(width int32, maxSpeed int) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		width:    width,
		maxSpeed: maxSpeed,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Contains reports whether a screen point falls on the panel,
// so camera drags can ignore clicks meant for the controls.
func (c *ControlsPanel) Contains(screenW int32, px, py float32) bool {
	if !c.visible {
		return false
	}
	x := float32(screenW - c.width - 10)
	return px >= x && px <= x+float32(c.width) && py >= 10 && py <= 10+float32(c.height())
}

func (c *ControlsPanel) height() int32 {
	return 5*28 + 2*c.renderer.Theme.Padding
}

// Draw renders the panel, applying edits to state.
func (c *ControlsPanel) Draw(screenW int32, state *ControlState) ControlActions {
	var actions ControlActions
	if !c.visible {
		return actions
	}

	r := c.renderer
	pad := r.Theme.Padding
	x := screenW - c.width - 10
	y := int32(10)
	r.DrawPanel(x, y, c.width, c.height())

	fx := float32(x + pad)
	fy := float32(y + pad)
	fw := float32(c.width - 2*pad)

	label := "Pause"
	if state.Paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: fx, Y: fy, Width: fw, Height: 22}, label) {
		state.Paused = !state.Paused
	}
	fy += 28

	speed := gui.SliderBar(
		rl.Rectangle{X: fx + 40, Y: fy, Width: fw - 80, Height: 20},
		"Speed", "",
		float32(state.Speed), 1, float32(c.maxSpeed),
	)
	state.Speed = int(speed + 0.5)
	rl.DrawText(fmt.Sprintf("%dx", state.Speed), int32(fx+fw-30), int32(fy+4), 12, r.Theme.ValueColor)
	fy += 28

	state.ShowPath = gui.CheckBox(rl.Rectangle{X: fx, Y: fy, Width: 18, Height: 18}, "Show path", state.ShowPath)
	fy += 28

	if gui.Button(rl.Rectangle{X: fx, Y: fy, Width: fw, Height: 22}, "Reset robot") {
		actions.Reset = true
	}
	fy += 28

	if gui.Button(rl.Rectangle{X: fx, Y: fy, Width: fw, Height: 22}, "Reset view") {
		actions.ResetView = true
	}

	return actions
}
