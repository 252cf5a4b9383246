package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rackbot/systems"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Tick         int64
	State        string
	Target       int
	Waypoints    int
	TargetKind   string
	Level        int
	Distance     float64
	Laps         int
	LastLapTicks int64
	LapProgress  float32 // share of the current lap's waypoints reached
	Speed        int
	FPS          int32
	Paused       bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		width:    260,
	}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	pad := r.Theme.Padding
	x, y := pad, pad

	r.DrawPanel(x, y, h.width, 11*r.Theme.LineHeight+2*pad)
	x += pad
	y += pad

	y = r.DrawSectionHeader(x, y, data.Title)
	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d (%dx)", data.Tick, data.Speed))
	y = r.DrawLabelValue(x, y, "State", data.State)
	y = r.DrawLabelValue(x, y, "Target", fmt.Sprintf("%d/%d %s", data.Target, data.Waypoints, data.TargetKind))
	y = r.DrawLabelValue(x, y, "Level", fmt.Sprintf("%d", data.Level))
	y = r.DrawLabelValue(x, y, "Distance", fmt.Sprintf("%.2f", data.Distance))
	y = r.DrawLabelValue(x, y, "Laps", fmt.Sprintf("%d (last %d ticks)", data.Laps, data.LastLapTicks))
	y = r.DrawBar(x, y, "Lap", data.LapProgress, h.width-2*pad)
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))

	status, color := "Running", rl.Green
	if data.Paused {
		status, color = "PAUSED", rl.Yellow
	}
	rl.DrawText(status, x, y, r.Theme.HeaderFontSize, color)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.DarkGray)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	PhaseAvg map[string]time.Duration
	Total    time.Duration
	Registry *systems.SystemRegistry
}

// PerfPanel renders the per-phase timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData, phases []string) {
	r := p.renderer
	x, y := p.x, p.y

	r.DrawPanel(x, y, 240, int32(len(phases)+2)*r.Theme.LineHeight+2*r.Theme.Padding)
	x += r.Theme.Padding
	y += r.Theme.Padding

	y = r.DrawSectionHeader(x, y, fmt.Sprintf("Update %s", data.Total.Round(time.Microsecond)))
	for _, id := range phases {
		avg := data.PhaseAvg[id]
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		color := rl.LightGray
		if pct > 50 {
			color = rl.Orange
		}

		name := id
		if data.Registry != nil {
			name = data.Registry.GetName(id)
		}
		rl.DrawText(fmt.Sprintf("%-12s %8s %5.1f%%", name, avg.Round(time.Microsecond), pct), x, y, 12, color)
		y += r.Theme.LineHeight
	}
}
