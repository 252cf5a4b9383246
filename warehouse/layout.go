// Package warehouse generates the static rack grid and the robot's patrol route.
package warehouse

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Grid describes the rack layout.
type Grid struct {
	Levels        int
	RacksPerRow   int // rack columns along X
	RacksPerAisle int // rack positions along Z
	LevelHeight   float64
	Spacing       float64 // distance between rack centers on X and Z
	XOffset       float64 // subtracted from every X so the grid sits around the origin
	ZOffset       float64 // subtracted from every Z
	RackSize      r3.Vec  // width, height, depth of one rack
}

// RackCell is one rack, identified by its level, row and aisle position.
type RackCell struct {
	Level, Row, Aisle int
	Center            r3.Vec
	Size              r3.Vec
}

// GenerateLayout builds every rack cell, level by level, then row, then aisle position.
// Non-positive counts yield an empty layout.
func GenerateLayout(g Grid) []RackCell {
	if g.Levels <= 0 || g.RacksPerRow <= 0 || g.RacksPerAisle <= 0 {
		return nil
	}

	halfHeight := g.RackSize.Y / 2
	cells := make([]RackCell, 0, g.Levels*g.RacksPerRow*g.RacksPerAisle)
	for level := 0; level < g.Levels; level++ {
		y := float64(level)*g.LevelHeight + halfHeight
		for row := 0; row < g.RacksPerRow; row++ {
			x := float64(row)*g.Spacing - g.XOffset
			for aisle := 0; aisle < g.RacksPerAisle; aisle++ {
				cells = append(cells, RackCell{
					Level:  level,
					Row:    row,
					Aisle:  aisle,
					Center: r3.Vec{X: x, Y: y, Z: float64(aisle)*g.Spacing - g.ZOffset},
					Size:   g.RackSize,
				})
			}
		}
	}
	return cells
}

// Bounds returns the axis-aligned box enclosing every rack.
// An empty layout returns two zero vectors.
func Bounds(cells []RackCell) (lo, hi r3.Vec) {
	if len(cells) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	lo = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, c := range cells {
		half := r3.Scale(0.5, c.Size)
		cMin := r3.Sub(c.Center, half)
		cMax := r3.Add(c.Center, half)
		lo = r3.Vec{X: math.Min(lo.X, cMin.X), Y: math.Min(lo.Y, cMin.Y), Z: math.Min(lo.Z, cMin.Z)}
		hi = r3.Vec{X: math.Max(hi.X, cMax.X), Y: math.Max(hi.Y, cMax.Y), Z: math.Max(hi.Z, cMax.Z)}
	}
	return lo, hi
}
