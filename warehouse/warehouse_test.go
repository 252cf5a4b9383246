package warehouse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// sceneGrid and sceneRoute match the shipped warehouse.
var sceneGrid = Grid{
	Levels:        5,
	RacksPerRow:   8,
	RacksPerAisle: 5,
	LevelHeight:   4,
	Spacing:       3,
	XOffset:       10,
	ZOffset:       8,
	RackSize:      r3.Vec{X: 2, Y: 3, Z: 2},
}

var sceneRoute = Route{
	Levels:      5,
	RacksPerRow: 8,
	LevelHeight: 4,
	AisleZ:      -8,
	XSpacing:    3,
	BaseX:       -10,
	BaseY:       1.5,
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestGenerateLayoutCount(t *testing.T) {
	cells := GenerateLayout(sceneGrid)
	assert.Len(t, cells, 5*8*5)
}

func TestGenerateLayoutCoordinates(t *testing.T) {
	cells := GenerateLayout(sceneGrid)
	require.NotEmpty(t, cells)

	first := cells[0]
	assert.Equal(t, 0, first.Level)
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, 0, first.Aisle)
	if diff := cmp.Diff(r3.Vec{X: -10, Y: 1.5, Z: -8}, first.Center, approx); diff != "" {
		t.Errorf("first rack center mismatch (-want +got):\n%s", diff)
	}

	last := cells[len(cells)-1]
	assert.Equal(t, 4, last.Level)
	assert.Equal(t, 7, last.Row)
	assert.Equal(t, 4, last.Aisle)
	if diff := cmp.Diff(r3.Vec{X: 11, Y: 17.5, Z: 4}, last.Center, approx); diff != "" {
		t.Errorf("last rack center mismatch (-want +got):\n%s", diff)
	}

	// Aisle index varies fastest
	assert.Equal(t, 1, cells[1].Aisle)
	assert.Equal(t, 0, cells[1].Row)
	assert.Equal(t, 1, cells[5].Row)
}

func TestGenerateLayoutDegenerate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(g *Grid)
	}{
		{"zero levels", func(g *Grid) { g.Levels = 0 }},
		{"negative rows", func(g *Grid) { g.RacksPerRow = -1 }},
		{"zero aisle", func(g *Grid) { g.RacksPerAisle = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := sceneGrid
			tt.mod(&g)
			assert.Empty(t, GenerateLayout(g))
		})
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds(GenerateLayout(sceneGrid))
	if diff := cmp.Diff(r3.Vec{X: -11, Y: 0, Z: -9}, lo, approx); diff != "" {
		t.Errorf("lo mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(r3.Vec{X: 12, Y: 19, Z: 5}, hi, approx); diff != "" {
		t.Errorf("hi mismatch (-want +got):\n%s", diff)
	}

	lo, hi = Bounds(nil)
	assert.Equal(t, r3.Vec{}, lo)
	assert.Equal(t, r3.Vec{}, hi)
}

func TestGeneratePathLength(t *testing.T) {
	for levels := 1; levels <= 4; levels++ {
		for rows := 1; rows <= 6; rows++ {
			r := sceneRoute
			r.Levels = levels
			r.RacksPerRow = rows
			path := GeneratePath(r)
			assert.Len(t, path, levels*(rows+1)+1, "levels=%d rows=%d", levels, rows)
			assert.Equal(t, len(path), r.Len())
		}
	}
}

func TestGeneratePathScene(t *testing.T) {
	path := GeneratePath(sceneRoute)
	require.Len(t, path, 46)

	want := map[int]r3.Vec{
		0:  {X: -10, Y: 1.5, Z: -8},
		7:  {X: 11, Y: 1.5, Z: -8},
		8:  {X: 11, Y: 5.5, Z: -8}, // lift from level 0
		9:  {X: -10, Y: 5.5, Z: -8},
		44: {X: 11, Y: 21.5, Z: -8}, // lift from level 4
		45: {X: -10, Y: 1.5, Z: -8},
	}
	for i, w := range want {
		if diff := cmp.Diff(w, path[i], approx); diff != "" {
			t.Errorf("waypoint %d mismatch (-want +got):\n%s", i, diff)
		}
	}

	// Every waypoint sits in the patrolled aisle
	for i, p := range path {
		assert.Equal(t, -8.0, p.Z, "waypoint %d", i)
	}
}

func TestGeneratePathEmpty(t *testing.T) {
	r := sceneRoute
	r.Levels = 0
	assert.Empty(t, GeneratePath(r))
	assert.Zero(t, r.Len())

	r = sceneRoute
	r.RacksPerRow = 0
	assert.Empty(t, GeneratePath(r))
}

func TestRouteKind(t *testing.T) {
	assert.Equal(t, KindSweep, sceneRoute.Kind(0))
	assert.Equal(t, KindSweep, sceneRoute.Kind(7))
	assert.Equal(t, KindLift, sceneRoute.Kind(8))
	assert.Equal(t, KindSweep, sceneRoute.Kind(9))
	assert.Equal(t, KindLift, sceneRoute.Kind(44))
	assert.Equal(t, KindClosing, sceneRoute.Kind(45))

	assert.Equal(t, 0, sceneRoute.Level(8))
	assert.Equal(t, 1, sceneRoute.Level(9))
	assert.Equal(t, 4, sceneRoute.Level(44))
	assert.Equal(t, "lift", KindLift.String())
}
