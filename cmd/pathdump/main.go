// Command pathdump prints the generated patrol route or rack layout as CSV.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rackbot/config"
	"github.com/pthm-cable/rackbot/patrol"
	"github.com/pthm-cable/rackbot/warehouse"
)

// waypointRow is one waypoint with the length of the segment leading to it.
type waypointRow struct {
	Index   int     `csv:"index"`
	Kind    string  `csv:"kind"`
	Level   int     `csv:"level"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	Z       float64 `csv:"z"`
	Segment float64 `csv:"segment"`
}

// rackRow is one rack cell.
type rackRow struct {
	Level int     `csv:"level"`
	Row   int     `csv:"row"`
	Aisle int     `csv:"aisle"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
}

func waypointRows(route warehouse.Route, path []r3.Vec) []waypointRow {
	rows := make([]waypointRow, len(path))
	for i, p := range path {
		prev := path[(i-1+len(path))%len(path)]
		rows[i] = waypointRow{
			Index:   i,
			Kind:    route.Kind(i).String(),
			Level:   route.Level(i),
			X:       p.X,
			Y:       p.Y,
			Z:       p.Z,
			Segment: r3.Norm(r3.Sub(prev, p)),
		}
	}
	return rows
}

func rackRows(cells []warehouse.RackCell) []rackRow {
	rows := make([]rackRow, len(cells))
	for i, c := range cells {
		rows[i] = rackRow{
			Level: c.Level,
			Row:   c.Row,
			Aisle: c.Aisle,
			X:     c.Center.X,
			Y:     c.Center.Y,
			Z:     c.Center.Z,
		}
	}
	return rows
}

func dump(w io.Writer, cfg *config.Config, what string) error {
	switch what {
	case "waypoints":
		route := patrol.RouteFromConfig(cfg)
		return gocsv.Marshal(waypointRows(route, warehouse.GeneratePath(route)), w)
	case "layout":
		return gocsv.Marshal(rackRows(warehouse.GenerateLayout(patrol.GridFromConfig(cfg))), w)
	}
	return fmt.Errorf("unknown dump %q (want waypoints or layout)", what)
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	what := flag.String("what", "waypoints", "What to print: waypoints or layout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := dump(os.Stdout, cfg, *what); err != nil {
		log.Fatal(err)
	}
}
