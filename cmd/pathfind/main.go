// Command pathfind prints the shortest path between two units of a scenario
// and draws the battlefield.
//
//	pathfind -scenario assets/scenario.yaml -mover "Knight 1" -target "Black Knight"
//
// Legend: P/C living player/computer unit, x dead unit, * path, S/T mover and target.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/battlegrid/gridgraph"
	"github.com/katalvlaran/battlegrid/internal/config"
	"github.com/katalvlaran/battlegrid/pathfinder"
	"github.com/katalvlaran/battlegrid/unit"
)

func main() {
	var scenarioPath, catalogPath, moverName, targetName, strategy string
	var maxSteps int
	flag.StringVar(&scenarioPath, "scenario", filepath.Join("assets", config.ScenarioFile), "scenario file")
	flag.StringVar(&catalogPath, "units", "", "unit catalogue (default: units.yaml next to the scenario)")
	flag.StringVar(&moverName, "mover", "", "name of the moving unit")
	flag.StringVar(&targetName, "target", "", "name of the target unit")
	flag.StringVar(&strategy, "strategy", "dijkstra", "path search: dijkstra or bfs")
	flag.IntVar(&maxSteps, "max-steps", 0, "search radius in steps (0 = whole field)")
	flag.Parse()

	if moverName == "" || targetName == "" {
		log.Fatalf("both -mover and -target are required")
	}
	if catalogPath == "" {
		catalogPath = filepath.Join(filepath.Dir(scenarioPath), config.CatalogFile)
	}

	catalog, err := config.LoadCatalog(catalogPath)
	if err != nil {
		log.Fatalf("load catalogue: %v", err)
	}
	scenario, err := config.LoadScenario(scenarioPath)
	if err != nil {
		log.Fatalf("load scenario: %v", err)
	}
	player, computer, err := scenario.Armies(catalog)
	if err != nil {
		log.Fatalf("build armies: %v", err)
	}

	mover, ok := config.Find(moverName, player, computer)
	if !ok {
		log.Fatalf("no unit named %q", moverName)
	}
	target, ok := config.Find(targetName, player, computer)
	if !ok {
		log.Fatalf("no unit named %q", targetName)
	}

	s, err := pathfinder.ParseStrategy(strategy)
	if err != nil {
		log.Fatalf("strategy: %v", err)
	}
	finder, err := pathfinder.New(pathfinder.WithStrategy(s), pathfinder.WithMaxSteps(maxSteps))
	if err != nil {
		log.Fatalf("path finder: %v", err)
	}

	all := append(append([]*unit.Unit{}, player.Units...), computer.Units...)
	path := finder.FindPath(mover, target, pathfinder.Roster(all))

	fmt.Print(render(player, computer, mover, target, path))
	if path == nil {
		fmt.Printf("No path from %s to %s (%s)\n", mover.Name, target.Name, s)
		return
	}
	fmt.Printf("Path from %s to %s (%s): %d steps\n", mover.Name, target.Name, s, len(path)-1)
	for _, c := range path {
		fmt.Printf("  (%d,%d)\n", c.X, c.Y)
	}
}

// render draws the field row by row, y = 0 on top.
func render(player, computer *unit.Army, mover, target *unit.Unit, path []gridgraph.Cell) string {
	var grid [gridgraph.Height][gridgraph.Width]byte
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}
	for _, c := range path {
		grid[c.Y][c.X] = '*'
	}
	mark := func(army *unit.Army, ch byte) {
		for _, u := range army.Units {
			if !(gridgraph.Cell{X: u.X, Y: u.Y}).InBounds() {
				continue
			}
			switch {
			case !u.IsAlive():
				if grid[u.Y][u.X] == '.' {
					grid[u.Y][u.X] = 'x'
				}
			default:
				grid[u.Y][u.X] = ch
			}
		}
	}
	mark(player, 'P')
	mark(computer, 'C')
	grid[mover.Y][mover.X] = 'S'
	grid[target.Y][target.X] = 'T'

	var b strings.Builder
	for y := range grid {
		b.Write(grid[y][:])
		b.WriteByte('\n')
	}
	return b.String()
}
