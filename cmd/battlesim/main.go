// Command battlesim loads a scenario, fights it out and writes a JSON summary.
//
// The player army comes from the scenario file. The computer army is taken
// from the scenario as well, or generated from the point budget when the
// scenario lists none or -generate is set.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/battlegrid/battle"
	"github.com/katalvlaran/battlegrid/internal/config"
	"github.com/katalvlaran/battlegrid/internal/rng"
	"github.com/katalvlaran/battlegrid/pathfinder"
	"github.com/katalvlaran/battlegrid/preset"
	"github.com/katalvlaran/battlegrid/unit"
)

// summary is the JSON document written at the end of a run.
type summary struct {
	Scenario string        `json:"scenario"`
	Seed     int64         `json:"seed"`
	Strategy string        `json:"strategy"`
	Winner   string        `json:"winner"`
	Rounds   int           `json:"rounds"`
	Attacks  int           `json:"attacks"`
	Outcome  string        `json:"outcome"`
	Player   []unitSummary `json:"player"`
	Computer []unitSummary `json:"computer"`
}

type unitSummary struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

func main() {
	var cfgDir, out, strategy string
	var seed int64
	var points, rounds int
	var generate, verbose bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "", "summary file (stdout when empty)")
	flag.StringVar(&strategy, "strategy", "dijkstra", "path search: dijkstra or bfs")
	flag.Int64Var(&seed, "seed", 12345, "seed for the generated army")
	flag.IntVar(&points, "points", 0, "point budget for the generated army (0 = scenario max_points)")
	flag.IntVar(&rounds, "rounds", 1000, "round limit (0 = none)")
	flag.BoolVar(&generate, "generate", false, "always generate the computer army")
	flag.BoolVar(&verbose, "v", false, "print every attack")
	flag.Parse()

	catalog, scenario, err := config.LoadAll(cfgDir)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	player, computer, err := scenario.Armies(catalog)
	if err != nil {
		log.Fatalf("build armies: %v", err)
	}

	if generate || len(computer.Units) == 0 {
		if points == 0 {
			points = scenario.MaxPoints
		}
		computer, err = preset.Generate(catalog.Templates(), points,
			preset.WithRand(rng.New(seed)), preset.WithSide(preset.Left))
		if err != nil {
			log.Fatalf("generate computer army: %v", err)
		}
		log.Printf("generated %d computer units for %d points", len(computer.Units), computer.Points)
	}

	s, err := pathfinder.ParseStrategy(strategy)
	if err != nil {
		log.Fatalf("strategy: %v", err)
	}
	finder, err := pathfinder.New(pathfinder.WithStrategy(s))
	if err != nil {
		log.Fatalf("path finder: %v", err)
	}

	opts := []battle.Option{battle.WithFinder(finder), battle.WithMaxRounds(rounds)}
	if verbose {
		opts = append(opts, battle.WithLogger(battle.LoggerFunc(func(a, t *unit.Unit) {
			log.Printf("%s (%d,%d) hits %s (%d,%d), %d hp left", a.Name, a.X, a.Y, t.Name, t.X, t.Y, t.Health)
		})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, simErr := battle.Simulate(ctx, player, computer, opts...)
	sum := summary{
		Scenario: scenario.Name,
		Seed:     seed,
		Strategy: s.String(),
		Winner:   res.Winner.String(),
		Rounds:   res.Rounds,
		Attacks:  res.Attacks,
		Outcome:  "victory",
		Player:   survivors(player),
		Computer: survivors(computer),
	}
	if simErr != nil {
		sum.Outcome = simErr.Error()
	}

	b, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		log.Fatalf("encode summary: %v", err)
	}
	if out == "" {
		fmt.Println(string(b))
		return
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		log.Fatalf("write summary: %v", err)
	}
	fmt.Printf("Battle finished. Winner=%s, rounds=%d -> %s\n", sum.Winner, sum.Rounds, out)
}

func survivors(a *unit.Army) []unitSummary {
	alive := a.Alive()
	out := make([]unitSummary, 0, len(alive))
	for _, u := range alive {
		out = append(out, unitSummary{Name: u.Name, Health: u.Health, X: u.X, Y: u.Y})
	}
	return out
}
