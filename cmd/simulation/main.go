package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"relativity-sim/internal/scenarios"
	"relativity-sim/internal/visualization"
)

var demos = map[string]func() ([]scenarios.Result, error){
	"length-contraction": scenarios.LengthContraction,
	"transverse-length":  scenarios.TransverseLength,
	"simultaneity":       scenarios.Simultaneity,
	"time-dilation":      scenarios.TimeDilation,
	"light-clock":        scenarios.LightClock,
	"pole-in-barn":       scenarios.PoleInBarn,
	"twin-paradox":       scenarios.TwinParadox,
}

func main() {
	scenario := flag.String("scenario", "", "scenario to run (default: all, summaries only)")
	frame := flag.Int("frame", 0, "observer frame index within the scenario")
	play := flag.Bool("play", false, "play the selected scenario in a window")
	diagram := flag.String("diagram", "", "write a worldline diagram PNG to this path")
	flag.Parse()

	if *scenario == "" {
		runAll()
		return
	}

	build, ok := demos[*scenario]
	if !ok {
		log.Fatalf("Unknown scenario %q; available: %s", *scenario, strings.Join(names(), ", "))
	}
	results, err := build()
	if err != nil {
		log.Fatalf("Error building scenario %s: %v", *scenario, err)
	}
	if *frame < 0 || *frame >= len(results) {
		log.Fatalf("Scenario %s has %d observer frames, requested %d", *scenario, len(results), *frame)
	}
	result := results[*frame]
	printSummary(*scenario, result)

	if *diagram != "" {
		if err := visualization.Minkowski(result.Times, result.Snapshots, result.Title, *diagram); err != nil {
			log.Fatalf("Error writing diagram: %v", err)
		}
		fmt.Printf("Wrote worldline diagram to %s\n", *diagram)
	}

	if *play {
		player := visualization.NewPlayer(result.Title, result.Limits, result.Times, result.Snapshots)
		ebiten.SetWindowSize(800, 600)
		ebiten.SetWindowTitle(result.Title)
		if err := ebiten.RunGame(player); err != nil {
			log.Fatal(err)
		}
	}
}

func runAll() {
	for _, name := range names() {
		results, err := demos[name]()
		if err != nil {
			log.Fatalf("Error building scenario %s: %v", name, err)
		}
		for _, result := range results {
			printSummary(name, result)
		}
	}
	fmt.Println("\nAll scenarios finished.")
}

func printSummary(name string, result scenarios.Result) {
	visible := 0
	for _, snapshot := range result.Snapshots {
		visible += len(snapshot.Shapes)
	}
	fmt.Printf("%-20s %-55s frames=%d t=[%.1f, %.1f] shapes=%d\n",
		name, result.Title, len(result.Times),
		result.Times[0], result.Times[len(result.Times)-1], visible)
}

func names() []string {
	out := make([]string, 0, len(demos))
	for name := range demos {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
