// Command visualizer runs one local, non-networked simulation and renders
// it live with Ebiten. It never talks to a coordinator: seeds are generated
// in-process, which makes it a quick way to eyeball the spatial core's
// behavior without standing up pkg/genepool or pkg/protocol at all.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/maccam912/evo-islands-go/pkg/genome"
	"github.com/maccam912/evo-islands-go/pkg/simulation"
)

func main() {
	width := flag.Int("width", 100, "grid width in tiles")
	height := flag.Int("height", 100, "grid height in tiles")
	lineages := flag.Int("lineages", 12, "number of distinct random lineages to seed")
	perLineage := flag.Int("perLineage", 4, "creatures seeded per lineage")
	plantDensity := flag.Float64("plantDensity", 0.08, "fraction of tiles starting as plant")
	foodDensity := flag.Float64("foodDensity", 0.04, "fraction of tiles starting as loose food")
	maxSteps := flag.Int("maxSteps", 100000, "ticks before the run stops itself")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	fmt.Println("evo-islands visualizer")
	fmt.Printf("grid %dx%d, %d lineages x %d\n", *width, *height, *lineages, *perLineage)

	rng := rand.New(rand.NewSource(*seed))

	cfg := simulation.Config{
		GridWidth:             *width,
		GridHeight:            *height,
		MaxSteps:              *maxSteps,
		PlantDensity:          *plantDensity,
		FoodDensity:           *foodDensity,
		ReproductionThreshold: 60,
		MutationRate:          0.05,
	}

	var seeds []simulation.Seed
	for i := 0; i < *lineages; i++ {
		lineageID := fmt.Sprintf("local-%02d", i)
		g := genome.Random(rng)
		for j := 0; j < *perLineage; j++ {
			seeds = append(seeds, simulation.Seed{LineageID: lineageID, Genome: g})
		}
	}

	sim := simulation.New(seeds, cfg, rng)
	gm := newGame(sim)

	ebiten.SetWindowSize(cfg.GridWidth*cellSize, cfg.GridHeight*cellSize)
	ebiten.SetWindowTitle("evo-islands")
	if err := ebiten.RunGame(gm); err != nil {
		log.Fatalf("visualizer exited: %v", err)
	}
}
