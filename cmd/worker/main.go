// Command worker pulls seed sets from a coordinator, runs the spatial
// simulation locally, and submits survival results back.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/maccam912/evo-islands-go/pkg/simulation"
	"github.com/maccam912/evo-islands-go/pkg/workerconfig"
)

func main() {
	fmt.Println("evo-islands worker")

	configPath := flag.String("config", "worker.yaml", "Path to configuration file")
	rounds := flag.Int("rounds", 0, "Number of work units to run, 0 for unbounded")
	flag.Parse()

	cfg, err := workerconfig.LoadFromFile(*configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = workerconfig.Default()
			if err := workerconfig.SaveToFile(cfg, *configPath); err != nil {
				log.Fatalf("failed to create default config: %v", err)
			}
			fmt.Printf("created default configuration file at: %s\n", *configPath)
		} else {
			log.Fatalf("failed to load configuration: %v", err)
		}
	}

	fmt.Printf("coordinator: %s, concurrency: %d\n", cfg.CoordinatorURL, cfg.Concurrency)

	var g errgroup.Group
	for i := 0; i < cfg.Concurrency; i++ {
		lane := i
		g.Go(func() error {
			return runLane(lane, cfg, *rounds)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("worker exited: %v", err)
	}
}

// runLane repeatedly pulls one work unit, runs it, and submits the result,
// sleeping pollInterval between units. A lane runs forever when rounds is 0.
func runLane(lane int, cfg workerconfig.Config, rounds int) error {
	c := newClient(cfg)

	for round := 0; rounds == 0 || round < rounds; round++ {
		assignment, err := c.requestWork()
		if err != nil {
			// A protocol mismatch comes back as a 400 carrying
			// protocol.VersionMismatchError's message; it ends the lane,
			// and main then exits the worker.
			if strings.Contains(err.Error(), "protocol version mismatch") {
				return fmt.Errorf("lane %d: %w", lane, err)
			}
			log.Printf("lane %d: request work: %v", lane, err)
			time.Sleep(cfg.PollInterval)
			continue
		}

		seeds := make([]simulation.Seed, 0, len(assignment.SeedGenomesV2))
		for _, sg := range assignment.SeedGenomesV2 {
			seeds = append(seeds, simulation.Seed{
				LineageID: sg.GenomeID.String(),
				Genome:    genomeFromTraitSet(sg.Genome),
			})
		}

		simCfg := simulation.Config{
			GridWidth:             int(assignment.GridWidth),
			GridHeight:            int(assignment.GridHeight),
			MaxSteps:              int(assignment.MaxSteps),
			PlantDensity:          simulation.DefaultConfig().PlantDensity,
			FoodDensity:           simulation.DefaultConfig().FoodDensity,
			ReproductionThreshold: simulation.DefaultConfig().ReproductionThreshold,
			MutationRate:          assignment.MutationRate,
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		sim := simulation.New(seeds, simCfg, rng)
		results := sim.Run()

		if cfg.ResultsDir != "" {
			path := filepath.Join(cfg.ResultsDir, fmt.Sprintf("results-lane%d-round%d.csv", lane, round))
			if err := simulation.ExportResultsCSV(results, path); err != nil {
				log.Printf("lane %d: export results csv: %v", lane, err)
			}
		}

		if err := c.submitResults(assignment.WorkID, results, sim.Step); err != nil {
			log.Printf("lane %d: submit results: %v", lane, err)
		}

		time.Sleep(cfg.PollInterval)
	}
	return nil
}
