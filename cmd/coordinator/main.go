// Command coordinator runs the gene-pool HTTP server workers pull seed sets
// from and submit survival results to.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"

	"github.com/maccam912/evo-islands-go/pkg/config"
	"github.com/maccam912/evo-islands-go/pkg/genepool"
)

func main() {
	fmt.Println("evo-islands coordinator")

	configPath := flag.String("config", "coordinator.json", "Path to configuration file")
	seed := flag.Int64("seed", 1, "PRNG seed for the initial gene pool")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = config.DefaultCoordinatorConfig()
			if err := config.SaveToFile(cfg, *configPath); err != nil {
				log.Fatalf("failed to create default config: %v", err)
			}
			fmt.Printf("created default configuration file at: %s\n", *configPath)
		} else {
			log.Fatalf("failed to load configuration: %v", err)
		}
	}

	pool := genepool.New(rand.New(rand.NewSource(*seed)))
	srv := newServer(pool, cfg)

	fmt.Printf("listening on %s (protocol v%d)\n", cfg.ListenAddr, cfg.ProtocolVersion)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.routes()); err != nil {
		log.Fatalf("coordinator exited: %v", err)
	}
}
