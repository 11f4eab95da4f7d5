package simulation

import "github.com/maccam912/evo-islands-go/pkg/genome"

// Seed is one (lineage-id, genome) pair handed to a run at construction.
type Seed struct {
	LineageID string
	Genome    genome.Genome
}

// LineageStats accumulates the per-run survival accounting for one lineage
// across its lifetime within a single run.
type LineageStats struct {
	TotalSpawned   int
	TotalFoodEaten int
}

// SurvivalResult is the per-lineage output a completed run emits for every
// lineage it ever tracked, including lineages with no survivors.
type SurvivalResult struct {
	LineageID      string  `json:"lineage_id"`
	Survived       int     `json:"survived"`
	TotalSpawned   int     `json:"total_spawned"`
	AvgLifespan    float64 `json:"avg_lifespan"` // unused; always zero, carried only for wire-format compatibility
	TotalFoodEaten int     `json:"total_food_eaten"`
}
