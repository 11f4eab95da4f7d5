// Package protocol defines the coordinator/worker wire contract (spec §6):
// JSON request/response payloads and the structured error kinds workers and
// the coordinator must distinguish (spec §7).
package protocol

import "github.com/google/uuid"

// ProtocolVersion is the single integer every request carries; a mismatch
// between client and server is fatal for the worker.
const ProtocolVersion = 2

// TraitSet is the wire shape of a genome: five real-valued traits.
type TraitSet struct {
	Strength     float64 `json:"strength"`
	Speed        float64 `json:"speed"`
	Size         float64 `json:"size"`
	Efficiency   float64 `json:"efficiency"`
	Reproduction float64 `json:"reproduction"`
}

// SeedGenome pairs a freshly-minted lineage id with its genome.
type SeedGenome struct {
	GenomeID uuid.UUID `json:"genome_id"`
	Genome   TraitSet  `json:"genome"`
}

// WorkRequest is the body of POST /work/request.
type WorkRequest struct {
	ClientID        uuid.UUID `json:"client_id"`
	ProtocolVersion uint32    `json:"protocol_version"`
	ClientVersion   string    `json:"client_version"`
}

// WorkAssignment is the 200 response to POST /work/request. Legacy fields
// are always present with zero/empty values for backward parsing by older
// clients; this repo never populates them.
type WorkAssignment struct {
	WorkID        uuid.UUID    `json:"work_id"`
	SeedGenomesV2 []SeedGenome `json:"seed_genomes_v2"`
	GridWidth     uint32       `json:"grid_width"`
	GridHeight    uint32       `json:"grid_height"`
	MaxSteps      uint32       `json:"max_steps"`
	MutationRate  float64      `json:"mutation_rate"` // always 0.0: workers never control mutation

	// Legacy fields, present for backward parsing only.
	SeedGenomes    []TraitSet `json:"seed_genomes"`
	Generations    uint32     `json:"generations"`
	PopulationSize uint32     `json:"population_size"`
}

// SurvivalResult is one lineage's outcome from a completed spatial run.
type SurvivalResult struct {
	GenomeID       uuid.UUID `json:"genome_id"`
	Survived       uint32    `json:"survived"`
	TotalSpawned   uint32    `json:"total_spawned"`
	AvgLifespan    float64   `json:"avg_lifespan"`
	TotalFoodEaten uint32    `json:"total_food_eaten"`
}

// SubmitRequest is the body of POST /work/submit. A payload is distinguished
// as spatial by a non-empty SurvivalResults; legacy fields are accepted but
// never interpreted by this coordinator.
type SubmitRequest struct {
	WorkID               uuid.UUID        `json:"work_id"`
	ClientID             uuid.UUID        `json:"client_id"`
	SurvivalResults      []SurvivalResult `json:"survival_results"`
	StepsCompleted       uint32           `json:"steps_completed"`
	BestGenomes          []TraitSet       `json:"best_genomes,omitempty"`
	GenerationsCompleted uint32           `json:"generations_completed,omitempty"`
	Stats                map[string]any   `json:"stats,omitempty"`
}

// GlobalStats is the body of GET /stats.
type GlobalStats struct {
	ActiveWorkers   int                `json:"active_workers"`
	WorkUnitsServed int                `json:"work_units_served"`
	TotalSteps      int                `json:"total_steps"`
	UptimeSeconds   float64            `json:"uptime_seconds"`
	PoolSize        int                `json:"pool_size"`
	TopLineages     []LineageStatsWire `json:"top_lineages"`
}

// LineageStatsWire is one entry in GlobalStats.TopLineages.
type LineageStatsWire struct {
	LineageID    uuid.UUID `json:"lineage_id"`
	Population   int       `json:"population"`
	FitnessScore float64   `json:"fitness_score"`
}
