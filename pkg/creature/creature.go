// Package creature defines the per-run simulated agent: a genome clone, its
// lineage, position, and vital stats.
package creature

import "github.com/maccam912/evo-islands-go/pkg/genome"

// StartingEnergy and StartingHealth are the values every creature — seeded
// or born — starts life with.
const (
	StartingEnergy = 100.0
	StartingHealth = 100.0
)

// Creature is a single simulated agent within one run.
type Creature struct {
	Genome     genome.Genome
	LineageID  string
	X, Y       int
	Energy     float64
	Health     float64
	FoodEaten  int
}

// New creates a creature from a seed genome at the given position.
func New(lineageID string, g genome.Genome, x, y int) Creature {
	return Creature{
		Genome:    g,
		LineageID: lineageID,
		X:         x,
		Y:         y,
		Energy:    StartingEnergy,
		Health:    StartingHealth,
	}
}

// IsDead reports whether the creature's health has fallen to or below zero,
// or it has starved (energy at or below zero).
func (c Creature) IsDead() bool {
	return c.Health <= 0 || c.Energy <= 0
}

// MovementProbability is the chance this creature's current movement
// attempt succeeds, which degrades sharply once its energy is spent.
func (c Creature) MovementProbability() float64 {
	base := 0.3 + 0.7*c.Genome.Speed
	if c.Energy <= 0 {
		return 0.1 * base
	}
	return base
}
