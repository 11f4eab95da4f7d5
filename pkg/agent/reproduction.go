package agent

import (
	"github.com/maccam912/evo-islands-go/pkg/creature"
	"github.com/maccam912/evo-islands-go/pkg/genome"
)

// ReproductionCost is the energy each partner pays for a successful
// reproduction attempt.
const ReproductionCost = 20.0

// ReproductionRand is the randomness surface reproduction needs.
type ReproductionRand interface {
	Intn(n int) int
	Float64() float64
	NormFloat64() float64
}

// TryReproduce attempts to pair a and b into a child. Both partners must
// have energy at or above threshold; on success each pays ReproductionCost,
// and the child is a mutated uniform-bit crossover of their genomes,
// inheriting a's lineage id and spawning at their integer midpoint.
func TryReproduce(rng ReproductionRand, a, b *creature.Creature, threshold, mutationRate float64) (creature.Creature, bool) {
	if a.Energy < threshold || b.Energy < threshold {
		return creature.Creature{}, false
	}

	a.Energy -= ReproductionCost
	b.Energy -= ReproductionCost

	childGenome := genome.Crossover(rng, a.Genome, b.Genome).Mutate(rng, mutationRate)
	childX := (a.X + b.X) / 2
	childY := (a.Y + b.Y) / 2

	return creature.New(a.LineageID, childGenome, childX, childY), true
}
