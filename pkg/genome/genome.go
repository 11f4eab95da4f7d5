// Package genome defines the five-trait genetic encoding shared by every
// creature in the simulation and the gene-pool store that tracks it.
package genome

import "math"

// TraitBudget is the fixed sum that a genome's traits are renormalized to
// after any construction, mutation, or crossover. Forcing the budget is what
// makes the traits trade off against each other instead of all saturating at
// the maximum.
const TraitBudget = 2.5

// Genome holds the five real-valued traits, each clamped to [0,1].
type Genome struct {
	Strength     float64
	Speed        float64
	Size         float64
	Efficiency   float64
	Reproduction float64
}

// New builds a genome from raw trait values, clamping and renormalizing it
// to the trait budget.
func New(strength, speed, size, efficiency, reproduction float64) Genome {
	g := Genome{
		Strength:     strength,
		Speed:        speed,
		Size:         size,
		Efficiency:   efficiency,
		Reproduction: reproduction,
	}
	g.normalize()
	return g
}

// Random builds a genome with uniformly random traits in [0,1], then
// renormalizes to the trait budget.
func Random(rng Rand) Genome {
	return New(
		rng.Float64(),
		rng.Float64(),
		rng.Float64(),
		rng.Float64(),
		rng.Float64(),
	)
}

// Rand is the minimal randomness surface genome operations need. It is
// satisfied by *rand.Rand; kept as an interface so callers don't have to
// thread a concrete RNG type through packages that never hold one across a
// lock boundary.
type Rand interface {
	Float64() float64
	NormFloat64() float64
	Intn(n int) int
}

// clamp restricts each trait to [0,1]. Called first thing in normalize so that
// extreme inputs (e.g. from Gaussian mutation) can't push the sum high enough
// to distort the proportional scaling.
func (g *Genome) clamp() {
	g.Strength = clampUnit(g.Strength)
	g.Speed = clampUnit(g.Speed)
	g.Size = clampUnit(g.Size)
	g.Efficiency = clampUnit(g.Efficiency)
	g.Reproduction = clampUnit(g.Reproduction)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalize clamps every trait to [0,1], then proportionally scales the
// trait vector so its sum equals TraitBudget. If the sum is zero after
// clamping, every trait is set to TraitBudget/5.
func (g *Genome) normalize() {
	g.clamp()

	sum := g.Strength + g.Speed + g.Size + g.Efficiency + g.Reproduction
	if sum <= 0 {
		uniform := TraitBudget / 5
		g.Strength = uniform
		g.Speed = uniform
		g.Size = uniform
		g.Efficiency = uniform
		g.Reproduction = uniform
		return
	}

	scale := TraitBudget / sum
	g.Strength *= scale
	g.Speed *= scale
	g.Size *= scale
	g.Efficiency *= scale
	g.Reproduction *= scale

	// Scaling can push a trait above 1 when the pre-scale sum was small and
	// one trait dominated it; such traits stay clamped at 1 and the rest of
	// the budget is rescaled over the traits below 1 until none overflows.
	traits := [...]*float64{&g.Strength, &g.Speed, &g.Size, &g.Efficiency, &g.Reproduction}
	for range traits {
		g.clamp()
		capped, free := 0.0, 0.0
		for _, t := range traits {
			capped += math.Floor(*t) // 1 for a trait clamped at 1, else 0
			free += *t - math.Floor(*t)
		}
		for _, t := range traits {
			if *t < 1 && free > 0 {
				*t *= (TraitBudget - capped) / free
			}
		}
	}
	g.clamp()
}

// Mutate applies independent Gaussian jitter to each trait with probability
// perTraitRate, then renormalizes to the trait budget. The source genome is
// left untouched; Mutate returns the mutated copy.
func (g Genome) Mutate(rng Rand, perTraitRate float64) Genome {
	const mutationStdDev = 0.15

	mutated := g
	if rng.Float64() < perTraitRate {
		mutated.Strength += rng.NormFloat64() * mutationStdDev
	}
	if rng.Float64() < perTraitRate {
		mutated.Speed += rng.NormFloat64() * mutationStdDev
	}
	if rng.Float64() < perTraitRate {
		mutated.Size += rng.NormFloat64() * mutationStdDev
	}
	if rng.Float64() < perTraitRate {
		mutated.Efficiency += rng.NormFloat64() * mutationStdDev
	}
	if rng.Float64() < perTraitRate {
		mutated.Reproduction += rng.NormFloat64() * mutationStdDev
	}
	mutated.normalize()
	return mutated
}

// Crossover produces a child genome via uniform-bit crossover: each trait is
// independently inherited from a or b with equal probability. The result is
// renormalized to the trait budget.
func Crossover(rng Rand, a, b Genome) Genome {
	pick := func(fromA, fromB float64) float64 {
		if rng.Intn(2) == 0 {
			return fromA
		}
		return fromB
	}

	child := Genome{
		Strength:     pick(a.Strength, b.Strength),
		Speed:        pick(a.Speed, b.Speed),
		Size:         pick(a.Size, b.Size),
		Efficiency:   pick(a.Efficiency, b.Efficiency),
		Reproduction: pick(a.Reproduction, b.Reproduction),
	}
	child.normalize()
	return child
}

// EnergyCost is the per-tick energy baseline implied by this genome's
// traits: bigger, stronger, faster, more fertile creatures cost more to run,
// discounted by efficiency.
func (g Genome) EnergyCost() float64 {
	return 1 + (2*g.Strength+1.5*g.Speed+1.8*g.Size+0.5*g.Reproduction)*(2-g.Efficiency)
}

// FitnessScore is a display-only, tie-breaking-only summary of a genome's
// overall quality. It is never used as a selection criterion.
func (g Genome) FitnessScore() float64 {
	product := (g.Strength + 0.5*g.Size) * (g.Speed + g.Efficiency) * g.Reproduction
	return math.Cbrt(product)
}

// CombatPower determines who wins a contested food tile.
func (g Genome) CombatPower() float64 {
	return g.Strength + 0.5*g.Size
}

// VisionRadius is how far a creature can see food.
func (g Genome) VisionRadius() float64 {
	return 5 + 10*g.Size
}
