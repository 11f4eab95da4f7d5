// Package simulation runs one independent spatial simulation from seed
// genomes to per-lineage survival statistics (spec §4.2).
package simulation

import (
	"github.com/maccam912/evo-islands-go/pkg/agent"
	"github.com/maccam912/evo-islands-go/pkg/creature"
	"github.com/maccam912/evo-islands-go/pkg/gridworld"
)

// Rand is the full randomness surface a run needs: world placement, action
// selection, movement, reproduction, and pair shuffling. *rand.Rand
// satisfies it; kept as an interface so a run never holds a shared RNG
// across a lock boundary outside this package.
type Rand interface {
	Intn(n int) int
	Float64() float64
	NormFloat64() float64
	Shuffle(n int, swap func(i, j int))
}

// Simulation is one independent run: its World, its living Creatures, and
// the per-lineage stats accumulated so far. A run owns these exclusively.
type Simulation struct {
	World     *gridworld.World
	Config    Config
	Creatures []creature.Creature
	Stats     map[string]*LineageStats
	Step      int

	rng Rand
}

// New constructs a run from seeds: one creature per seed at a uniform
// random position with full starting energy and health, and lineage
// statistics whose total_spawned counts one per seed of that lineage.
func New(seeds []Seed, cfg Config, rng Rand) *Simulation {
	w := gridworld.New(cfg.GridWidth, cfg.GridHeight)
	w.InitializeResources(rng, cfg.PlantDensity, cfg.FoodDensity)

	creatures := make([]creature.Creature, 0, len(seeds))
	stats := make(map[string]*LineageStats, len(seeds))
	for _, seed := range seeds {
		x, y := rng.Intn(cfg.GridWidth), rng.Intn(cfg.GridHeight)
		creatures = append(creatures, creature.New(seed.LineageID, seed.Genome, x, y))
		if _, ok := stats[seed.LineageID]; !ok {
			stats[seed.LineageID] = &LineageStats{}
		}
		stats[seed.LineageID].TotalSpawned++
	}

	return &Simulation{
		World:     w,
		Config:    cfg,
		Creatures: creatures,
		Stats:     stats,
		rng:       rng,
	}
}

// populationCap is half the world area, per spec's population bound.
func (s *Simulation) populationCap() int {
	return (s.Config.GridWidth * s.Config.GridHeight) / 2
}

// Run ticks the simulation until max_steps is reached or early termination
// fires, then returns the per-lineage survival results.
func (s *Simulation) Run() []SurvivalResult {
	for s.Step = 0; s.Step < s.Config.MaxSteps; s.Step++ {
		s.Tick()
		if s.ShouldStop() {
			break
		}
	}
	return s.CollectResults()
}

// ShouldStop reports whether at most one distinct lineage remains among
// living creatures — the early-termination condition from spec §4.2.
func (s *Simulation) ShouldStop() bool {
	seen := make(map[string]struct{}, 1)
	for _, c := range s.Creatures {
		seen[c.LineageID] = struct{}{}
		if len(seen) > 1 {
			return false
		}
	}
	return true
}

// Tick runs the seven-step per-tick pipeline in spec order: regrowth,
// sensing/action selection, movement, eating/combat, upkeep, death
// collection, reproduction.
func (s *Simulation) Tick() {
	s.World.TickPlants()
	directions := s.chooseDirections()
	s.applyMovement(directions)
	s.resolveEatingAndCombat()
	s.applyUpkeep()
	s.collectDead()
	s.reproduce()
}

// applyUpkeep drains each creature's energy by its genome's metabolic cost,
// the per-tick decay that makes starvation in a foodless world fatal.
func (s *Simulation) applyUpkeep() {
	for i := range s.Creatures {
		s.Creatures[i].Energy -= s.Creatures[i].Genome.EnergyCost()
	}
}

func (s *Simulation) chooseDirections() []agent.Direction {
	directions := make([]agent.Direction, len(s.Creatures))
	for i, c := range s.Creatures {
		directions[i] = agent.ChooseDirection(s.World, c, s.rng)
	}
	return directions
}

func (s *Simulation) applyMovement(directions []agent.Direction) {
	for i := range s.Creatures {
		agent.AttemptMove(s.World, &s.Creatures[i], directions[i], s.rng)
	}
}

type tileKey struct{ x, y int }

func (s *Simulation) resolveEatingAndCombat() {
	groups := make(map[tileKey][]*creature.Creature)
	for i := range s.Creatures {
		c := &s.Creatures[i]
		key := tileKey{c.X, c.Y}
		groups[key] = append(groups[key], c)
	}

	for key, combatants := range groups {
		available := s.World.GetAvailableFood(key.x, key.y)
		if available <= 0 {
			continue
		}
		eaten := agent.ResolveTile(combatants, available)
		if eaten > 0 {
			s.World.ConsumeFood(key.x, key.y, eaten)
		}
	}
}

// collectDead removes every dead creature (health <= 0 or energy <= 0, see
// creature.IsDead) in place, crediting
// its food_eaten to its lineage's total_food_eaten before removal.
func (s *Simulation) collectDead() {
	alive := s.Creatures[:0]
	for _, c := range s.Creatures {
		if c.IsDead() {
			s.creditFoodEaten(c.LineageID, c.FoodEaten)
			continue
		}
		alive = append(alive, c)
	}
	s.Creatures = alive
}

func (s *Simulation) creditFoodEaten(lineageID string, foodEaten int) {
	st, ok := s.Stats[lineageID]
	if !ok {
		st = &LineageStats{}
		s.Stats[lineageID] = st
	}
	st.TotalFoodEaten += foodEaten
}

// reproduce implements step 7: random pairing, crossover/mutation on
// success, and population-cap eviction. Evictions are tracked by index
// rather than by physically shrinking the slice mid-pass, so pointers taken
// for not-yet-processed pairs stay valid for the whole step.
func (s *Simulation) reproduce() {
	n := len(s.Creatures)
	if n < 2 {
		return
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	s.rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	removed := make([]bool, n)
	aliveCount := n
	limit := s.populationCap()
	var children []creature.Creature

	for k := 0; k+1 < n; k += 2 {
		i, j := idx[k], idx[k+1]
		if removed[i] || removed[j] {
			continue
		}
		a, b := &s.Creatures[i], &s.Creatures[j]

		child, ok := agent.TryReproduce(s.rng, a, b, s.Config.ReproductionThreshold, s.Config.MutationRate)
		if !ok {
			continue
		}

		if aliveCount >= limit {
			evictIdx, found := s.findEvictionCandidate(removed)
			if !found {
				continue // no eligible creature to evict: child is not born
			}
			removed[evictIdx] = true
			aliveCount--
			s.creditFoodEaten(s.Creatures[evictIdx].LineageID, s.Creatures[evictIdx].FoodEaten)
		}

		children = append(children, child)
		aliveCount++
		s.incrementSpawned(child.LineageID)
	}

	final := make([]creature.Creature, 0, aliveCount)
	for i, c := range s.Creatures {
		if !removed[i] {
			final = append(final, c)
		}
	}
	final = append(final, children...)
	s.Creatures = final
}

func (s *Simulation) incrementSpawned(lineageID string) {
	st, ok := s.Stats[lineageID]
	if !ok {
		st = &LineageStats{}
		s.Stats[lineageID] = st
	}
	st.TotalSpawned++
}

// findEvictionCandidate returns the not-yet-removed creature with energy
// <= 0 and the lowest health, per the population-bound eviction rule.
func (s *Simulation) findEvictionCandidate(removed []bool) (int, bool) {
	best := -1
	for i, c := range s.Creatures {
		if removed[i] || c.Energy > 0 {
			continue
		}
		if best == -1 || c.Health < s.Creatures[best].Health {
			best = i
		}
	}
	return best, best != -1
}

// CollectResults emits one SurvivalResult for every lineage ever tracked in
// this run, including lineages with no living creatures left.
func (s *Simulation) CollectResults() []SurvivalResult {
	survived := make(map[string]int, len(s.Stats))
	for _, c := range s.Creatures {
		survived[c.LineageID]++
	}

	results := make([]SurvivalResult, 0, len(s.Stats))
	for lineageID, st := range s.Stats {
		results = append(results, SurvivalResult{
			LineageID:      lineageID,
			Survived:       survived[lineageID],
			TotalSpawned:   st.TotalSpawned,
			TotalFoodEaten: st.TotalFoodEaten,
		})
	}
	return results
}
