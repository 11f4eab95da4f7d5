// Package genepool implements the coordinator's concurrent, population-
// weighted genome registry (spec §4.3): lineage creation, seed-set
// production with server-side mutation injection, and survival-result
// ingestion.
package genepool

import (
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maccam912/evo-islands-go/pkg/genome"
	"github.com/maccam912/evo-islands-go/pkg/simulation"
)

const (
	// MaxPopulation is the saturating upper bound on a lineage's population.
	MaxPopulation = 10000

	// initialLineageCount and initialPopulation seed the pool at startup.
	initialLineageCount = 10
	initialPopulation   = 100

	// seedSetSize is the fixed number of (lineage-id, genome) pairs every
	// seed call returns.
	seedSetSize       = 10
	livingSeedCount   = 5
	extinctSeedCount  = 5
	survivalGain      = 10
	extinctionPenalty = 20

	// activeWindow is how recently a worker must have pulled or submitted
	// work to still count as active in the stats snapshot.
	activeWindow = 2 * time.Minute

	// mutationLogCapacity bounds the in-memory diagnostic ring of minted
	// lineages; it is not part of the wire contract.
	mutationLogCapacity = 256
)

// lineage is the store's internal record for one registered genome.
type lineage struct {
	Genome     genome.Genome
	Population int
}

// MutationEvent records one lineage minted during seeding, for diagnostics.
type MutationEvent struct {
	BaseLineageID string
	NewLineageID  string
	MintedAt      time.Time
}

// Store is the coordinator's gene-pool registry. The zero value is not
// usable; construct with New. All access goes through its methods, which
// serialize writes and permit concurrent reads via an interior RWMutex —
// callers never see the raw map.
type Store struct {
	mu        sync.RWMutex
	lineages  map[string]*lineage
	active    map[string]time.Time // worker id -> last-seen
	mutations []MutationEvent      // bounded ring, oldest overwritten first
	mutHead   int

	workUnitsServed int
	totalSteps      int
	startedAt       time.Time
}

// New creates a pool seeded with initialLineageCount random lineages at
// initialPopulation each.
func New(rng *rand.Rand) *Store {
	s := &Store{
		lineages:  make(map[string]*lineage, initialLineageCount),
		active:    make(map[string]time.Time),
		mutations: make([]MutationEvent, 0, mutationLogCapacity),
		startedAt: time.Now(),
	}
	for i := 0; i < initialLineageCount; i++ {
		id := uuid.NewString()
		s.lineages[id] = &lineage{
			Genome:     genome.Random(rng),
			Population: initialPopulation,
		}
	}
	return s
}

// touch records workerID as active as of now. Call on every request.
func (s *Store) touch(workerID string) {
	if workerID == "" {
		return
	}
	s.mu.Lock()
	s.active[workerID] = time.Now()
	s.mu.Unlock()
}

// Seed produces exactly seedSetSize fresh (lineage-id, genome) pairs: the
// top livingSeedCount lineages by population, up to extinctSeedCount random
// extinct lineages, padded with random genomes, each minted as a brand new
// lineage with population 0. The whole batch is inserted atomically with
// respect to other readers and writers. rng must be task-local; no
// reference to it is held past this call.
func (s *Store) Seed(rng *rand.Rand, workerID string) []simulation.Seed {
	s.touch(workerID)

	s.mu.Lock()
	defer s.mu.Unlock()

	bases := s.selectBaseGenomes(rng)

	seeds := make([]simulation.Seed, 0, seedSetSize)
	for _, base := range bases {
		child := base.genome.Mutate(rng, serverMutationRate)
		newID := uuid.NewString()
		s.lineages[newID] = &lineage{Genome: child, Population: 0}
		s.recordMutation(base.lineageID, newID)
		seeds = append(seeds, simulation.Seed{LineageID: newID, Genome: child})
	}

	s.workUnitsServed++
	return seeds
}

// serverMutationRate is the fixed per-trait mutation rate applied to every
// lineage minted during seeding. It is a constant of this package:
// pkg/config.CoordinatorConfig.MutationRate is not read by the store.
const serverMutationRate = 0.05

type baseGenome struct {
	lineageID string
	genome    genome.Genome
}

// selectBaseGenomes implements the seeding partition: top-5 living by
// population, up to 5 random extinct, padded with fresh random genomes,
// truncated to seedSetSize. Must be called with s.mu held.
func (s *Store) selectBaseGenomes(rng *rand.Rand) []baseGenome {
	var living, extinct []baseGenome
	for id, l := range s.lineages {
		entry := baseGenome{lineageID: id, genome: l.Genome}
		if l.Population > 0 {
			living = append(living, entry)
		} else {
			extinct = append(extinct, entry)
		}
	}

	sort.SliceStable(living, func(i, j int) bool {
		return s.lineages[living[i].lineageID].Population > s.lineages[living[j].lineageID].Population
	})
	if len(living) > livingSeedCount {
		living = living[:livingSeedCount]
	}

	rng.Shuffle(len(extinct), func(i, j int) { extinct[i], extinct[j] = extinct[j], extinct[i] })
	if len(extinct) > extinctSeedCount {
		extinct = extinct[:extinctSeedCount]
	}

	bases := append(living, extinct...)
	for len(bases) < seedSetSize {
		bases = append(bases, baseGenome{lineageID: "", genome: genome.Random(rng)})
	}
	return bases[:seedSetSize]
}

// MutationEvents returns a copy of the most recent minted-lineage events,
// oldest first. Diagnostics only; not part of the wire contract.
func (s *Store) MutationEvents() []MutationEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]MutationEvent, len(s.mutations))
	if len(s.mutations) < mutationLogCapacity {
		copy(out, s.mutations)
		return out
	}
	copy(out, s.mutations[s.mutHead:])
	copy(out[mutationLogCapacity-s.mutHead:], s.mutations[:s.mutHead])
	return out
}

func (s *Store) recordMutation(baseID, newID string) {
	ev := MutationEvent{BaseLineageID: baseID, NewLineageID: newID, MintedAt: time.Now()}
	if len(s.mutations) < mutationLogCapacity {
		s.mutations = append(s.mutations, ev)
		return
	}
	s.mutations[s.mutHead] = ev
	s.mutHead = (s.mutHead + 1) % mutationLogCapacity
}

// Submit applies survival results to the pool: a saturating population
// update per lineage, logging and skipping unknown ids. The total-steps
// counter is updated regardless of how many individual results were
// recognized; work units are counted when served, in Seed.
func (s *Store) Submit(results []simulation.SurvivalResult, stepsCompleted int, workerID string) {
	s.touch(workerID)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range results {
		l, ok := s.lineages[r.LineageID]
		if !ok {
			// Unknown lineage id: logged and ignored, per spec §7.
			log.Printf("genepool: ignoring survival result for unknown lineage %q", r.LineageID)
			continue
		}
		if r.Survived > 0 {
			l.Population = saturatingAdd(l.Population, r.Survived*survivalGain, MaxPopulation)
		} else {
			l.Population = saturatingSub(l.Population, extinctionPenalty)
		}
	}

	s.totalSteps += stepsCompleted
}

// Population returns a lineage's current population and whether it exists
// in the registry at all.
func (s *Store) Population(lineageID string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.lineages[lineageID]
	if !ok {
		return 0, false
	}
	return l.Population, true
}

func saturatingAdd(v, delta, max int) int {
	v += delta
	if v > max {
		return max
	}
	return v
}

func saturatingSub(v, delta int) int {
	v -= delta
	if v < 0 {
		return 0
	}
	return v
}
