package genepool

import (
	"math/rand"
	"testing"

	"github.com/maccam912/evo-islands-go/pkg/simulation"
)

func TestNewSeedsInitialPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := New(rng)

	snap := s.Snapshot()
	if snap.PoolSize != initialLineageCount {
		t.Errorf("PoolSize = %d; want %d", snap.PoolSize, initialLineageCount)
	}
}

func TestSeedReturnsTenDistinctFreshLineages(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	s := New(rng)

	before := s.Snapshot().PoolSize

	seeds := s.Seed(rng, "worker-1")
	if len(seeds) != seedSetSize {
		t.Fatalf("len(seeds) = %d; want %d", len(seeds), seedSetSize)
	}

	seen := make(map[string]bool, len(seeds))
	for _, sd := range seeds {
		if seen[sd.LineageID] {
			t.Errorf("duplicate lineage id %q in seed set", sd.LineageID)
		}
		seen[sd.LineageID] = true
	}

	after := s.Snapshot().PoolSize
	if after != before+seedSetSize {
		t.Errorf("PoolSize after Seed = %d; want %d", after, before+seedSetSize)
	}
}

func TestSeedCallsDoNotDisturbOriginalPopulations(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := New(rng)

	original := make(map[string]int)
	for _, l := range s.Snapshot().TopLineages {
		original[l.LineageID] = l.Population
	}

	allIDs := make(map[string]bool)
	for i := 0; i < 5; i++ {
		for _, sd := range s.Seed(rng, "worker-1") {
			if allIDs[sd.LineageID] {
				t.Errorf("lineage id %q reused across seed calls", sd.LineageID)
			}
			allIDs[sd.LineageID] = true
		}
	}
	if len(allIDs) != 50 {
		t.Errorf("distinct minted ids across 5 calls = %d; want 50", len(allIDs))
	}

	for _, l := range s.Snapshot().TopLineages {
		if orig, ok := original[l.LineageID]; ok && orig != l.Population {
			t.Errorf("original lineage %q population changed from %d to %d", l.LineageID, orig, l.Population)
		}
	}
}

func TestSubmitSaturatesPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	s := New(rng)

	seeds := s.Seed(rng, "worker-1")
	first, second := seeds[0].LineageID, seeds[1].LineageID

	s.Submit([]simulation.SurvivalResult{
		{LineageID: first, Survived: 3},
		{LineageID: second, Survived: 0},
	}, 100, "worker-1")

	firstPop, ok := s.Population(first)
	if !ok || firstPop != 30 {
		t.Errorf("first lineage population = %d (found=%v); want 30", firstPop, ok)
	}
	secondPop, ok := s.Population(second)
	if !ok || secondPop != 0 {
		t.Errorf("second lineage population = %d (found=%v); want 0", secondPop, ok)
	}
}

func TestSubmitIgnoresUnknownLineageID(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s := New(rng)

	before := s.Snapshot()
	s.Submit([]simulation.SurvivalResult{{LineageID: "does-not-exist", Survived: 5}}, 10, "worker-1")
	after := s.Snapshot()

	if after.PoolSize != before.PoolSize {
		t.Errorf("PoolSize changed from %d to %d after submitting an unknown lineage id", before.PoolSize, after.PoolSize)
	}
}

func TestSubmitNeverExceedsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	s := New(rng)
	seeds := s.Seed(rng, "worker-1")
	id := seeds[0].LineageID

	for i := 0; i < 2000; i++ {
		s.Submit([]simulation.SurvivalResult{{LineageID: id, Survived: 10}}, 1, "worker-1")
	}

	if pop, _ := s.Population(id); pop > MaxPopulation {
		t.Errorf("population %d exceeds MaxPopulation %d", pop, MaxPopulation)
	}
}

func TestMutationEventsRecordsSeeding(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := New(rng)
	s.Seed(rng, "worker-1")

	events := s.MutationEvents()
	if len(events) != seedSetSize {
		t.Fatalf("len(MutationEvents()) = %d; want %d", len(events), seedSetSize)
	}
}
