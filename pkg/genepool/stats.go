package genepool

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// LineageSummary is one entry in a Stats snapshot's top-N listing.
type LineageSummary struct {
	LineageID    string
	Population   int
	FitnessScore float64 // display-only, never a selection criterion
}

// TraitDistribution is a display-only mean/stddev summary of the trait
// values of every lineage in the pool, living and extinct alike, computed
// with gonum/stat.
type TraitDistribution struct {
	MeanStrength, StdDevStrength         float64
	MeanSpeed, StdDevSpeed               float64
	MeanSize, StdDevSize                 float64
	MeanEfficiency, StdDevEfficiency     float64
	MeanReproduction, StdDevReproduction float64
}

// Stats is a point-in-time snapshot of the pool's aggregate state.
type Stats struct {
	ActiveWorkers   int
	WorkUnitsServed int
	TotalSteps      int
	Uptime          time.Duration
	PoolSize        int
	TopLineages     []LineageSummary
	Traits          TraitDistribution
}

const topLineageCount = 10

// Snapshot takes a consistent read of the pool's aggregate state. Readers
// may run concurrently with one another; only writers exclude them.
func (s *Store) Snapshot() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := time.Now().Add(-activeWindow)
	active := 0
	for _, lastSeen := range s.active {
		if lastSeen.After(cutoff) {
			active++
		}
	}

	summaries := make([]LineageSummary, 0, len(s.lineages))
	for id, l := range s.lineages {
		summaries = append(summaries, LineageSummary{
			LineageID:    id,
			Population:   l.Population,
			FitnessScore: l.Genome.FitnessScore(),
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Population > summaries[j].Population
	})
	if len(summaries) > topLineageCount {
		summaries = summaries[:topLineageCount]
	}

	return Stats{
		ActiveWorkers:   active,
		WorkUnitsServed: s.workUnitsServed,
		TotalSteps:      s.totalSteps,
		Uptime:          time.Since(s.startedAt),
		PoolSize:        len(s.lineages),
		TopLineages:     summaries,
		Traits:          s.traitDistribution(),
	}
}

// traitDistribution must be called with s.mu held for reading.
func (s *Store) traitDistribution() TraitDistribution {
	n := len(s.lineages)
	if n == 0 {
		return TraitDistribution{}
	}

	strength := make([]float64, 0, n)
	speed := make([]float64, 0, n)
	size := make([]float64, 0, n)
	efficiency := make([]float64, 0, n)
	reproduction := make([]float64, 0, n)

	for _, l := range s.lineages {
		g := l.Genome
		strength = append(strength, g.Strength)
		speed = append(speed, g.Speed)
		size = append(size, g.Size)
		efficiency = append(efficiency, g.Efficiency)
		reproduction = append(reproduction, g.Reproduction)
	}

	meanStdDev := func(xs []float64) (mean, stdDev float64) {
		mean = stat.Mean(xs, nil)
		stdDev = stat.StdDev(xs, nil)
		return
	}

	d := TraitDistribution{}
	d.MeanStrength, d.StdDevStrength = meanStdDev(strength)
	d.MeanSpeed, d.StdDevSpeed = meanStdDev(speed)
	d.MeanSize, d.StdDevSize = meanStdDev(size)
	d.MeanEfficiency, d.StdDevEfficiency = meanStdDev(efficiency)
	d.MeanReproduction, d.StdDevReproduction = meanStdDev(reproduction)
	return d
}
