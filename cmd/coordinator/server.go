package main

import (
	"encoding/binary"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/maccam912/evo-islands-go/pkg/config"
	"github.com/maccam912/evo-islands-go/pkg/genepool"
	"github.com/maccam912/evo-islands-go/pkg/genome"
	"github.com/maccam912/evo-islands-go/pkg/protocol"
	"github.com/maccam912/evo-islands-go/pkg/simulation"
)

// server holds the coordinator's gene pool and the per-run parameters it
// hands out with every seed set. cfg is read-only after startup; pool
// guards its own concurrency internally.
type server struct {
	pool *genepool.Store
	cfg  config.CoordinatorConfig
}

func newServer(pool *genepool.Store, cfg config.CoordinatorConfig) *server {
	return &server{pool: pool, cfg: cfg}
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/work/request", s.handleWorkRequest)
	mux.HandleFunc("/work/submit", s.handleWorkSubmit)
	mux.HandleFunc("/stats", s.handleStats)
	return mux
}

func (s *server) handleWorkRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, &protocol.InvalidRequestError{Message: "expected POST"})
		return
	}

	var req protocol.WorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, &protocol.InvalidRequestError{Message: "malformed work request: " + err.Error()})
		return
	}

	if req.ProtocolVersion != protocol.ProtocolVersion {
		writeError(w, http.StatusBadRequest, &protocol.VersionMismatchError{
			ServerVersion: protocol.ProtocolVersion,
			ClientVersion: req.ProtocolVersion,
		})
		return
	}

	// A task-local rng, never shared across requests or held past Seed's
	// call, per spec §9's randomness-across-lock-boundary requirement.
	rng := rand.New(rand.NewSource(time.Now().UnixNano() ^ int64(binary.BigEndian.Uint64(req.ClientID[:8]))))
	seeds := s.pool.Seed(rng, req.ClientID.String())

	assignment := protocol.WorkAssignment{
		WorkID:       uuid.New(),
		GridWidth:    uint32(s.cfg.GridWidth),
		GridHeight:   uint32(s.cfg.GridHeight),
		MaxSteps:     uint32(s.cfg.MaxSteps),
		MutationRate: 0,
	}
	for _, seed := range seeds {
		genomeID, err := uuid.Parse(seed.LineageID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, &protocol.InternalError{Message: "minted lineage id is not a uuid: " + err.Error()})
			return
		}
		assignment.SeedGenomesV2 = append(assignment.SeedGenomesV2, protocol.SeedGenome{
			GenomeID: genomeID,
			Genome:   traitSetFromGenome(seed.Genome),
		})
	}

	writeJSON(w, http.StatusOK, assignment)
}

func (s *server) handleWorkSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, &protocol.InvalidRequestError{Message: "expected POST"})
		return
	}

	var req protocol.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, &protocol.InvalidRequestError{Message: "malformed submit request: " + err.Error()})
		return
	}

	results := make([]simulation.SurvivalResult, 0, len(req.SurvivalResults))
	for _, res := range req.SurvivalResults {
		results = append(results, simulation.SurvivalResult{
			LineageID:      res.GenomeID.String(),
			Survived:       int(res.Survived),
			TotalSpawned:   int(res.TotalSpawned),
			AvgLifespan:    res.AvgLifespan,
			TotalFoodEaten: int(res.TotalFoodEaten),
		})
	}

	s.pool.Submit(results, int(req.StepsCompleted), req.ClientID.String())
	w.WriteHeader(http.StatusOK)
}

func (s *server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap := s.pool.Snapshot()

	stats := protocol.GlobalStats{
		ActiveWorkers:   snap.ActiveWorkers,
		WorkUnitsServed: snap.WorkUnitsServed,
		TotalSteps:      snap.TotalSteps,
		UptimeSeconds:   snap.Uptime.Seconds(),
		PoolSize:        snap.PoolSize,
	}
	for _, l := range snap.TopLineages {
		id, err := uuid.Parse(l.LineageID)
		if err != nil {
			continue
		}
		stats.TopLineages = append(stats.TopLineages, protocol.LineageStatsWire{
			LineageID:    id,
			Population:   l.Population,
			FitnessScore: l.FitnessScore,
		})
	}

	writeJSON(w, http.StatusOK, stats)
}

func traitSetFromGenome(g genome.Genome) protocol.TraitSet {
	return protocol.TraitSet{
		Strength:     g.Strength,
		Speed:        g.Speed,
		Size:         g.Size,
		Efficiency:   g.Efficiency,
		Reproduction: g.Reproduction,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("writeJSON: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
