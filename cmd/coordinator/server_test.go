package main

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/maccam912/evo-islands-go/pkg/config"
	"github.com/maccam912/evo-islands-go/pkg/genepool"
	"github.com/maccam912/evo-islands-go/pkg/protocol"
)

func newTestServer() *server {
	pool := genepool.New(rand.New(rand.NewSource(1)))
	return newServer(pool, config.DefaultCoordinatorConfig())
}

func postJSON(t *testing.T, mux http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestWorkRequestReturnsTenSeeds(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s.routes(), "/work/request", protocol.WorkRequest{
		ClientID:        uuid.New(),
		ProtocolVersion: protocol.ProtocolVersion,
		ClientVersion:   "test",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", rec.Code, rec.Body.String())
	}

	var assignment protocol.WorkAssignment
	if err := json.Unmarshal(rec.Body.Bytes(), &assignment); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(assignment.SeedGenomesV2) != 10 {
		t.Errorf("len(SeedGenomesV2) = %d; want 10", len(assignment.SeedGenomesV2))
	}
	if assignment.GridWidth != 300 || assignment.GridHeight != 300 {
		t.Errorf("grid = %dx%d; want 300x300", assignment.GridWidth, assignment.GridHeight)
	}
	if assignment.MutationRate != 0 {
		t.Errorf("MutationRate = %v; want 0 (workers never control mutation)", assignment.MutationRate)
	}
}

func TestWorkRequestRejectsVersionMismatch(t *testing.T) {
	s := newTestServer()
	rec := postJSON(t, s.routes(), "/work/request", protocol.WorkRequest{
		ClientID:        uuid.New(),
		ProtocolVersion: 1,
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestWorkSubmitUpdatesPoolAndStats(t *testing.T) {
	s := newTestServer()
	reqRec := postJSON(t, s.routes(), "/work/request", protocol.WorkRequest{
		ClientID:        uuid.New(),
		ProtocolVersion: protocol.ProtocolVersion,
	})
	var assignment protocol.WorkAssignment
	if err := json.Unmarshal(reqRec.Body.Bytes(), &assignment); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	seeded := assignment.SeedGenomesV2[0].GenomeID

	submitRec := postJSON(t, s.routes(), "/work/submit", protocol.SubmitRequest{
		WorkID:   assignment.WorkID,
		ClientID: uuid.New(),
		SurvivalResults: []protocol.SurvivalResult{
			{GenomeID: seeded, Survived: 3, TotalSpawned: 3, TotalFoodEaten: 12},
		},
		StepsCompleted: 500,
	})
	if submitRec.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", submitRec.Code, submitRec.Body.String())
	}

	pop, ok := s.pool.Population(seeded.String())
	if !ok {
		t.Fatal("seeded lineage missing from pool after submit")
	}
	if pop != 30 {
		t.Errorf("population = %d; want 30", pop)
	}

	statsRec := httptest.NewRecorder()
	s.routes().ServeHTTP(statsRec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	var stats protocol.GlobalStats
	if err := json.Unmarshal(statsRec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Unmarshal stats: %v", err)
	}
	if stats.TotalSteps != 500 {
		t.Errorf("TotalSteps = %d; want 500", stats.TotalSteps)
	}
	if stats.WorkUnitsServed != 1 {
		t.Errorf("WorkUnitsServed = %d; want 1", stats.WorkUnitsServed)
	}
}

func TestWorkSubmitMalformedBodyIsBadRequest(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/work/submit", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
	}
}
