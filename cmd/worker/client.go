package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/maccam912/evo-islands-go/pkg/genome"
	"github.com/maccam912/evo-islands-go/pkg/protocol"
	"github.com/maccam912/evo-islands-go/pkg/simulation"
	"github.com/maccam912/evo-islands-go/pkg/workerconfig"
)

// client talks to one coordinator over HTTP, retrying transient failures
// with a fixed backoff. A result dropped after exhausting retries is lost;
// there is no local queue.
type client struct {
	cfg        workerconfig.Config
	httpClient *http.Client
	clientID   uuid.UUID
}

func newClient(cfg workerconfig.Config) *client {
	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		clientID:   uuid.New(),
	}
}

func (c *client) requestWork() (protocol.WorkAssignment, error) {
	reqBody := protocol.WorkRequest{
		ClientID:        c.clientID,
		ProtocolVersion: protocol.ProtocolVersion,
		ClientVersion:   c.cfg.ClientVersion,
	}

	var assignment protocol.WorkAssignment
	err := c.postWithRetry("/work/request", reqBody, &assignment)
	return assignment, err
}

func (c *client) submitResults(workID uuid.UUID, results []simulation.SurvivalResult, stepsCompleted int) error {
	wire := make([]protocol.SurvivalResult, 0, len(results))
	for _, r := range results {
		genomeID, err := uuid.Parse(r.LineageID)
		if err != nil {
			return fmt.Errorf("lineage id %q is not a uuid: %w", r.LineageID, err)
		}
		wire = append(wire, protocol.SurvivalResult{
			GenomeID:       genomeID,
			Survived:       uint32(r.Survived),
			TotalSpawned:   uint32(r.TotalSpawned),
			AvgLifespan:    r.AvgLifespan,
			TotalFoodEaten: uint32(r.TotalFoodEaten),
		})
	}

	submitReq := protocol.SubmitRequest{
		WorkID:          workID,
		ClientID:        c.clientID,
		SurvivalResults: wire,
		StepsCompleted:  uint32(stepsCompleted),
	}

	return c.postWithRetry("/work/submit", submitReq, nil)
}

// postWithRetry posts body as JSON to path and decodes the response into
// out (skipped if out is nil), retrying up to cfg.MaxRetries times with a
// fixed backoff between attempts.
func (c *client) postWithRetry(path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(c.cfg.RetryBackoff)
		}

		resp, err := c.httpClient.Post(c.cfg.CoordinatorURL+path, "application/json", bytes.NewReader(payload))
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("%s: server error %d", path, resp.StatusCode)
			continue
		}
		if resp.StatusCode >= 400 {
			var errBody struct {
				Error string `json:"error"`
			}
			json.NewDecoder(resp.Body).Decode(&errBody)
			resp.Body.Close()
			return fmt.Errorf("%s: %d %s", path, resp.StatusCode, errBody.Error)
		}

		var decodeErr error
		if out != nil {
			decodeErr = json.NewDecoder(resp.Body).Decode(out)
		}
		resp.Body.Close()
		if decodeErr != nil {
			return fmt.Errorf("decode response: %w", decodeErr)
		}
		return nil
	}
	return fmt.Errorf("%s: exhausted %d retries: %w", path, c.cfg.MaxRetries, lastErr)
}

func genomeFromTraitSet(t protocol.TraitSet) genome.Genome {
	return genome.New(t.Strength, t.Speed, t.Size, t.Efficiency, t.Reproduction)
}
