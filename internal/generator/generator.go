// Package generator synthesizes fake log artifacts to populate the demo.
// Entries flow through the regular ingestion path so blob and metadata stay
// consistent with client uploads.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/logvault/logvault/internal/model"
	"github.com/logvault/logvault/internal/service"
)

var owners = []string{"admin", "client_user"}

// Ingestor is the slice of LogService the generator needs.
type Ingestor interface {
	Ingest(ctx context.Context, in service.IngestInput) (uuid.UUID, error)
}

// Entry is the synthesized payload uploaded as the artifact body.
type Entry struct {
	LogID          string `json:"log_id"`
	Owner          string `json:"owner"`
	Timestamp      string `json:"timestamp"`
	Level          string `json:"level"`
	Service        string `json:"service"`
	Message        string `json:"message"`
	SimulationData int    `json:"simulation_data"`
}

// Generator emits one fake log per Emit call.
type Generator struct {
	ingest Ingestor
	logger zerolog.Logger
}

func New(ingest Ingestor, logger zerolog.Logger) *Generator {
	return &Generator{ingest: ingest, logger: logger}
}

// Synthesize builds a random entry and its filename.
func Synthesize() (Entry, string) {
	owner := owners[rand.IntN(len(owners))]
	levels := model.Levels()
	level := levels[rand.IntN(len(levels))]

	svc, msg := "system-monitor", "CPU usage spike detected"
	if owner == "client_user" {
		svc, msg = "payment-gateway", "Transaction threshold exceeded"
	}

	id := uuid.New()
	entry := Entry{
		LogID:          id.String(),
		Owner:          owner,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Level:          level.String(),
		Service:        svc,
		Message:        msg,
		SimulationData: 100 + rand.IntN(900),
	}
	return entry, fmt.Sprintf("%s_%s.json", owner, id)
}

// Emit synthesizes one entry and ingests it.
func (g *Generator) Emit(ctx context.Context) error {
	entry, filename := Synthesize()
	data, err := json.MarshalIndent(entry, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	id, err := g.ingest.Ingest(ctx, service.IngestInput{
		Filename:    filename,
		ContentType: "application/json",
		Data:        data,
		Level:       entry.Level,
		Owner:       entry.Owner,
	})
	if err != nil {
		return err
	}
	g.logger.Info().
		Str("log_id", id.String()).
		Str("level", entry.Level).
		Str("owner", entry.Owner).
		Msg("stored synthetic log")
	return nil
}
