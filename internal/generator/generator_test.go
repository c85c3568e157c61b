package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logvault/logvault/internal/model"
	"github.com/logvault/logvault/internal/service"
)

type captureIngestor struct {
	in service.IngestInput
}

func (c *captureIngestor) Ingest(_ context.Context, in service.IngestInput) (uuid.UUID, error) {
	c.in = in
	return uuid.New(), nil
}

func TestSynthesize(t *testing.T) {
	for i := 0; i < 50; i++ {
		entry, filename := Synthesize()

		_, err := model.ParseLevel(entry.Level)
		assert.NoError(t, err)
		assert.Contains(t, owners, entry.Owner)
		assert.Equal(t, fmt.Sprintf("%s_%s.json", entry.Owner, entry.LogID), filename)
		assert.GreaterOrEqual(t, entry.SimulationData, 100)
		assert.LessOrEqual(t, entry.SimulationData, 999)

		if entry.Owner == "client_user" {
			assert.Equal(t, "payment-gateway", entry.Service)
		} else {
			assert.Equal(t, "system-monitor", entry.Service)
		}
	}
}

func TestEmit_IngestsValidJSONPayload(t *testing.T) {
	ing := &captureIngestor{}
	g := New(ing, zerolog.Nop())

	require.NoError(t, g.Emit(context.Background()))

	assert.Equal(t, "application/json", ing.in.ContentType)
	assert.NotEmpty(t, ing.in.Owner)

	var entry Entry
	require.NoError(t, json.Unmarshal(ing.in.Data, &entry))
	assert.Equal(t, ing.in.Owner, entry.Owner)
	assert.Equal(t, ing.in.Level, entry.Level)
}
