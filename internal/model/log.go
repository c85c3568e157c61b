package model

import (
	"time"

	"github.com/google/uuid"
)

// LogRecord is the metadata row for one ingested log artifact.
// Records are append-only: created once at ingestion, never updated or deleted.
type LogRecord struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Filename   string    `db:"filename" json:"filename"`
	Level      Level     `db:"level" json:"level"`
	Owner      string    `db:"owner" json:"owner"`
	CreatedAt  time.Time `db:"created_at" json:"timestamp"`
	StorageKey string    `db:"storage_key" json:"-"`
}

// LevelCount is one row of the per-level aggregation.
type LevelCount struct {
	Level Level `json:"name"`
	Count int64 `json:"value"`
}
