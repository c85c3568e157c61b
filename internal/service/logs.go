// Package service holds the ingestion and query orchestration. Storage and
// metadata access come in as interfaces so tests can substitute fakes.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/logvault/logvault/internal/apperr"
	"github.com/logvault/logvault/internal/auth"
	"github.com/logvault/logvault/internal/model"
	"github.com/logvault/logvault/internal/repository"
	"github.com/logvault/logvault/internal/storage"
)

// PresignTTL bounds how long minted access URLs stay valid.
const PresignTTL = 5 * time.Minute

// BlobStore is the object storage surface the log service needs.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	PresignDownload(ctx context.Context, key string, ttl time.Duration, filename string) (string, error)
}

// LogStore is the metadata surface the log service needs.
type LogStore interface {
	Insert(ctx context.Context, rec *model.LogRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.LogRecord, error)
	List(ctx context.Context, f repository.LogFilter) ([]model.LogRecord, error)
	CountByLevel(ctx context.Context, scope auth.Scope) ([]model.LevelCount, error)
}

// IngestInput carries one artifact into Ingest.
type IngestInput struct {
	Filename    string
	ContentType string
	Data        []byte
	Level       string
	Owner       string
}

// LogService implements the ingestion and query paths over injected
// collaborators; it keeps no state of its own.
type LogService struct {
	logs       LogStore
	blobs      BlobStore
	authorizer auth.Authorizer
}

func NewLogService(logs LogStore, blobs BlobStore, authorizer auth.Authorizer) *LogService {
	return &LogService{logs: logs, blobs: blobs, authorizer: authorizer}
}

// Ingest validates the input, writes the blob, then records metadata.
// The blob write comes first: if it fails no row is created. A metadata
// failure after a successful write leaves the blob orphaned; there is no
// rollback between the two stores.
func (s *LogService) Ingest(ctx context.Context, in IngestInput) (uuid.UUID, error) {
	if len(in.Data) == 0 {
		return uuid.Nil, fmt.Errorf("missing file: %w", apperr.ErrValidation)
	}
	if strings.TrimSpace(in.Owner) == "" {
		return uuid.Nil, fmt.Errorf("missing owner: %w", apperr.ErrValidation)
	}
	level, err := model.ParseLevel(in.Level)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%v: %w", err, apperr.ErrValidation)
	}

	id := uuid.New()
	key := storage.ObjectKey(level, in.Owner, id, in.Filename)

	if err := s.blobs.Put(ctx, key, in.Data, in.ContentType); err != nil {
		return uuid.Nil, fmt.Errorf("put %s: %w: %v", key, apperr.ErrStorage, err)
	}

	rec := &model.LogRecord{
		ID:         id,
		Filename:   in.Filename,
		Level:      level,
		Owner:      in.Owner,
		StorageKey: key,
	}
	if err := s.logs.Insert(ctx, rec); err != nil {
		// Blob stays behind; orphans are an accepted gap.
		return uuid.Nil, err
	}
	return id, nil
}

// List returns records visible to identity, newest first, at most
// repository.ListLimit. An empty or "ALL" level filter means no level
// restriction; search is a case-insensitive filename substring.
func (s *LogService) List(ctx context.Context, identity, levelFilter, search string) ([]model.LogRecord, error) {
	f := repository.LogFilter{
		Scope:  s.authorizer.ScopeFor(identity),
		Search: search,
	}
	if levelFilter != "" && !strings.EqualFold(levelFilter, model.LevelAll) {
		level, err := model.ParseLevel(levelFilter)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, apperr.ErrValidation)
		}
		f.Level = level
	}
	return s.logs.List(ctx, f)
}

// LevelCounts returns per-level counts for the records visible to identity.
func (s *LogService) LevelCounts(ctx context.Context, identity string) ([]model.LevelCount, error) {
	return s.logs.CountByLevel(ctx, s.authorizer.ScopeFor(identity))
}

// AccessURL mints a presigned view URL for the record's stored key.
// No ownership check happens here; any caller with the id gets a URL.
func (s *LogService) AccessURL(ctx context.Context, id uuid.UUID) (string, error) {
	rec, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	url, err := s.blobs.PresignGet(ctx, rec.StorageKey, PresignTTL)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w: %v", rec.StorageKey, apperr.ErrStorage, err)
	}
	return url, nil
}

// DownloadURL is AccessURL with an attachment disposition carrying the
// original filename.
func (s *LogService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	rec, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	url, err := s.blobs.PresignDownload(ctx, rec.StorageKey, PresignTTL, rec.Filename)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w: %v", rec.StorageKey, apperr.ErrStorage, err)
	}
	return url, nil
}
