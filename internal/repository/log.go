package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logvault/logvault/internal/apperr"
	"github.com/logvault/logvault/internal/auth"
	"github.com/logvault/logvault/internal/model"
)

// ListLimit caps every list query. Callers needing more page externally.
const ListLimit = 50

// LogFilter is the structured predicate for list queries. All clauses that
// are present must hold simultaneously.
type LogFilter struct {
	Scope  auth.Scope
	Level  model.Level // empty means no level restriction
	Search string      // case-insensitive filename substring
}

// LogRepository persists and reads log metadata rows.
type LogRepository struct {
	pool *pgxpool.Pool
}

func NewLogRepository(pool *pgxpool.Pool) *LogRepository {
	return &LogRepository{pool: pool}
}

// Insert stores a new record and fills in its CreatedAt.
func (r *LogRepository) Insert(ctx context.Context, rec *model.LogRecord) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO logs (id, filename, level, owner, storage_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		rec.ID,
		rec.Filename,
		rec.Level,
		rec.Owner,
		rec.StorageKey,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert log: %w: %v", apperr.ErrMetadataStore, err)
	}
	return nil
}

// GetByID returns one record by id, or apperr.ErrNotFound.
func (r *LogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.LogRecord, error) {
	var rec model.LogRecord
	err := r.pool.QueryRow(ctx, `
		SELECT id, filename, level, owner, created_at, storage_key
		FROM logs WHERE id = $1`, id).Scan(
		&rec.ID,
		&rec.Filename,
		&rec.Level,
		&rec.Owner,
		&rec.CreatedAt,
		&rec.StorageKey,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("log %s: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("get log: %w: %v", apperr.ErrMetadataStore, err)
	}
	return &rec, nil
}

// buildListQuery compiles the filter into one parameterized query. Clauses
// are conjunctive; results are newest first and capped at ListLimit.
func buildListQuery(f LogFilter) (string, []any) {
	var b strings.Builder
	b.WriteString(`SELECT id, filename, level, owner, created_at, storage_key FROM logs`)

	var conds []string
	var args []any
	if !f.Scope.Global {
		args = append(args, f.Scope.Owner)
		conds = append(conds, fmt.Sprintf("owner = $%d", len(args)))
	}
	if f.Level != "" {
		args = append(args, f.Level)
		conds = append(conds, fmt.Sprintf("level = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("filename ILIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	fmt.Fprintf(&b, " ORDER BY created_at DESC LIMIT %d", ListLimit)
	return b.String(), args
}

// List returns records matching the filter, newest first, at most ListLimit.
func (r *LogRepository) List(ctx context.Context, f LogFilter) ([]model.LogRecord, error) {
	query, args := buildListQuery(f)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w: %v", apperr.ErrMetadataStore, err)
	}
	defer rows.Close()

	var list []model.LogRecord
	for rows.Next() {
		var rec model.LogRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Filename,
			&rec.Level,
			&rec.Owner,
			&rec.CreatedAt,
			&rec.StorageKey,
		); err != nil {
			return nil, fmt.Errorf("scan log: %w: %v", apperr.ErrMetadataStore, err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list logs: %w: %v", apperr.ErrMetadataStore, err)
	}
	return list, nil
}

// CountByLevel returns one count per level present in the scoped set.
// Levels with no records are omitted.
func (r *LogRepository) CountByLevel(ctx context.Context, scope auth.Scope) ([]model.LevelCount, error) {
	query := `SELECT level, COUNT(*) FROM logs GROUP BY level`
	var args []any
	if !scope.Global {
		query = `SELECT level, COUNT(*) FROM logs WHERE owner = $1 GROUP BY level`
		args = append(args, scope.Owner)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by level: %w: %v", apperr.ErrMetadataStore, err)
	}
	defer rows.Close()

	var counts []model.LevelCount
	for rows.Next() {
		var c model.LevelCount
		if err := rows.Scan(&c.Level, &c.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w: %v", apperr.ErrMetadataStore, err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count by level: %w: %v", apperr.ErrMetadataStore, err)
	}
	return counts, nil
}
