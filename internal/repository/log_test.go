package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logvault/logvault/internal/auth"
	"github.com/logvault/logvault/internal/model"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name     string
		filter   LogFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "global scope no filters",
			filter:   LogFilter{Scope: auth.Scope{Global: true}},
			wantSQL:  "SELECT id, filename, level, owner, created_at, storage_key FROM logs ORDER BY created_at DESC LIMIT 50",
			wantArgs: nil,
		},
		{
			name:     "owner scope",
			filter:   LogFilter{Scope: auth.Scope{Owner: "client_user"}},
			wantSQL:  "SELECT id, filename, level, owner, created_at, storage_key FROM logs WHERE owner = $1 ORDER BY created_at DESC LIMIT 50",
			wantArgs: []any{"client_user"},
		},
		{
			name:     "owner and level",
			filter:   LogFilter{Scope: auth.Scope{Owner: "client_user"}, Level: model.LevelError},
			wantSQL:  "SELECT id, filename, level, owner, created_at, storage_key FROM logs WHERE owner = $1 AND level = $2 ORDER BY created_at DESC LIMIT 50",
			wantArgs: []any{"client_user", model.LevelError},
		},
		{
			name:     "all clauses conjunctive",
			filter:   LogFilter{Scope: auth.Scope{Owner: "client_user"}, Level: model.LevelInfo, Search: "payment"},
			wantSQL:  "SELECT id, filename, level, owner, created_at, storage_key FROM logs WHERE owner = $1 AND level = $2 AND filename ILIKE $3 ORDER BY created_at DESC LIMIT 50",
			wantArgs: []any{"client_user", model.LevelInfo, "%payment%"},
		},
		{
			name:     "global scope with search only",
			filter:   LogFilter{Scope: auth.Scope{Global: true}, Search: "error"},
			wantSQL:  "SELECT id, filename, level, owner, created_at, storage_key FROM logs WHERE filename ILIKE $1 ORDER BY created_at DESC LIMIT 50",
			wantArgs: []any{"%error%"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := buildListQuery(tt.filter)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildListQuery_SearchIsParameterized(t *testing.T) {
	sql, args := buildListQuery(LogFilter{
		Scope:  auth.Scope{Owner: "x"},
		Search: "'; DROP TABLE logs; --",
	})
	assert.NotContains(t, sql, "DROP TABLE")
	assert.Contains(t, args, "%'; DROP TABLE logs; --%")
}
