package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/logvault/logvault/internal/model"
)

// ObjectKey builds the storage key for one log artifact:
// {level_lowercase}/{owner}/{id}_{filename}. Grouping by severity then owner
// keeps prefix-based bulk operations possible for external tooling. The key
// is persisted on the record and never recomputed afterwards.
func ObjectKey(level model.Level, owner string, id uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%s/%s_%s", strings.ToLower(level.String()), owner, id, filename)
}
