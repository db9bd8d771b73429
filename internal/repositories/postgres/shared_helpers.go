package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// handleDBError wraps unexpected storage errors with the failed operation.
// Known faults (not-found, duplicate key) are translated by the callers into
// repository sentinels before reaching this.
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s failed: %w", operation, err)
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// applyPagination clamps limit/offset to sane bounds.
func applyPagination(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	query = query.Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
