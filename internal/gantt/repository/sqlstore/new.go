package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"project-management/internal/database"
	"project-management/internal/gantt/repository"
	"project-management/pkg/log"
)

type implRepository struct {
	db      *sql.DB
	dialect database.Dialect
	l       log.Logger
}

// New creates a database/sql backed Repository for the gantt domain.
// Queries are written with '?' placeholders and rebound for the dialect.
func New(db *sql.DB, dialect database.Dialect, l log.Logger) repository.Repository {
	if db == nil {
		panic("gantt/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, dialect: dialect, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("internal.gantt.repository.sqlstore.%s", method)
}

// matchable reports whether id can match a key of the dialect's schema. PostgreSQL keys are
// UUID columns and reject any other literal with an error instead of returning no rows.
func (r *implRepository) matchable(id string) bool {
	if r.dialect != database.Postgres {
		return true
	}
	_, err := uuid.Parse(id)
	return err == nil
}
