package mysql

import (
	"database/sql"
	"fmt"

	"task-time-tracker/internal/auth/repository"
	"task-time-tracker/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a MySQL-backed Repository for the auth domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("auth/repository/mysql: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/mysql.%s", method)
}
