package mysql

import (
	"database/sql"
	"fmt"

	"task-time-tracker/internal/dashboard/repository"
	"task-time-tracker/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a MySQL-backed read-side Repository for the dashboard domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("dashboard/repository/mysql: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dashboard/repository/mysql.%s", method)
}
