package postgre

import (
	"database/sql"
	"fmt"

	"nextstep/internal/recommendation/repository"
	"nextstep/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the recommendation domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("recommendation/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("recommendation/repository/postgre.%s", method)
}
