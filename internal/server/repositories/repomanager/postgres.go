// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mockview/mockview/internal/dbx"
	"github.com/mockview/mockview/internal/server/migrations"
	"github.com/mockview/mockview/internal/server/repositories/fluencytests"
	"github.com/mockview/mockview/internal/server/repositories/interviews"
	"github.com/mockview/mockview/internal/server/repositories/resumes"
	"github.com/mockview/mockview/internal/server/repositories/users"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Interviews returns an interviews.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Interviews(db dbx.DBTX) interviews.Repository {
	return interviews.NewPostgresRepository(db)
}

// FluencyTests returns a fluencytests.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) FluencyTests(db dbx.DBTX) fluencytests.Repository {
	return fluencytests.NewPostgresRepository(db)
}

// Resumes returns a resumes.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Resumes(db dbx.DBTX) resumes.Repository {
	return resumes.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
