package repomanager

import (
	"context"
	"database/sql"

	"github.com/mockview/mockview/internal/dbx"
	"github.com/mockview/mockview/internal/server/repositories/fluencytests"
	"github.com/mockview/mockview/internal/server/repositories/interviews"
	"github.com/mockview/mockview/internal/server/repositories/resumes"
	"github.com/mockview/mockview/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Interviews(db dbx.DBTX) interviews.Repository
	FluencyTests(db dbx.DBTX) fluencytests.Repository
	Resumes(db dbx.DBTX) resumes.Repository
}
