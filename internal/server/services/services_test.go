package services

// Shared fakes for the service tests. The repository manager hands out
// hand-written fakes so tests can script repository behavior without a
// database; sqlmock supplies the *sql.DB needed by transactional paths.

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mockview/mockview/internal/dbx"
	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/server/questions"
	fluencyrepo "github.com/mockview/mockview/internal/server/repositories/fluencytests"
	interviewsrepo "github.com/mockview/mockview/internal/server/repositories/interviews"
	resumesrepo "github.com/mockview/mockview/internal/server/repositories/resumes"
	usersrepo "github.com/mockview/mockview/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func loadBank(t *testing.T) *questions.Bank {
	t.Helper()
	bank, err := questions.Load()
	if err != nil {
		t.Fatalf("questions.Load error: %v", err)
	}
	return bank
}

type fakeUsersRepo struct {
	created *models.User

	createErr  error
	byEmailOut *models.User
	byEmailErr error
	byIDOut    *models.User
	byIDErr    error

	updated   *models.User
	updateErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = u
	return u, nil
}

type fakeInterviewsRepo struct {
	created *models.InterviewSession
	updated *models.InterviewSession

	createErr error
	getOut    *models.InterviewSession
	getErr    error
	updateErr error
	listOut   []*models.InterviewSession
	listErr   error
	scoresOut []interviewsrepo.ScorePoint
	scoresErr error
	sinceArg  time.Time
}

func (f *fakeInterviewsRepo) Create(ctx context.Context, s *models.InterviewSession) error {
	f.created = s
	return f.createErr
}

func (f *fakeInterviewsRepo) GetByID(ctx context.Context, id string) (*models.InterviewSession, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeInterviewsRepo) Update(ctx context.Context, s *models.InterviewSession) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = s
	return nil
}

func (f *fakeInterviewsRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*models.InterviewSession, error) {
	return f.listOut, f.listErr
}

func (f *fakeInterviewsRepo) ScoresSince(ctx context.Context, userID string, since time.Time) ([]interviewsrepo.ScorePoint, error) {
	f.sinceArg = since
	return f.scoresOut, f.scoresErr
}

type fakeFluencyRepo struct {
	created *models.FluencyTest
	updated *models.FluencyTest

	createErr error
	getOut    *models.FluencyTest
	getErr    error
	updateErr error
	listOut   []*models.FluencyTest
	listErr   error
	scoresOut []interviewsrepo.ScorePoint
	scoresErr error
}

func (f *fakeFluencyRepo) Create(ctx context.Context, test *models.FluencyTest) error {
	f.created = test
	return f.createErr
}

func (f *fakeFluencyRepo) GetByID(ctx context.Context, id string) (*models.FluencyTest, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeFluencyRepo) Update(ctx context.Context, test *models.FluencyTest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = test
	return nil
}

func (f *fakeFluencyRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*models.FluencyTest, error) {
	return f.listOut, f.listErr
}

func (f *fakeFluencyRepo) ScoresSince(ctx context.Context, userID string, since time.Time) ([]interviewsrepo.ScorePoint, error) {
	return f.scoresOut, f.scoresErr
}

type fakeResumesRepo struct {
	created *models.Resume

	createErr error
	getOut    *models.Resume
	getErr    error
	listOut   []*models.Resume
	listErr   error
}

func (f *fakeResumesRepo) Create(ctx context.Context, r *models.Resume) error {
	f.created = r
	return f.createErr
}

func (f *fakeResumesRepo) GetByID(ctx context.Context, id string) (*models.Resume, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeResumesRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Resume, error) {
	return f.listOut, f.listErr
}

type fakeRepoManager struct {
	users      *fakeUsersRepo
	interviews *fakeInterviewsRepo
	fluency    *fakeFluencyRepo
	resumes    *fakeResumesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.users }
func (m *fakeRepoManager) Interviews(db dbx.DBTX) interviewsrepo.Repository {
	return m.interviews
}
func (m *fakeRepoManager) FluencyTests(db dbx.DBTX) fluencyrepo.Repository { return m.fluency }
func (m *fakeRepoManager) Resumes(db dbx.DBTX) resumesrepo.Repository      { return m.resumes }
