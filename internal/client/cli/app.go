package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/mockview/mockview/internal/client/api"
	"github.com/mockview/mockview/internal/client/config"
	"github.com/mockview/mockview/internal/client/session"
	"github.com/mockview/mockview/internal/logging"
)

// App wires the API client, the session store and the page machine
// behind the REPL commands.
type App struct {
	config *config.Config
	client *api.Client
	store  session.Store
	logger logging.Logger
	reader *bufio.Reader
	page   Page

	// interview state carried between commands on the interview page
	sessionID     string
	questions     []api.Question
	nextQuestion  int
	lastResumeID  string
	fluencyTestID string
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	store, err := session.OpenSQLite(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		config: cfg,
		store:  store,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		page:   PageWelcome,
	}

	client := api.New(cfg.APIBaseURL, store, logger)
	client.OnUnauthorized = func() {
		a.page = PageLogin
		printlnFn("Session expired, please log in again.")
	}
	a.client = client

	return a, nil
}

func (a *App) Page() Page {
	return a.page
}

// Navigate applies a user-driven page transition.
func (a *App) Navigate(target string) {
	a.page = Transition(a.page, target)
}

func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Warn(ctx, "failed to close session store", "error", err)
		}
	}()

	authenticated, err := a.store.Authenticated(ctx)
	if err != nil {
		return err
	}
	if authenticated {
		a.page = PageDashboard
		if user, err := a.store.User(ctx); err == nil && user != nil {
			printlnFn("Welcome back, " + user.Name + "!")
		}
	}

	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
	return nil
}
