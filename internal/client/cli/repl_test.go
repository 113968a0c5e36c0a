package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched and walks the real
// page machine on Navigate.
type stubExec struct {
	page     Page
	calls    []string
	loginErr error
}

func (s *stubExec) Page() Page { return s.page }

func (s *stubExec) Navigate(target string) {
	s.page = Transition(s.page, target)
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) Signup(ctx context.Context) error { return s.record("signup") }
func (s *stubExec) Login(ctx context.Context) error {
	s.calls = append(s.calls, "login")
	return s.loginErr
}
func (s *stubExec) Logout(ctx context.Context) error        { return s.record("logout") }
func (s *stubExec) Profile(ctx context.Context) error       { return s.record("profile") }
func (s *stubExec) UpdateProfile(ctx context.Context) error { return s.record("update") }

func (s *stubExec) StartInterview(ctx context.Context) error    { return s.record("start-interview") }
func (s *stubExec) AnswerQuestion(ctx context.Context) error    { return s.record("answer") }
func (s *stubExec) VoiceAnswer(ctx context.Context) error       { return s.record("voice") }
func (s *stubExec) InterviewFeedback(ctx context.Context) error { return s.record("feedback") }

func (s *stubExec) StartFluencyTest(ctx context.Context) error { return s.record("start-fluency") }
func (s *stubExec) AnalyzeFluency(ctx context.Context) error   { return s.record("analyze-fluency") }
func (s *stubExec) FluencyScore(ctx context.Context) error     { return s.record("fluency-score") }

func (s *stubExec) BuildResume(ctx context.Context) error     { return s.record("build") }
func (s *stubExec) ResumeTemplates(ctx context.Context) error { return s.record("templates") }
func (s *stubExec) ExportResume(ctx context.Context) error    { return s.record("export") }
func (s *stubExec) AnalyzeResume(ctx context.Context) error   { return s.record("analyze-resume") }
func (s *stubExec) ResumeFeedback(ctx context.Context) error  { return s.record("resume-feedback") }

func (s *stubExec) ShowStats(ctx context.Context) error   { return s.record("stats") }
func (s *stubExec) ShowHistory(ctx context.Context) error { return s.record("history") }
func (s *stubExec) ShowTrends(ctx context.Context) error  { return s.record("trends") }
func (s *stubExec) ShowTips()                             { _ = s.record("tips") }
func (s *stubExec) Chat(ctx context.Context) error        { return s.record("chat") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })
	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	return &lines
}

func runScript(t *testing.T, s *stubExec, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	runREPL(context.Background(), s, bufio.NewScanner(strings.NewReader(script)))
	return *lines
}

func TestREPL_ExitPrintsGoodbye(t *testing.T) {
	s := &stubExec{page: PageWelcome}
	lines := runScript(t, s, "exit\n")
	assert.Contains(t, lines, "Bye!")
}

func TestREPL_HelpShowsActivePageCommands(t *testing.T) {
	s := &stubExec{page: PageDashboard}
	lines := runScript(t, s, "help\nexit\n")
	assert.Contains(t, lines, helpText(PageDashboard))
}

func TestREPL_LoginFlowReachesDashboard(t *testing.T) {
	s := &stubExec{page: PageWelcome}
	runScript(t, s, "get-started\nlogin\nmock-interview\nstart\nback\nexit\n")

	assert.Equal(t, PageDashboard, s.page)
	assert.Equal(t, []string{"login", "start-interview"}, s.calls)
}

func TestREPL_FailedLoginStaysOnLoginPage(t *testing.T) {
	s := &stubExec{page: PageLogin, loginErr: errors.New("denied")}
	runScript(t, s, "login\nexit\n")
	assert.Equal(t, PageLogin, s.page)
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	s := &stubExec{page: PageDashboard}
	lines := runScript(t, s, "frobnicate\nexit\n")
	assert.Contains(t, lines, "Unknown command: frobnicate")
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	s := &stubExec{page: PageWelcome}
	runScript(t, s, "\n   \nexit\n")
	assert.Empty(t, s.calls)
}

func TestREPL_LogoutDispatches(t *testing.T) {
	s := &stubExec{page: PageDashboard}
	runScript(t, s, "logout\nexit\n")
	assert.Equal(t, []string{"logout"}, s.calls)
}

func TestREPL_ProgressCommands(t *testing.T) {
	s := &stubExec{page: PageProgress}
	runScript(t, s, "stats\nhistory\ntrends\nexit\n")
	assert.Equal(t, []string{"stats", "history", "trends"}, s.calls)
}
