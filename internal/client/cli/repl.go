package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Page() Page
	Navigate(target string)

	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error

	StartInterview(ctx context.Context) error
	AnswerQuestion(ctx context.Context) error
	VoiceAnswer(ctx context.Context) error
	InterviewFeedback(ctx context.Context) error

	StartFluencyTest(ctx context.Context) error
	AnalyzeFluency(ctx context.Context) error
	FluencyScore(ctx context.Context) error

	BuildResume(ctx context.Context) error
	ResumeTemplates(ctx context.Context) error
	ExportResume(ctx context.Context) error
	AnalyzeResume(ctx context.Context) error
	ResumeFeedback(ctx context.Context) error

	ShowStats(ctx context.Context) error
	ShowHistory(ctx context.Context) error
	ShowTrends(ctx context.Context) error
	ShowTips()
	Chat(ctx context.Context) error
}

// runREPL starts a read-eval-print loop over the page machine.
//
// The prompt shows the active page. Each page accepts its own command set
// plus the shared commands "help", "back", "exit" and "quit". Feature pages
// are selected from the dashboard by name, e.g. "mock-interview" or
// "progress". Errors returned by command handlers are ignored here; handlers
// print their own failures so the loop stays focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mockview> %s > ", a.Page()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn(helpText(a.Page()))
			continue
		case "back":
			a.Navigate("back")
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !dispatch(ctx, a, cmd) {
			printlnFn("Unknown command:", cmd)
		}
	}
}

// dispatch runs cmd against the active page and reports whether it was a
// known command there.
func dispatch(ctx context.Context, a execIface, cmd string) bool {
	switch a.Page() {
	case PageWelcome:
		switch cmd {
		case "get-started", "login":
			a.Navigate("get-started")
			return true
		}

	case PageLogin:
		switch cmd {
		case "login":
			if a.Login(ctx) == nil {
				a.Navigate(string(PageDashboard))
			}
			return true
		case "signup":
			if a.Signup(ctx) == nil {
				a.Navigate(string(PageDashboard))
			}
			return true
		}

	case PageDashboard:
		switch cmd {
		case "mock-interview", "interview":
			a.Navigate(string(PageMockInterview))
			return true
		case "resume-builder":
			a.Navigate(string(PageResumeBuilder))
			return true
		case "resume-analyzer":
			a.Navigate(string(PageResumeAnalyze))
			return true
		case "fluency-tester", "fluency":
			a.Navigate(string(PageFluencyTester))
			return true
		case "chatbox":
			a.Navigate(string(PageChatbox))
			return true
		case "progress":
			a.Navigate(string(PageProgress))
			return true
		case "tips":
			a.Navigate(string(PageTips))
			return true
		case "profile":
			_ = a.Profile(ctx)
			return true
		case "update":
			_ = a.UpdateProfile(ctx)
			return true
		case "logout":
			_ = a.Logout(ctx)
			a.Navigate("back")
			return true
		}

	case PageMockInterview:
		switch cmd {
		case "start":
			_ = a.StartInterview(ctx)
			return true
		case "answer":
			_ = a.AnswerQuestion(ctx)
			return true
		case "voice":
			_ = a.VoiceAnswer(ctx)
			return true
		case "feedback":
			_ = a.InterviewFeedback(ctx)
			return true
		}

	case PageFluencyTester:
		switch cmd {
		case "start":
			_ = a.StartFluencyTest(ctx)
			return true
		case "analyze":
			_ = a.AnalyzeFluency(ctx)
			return true
		case "score":
			_ = a.FluencyScore(ctx)
			return true
		}

	case PageResumeBuilder:
		switch cmd {
		case "build":
			_ = a.BuildResume(ctx)
			return true
		case "templates":
			_ = a.ResumeTemplates(ctx)
			return true
		case "export":
			_ = a.ExportResume(ctx)
			return true
		}

	case PageResumeAnalyze:
		switch cmd {
		case "analyze":
			_ = a.AnalyzeResume(ctx)
			return true
		case "feedback":
			_ = a.ResumeFeedback(ctx)
			return true
		}

	case PageProgress:
		switch cmd {
		case "stats":
			_ = a.ShowStats(ctx)
			return true
		case "history":
			_ = a.ShowHistory(ctx)
			return true
		case "trends":
			_ = a.ShowTrends(ctx)
			return true
		}

	case PageTips:
		if cmd == "show" {
			a.ShowTips()
			return true
		}

	case PageChatbox:
		if cmd == "chat" {
			_ = a.Chat(ctx)
			return true
		}
	}

	return false
}

func helpText(p Page) string {
	switch p {
	case PageWelcome:
		return "Available commands: get-started, exit"
	case PageLogin:
		return "Available commands: login, signup, back, exit"
	case PageDashboard:
		return "Available commands: mock-interview, resume-builder, resume-analyzer, fluency-tester, chatbox, progress, tips, profile, update, logout, exit"
	case PageMockInterview:
		return "Available commands: start, answer, voice, feedback, back, exit"
	case PageFluencyTester:
		return "Available commands: start, analyze, score, back, exit"
	case PageResumeBuilder:
		return "Available commands: build, templates, export, back, exit"
	case PageResumeAnalyze:
		return "Available commands: analyze, feedback, back, exit"
	case PageProgress:
		return "Available commands: stats, history, trends, back, exit"
	case PageTips:
		return "Available commands: show, back, exit"
	case PageChatbox:
		return "Available commands: chat, back, exit"
	}
	return "Available commands: help, exit"
}
