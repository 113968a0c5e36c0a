package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mockview/mockview/internal/client/api"
)

// StartInterview opens a session and shows the first question.
func (a *App) StartInterview(ctx context.Context) error {
	jobRole, err := GetSimpleText(a.reader, "Job role (empty for your profile default)", os.Stdout)
	if err != nil {
		return err
	}
	skillLevel, err := GetSimpleText(a.reader, "Skill level (empty for your profile default)", os.Stdout)
	if err != nil {
		return err
	}
	count, err := GetNumber(a.reader, "Number of questions (1-10, empty for 5)", 0, os.Stdout)
	if err != nil {
		printlnFn(err)
		return err
	}

	res, err := a.client.StartInterview(ctx, jobRole, skillLevel, count)
	if err != nil {
		printlnFn("Failed to start interview:", err)
		return err
	}

	a.sessionID = res.SessionID
	a.questions = res.Questions
	a.nextQuestion = 0

	printlnFn(fmt.Sprintf("Session %s started: %d questions for %s (%s).",
		res.SessionID, res.TotalQuestions, res.JobRole, res.SkillLevel))
	a.showNextQuestion()
	return nil
}

// AnswerQuestion submits a typed answer to the current question.
func (a *App) AnswerQuestion(ctx context.Context) error {
	q, ok := a.currentQuestion()
	if !ok {
		return nil
	}

	answer, err := GetMultiline(a.reader, "Your answer", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.client.SubmitAnswer(ctx, a.sessionID, q.ID, q.Question, answer)
	if err != nil {
		printlnFn("Failed to submit answer:", err)
		return err
	}

	a.printEvaluation(&res.Evaluation)
	a.nextQuestion++
	a.showNextQuestion()
	return nil
}

// VoiceAnswer submits a spoken-answer transcript to the current question.
func (a *App) VoiceAnswer(ctx context.Context) error {
	q, ok := a.currentQuestion()
	if !ok {
		return nil
	}

	transcript, err := GetMultiline(a.reader, "Transcript of your spoken answer", os.Stdout)
	if err != nil {
		return err
	}
	duration, err := GetNumber(a.reader, "Recording length in seconds (empty for 0)", 0, os.Stdout)
	if err != nil {
		printlnFn(err)
		return err
	}

	res, err := a.client.SubmitVoiceAnswer(ctx, a.sessionID, q.ID, q.Question, transcript, float64(duration))
	if err != nil {
		printlnFn("Failed to submit voice answer:", err)
		return err
	}

	a.printEvaluation(&res.Evaluation)
	a.nextQuestion++
	a.showNextQuestion()
	return nil
}

// InterviewFeedback completes the session and prints the final report.
func (a *App) InterviewFeedback(ctx context.Context) error {
	sessionID := a.sessionID
	if sessionID == "" {
		id, err := GetSimpleText(a.reader, "Session id", os.Stdout)
		if err != nil {
			return err
		}
		sessionID = id
	}
	if sessionID == "" {
		printlnFn("No interview session. Run start first.")
		return nil
	}

	res, err := a.client.InterviewFeedback(ctx, sessionID)
	if err != nil {
		printlnFn("Failed to get feedback:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Interview %s (%s, %s)", res.SessionID, res.JobRole, res.SkillLevel))
	printlnFn(fmt.Sprintf("Overall score: %.2f", res.OverallScore))
	for _, q := range res.Questions {
		if s, ok := res.Scores[q.ID]; ok {
			printlnFn(fmt.Sprintf("  %d. %-60.60s %.1f", q.Order, q.Question, s.Score))
		}
	}

	a.sessionID = ""
	a.questions = nil
	a.nextQuestion = 0
	return nil
}

func (a *App) currentQuestion() (*api.Question, bool) {
	if a.sessionID == "" {
		printlnFn("No interview session. Run start first.")
		return nil, false
	}
	if a.nextQuestion >= len(a.questions) {
		printlnFn("All questions answered. Run feedback to finish.")
		return nil, false
	}
	return &a.questions[a.nextQuestion], true
}

func (a *App) showNextQuestion() {
	if a.nextQuestion >= len(a.questions) {
		if a.sessionID != "" {
			printlnFn("All questions answered. Run feedback to finish.")
		}
		return
	}
	q := a.questions[a.nextQuestion]
	printlnFn(fmt.Sprintf("Question %d/%d: %s", a.nextQuestion+1, len(a.questions), q.Question))
}

func (a *App) printEvaluation(e *api.Evaluation) {
	printlnFn(fmt.Sprintf("Score: %.1f (relevance %.1f, grammar %.1f, completeness %.1f)",
		e.OverallScore, e.Relevance.Score, e.Grammar.Score, e.Completeness.Score))
	if len(e.Relevance.MatchedKeywords) > 0 {
		printlnFn("Matched keywords:", strings.Join(e.Relevance.MatchedKeywords, ", "))
	}
	for _, f := range e.Feedback {
		printlnFn("  -", f)
	}
}
