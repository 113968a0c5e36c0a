package cli

import (
	"context"
	"os"
	"strings"
)

var interviewTips = []string{
	"Research the company and the role before the interview.",
	"Use the STAR method (Situation, Task, Action, Result) for behavioral questions.",
	"Back up claims with concrete numbers: team size, latency, revenue.",
	"Prepare two or three questions to ask the interviewer.",
	"Practice answering out loud, not just in your head.",
	"Keep answers to two or three minutes; let the interviewer dig deeper.",
	"It is fine to pause and think before answering.",
	"Send a short thank-you note within a day of the interview.",
}

// ShowTips prints general interview preparation advice.
func (a *App) ShowTips() {
	for _, tip := range interviewTips {
		printlnFn("  -", tip)
	}
}

var cannedReplies = []struct {
	keywords []string
	reply    string
}{
	{[]string{"nervous", "anxious", "scared"},
		"Nerves are normal. Run a few mock interviews here first; familiarity with the format takes most of the edge off."},
	{[]string{"salary", "compensation", "pay"},
		"Give a researched range rather than a single number, and let the interviewer anchor first when you can."},
	{[]string{"weakness", "weaknesses"},
		"Pick a real but non-fatal weakness and pair it with what you are doing about it."},
	{[]string{"resume", "cv"},
		"Keep it to one page, lead with impact, and run it through the resume analyzer to check keyword coverage."},
	{[]string{"question", "questions"},
		"Start a mock interview from the dashboard to practice role-specific questions with instant scoring."},
}

// Chat reads one message and answers with canned coaching guidance.
func (a *App) Chat(ctx context.Context) error {
	msg, err := GetSimpleText(a.reader, "You", os.Stdout)
	if err != nil {
		return err
	}

	lower := strings.ToLower(msg)
	for _, c := range cannedReplies {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				printlnFn("Coach:", c.reply)
				return nil
			}
		}
	}

	printlnFn("Coach: Try a mock interview or a fluency test from the dashboard, or ask me about nerves, salary talks, or your resume.")
	return nil
}
