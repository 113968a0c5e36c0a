package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mockview/mockview/internal/client/api"
)

// StartFluencyTest opens a fluency test.
func (a *App) StartFluencyTest(ctx context.Context) error {
	res, err := a.client.StartFluencyTest(ctx)
	if err != nil {
		printlnFn("Failed to start fluency test:", err)
		return err
	}

	a.fluencyTestID = res.TestID
	printlnFn(fmt.Sprintf("Fluency test %s started.", res.TestID))
	printlnFn("Speak for about a minute, then run analyze with your transcript.")
	return nil
}

// AnalyzeFluency submits a transcript for the open test.
func (a *App) AnalyzeFluency(ctx context.Context) error {
	if a.fluencyTestID == "" {
		printlnFn("No fluency test. Run start first.")
		return nil
	}

	transcript, err := GetMultiline(a.reader, "Transcript of your speech", os.Stdout)
	if err != nil {
		return err
	}
	duration, err := GetNumber(a.reader, "Recording length in seconds (empty for 60)", 60, os.Stdout)
	if err != nil {
		printlnFn(err)
		return err
	}

	res, err := a.client.AnalyzeFluency(ctx, a.fluencyTestID, transcript, float64(duration))
	if err != nil {
		printlnFn("Failed to analyze fluency:", err)
		return err
	}

	a.printFluencyResult(res)
	return nil
}

// FluencyScore fetches the stored result of a test by id.
func (a *App) FluencyScore(ctx context.Context) error {
	testID := a.fluencyTestID
	if testID == "" {
		id, err := GetSimpleText(a.reader, "Test id", os.Stdout)
		if err != nil {
			return err
		}
		testID = id
	}
	if testID == "" {
		printlnFn("No fluency test. Run start first.")
		return nil
	}

	res, err := a.client.FluencyScore(ctx, testID)
	if err != nil {
		printlnFn("Failed to get score:", err)
		return err
	}

	a.printFluencyResult(res)
	return nil
}

func (a *App) printFluencyResult(res *api.FluencyResult) {
	printlnFn(fmt.Sprintf("Overall %.1f: fluency %.1f, pronunciation %.1f, grammar %.1f",
		res.OverallScore, res.FluencyScore, res.PronunciationScore, res.GrammarScore))
	printlnFn(fmt.Sprintf("Pace %.0f wpm, %d filler words, %d pauses",
		res.WPM, res.FillerWordCount, res.PauseCount))
	for _, f := range res.Feedback {
		printlnFn("  -", f)
	}
}
