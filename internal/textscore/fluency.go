package textscore

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// fillerWords are scanned as plain substrings of the lowercased transcript,
// so multi-word fillers ("you know", "i mean") count too.
var fillerWords = []string{
	"um", "uh", "like", "you know", "so", "basically", "actually",
	"literally", "right", "okay", "well", "i mean", "sort of", "kind of",
}

var pauseRe = regexp.MustCompile(`\.{2,}|\s{3,}`)

// FillerCount is one filler word with its occurrence count.
type FillerCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FillerAnalysis summarizes filler word usage in a transcript.
type FillerAnalysis struct {
	TotalCount int           `json:"total_count"`
	Details    []FillerCount `json:"details"`
	// Density is filler words per 100 words.
	Density float64 `json:"density"`
}

// PauseAnalysis reports pauses, detected as ellipses or runs of whitespace.
type PauseAnalysis struct {
	Count     int   `json:"count"`
	Locations []int `json:"locations"`
}

// FluencyAnalysis is the complete result of analyzing one transcript.
type FluencyAnalysis struct {
	FluencyScore    float64        `json:"fluency_score"`
	WPM             float64        `json:"wpm"`
	WordCount       int            `json:"word_count"`
	DurationSeconds float64        `json:"duration_seconds"`
	FillerWords     FillerAnalysis `json:"filler_words"`
	Pauses          PauseAnalysis  `json:"pauses"`
	GrammarErrors   []string       `json:"grammar_errors"`
	Feedback        []string       `json:"feedback"`
}

// WordsPerMinute computes speaking pace from a transcript and its audio
// duration, rounded to 2 decimals. Non-positive durations yield 0.
func WordsPerMinute(text string, durationSeconds float64) float64 {
	if durationSeconds <= 0 {
		return 0.0
	}
	minutes := durationSeconds / 60
	return round2(float64(CountWords(text)) / minutes)
}

// AnalyzeFillerWords counts filler word occurrences and their density per
// 100 words.
func AnalyzeFillerWords(text string) FillerAnalysis {
	lower := strings.ToLower(text)

	details := []FillerCount{}
	total := 0
	for _, filler := range fillerWords {
		if n := strings.Count(lower, filler); n > 0 {
			details = append(details, FillerCount{Word: filler, Count: n})
			total += n
		}
	}

	density := 0.0
	if words := CountWords(text); words > 0 {
		density = round2(float64(total) / float64(words) * 100)
	}

	return FillerAnalysis{TotalCount: total, Details: details, Density: density}
}

// DetectPauses finds pauses in a transcript and where they start.
func DetectPauses(text string) PauseAnalysis {
	matches := pauseRe.FindAllStringIndex(text, -1)
	locations := make([]int, 0, len(matches))
	for _, m := range matches {
		locations = append(locations, m[0])
	}
	return PauseAnalysis{Count: len(matches), Locations: locations}
}

// FluencyScore combines pace, fillers, pauses, and grammar findings into a
// 0-100 score. The ideal pace window is 120-150 WPM.
func FluencyScore(wpm float64, fillerCount, pauseCount, grammarErrors, wordCount int) float64 {
	score := 100.0

	switch {
	case wpm < 80:
		score -= (80 - wpm) * 0.3
	case wpm > 180:
		score -= (wpm - 180) * 0.2
	case wpm >= 120 && wpm <= 150:
		score += 5
	}

	if wordCount > 0 {
		words := float64(wordCount)
		score -= float64(fillerCount) / words * 100 * 2
		score -= float64(pauseCount) / words * 100 * 3
		score -= float64(grammarErrors) / words * 100 * 5
	}

	return round2(clamp(score, 0, 100))
}

// AnalyzeFluency runs the full fluency pipeline over a transcript. When no
// duration is supplied, the duration is estimated from an assumed average
// pace of 130 WPM.
func AnalyzeFluency(text string, durationSeconds float64) *FluencyAnalysis {
	wordCount := CountWords(text)

	var wpm float64
	if durationSeconds > 0 {
		wpm = WordsPerMinute(text, durationSeconds)
	} else {
		durationSeconds = float64(wordCount) / 130 * 60
		wpm = 130
	}

	fillers := AnalyzeFillerWords(text)
	pauses := DetectPauses(text)
	grammarErrors := GrammarIssues(text)

	score := FluencyScore(wpm, fillers.TotalCount, pauses.Count, len(grammarErrors), wordCount)

	return &FluencyAnalysis{
		FluencyScore:    score,
		WPM:             wpm,
		WordCount:       wordCount,
		DurationSeconds: durationSeconds,
		FillerWords:     fillers,
		Pauses:          pauses,
		GrammarErrors:   grammarErrors,
		Feedback:        fluencyFeedback(wpm, fillers, pauses, grammarErrors, score),
	}
}

func fluencyFeedback(wpm float64, fillers FillerAnalysis, pauses PauseAnalysis, grammarErrors []string, score float64) []string {
	fb := []string{}

	switch {
	case score >= 90:
		fb = append(fb, "Excellent fluency! Your speech is clear and well-paced.")
	case score >= 75:
		fb = append(fb, "Good fluency with room for minor improvements.")
	case score >= 60:
		fb = append(fb, "Moderate fluency. Focus on the areas mentioned below.")
	default:
		fb = append(fb, "Fluency needs improvement. Practice regularly for better results.")
	}

	paceStr := strconv.FormatFloat(wpm, 'f', -1, 64)
	switch {
	case wpm < 80:
		fb = append(fb, fmt.Sprintf("Your speaking pace is slow (%s WPM). Try to speak at 120-150 WPM for better clarity.", paceStr))
	case wpm > 180:
		fb = append(fb, fmt.Sprintf("You're speaking too fast (%s WPM). Slow down to 120-150 WPM for better comprehension.", paceStr))
	case wpm >= 120 && wpm <= 150:
		fb = append(fb, fmt.Sprintf("Perfect speaking pace (%s WPM)! This is ideal for clear communication.", paceStr))
	}

	if fillers.TotalCount > 5 {
		fb = append(fb, fmt.Sprintf("You used %d filler words. Try to eliminate words like 'um', 'uh', and 'like'.", fillers.TotalCount))
		if len(fillers.Details) > 0 {
			top := make([]FillerCount, len(fillers.Details))
			copy(top, fillers.Details)
			sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
			if len(top) > 3 {
				top = top[:3]
			}
			parts := make([]string, 0, len(top))
			for _, f := range top {
				parts = append(parts, fmt.Sprintf("'%s' (%d)", f.Word, f.Count))
			}
			fb = append(fb, "Most common fillers: "+strings.Join(parts, ", "))
		}
	}

	if pauses.Count > 3 {
		fb = append(fb, fmt.Sprintf("Detected %d pauses. Practice smooth transitions between thoughts.", pauses.Count))
	}

	if len(grammarErrors) > 0 {
		fb = append(fb, fmt.Sprintf("Found %d potential grammar issues. Review your sentence structure.", len(grammarErrors)))
	}

	if fillers.TotalCount <= 2 {
		fb = append(fb, "Great job minimizing filler words!")
	}
	if pauses.Count <= 2 {
		fb = append(fb, "Excellent speech continuity with minimal pauses!")
	}

	return fb
}
