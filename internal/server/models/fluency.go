package models

import (
	"time"

	"github.com/mockview/mockview/internal/textscore"
)

// Weights for combining fluency dimensions into the overall score.
const (
	fluencyWeight       = 0.35
	pronunciationWeight = 0.30
	fluencyGrammarWt    = 0.35
)

// FluencyTest is one speech fluency run. It is created empty and filled in
// by the analyze step.
type FluencyTest struct {
	ID                 string                     `json:"test_id"`
	UserID             string                     `json:"user_id"`
	Transcript         string                     `json:"transcript"`
	AudioDuration      float64                    `json:"audio_duration"`
	FluencyScore       float64                    `json:"fluency_score"`
	PronunciationScore float64                    `json:"pronunciation_score"`
	GrammarScore       float64                    `json:"grammar_score"`
	WPM                float64                    `json:"wpm"`
	PauseCount         int                        `json:"pause_count"`
	FillerWordCount    int                        `json:"filler_word_count"`
	Feedback           []string                   `json:"feedback"`
	DetailedAnalysis   *textscore.FluencyAnalysis `json:"detailed_analysis,omitempty"`
	CreatedAt          time.Time                  `json:"timestamp"`
}

// OverallScore blends the component scores: 35% fluency, 30% pronunciation,
// 35% grammar, rounded to 2 decimals.
func (t *FluencyTest) OverallScore() float64 {
	overall := t.FluencyScore*fluencyWeight +
		t.PronunciationScore*pronunciationWeight +
		t.GrammarScore*fluencyGrammarWt
	return float64(int(overall*100+0.5)) / 100
}
