package textscore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateGrammar(t *testing.T) {
	t.Run("clean long answer scores 100", func(t *testing.T) {
		got := EvaluateGrammar("I designed the billing pipeline and led its rollout across three regions.")
		require.Equal(t, 100.0, got.Score)
		require.Zero(t, got.ErrorCount)
	})

	t.Run("short answer penalized", func(t *testing.T) {
		got := EvaluateGrammar("Yes I did that once.")
		require.Equal(t, 5, got.WordCount)
		require.Equal(t, 80.0, got.Score)
	})

	t.Run("no sentence penalized", func(t *testing.T) {
		got := EvaluateGrammar("it depends")
		// 2 findings (capital, punctuation), short, and no sentence
		require.Equal(t, 2, got.ErrorCount)
		require.Equal(t, 40.0, got.Score)
		require.Zero(t, got.SentenceCount)
	})
}

func TestEvaluateCompleteness(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		score    float64
		adequate bool
	}{
		{
			name:   "very short answer",
			answer: "I used Docker.",
			score:  30.0,
		},
		{
			name: "medium answer two sentences",
			answer: "I built the ingestion service with a worker pool and backpressure. " +
				"It processed around two million events per hour at peak.",
			// 21 words: 50+10 for length, +10 for two sentences
			score:    70.0,
			adequate: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateCompleteness(tt.answer)
			require.Equal(t, tt.score, got.Score)
			require.Equal(t, tt.adequate, got.IsAdequate)
		})
	}
}

func TestEvaluateRelevance_KeywordMatches(t *testing.T) {
	jobKeywords := []string{"Python", "Django", "REST APIs"}
	got := EvaluateRelevance(
		"How have you used Python in production?",
		"I built several Django services in Python exposing REST endpoints.",
		jobKeywords,
	)

	require.Greater(t, got.TotalKeywordMatches, 0)
	require.NotEmpty(t, got.MatchedKeywords)
	require.GreaterOrEqual(t, got.Score, 0.0)
	require.LessOrEqual(t, got.Score, 100.0)
}

func TestEvaluateAnswer_BlendsComponents(t *testing.T) {
	question := "Describe a challenging project you worked on."
	answer := "I led the migration of our monolith to services. " +
		"We moved the billing domain first because it changed most often. " +
		"The migration finished ahead of schedule and cut deploy times in half."

	got := EvaluateAnswer(question, answer, []string{"migration", "services", "billing"})

	want := round2(got.Relevance.Score*0.35 +
		got.Grammar.Score*0.20 +
		got.Completeness.Score*0.25 +
		got.SentimentScore*0.20)
	require.Equal(t, want, got.OverallScore)

	require.Equal(t, question, got.Question)
	require.NotEmpty(t, got.Feedback)
}

func TestEvaluateAnswer_PreviewTruncated(t *testing.T) {
	long := strings.Repeat("migration work across teams ", 20)
	got := EvaluateAnswer("Question?", long, nil)

	require.Len(t, got.AnswerPreview, 103)
	require.True(t, strings.HasSuffix(got.AnswerPreview, "..."))
}
