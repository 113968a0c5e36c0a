package textscore

import (
	"fmt"
	"strings"
)

// Weights for combining answer evaluation dimensions into an overall score.
const (
	weightRelevance    = 0.35
	weightGrammar      = 0.20
	weightCompleteness = 0.25
	weightSentiment    = 0.20
)

// RelevanceResult scores how well an answer addresses its question and the
// target role's vocabulary.
type RelevanceResult struct {
	Score               float64  `json:"score"`
	SimilarityScore     float64  `json:"similarity_score"`
	KeywordScore        float64  `json:"keyword_score"`
	MatchedKeywords     []string `json:"matched_keywords"`
	TotalKeywordMatches int      `json:"total_keyword_matches"`
}

// GrammarResult scores surface writing quality.
type GrammarResult struct {
	Score         float64  `json:"score"`
	Errors        []string `json:"errors"`
	ErrorCount    int      `json:"error_count"`
	WordCount     int      `json:"word_count"`
	SentenceCount int      `json:"sentence_count"`
}

// CompletenessResult scores answer depth from length and structure.
type CompletenessResult struct {
	Score         float64 `json:"score"`
	WordCount     int     `json:"word_count"`
	SentenceCount int     `json:"sentence_count"`
	IsAdequate    bool    `json:"is_adequate"`
}

// AnswerEvaluation is the full scored breakdown of one interview answer.
type AnswerEvaluation struct {
	OverallScore   float64            `json:"overall_score"`
	Relevance      RelevanceResult    `json:"relevance"`
	Grammar        GrammarResult      `json:"grammar"`
	Completeness   CompletenessResult `json:"completeness"`
	SentimentScore float64            `json:"sentiment_score"`
	Feedback       []string           `json:"feedback"`
	Question       string             `json:"question"`
	AnswerPreview  string             `json:"answer_preview"`
}

// EvaluateRelevance combines question-answer similarity (60%) with matches
// against the role's keyword vocabulary (40%).
func EvaluateRelevance(question, answer string, jobKeywords []string) RelevanceResult {
	similarity := Similarity(question, answer)

	answerKeywords := ExtractKeywords(answer, 10)

	matches := 0
	matched := []string{}
	for _, kw := range answerKeywords {
		for _, jobKw := range jobKeywords {
			jobLower := strings.ToLower(jobKw)
			if strings.Contains(jobLower, kw) || strings.Contains(kw, jobLower) {
				matches++
				matched = append(matched, jobKw)
				break
			}
		}
	}

	denom := len(answerKeywords)
	if denom < 1 {
		denom = 1
	}
	keywordScore := clamp(float64(matches)/float64(denom)*100, 0, 100)

	if len(matched) > 5 {
		matched = matched[:5]
	}

	return RelevanceResult{
		Score:               round2(similarity*100*0.6 + keywordScore*0.4),
		SimilarityScore:     round2(similarity * 100),
		KeywordScore:        round2(keywordScore),
		MatchedKeywords:     matched,
		TotalKeywordMatches: matches,
	}
}

// EvaluateGrammar deducts 5 points per finding from 100, with extra
// penalties for very short or sentence-less answers.
func EvaluateGrammar(answer string) GrammarResult {
	errors := GrammarIssues(answer)
	wordCount := CountWords(answer)
	sentenceCount := CountSentences(answer)

	score := 100.0 - float64(len(errors))*5
	if score < 0 {
		score = 0
	}
	if wordCount < 10 {
		score -= 20
	}
	if sentenceCount == 0 {
		score -= 30
	}

	return GrammarResult{
		Score:         round2(score),
		Errors:        errors,
		ErrorCount:    len(errors),
		WordCount:     wordCount,
		SentenceCount: sentenceCount,
	}
}

// EvaluateCompleteness rewards longer, structured answers starting from a
// base of 50.
func EvaluateCompleteness(answer string) CompletenessResult {
	wordCount := CountWords(answer)
	sentenceCount := CountSentences(answer)

	score := 50.0
	switch {
	case wordCount >= 50:
		score += 30
	case wordCount >= 30:
		score += 20
	case wordCount >= 15:
		score += 10
	default:
		score -= 20
	}

	switch {
	case sentenceCount >= 3:
		score += 20
	case sentenceCount >= 2:
		score += 10
	}

	return CompletenessResult{
		Score:         round2(clamp(score, 0, 100)),
		WordCount:     wordCount,
		SentenceCount: sentenceCount,
		IsAdequate:    wordCount >= 20 && sentenceCount >= 2,
	}
}

// EvaluateAnswer scores an interview answer across relevance, grammar,
// completeness, and sentiment, then blends them with the standard weights.
func EvaluateAnswer(question, answer string, jobKeywords []string) *AnswerEvaluation {
	relevance := EvaluateRelevance(question, answer, jobKeywords)
	grammar := EvaluateGrammar(answer)
	completeness := EvaluateCompleteness(answer)
	sentiment := SentimentScore(answer)

	overall := relevance.Score*weightRelevance +
		grammar.Score*weightGrammar +
		completeness.Score*weightCompleteness +
		sentiment*weightSentiment

	preview := answer
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}

	return &AnswerEvaluation{
		OverallScore:   round2(overall),
		Relevance:      relevance,
		Grammar:        grammar,
		Completeness:   completeness,
		SentimentScore: sentiment,
		Feedback:       answerFeedback(relevance, grammar, completeness, sentiment, overall),
		Question:       question,
		AnswerPreview:  preview,
	}
}

func answerFeedback(relevance RelevanceResult, grammar GrammarResult, completeness CompletenessResult, sentiment, overall float64) []string {
	fb := []string{}

	switch {
	case overall >= 90:
		fb = append(fb, "Excellent answer! You demonstrated strong understanding.")
	case overall >= 75:
		fb = append(fb, "Good answer with solid content.")
	case overall >= 60:
		fb = append(fb, "Adequate answer, but there's room for improvement.")
	default:
		fb = append(fb, "Your answer needs more development and clarity.")
	}

	if relevance.Score < 60 {
		fb = append(fb, "Try to address the question more directly and use relevant technical terms.")
	} else if len(relevance.MatchedKeywords) > 0 {
		top := relevance.MatchedKeywords
		if len(top) > 3 {
			top = top[:3]
		}
		fb = append(fb, "Good use of relevant keywords: "+strings.Join(top, ", "))
	}

	if grammar.ErrorCount > 0 {
		fb = append(fb, fmt.Sprintf("Watch out for grammar issues. Found %d potential errors.", grammar.ErrorCount))
	}

	if completeness.WordCount < 20 {
		fb = append(fb, "Your answer is too brief. Provide more details and examples.")
	} else if completeness.WordCount > 200 {
		fb = append(fb, "Good detailed answer! Make sure to stay focused on the key points.")
	}

	if sentiment < 50 {
		fb = append(fb, "Show more confidence in your responses. Use assertive language.")
	} else if sentiment >= 75 {
		fb = append(fb, "Great confidence level in your answer!")
	}

	if overall >= 75 {
		fb = append(fb, "Keep up the good work! Your interview skills are strong.")
	}

	return fb
}
