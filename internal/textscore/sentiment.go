package textscore

import (
	"math"
	"strings"
)

// valence lexicon in the VADER style: positive values up to ~4 for strongly
// positive words, negative down to ~-4. Small by the original's standards
// but covers the vocabulary interview answers actually use.
var valences = map[string]float64{
	"able": 1.0, "accomplish": 1.8, "accomplished": 1.9, "achieve": 1.8,
	"achieved": 1.8, "amazing": 2.8, "awesome": 3.1, "awful": -2.0,
	"bad": -2.5, "best": 3.2, "better": 1.9, "boring": -1.3,
	"brilliant": 2.8, "broken": -1.8, "calm": 1.3, "capable": 1.6,
	"challenge": 0.3, "clear": 1.2, "comfortable": 1.6, "confident": 2.2,
	"confused": -1.3, "correct": 1.6, "difficult": -1.5, "dislike": -1.6,
	"dreadful": -2.6, "easy": 1.5, "effective": 1.8, "efficient": 1.8,
	"enjoy": 2.0, "enjoyed": 2.2, "excellent": 2.7, "excited": 2.2,
	"exciting": 2.2, "fail": -2.5, "failed": -2.3, "failure": -2.6,
	"fantastic": 2.6, "fear": -2.2, "fine": 0.8, "fun": 2.3,
	"glad": 2.0, "good": 1.9, "great": 3.1, "happy": 2.7,
	"hard": -0.4, "hate": -2.7, "help": 1.7, "helpful": 1.9,
	"helped": 1.7, "impossible": -1.7, "improve": 1.5, "improved": 1.7,
	"impressive": 2.3, "incorrect": -1.5, "interesting": 1.7, "issue": -0.8,
	"lead": 1.1, "learned": 1.4, "like": 1.5, "love": 3.2,
	"loved": 2.9, "lucky": 1.8, "mistake": -1.6, "motivated": 1.9,
	"negative": -1.9, "nice": 1.8, "optimize": 1.2, "outstanding": 3.1,
	"passion": 2.3, "passionate": 2.4, "perfect": 2.7, "pleased": 1.9,
	"poor": -1.9, "positive": 2.3, "problem": -1.3, "proud": 2.1,
	"reliable": 1.8, "resolve": 1.2, "resolved": 1.4, "robust": 1.6,
	"sad": -2.1, "scalable": 1.2, "skilled": 1.8, "slow": -1.0,
	"smooth": 1.4, "solid": 1.5, "solve": 1.5, "solved": 1.7,
	"strong": 2.3, "struggle": -1.7, "struggled": -1.7, "succeed": 2.2,
	"succeeded": 2.2, "success": 2.7, "successful": 2.8, "successfully": 2.4,
	"terrible": -2.1, "thorough": 1.4, "trouble": -1.7, "trust": 2.1,
	"unable": -1.5, "unclear": -1.1, "useful": 1.9, "valuable": 2.1,
	"weak": -1.9, "win": 2.8, "wonderful": 2.7, "worse": -2.1,
	"worst": -3.1, "wrong": -2.1,
}

// boosters intensify or dampen the following sentiment word.
var boosters = map[string]float64{
	"absolutely": 0.293, "completely": 0.293, "extremely": 0.293,
	"highly": 0.293, "incredibly": 0.293, "really": 0.293, "so": 0.293,
	"totally": 0.293, "very": 0.293,
	"barely": -0.293, "hardly": -0.293, "kind": -0.293, "marginally": -0.293,
	"slightly": -0.293, "somewhat": -0.293, "sort": -0.293,
}

var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nobody": {},
	"none": {}, "nothing": {}, "cannot": {}, "can't": {}, "don't": {},
	"won't": {}, "didn't": {}, "wasn't": {}, "isn't": {}, "aren't": {},
	"doesn't": {}, "couldn't": {}, "wouldn't": {}, "shouldn't": {},
}

const negationScalar = -0.74

// Sentiment holds lexicon sentiment proportions, a normalized compound in
// [-1, 1], the resulting label, and a coarse confidence level.
type Sentiment struct {
	Positive        float64 `json:"positive"`
	Negative        float64 `json:"negative"`
	Neutral         float64 `json:"neutral"`
	Compound        float64 `json:"compound"`
	Sentiment       string  `json:"sentiment"`
	ConfidenceLevel string  `json:"confidence_level"`
}

// ConfidenceIndicators are the linguistic cue counts behind a confidence
// score.
type ConfidenceIndicators struct {
	HesitationCount  int    `json:"hesitation_count"`
	AssertiveCount   int    `json:"assertive_count"`
	UncertaintyCount int    `json:"uncertainty_count"`
	Sentiment        string `json:"sentiment"`
}

// Confidence scores how assured a speaker sounds, 0-100.
type Confidence struct {
	Score      float64              `json:"score"`
	Level      string               `json:"level"`
	Indicators ConfidenceIndicators `json:"indicators"`
}

// AnalyzeSentiment scores text against the valence lexicon with negation
// and booster handling, labeling it positive, negative, or neutral at the
// usual ±0.05 compound thresholds.
func AnalyzeSentiment(text string) Sentiment {
	tokens := Tokenize(text)

	var sum, posSum, negSum float64
	neuCount := 0

	for i, tok := range tokens {
		v, ok := valences[tok]
		if !ok {
			neuCount++
			continue
		}

		if i > 0 {
			if b, boosted := boosters[tokens[i-1]]; boosted {
				if v > 0 {
					v += b
				} else {
					v -= b
				}
			}
		}
		for back := 1; back <= 3 && i-back >= 0; back++ {
			if _, negated := negators[tokens[i-back]]; negated {
				v *= negationScalar
				break
			}
		}

		sum += v
		if v > 0 {
			posSum += v + 1
		} else if v < 0 {
			negSum += -v + 1
		} else {
			neuCount++
		}
	}

	// same normalization curve VADER uses
	compound := round4(sum / math.Sqrt(sum*sum+15))

	total := posSum + negSum + float64(neuCount)
	var pos, neg, neu float64
	if total > 0 {
		pos = round3(posSum / total)
		neg = round3(negSum / total)
		neu = round3(float64(neuCount) / total)
	} else {
		neu = 1.0
	}

	label := "neutral"
	if compound >= 0.05 {
		label = "positive"
	} else if compound <= -0.05 {
		label = "negative"
	}

	level := "low"
	switch magnitude := math.Abs(compound); {
	case magnitude >= 0.6:
		level = "high"
	case magnitude >= 0.3:
		level = "medium"
	}

	return Sentiment{
		Positive:        pos,
		Negative:        neg,
		Neutral:         neu,
		Compound:        compound,
		Sentiment:       label,
		ConfidenceLevel: level,
	}
}

var (
	hesitationCues = []string{
		"maybe", "perhaps", "possibly", "probably", "might", "could",
		"i think", "i guess", "sort of", "kind of", "um", "uh", "like",
	}
	assertiveCues = []string{
		"definitely", "certainly", "absolutely", "clearly", "obviously",
		"exactly", "precisely", "indeed",
	}
	uncertaintyCues = []string{
		"not sure", "don't know", "unsure", "uncertain",
	}
)

// AnalyzeConfidence scores how confident text sounds from hesitation and
// assertiveness cues, shifted by overall sentiment.
func AnalyzeConfidence(text string) Confidence {
	lower := strings.ToLower(text)

	countCues := func(cues []string) int {
		n := 0
		for _, cue := range cues {
			if strings.Contains(lower, cue) {
				n++
			}
		}
		return n
	}

	hesitation := countCues(hesitationCues)
	assertive := countCues(assertiveCues)
	uncertainty := countCues(uncertaintyCues)

	score := 70.0
	score -= float64(hesitation) * 5
	score -= float64(uncertainty) * 10
	score += float64(assertive) * 5

	sentiment := AnalyzeSentiment(text)
	switch sentiment.Sentiment {
	case "positive":
		score += 10
	case "negative":
		score -= 10
	}

	score = clamp(score, 0, 100)

	level := "low"
	switch {
	case score >= 75:
		level = "high"
	case score >= 50:
		level = "medium"
	}

	return Confidence{
		Score: round2(score),
		Level: level,
		Indicators: ConfidenceIndicators{
			HesitationCount:  hesitation,
			AssertiveCount:   assertive,
			UncertaintyCount: uncertainty,
			Sentiment:        sentiment.Sentiment,
		},
	}
}

// SentimentScore blends compound sentiment (40%) with spoken confidence
// (60%) into a single 0-100 score used by answer evaluation.
func SentimentScore(text string) float64 {
	sentiment := AnalyzeSentiment(text)
	confidence := AnalyzeConfidence(text)

	sentimentScore := (sentiment.Compound + 1) / 2 * 100

	return round2(sentimentScore*0.4 + confidence.Score*0.6)
}
