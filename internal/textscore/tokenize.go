package textscore

import (
	"math"
	"regexp"
	"strings"
)

var (
	wordRe     = regexp.MustCompile(`[a-z0-9]+(?:'[a-z]+)?`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// english stopwords, matching the usual NLP toolkit set
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`i me my myself we our ours ourselves you
		you're you've you'll you'd your yours yourself yourselves he him his
		himself she she's her hers herself it it's its itself they them their
		theirs themselves what which who whom this that that'll these those am
		is are was were be been being have has had having do does did doing a
		an the and but if or because as until while of at by for with about
		against between into through during before after above below to from
		up down in out on off over under again further then once here there
		when where why how all any both each few more most other some such no
		nor not only own same so than too very s t can will just don don't
		should should've now d ll m o re ve y ain aren aren't couldn couldn't
		didn didn't doesn doesn't hadn hadn't hasn hasn't haven haven't isn
		isn't ma mightn mightn't mustn mustn't needn needn't shan shan't
		shouldn shouldn't wasn wasn't weren weren't won won't wouldn wouldn't`) {
		stopwords[w] = struct{}{}
	}
}

// Tokenize lowercases text and splits it into word tokens. Punctuation is
// dropped; apostrophe contractions stay intact ("don't" is one token).
func Tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// Sentences splits text into sentences on terminal punctuation,
// dropping empty fragments.
func Sentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// RemoveStopwords filters common English function words out of tokens.
func RemoveStopwords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := stopwords[tok]; !ok {
			out = append(out, tok)
		}
	}
	return out
}

// CountWords returns the number of word tokens in text.
func CountWords(text string) int {
	return len(Tokenize(text))
}

// CountSentences returns the number of sentences in text.
func CountSentences(text string) int {
	return len(Sentences(text))
}

// AverageWordLength returns the mean token length, rounded to 2 decimals.
func AverageWordLength(text string) float64 {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return 0.0
	}
	total := 0
	for _, tok := range tokens {
		total += len(tok)
	}
	return round2(float64(total) / float64(len(tokens)))
}

// normalize reduces a token to a crude singular form so that "systems" and
// "system" count as one keyword. Irregular plurals are left alone.
func normalize(token string) string {
	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "sses"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "ss"), strings.HasSuffix(token, "us"), strings.HasSuffix(token, "is"):
		return token
	case strings.HasSuffix(token, "es") && len(token) > 3:
		if strings.HasSuffix(token, "shes") || strings.HasSuffix(token, "ches") ||
			strings.HasSuffix(token, "xes") || strings.HasSuffix(token, "zes") {
			return token[:len(token)-2]
		}
		return token[:len(token)-1]
	case strings.HasSuffix(token, "s") && len(token) > 3:
		return token[:len(token)-1]
	}
	return token
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

func round3(x float64) float64 { return math.Round(x*1000) / 1000 }

func round4(x float64) float64 { return math.Round(x*10000) / 10000 }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
