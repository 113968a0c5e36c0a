package textscore

import (
	"math"
	"regexp"
	"strings"
)

// vectorizer tokens: two or more word characters, like the usual TF-IDF
// default pattern
var tfidfTokenRe = regexp.MustCompile(`\b\w\w+\b`)

// Similarity computes TF-IDF cosine similarity between two texts,
// rounded to 4 decimals. Result is in [0, 1]; empty or disjoint texts
// score 0.
func Similarity(text1, text2 string) float64 {
	docs := [2][]string{
		tfidfTokenRe.FindAllString(strings.ToLower(text1), -1),
		tfidfTokenRe.FindAllString(strings.ToLower(text2), -1),
	}

	tf := [2]map[string]float64{{}, {}}
	df := map[string]int{}

	for i, doc := range docs {
		for _, tok := range doc {
			tf[i][tok]++
		}
		for tok := range tf[i] {
			df[tok]++
		}
	}

	if len(tf[0]) == 0 || len(tf[1]) == 0 {
		return 0.0
	}

	// smoothed idf: ln((1+n)/(1+df)) + 1, n = 2 documents
	idf := func(tok string) float64 {
		return math.Log(3.0/float64(1+df[tok])) + 1
	}

	var dot, norm0, norm1 float64
	for tok, f := range tf[0] {
		w := f * idf(tok)
		norm0 += w * w
		if f2, ok := tf[1][tok]; ok {
			dot += w * f2 * idf(tok)
		}
	}
	for tok, f := range tf[1] {
		w := f * idf(tok)
		norm1 += w * w
	}

	if norm0 == 0 || norm1 == 0 {
		return 0.0
	}
	return round4(dot / (math.Sqrt(norm0) * math.Sqrt(norm1)))
}
