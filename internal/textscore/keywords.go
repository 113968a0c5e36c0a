package textscore

import "sort"

// ExtractKeywords returns the topN most frequent content words in text.
// Stopwords and tokens of one or two characters are ignored; plural forms
// collapse into their singular. Ties keep first-seen order so results are
// stable for identical input.
func ExtractKeywords(text string, topN int) []string {
	tokens := RemoveStopwords(Tokenize(text))

	type entry struct {
		word  string
		count int
		first int
	}

	counts := make(map[string]*entry)
	order := make([]*entry, 0, len(tokens))

	for i, tok := range tokens {
		if len(tok) <= 2 {
			continue
		}
		w := normalize(tok)
		if e, ok := counts[w]; ok {
			e.count++
			continue
		}
		e := &entry{word: w, count: 1, first: i}
		counts[w] = e
		order = append(order, e)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	if topN > len(order) {
		topN = len(order)
	}
	out := make([]string, 0, topN)
	for _, e := range order[:topN] {
		out = append(out, e.word)
	}
	return out
}
