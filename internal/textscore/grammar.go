package textscore

import (
	"fmt"
	"strings"
	"unicode"
)

// GrammarIssues runs rule-based checks over text and returns one message per
// finding. The rules are deliberately simple: double spaces, a missing
// leading capital, missing terminal punctuation, and immediate word
// repetition (with "very" and "really" allowed to repeat).
func GrammarIssues(text string) []string {
	issues := []string{}

	if strings.Contains(text, "  ") {
		issues = append(issues, "Multiple consecutive spaces found")
	}

	runes := []rune(text)
	if len(runes) > 0 && !unicode.IsUpper(runes[0]) {
		issues = append(issues, "Sentence should start with a capital letter")
	}

	if len(runes) > 0 && !strings.ContainsRune(".!?", runes[len(runes)-1]) {
		issues = append(issues, "Sentence should end with proper punctuation")
	}

	words := strings.Fields(strings.ToLower(text))
	for i := 0; i+1 < len(words); i++ {
		if words[i] == words[i+1] && words[i] != "very" && words[i] != "really" {
			issues = append(issues, fmt.Sprintf("Repeated word: '%s'", words[i]))
		}
	}

	return issues
}
