package textscore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize_LowercasesAndDropsPunctuation(t *testing.T) {
	tokens := Tokenize("Hello, World! Don't stop.")
	require.Equal(t, []string{"hello", "world", "don't", "stop"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	require.Empty(t, Tokenize(""))
	require.Empty(t, Tokenize("!!! ... ???"))
}

func TestSentences_SplitsOnTerminalPunctuation(t *testing.T) {
	got := Sentences("Hello world. How are you? Fine!")
	require.Equal(t, []string{"Hello world", "How are you", "Fine"}, got)
}

func TestSentences_NoTrailingEmpties(t *testing.T) {
	require.Len(t, Sentences("One sentence."), 1)
	require.Empty(t, Sentences("   "))
}

func TestCountWordsAndSentences(t *testing.T) {
	text := "I built a service. It scaled well."
	require.Equal(t, 7, CountWords(text))
	require.Equal(t, 2, CountSentences(text))
}

func TestRemoveStopwords(t *testing.T) {
	tokens := RemoveStopwords([]string{"the", "cat", "is", "on", "a", "mat"})
	require.Equal(t, []string{"cat", "mat"}, tokens)
}

func TestAverageWordLength(t *testing.T) {
	require.Equal(t, 0.0, AverageWordLength(""))
	// "go" (2) + "code" (4) = 3.0 average
	require.Equal(t, 3.0, AverageWordLength("go code"))
}

func TestNormalize_PluralForms(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cats", "cat"},
		{"queries", "query"},
		{"classes", "class"},
		{"boxes", "box"},
		{"databases", "database"},
		{"analysis", "analysis"},
		{"class", "class"},
		{"bus", "bus"},
		{"go", "go"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, normalize(tc.in), "normalize(%q)", tc.in)
	}
}
