package textscore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	t.Run("identical texts score 1", func(t *testing.T) {
		require.Equal(t, 1.0, Similarity("design scalable systems", "design scalable systems"))
	})

	t.Run("disjoint texts score 0", func(t *testing.T) {
		require.Equal(t, 0.0, Similarity("apples oranges bananas", "docker kubernetes terraform"))
	})

	t.Run("partial overlap scores in between", func(t *testing.T) {
		got := Similarity("design scalable backend systems", "scalable systems need monitoring")
		require.Greater(t, got, 0.0)
		require.Less(t, got, 1.0)
	})

	t.Run("empty text scores 0", func(t *testing.T) {
		require.Equal(t, 0.0, Similarity("", "anything here"))
		require.Equal(t, 0.0, Similarity("", ""))
	})

	t.Run("case insensitive", func(t *testing.T) {
		require.Equal(t, 1.0, Similarity("Scalable Systems", "scalable systems"))
	})
}
