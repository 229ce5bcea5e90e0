package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzyScoreSubsequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		candidate string
		wantOK    bool
		wantPos   []int
	}{
		{
			name:      "contiguous subsequence matches",
			query:     "an",
			candidate: "Banana",
			wantOK:    true,
			wantPos:   []int{1, 2},
		},
		{
			name:      "missing rune does not match",
			query:     "an",
			candidate: "Apple",
			wantOK:    false,
		},
		{
			name:      "no rune in common does not match",
			query:     "an",
			candidate: "Cherry",
			wantOK:    false,
		},
		{
			name:      "case insensitive",
			query:     "AN",
			candidate: "banana",
			wantOK:    true,
			wantPos:   []int{1, 2},
		},
		{
			name:      "scattered runes still match in order",
			query:     "bna",
			candidate: "Banana",
			wantOK:    true,
			wantPos:   []int{0, 2, 3},
		},
		{
			name:      "order matters",
			query:     "nb",
			candidate: "Banana",
			wantOK:    false,
		},
		{
			name:      "empty query matches everything",
			query:     "",
			candidate: "anything",
			wantOK:    true,
			wantPos:   nil,
		},
		{
			name:      "empty candidate only matches empty query",
			query:     "a",
			candidate: "",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, positions, ok := fuzzyScore(tt.query, tt.candidate)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPos, positions)
			}
		})
	}
}

func TestFuzzyScoreRanking(t *testing.T) {
	t.Parallel()

	t.Run("word start and contiguity beat scattered match", func(t *testing.T) {
		t.Parallel()

		tight, _, ok := fuzzyScore("ap", "apple")
		require.True(t, ok)
		loose, _, ok := fuzzyScore("ap", "leap")
		require.True(t, ok)
		assert.Greater(t, tight, loose)
	})

	t.Run("shorter candidate wins on equal matches", func(t *testing.T) {
		t.Parallel()

		short, _, ok := fuzzyScore("log", "log")
		require.True(t, ok)
		long, _, ok := fuzzyScore("log", "logging")
		require.True(t, ok)
		assert.Greater(t, short, long)
	})

	t.Run("separator counts as word start", func(t *testing.T) {
		t.Parallel()

		atWord, _, ok := fuzzyScore("s", "git status")
		require.True(t, ok)
		inWord, _, ok := fuzzyScore("s", "gitstatuss")
		require.True(t, ok)
		assert.Greater(t, atWord, inWord)
	})
}

func TestFilterItems(t *testing.T) {
	t.Parallel()

	t.Run("only subsequence matches survive", func(t *testing.T) {
		t.Parallel()

		view := filterItems([]string{"Apple", "Banana", "Cherry"}, "an")
		require.Len(t, view, 1)
		assert.Equal(t, 1, view[0].Index)
		assert.Equal(t, "Banana", view[0].Text)
	})

	t.Run("empty query keeps original order", func(t *testing.T) {
		t.Parallel()

		items := []string{"Cherry", "Apple", "Banana"}
		view := filterItems(items, "")
		require.Len(t, view, 3)
		for i, m := range view {
			assert.Equal(t, i, m.Index)
			assert.Equal(t, items[i], m.Text)
		}
	})

	t.Run("ties break by original index", func(t *testing.T) {
		t.Parallel()

		view := filterItems([]string{"ab", "ac"}, "a")
		require.Len(t, view, 2)
		assert.Equal(t, 0, view[0].Index)
		assert.Equal(t, 1, view[1].Index)
	})

	t.Run("ordered by descending score", func(t *testing.T) {
		t.Parallel()

		view := filterItems([]string{"leap", "apple", "ap"}, "ap")
		require.Len(t, view, 3)
		for i := 1; i < len(view); i++ {
			assert.GreaterOrEqual(t, view[i-1].Score, view[i].Score)
		}
		assert.Equal(t, "ap", view[0].Text)
		assert.Equal(t, "leap", view[2].Text)
	})
}
