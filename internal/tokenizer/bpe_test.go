package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBPETrainer_Train(t *testing.T) {
	type testCase struct {
		name     string
		corpora  []string
		params   Params
		expected []string
	}

	testCases := []testCase{
		{
			name:     "single repeated word merges into itself",
			corpora:  []string{"aaaa", "aaaa", "aaaa"},
			params:   Params{MaxVocab: 10, MinFreq: 1},
			expected: []string{"a", "aa", "aaaa"},
		},
		{
			name:     "max vocab truncates merges",
			corpora:  []string{"aaaa", "aaaa", "aaaa"},
			params:   Params{MaxVocab: 2, MinFreq: 1},
			expected: []string{"a", "aa"},
		},
		{
			name:     "min frequency blocks rare merges",
			corpora:  []string{"ab", "cd"},
			params:   Params{MaxVocab: 10, MinFreq: 2},
			expected: []string{"a", "b", "c", "d"},
		},
	}

	trainer := bpeTrainer{}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := trainer.Train(tc.corpora, tc.params)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestBPETrainer_EmptyCorpus(t *testing.T) {
	trainer := bpeTrainer{}

	got, err := trainer.Train(nil, Params{MaxVocab: 10})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSplitBytes(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, splitBytes("abc"))
	require.Empty(t, splitBytes(""))
}

func TestMergeAdjacent(t *testing.T) {
	seqs := [][]string{{"a", "b", "a", "b"}, {"a", "c"}}

	mergeAdjacent(seqs, "a", "b", "ab")

	require.Equal(t, [][]string{{"ab", "ab"}, {"a", "c"}}, seqs)
}

func TestTopPairs(t *testing.T) {
	counts := map[[2]string]int{
		{"a", "b"}: 5,
		{"c", "d"}: 2,
		{"e", "f"}: 9,
	}

	top := topPairs(counts, 2)
	require.Len(t, top, 2)
	require.Equal(t, 9, top[0].count)
	require.Equal(t, 5, top[1].count)
}
