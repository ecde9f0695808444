package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnigramTrainer_Train(t *testing.T) {
	type testCase struct {
		name     string
		corpora  []string
		params   Params
		expected []string
	}

	testCases := []testCase{
		{
			name:     "ranks by descending frequency",
			corpora:  []string{"dog", "cat", "dog", "bird", "dog", "cat"},
			params:   Params{MaxVocab: 10},
			expected: []string{"dog", "cat", "bird"},
		},
		{
			name:     "ties broken by first-seen order",
			corpora:  []string{"zebra", "apple", "zebra", "apple"},
			params:   Params{MaxVocab: 10},
			expected: []string{"zebra", "apple"},
		},
		{
			name:     "max vocab truncates",
			corpora:  []string{"dog", "cat", "dog", "bird"},
			params:   Params{MaxVocab: 1},
			expected: []string{"dog"},
		},
		{
			name:     "min frequency is ignored",
			corpora:  []string{"once"},
			params:   Params{MaxVocab: 10, MinFreq: 100},
			expected: []string{"once"},
		},
	}

	trainer := unigramTrainer{}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := trainer.Train(tc.corpora, tc.params)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestUnigramTrainer_EmptyCorpus(t *testing.T) {
	trainer := unigramTrainer{}

	got, err := trainer.Train(nil, Params{MaxVocab: 10})
	require.NoError(t, err)
	require.Empty(t, got)
}
