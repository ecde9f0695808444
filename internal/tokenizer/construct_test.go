package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstruct_UnionAcrossAlgorithms(t *testing.T) {
	corpora := []string{"password", "password", "dragon"}

	got, err := Construct(corpora, ConstructParams{
		Algorithms: []Algorithm{Unigram, BPE},
		MaxVocab:   50,
		RunID:      "test-run",
	})
	require.NoError(t, err)
	require.NotEmpty(t, got)

	seen := make(map[string]bool)
	for _, tok := range got {
		require.False(t, seen[tok], "token %q appears twice in union", tok)
		seen[tok] = true
	}
}

func TestConstruct_UnknownAlgorithmPropagatesError(t *testing.T) {
	_, err := Construct([]string{"a"}, ConstructParams{
		Algorithms: []Algorithm{"not-a-real-algorithm"},
		MaxVocab:   10,
		RunID:      "test-run",
	})
	require.Error(t, err)
}

func TestConstruct_MinWordLenFilter(t *testing.T) {
	got, err := Construct([]string{"ab", "abc", "abcd"}, ConstructParams{
		Algorithms: []Algorithm{Unigram},
		MaxVocab:   10,
		MinWordLen: 3,
		RunID:      "test-run",
	})
	require.NoError(t, err)

	for _, tok := range got {
		require.GreaterOrEqual(t, len(tok), 3)
	}
}

func TestConstruct_NumbersMaxLenFilter(t *testing.T) {
	got, err := Construct([]string{"1234567", "99", "word"}, ConstructParams{
		Algorithms:    []Algorithm{Unigram},
		MaxVocab:      10,
		NumbersMaxLen: 3,
		RunID:         "test-run",
	})
	require.NoError(t, err)

	for _, tok := range got {
		if isAllDigits(tok) {
			require.LessOrEqual(t, len(tok), 3)
		}
	}

	require.Contains(t, got, "word")
	require.Contains(t, got, "99")
	require.NotContains(t, got, "1234567")
}

func TestPassesFilters(t *testing.T) {
	type testCase struct {
		name     string
		tok      string
		params   ConstructParams
		expected bool
	}

	testCases := []testCase{
		{name: "no filters", tok: "x", params: ConstructParams{}, expected: true},
		{name: "too short", tok: "ab", params: ConstructParams{MinWordLen: 3}, expected: false},
		{name: "long enough", tok: "abc", params: ConstructParams{MinWordLen: 3}, expected: true},
		{name: "digits over max", tok: "12345", params: ConstructParams{NumbersMaxLen: 3}, expected: false},
		{name: "digits within max", tok: "123", params: ConstructParams{NumbersMaxLen: 3}, expected: true},
		{name: "non-digits ignore numbers filter", tok: "abcdef", params: ConstructParams{NumbersMaxLen: 3}, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, passesFilters(tc.tok, tc.params))
		})
	}
}

func TestIsAllDigits(t *testing.T) {
	require.True(t, isAllDigits("12345"))
	require.False(t, isAllDigits("123a5"))
	require.False(t, isAllDigits(""))
}

func TestWorkerCount(t *testing.T) {
	require.Equal(t, 1, workerCount(0))
	require.Equal(t, 1, workerCount(-5))
	require.Equal(t, 3, workerCount(3))
}
