package entropy

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cracken/cracken/internal/smartlist"
)

func buildLists(t *testing.T, vocab ...[]string) []*smartlist.Smartlist {
	t.Helper()

	lists := make([]*smartlist.Smartlist, len(vocab))
	for i, tokens := range vocab {
		lists[i] = &smartlist.Smartlist{Index: i, Tokens: tokens}
	}

	return lists
}

func TestDecompose_S5_HelloWorld(t *testing.T) {
	lists := buildLists(t, []string{"hello", "world1"})

	d, err := NewDecomposer(lists)
	require.NoError(t, err)

	split := d.Decompose([]byte("helloworld123!"))

	texts := make([]string, len(split.Tokens))
	for i, tok := range split.Tokens {
		texts[i] = tok.Text
	}

	require.Equal(t, []string{"hello", "world1", "2", "3", "!"}, texts)
	require.Equal(t, "?w1?w1?d?d?s", split.MaskString())
}

func TestCharsetSplit_S6_HelloWorld(t *testing.T) {
	split := CharsetSplit([]byte("HelloWorld123!"))
	require.Equal(t, "?u?l?l?l?l?u?l?l?l?l?d?d?d?s", split.MaskString())
}

func TestDecompose_NoSmartlists_FallsBackToClassRuns(t *testing.T) {
	d, err := NewDecomposer(nil)
	require.NoError(t, err)

	split := d.Decompose([]byte("abc123"))
	require.Equal(t, "?l?l?l?d?d?d", split.MaskString())
}

func TestDecompose_NonASCIIByteUsesByteClass(t *testing.T) {
	d, err := NewDecomposer(nil)
	require.NoError(t, err)

	split := d.Decompose([]byte{0xFF, 'a'})
	require.Equal(t, TokenClass, split.Tokens[0].Kind)
	require.Len(t, split.Tokens[0].Text, 1)
}

func TestDecompose_EntropyNeverWorseThanCharsetOnly(t *testing.T) {
	lists := buildLists(t, []string{"alpha", "bravo", "charlie"})

	d, err := NewDecomposer(lists)
	require.NoError(t, err)

	for _, pw := range []string{"alpha123", "bravoCharlie!", "zzz999"} {
		hybrid := d.Decompose([]byte(pw))
		charset := CharsetSplit([]byte(pw))
		require.LessOrEqual(t, hybrid.Entropy, charset.Entropy+weightEpsilon)
	}
}

func TestHeuristic_AdmissibleOnRandomInputs(t *testing.T) {
	lists := buildLists(t, []string{"supercalifragilisticexpialidocious", "ab"})

	d, err := NewDecomposer(lists)
	require.NoError(t, err)

	alphabet := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#"
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(20) + 1

		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}

		p := []byte(sb.String())

		for i := 0; i <= n; i++ {
			suffixSplit := d.Decompose(p[i:])
			h := d.Heuristic(n, i)
			require.LessOrEqual(t, h, suffixSplit.Entropy+weightEpsilon,
				"heuristic overestimates at i=%d for %q", i, string(p))
			require.False(t, math.IsNaN(h))
		}
	}
}

func TestSplit_MaskString_ReusesSmartlistSlot(t *testing.T) {
	split := Split{Tokens: []Token{
		{Kind: TokenSmartlist, SmartlistIndex: 0, Text: "hello"},
		{Kind: TokenSmartlist, SmartlistIndex: 0, Text: "world1"},
	}}
	require.Equal(t, "?w1?w1", split.MaskString())
}
