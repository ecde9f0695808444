package mask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinAlphabets_BitExact(t *testing.T) {
	require.Equal(t, "0123456789", string(BuiltinAlphabet(Digit)))
	require.Equal(t, "abcdefghijklmnopqrstuvwxyz", string(BuiltinAlphabet(Lower)))
	require.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", string(BuiltinAlphabet(Upper)))
	require.Equal(t, " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", string(BuiltinAlphabet(Symbol)))
	require.Len(t, BuiltinAlphabet(Symbol), 33)

	all := BuiltinAlphabet(All)
	require.Equal(t, string(BuiltinAlphabet(Digit))+string(BuiltinAlphabet(Lower))+string(BuiltinAlphabet(Upper))+string(BuiltinAlphabet(Symbol)), string(all))

	b := BuiltinAlphabet(Byte)
	require.Len(t, b, 256)
	require.Equal(t, byte(0x00), b[0])
	require.Equal(t, byte(0xFF), b[255])
}

func TestRegistry_Resolve_UnboundSlot(t *testing.T) {
	r := NewRegistry()
	slots, err := Parse("?w3")
	require.NoError(t, err)

	_, err = r.Resolve(slots)
	require.Error(t, err)
	require.Contains(t, err.Error(), "wordlist")
}

func TestRegistry_Resolve_EmptyAlphabet(t *testing.T) {
	r := NewRegistry()
	r.SetCustomCharset(1, []byte{})

	slots, err := Parse("?1")
	require.NoError(t, err)

	_, err = r.Resolve(slots)
	require.Error(t, err)
}

func TestRegistry_Resolve_CustomCharsetDuplicatesPreserved(t *testing.T) {
	r := NewRegistry()
	r.SetCustomCharset(1, []byte("aab"))

	slots, err := Parse("?1")
	require.NoError(t, err)

	alphabets, err := r.Resolve(slots)
	require.NoError(t, err)
	require.Equal(t, 3, alphabets[0].Len())
}

func TestNewWordList_LengthStratifiedOrdering(t *testing.T) {
	wl := NewWordList([]string{"bob", "al", "xy", "smith"})

	require.Equal(t, []string{"al", "xy", "bob", "smith"}, wl.Tokens)
	require.Equal(t, 2, wl.MinLen)
}
