package mask

import (
	"github.com/cracken/cracken/internal/errkind"
)

// Built-in alphabets, bit-exact per spec: digit, lower, upper, symbol, all
// (digit++lower++upper++symbol, in that order), byte (0x00..0xFF ascending).
var (
	digitAlphabet  = []byte("0123456789")
	lowerAlphabet  = []byte("abcdefghijklmnopqrstuvwxyz")
	upperAlphabet  = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	symbolAlphabet = []byte(" !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~")
	allAlphabet    = concatAlphabets(digitAlphabet, lowerAlphabet, upperAlphabet, symbolAlphabet)
	byteAlphabet   = fullByteRange()
)

func concatAlphabets(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

func fullByteRange() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}

	return out
}

// BuiltinAlphabet returns the fixed byte sequence for a built-in class.
func BuiltinAlphabet(kind BuiltinKind) []byte {
	switch kind {
	case Digit:
		return digitAlphabet
	case Lower:
		return lowerAlphabet
	case Upper:
		return upperAlphabet
	case Symbol:
		return symbolAlphabet
	case All:
		return allAlphabet
	case Byte:
		return byteAlphabet
	default:
		return nil
	}
}

// WordList is an ordered, length-stratified sequence of tokens: grouped by
// byte length ascending, insertion (source file) order preserved within a
// group. MinLen is the shortest token's byte length (0 for an empty list).
type WordList struct {
	// Tokens is grouped by length ascending; insertion order preserved within a group.
	Tokens []string
	MinLen int
}

// NewWordList builds a WordList from tokens in file-read order, applying
// the length-stratified ordering required by §3/§4.4.
func NewWordList(tokens []string) *WordList {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)

	// stable sort by length keeps insertion order within a length group.
	stableSortByLen(sorted)

	minLen := 0
	if len(sorted) > 0 {
		minLen = len(sorted[0])
	}

	return &WordList{Tokens: sorted, MinLen: minLen}
}

func stableSortByLen(tokens []string) {
	// insertion sort is stable and the lists involved are modest (vocab-sized);
	// a generic sort.SliceStable would also work but this keeps the ordering
	// invariant obvious without relying on std sort's internals.
	for i := 1; i < len(tokens); i++ {
		j := i
		for j > 0 && len(tokens[j-1]) > len(tokens[j]) {
			tokens[j-1], tokens[j] = tokens[j], tokens[j-1]
			j--
		}
	}
}

// Registry holds the custom charsets and word lists declared before
// parsing (-c/-w flags), 1-indexed by occurrence order.
type Registry struct {
	CustomCharsets [10][]byte   // index 1..9 used; 0 unused
	WordLists      [10]*WordList // index 1..9 used; 0 unused
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// SetCustomCharset binds a 1-indexed custom charset. Duplicate bytes are
// preserved as given: they multiply the slot's candidate count.
func (r *Registry) SetCustomCharset(index int, charset []byte) {
	r.CustomCharsets[index] = charset
}

// SetWordList binds a 1-indexed word list.
func (r *Registry) SetWordList(index int, tokens []string) {
	r.WordLists[index] = NewWordList(tokens)
}

// Alphabet describes one slot's resolved candidate set: either a byte
// alphabet (literal, builtin, custom charset) or a word list.
type Alphabet struct {
	Bytes    []byte
	Words    *WordList
	IsWords  bool
}

// Len returns the number of candidates this alphabet contributes.
func (a Alphabet) Len() int {
	if a.IsWords {
		return len(a.Words.Tokens)
	}

	return len(a.Bytes)
}

// Resolve validates and resolves every slot of a parsed mask against the
// registry, returning one Alphabet per slot in source order. It fails with
// errkind.UnboundSlot when a ?N/?wN index has no matching declaration, and
// errkind.EmptyAlphabet when a resolved slot has zero candidates.
func (r *Registry) Resolve(slots Slots) ([]Alphabet, error) {
	out := make([]Alphabet, len(slots))

	for i, s := range slots {
		switch s.Kind {
		case KindLiteral:
			out[i] = Alphabet{Bytes: []byte{s.Literal}}

		case KindBuiltin:
			out[i] = Alphabet{Bytes: BuiltinAlphabet(s.Builtin)}

		case KindCustom:
			cs := r.CustomCharsets[s.Index]
			if cs == nil {
				return nil, errkind.NewUnboundSlot("custom-charset", s.Index)
			}

			if len(cs) == 0 {
				return nil, errkind.NewEmptyAlphabet("custom charset", s.Index)
			}

			out[i] = Alphabet{Bytes: cs}

		case KindWordlist:
			wl := r.WordLists[s.Index]
			if wl == nil {
				return nil, errkind.NewUnboundSlot("wordlist", s.Index)
			}

			if len(wl.Tokens) == 0 {
				return nil, errkind.NewEmptyAlphabet("wordlist", s.Index)
			}

			out[i] = Alphabet{Words: wl, IsWords: true}
		}
	}

	return out, nil
}
