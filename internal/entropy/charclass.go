package entropy

import (
	"math"

	"github.com/cracken/cracken/internal/mask"
)

// specificClasses are the classes considered "specific" for run detection:
// digit/lower/upper/symbol partition the printable ASCII range, so at most
// one of them ever matches a given byte. byte is handled separately as the
// universal fallback (§4.5: "byte as fallback for non-ASCII").
var specificClasses = []mask.BuiltinKind{mask.Digit, mask.Lower, mask.Upper, mask.Symbol}

// classTable is the byte-classification table §4.5 calls for: a fast
// byte -> specific-class lookup built once from the mask package's
// built-in alphabets.
type classTable struct {
	class [256]mask.BuiltinKind
	has   [256]bool
}

func newClassTable() *classTable {
	t := &classTable{}

	for _, k := range specificClasses {
		for _, b := range mask.BuiltinAlphabet(k) {
			t.class[b] = k
			t.has[b] = true
		}
	}

	return t
}

func (t *classTable) specificClass(b byte) (mask.BuiltinKind, bool) {
	return t.class[b], t.has[b]
}

// maximalRun returns the specific class at p[i] and the length of the
// maximal run of that same class starting at i. ok is false if p[i] has no
// specific class (only the byte fallback applies there).
func (t *classTable) maximalRun(p []byte, i int) (k mask.BuiltinKind, length int, ok bool) {
	k, ok = t.specificClass(p[i])
	if !ok {
		return k, 0, false
	}

	j := i + 1
	for j < len(p) {
		kk, ok2 := t.specificClass(p[j])
		if !ok2 || kk != k {
			break
		}

		j++
	}

	return k, j - i, true
}

func classSize(k mask.BuiltinKind) int {
	return len(mask.BuiltinAlphabet(k))
}

func classWeight(k mask.BuiltinKind) float64 {
	return math.Log2(float64(classSize(k)))
}

// classSpecifier returns the mask specifier byte for a built-in class.
func classSpecifier(k mask.BuiltinKind) byte {
	switch k {
	case mask.Digit:
		return 'd'
	case mask.Lower:
		return 'l'
	case mask.Upper:
		return 'u'
	case mask.Symbol:
		return 's'
	default:
		return 'b'
	}
}
