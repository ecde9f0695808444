package mask

import "github.com/cracken/cracken/internal/errkind"

// Family describes a length-bounded mask family: the parsed slot sequence
// plus an optional [minlen, maxlen] window over single-char length (§3).
// When MinLen == 0 and MaxLen == 0 the family is just the mask itself.
type Family struct {
	Slots  Slots
	MinLen int
	MaxLen int
}

// HasBounds reports whether minlen/maxlen were supplied at all.
func (f Family) HasBounds() bool {
	return f.MinLen != 0 || f.MaxLen != 0
}

// Validate checks the length-bounded family's invariants and resolves the
// Open Question in §9 with policy (a): minlen/maxlen combined with wordlist
// slots is rejected at parse time, since a wordlist slot cannot be
// length-expanded (its contribution to output length is its token length,
// not 1, so "prefix of length k" is ambiguous once a wordlist slot is
// included in the prefix).
func (f Family) Validate() error {
	if !f.HasBounds() {
		return nil
	}

	minlen, maxlen := f.MinLen, f.MaxLen
	if minlen == 0 {
		minlen = 1
	}

	if maxlen == 0 {
		maxlen = len(f.Slots)
	}

	if minlen > maxlen {
		return errkind.NewBoundsOutOfRange("minlen > maxlen")
	}

	if maxlen > len(f.Slots) {
		return errkind.NewBoundsOutOfRange("maxlen exceeds mask length")
	}

	for _, s := range f.Slots {
		if s.Kind == KindWordlist {
			return errkind.NewBoundsOutOfRange("minlen/maxlen cannot be combined with wordlist slots")
		}
	}

	return nil
}

// Lengths returns the ascending sequence of prefix lengths this family
// iterates, honoring HasBounds().
func (f Family) Lengths() []int {
	if !f.HasBounds() {
		return []int{len(f.Slots)}
	}

	minlen, maxlen := f.MinLen, f.MaxLen
	if minlen == 0 {
		minlen = 1
	}

	if maxlen == 0 || maxlen > len(f.Slots) {
		maxlen = len(f.Slots)
	}

	lengths := make([]int, 0, maxlen-minlen+1)
	for k := minlen; k <= maxlen; k++ {
		lengths = append(lengths, k)
	}

	return lengths
}

// Prefix returns the first k slots of the family's mask.
func (f Family) Prefix(k int) Slots {
	return f.Slots[:k]
}
