package smartlist

import "github.com/coregx/ahocorasick"

// Hit is one smartlist token matching a password at a given starting
// position (the decomposer only cares about the length and which
// smartlist it came from; the starting position is the caller's index).
type Hit struct {
	Length         int
	SmartlistIndex int
}

// Index is the multi-pattern acceleration structure from §4.5: built once
// over every loaded smartlist, it answers "which smartlist tokens start at
// position i" for the decomposer's edge generation.
//
// github.com/coregx/ahocorasick only exposes leftmost-match search
// (Automaton.Find), not "every pattern starting here" enumeration. A single
// automaton over the union of all tokens is still useful as a cheap
// presence check: Find(p, i) returns the earliest position >= i at which
// any token starts. If that position is > i (or there's no match at all),
// position i has no smartlist hit and the expensive per-length lookup is
// skipped entirely. Only when the automaton confirms a hit exactly at i do
// we pay for the exact-length enumeration, using a plain hash lookup keyed
// by the small set of distinct token lengths actually present.
type Index struct {
	automaton *ahocorasick.Automaton
	lengths   []int // distinct token lengths across all lists, ascending
	byLen     map[int]map[string]int
	weights   map[int]float64 // smartlist index -> log2(|smartlist|)
}

// Weight returns the per-hit entropy weight, log2(|smartlist|), for the
// smartlist at the given index.
func (ix *Index) Weight(smartlistIndex int) float64 {
	return ix.weights[smartlistIndex]
}

// Build constructs the index over every token of every smartlist.
func Build(lists []*Smartlist) (*Index, error) {
	ix := &Index{byLen: make(map[int]map[string]int), weights: make(map[int]float64)}

	for _, sl := range lists {
		ix.weights[sl.Index] = sl.Weight()
	}

	builder := ahocorasick.NewBuilder()
	lengthSeen := make(map[int]bool)

	for _, sl := range lists {
		for _, tok := range sl.Tokens {
			builder.AddPattern([]byte(tok))

			l := len(tok)
			if ix.byLen[l] == nil {
				ix.byLen[l] = make(map[string]int)
			}

			// First-loaded smartlist wins a cross-list token collision;
			// ties are rare and the decomposer only needs one valid tag.
			if _, ok := ix.byLen[l][tok]; !ok {
				ix.byLen[l][tok] = sl.Index
			}

			if !lengthSeen[l] {
				lengthSeen[l] = true
				ix.lengths = append(ix.lengths, l)
			}
		}
	}

	sortInts(ix.lengths)

	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	ix.automaton = auto

	return ix, nil
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// MatchesAt returns every smartlist token starting exactly at position i in
// p, longest-insensitive (callers decide how to use length).
func (ix *Index) MatchesAt(p []byte, i int) []Hit {
	if ix.automaton == nil {
		return nil
	}

	m := ix.automaton.Find(p, i)
	if m == nil || m.Start != i {
		return nil
	}

	var hits []Hit

	remaining := len(p) - i
	for _, l := range ix.lengths {
		if l > remaining {
			break
		}

		byTok, ok := ix.byLen[l]
		if !ok {
			continue
		}

		if idx, ok := byTok[string(p[i:i+l])]; ok {
			hits = append(hits, Hit{Length: l, SmartlistIndex: idx})
		}
	}

	return hits
}
