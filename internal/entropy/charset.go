package entropy

import "github.com/cracken/cracken/internal/mask"

// CharsetSplit is the simple left-to-right greedy reduction used by
// charset-only mode (§4.5 "Charset-only mode"): it ignores smartlists
// entirely and always takes the longest same-class run at each position.
func CharsetSplit(p []byte) Split {
	if len(p) == 0 {
		return Split{}
	}

	ct := newClassTable()

	var tokens []Token

	total := 0.0

	for i := 0; i < len(p); {
		if k, run, ok := ct.maximalRun(p, i); ok {
			w := classWeight(k) * float64(run)
			tokens = append(tokens, Token{
				Text:   string(p[i : i+run]),
				Kind:   TokenClass,
				Class:  k,
				Weight: w,
			})
			total += w
			i += run

			continue
		}

		// No specific class matches (control byte or non-ASCII): fall back
		// to a maximal byte-class run, which always matches.
		j := i + 1
		for j < len(p) {
			if _, ok := ct.specificClass(p[j]); ok {
				break
			}

			j++
		}

		run := j - i
		w := classWeight(mask.Byte) * float64(run)
		tokens = append(tokens, Token{
			Text:   string(p[i:j]),
			Kind:   TokenClass,
			Class:  mask.Byte,
			Weight: w,
		})
		total += w
		i = j
	}

	return Split{Tokens: tokens, Entropy: total}
}
