package mask

import "math/big"

// Count returns the exact candidate count of a fully-resolved slot
// sequence: the product of each slot's alphabet size. Arbitrary precision
// is required here — masks such as ?a^16 overflow any fixed-width integer
// (95^16 is far past uint64) and the spec requires this never silently
// overflow (§4.3).
func Count(alphabets []Alphabet) *big.Int {
	total := big.NewInt(1)

	for _, a := range alphabets {
		total.Mul(total, big.NewInt(int64(a.Len())))
	}

	return total
}

// FamilyCount returns the candidate count of a length-bounded mask family:
// the sum of Count(S1..Sk) for k in [minlen, min(maxlen, n)] (§3, §4.3).
// Prefix k is the first k slots of alphabets.
func FamilyCount(alphabets []Alphabet, minlen, maxlen int) *big.Int {
	total := big.NewInt(0)

	upper := maxlen
	if upper > len(alphabets) {
		upper = len(alphabets)
	}

	for k := minlen; k <= upper; k++ {
		total.Add(total, Count(alphabets[:k]))
	}

	return total
}
