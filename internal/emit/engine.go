package emit

import "github.com/cracken/cracken/internal/mask"

// classOdometer is the odometer state for a pure-class slot sequence (no
// wordlist slots): one alphabet and one cursor per slot.
//
// No 256-entry jump table keyed by byte value is built. Custom charsets are
// allowed to repeat bytes (§4.2: "duplicate bytes ... emitted as many times
// as they appear"), which makes a value-keyed table ambiguous: two different
// positions can hold the same byte. Each slot instead keeps a cursor into
// its own alphabet; advancing increments the rightmost cursor and carries
// into the slot to its left on wrap, which is correct for every alphabet
// the registry can produce.
type classOdometer struct {
	alphabets [][]byte
	cursor    []int
}

func newClassOdometer(alphabets []mask.Alphabet) *classOdometer {
	o := &classOdometer{
		alphabets: make([][]byte, len(alphabets)),
		cursor:    make([]int, len(alphabets)),
	}

	for i, a := range alphabets {
		o.alphabets[i] = a.Bytes
	}

	return o
}

// writeInto writes the current candidate's bytes into dst (len(dst) ==
// len(o.alphabets)).
func (o *classOdometer) writeInto(dst []byte) {
	for i, alphabet := range o.alphabets {
		dst[i] = alphabet[o.cursor[i]]
	}
}

// advance moves to the next candidate in odometer order (rightmost slot
// fastest). It returns false once the sequence is exhausted (the leftmost
// slot's carry propagates past position 0).
func (o *classOdometer) advance() bool {
	for i := len(o.cursor) - 1; i >= 0; i-- {
		o.cursor[i]++
		if o.cursor[i] < len(o.alphabets[i]) {
			return true
		}

		o.cursor[i] = 0
	}

	return false
}

// RunClassMask enumerates every candidate of a pure-class (no wordlist
// slots) alphabet sequence into sink, in odometer order (§4.4 "Ordering
// guarantee"). An empty slot sequence emits exactly one candidate: the
// empty line (§4.4 edge cases).
func RunClassMask(alphabets []mask.Alphabet, sink *Sink) error {
	n := len(alphabets)

	if n == 0 {
		rec, err := sink.NextRecord()
		if err != nil {
			return err
		}

		_ = rec // zero-length; nothing to fill but the trailing '\n'

		return sink.Flush()
	}

	o := newClassOdometer(alphabets)

	for {
		rec, err := sink.NextRecord()
		if err != nil {
			return err
		}

		o.writeInto(rec)

		if !o.advance() {
			break
		}
	}

	return sink.Flush()
}

// RecordLen returns the output record length (candidate length + '\n') for
// a pure-class slot sequence of n slots.
func RecordLen(n int) int {
	return n + 1
}
