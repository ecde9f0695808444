package emit

import "github.com/cracken/cracken/internal/mask"

// packedWordList is the contiguous-buffer-plus-offsets layout the spec
// calls for (§4.4): one []byte holding every token back to back, a
// parallel offset array bounding each token, and a derived list of
// same-length groups (ascending) so the outer odometer can pick a length
// tuple without re-scanning the list.
type packedWordList struct {
	data    []byte
	offsets []int // len(tokens)+1 entries
	groups  []lenGroup
}

type lenGroup struct {
	length     int
	start, end int // token index range [start,end) sharing this length
}

func packWordList(wl *mask.WordList) *packedWordList {
	total := 0
	for _, tok := range wl.Tokens {
		total += len(tok)
	}

	p := &packedWordList{
		data:    make([]byte, 0, total),
		offsets: make([]int, 0, len(wl.Tokens)+1),
	}
	p.offsets = append(p.offsets, 0)

	for i, tok := range wl.Tokens {
		p.data = append(p.data, tok...)
		p.offsets = append(p.offsets, len(p.data))

		if len(p.groups) == 0 || p.groups[len(p.groups)-1].length != len(tok) {
			p.groups = append(p.groups, lenGroup{length: len(tok), start: i, end: i + 1})
		} else {
			p.groups[len(p.groups)-1].end = i + 1
		}
	}

	return p
}

func (p *packedWordList) token(i int) []byte {
	return p.data[p.offsets[i]:p.offsets[i+1]]
}

// dimKind tags a mixedOdometer dimension.
type dimKind int

const (
	dimClass dimKind = iota
	dimWord
)

// dim is one slot's state during the inner (fixed-length-tuple) odometer.
type dim struct {
	kind   dimKind
	offset int // byte offset within the record this slot writes to
	width  int // output width in bytes for this slot at the active length tuple

	classBytes []byte // dimClass: the slot's byte alphabet
	classPos   int    // dimClass: current index into classBytes

	packed   *packedWordList // dimWord: the slot's packed word list
	loStart  int             // dimWord: first token index of the active group
	hiEnd    int             // dimWord: one past the last token index of the active group
	tokenIdx int             // dimWord: current absolute token index
}

func (d *dim) writeInto(rec []byte) {
	switch d.kind {
	case dimClass:
		rec[d.offset] = d.classBytes[d.classPos]
	case dimWord:
		copy(rec[d.offset:d.offset+d.width], d.packed.token(d.tokenIdx))
	}
}

// advance moves this single dimension to its next value, returning false
// (with the dimension reset to its first value) when it wraps.
func (d *dim) advance() bool {
	switch d.kind {
	case dimClass:
		d.classPos++
		if d.classPos < len(d.classBytes) {
			return true
		}

		d.classPos = 0

		return false
	default: // dimWord
		d.tokenIdx++
		if d.tokenIdx < d.hiEnd {
			return true
		}

		d.tokenIdx = d.loStart

		return false
	}
}

// runInnerOdometer enumerates every combination for the current length
// tuple: rightmost slot fastest, exactly like the pure-class odometer
// (§4.4 "single-byte slots still vary fastest").
func runInnerOdometer(dims []*dim, recLen int, sink *Sink) error {
	if err := sink.Reconfigure(recLen); err != nil {
		return err
	}

	for {
		rec, err := sink.NextRecord()
		if err != nil {
			return err
		}

		for _, d := range dims {
			d.writeInto(rec)
		}

		carry := true

		for i := len(dims) - 1; i >= 0 && carry; i-- {
			carry = !dims[i].advance()
		}

		if carry {
			break
		}
	}

	return sink.Flush()
}

// wordDim is the outer-odometer state for one wordlist slot: its packed
// list and the index of the currently-chosen length group.
type wordDim struct {
	slotIndex int
	packed    *packedWordList
	groupIdx  int
}

// RunHybridMask enumerates every candidate of a slot sequence that
// contains at least one wordlist slot. Outer iteration picks a length
// tuple for the wordlist slots in ascending, lexicographic-by-length-vector
// order (leftmost wordlist slot slowest-varying, matching the convention
// that slot 1 varies slowest across the whole engine); for each tuple the
// inner odometer reapplies the fixed-length fast path (§4.4).
func RunHybridMask(slots mask.Slots, alphabets []mask.Alphabet, sink *Sink) error {
	wordDims := make([]*wordDim, 0)

	for i, s := range slots {
		if s.Kind == mask.KindWordlist {
			wordDims = append(wordDims, &wordDim{
				slotIndex: i,
				packed:    packWordList(alphabets[i].Words),
			})
		}
	}

	for {
		dims, recLen := buildDims(slots, alphabets, wordDims)

		if err := runInnerOdometer(dims, recLen, sink); err != nil {
			return err
		}

		if !advanceWordDims(wordDims) {
			break
		}
	}

	return nil
}

// buildDims lays out one dim per slot for the currently-selected length
// tuple (the active group of each wordDim), computing fixed byte offsets.
func buildDims(slots mask.Slots, alphabets []mask.Alphabet, wordDims []*wordDim) ([]*dim, int) {
	byWordSlot := make(map[int]*wordDim, len(wordDims))
	for _, wd := range wordDims {
		byWordSlot[wd.slotIndex] = wd
	}

	dims := make([]*dim, len(slots))
	offset := 0

	for i := range slots {
		if wd, ok := byWordSlot[i]; ok {
			group := wd.packed.groups[wd.groupIdx]
			dims[i] = &dim{
				kind:     dimWord,
				offset:   offset,
				width:    group.length,
				packed:   wd.packed,
				loStart:  group.start,
				hiEnd:    group.end,
				tokenIdx: group.start,
			}
			offset += group.length
		} else {
			dims[i] = &dim{
				kind:       dimClass,
				offset:     offset,
				width:      1,
				classBytes: alphabets[i].Bytes,
			}
			offset++
		}
	}

	return dims, offset + 1 // +1 for the trailing '\n'
}

// advanceWordDims moves the outer length-tuple odometer to its next value,
// returning false once every length-tuple combination has been visited.
func advanceWordDims(wordDims []*wordDim) bool {
	for i := len(wordDims) - 1; i >= 0; i-- {
		wordDims[i].groupIdx++
		if wordDims[i].groupIdx < len(wordDims[i].packed.groups) {
			return true
		}

		wordDims[i].groupIdx = 0
	}

	return false
}
