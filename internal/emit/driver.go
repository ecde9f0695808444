package emit

import (
	"github.com/cracken/cracken/internal/mask"
)

// RunFamily drives one mask family end to end: it resolves alphabets for
// every prefix length the family iterates (ascending, §4.4 "length-bounded
// families") and dispatches each prefix to the fixed-length fast path or the
// hybrid (wordlist) path as appropriate. Family.Validate rejects
// minlen/maxlen combined with wordlist slots, so a bounded family is always
// pure-class and every prefix can use RunClassMask directly.
func RunFamily(r *mask.Registry, f mask.Family, sink *Sink) error {
	if err := f.Validate(); err != nil {
		return err
	}

	for _, k := range f.Lengths() {
		prefix := f.Prefix(k)

		alphabets, err := r.Resolve(prefix)
		if err != nil {
			return err
		}

		if err := sink.Reconfigure(RecordLen(len(prefix))); err != nil {
			return err
		}

		if err := runOne(prefix, alphabets, sink); err != nil {
			return err
		}
	}

	return nil
}

// runOne dispatches a single fully-resolved slot sequence to the
// appropriate engine.
func runOne(slots mask.Slots, alphabets []mask.Alphabet, sink *Sink) error {
	for _, s := range slots {
		if s.Kind == mask.KindWordlist {
			return RunHybridMask(slots, alphabets, sink)
		}
	}

	return RunClassMask(alphabets, sink)
}

// RunMasks drives a sequence of independent masks in file order (§4.4/§6:
// the -i masks-file case), with no cross-mask deduplication. Each mask's
// output is flushed before the next mask begins.
func RunMasks(r *mask.Registry, families []mask.Family, sink *Sink) error {
	for _, f := range families {
		if err := RunFamily(r, f, sink); err != nil {
			return err
		}
	}

	return sink.Close()
}
