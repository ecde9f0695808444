package mask

import (
	"github.com/cracken/cracken/internal/errkind"
)

// Parse performs the one-pass, left-to-right parse described by the mask
// grammar: built-in classes (?d ?l ?u ?s ?a ?b), custom charsets (?1..?9),
// word lists (?w1..?w9), the literal-question-mark escape (??), and any
// other byte taken as a literal. It is total over the legal alphabet and
// fails with errkind.MaskSyntax on the first malformed '?'-sequence.
//
// Parse does not check that referenced custom-charset/word-list indices are
// bound — that is the registry's job (see Registry.Resolve), run once all
// masks for an invocation are known.
func Parse(src string) (Slots, error) {
	slots := make(Slots, 0, len(src))

	for i := 0; i < len(src); i++ {
		b := src[i]

		if b != '?' {
			slots = append(slots, Slot{Kind: KindLiteral, Literal: b})

			continue
		}

		if i+1 >= len(src) {
			return nil, errkind.NewMaskSyntax(src, i, "'?' at end of mask with no specifier")
		}

		spec := src[i+1]

		switch {
		case spec == '?':
			slots = append(slots, Slot{Kind: KindLiteral, Literal: '?'})
			i++

		case spec == 'w':
			if i+2 >= len(src) {
				return nil, errkind.NewMaskSyntax(src, i, "'?w' with no word-list index")
			}

			digit := src[i+2]
			if digit < '1' || digit > '9' {
				return nil, errkind.NewMaskSyntax(src, i, "'?w' must be followed by a digit 1-9")
			}

			slots = append(slots, Slot{Kind: KindWordlist, Index: int(digit - '0')})
			i += 2

		case spec >= '1' && spec <= '9':
			slots = append(slots, Slot{Kind: KindCustom, Index: int(spec - '0')})
			i++

		default:
			if kind, ok := builtinSpecifier[spec]; ok {
				slots = append(slots, Slot{Kind: KindBuiltin, Builtin: kind})
				i++

				continue
			}

			return nil, errkind.NewMaskSyntax(src, i, "unrecognized specifier after '?'")
		}
	}

	return slots, nil
}
