// Package mask implements the hybrid mask language: parsing a mask string
// into an ordered sequence of slots, resolving slot alphabets against a
// registry of built-in classes, custom charsets and word lists, and
// computing the exact candidate count of a mask or mask family.
package mask

// Kind tags the variant a Slot holds.
type Kind int

const (
	// KindLiteral is a single fixed byte.
	KindLiteral Kind = iota
	// KindBuiltin is one of the fixed built-in classes (digit, lower, upper, symbol, all, byte).
	KindBuiltin
	// KindCustom is a 1-indexed reference into a user-supplied custom-charset table.
	KindCustom
	// KindWordlist is a 1-indexed reference into a user-supplied word-list table.
	KindWordlist
)

// BuiltinKind enumerates the fixed built-in character classes.
type BuiltinKind int

const (
	Digit BuiltinKind = iota
	Lower
	Upper
	Symbol
	All
	Byte
)

// Slot is one position in a parsed mask.
type Slot struct {
	Kind    Kind
	Literal byte        // valid when Kind == KindLiteral
	Builtin BuiltinKind // valid when Kind == KindBuiltin
	Index   int         // valid when Kind == KindCustom or KindWordlist, 1..9
}

// Slots is a parsed mask: an ordered sequence of slots.
type Slots []Slot

// builtinSpecifier maps the mask-grammar letter following '?' to a BuiltinKind.
var builtinSpecifier = map[byte]BuiltinKind{
	'd': Digit,
	'l': Lower,
	'u': Upper,
	's': Symbol,
	'a': All,
	'b': Byte,
}

// String returns the mask specifier letter of the class (the byte after '?').
func (k BuiltinKind) String() string {
	switch k {
	case Digit:
		return "d"
	case Lower:
		return "l"
	case Upper:
		return "u"
	case Symbol:
		return "s"
	case All:
		return "a"
	case Byte:
		return "b"
	default:
		return "?"
	}
}
