package entropy

import (
	"fmt"
	"strconv"
	"strings"
)

// Report renders the §6 entropy report format for a single password, given
// its hybrid split and its charset-only split.
func Report(hybrid, charset Split) string {
	var b strings.Builder

	fmt.Fprintf(&b, "hybrid-min-split: %s\n", formatTokenList(hybrid.Tokens))
	fmt.Fprintf(&b, "hybrid-mask: %s\n", hybrid.MaskString())
	fmt.Fprintf(&b, "hybrid-min-entropy: %.2f\n", hybrid.Entropy)
	b.WriteString("--\n")
	fmt.Fprintf(&b, "charset-mask: %s\n", charset.MaskString())
	fmt.Fprintf(&b, "charset-mask-entropy: %.2f\n", charset.Entropy)

	return b.String()
}

func formatTokenList(tokens []Token) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = strconv.Quote(t.Text)
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}
