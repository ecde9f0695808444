package linefile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	type testCase struct {
		name     string
		content  string
		expected []string
	}

	testCases := []testCase{
		{name: "basic", content: "a\nb\nc\n", expected: []string{"a", "b", "c"}},
		{name: "crlf", content: "a\r\nb\r\n", expected: []string{"a", "b"}},
		{name: "trailing empty line", content: "a\nb\n\n", expected: []string{"a", "b"}},
		{name: "duplicates preserved", content: "x\nx\nx\n", expected: []string{"x", "x", "x"}},
		{name: "no trailing newline", content: "a\nb", expected: []string{"a", "b"}},
		{name: "empty input", content: "", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := ReadLines(strings.NewReader(tc.content), "test.txt")
			require.NoError(t, err)
			require.Equal(t, tc.expected, lines)
		})
	}
}
