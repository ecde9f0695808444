package root

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultToGenerate(t *testing.T) {
	type testCase struct {
		name     string
		args     []string
		expected []string
	}

	testCases := []testCase{
		{name: "empty args", args: []string{}, expected: []string{}},
		{name: "bare mask", args: []string{"?d?d"}, expected: []string{"generate", "?d?d"}},
		{name: "masks-file flag", args: []string{"-i", "masks.txt"}, expected: []string{"generate", "-i", "masks.txt"}},
		{name: "explicit generate", args: []string{"generate", "?d?d"}, expected: []string{"generate", "?d?d"}},
		{name: "explicit create", args: []string{"create", "-f", "a.txt"}, expected: []string{"create", "-f", "a.txt"}},
		{name: "explicit entropy", args: []string{"entropy", "pw"}, expected: []string{"entropy", "pw"}},
		{name: "explicit version", args: []string{"version"}, expected: []string{"version"}},
		{name: "help flag", args: []string{"--help"}, expected: []string{"--help"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, DefaultToGenerate(tc.args))
		})
	}
}
