package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cracken/cracken/internal/cracken/cli/options"
)

func TestNewVersionCommand(t *testing.T) {
	expected := "cracken version 1.0.0"
	out := new(bytes.Buffer)

	cliOpts := options.NewCliOptions("1.0.0")
	cliOpts.SetOut(out)

	cmd := NewVersionCommand(cliOpts)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	require.Equal(t, strings.TrimSpace(expected), strings.TrimSpace(out.String()))
}
