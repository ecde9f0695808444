package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cracken/cracken/internal/cracken/cli/commands"
	"github.com/cracken/cracken/internal/cracken/cli/options"
)

// NewVersionCommand creates 'version' command for CLI.
func NewVersionCommand(cliOpts *options.CliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "version",
		Short:                 "Show cracken version",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cracken version "+cliOpts.Version())
		},
	}

	cmd.SetOut(cliOpts.Out())

	return cmd
}
