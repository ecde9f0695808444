// Package root assembles the cracken root command and its three
// subcommands (generate, create, entropy), plus version.
package root

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cracken/cracken/internal/cracken/cli/commands"
	"github.com/cracken/cracken/internal/cracken/cli/commands/create"
	"github.com/cracken/cracken/internal/cracken/cli/commands/entropy"
	"github.com/cracken/cracken/internal/cracken/cli/commands/generate"
	"github.com/cracken/cracken/internal/cracken/cli/commands/version"
	"github.com/cracken/cracken/internal/cracken/cli/options"
)

// knownSubcommands names every explicit top-level verb; anything else as
// the first argument is treated as generate's positional mask (§6 "if none
// given, default to generate").
var knownSubcommands = map[string]bool{
	"generate":   true,
	"create":     true,
	"entropy":    true,
	"version":    true,
	"help":       true,
	"completion": true,
	"-h":         true,
	"--help":     true,
}

// DefaultToGenerate prepends "generate" to args when the first token isn't
// a recognized subcommand name, so `cracken ?d?d` behaves like
// `cracken generate ?d?d`.
func DefaultToGenerate(args []string) []string {
	if len(args) == 0 || knownSubcommands[args[0]] {
		return args
	}

	return append([]string{"generate"}, args...)
}

// NewRootCommand creates the 'cracken' root command for CLI.
func NewRootCommand(cliOpts *options.CliOptions) *cobra.Command {
	cobra.EnableCommandSorting = false

	appOpts := cliOpts.AppOpts()

	cmd := &cobra.Command{
		Use:                   "cracken [FLAGS] COMMAND",
		Short:                 "Mask-based password-candidate generator and analyzer",
		Args:                  commands.NoArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		TraverseChildren:      true,
		DisableFlagsInUseLine: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
			HiddenDefaultCmd:  true,
		},
	}

	cmd.SetOut(cliOpts.Out())
	cmd.SetFlagErrorFunc(commands.FlagErrorFunc)

	setupFlags(cmd.PersistentFlags(), appOpts)

	cmd.PersistentFlags().BoolP("help", "h", false, "Print usage")
	cmd.PersistentFlags().Lookup("help").Hidden = true

	cmd.AddCommand(
		generate.NewGenerateCommand(cliOpts),
		create.NewCreateCommand(cliOpts),
		entropy.NewEntropyCommand(cliOpts),
		version.NewVersionCommand(cliOpts),
	)

	return cmd
}

func setupFlags(flags *pflag.FlagSet, opts *options.AppOptions) {
	flags.StringVarP(
		&opts.ConfigPath,
		commands.ConfigPathFlag,
		commands.ConfigPathShortFlag,
		commands.ConfigPathDefaultValue,
		commands.ConfigPathUsage,
	)

	flags.BoolVarP(
		&opts.DebugMode,
		commands.DebugModeFlag,
		commands.DebugModeShortFlag,
		commands.DebugModeDefaultValue,
		commands.DebugModeUsage,
	)

	flags.StringVar(
		&opts.LogFormat,
		commands.LogFormatFlag,
		commands.LogFormatDefaultValue,
		commands.LogFormatUsage,
	)
}
