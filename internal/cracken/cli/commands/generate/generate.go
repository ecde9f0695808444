// Package generate implements the 'generate' subcommand: mask (or
// masks-file) in, candidate stream out.
package generate

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cracken/cracken/internal/cracken/cli/commands"
	clierrors "github.com/cracken/cracken/internal/cracken/cli/errors"
	"github.com/cracken/cracken/internal/cracken/cli/options"
	"github.com/cracken/cracken/internal/emit"
	"github.com/cracken/cracken/internal/errkind"
	"github.com/cracken/cracken/internal/linefile"
	"github.com/cracken/cracken/internal/mask"
)

// generateOptions enumerates every flag of the 'generate' subcommand (§6),
// in one structure, no variadic keyword passing.
type generateOptions struct {
	fs afero.Fs

	minlen, maxlen int
	customCharsets []string
	wordlists      []string
	masksFile      string
	outputFile     string
	stats          bool
}

// NewGenerateCommand creates the 'generate' command for CLI.
func NewGenerateCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &generateOptions{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:                   "generate [FLAGS] <mask>",
		Short:                 "Expand a mask into its candidate stream",
		Args:                  commands.RequiresMaxArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			maskStr, err := maskSource(opts, args)
			if err != nil {
				return err
			}

			return runGenerate(cliOpts, opts, maskStr)
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

func setupFlags(flags *pflag.FlagSet, opts *generateOptions) {
	flags.IntVarP(&opts.minlen, commands.MinLenFlag, commands.MinLenShortFlag, commands.MinLenDefaultValue, commands.MinLenUsage)
	flags.IntVarP(&opts.maxlen, commands.MaxLenFlag, commands.MaxLenShortFlag, commands.MaxLenDefaultValue, commands.MaxLenUsage)
	flags.StringArrayVarP(&opts.customCharsets, commands.CustomCharsetFlag, commands.CustomCharsetShortFlag, nil, commands.CustomCharsetUsage)
	flags.StringArrayVarP(&opts.wordlists, commands.WordlistFlag, commands.WordlistShortFlag, nil, commands.WordlistUsage)
	flags.StringVarP(&opts.masksFile, commands.MasksFileFlag, commands.MasksFileShortFlag, "", commands.MasksFileUsage)
	flags.StringVarP(&opts.outputFile, commands.OutputFileFlag, commands.OutputFileShortFlag, commands.OutputFileDefaultValue, commands.OutputFileUsage)
	flags.BoolVarP(&opts.stats, commands.StatsFlag, commands.StatsShortFlag, commands.StatsDefaultValue, commands.StatsUsage)
}

// maskSource resolves the single positional mask per §6: "required
// positional <mask> or -i <masks-file>". When -i is given the positional
// is ignored (masksFile takes priority); errors here are usage errors.
func maskSource(opts *generateOptions, args []string) (string, error) {
	if opts.masksFile != "" {
		return "", nil
	}

	if len(args) != 1 {
		return "", clierrors.NewUsageError(errors.New("generate requires a mask argument or -i/--masks-file"))
	}

	return args[0], nil
}

func runGenerate(cliOpts *options.CliOptions, opts *generateOptions, positionalMask string) error {
	registry, err := buildRegistry(opts)
	if err != nil {
		return err
	}

	families, err := buildFamilies(opts, positionalMask)
	if err != nil {
		return err
	}

	if opts.stats {
		return printStats(cliOpts, registry, families)
	}

	out, closeOut, err := resolveOutput(cliOpts, opts)
	if err != nil {
		return err
	}
	defer closeOut()

	recLen := emit.RecordLen(1)
	sink := emit.NewSink(out, opts.outputFile, recLen, cliOpts.AppConfig().BufferSizeBytes)

	if len(families) == 1 {
		if err := emit.RunFamily(registry, families[0], sink); err != nil {
			return err
		}

		return sink.Close()
	}

	return emit.RunMasks(registry, families, sink)
}

// maxRegistrySlots is the highest 1-indexed slot a mask.Registry holds
// (?1..?9 / ?w1..?w9); its arrays are fixed-size [10] with index 0 unused.
const maxRegistrySlots = 9

// buildRegistry wires the -c/--custom-charset and -w/--wordlist flags into
// a mask.Registry, 1-indexed by occurrence order (§6). Custom charsets are
// literal flag values; word lists are file paths read through the shared
// line-format reader.
func buildRegistry(opts *generateOptions) (*mask.Registry, error) {
	if len(opts.customCharsets) > maxRegistrySlots {
		return nil, clierrors.NewUsageError(errors.Errorf(
			"at most %d -c/--custom-charset flags are supported, got %d", maxRegistrySlots, len(opts.customCharsets)))
	}

	if len(opts.wordlists) > maxRegistrySlots {
		return nil, clierrors.NewUsageError(errors.Errorf(
			"at most %d -w/--wordlist flags are supported, got %d", maxRegistrySlots, len(opts.wordlists)))
	}

	registry := mask.NewRegistry()

	for i, cs := range opts.customCharsets {
		registry.SetCustomCharset(i+1, []byte(cs))
	}

	for i, path := range opts.wordlists {
		tokens, err := readLines(opts.fs, path)
		if err != nil {
			return nil, err
		}

		registry.SetWordList(i+1, tokens)
	}

	return registry, nil
}

// buildFamilies parses either the single positional mask or every line of
// the masks file (§6 "-i <masks-file>", one mask per line), applying the
// same -m/-x bounds to each.
func buildFamilies(opts *generateOptions, positionalMask string) ([]mask.Family, error) {
	var maskStrings []string

	if opts.masksFile != "" {
		lines, err := readLines(opts.fs, opts.masksFile)
		if err != nil {
			return nil, err
		}

		maskStrings = lines
	} else {
		maskStrings = []string{positionalMask}
	}

	families := make([]mask.Family, 0, len(maskStrings))

	for _, m := range maskStrings {
		slots, err := mask.Parse(m)
		if err != nil {
			return nil, err
		}

		f := mask.Family{Slots: slots, MinLen: opts.minlen, MaxLen: opts.maxlen}
		if err := f.Validate(); err != nil {
			return nil, err
		}

		families = append(families, f)
	}

	return families, nil
}

// printStats computes the exact candidate count the same invocation would
// have emitted (§4.3, §8 property 3: "--stats returns an integer equal to
// the number of lines the same invocation would have emitted"): the sum,
// over every family and every prefix length each family iterates, of
// mask.Count. It sums via Family.Lengths rather than calling
// mask.FamilyCount directly, since Lengths (unlike FamilyCount) already
// normalizes zero bounds.
func printStats(cliOpts *options.CliOptions, registry *mask.Registry, families []mask.Family) error {
	total := big.NewInt(0)

	for _, f := range families {
		for _, k := range f.Lengths() {
			alphabets, err := registry.Resolve(f.Prefix(k))
			if err != nil {
				return err
			}

			total.Add(total, mask.Count(alphabets))
		}
	}

	fmt.Fprintln(cliOpts.Out(), total.String())

	return nil
}

func resolveOutput(cliOpts *options.CliOptions, opts *generateOptions) (io.Writer, func(), error) {
	if opts.outputFile == "" {
		return cliOpts.Out(), func() {}, nil
	}

	f, err := opts.fs.Create(opts.outputFile)
	if err != nil {
		return nil, nil, errkind.NewIOWriteFailed(opts.outputFile, err)
	}

	return f, func() { _ = f.Close() }, nil
}

func readLines(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errkind.NewIOReadFailed(path, err)
	}
	defer f.Close()

	return linefile.ReadLines(f, path)
}
