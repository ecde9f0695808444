// Package entropy implements the 'entropy' subcommand: decompose one or
// many passwords against a set of smartlists and report the minimum-entropy
// split (§3, §4.5, §6).
package entropy

import (
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cracken/cracken/internal/cracken/cli/commands"
	clierrors "github.com/cracken/cracken/internal/cracken/cli/errors"
	"github.com/cracken/cracken/internal/cracken/cli/options"
	"github.com/cracken/cracken/internal/entropy"
	"github.com/cracken/cracken/internal/errkind"
	"github.com/cracken/cracken/internal/linefile"
	"github.com/cracken/cracken/internal/smartlist"
)

const (
	maskTypeHybrid  = "hybrid"
	maskTypeCharset = "charset"
)

// entropyOptions enumerates every flag of the 'entropy' subcommand (§6), in
// one structure, no variadic keyword passing.
type entropyOptions struct {
	fs afero.Fs

	passwordsFile string
	smartlists    []string
	maskType      string
	summary       bool
}

// NewEntropyCommand creates the 'entropy' command for CLI.
func NewEntropyCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &entropyOptions{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:                   "entropy [FLAGS] <password>",
		Short:                 "Report the minimum-entropy decomposition of a password",
		Args:                  commands.RequiresMaxArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntropy(cliOpts, opts, args)
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

func setupFlags(flags *pflag.FlagSet, opts *entropyOptions) {
	flags.StringVarP(&opts.passwordsFile, commands.PasswordsFileFlag, commands.PasswordsFileShortFlag, "", commands.PasswordsFileUsage)
	flags.StringArrayVarP(&opts.smartlists, commands.SmartlistFlag, commands.SmartlistShortFlag, nil, commands.SmartlistUsage)
	flags.StringVarP(&opts.maskType, commands.MaskTypeFlag, commands.MaskTypeShortFlag, commands.MaskTypeDefaultValue, commands.MaskTypeUsage)
	flags.BoolVarP(&opts.summary, commands.SummaryFlag, commands.SummaryShortFlag, commands.SummaryDefaultValue, commands.SummaryUsage)
}

func runEntropy(cliOpts *options.CliOptions, opts *entropyOptions, args []string) error {
	if opts.maskType != maskTypeHybrid && opts.maskType != maskTypeCharset {
		return clierrors.NewUsageError(errors.Errorf("unknown mask type %q: expected hybrid or charset", opts.maskType))
	}

	if len(opts.smartlists) == 0 && opts.maskType == maskTypeHybrid {
		return clierrors.NewUsageError(errors.New("entropy -t hybrid requires at least one -f/--smartlist"))
	}

	passwords, err := passwordSource(opts, args)
	if err != nil {
		return err
	}

	lists, err := loadSmartlists(opts.fs, opts.smartlists)
	if err != nil {
		return err
	}

	decomposer, err := entropy.NewDecomposer(lists)
	if err != nil {
		return err
	}

	if opts.summary {
		return printSummary(cliOpts, opts, decomposer, passwords)
	}

	return printReports(cliOpts, decomposer, passwords)
}

// passwordSource resolves the single positional password or every line of
// -p/--passwords-file (§6).
func passwordSource(opts *entropyOptions, args []string) ([]string, error) {
	if opts.passwordsFile != "" {
		f, err := opts.fs.Open(opts.passwordsFile)
		if err != nil {
			return nil, errkind.NewIOReadFailed(opts.passwordsFile, err)
		}
		defer f.Close()

		return linefile.ReadLines(f, opts.passwordsFile)
	}

	if len(args) != 1 {
		return nil, clierrors.NewUsageError(errors.New("entropy requires a password argument or -p/--passwords-file"))
	}

	return []string{args[0]}, nil
}

func loadSmartlists(fs afero.Fs, paths []string) ([]*smartlist.Smartlist, error) {
	lists := make([]*smartlist.Smartlist, 0, len(paths))

	for i, path := range paths {
		f, err := fs.Open(path)
		if err != nil {
			return nil, errkind.NewIOReadFailed(path, err)
		}

		sl, err := smartlist.Load(f, path, i)

		_ = f.Close()

		if err != nil {
			return nil, err
		}

		lists = append(lists, sl)
	}

	return lists, nil
}

func printReports(cliOpts *options.CliOptions, d *entropy.Decomposer, passwords []string) error {
	for _, pw := range passwords {
		hybrid := d.Decompose([]byte(pw))
		charset := entropy.CharsetSplit([]byte(pw))

		fmt.Fprint(cliOpts.Out(), entropy.Report(hybrid, charset))
	}

	return nil
}

// printSummary aggregates entropy across every password into an aggregate
// table (§6 "-s/--summary": "print an aggregate summary instead of
// per-password reports"; SPEC_FULL.md "count of passwords analyzed, mean
// entropy, min/max entropy, mask-class histogram"): count/min/max/mean
// entropy for both mask types, followed by a histogram of how often each
// distinct mask class (the -t/--mask-type decomposition's mask string)
// recurs across the analyzed passwords.
func printSummary(cliOpts *options.CliOptions, opts *entropyOptions, d *entropy.Decomposer, passwords []string) error {
	var (
		hybridSum, charsetSum float64
		hybridMin, charsetMin float64
		hybridMax, charsetMax float64
	)

	histogram := make(map[string]int)

	var maskClasses []string

	for i, pw := range passwords {
		hybrid := d.Decompose([]byte(pw))
		charset := entropy.CharsetSplit([]byte(pw))

		hybridSum += hybrid.Entropy
		charsetSum += charset.Entropy

		if i == 0 || hybrid.Entropy < hybridMin {
			hybridMin = hybrid.Entropy
		}

		if i == 0 || hybrid.Entropy > hybridMax {
			hybridMax = hybrid.Entropy
		}

		if i == 0 || charset.Entropy < charsetMin {
			charsetMin = charset.Entropy
		}

		if i == 0 || charset.Entropy > charsetMax {
			charsetMax = charset.Entropy
		}

		maskClass := hybrid.MaskString()
		if opts.maskType == maskTypeCharset {
			maskClass = charset.MaskString()
		}

		if _, seen := histogram[maskClass]; !seen {
			maskClasses = append(maskClasses, maskClass)
		}

		histogram[maskClass]++
	}

	n := len(passwords)

	hybridMean, charsetMean := 0.0, 0.0
	if n > 0 {
		hybridMean = hybridSum / float64(n)
		charsetMean = charsetSum / float64(n)
	}

	table := tablewriter.NewWriter(cliOpts.Out())

	if err := table.Header("mask-type", "count", "min", "max", "mean"); err != nil {
		return err
	}

	rows := [][]string{
		{"hybrid", fmt.Sprintf("%d", n), fmt.Sprintf("%.2f", hybridMin), fmt.Sprintf("%.2f", hybridMax), fmt.Sprintf("%.2f", hybridMean)},
		{"charset", fmt.Sprintf("%d", n), fmt.Sprintf("%.2f", charsetMin), fmt.Sprintf("%.2f", charsetMax), fmt.Sprintf("%.2f", charsetMean)},
	}

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	return printMaskClassHistogram(cliOpts, histogram, maskClasses)
}

// printMaskClassHistogram renders how often each distinct mask class
// recurred, most frequent first (ties broken alphabetically, so output is
// deterministic regardless of map iteration order).
func printMaskClassHistogram(cliOpts *options.CliOptions, histogram map[string]int, maskClasses []string) error {
	sort.Slice(maskClasses, func(i, j int) bool {
		if histogram[maskClasses[i]] != histogram[maskClasses[j]] {
			return histogram[maskClasses[i]] > histogram[maskClasses[j]]
		}

		return maskClasses[i] < maskClasses[j]
	})

	table := tablewriter.NewWriter(cliOpts.Out())

	if err := table.Header("mask-class", "count"); err != nil {
		return err
	}

	for _, maskClass := range maskClasses {
		if err := table.Append([]string{maskClass, fmt.Sprintf("%d", histogram[maskClass])}); err != nil {
			return err
		}
	}

	return table.Render()
}
