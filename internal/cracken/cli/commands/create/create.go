// Package create implements the 'create' subcommand: train a smartlist
// vocabulary from a password corpus via the external tokenizer contract
// (§4.6) and write it out in the shared newline-separated format.
package create

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cracken/cracken/internal/cracken/cli/commands"
	clierrors "github.com/cracken/cracken/internal/cracken/cli/errors"
	"github.com/cracken/cracken/internal/cracken/cli/options"
	"github.com/cracken/cracken/internal/cracken/logger/handlers"
	"github.com/cracken/cracken/internal/errkind"
	"github.com/cracken/cracken/internal/linefile"
	"github.com/cracken/cracken/internal/tokenizer"
)

// createOptions enumerates every flag of the 'create' subcommand (§6), in
// one structure, no variadic keyword passing.
type createOptions struct {
	fs afero.Fs

	corpusFiles   []string
	smartlistOut  string
	tokenizers    []string
	vocabMaxSize  int
	minFrequency  int
	minWordLen    int
	numbersMaxLen int
	quiet         bool
}

// NewCreateCommand creates the 'create' command for CLI.
func NewCreateCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &createOptions{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:                   "create [FLAGS]",
		Short:                 "Train a smartlist vocabulary from a password corpus",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cliOpts, opts)
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

func setupFlags(flags *pflag.FlagSet, opts *createOptions) {
	flags.StringArrayVarP(&opts.corpusFiles, commands.CorpusFileFlag, commands.CorpusFileShortFlag, nil, commands.CorpusFileUsage)
	flags.StringVarP(&opts.smartlistOut, commands.SmartlistOutFlag, commands.SmartlistOutShortFlag, "", commands.SmartlistOutUsage)
	flags.StringArrayVarP(&opts.tokenizers, commands.TokenizerFlag, commands.TokenizerShortFlag, []string{commands.TokenizerDefaultValue}, commands.TokenizerUsage)
	flags.IntVarP(&opts.vocabMaxSize, commands.VocabMaxSizeFlag, commands.VocabMaxSizeShortFlag, commands.VocabMaxSizeDefaultValue, commands.VocabMaxSizeUsage)
	flags.IntVar(&opts.minFrequency, commands.MinFrequencyFlag, commands.MinFrequencyDefaultValue, commands.MinFrequencyUsage)
	flags.IntVarP(&opts.minWordLen, commands.MinWordLenFlag, commands.MinWordLenShortFlag, commands.MinWordLenDefaultValue, commands.MinWordLenUsage)
	flags.IntVar(&opts.numbersMaxLen, commands.NumbersMaxSizeFlag, commands.NumbersMaxSizeDefaultValue, commands.NumbersMaxSizeUsage)
	flags.BoolVarP(&opts.quiet, commands.QuietFlag, commands.QuietShortFlag, commands.QuietDefaultValue, commands.QuietUsage)
}

func runCreate(cliOpts *options.CliOptions, opts *createOptions) error {
	if len(opts.corpusFiles) == 0 {
		return clierrors.NewUsageError(errors.New("create requires at least one -f/--file"))
	}

	if opts.smartlistOut == "" {
		return clierrors.NewUsageError(errors.New("create requires -o/--smartlist"))
	}

	algorithms := parseAlgorithms(opts.tokenizers)

	corpora, err := loadCorpora(opts.fs, opts.corpusFiles)
	if err != nil {
		return err
	}

	runID := uuid.NewString()

	logger := slog.Default()
	if opts.quiet {
		logger = handlers.DummyLogger
	}

	logger.Info("training tokenizer",
		slog.String("run_id", runID),
		slog.Int("corpus_files", len(opts.corpusFiles)),
		slog.Any("algorithms", algorithms),
	)

	vocab, err := tokenizer.Construct(corpora, tokenizer.ConstructParams{
		Algorithms:    algorithms,
		MaxVocab:      opts.vocabMaxSize,
		MinFreq:       opts.minFrequency,
		MinWordLen:    opts.minWordLen,
		NumbersMaxLen: opts.numbersMaxLen,
		RunID:         runID,
	})
	if err != nil {
		return err
	}

	logger.Info("tokenizer training finished", slog.String("run_id", runID), slog.Int("vocab_size", len(vocab)))

	return writeSmartlist(opts.fs, opts.smartlistOut, vocab)
}

func parseAlgorithms(names []string) []tokenizer.Algorithm {
	algorithms := make([]tokenizer.Algorithm, len(names))

	for i, name := range names {
		algorithms[i] = tokenizer.Algorithm(name)
	}

	return algorithms
}

func loadCorpora(fs afero.Fs, paths []string) ([]string, error) {
	var corpora []string

	for _, path := range paths {
		f, err := fs.Open(path)
		if err != nil {
			return nil, errkind.NewIOReadFailed(path, err)
		}

		lines, err := linefile.ReadLines(f, path)

		_ = f.Close()

		if err != nil {
			return nil, err
		}

		corpora = append(corpora, lines...)
	}

	return corpora, nil
}

func writeSmartlist(fs afero.Fs, path string, vocab []string) error {
	f, err := fs.Create(path)
	if err != nil {
		return errkind.NewIOWriteFailed(path, err)
	}
	defer f.Close()

	for _, tok := range vocab {
		if _, err := fmt.Fprintln(f, tok); err != nil {
			return errkind.NewIOWriteFailed(path, err)
		}
	}

	return nil
}
