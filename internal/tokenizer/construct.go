package tokenizer

import (
	"github.com/cracken/cracken/internal/cracken/common"
	"github.com/cracken/cracken/internal/errkind"
)

// ConstructParams holds the create subcommand's tokenizer-related options
// (§6: -t/--tokenizer, -m/--vocab-max-size, --min-frequency, -l/--min-word-len,
// --numbers-max-size).
type ConstructParams struct {
	Algorithms    []Algorithm
	MaxVocab      int
	MinFreq       int
	MinWordLen    int
	NumbersMaxLen int
	RunID         string
}

// Construct runs every requested algorithm (concurrently, via a worker
// pool — each trainer run is independent and read-only over the shared
// corpus) and returns the union of their vocabularies, de-duplicated
// preserving first-seen order across algorithms in the order they were
// requested, then filtered by minimum length and by a maximum length for
// all-digit tokens (§4.6).
func Construct(corpora []string, p ConstructParams) ([]string, error) {
	results := make([][]string, len(p.Algorithms))

	pool := common.NewWorkerPool(func(i int) error {
		trainer, err := New(p.Algorithms[i])
		if err != nil {
			return err
		}

		params := Params{MaxVocab: p.MaxVocab, MinFreq: p.MinFreq, RunID: p.RunID}

		vocab, err := trainer.Train(corpora, params)
		if err != nil {
			return errkind.NewTokenizerFailed(string(p.Algorithms[i]), p.RunID, err)
		}

		results[i] = vocab

		return nil
	}, 0, workerCount(len(p.Algorithms)))

	pool.Start()
	defer pool.Stop()

	for i := range p.Algorithms {
		pool.Submit(i)
	}

	if err := pool.WaitOrError(); err != nil {
		return nil, err
	}

	return unionFilter(results, p), nil
}

func workerCount(n int) int {
	if n < 1 {
		return 1
	}

	return n
}

func unionFilter(vocabs [][]string, p ConstructParams) []string {
	seen := make(map[string]bool)

	var out []string

	for _, vocab := range vocabs {
		for _, tok := range vocab {
			if seen[tok] {
				continue
			}

			if !passesFilters(tok, p) {
				continue
			}

			seen[tok] = true
			out = append(out, tok)
		}
	}

	return out
}

func passesFilters(tok string, p ConstructParams) bool {
	if p.MinWordLen > 0 && len(tok) < p.MinWordLen {
		return false
	}

	if p.NumbersMaxLen > 0 && isAllDigits(tok) && len(tok) > p.NumbersMaxLen {
		return false
	}

	return true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
