// Package tokenizer implements the external-collaborator contract of §4.6:
// train(corpora, algorithm, max_vocab, min_freq) -> ordered vocabulary. The
// core only depends on this contract; concrete trainers are pluggable.
package tokenizer

import "github.com/cracken/cracken/internal/errkind"

// Algorithm names a subword-tokenizer training algorithm (§6: repeatable
// -t/--tokenizer values).
type Algorithm string

const (
	BPE       Algorithm = "bpe"
	Unigram   Algorithm = "unigram"
	Wordpiece Algorithm = "wordpiece"
)

// Params bounds one training run (§6).
type Params struct {
	MaxVocab int
	MinFreq  int // BPE only
	RunID    string
}

// Trainer is the pluggable capability the core depends on: corpora in,
// ordered vocabulary out.
type Trainer interface {
	Train(corpora []string, p Params) ([]string, error)
}

// New resolves an Algorithm to its concrete Trainer.
func New(alg Algorithm) (Trainer, error) {
	switch alg {
	case BPE:
		return bpeTrainer{}, nil
	case Unigram:
		return unigramTrainer{}, nil
	case Wordpiece:
		return wordpieceTrainer{}, nil
	default:
		return nil, errkind.NewTokenizerFailed(string(alg), "", errUnknownAlgorithm(alg))
	}
}

type errUnknownAlgorithm Algorithm

func (e errUnknownAlgorithm) Error() string {
	return "unknown tokenizer algorithm: " + string(e)
}
