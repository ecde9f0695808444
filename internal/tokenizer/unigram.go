package tokenizer

import "sort"

// unigramTrainer ranks distinct corpus entries by frequency and keeps the
// top max_vocab, ties broken by first-seen order (min_freq does not apply
// to this algorithm, per §6).
type unigramTrainer struct{}

func (unigramTrainer) Train(corpora []string, p Params) ([]string, error) {
	counts := make(map[string]int)

	var order []string

	for _, w := range corpora {
		if counts[w] == 0 {
			order = append(order, w)
		}

		counts[w]++
	}

	rank := make(map[string]int, len(order))
	for i, w := range order {
		rank[w] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}

		return rank[order[i]] < rank[order[j]]
	})

	if p.MaxVocab > 0 && len(order) > p.MaxVocab {
		order = order[:p.MaxVocab]
	}

	return order, nil
}
