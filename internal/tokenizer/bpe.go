package tokenizer

import "container/heap"

// pairBatch bounds how many merges are applied per counting pass, the same
// "grow in fractions" idea axiomhq/fsst uses to amortize the cost of
// recounting over several merges instead of one.
const pairBatch = 8

// bpeTrainer is byte-pair-encoding: repeatedly merge the most frequent
// adjacent symbol pair across the corpus until max_vocab is reached or no
// remaining pair clears min_freq.
type bpeTrainer struct{}

type pairCount struct {
	left, right string
	count       int
}

// pairHeap is a min-heap over pairCount by count, used to pick the top-K
// merge candidates each round without sorting the whole candidate set —
// the same top-K-via-min-heap shape as axiomhq-fsst's qsymHeap.
type pairHeap []pairCount

func (h pairHeap) Len() int { return len(h) }

func (h pairHeap) Less(i, j int) bool {
	if h[i].count != h[j].count {
		return h[i].count < h[j].count
	}

	return h[i].left+h[i].right > h[j].left+h[j].right
}

func (h pairHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pairHeap) Push(x any) { *h = append(*h, x.(pairCount)) }

func (h *pairHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

func (bpeTrainer) Train(corpora []string, p Params) ([]string, error) {
	seqs := make([][]string, 0, len(corpora))
	vocabSet := make(map[string]bool)

	var vocabOrder []string

	addVocab := func(s string) {
		if !vocabSet[s] {
			vocabSet[s] = true
			vocabOrder = append(vocabOrder, s)
		}
	}

	for _, word := range corpora {
		seq := splitBytes(word)
		seqs = append(seqs, seq)

		for _, s := range seq {
			addVocab(s)
		}
	}

	minFreq := p.MinFreq
	if minFreq < 1 {
		minFreq = 1
	}

	for p.MaxVocab <= 0 || len(vocabOrder) < p.MaxVocab {
		counts := countAdjacentPairs(seqs)
		if len(counts) == 0 {
			break
		}

		top := topPairs(counts, pairBatch)

		merged := false

		for _, c := range top {
			if c.count < minFreq {
				continue
			}

			combined := c.left + c.right
			if vocabSet[combined] {
				continue
			}

			mergeAdjacent(seqs, c.left, c.right, combined)
			addVocab(combined)

			merged = true

			if p.MaxVocab > 0 && len(vocabOrder) >= p.MaxVocab {
				break
			}
		}

		if !merged {
			break
		}
	}

	if p.MaxVocab > 0 && len(vocabOrder) > p.MaxVocab {
		vocabOrder = vocabOrder[:p.MaxVocab]
	}

	return vocabOrder, nil
}

func splitBytes(s string) []string {
	out := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i : i+1]
	}

	return out
}

func countAdjacentPairs(seqs [][]string) map[[2]string]int {
	counts := make(map[[2]string]int)

	for _, seq := range seqs {
		for i := 0; i+1 < len(seq); i++ {
			counts[[2]string{seq[i], seq[i+1]}]++
		}
	}

	return counts
}

func topPairs(counts map[[2]string]int, k int) []pairCount {
	h := make(pairHeap, 0, k+1)
	heap.Init(&h)

	for pair, count := range counts {
		c := pairCount{left: pair[0], right: pair[1], count: count}

		if h.Len() < k {
			heap.Push(&h, c)
			continue
		}

		if c.count > h[0].count {
			heap.Pop(&h)
			heap.Push(&h, c)
		}
	}

	out := make([]pairCount, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(pairCount)
	}

	return out
}

func mergeAdjacent(seqs [][]string, left, right, combined string) {
	for si, seq := range seqs {
		out := seq[:0:0]

		for i := 0; i < len(seq); i++ {
			if i+1 < len(seq) && seq[i] == left && seq[i+1] == right {
				out = append(out, combined)
				i++

				continue
			}

			out = append(out, seq[i])
		}

		seqs[si] = out
	}
}
