package tokenizer

import "container/heap"

// wordpieceTrainer merges the adjacent pair that maximizes
// count(pair) / (count(left) * count(right)) each round — the classic
// WordPiece likelihood-gain score, as opposed to BPE's raw pair frequency.
// min_freq does not apply to this algorithm (§6: BPE only).
type wordpieceTrainer struct{}

type scoredPair struct {
	left, right string
	score       float64
}

type scoredPairHeap []scoredPair

func (h scoredPairHeap) Len() int { return len(h) }

func (h scoredPairHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}

	return h[i].left+h[i].right > h[j].left+h[j].right
}

func (h scoredPairHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *scoredPairHeap) Push(x any) { *h = append(*h, x.(scoredPair)) }

func (h *scoredPairHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

func (wordpieceTrainer) Train(corpora []string, p Params) ([]string, error) {
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

	for p.MaxVocab <= 0 || len(vocabOrder) < p.MaxVocab {
		symCounts, pairCounts := countSymbolsAndPairs(seqs)
		if len(pairCounts) == 0 {
			break
		}

		top := topScoredPairs(pairCounts, symCounts, pairBatch)
		if len(top) == 0 {
			break
		}

		best := top[0]

		combined := best.left + best.right
		if vocabSet[combined] {
			break
		}

		mergeAdjacent(seqs, best.left, best.right, combined)
		addVocab(combined)
	}

	if p.MaxVocab > 0 && len(vocabOrder) > p.MaxVocab {
		vocabOrder = vocabOrder[:p.MaxVocab]
	}

	return vocabOrder, nil
}

func countSymbolsAndPairs(seqs [][]string) (map[string]int, map[[2]string]int) {
	symCounts := make(map[string]int)
	pairCounts := make(map[[2]string]int)

	for _, seq := range seqs {
		for i, s := range seq {
			symCounts[s]++

			if i+1 < len(seq) {
				pairCounts[[2]string{s, seq[i+1]}]++
			}
		}
	}

	return symCounts, pairCounts
}

func topScoredPairs(pairCounts map[[2]string]int, symCounts map[string]int, k int) []scoredPair {
	h := make(scoredPairHeap, 0, k+1)
	heap.Init(&h)

	for pair, count := range pairCounts {
		denom := float64(symCounts[pair[0]]) * float64(symCounts[pair[1]])
		if denom == 0 {
			continue
		}

		sp := scoredPair{left: pair[0], right: pair[1], score: float64(count) / denom}

		if h.Len() < k {
			heap.Push(&h, sp)
			continue
		}

		if sp.score > h[0].score {
			heap.Pop(&h)
			heap.Push(&h, sp)
		}
	}

	out := make([]scoredPair, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(scoredPair)
	}

	return out
}
