// Package entropy implements the hybrid decomposer (§4.5): the
// minimum-entropy split of a password into smartlist tokens and built-in
// character-class runs, via A* search, plus the charset-only greedy mode
// and report formatting.
package entropy

import (
	"container/heap"
	"fmt"
	"math"
	"strings"

	"github.com/cracken/cracken/internal/mask"
	"github.com/cracken/cracken/internal/smartlist"
)

// TokenKind tags a Token as a smartlist hit or a class run.
type TokenKind int

const (
	TokenClass TokenKind = iota
	TokenSmartlist
)

// Token is one piece of a hybrid split (§3).
type Token struct {
	Text           string
	Kind           TokenKind
	Class          mask.BuiltinKind // valid when Kind == TokenClass
	SmartlistIndex int              // valid when Kind == TokenSmartlist
	Weight         float64
}

// Split is a full decomposition of a password plus its total entropy.
type Split struct {
	Tokens  []Token
	Entropy float64
}

// MaskString renders the split as a mask string (§6 report format):
// consecutive class-run bytes become repeated single-class specifiers, and
// each distinct smartlist referenced is assigned the next free ?wN slot, in
// first-appearance order, so the same smartlist reused later in the split
// reuses its slot number.
func (s Split) MaskString() string {
	var b strings.Builder

	slot := make(map[int]int)
	next := 1

	for _, t := range s.Tokens {
		switch t.Kind {
		case TokenSmartlist:
			n, ok := slot[t.SmartlistIndex]
			if !ok {
				n = next
				slot[t.SmartlistIndex] = n
				next++
			}

			fmt.Fprintf(&b, "?w%d", n)
		case TokenClass:
			spec := classSpecifier(t.Class)
			for i := 0; i < len(t.Text); i++ {
				b.WriteByte('?')
				b.WriteByte(spec)
			}
		}
	}

	return b.String()
}

// edge is one candidate transition out of a search state.
type edge struct {
	token  Token
	length int
}

// edgesFrom generates every edge leaving position i (§4.5 "Search space"):
// every smartlist hit at i, every prefix of the maximal specific-class run
// at i, and every prefix of the (always present) byte-class run at i.
func edgesFrom(p []byte, i int, ct *classTable, ix *smartlist.Index) []edge {
	var edges []edge

	if ix != nil {
		for _, hit := range ix.MatchesAt(p, i) {
			sl := p[i : i+hit.Length]
			edges = append(edges, edge{
				length: hit.Length,
				token: Token{
					Text:           string(sl),
					Kind:           TokenSmartlist,
					SmartlistIndex: hit.SmartlistIndex,
					Weight:         smartlistWeight(ix, hit.SmartlistIndex),
				},
			})
		}
	}

	if k, run, ok := ct.maximalRun(p, i); ok {
		w := classWeight(k)
		for length := 1; length <= run; length++ {
			edges = append(edges, edge{
				length: length,
				token: Token{
					Text:   string(p[i : i+length]),
					Kind:   TokenClass,
					Class:  k,
					Weight: w * float64(length),
				},
			})
		}
	}

	byteRun := len(p) - i
	byteW := classWeight(mask.Byte)

	for length := 1; length <= byteRun; length++ {
		edges = append(edges, edge{
			length: length,
			token: Token{
				Text:   string(p[i : i+length]),
				Kind:   TokenClass,
				Class:  mask.Byte,
				Weight: byteW * float64(length),
			},
		})
	}

	return edges
}

// smartlistWeight looks up the per-hit weight (log2(|smartlist|)) by index;
// callers only ever pass indices returned by the same index's MatchesAt, so
// this always finds its list.
func smartlistWeight(ix *smartlist.Index, idx int) float64 {
	return ix.Weight(idx)
}

// cost is the lexicographic path cost used both to order the A* open set
// and to resolve ties: total weight first (§4.5 "minimum entropy"), fewer
// tokens second, more smartlist tokens third (§4.5 "preferring smartlist
// tokens over class runs at equal weight").
type cost struct {
	weight      float64
	tokens      int
	classTokens int
}

const weightEpsilon = 1e-9

func (a cost) less(b cost) bool {
	if math.Abs(a.weight-b.weight) > weightEpsilon {
		return a.weight < b.weight
	}

	if a.tokens != b.tokens {
		return a.tokens < b.tokens
	}

	return a.classTokens < b.classTokens
}

// searchItem is one entry in the A* open set.
type searchItem struct {
	pos  int
	g    cost
	prio float64 // g.weight + heuristic(pos), the A* priority
}

type openHeap []searchItem

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if math.Abs(h[i].prio-h[j].prio) > weightEpsilon {
		return h[i].prio < h[j].prio
	}

	return h[i].g.less(h[j].g)
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x any) { *h = append(*h, x.(searchItem)) }

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Decomposer runs the hybrid decomposer over a fixed set of smartlists.
type Decomposer struct {
	lists []*smartlist.Smartlist
	index *smartlist.Index
	table *classTable
	floor float64 // global per-character cost lower bound, the A* heuristic slope
}

// NewDecomposer builds the acceleration index and the admissibility floor
// once for a set of smartlists, for reuse across many passwords.
func NewDecomposer(lists []*smartlist.Smartlist) (*Decomposer, error) {
	ix, err := smartlist.Build(lists)
	if err != nil {
		return nil, err
	}

	return &Decomposer{
		lists: lists,
		index: ix,
		table: newClassTable(),
		floor: perCharFloor(lists),
	}, nil
}

// perCharFloor computes a global lower bound on the per-character cost of
// any edge in the search graph. §4.5 suggests log2(10) (digits, the
// cheapest fixed class) as "a simple admissible heuristic", but that bound
// alone is unsound once smartlists are in play: a smartlist hit's weight is
// log2(|list|) for the *whole* token, so its per-character rate keeps
// falling as the matched token gets longer, and can drop below log2(10).
// The true floor is the minimum over every class's per-character rate and,
// for each smartlist, log2(|list|) divided by its longest token (the
// cheapest rate that list can ever deliver) — anything below the floor
// never underestimates true remaining cost less than the actual minimum
// rate achievable anywhere in the graph, so h(i) = (n-i)*floor stays
// admissible and monotone.
func perCharFloor(lists []*smartlist.Smartlist) float64 {
	floor := classWeight(mask.Digit)

	for _, sl := range lists {
		if sl.Len() == 0 {
			continue
		}

		maxLen := 0
		for _, tok := range sl.Tokens {
			if len(tok) > maxLen {
				maxLen = len(tok)
			}
		}

		if maxLen == 0 {
			continue
		}

		rate := math.Log2(float64(sl.Len())) / float64(maxLen)
		if rate < floor {
			floor = rate
		}
	}

	return floor
}

// Heuristic returns h(i), the admissible lower bound on the entropy of the
// remainder of a password of length n starting at position i.
func (d *Decomposer) Heuristic(n, i int) float64 {
	return float64(n-i) * d.floor
}

// Decompose returns the minimum-entropy split of p (§4.5). Always succeeds:
// the byte class admits every byte, so a split always exists. In the
// returned split each class-run byte is its own token; smartlist hits stay
// whole.
func (d *Decomposer) Decompose(p []byte) Split {
	n := len(p)
	if n == 0 {
		return Split{}
	}

	best := make([]cost, n+1)
	settled := make([]bool, n+1)
	parentPos := make([]int, n+1)
	parentTok := make([]Token, n+1)

	for i := range best {
		best[i] = cost{weight: math.Inf(1)}
	}

	best[0] = cost{}

	open := &openHeap{{pos: 0, g: cost{}, prio: d.Heuristic(n, 0)}}
	heap.Init(open)

	for open.Len() > 0 {
		item := heap.Pop(open).(searchItem)

		if settled[item.pos] {
			continue
		}

		if item.g != best[item.pos] {
			// Stale entry: a better path to this position was already found.
			continue
		}

		settled[item.pos] = true

		if item.pos == n {
			break
		}

		for _, e := range edgesFrom(p, item.pos, d.table, d.index) {
			next := item.pos + e.length
			if settled[next] {
				continue
			}

			classTokens := item.g.classTokens
			if e.token.Kind == TokenClass {
				classTokens++
			}

			cand := cost{
				weight:      item.g.weight + e.token.Weight,
				tokens:      item.g.tokens + 1,
				classTokens: classTokens,
			}

			if cand.less(best[next]) {
				best[next] = cand
				parentPos[next] = item.pos
				parentTok[next] = e.token

				heap.Push(open, searchItem{pos: next, g: cand, prio: cand.weight + d.Heuristic(n, next)})
			}
		}
	}

	tokens := make([]Token, 0, best[n].tokens)

	for pos := n; pos > 0; pos = parentPos[pos] {
		tok := parentTok[pos]
		if tok.Kind != TokenClass {
			tokens = append([]Token{tok}, tokens...)

			continue
		}

		// Class runs are reported one byte per token.
		for j := len(tok.Text) - 1; j >= 0; j-- {
			b := Token{Text: tok.Text[j : j+1], Kind: TokenClass, Class: tok.Class, Weight: classWeight(tok.Class)}
			tokens = append([]Token{b}, tokens...)
		}
	}

	return Split{Tokens: tokens, Entropy: best[n].weight}
}
