package watrix

import (
	"cmp"

	"github.com/AlexWan0/succinct/queue"
)

// topKItem is a node of the implicit partition tree: the values in
// ranze at layer depth all start with the depth bits of prefix.
type topKItem struct {
	ranze  Range
	depth  int
	prefix uint8
}

// compareTopK orders wider ranges first, then smaller prefixes.
// A leaf's ancestors are never narrower than the leaf and never have a
// larger prefix, so leaves come out by count descending, symbol ascending.
func compareTopK(a, b topKItem) int {
	if c := cmp.Compare(b.ranze.Len(), a.ranze.Len()); c != 0 {
		return c
	}
	return cmp.Compare(a.prefix, b.prefix)
}

// TopK returns the k most frequent values in T[ranze.Bpos, ranze.Epos)
// with their counts, ordered by count descending and then by value.
// Fewer than k results are returned if the range holds fewer distinct values.
func (wm *WaveletMatrix) TopK(ranze Range, k int) []Frequency {
	wm.checkRange(ranze)
	ret := make([]Frequency, 0, min(max(k, 0), 1<<symbolBits))
	if k <= 0 || ranze.Len() == 0 {
		return ret
	}
	h := queue.NewWithComparator(compareTopK)
	h.Push(topKItem{ranze: ranze})
	for len(ret) < k {
		item, ok := h.Pop()
		if !ok {
			break
		}
		if item.depth == symbolBits {
			ret = append(ret, Frequency{Symbol: item.prefix, Count: item.ranze.Len()})
			continue
		}
		layer := wm.layers[item.depth]
		zb := layer.Rank0(item.ranze.Bpos)
		ze := layer.Rank0(item.ranze.Epos)
		if zb < ze {
			h.Push(topKItem{Range{zb, ze}, item.depth + 1, item.prefix << 1})
		}
		ob := wm.zeros[item.depth] + item.ranze.Bpos - zb
		oe := wm.zeros[item.depth] + item.ranze.Epos - ze
		if ob < oe {
			h.Push(topKItem{Range{ob, oe}, item.depth + 1, item.prefix<<1 | 1})
		}
	}
	return ret
}
