package binset

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/ddeemerpurdue/fastaprocessing/internal/fasta"
)

// TopN returns the n longest records, longest first. Records of equal length
// keep their input order. If n exceeds the set size every record is returned.
// The input set is not modified.
func TopN(set fasta.Set, n int) (fasta.Set, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be >= 0, got %d", ErrInvalidArgument, n)
	}

	sorted := make(fasta.Set, len(set))
	copy(sorted, set)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Seq) > len(sorted[j].Seq)
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}

// TopNHeap selects the same records as TopN with a min-heap bounded to n
// entries. It is cheaper than a full sort when n is much smaller than the set.
func TopNHeap(set fasta.Set, n int) (fasta.Set, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be >= 0, got %d", ErrInvalidArgument, n)
	}
	if n == 0 {
		return fasta.Set{}, nil
	}

	h := &ranked{set: set}
	for i := range set {
		if h.Len() < n {
			heap.Push(h, i)
			continue
		}
		if h.ranksAbove(i, h.idx[0]) {
			h.idx[0] = i
			heap.Fix(h, 0)
		}
	}

	out := make(fasta.Set, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = set[heap.Pop(h).(int)]
	}
	return out, nil
}

// ranked is a min-heap of record indexes. The root is the record that would
// come last in TopN's output.
type ranked struct {
	set fasta.Set
	idx []int
}

// ranksAbove reports whether record a precedes record b in the TopN order:
// longer first, then earlier in the input.
func (h *ranked) ranksAbove(a, b int) bool {
	la, lb := len(h.set[a].Seq), len(h.set[b].Seq)
	if la != lb {
		return la > lb
	}
	return a < b
}

func (h *ranked) Len() int           { return len(h.idx) }
func (h *ranked) Less(i, j int) bool { return h.ranksAbove(h.idx[j], h.idx[i]) }
func (h *ranked) Swap(i, j int)      { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *ranked) Push(x any)         { h.idx = append(h.idx, x.(int)) }

func (h *ranked) Pop() any {
	old := h.idx
	x := old[len(old)-1]
	h.idx = old[:len(old)-1]
	return x
}
