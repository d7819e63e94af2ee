package orchestration

import (
	"cmp"

	"github.com/addrummond/heap"

	"github.com/agbru/sweepcalc/internal/sweep"
)

// completion pairs a finished job's result with its input index.
type completion struct {
	index  int
	result sweep.Result
}

func (a *completion) Cmp(b *completion) int {
	return cmp.Compare(a.index, b.index)
}

// inorderBuffer turns an arbitrary completion order back into input order.
// Completions arriving ahead of their turn are parked in a min-heap keyed by
// input index; each Add returns the maximal run of completions that are now
// ready to emit.
type inorderBuffer struct {
	next    int
	pending heap.Heap[completion, heap.Min]
}

// Add inserts one completion and returns the completions ready to emit, in
// input order. The returned slice is empty while the next expected index is
// still outstanding.
func (b *inorderBuffer) Add(c completion) []completion {
	heap.PushOrderable(&b.pending, c)
	var ready []completion
	for {
		top, ok := heap.Peek(&b.pending)
		if !ok || top.index != b.next {
			break
		}
		emitted, _ := heap.PopOrderable(&b.pending)
		ready = append(ready, emitted)
		b.next++
	}
	return ready
}
