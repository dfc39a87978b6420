package huffman

import (
	"container/heap"
	"fmt"
	"sort"
)

// noChild marks the child slots of leaf nodes.
const noChild = -1

// A Node is one slot in a Tree's arena. Leaves carry a symbol and no
// children; internal nodes carry the summed frequency of exactly two
// children.
type Node struct {
	Symbol rune
	Freq   int
	Leaf   bool
	Left   int // arena index, noChild for leaves
	Right  int
}

// A Tree is a Huffman tree stored as a node arena. Child links are indices
// into Nodes, which keeps construction and traversal iterative regardless of
// alphabet size. The tree is immutable once BuildTree returns.
type Tree struct {
	Nodes []Node
	Root  int
}

// A HeapEntry is one (label, frequency) pair of a build snapshot. Internal
// nodes appear under the "*" placeholder.
type HeapEntry struct {
	Label string `json:"label"`
	Freq  int    `json:"freq"`
}

// A BuildStep records the merge-candidate pool once before any merges
// (step 0) and once after each merge. It exists for observability and
// visualization; decoding never consumes it.
type BuildStep struct {
	Step int         `json:"step"`
	Heap []HeapEntry `json:"heap"`
}

// ErrEmptyAlphabet is returned when a tree is requested for an empty
// frequency table.
var ErrEmptyAlphabet = fmt.Errorf("cannot build a tree over zero symbols")

// nodeHeap is a min-heap of arena indices ordered by node frequency.
// Equal frequencies are ordered by arena index, which is the insertion
// sequence: leaves enter in ascending symbol order and internal nodes in
// creation order, so the heap order is deterministic.
type nodeHeap struct {
	tree *Tree
	idx  []int
}

func (h *nodeHeap) Len() int { return len(h.idx) }
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.idx[i], h.idx[j]
	if h.tree.Nodes[a].Freq != h.tree.Nodes[b].Freq {
		return h.tree.Nodes[a].Freq < h.tree.Nodes[b].Freq
	}
	return a < b
}
func (h *nodeHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *nodeHeap) Push(x any)    { h.idx = append(h.idx, x.(int)) }
func (h *nodeHeap) Pop() any {
	n := len(h.idx)
	x := h.idx[n-1]
	h.idx = h.idx[:n-1]
	return x
}

// BuildTree repeatedly merges the two lowest-frequency nodes until a single
// root remains, returning the tree and the snapshots taken at each step.
// The first node popped for a merge becomes the left child.
// For an alphabet of k symbols the tree holds exactly 2k-1 nodes; a
// single-symbol alphabet yields a tree that is one leaf and no merges.
func BuildTree(freq FrequencyTable) (*Tree, []BuildStep, error) {
	if len(freq) == 0 {
		return nil, nil, ErrEmptyAlphabet
	}

	symbols := make([]rune, 0, len(freq))
	for r := range freq {
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	t := &Tree{Nodes: make([]Node, 0, 2*len(freq)-1)}
	h := &nodeHeap{tree: t, idx: make([]int, 0, len(freq))}
	for _, r := range symbols {
		t.Nodes = append(t.Nodes, Node{Symbol: r, Freq: freq[r], Leaf: true, Left: noChild, Right: noChild})
		h.idx = append(h.idx, len(t.Nodes)-1)
	}
	heap.Init(h)

	steps := []BuildStep{snapshot(t, h.idx, 0)}
	for h.Len() > 1 {
		first := heap.Pop(h).(int)
		second := heap.Pop(h).(int)
		t.Nodes = append(t.Nodes, Node{
			Freq:  t.Nodes[first].Freq + t.Nodes[second].Freq,
			Left:  first,
			Right: second,
		})
		heap.Push(h, len(t.Nodes)-1)
		steps = append(steps, snapshot(t, h.idx, len(steps)))
	}
	t.Root = h.idx[0]
	return t, steps, nil
}

// snapshot captures the queue contents sorted by frequency, then insertion
// order.
func snapshot(t *Tree, idx []int, step int) BuildStep {
	sorted := append([]int(nil), idx...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if t.Nodes[a].Freq != t.Nodes[b].Freq {
			return t.Nodes[a].Freq < t.Nodes[b].Freq
		}
		return a < b
	})
	entries := make([]HeapEntry, len(sorted))
	for i, n := range sorted {
		label := "*"
		if t.Nodes[n].Leaf {
			label = string(t.Nodes[n].Symbol)
		}
		entries[i] = HeapEntry{Label: label, Freq: t.Nodes[n].Freq}
	}
	return BuildStep{Step: step, Heap: entries}
}
