package huffman

import (
	"cmp"
	"errors"
	"fmt"

	"huffcode/pkg/pqueue"
)

var (
	// ErrEmptyFrequencyTable is returned by Build when no symbol was observed.
	ErrEmptyFrequencyTable = errors.New("frequency table is empty")
	ErrNegativeFrequency   = errors.New("negative frequency")
)

// Node is a node of a Huffman tree, either a *Leaf or an *Internal.
type Node interface {
	// Weight is the frequency of a leaf or the sum of an internal node's
	// leaves.
	Weight() int
	node()
}

// Leaf carries one symbol and its frequency.
type Leaf struct {
	Symbol rune
	Freq   int
}

// Internal owns exactly two subtrees.
type Internal struct {
	Freq        int
	Left, Right Node
}

func (l *Leaf) Weight() int     { return l.Freq }
func (n *Internal) Weight() int { return n.Freq }

func (*Leaf) node()     {}
func (*Internal) node() {}

// lighter ranks the node with the lower weight first.
func lighter(a, b Node) int {
	return cmp.Compare(b.Weight(), a.Weight())
}

// Build creates the Huffman tree for freq by merging the two lightest nodes
// until one remains. The first node extracted becomes the left child. A
// table with a single observed symbol yields a lone leaf.
func Build(freq FrequencyTable) (Node, error) {
	pq := pqueue.New[Node](lighter)
	for slot, f := range freq {
		if f < 0 {
			return nil, fmt.Errorf("%w: %d for %q", ErrNegativeFrequency, f, SymbolAt(slot))
		}
		if f == 0 {
			continue
		}
		pq.Insert(&Leaf{Symbol: SymbolAt(slot), Freq: f})
	}
	if pq.IsEmpty() {
		return nil, ErrEmptyFrequencyTable
	}

	for pq.Size() > 1 {
		left, _ := pq.Extract()
		right, _ := pq.Extract()
		pq.Insert(&Internal{
			Freq:  left.Weight() + right.Weight(),
			Left:  left,
			Right: right,
		})
	}
	root, _ := pq.Extract()
	return root, nil
}

// Depth returns the length of the longest root-to-leaf path.
func Depth(root Node) int {
	n, ok := root.(*Internal)
	if !ok {
		return 0
	}
	return 1 + max(Depth(n.Left), Depth(n.Right))
}

// Leaves returns the leaves of root from left to right.
func Leaves(root Node) []*Leaf {
	var leaves []*Leaf
	Walk(root, func(n Node, _ int) bool {
		if l, ok := n.(*Leaf); ok {
			leaves = append(leaves, l)
		}
		return true
	})
	return leaves
}
