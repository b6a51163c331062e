package huffman

import (
	"fmt"
	"io"
	"strings"
)

const printIndent = 5

// Walk visits root and its descendants in pre-order, left before right.
// Returning false from fn skips the children of the node just visited.
func Walk(root Node, fn func(n Node, depth int) bool) {
	walk(root, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	if in, ok := n.(*Internal); ok {
		walk(in.Left, depth+1, fn)
		walk(in.Right, depth+1, fn)
	}
}

// Print writes the tree rotated a quarter turn counter-clockwise: the right
// subtree above its parent, the left subtree below, each level indented by
// five spaces. Leaves print their frequency followed by the symbol.
func Print(w io.Writer, root Node) error {
	return printNode(w, root, 0)
}

func printNode(w io.Writer, n Node, indent int) error {
	pad := strings.Repeat(" ", indent)
	switch n := n.(type) {
	case *Leaf:
		_, err := fmt.Fprintf(w, "%s%d%c\n", pad, n.Freq, n.Symbol)
		return err
	case *Internal:
		if err := printNode(w, n.Right, indent+printIndent); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%d\n", pad, n.Freq); err != nil {
			return err
		}
		return printNode(w, n.Left, indent+printIndent)
	}
	return nil
}
