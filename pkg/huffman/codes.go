package huffman

import (
	"cmp"
	"slices"
	"strings"
)

// CodeTable maps symbols to their bit codes. It is read-only once derived.
type CodeTable struct {
	codes map[rune]string
}

// DeriveCodes walks root and assigns every leaf the path leading to it,
// '0' for a left branch and '1' for a right branch. A tree made of a
// single leaf gives that symbol the code "0".
func DeriveCodes(root Node) CodeTable {
	ct := CodeTable{codes: make(map[rune]string)}
	if root == nil {
		return ct
	}
	if l, ok := root.(*Leaf); ok {
		ct.codes[l.Symbol] = "0"
		return ct
	}
	deriveCodes(root, nil, ct.codes)
	return ct
}

func deriveCodes(n Node, prefix []byte, codes map[rune]string) {
	switch n := n.(type) {
	case *Leaf:
		codes[n.Symbol] = string(prefix)
	case *Internal:
		prefix = append(prefix, '0')
		deriveCodes(n.Left, prefix, codes)
		prefix[len(prefix)-1] = '1'
		deriveCodes(n.Right, prefix, codes)
	}
}

// Code returns the code for r and whether r has one.
func (ct CodeTable) Code(r rune) (string, bool) {
	c, ok := ct.codes[r]
	return c, ok
}

func (ct CodeTable) Len() int { return len(ct.codes) }

// Symbols returns the coded symbols in slot order.
func (ct CodeTable) Symbols() []rune {
	syms := make([]rune, 0, len(ct.codes))
	for r := range ct.codes {
		syms = append(syms, r)
	}
	slices.SortFunc(syms, func(a, b rune) int {
		sa, _ := SlotOf(a)
		sb, _ := SlotOf(b)
		return cmp.Compare(sa, sb)
	})
	return syms
}

// String renders one "symbol code" pair per line in slot order. Space is
// shown as ' '.
func (ct CodeTable) String() string {
	var b strings.Builder
	for _, r := range ct.Symbols() {
		if r == ' ' {
			b.WriteString("' '")
		} else {
			b.WriteRune(r)
		}
		b.WriteByte(' ')
		b.WriteString(ct.codes[r])
		b.WriteByte('\n')
	}
	return b.String()
}
