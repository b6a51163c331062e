package huffman

import (
	"strings"
	"testing"
)

func checkPrefixFree(t *testing.T, ct CodeTable) {
	t.Helper()
	syms := ct.Symbols()
	for _, a := range syms {
		ca, _ := ct.Code(a)
		if ca == "" {
			t.Fatalf("empty code for %q", a)
		}
		for _, b := range syms {
			if a == b {
				continue
			}
			cb, _ := ct.Code(b)
			if strings.HasPrefix(cb, ca) {
				t.Fatalf("code %q of %q is a prefix of code %q of %q", ca, a, cb, b)
			}
		}
	}
}

func TestDeriveCodes(t *testing.T) {
	root := mustBuild(t, "aaaa bbb cc d")
	ct := DeriveCodes(root)
	if ct.Len() != 5 {
		t.Fatalf("%d codes, want 5", ct.Len())
	}
	checkPrefixFree(t, ct)

	ca, _ := ct.Code('a')
	cd, _ := ct.Code('d')
	if len(ca) > len(cd) {
		t.Fatalf("code for a (%q) longer than code for d (%q)", ca, cd)
	}

	// Every leaf's code length equals its depth and leads to it.
	Walk(root, func(n Node, depth int) bool {
		l, ok := n.(*Leaf)
		if !ok {
			return true
		}
		code, _ := ct.Code(l.Symbol)
		if len(code) != depth {
			t.Errorf("code %q for %q at depth %d", code, l.Symbol, depth)
		}
		cur := root
		for _, bit := range code {
			in := cur.(*Internal)
			if bit == '0' {
				cur = in.Left
			} else {
				cur = in.Right
			}
		}
		if cur != Node(l) {
			t.Errorf("code %q does not lead to %q", code, l.Symbol)
		}
		return true
	})
}

func TestDeriveCodesDirection(t *testing.T) {
	ct := DeriveCodes(mustBuild(t, "aab"))
	if c, _ := ct.Code('b'); c != "0" {
		t.Errorf("code for b = %q, want \"0\"", c)
	}
	if c, _ := ct.Code('a'); c != "1" {
		t.Errorf("code for a = %q, want \"1\"", c)
	}
}

func TestDeriveCodesSingleSymbol(t *testing.T) {
	ct := DeriveCodes(mustBuild(t, "aaaa"))
	if ct.Len() != 1 {
		t.Fatalf("%d codes, want 1", ct.Len())
	}
	if c, ok := ct.Code('a'); !ok || c != "0" {
		t.Fatalf("code for a = %q, %v", c, ok)
	}
}

func TestDeriveCodesNil(t *testing.T) {
	if ct := DeriveCodes(nil); ct.Len() != 0 {
		t.Fatalf("%d codes for nil tree", ct.Len())
	}
}

func TestDominantSymbolShortest(t *testing.T) {
	text := strings.Repeat("e", 50) + "the quick brown fox jumps over the lazy dog THE END"
	ct := DeriveCodes(mustBuild(t, text))
	checkPrefixFree(t, ct)
	ce, _ := ct.Code('e')
	for _, r := range ct.Symbols() {
		c, _ := ct.Code(r)
		if len(c) < len(ce) {
			t.Fatalf("code for %q (%q) shorter than for dominant e (%q)", r, c, ce)
		}
	}
}

func TestCodeTableString(t *testing.T) {
	got := DeriveCodes(mustBuild(t, "a b")).String()
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("String() = %q", got)
	}
	if !strings.HasPrefix(lines[0], "a ") || !strings.HasPrefix(lines[1], "b ") || !strings.HasPrefix(lines[2], "' ' ") {
		t.Fatalf("symbols not in slot order: %q", got)
	}
}
