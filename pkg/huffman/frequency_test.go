package huffman

import (
	"errors"
	"testing"
)

func TestSlotMapping(t *testing.T) {
	tests := []struct {
		r    rune
		slot int
	}{
		{'A', 0}, {'Z', 25}, {'a', 26}, {'z', 51}, {' ', 52},
	}
	for _, tt := range tests {
		slot, err := SlotOf(tt.r)
		if err != nil {
			t.Fatalf("SlotOf(%q): %v", tt.r, err)
		}
		if slot != tt.slot {
			t.Errorf("SlotOf(%q) = %d, want %d", tt.r, slot, tt.slot)
		}
		if got := SymbolAt(tt.slot); got != tt.r {
			t.Errorf("SymbolAt(%d) = %q, want %q", tt.slot, got, tt.r)
		}
	}
	for slot := 0; slot < AlphabetSize; slot++ {
		got, err := SlotOf(SymbolAt(slot))
		if err != nil || got != slot {
			t.Fatalf("slot %d does not round trip: %d, %v", slot, got, err)
		}
	}
}

func TestSlotOfRejects(t *testing.T) {
	for _, r := range []rune{'@', '[', '`', '{', '0', '\n', 'é', '.'} {
		if _, err := SlotOf(r); !errors.Is(err, ErrOutOfAlphabet) {
			t.Errorf("SlotOf(%q): got %v, want %v", r, err, ErrOutOfAlphabet)
		}
	}
}

func TestAnalyzeFrequencies(t *testing.T) {
	freq, err := AnalyzeFrequencies("aaaa bbb cc d")
	if err != nil {
		t.Fatalf("AnalyzeFrequencies: %v", err)
	}
	want := map[rune]int{'a': 4, ' ': 3, 'b': 3, 'c': 2, 'd': 1}
	for r, n := range want {
		if got := freq.Of(r); got != n {
			t.Errorf("freq[%q] = %d, want %d", r, got, n)
		}
	}
	if freq.Total() != 13 {
		t.Errorf("Total = %d, want 13", freq.Total())
	}
	if freq.Distinct() != 5 {
		t.Errorf("Distinct = %d, want 5", freq.Distinct())
	}
	if freq.Of('A') != 0 || freq.Of('!') != 0 {
		t.Errorf("unexpected counts for absent symbols")
	}
}

func TestAnalyzeFrequenciesEmpty(t *testing.T) {
	freq, err := AnalyzeFrequencies("")
	if err != nil {
		t.Fatalf("AnalyzeFrequencies: %v", err)
	}
	if freq != (FrequencyTable{}) {
		t.Fatalf("expected all-zero table, got %v", freq)
	}
}

func TestAnalyzeFrequenciesRejects(t *testing.T) {
	freq, err := AnalyzeFrequencies("Hello, World")
	if !errors.Is(err, ErrOutOfAlphabet) {
		t.Fatalf("got %v, want %v", err, ErrOutOfAlphabet)
	}
	if freq != (FrequencyTable{}) {
		t.Fatalf("partial table returned: %v", freq)
	}
}
