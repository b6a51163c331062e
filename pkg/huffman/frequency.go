package huffman

import "fmt"

// FrequencyTable holds symbol counts indexed by slot.
type FrequencyTable [AlphabetSize]int

// AnalyzeFrequencies counts every symbol of text. Text containing a rune
// outside the alphabet is rejected as a whole.
func AnalyzeFrequencies(text string) (FrequencyTable, error) {
	var freq FrequencyTable
	for i, r := range text {
		slot, err := SlotOf(r)
		if err != nil {
			return FrequencyTable{}, fmt.Errorf("analyze text at offset %d: %w", i, err)
		}
		freq[slot]++
	}
	return freq, nil
}

// Of returns the count for r, or 0 if r is not in the alphabet.
func (f FrequencyTable) Of(r rune) int {
	slot, err := SlotOf(r)
	if err != nil {
		return 0
	}
	return f[slot]
}

// Total returns the sum of all counts.
func (f FrequencyTable) Total() int {
	n := 0
	for _, c := range f {
		n += c
	}
	return n
}

// Distinct returns the number of slots with a nonzero count.
func (f FrequencyTable) Distinct() int {
	n := 0
	for _, c := range f {
		if c != 0 {
			n++
		}
	}
	return n
}
