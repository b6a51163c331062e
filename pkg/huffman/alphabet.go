// Package huffman builds Huffman codes for text over a fixed alphabet of
// upper and lower case ASCII letters and the space character.
package huffman

import (
	"errors"
	"fmt"
)

// AlphabetSize is the number of symbol slots: A-Z, a-z and space.
const AlphabetSize = 53

const spaceSlot = AlphabetSize - 1

// ErrOutOfAlphabet is returned for any rune outside A-Z, a-z and space.
var ErrOutOfAlphabet = errors.New("symbol outside alphabet")

// SlotOf returns the slot index of r: A-Z map to 0-25, a-z to 26-51 and
// space to 52.
func SlotOf(r rune) (int, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), nil
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 26, nil
	case r == ' ':
		return spaceSlot, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrOutOfAlphabet, r)
}

// SymbolAt is the inverse of SlotOf. It panics if slot is out of range.
func SymbolAt(slot int) rune {
	switch {
	case slot >= 0 && slot < 26:
		return 'A' + rune(slot)
	case slot >= 26 && slot < spaceSlot:
		return 'a' + rune(slot-26)
	case slot == spaceSlot:
		return ' '
	}
	panic(fmt.Sprintf("huffman: slot %d out of range", slot))
}
