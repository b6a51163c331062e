package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

var (
	ErrUnknownSymbol = errors.New("symbol not in code table")
	ErrInvalidBit    = errors.New("invalid bit")
	ErrTruncated     = errors.New("bit sequence ends inside a code")
)

// Coder encodes and decodes text with the Huffman code built from a
// frequency table.
type Coder struct {
	freq  FrequencyTable
	root  Node
	codes CodeTable
}

// New builds a Coder from the symbol frequencies of text.
func New(text string) (*Coder, error) {
	freq, err := AnalyzeFrequencies(text)
	if err != nil {
		return nil, err
	}
	return NewFromFrequencies(freq)
}

// NewFromFrequencies builds a Coder from freq.
func NewFromFrequencies(freq FrequencyTable) (*Coder, error) {
	root, err := Build(freq)
	if err != nil {
		return nil, err
	}
	return &Coder{
		freq:  freq,
		root:  root,
		codes: DeriveCodes(root),
	}, nil
}

func (c *Coder) Frequencies() FrequencyTable { return c.freq }

func (c *Coder) Root() Node { return c.root }

func (c *Coder) Codes() CodeTable { return c.codes }

// Encode returns the code of text as a string of '0' and '1'.
func (c *Coder) Encode(text string) (string, error) {
	var b strings.Builder
	err := c.encode(text, func(code string) error {
		b.WriteString(code)
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *Coder) encode(text string, emit func(code string) error) error {
	for i, r := range text {
		if _, err := SlotOf(r); err != nil {
			return fmt.Errorf("encode at offset %d: %w", i, err)
		}
		code, ok := c.codes.Code(r)
		if !ok {
			return fmt.Errorf("encode at offset %d: %w: %q", i, ErrUnknownSymbol, r)
		}
		if err := emit(code); err != nil {
			return err
		}
	}
	return nil
}

// Decode reverses Encode, consuming one root-to-leaf path per symbol.
func (c *Coder) Decode(bits string) (string, error) {
	var b strings.Builder
	pos := 0
	next := func() (bool, bool, error) {
		if pos == len(bits) {
			return false, false, nil
		}
		bit := bits[pos]
		pos++
		switch bit {
		case '0':
			return false, true, nil
		case '1':
			return true, true, nil
		}
		return false, false, fmt.Errorf("%w %q at offset %d", ErrInvalidBit, bit, pos-1)
	}
	for pos < len(bits) {
		r, err := c.decodeSymbol(next)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// decodeSymbol follows bits from the root down to a leaf. next returns the
// bit, whether one was available, and any read error.
func (c *Coder) decodeSymbol(next func() (bool, bool, error)) (rune, error) {
	if l, ok := c.root.(*Leaf); ok {
		one, more, err := next()
		if err != nil {
			return 0, err
		}
		if !more {
			return 0, ErrTruncated
		}
		if one {
			return 0, fmt.Errorf("%w: '1' in single symbol code", ErrInvalidBit)
		}
		return l.Symbol, nil
	}

	n := c.root
	for {
		switch cur := n.(type) {
		case *Leaf:
			return cur.Symbol, nil
		case *Internal:
			one, more, err := next()
			if err != nil {
				return 0, err
			}
			if !more {
				return 0, ErrTruncated
			}
			if one {
				n = cur.Right
			} else {
				n = cur.Left
			}
		}
	}
}

// Pack encodes text and packs the bits most significant first into bytes.
// The last byte is padded with zero bits; the returned count is the number
// of meaningful bits.
func (c *Coder) Pack(text string) ([]byte, int, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	nbits := 0
	err := c.encode(text, func(code string) error {
		for i := 0; i < len(code); i++ {
			if err := w.WriteBool(code[i] == '1'); err != nil {
				return err
			}
		}
		nbits += len(code)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if err := w.Close(); err != nil {
		return nil, 0, fmt.Errorf("pack: %w", err)
	}
	return buf.Bytes(), nbits, nil
}

// Unpack decodes the first nbits bits of data as produced by Pack.
func (c *Coder) Unpack(data []byte, nbits int) (string, error) {
	if nbits < 0 || nbits > 8*len(data) {
		return "", fmt.Errorf("unpack %d bits from %d bytes: %w", nbits, len(data), ErrTruncated)
	}
	r := bitio.NewReader(bytes.NewReader(data))
	read := 0
	next := func() (bool, bool, error) {
		if read == nbits {
			return false, false, nil
		}
		bit, err := r.ReadBool()
		if err != nil {
			return false, false, fmt.Errorf("unpack: %w", err)
		}
		read++
		return bit, true, nil
	}
	var b strings.Builder
	for read < nbits {
		sym, err := c.decodeSymbol(next)
		if err != nil {
			return "", err
		}
		b.WriteRune(sym)
	}
	return b.String(), nil
}
