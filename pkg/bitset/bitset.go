// Package bitset holds bit strings that do not end on a byte boundary, such
// as the message covered by a windowed CRC.
package bitset

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSyntax = errors.New("bitset: invalid bit string")

type BitSet struct {
	bits []uint64
	size int
}

func New(size int) *BitSet {
	return &BitSet{
		bits: make([]uint64, (size+63)/64),
		size: size,
	}
}

// FromBytes expands data most significant bit first.
func FromBytes(data []byte) *BitSet {
	b := New(8 * len(data))
	for i, v := range data {
		for j := 0; j < 8; j++ {
			if v&(0x80>>j) != 0 {
				b.Set(8*i + j)
			}
		}
	}
	return b
}

// Parse reads a string of '0' and '1'. Underscores and spaces are ignored,
// as is a leading "0b".
func Parse(s string) (*BitSet, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0b")
	var digits []bool
	for i, c := range s {
		switch c {
		case '0', '1':
			digits = append(digits, c == '1')
		case '_', ' ':
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrSyntax, c, i)
		}
	}
	b := New(len(digits))
	for i, d := range digits {
		if d {
			b.Set(i)
		}
	}
	return b, nil
}

func (b *BitSet) Len() int { return b.size }

func (b *BitSet) Set(pos int) {
	if pos < 0 || pos >= b.size {
		return
	}
	b.bits[pos/64] |= 1 << (pos % 64)
}

func (b *BitSet) Clear(pos int) {
	if pos < 0 || pos >= b.size {
		return
	}
	b.bits[pos/64] &^= 1 << (pos % 64)
}

func (b *BitSet) IsSet(pos int) bool {
	if pos < 0 || pos >= b.size {
		return false
	}
	return b.bits[pos/64]&(1<<(pos%64)) != 0
}

// Bools returns the bits in order.
func (b *BitSet) Bools() []bool {
	out := make([]bool, b.size)
	for i := range out {
		out[i] = b.IsSet(i)
	}
	return out
}

// Slice copies n bits starting at start. The range is clipped to the set.
func (b *BitSet) Slice(start, n int) *BitSet {
	start = min(max(start, 0), b.size)
	n = min(max(n, 0), b.size-start)
	out := New(n)
	for i := 0; i < n; i++ {
		if b.IsSet(start + i) {
			out.Set(i)
		}
	}
	return out
}

func (b *BitSet) String() string {
	var sb strings.Builder
	for i := 0; i < b.size; i++ {
		if b.IsSet(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
