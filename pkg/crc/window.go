package crc

import "fmt"

// ComputeWindow checksums lengthBits bits of data starting at startBit.
// Bit 0 is the most significant bit of data[0] after input reflection.
func ComputeWindow(p Params, data []byte, startBit, lengthBits int) (uint64, error) {
	total := 8 * len(data)
	if startBit < 0 || startBit >= total {
		return 0, fmt.Errorf("%w: start bit %d outside %d bits", ErrBitRange, startBit, total)
	}
	if lengthBits < 0 {
		return 0, fmt.Errorf("%w: negative length %d", ErrBitRange, lengthBits)
	}
	if startBit+lengthBits > total {
		return 0, fmt.Errorf("%w: %d bits from bit %d exceed %d bits", ErrBitRange, lengthBits, startBit, total)
	}

	r := newRegister(p.Width, p.Poly)
	crc := r.seed(p.Init)
	for k := startBit; k < startBit+lengthBits; k++ {
		b := data[k/8]
		if p.RefIn {
			b = ReflectByte(b)
		}
		crc ^= uint64(b>>(7-k%8)&1) << (r.width - 1)
		crc = r.stepBit(crc)
	}
	return p.finalize(crc >> r.shift), nil
}

// ComputeBits checksums a stream of bits, first bit first. Input reflection
// does not apply to a bit stream.
func ComputeBits(p Params, bits []bool) uint64 {
	r := newRegister(p.Width, p.Poly)
	crc := r.seed(p.Init)
	for _, bit := range bits {
		if bit {
			crc ^= r.top
		}
		crc = r.stepBit(crc)
	}
	return p.finalize(crc >> r.shift)
}

// BytesToBits expands data MSB first.
func BytesToBits(data []byte) []bool {
	bits := make([]bool, 0, 8*len(data))
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&1 == 1)
		}
	}
	return bits
}
