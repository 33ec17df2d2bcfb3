package crc

// register is the working layout of the MSB-first algorithm. Widths below
// 8 are left-aligned in an 8-bit register so whole bytes can be XORed in at
// the top; shift undoes that at the end.
type register struct {
	width uint // max(Width, 8)
	shift uint
	mask  uint64
	top   uint64
	poly  uint64
}

func newRegister(width uint, poly uint64) register {
	r := register{width: width}
	if width < 8 {
		r.width = 8
		r.shift = 8 - width
	}
	r.mask = mask(r.width)
	r.top = 1 << (r.width - 1)
	r.poly = (poly << r.shift) & r.mask
	return r
}

func (r register) seed(init uint64) uint64 {
	return (init << r.shift) & r.mask
}

func (r register) stepBit(crc uint64) uint64 {
	if crc&r.top != 0 {
		crc = crc<<1 ^ r.poly
	} else {
		crc <<= 1
	}
	return crc & r.mask
}

func (r register) stepByte(crc uint64) uint64 {
	for i := 0; i < 8; i++ {
		crc = r.stepBit(crc)
	}
	return crc
}

// Compute is the bitwise reference implementation: each input byte is XORed
// into the top of the register and the polynomial is applied bit by bit.
// p is assumed valid.
func Compute(p Params, data []byte) uint64 {
	r := newRegister(p.Width, p.Poly)
	crc := r.seed(p.Init)
	for _, b := range data {
		if p.RefIn {
			b = ReflectByte(b)
		}
		crc ^= uint64(b) << (r.width - 8)
		crc = r.stepByte(crc)
	}
	return p.finalize(crc >> r.shift)
}

// ComputeLSB computes the same checksum as Compute on a reflected register,
// shifting right and applying the reflected polynomial.
func ComputeLSB(p Params, data []byte) uint64 {
	poly := Reflect(p.Poly, p.Width)
	crc := Reflect(p.Init, p.Width)
	for _, b := range data {
		if !p.RefIn {
			b = ReflectByte(b)
		}
		crc ^= uint64(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
	}
	crc &= p.Mask()
	if !p.RefOut {
		crc = Reflect(crc, p.Width)
	}
	return (crc ^ p.XorOut) & p.Mask()
}
