package crc

import "fmt"

// CheckString is the input whose checksum is recorded as Params.Check.
const CheckString = "123456789"

// Params fully describes a CRC variant. Values are MSB-first with the top
// bit of the polynomial implicit.
type Params struct {
	Name   string
	Width  uint
	Poly   uint64
	Init   uint64
	RefIn  bool
	RefOut bool
	XorOut uint64

	// Check is the checksum of CheckString, zero when unknown. It does not
	// take part in the calculation.
	Check uint64
}

func mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}

// Mask returns the largest value that fits in the register.
func (p Params) Mask() uint64 {
	return mask(p.Width)
}

// Size is the number of bytes needed to hold a checksum.
func (p Params) Size() int {
	return int(p.Width+7) / 8
}

func (p Params) Validate() error {
	if p.Width == 0 || p.Width > 64 {
		return fmt.Errorf("%w: %s has width %d", ErrInvalidWidth, p.Name, p.Width)
	}
	m := p.Mask()
	if p.Poly&^m != 0 || p.Init&^m != 0 || p.XorOut&^m != 0 || p.Check&^m != 0 {
		return fmt.Errorf("%w: %s has values wider than %d bits", ErrInvalidParams, p.Name, p.Width)
	}
	return nil
}

// Verify validates p and checks that the bitwise engine reproduces p.Check.
func (p Params) Verify() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if got := Compute(p, []byte(CheckString)); got != p.Check {
		return fmt.Errorf("%w: %s computed %#x, expected %#x", ErrCheckMismatch, p.Name, got, p.Check)
	}
	return nil
}

// finalize turns an MSB-first register into the returned checksum.
func (p Params) finalize(crc uint64) uint64 {
	if p.RefOut {
		crc = Reflect(crc, p.Width)
	}
	return (crc ^ p.XorOut) & p.Mask()
}

func (p Params) String() string {
	return fmt.Sprintf("%s width=%d poly=%#x init=%#x refin=%t refout=%t xorout=%#x check=%#x",
		p.Name, p.Width, p.Poly, p.Init, p.RefIn, p.RefOut, p.XorOut, p.Check)
}
