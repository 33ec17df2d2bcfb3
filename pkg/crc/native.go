package crc

import (
	"github.com/klauspost/crc32"
)

const (
	polyIEEE       = 0x04C11DB7
	polyCastagnoli = 0x1EDC6F41
)

var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// nativeChecksum serves CRC-32 and CRC-32/C from the assembly
// implementations. ok is false for any other parameter set.
func nativeChecksum(p Params, data []byte) (sum uint64, ok bool) {
	if p.Width != 32 || !p.RefIn || !p.RefOut || p.Init != 0xFFFFFFFF || p.XorOut != 0xFFFFFFFF {
		return 0, false
	}
	switch p.Poly {
	case polyIEEE:
		return uint64(crc32.ChecksumIEEE(data)), true
	case polyCastagnoli:
		return uint64(crc32.Checksum(data, castagnoliTable)), true
	}
	return 0, false
}

func fastChecksum(p Params, data []byte) uint64 {
	if sum, ok := nativeChecksum(p, data); ok {
		return sum
	}
	return Checksum(p, data)
}
