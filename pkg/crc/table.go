package crc

import "sync"

// Table is a 256 entry lookup table for one polynomial and input
// orientation. Tables are immutable and shared between goroutines.
type Table struct {
	width     uint
	poly      uint64
	reflected bool
	reg       register
	entries   [256]uint64
}

type tableKey struct {
	width     uint
	poly      uint64
	reflected bool
}

type tableSlot struct {
	once  sync.Once
	table *Table
}

var tables sync.Map // tableKey -> *tableSlot

// MakeTable returns the lookup table for p, building it on first use.
// Parameter sets sharing width, polynomial and input reflection share a
// table.
func MakeTable(p Params) *Table {
	key := tableKey{width: p.Width, poly: p.Poly & p.Mask(), reflected: p.RefIn}
	v, _ := tables.LoadOrStore(key, new(tableSlot))
	slot := v.(*tableSlot)
	slot.once.Do(func() {
		if key.reflected {
			slot.table = makeReflectedTable(key.width, key.poly)
		} else {
			slot.table = makeMSBTable(key.width, key.poly)
		}
	})
	return slot.table
}

// makeMSBTable computes the entries for powers of two and derives the rest
// from table[i^j] == table[i]^table[j].
func makeMSBTable(width uint, poly uint64) *Table {
	t := &Table{width: width, poly: poly, reg: newRegister(width, poly)}
	crc := t.reg.top
	for i := 1; i <= 128; i <<= 1 {
		crc = t.reg.stepBit(crc)
		for j := 0; j < i; j++ {
			t.entries[i+j] = t.entries[j] ^ crc
		}
	}
	return t
}

// makeReflectedTable is the LSB-first counterpart of makeMSBTable. Index
// 0x80 needs a single application of the polynomial, 0x40 two, and so on.
func makeReflectedTable(width uint, poly uint64) *Table {
	t := &Table{width: width, poly: poly, reflected: true, reg: newRegister(width, poly)}
	rpoly := Reflect(poly, width)
	crc := uint64(1)
	for i := 128; i > 0; i >>= 1 {
		if crc&1 != 0 {
			crc = crc>>1 ^ rpoly
		} else {
			crc >>= 1
		}
		for j := 0; j < 256; j += 2 * i {
			t.entries[i+j] = t.entries[j] ^ crc
		}
	}
	return t
}

func (t *Table) Width() uint { return t.width }

func (t *Table) Poly() uint64 { return t.poly }

// Reflected reports whether the table is built for LSB-first input.
func (t *Table) Reflected() bool { return t.reflected }

// Entry returns the raw table value at index i. For widths below 8 in MSB-first
// tables the value is left-aligned in 8 bits.
func (t *Table) Entry(i byte) uint64 { return t.entries[i] }

func (t *Table) start(p Params) uint64 {
	if t.reflected {
		return Reflect(p.Init, p.Width)
	}
	return t.reg.seed(p.Init)
}

func (t *Table) update(crc uint64, data []byte) uint64 {
	if t.reflected {
		for _, b := range data {
			crc = crc>>8 ^ t.entries[byte(crc)^b]
		}
		return crc
	}
	shift := t.reg.width - 8
	for _, b := range data {
		crc = (crc<<8 ^ t.entries[byte(crc>>shift)^b]) & t.reg.mask
	}
	return crc
}

func (t *Table) finish(p Params, crc uint64) uint64 {
	if !t.reflected {
		return p.finalize(crc >> t.reg.shift)
	}
	// the register already holds the reflected value
	if !p.RefOut {
		crc = Reflect(crc, p.Width)
	}
	return (crc ^ p.XorOut) & p.Mask()
}

// Checksum computes the CRC of data with the table-driven algorithm. It
// returns the same value as Compute for every input.
func Checksum(p Params, data []byte) uint64 {
	t := MakeTable(p)
	return t.finish(p, t.update(t.start(p), data))
}
