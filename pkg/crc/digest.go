package crc

import "hash"

// Digest is a streaming CRC implementing hash.Hash64. A Digest keeps its own
// register and is not safe for concurrent use.
type Digest struct {
	params Params
	table  *Table
	crc    uint64
}

var (
	_ hash.Hash64 = (*Digest)(nil)
	_ hash.Hash32 = (*Digest)(nil)
)

// NewHash returns a Digest for p, seeded with p.Init.
func NewHash(p Params) *Digest {
	d := &Digest{params: p, table: MakeTable(p)}
	d.Reset()
	return d
}

func (d *Digest) Params() Params { return d.params }

func (d *Digest) Size() int { return d.params.Size() }

func (d *Digest) BlockSize() int { return 1 }

func (d *Digest) Reset() { d.crc = d.table.start(d.params) }

func (d *Digest) Write(p []byte) (n int, err error) {
	d.crc = d.table.update(d.crc, p)
	return len(p), nil
}

// Sum64 returns the checksum of everything written so far without changing
// the state.
func (d *Digest) Sum64() uint64 { return d.table.finish(d.params, d.crc) }

// Sum32 truncates Sum64. It is only meaningful for widths up to 32.
func (d *Digest) Sum32() uint32 { return uint32(d.Sum64()) }

// Sum appends the checksum big-endian in Size bytes.
func (d *Digest) Sum(in []byte) []byte {
	s := d.Sum64()
	for i := d.Size() - 1; i >= 0; i-- {
		in = append(in, byte(s>>(8*uint(i))))
	}
	return in
}
