package crc

import (
	"sync"
	"testing"

	"golang.org/x/exp/rand"
)

func TestMSBTableCRC32(t *testing.T) {
	table := MakeTable(mustLookup("CRC-32/BZIP2"))
	if table.Reflected() {
		t.Fatal("expected an MSB-first table")
	}
	tests := []struct {
		index    byte
		expected uint64
	}{
		{0, 0},
		{1, 0x04C11DB7},
		{2, 0x09823B6E},
		{7, 0x1E475005},
		{255, 0xB1F740B4},
	}
	for _, tt := range tests {
		if got := table.Entry(tt.index); got != tt.expected {
			t.Errorf("entry %d: expected %#x, got %#x", tt.index, tt.expected, got)
		}
	}
}

func TestReflectedTableCRC32(t *testing.T) {
	table := MakeTable(mustLookup("CRC-32"))
	if !table.Reflected() {
		t.Fatal("expected a reflected table")
	}
	tests := []struct {
		index    byte
		expected uint64
	}{
		{0, 0},
		{1, 0x77073096},
		{2, 0xEE0E612C},
		{7, 0x9E6495A3},
		{255, 0x2D02EF8D},
	}
	for _, tt := range tests {
		if got := table.Entry(tt.index); got != tt.expected {
			t.Errorf("entry %d: expected %#x, got %#x", tt.index, tt.expected, got)
		}
	}
}

// makeTableBitwise computes every entry independently with the bit-step
// of the reference engine.
func makeTableBitwise(width uint, poly uint64) [256]uint64 {
	var entries [256]uint64
	r := newRegister(width, poly)
	for i := range entries {
		entries[i] = r.stepByte(uint64(i) << (r.width - 8))
	}
	return entries
}

func TestMSBTableMatchesBitwise(t *testing.T) {
	for _, e := range Catalog().Entries() {
		p := e.Params
		p.RefIn = false
		expected := makeTableBitwise(p.Width, p.Poly)
		table := MakeTable(p)
		for i := 0; i < 256; i++ {
			if got := table.Entry(byte(i)); got != expected[i] {
				t.Errorf("%s entry %d: expected %#x, got %#x", p.Name, i, expected[i], got)
			}
		}
	}
}

func TestTableShared(t *testing.T) {
	a := MakeTable(mustLookup("CRC-16/AUTOSAR"))
	b := MakeTable(mustLookup("CRC-16/CCITT-FALSE"))
	c := MakeTable(mustLookup("CRC-16/XMODEM"))
	if a != b || a != c {
		t.Error("variants with the same polynomial should share a table")
	}
	if MakeTable(mustLookup("CRC-16/CCITT-TRUE")) == a {
		t.Error("reflected and MSB-first tables must differ")
	}
}

func TestTableConcurrentBuild(t *testing.T) {
	p := Params{Name: "concurrent", Width: 31, Poly: 0x04C11DB7}
	const n = 32
	results := make([]*Table, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = MakeTable(p)
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatal("table built more than once")
		}
	}
}

func randomParams(rng *rand.Rand) Params {
	width := uint(rng.Intn(64)) + 1
	m := mask(width)
	return Params{
		Name:   "random",
		Width:  width,
		Poly:   rng.Uint64() & m,
		Init:   rng.Uint64() & m,
		RefIn:  rng.Intn(2) == 1,
		RefOut: rng.Intn(2) == 1,
		XorOut: rng.Uint64() & m,
	}
}

func TestEquivalenceCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sizes := []int{0, 1, 2, 7, 9, 255, 256, 257, 1024}
	for _, e := range Catalog().Entries() {
		p := e.Params
		for _, size := range sizes {
			data := make([]byte, size)
			rng.Read(data)
			expected := Compute(p, data)
			for engine, f := range allEngines {
				if got := f(p, data); got != expected {
					t.Errorf("%s/%s size %d: expected %#x, got %#x", p.Name, engine, size, expected, got)
				}
			}
		}
	}
}

func TestEquivalenceRandomParams(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		p := randomParams(rng)
		data := make([]byte, rng.Intn(300))
		rng.Read(data)
		expected := Compute(p, data)
		for engine, f := range allEngines {
			if got := f(p, data); got != expected {
				t.Fatalf("%+v/%s: expected %#x, got %#x", p, engine, expected, got)
			}
		}
	}
}

func TestEquivalenceAllBytes(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	for width := uint(1); width <= 64; width++ {
		for _, refIn := range []bool{false, true} {
			p := Params{Name: "sweep", Width: width, Poly: 0xA5A5A5A5A5A5A5A5 & mask(width), RefIn: refIn, RefOut: !refIn}
			for i := range data {
				if got, expected := Checksum(p, data[i:i+1]), Compute(p, data[i:i+1]); got != expected {
					t.Fatalf("width %d refin %t byte %#x: expected %#x, got %#x", width, refIn, i, expected, got)
				}
			}
			if got, expected := Checksum(p, data), Compute(p, data); got != expected {
				t.Errorf("width %d refin %t: expected %#x, got %#x", width, refIn, expected, got)
			}
		}
	}
}

func BenchmarkCompute(b *testing.B) {
	p := mustLookup("CRC-32")
	data := make([]byte, 4096)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		Compute(p, data)
	}
}

func BenchmarkChecksum(b *testing.B) {
	p := mustLookup("CRC-32")
	data := make([]byte, 4096)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		Checksum(p, data)
	}
}

func BenchmarkNative(b *testing.B) {
	p := mustLookup("CRC-32")
	data := make([]byte, 4096)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		fastChecksum(p, data)
	}
}
