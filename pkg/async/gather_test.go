package async

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/GardenTools/CrcEngine/pkg/crc"
)

func TestGatherN(t *testing.T) {
	f1 := Promise(func() uint64 {
		time.Sleep(60 * time.Millisecond)
		return uint64(crc.CRC8([]byte(crc.CheckString)))
	})
	f2 := Promise(func() uint64 {
		time.Sleep(30 * time.Millisecond)
		return uint64(crc.CRC16Modbus([]byte(crc.CheckString)))
	})
	f3 := Promise(func() uint64 {
		return crc.CRC64ECMA([]byte(crc.CheckString))
	})

	r := <-GatherN(f1, f2, f3)
	expected := []uint64{0xBC, 0x4B37, 0x6C40DF5F0B497347}
	for i, result := range r {
		if result != expected[i] {
			t.Errorf("expected %#x, got %#x", expected[i], result)
		}
	}
}

func TestMap(t *testing.T) {
	names := []string{"CRC-8", "CRC-16/MODBUS", "CRC-32", "CRC-32/C", "CRC-64/ECMA"}
	results := <-Map(names, 2, func(name string) uint64 {
		sum, err := crc.ComputeNamed(name, []byte(crc.CheckString))
		if err != nil {
			t.Error(err)
		}
		return sum
	})
	expected := []uint64{0xBC, 0x4B37, 0xCBF43926, 0xE3069283, 0x6C40DF5F0B497347}
	if len(results) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(results))
	}
	for i := range expected {
		if results[i] != expected[i] {
			t.Errorf("%s: expected %#x, got %#x", names[i], expected[i], results[i])
		}
	}
}

func TestMapLimit(t *testing.T) {
	var running, peak atomic.Int32
	items := make([]int, 20)
	<-Map(items, 3, func(int) struct{} {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		running.Add(-1)
		return struct{}{}
	})
	if p := peak.Load(); p > 3 {
		t.Errorf("expected at most 3 concurrent calls, saw %d", p)
	}
}

func TestMapEmpty(t *testing.T) {
	if r := <-Map([]string{}, 0, func(string) int { return 1 }); len(r) != 0 {
		t.Errorf("expected no results, got %v", r)
	}
}
