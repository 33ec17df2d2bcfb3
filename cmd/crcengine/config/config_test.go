package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GardenTools/CrcEngine/pkg/crc"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoadConfig(t *testing.T) {
	filename := writeConfig(t, `
log:
  level: debug
server:
  addr: 127.0.0.1:9000
serial:
  timeout: 2s
variants:
  - name: CRC-16/M17
    aliases: [m17]
    width: 16
    poly: 0x5935
    init: 0xFFFF
    check: 0x772B
  - name: CRC-64/XZ
    width: 64
    poly: 0x42F0E1EBA9EA3693
    init: 0xFFFFFFFFFFFFFFFF
    ref_in: true
    ref_out: true
    xor_out: 0xFFFFFFFFFFFFFFFF
    check: 0x995DC9BBDF1939FA
`)
	cfg, err := LoadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Log.Level)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.Server.MaxConcurrent != 16 {
		t.Errorf("expected default max_concurrent 16, got %d", cfg.Server.MaxConcurrent)
	}
	if cfg.Serial.Timeout != 2*time.Second || cfg.Serial.BaudRate != 9600 {
		t.Errorf("unexpected serial settings %+v", cfg.Serial)
	}
	if len(cfg.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(cfg.Variants))
	}
	if v := cfg.Variants[1]; v.Poly != 0x42F0E1EBA9EA3693 || v.XorOut != 0xFFFFFFFFFFFFFFFF || !v.RefIn {
		t.Errorf("unexpected variant %+v", v)
	}

	r, err := cfg.Registry()
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != crc.Catalog().Len()+2 {
		t.Errorf("expected %d entries, got %d", crc.Catalog().Len()+2, r.Len())
	}
	for name, expected := range map[string]uint64{
		"m17":        0x772B,
		"crc-64/xz":  0x995DC9BBDF1939FA,
		"CRC-16/ARC": 0xBB3D,
	} {
		got, err := r.Compute(name, []byte(crc.CheckString))
		if err != nil {
			t.Fatal(err)
		}
		if got != expected {
			t.Errorf("%s: expected %#x, got %#x", name, expected, got)
		}
	}
	if _, err := crc.Lookup("m17"); !errors.Is(err, crc.ErrUnknownVariant) {
		t.Errorf("the built-in catalog must stay unchanged, got %v", err)
	}
}

func TestRegistryErrors(t *testing.T) {
	tests := []struct {
		name     string
		variant  Variant
		expected error
	}{
		{"bad check", Variant{Name: "x", Width: 8, Poly: 0x07, Check: 0x00}, crc.ErrCheckMismatch},
		{"bad width", Variant{Name: "x", Width: 0}, crc.ErrInvalidWidth},
		{"too wide poly", Variant{Name: "x", Width: 4, Poly: 0x13}, crc.ErrInvalidParams},
		{"clash", Variant{Name: "CRC-32", Width: 8, Poly: 0x07, Check: 0xF4}, crc.ErrDuplicateVariant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Variants = []Variant{tt.variant}
			if _, err := cfg.Registry(); !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, "server: [")); err == nil {
		t.Error("expected a parse error")
	}
}
