// Package crc computes cyclic redundancy checks for any width from 1 to 64
// bits. A variant is described by Params; Compute is the bitwise reference
// algorithm and Checksum the equivalent table-driven one. The catalog of
// standard variants is available through Lookup and the named functions
// such as CRC16Modbus.
package crc

import (
	"fmt"
	"slices"
)

// Engine selects the algorithm used by a CRC.
type Engine string

const (
	EngineTable   Engine = "table"
	EngineBitwise Engine = "generic"
	EngineLSB     Engine = "generic_lsbf"
	EngineNative  Engine = "native"

	DefaultEngine = EngineNative
)

var engines = map[Engine]func(Params, []byte) uint64{
	EngineTable:   Checksum,
	EngineBitwise: Compute,
	EngineLSB:     ComputeLSB,
	EngineNative:  fastChecksum,
}

// Engines lists the available engines in a stable order.
func Engines() []Engine {
	names := make([]Engine, 0, len(engines))
	for e := range engines {
		names = append(names, e)
	}
	slices.Sort(names)
	return names
}

// ParseEngine maps a name to an Engine. The empty string selects
// DefaultEngine.
func ParseEngine(name string) (Engine, error) {
	if name == "" {
		return DefaultEngine, nil
	}
	e := Engine(name)
	if _, ok := engines[e]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return e, nil
}

// CRC binds a parameter set to an engine.
type CRC struct {
	params Params
	engine Engine
	sum    func(Params, []byte) uint64
}

// NewCRC validates p and returns a calculator using engine.
func NewCRC(p Params, engine Engine) (*CRC, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if engine == "" {
		engine = DefaultEngine
	}
	sum, ok := engines[engine]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
	if engine == EngineTable || engine == EngineNative {
		MakeTable(p)
	}
	return &CRC{params: p, engine: engine, sum: sum}, nil
}

// New looks name up in the catalog and returns a calculator for it.
func New(name string, engine Engine) (*CRC, error) {
	p, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewCRC(p, engine)
}

func (c *CRC) Checksum(data []byte) uint64 { return c.sum(c.params, data) }

func (c *CRC) Params() Params { return c.params }

func (c *CRC) Engine() Engine { return c.engine }

// NewHash returns a streaming Digest for the same parameters.
func (c *CRC) NewHash() *Digest { return NewHash(c.params) }
