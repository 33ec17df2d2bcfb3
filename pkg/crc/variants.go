package crc

import "golang.org/x/exp/constraints"

func mustLookup(name string) Params {
	p, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return p
}

var (
	crc5USB         = mustLookup("CRC-5/USB")
	crc8            = mustLookup("CRC-8")
	crc8Autosar     = mustLookup("CRC-8/AUTOSAR")
	crc8Bluetooth   = mustLookup("CRC-8/BLUETOOTH")
	crc8CCITT       = mustLookup("CRC-8/CCITT")
	crc8GSMB        = mustLookup("CRC-8/GSM-B")
	crc8SAEJ1850    = mustLookup("CRC-8/SAE-J1850")
	crc15CAN        = mustLookup("CRC-15/CAN")
	crc16Autosar    = mustLookup("CRC-16/AUTOSAR")
	crc16CCITTFalse = mustLookup("CRC-16/CCITT-FALSE")
	crc16CCITTTrue  = mustLookup("CRC-16/CCITT-TRUE")
	crc16CDMA2000   = mustLookup("CRC-16/CDMA2000")
	crc16IBM        = mustLookup("CRC-16/IBM")
	crc16Modbus     = mustLookup("CRC-16/MODBUS")
	crc16Profibus   = mustLookup("CRC-16/PROFIBUS")
	crc16XModem     = mustLookup("CRC-16/XMODEM")
	crc24FlexRayA   = mustLookup("CRC-24/FLEXRAY-A")
	crc24FlexRayB   = mustLookup("CRC-24/FLEXRAY-B")
	crc32IEEE       = mustLookup("CRC-32")
	crc32BZIP2      = mustLookup("CRC-32/BZIP2")
	crc32C          = mustLookup("CRC-32/C")
	crc64ECMA       = mustLookup("CRC-64/ECMA")
)

func sum[T constraints.Unsigned](p Params, data []byte) T {
	return T(fastChecksum(p, data))
}

func CRC5USB(data []byte) uint8 { return sum[uint8](crc5USB, data) }

func CRC8(data []byte) uint8 { return sum[uint8](crc8, data) }

func CRC8Autosar(data []byte) uint8 { return sum[uint8](crc8Autosar, data) }

func CRC8Bluetooth(data []byte) uint8 { return sum[uint8](crc8Bluetooth, data) }

func CRC8CCITT(data []byte) uint8 { return sum[uint8](crc8CCITT, data) }

func CRC8GSMB(data []byte) uint8 { return sum[uint8](crc8GSMB, data) }

func CRC8SAEJ1850(data []byte) uint8 { return sum[uint8](crc8SAEJ1850, data) }

func CRC15CAN(data []byte) uint16 { return sum[uint16](crc15CAN, data) }

func CRC16Autosar(data []byte) uint16 { return sum[uint16](crc16Autosar, data) }

func CRC16CCITTFalse(data []byte) uint16 { return sum[uint16](crc16CCITTFalse, data) }

func CRC16CCITTTrue(data []byte) uint16 { return sum[uint16](crc16CCITTTrue, data) }

// CRC16Kermit is CRC16CCITTTrue under its protocol name.
func CRC16Kermit(data []byte) uint16 { return CRC16CCITTTrue(data) }

func CRC16CDMA2000(data []byte) uint16 { return sum[uint16](crc16CDMA2000, data) }

func CRC16IBM(data []byte) uint16 { return sum[uint16](crc16IBM, data) }

func CRC16Modbus(data []byte) uint16 { return sum[uint16](crc16Modbus, data) }

func CRC16Profibus(data []byte) uint16 { return sum[uint16](crc16Profibus, data) }

func CRC16XModem(data []byte) uint16 { return sum[uint16](crc16XModem, data) }

// CRC24FlexRayA returns the 24-bit checksum in the low bits of a uint32.
func CRC24FlexRayA(data []byte) uint32 { return sum[uint32](crc24FlexRayA, data) }

func CRC24FlexRayB(data []byte) uint32 { return sum[uint32](crc24FlexRayB, data) }

func CRC32(data []byte) uint32 { return sum[uint32](crc32IEEE, data) }

func CRC32BZIP2(data []byte) uint32 { return sum[uint32](crc32BZIP2, data) }

func CRC32C(data []byte) uint32 { return sum[uint32](crc32C, data) }

func CRC64ECMA(data []byte) uint64 { return sum[uint64](crc64ECMA, data) }
