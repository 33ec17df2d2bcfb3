package crc

// Polynomials shared by several variants.
const (
	polyCCITT16 = 0x1021
	polyIBM16   = 0x8005
	polyFlexRay = 0x5D6DCB

	u8Max  = 1<<8 - 1
	u16Max = 1<<16 - 1
	u32Max = 1<<32 - 1
)

var catalogEntries = []Entry{
	// 5-bit
	{Params: Params{Name: "CRC-5/USB", Width: 5, Poly: 0x05, Init: 0x1F, RefIn: true, RefOut: true, XorOut: 0x1F, Check: 0x19}},

	// 8-bit
	{Params: Params{Name: "CRC-8", Width: 8, Poly: 0xD5, Check: 0xBC}, Aliases: []string{"CRC-8/DVB-S2"}},
	{Params: Params{Name: "CRC-8/AUTOSAR", Width: 8, Poly: 0x2F, Init: u8Max, XorOut: u8Max, Check: 0xDF}},
	{Params: Params{Name: "CRC-8/BLUETOOTH", Width: 8, Poly: 0xA7, RefIn: true, RefOut: true, Check: 0x26}},
	// ITU I.432.1
	{Params: Params{Name: "CRC-8/CCITT", Width: 8, Poly: 0x07, XorOut: 0x55, Check: 0xA1}, Aliases: []string{"CRC-8/I-432-1"}},
	// ETSI TS 100 909
	{Params: Params{Name: "CRC-8/GSM-B", Width: 8, Poly: 0x49, XorOut: u8Max, Check: 0x94}},
	{Params: Params{Name: "CRC-8/SAE-J1850", Width: 8, Poly: 0x1D, Init: u8Max, XorOut: u8Max, Check: 0x4B}},

	// 15-bit
	{Params: Params{Name: "CRC-15/CAN", Width: 15, Poly: 0x4599, Check: 0x059E}},

	// 16-bit
	{Params: Params{Name: "CRC-16/AUTOSAR", Width: 16, Poly: polyCCITT16, Init: u16Max, Check: 0x29B1}},
	{Params: Params{Name: "CRC-16/CCITT-FALSE", Width: 16, Poly: polyCCITT16, Init: u16Max, Check: 0x29B1}},
	// Kermit transmits the low order bit of each character first.
	{Params: Params{Name: "CRC-16/CCITT-TRUE", Width: 16, Poly: polyCCITT16, RefIn: true, RefOut: true, Check: 0x2189}, Aliases: []string{"CRC-16/KERMIT", "CRC-16/CCITT-TRUE(Kermit)"}},
	{Params: Params{Name: "CRC-16/CDMA2000", Width: 16, Poly: 0xC867, Init: u16Max, Check: 0x4C06}},
	{Params: Params{Name: "CRC-16/IBM", Width: 16, Poly: polyIBM16, RefIn: true, RefOut: true, Check: 0xBB3D}, Aliases: []string{"CRC-16/ARC", "CRC-16"}},
	{Params: Params{Name: "CRC-16/MODBUS", Width: 16, Poly: polyIBM16, Init: u16Max, RefIn: true, RefOut: true, Check: 0x4B37}},
	{Params: Params{Name: "CRC-16/PROFIBUS", Width: 16, Poly: 0x1DCF, Init: u16Max, XorOut: u16Max, Check: 0xA819}},
	// ITU V.41
	{Params: Params{Name: "CRC-16/XMODEM", Width: 16, Poly: polyCCITT16, Check: 0x31C3}},

	// 24-bit
	{Params: Params{Name: "CRC-24/FLEXRAY-A", Width: 24, Poly: polyFlexRay, Init: 0xFEDCBA, Check: 0x7979BD}, Aliases: []string{"crc24-flexray16-a"}},
	{Params: Params{Name: "CRC-24/FLEXRAY-B", Width: 24, Poly: polyFlexRay, Init: 0xABCDEF, Check: 0x1F23B8}, Aliases: []string{"crc24-flexray16-b"}},

	// 32-bit
	{Params: Params{Name: "CRC-32", Width: 32, Poly: polyIEEE, Init: u32Max, RefIn: true, RefOut: true, XorOut: u32Max, Check: 0xCBF43926}, Aliases: []string{"CRC-32/ISO-HDLC"}},
	{Params: Params{Name: "CRC-32/BZIP2", Width: 32, Poly: polyIEEE, Init: u32Max, XorOut: u32Max, Check: 0xFC891918}},
	{Params: Params{Name: "CRC-32/C", Width: 32, Poly: polyCastagnoli, Init: u32Max, RefIn: true, RefOut: true, XorOut: u32Max, Check: 0xE3069283}, Aliases: []string{"CRC-32/ISCSI"}},

	// 64-bit
	{Params: Params{Name: "CRC-64/ECMA", Width: 64, Poly: 0x42F0E1EBA9EA3693, Check: 0x6C40DF5F0B497347}, Aliases: []string{"CRC-64/ECMA-182"}},
}

var catalog = mustRegistry(catalogEntries...)

func mustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Catalog returns the registry of built-in variants.
func Catalog() *Registry { return catalog }

// Lookup returns the built-in parameter set for name.
func Lookup(name string) (Params, error) { return catalog.Lookup(name) }

// ComputeNamed checksums data with the built-in variant name.
func ComputeNamed(name string, data []byte) (uint64, error) { return catalog.Compute(name, data) }
