// Package fcs builds and checks Ethernet II frames carrying the IEEE 802.3
// frame check sequence, the CRC-32 of the frame transmitted low byte first.
package fcs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/GardenTools/CrcEngine/pkg/crc"
)

const (
	HeaderLen = 14
	Len       = 4
	// MinFrameLen is the shortest frame on the wire, FCS included.
	MinFrameLen = 64
)

// Residue is the CRC-32 of any frame with a correct FCS appended.
const Residue = 0x2144DF1C

var (
	ErrShortFrame = errors.New("fcs: frame too short")
	ErrBadFCS     = errors.New("fcs: frame check sequence mismatch")
)

// Checksum returns the FCS for frame, which must not include one.
func Checksum(frame []byte) uint32 {
	return crc.CRC32(frame)
}

// Append appends the FCS of frame to it.
func Append(frame []byte) []byte {
	return binary.LittleEndian.AppendUint32(frame, Checksum(frame))
}

// Build serializes an Ethernet II frame and appends its FCS. Payloads
// shorter than the minimum are zero padded.
func Build(src, dst net.HardwareAddr, t layers.EthernetType, payload []byte) ([]byte, error) {
	eth := &layers.Ethernet{
		SrcMAC:       src,
		DstMAC:       dst,
		EthernetType: t,
	}
	buffer := gopacket.NewSerializeBuffer()
	err := gopacket.SerializeLayers(buffer, gopacket.SerializeOptions{FixLengths: true},
		eth,
		gopacket.Payload(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize frame: %v", err)
	}
	frame := make([]byte, 0, len(buffer.Bytes())+Len)
	return Append(append(frame, buffer.Bytes()...)), nil
}

// Verify checks the trailing FCS of frame and decodes what precedes it.
func Verify(frame []byte) (gopacket.Packet, error) {
	if len(frame) < HeaderLen+Len {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(frame))
	}
	body := frame[:len(frame)-Len]
	expected := binary.LittleEndian.Uint32(frame[len(body):])
	if got := Checksum(body); got != expected {
		return nil, fmt.Errorf("%w: computed %#08x, frame carries %#08x", ErrBadFCS, got, expected)
	}
	packet := gopacket.NewPacket(body, layers.LayerTypeEthernet, gopacket.Default)
	if packet.Layer(layers.LayerTypeEthernet) == nil {
		return nil, fmt.Errorf("failed to decode frame: %v", packet.ErrorLayer())
	}
	return packet, nil
}
