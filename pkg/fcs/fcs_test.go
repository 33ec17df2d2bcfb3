package fcs

import (
	"bytes"
	"errors"
	"net"
	"net/netip"
	"testing"

	"github.com/google/gopacket/layers"
	"github.com/mdlayher/arp"

	"github.com/GardenTools/CrcEngine/pkg/crc"
)

var (
	srcMAC = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	dstMAC = net.HardwareAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
)

func TestBuildVerify(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		length  int
	}{
		{"padded", []byte("hello"), MinFrameLen},
		{"exact", bytes.Repeat([]byte{0xAB}, 46), MinFrameLen},
		{"long", bytes.Repeat([]byte{0x5A}, 1500), HeaderLen + 1500 + Len},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Build(srcMAC, dstMAC, layers.EthernetTypeLLC, tt.payload)
			if err != nil {
				t.Fatal(err)
			}
			if len(frame) != tt.length {
				t.Errorf("expected %d bytes, got %d", tt.length, len(frame))
			}
			if got := crc.CRC32(frame); got != Residue {
				t.Errorf("expected residue %#x, got %#x", Residue, got)
			}

			packet, err := Verify(frame)
			if err != nil {
				t.Fatal(err)
			}
			eth, ok := packet.Layer(layers.LayerTypeEthernet).(*layers.Ethernet)
			if !ok {
				t.Fatal("no ethernet layer")
			}
			if !bytes.Equal(eth.SrcMAC, srcMAC) || !bytes.Equal(eth.DstMAC, dstMAC) {
				t.Errorf("unexpected addresses %v -> %v", eth.SrcMAC, eth.DstMAC)
			}
			if !bytes.HasPrefix(eth.Payload, tt.payload) {
				t.Errorf("payload not preserved")
			}
		})
	}
}

func TestVerifyErrors(t *testing.T) {
	frame, err := Build(srcMAC, dstMAC, layers.EthernetTypeLLC, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	for i := range frame {
		corrupt := bytes.Clone(frame)
		corrupt[i] ^= 0x01
		if _, err := Verify(corrupt); !errors.Is(err, ErrBadFCS) {
			t.Fatalf("bit flip at byte %d: expected ErrBadFCS, got %v", i, err)
		}
	}
	if _, err := Verify(frame[:HeaderLen+Len-1]); !errors.Is(err, ErrShortFrame) {
		t.Errorf("expected ErrShortFrame, got %v", err)
	}
}

func TestAppend(t *testing.T) {
	// the IEEE FCS is the CRC-32 sent least significant byte first
	frame := Append([]byte(crc.CheckString))
	expected := []byte{0x26, 0x39, 0xF4, 0xCB}
	if !bytes.Equal(frame[len(crc.CheckString):], expected) {
		t.Errorf("expected %x, got %x", expected, frame[len(crc.CheckString):])
	}
}

func TestARPFrame(t *testing.T) {
	request, err := arp.NewPacket(arp.OperationRequest,
		srcMAC, netip.MustParseAddr("192.168.1.2"),
		net.HardwareAddr{0, 0, 0, 0, 0, 0}, netip.MustParseAddr("192.168.1.1"))
	if err != nil {
		t.Fatal(err)
	}
	payload, err := request.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	frame, err := Build(srcMAC, dstMAC, layers.EthernetTypeARP, payload)
	if err != nil {
		t.Fatal(err)
	}
	if len(frame) != MinFrameLen {
		t.Errorf("expected %d bytes, got %d", MinFrameLen, len(frame))
	}
	packet, err := Verify(frame)
	if err != nil {
		t.Fatal(err)
	}
	layer, ok := packet.Layer(layers.LayerTypeARP).(*layers.ARP)
	if !ok {
		t.Fatalf("no ARP layer in %v", packet)
	}
	if layer.Operation != layers.ARPRequest {
		t.Errorf("expected a request, got %d", layer.Operation)
	}
	if !bytes.Equal(layer.DstProtAddress, []byte{192, 168, 1, 1}) {
		t.Errorf("unexpected target %v", layer.DstProtAddress)
	}
}
