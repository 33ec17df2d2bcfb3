package utils

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

type SerialConfig struct {
	Port     string
	BaudRate int
	// Timeout is the idle time after which reading stops.
	Timeout time.Duration
	// Limit caps the number of bytes read, 0 for no limit.
	Limit int
}

// ReadSerial opens the port in 8N1 mode and reads until the line stays idle
// for Timeout or Limit bytes have arrived.
func ReadSerial(cfg SerialConfig) ([]byte, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", cfg.Port, err)
	}
	defer port.Close()

	if err := port.SetReadTimeout(cfg.Timeout); err != nil {
		return nil, fmt.Errorf("failed to set read timeout: %v", err)
	}
	return readUntilIdle(port, cfg.Limit)
}

// readUntilIdle reads from r until a read returns no data. serial ports
// report a timeout that way.
func readUntilIdle(r io.Reader, limit int) ([]byte, error) {
	var data []byte
	buf := make([]byte, 256)
	for limit <= 0 || len(data) < limit {
		chunk := buf
		if limit > 0 {
			chunk = buf[:min(len(buf), limit-len(data))]
		}
		n, err := r.Read(chunk)
		data = append(data, chunk[:n]...)
		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return data, fmt.Errorf("failed to read: %v", err)
		}
	}
	return data, nil
}
