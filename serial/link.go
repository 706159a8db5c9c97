package serial

import (
	"context"
	"fmt"
)

// Link is the framed serial transport for an ID100: it satisfies
// device.Transport by wrapping a Port with the link framing.
type Link struct {
	config Config
	port   *Port
}

// NewLink creates a Link for the given serial configuration. The port is
// not opened until Connect.
func NewLink(cfg Config) *Link {
	return &Link{config: cfg}
}

// Connect opens the serial port and discards any stale bytes.
func (l *Link) Connect(ctx context.Context) error {
	if l.port != nil {
		return fmt.Errorf("serial: already connected to %s", l.port.Device())
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	port, err := Open(l.config)
	if err != nil {
		return err
	}

	if err := port.Flush(); err != nil {
		port.Close()
		return err
	}

	l.port = port
	return nil
}

// Disconnect closes the serial port.
func (l *Link) Disconnect() error {
	if l.port == nil {
		return nil
	}

	err := l.port.Close()
	l.port = nil
	return err
}

// Send transmits one tagged request frame.
func (l *Link) Send(tag byte, payload []byte) error {
	if l.port == nil {
		return fmt.Errorf("serial: not connected")
	}

	frame := EncodeFrame(tag, payload)
	if _, err := l.port.Write(frame); err != nil {
		return err
	}
	return nil
}

// Receive reads one tagged response frame into buf, reporting the full
// payload length even when it exceeds len(buf).
func (l *Link) Receive(buf []byte) (byte, int, error) {
	if l.port == nil {
		return 0, 0, fmt.Errorf("serial: not connected")
	}

	return ReadFrame(l.port, buf)
}
