package serial

import (
	"fmt"
	"io"
)

// Frame structure constants.
const (
	// StartOfFrame is the frame start marker (0x02)
	StartOfFrame = 0x02

	// EndOfFrame is the frame end marker (0x03)
	EndOfFrame = 0x03

	// FrameOverhead is the frame size without payload:
	// STX(1) + TAG(1) + LEN(2) + SUM(1) + ETX(1)
	FrameOverhead = 6

	// MaxPayloadSize bounds the payload length accepted from the wire.
	// The largest application payload is the 100-byte appointment table;
	// anything near this limit is already garbage.
	MaxPayloadSize = 1024
)

// EncodeFrame builds a complete link frame for a tagged payload.
func EncodeFrame(tag byte, payload []byte) []byte {
	frame := make([]byte, 0, FrameOverhead+len(payload))

	frame = append(frame, StartOfFrame)
	frame = append(frame, tag)
	frame = append(frame, byte(len(payload)>>8), byte(len(payload)))
	frame = append(frame, payload...)
	frame = append(frame, frameChecksum(frame[1:]))
	frame = append(frame, EndOfFrame)

	return frame
}

// ReadFrame reads one complete frame from r, validates it and copies the
// payload into buf. The returned length is the full payload length even
// when it exceeds len(buf) and the copy was truncated, so callers can
// detect over-long responses.
func ReadFrame(r io.Reader, buf []byte) (tag byte, n int, err error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, 0, fmt.Errorf("read frame header: %w", err)
	}

	if header[0] != StartOfFrame {
		return 0, 0, fmt.Errorf("invalid start of frame: got 0x%02X, expected 0x%02X", header[0], StartOfFrame)
	}

	tag = header[1]
	length := int(header[2])<<8 | int(header[3])
	if length > MaxPayloadSize {
		return 0, 0, fmt.Errorf("frame payload too large: %d bytes, limit is %d", length, MaxPayloadSize)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, 0, fmt.Errorf("read frame payload: %w", err)
	}

	var trailer [2]byte
	if _, err := io.ReadFull(r, trailer[:]); err != nil {
		return 0, 0, fmt.Errorf("read frame trailer: %w", err)
	}

	covered := make([]byte, 0, 3+length)
	covered = append(covered, header[1:]...)
	covered = append(covered, payload...)
	sum := frameChecksum(covered)

	if trailer[0] != sum {
		return 0, 0, fmt.Errorf("frame checksum mismatch: got 0x%02X, expected 0x%02X", trailer[0], sum)
	}
	if trailer[1] != EndOfFrame {
		return 0, 0, fmt.Errorf("invalid end of frame: got 0x%02X, expected 0x%02X", trailer[1], EndOfFrame)
	}

	copy(buf, payload)
	return tag, length, nil
}

// frameChecksum computes the 8-bit frame checksum: sum all covered bytes,
// then take the 2's complement.
func frameChecksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return ^sum + 1
}
