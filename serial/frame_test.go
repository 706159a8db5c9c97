package serial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		tag     byte
		payload []byte
	}{
		{name: "empty payload", tag: 'v', payload: nil},
		{name: "single byte", tag: 'B', payload: []byte{7}},
		{name: "typical payload", tag: 't', payload: []byte{26, 8, 25, 2, 12, 0, 0}},
		{name: "binary payload", tag: 'f', payload: []byte{0x00, 0x05, 0xFF, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := EncodeFrame(tt.tag, tt.payload)
			require.Len(t, frame, FrameOverhead+len(tt.payload))
			assert.Equal(t, byte(StartOfFrame), frame[0])
			assert.Equal(t, byte(EndOfFrame), frame[len(frame)-1])

			buf := make([]byte, len(tt.payload))
			tag, n, err := ReadFrame(bytes.NewReader(frame), buf)
			require.NoError(t, err)
			assert.Equal(t, tt.tag, tag)
			assert.Equal(t, len(tt.payload), n)
			assert.Equal(t, tt.payload, append([]byte(nil), buf...)[:n])
		})
	}
}

func TestReadFrameReportsFullLengthWhenTruncated(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	frame := EncodeFrame('r', payload)

	buf := make([]byte, 4)
	tag, n, err := ReadFrame(bytes.NewReader(frame), buf)
	require.NoError(t, err)
	assert.Equal(t, byte('r'), tag)
	assert.Equal(t, len(payload), n, "full length reported despite truncation")
	assert.Equal(t, payload[:4], buf)
}

func TestReadFrameErrors(t *testing.T) {
	good := EncodeFrame('v', []byte{1, 2})

	tests := []struct {
		name   string
		mangle func([]byte) []byte
		errMsg string
	}{
		{
			name:   "bad start marker",
			mangle: func(f []byte) []byte { f[0] = 0x55; return f },
			errMsg: "invalid start of frame",
		},
		{
			name:   "bad end marker",
			mangle: func(f []byte) []byte { f[len(f)-1] = 0x55; return f },
			errMsg: "invalid end of frame",
		},
		{
			name:   "bad checksum",
			mangle: func(f []byte) []byte { f[len(f)-2]++; return f },
			errMsg: "checksum mismatch",
		},
		{
			name:   "corrupted payload",
			mangle: func(f []byte) []byte { f[4] ^= 0xFF; return f },
			errMsg: "checksum mismatch",
		},
		{
			name:   "truncated stream",
			mangle: func(f []byte) []byte { return f[:len(f)-3] },
			errMsg: "read frame",
		},
		{
			name: "oversize length",
			mangle: func(f []byte) []byte {
				f[2] = 0xFF
				f[3] = 0xFF
				return f
			},
			errMsg: "payload too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := tt.mangle(append([]byte(nil), good...))

			buf := make([]byte, 16)
			_, _, err := ReadFrame(bytes.NewReader(frame), buf)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFrameChecksumZeroesSum(t *testing.T) {
	// Appending the checksum makes the covered region sum to zero.
	data := []byte{'v', 0x00, 0x02, 0xAB, 0xCD}
	sum := frameChecksum(data)

	var total byte
	for _, b := range append(data, sum) {
		total += b
	}
	assert.Equal(t, byte(0), total)
}
