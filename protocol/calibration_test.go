package protocol

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPPM(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{name: "in range", in: 10.0, want: 10.0},
		{name: "zero", in: 0.0, want: 0.0},
		{name: "negative in range", in: -188.9, want: -188.9},
		{name: "at positive limit", in: 189.0, want: 189.0},
		{name: "at negative limit", in: -189.0, want: -189.0},
		{name: "above limit", in: 250.0, want: 189.0},
		{name: "below limit", in: -250.0, want: -189.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPPM(tt.in))
		})
	}
}

func TestEncodeRtcCalibrationClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{name: "saturates high", in: 250.0, want: 189.0},
		{name: "saturates low", in: -250.0, want: -189.0},
		{name: "passes through", in: 10.0, want: 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := EncodeRtcCalibration(tt.in)
			require.Len(t, data, PPMSize)

			got := math.Float32frombits(binary.LittleEndian.Uint32(data))
			assert.Equal(t, tt.want, got)
		})
	}
}
