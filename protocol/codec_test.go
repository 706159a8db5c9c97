package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Big-endian device bytes must decode to host-order values on any host.
func TestDecodeVersionInfo(t *testing.T) {
	data := []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03}

	version, err := DecodeVersionInfo(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), version.Major)
	assert.Equal(t, uint16(2), version.Minor)
	assert.Equal(t, uint16(3), version.Revision)
}

func TestDecodeVersionInfoBadLength(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "short", data: []byte{0x00, 0x01}},
		{name: "long", data: make([]byte, VersionInfoSize+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeVersionInfo(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "length")
		})
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	dt := &DateTime{Year: 26, Month: 8, Day: 25, Weekday: 2, Hour: 14, Minute: 30, Second: 59}

	data := EncodeDateTime(dt)
	require.Len(t, data, DateTimeSize)

	decoded, err := DecodeDateTime(data)
	require.NoError(t, err)
	assert.Equal(t, dt, decoded)
}

func TestDecodeFlashConfigPage(t *testing.T) {
	data := make([]byte, FlashConfigPageSize)
	data[0] = 0x01 // page 0x0105 big-endian
	data[1] = 0x05
	data[2] = 0xAA
	data[FlashConfigPageSize-1] = 0x55

	page, err := DecodeFlashConfigPage(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0105), page.PageNumber)
	assert.Equal(t, byte(0xAA), page.Data[0])
	assert.Equal(t, byte(0x55), page.Data[FlashPageDataSize-1])
}

func TestEncodeFlashClockConfigLeavesRecordAlone(t *testing.T) {
	cfg := &FlashClockConfig{PageNumber: 42}
	cfg.Config[0] = 0xDE

	data := EncodeFlashClockConfig(cfg)
	require.Len(t, data, FlashClockConfigSize)

	// Wire order is big-endian regardless of host order.
	assert.Equal(t, byte(0x00), data[0])
	assert.Equal(t, byte(42), data[1])
	assert.Equal(t, byte(0xDE), data[2])

	// The caller's record still reads the original host-order value.
	assert.Equal(t, uint16(42), cfg.PageNumber)
}

func TestStandbyConfigRoundTrip(t *testing.T) {
	var s StandbyConfig
	s[0] = StandbyWindow{OnHour: 22, OnMinute: 30, OffHour: 6, OffMinute: 45}
	s[6] = StandbyWindow{OnHour: 23, OffHour: 8}

	decoded, err := DecodeStandbyConfig(EncodeStandbyConfig(&s))
	require.NoError(t, err)
	assert.Equal(t, &s, decoded)

	assert.False(t, decoded[0].Disabled())
	assert.True(t, decoded[1].Disabled())
}

func TestAppointmentsRoundTrip(t *testing.T) {
	var a AppointmentsConfig
	a[0] = Appointment{Month: 12, Day: 24, Hour: 18, Minute: 0}
	a[24] = Appointment{Month: 1, Day: 1, Hour: 0, Minute: 1}

	decoded, err := DecodeAppointments(EncodeAppointments(&a))
	require.NoError(t, err)
	assert.Equal(t, &a, decoded)

	assert.False(t, decoded[0].Empty())
	assert.True(t, decoded[1].Empty())
}

func TestMatrixBitmapPixels(t *testing.T) {
	var m MatrixBitmap

	m.SetPixel(0, 0, true)
	assert.Equal(t, byte(0x80), m[0], "first pixel is the MSB of the first byte")

	m.SetPixel(15, 15, true)
	assert.Equal(t, byte(0x01), m[MatrixBitmapSize-1], "last pixel is the LSB of the last byte")

	assert.True(t, m.Pixel(0, 0))
	assert.True(t, m.Pixel(15, 15))
	assert.False(t, m.Pixel(7, 7))

	m.SetPixel(0, 0, false)
	assert.False(t, m.Pixel(0, 0))

	// Out-of-range coordinates are ignored, not wrapped.
	m.SetPixel(MatrixRows, 0, true)
	m.SetPixel(0, -1, true)
	assert.Equal(t, MatrixBitmap{}, m)
}

func TestDecodeLastCalibration(t *testing.T) {
	rec := &LastCalibration{
		Timestamp: DateTime{Year: 25, Month: 1, Day: 2, Weekday: 4, Hour: 3, Minute: 4, Second: 5},
		PPM:       -12.5,
	}

	decoded, err := DecodeLastCalibration(EncodeLastCalibration(rec))
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)
}
