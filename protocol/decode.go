package protocol

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DecodeVersionInfo decodes the Get Version response payload.
//
// Payload format (6 bytes, all big-endian):
//
//	[MAJOR(2)][MINOR(2)][REVISION(2)]
func DecodeVersionInfo(data []byte) (*VersionInfo, error) {
	if len(data) != VersionInfoSize {
		return nil, fmt.Errorf("invalid version payload length: got %d bytes, expected %d", len(data), VersionInfoSize)
	}

	return &VersionInfo{
		Major:    getUint16(data, 0),
		Minor:    getUint16(data, 2),
		Revision: getUint16(data, 4),
	}, nil
}

// DecodeDateTime decodes a date/time record.
//
// Payload format (7 bytes):
//
//	[YEAR][MONTH][DAY][WEEKDAY][HOUR][MINUTE][SECOND]
func DecodeDateTime(data []byte) (*DateTime, error) {
	if len(data) != DateTimeSize {
		return nil, fmt.Errorf("invalid date/time payload length: got %d bytes, expected %d", len(data), DateTimeSize)
	}

	return &DateTime{
		Year:    data[0],
		Month:   data[1],
		Day:     data[2],
		Weekday: data[3],
		Hour:    data[4],
		Minute:  data[5],
		Second:  data[6],
	}, nil
}

// DecodeIntensity decodes the single-byte intensity payload.
func DecodeIntensity(data []byte) (byte, error) {
	if len(data) != IntensitySize {
		return 0, fmt.Errorf("invalid intensity payload length: got %d bytes, expected %d", len(data), IntensitySize)
	}

	return data[0], nil
}

// DecodeLastCalibration decodes the Get Last Calibration response.
//
// Payload format (11 bytes):
//
//	[DATETIME(7)][PPM float32 LE(4)]
func DecodeLastCalibration(data []byte) (*LastCalibration, error) {
	if len(data) != LastCalibrationSize {
		return nil, fmt.Errorf("invalid calibration payload length: got %d bytes, expected %d", len(data), LastCalibrationSize)
	}

	dt, err := DecodeDateTime(data[:DateTimeSize])
	if err != nil {
		return nil, err
	}

	return &LastCalibration{
		Timestamp: *dt,
		PPM:       math.Float32frombits(binary.LittleEndian.Uint32(data[DateTimeSize:])),
	}, nil
}

// DecodeRtcCalibration decodes a Set RTC Calibration request payload.
func DecodeRtcCalibration(data []byte) (float32, error) {
	if len(data) != PPMSize {
		return 0, fmt.Errorf("invalid PPM payload length: got %d bytes, expected %d", len(data), PPMSize)
	}

	return math.Float32frombits(binary.LittleEndian.Uint32(data)), nil
}

// DecodeStandbyConfig decodes the standby table.
//
// Payload format (28 bytes): seven windows, Monday first, each
//
//	[ON_HOUR][ON_MINUTE][OFF_HOUR][OFF_MINUTE]
func DecodeStandbyConfig(data []byte) (*StandbyConfig, error) {
	if len(data) != StandbyConfigSize {
		return nil, fmt.Errorf("invalid standby payload length: got %d bytes, expected %d", len(data), StandbyConfigSize)
	}

	var s StandbyConfig
	for i := range s {
		off := i * StandbyWindowSize
		s[i] = StandbyWindow{
			OnHour:    data[off],
			OnMinute:  data[off+1],
			OffHour:   data[off+2],
			OffMinute: data[off+3],
		}
	}
	return &s, nil
}

// DecodePageNumber decodes a 16-bit flash page number from wire order.
func DecodePageNumber(data []byte) (uint16, error) {
	if len(data) != PageNumberSize {
		return 0, fmt.Errorf("invalid page number payload length: got %d bytes, expected %d", len(data), PageNumberSize)
	}

	return getUint16(data, 0), nil
}

// DecodeFlashConfigPage decodes the Get Flash Config Page response.
//
// Payload format (66 bytes):
//
//	[PAGE_NUMBER(2, big-endian)][DATA(64)]
func DecodeFlashConfigPage(data []byte) (*FlashConfigPage, error) {
	if len(data) != FlashConfigPageSize {
		return nil, fmt.Errorf("invalid flash page payload length: got %d bytes, expected %d", len(data), FlashConfigPageSize)
	}

	p := &FlashConfigPage{PageNumber: getUint16(data, 0)}
	copy(p.Data[:], data[PageNumberSize:])
	return p, nil
}

// DecodeFlashClockConfig decodes a Set Flash Clock Config request payload.
func DecodeFlashClockConfig(data []byte) (*FlashClockConfig, error) {
	if len(data) != FlashClockConfigSize {
		return nil, fmt.Errorf("invalid clock config payload length: got %d bytes, expected %d", len(data), FlashClockConfigSize)
	}

	c := &FlashClockConfig{PageNumber: getUint16(data, 0)}
	copy(c.Config[:], data[PageNumberSize:])
	return c, nil
}

// DecodeAppointments decodes the appointment table.
//
// Payload format (100 bytes): 25 slots, each
//
//	[MONTH][DAY][HOUR][MINUTE]
func DecodeAppointments(data []byte) (*AppointmentsConfig, error) {
	if len(data) != AppointmentsConfigSize {
		return nil, fmt.Errorf("invalid appointments payload length: got %d bytes, expected %d", len(data), AppointmentsConfigSize)
	}

	var a AppointmentsConfig
	for i := range a {
		off := i * AppointmentSize
		a[i] = Appointment{
			Month:  data[off],
			Day:    data[off+1],
			Hour:   data[off+2],
			Minute: data[off+3],
		}
	}
	return &a, nil
}
