package protocol

import (
	"encoding/binary"
	"math"
)

// EncodeVersionInfo encodes a version record as three big-endian 16-bit
// fields. Devices produce this payload; the host side uses it in tests and
// simulators.
func EncodeVersionInfo(v *VersionInfo) []byte {
	data := make([]byte, VersionInfoSize)
	putUint16(data, 0, v.Major)
	putUint16(data, 2, v.Minor)
	putUint16(data, 4, v.Revision)
	return data
}

// EncodeDateTime encodes a date/time record. Every field is a single byte,
// so no byte swapping applies.
func EncodeDateTime(dt *DateTime) []byte {
	return []byte{dt.Year, dt.Month, dt.Day, dt.Weekday, dt.Hour, dt.Minute, dt.Second}
}

// EncodeIntensity encodes the single-byte intensity scalar.
func EncodeIntensity(intensity byte) []byte {
	return []byte{intensity}
}

// EncodeLastCalibration encodes a calibration record: timestamp followed
// by the PPM value as a little-endian float32.
func EncodeLastCalibration(c *LastCalibration) []byte {
	data := make([]byte, LastCalibrationSize)
	copy(data, EncodeDateTime(&c.Timestamp))
	binary.LittleEndian.PutUint32(data[DateTimeSize:], math.Float32bits(c.PPM))
	return data
}

// EncodeStandbyConfig encodes the standby table, one 4-byte window per
// weekday starting with Monday.
func EncodeStandbyConfig(s *StandbyConfig) []byte {
	data := make([]byte, StandbyConfigSize)
	for i, w := range s {
		off := i * StandbyWindowSize
		data[off] = w.OnHour
		data[off+1] = w.OnMinute
		data[off+2] = w.OffHour
		data[off+3] = w.OffMinute
	}
	return data
}

// EncodePageNumber encodes a 16-bit flash page number in wire order.
func EncodePageNumber(page uint16) []byte {
	data := make([]byte, PageNumberSize)
	putUint16(data, 0, page)
	return data
}

// EncodeFlashConfigPage encodes a flash configuration page: the echoed
// page number followed by the raw page data.
func EncodeFlashConfigPage(p *FlashConfigPage) []byte {
	data := make([]byte, FlashConfigPageSize)
	putUint16(data, 0, p.PageNumber)
	copy(data[PageNumberSize:], p.Data[:])
	return data
}

// EncodeFlashClockConfig encodes a clock configuration write request: the
// destination page number followed by one page of clock config. The
// caller's record is not modified; the swap to wire order happens in the
// output buffer only.
func EncodeFlashClockConfig(c *FlashClockConfig) []byte {
	data := make([]byte, FlashClockConfigSize)
	putUint16(data, 0, c.PageNumber)
	copy(data[PageNumberSize:], c.Config[:])
	return data
}

// EncodeAppointments encodes the appointment table, 4 bytes per slot.
func EncodeAppointments(a *AppointmentsConfig) []byte {
	data := make([]byte, AppointmentsConfigSize)
	for i, appt := range a {
		off := i * AppointmentSize
		data[off] = appt.Month
		data[off+1] = appt.Day
		data[off+2] = appt.Hour
		data[off+3] = appt.Minute
	}
	return data
}
