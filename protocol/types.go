package protocol

// VersionInfo contains the device firmware version.
// Returned by the Get Version command.
type VersionInfo struct {
	// Major is the major version number
	Major uint16

	// Minor is the minor version number
	Minor uint16

	// Revision is the revision number
	Revision uint16
}

// DateTime is the device's fixed-layout timestamp record.
// All fields are single bytes; nothing is byte-swapped.
type DateTime struct {
	// Year counts from 2000 (0 = year 2000)
	Year byte

	// Month is 1-12
	Month byte

	// Day is 1-31
	Day byte

	// Weekday is 1-7 with Monday = 1
	Weekday byte

	// Hour is 0-23
	Hour byte

	// Minute is 0-59
	Minute byte

	// Second is 0-59
	Second byte
}

// MatrixBitmap is a packed preview frame for the LED matrix: one bit per
// pixel, row-major, most significant bit first.
type MatrixBitmap [MatrixBitmapSize]byte

// SetPixel turns the pixel at (row, col) on or off.
// Out-of-range coordinates are ignored.
func (m *MatrixBitmap) SetPixel(row, col int, on bool) {
	if row < 0 || row >= MatrixRows || col < 0 || col >= MatrixColumns {
		return
	}
	idx := row*MatrixColumns + col
	mask := byte(0x80) >> (idx % 8)
	if on {
		m[idx/8] |= mask
	} else {
		m[idx/8] &^= mask
	}
}

// Pixel reports whether the pixel at (row, col) is on.
// Out-of-range coordinates report false.
func (m *MatrixBitmap) Pixel(row, col int) bool {
	if row < 0 || row >= MatrixRows || col < 0 || col >= MatrixColumns {
		return false
	}
	idx := row*MatrixColumns + col
	return m[idx/8]&(byte(0x80)>>(idx%8)) != 0
}

// LastCalibration records when the RTC was last calibrated and the PPM
// offset applied then. Returned by the Get Last Calibration command.
type LastCalibration struct {
	// Timestamp is when the calibration was applied
	Timestamp DateTime

	// PPM is the parts-per-million offset that was applied
	PPM float32
}

// StandbyWindow is one per-weekday standby window. The display switches
// off at the On time and back on at the Off time.
type StandbyWindow struct {
	// OnHour and OnMinute are when standby begins
	OnHour   byte
	OnMinute byte

	// OffHour and OffMinute are when standby ends
	OffHour   byte
	OffMinute byte
}

// Disabled reports whether the window is the all-zero "no standby" marker.
func (w StandbyWindow) Disabled() bool {
	return w == StandbyWindow{}
}

// StandbyConfig holds one standby window per weekday, Monday first.
type StandbyConfig [StandbyDays]StandbyWindow

// FlashConfigPage is one page of the flash configuration area.
// Returned by the Get Flash Config Page command; PageNumber echoes the
// requested page.
type FlashConfigPage struct {
	// PageNumber is the page this data belongs to
	PageNumber uint16

	// Data is the raw page content
	Data [FlashPageDataSize]byte
}

// FlashClockConfig is one page of clock configuration to be written to
// flash. Sent with the Set Flash Clock Config command.
type FlashClockConfig struct {
	// PageNumber is the destination page
	PageNumber uint16

	// Config is the raw clock configuration page
	Config [FlashPageDataSize]byte
}

// Appointment is one entry of the appointment table. A zero Month marks
// an empty slot.
type Appointment struct {
	// Month is 1-12, 0 for an empty slot
	Month byte

	// Day is 1-31
	Day byte

	// Hour is 0-23
	Hour byte

	// Minute is 0-59
	Minute byte
}

// Empty reports whether the slot is unused.
func (a Appointment) Empty() bool {
	return a.Month == 0
}

// AppointmentsConfig is the device's fixed-size appointment table.
type AppointmentsConfig [AppointmentCount]Appointment
