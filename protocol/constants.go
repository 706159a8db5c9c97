package protocol

// Command tags. A request carries one tag byte and the device echoes the
// same tag on the matching response.
const (
	// TagGetVersion queries the firmware version
	TagGetVersion byte = 'v'

	// TagGetDateTime reads the current date and time
	TagGetDateTime byte = 't'

	// TagSetDateTime sets the current date and time
	TagSetDateTime byte = 'T'

	// TagSetNormalMode switches the display to normal clock mode
	TagSetNormalMode byte = 'A'

	// TagSetPreviewMode switches the display to preview mode
	TagSetPreviewMode byte = 'a'

	// TagFactoryReset restores factory defaults
	TagFactoryReset byte = 'X'

	// TagActivateBootloader reboots the device into its bootloader
	TagActivateBootloader byte = '!'

	// TagSetPreviewMatrix uploads a preview frame for the LED matrix
	TagSetPreviewMatrix byte = 'D'

	// TagGetIntensity reads the standard display intensity
	TagGetIntensity byte = 'b'

	// TagSetIntensity sets the standard display intensity
	TagSetIntensity byte = 'B'

	// TagGetLastCalibration reads the last RTC calibration record
	TagGetLastCalibration byte = 'c'

	// TagSetRtcCalibration sets the RTC calibration PPM offset
	TagSetRtcCalibration byte = 'C'

	// TagGetStandby reads the standby time windows
	TagGetStandby byte = 's'

	// TagSetStandby sets the standby time windows
	TagSetStandby byte = 'S'

	// TagGetFlashConfigPage reads one flash configuration page
	TagGetFlashConfigPage byte = 'f'

	// TagEraseFlashSector erases a flash configuration sector
	TagEraseFlashSector byte = 'E'

	// TagSetFlashClockConfig writes one clock configuration page
	TagSetFlashClockConfig byte = 'F'

	// TagGetAppointments reads the appointment table
	TagGetAppointments byte = 'r'

	// TagSetAppointments writes the appointment table
	TagSetAppointments byte = 'R'
)

// Fixed payload sizes in bytes.
const (
	// VersionInfoSize is the version response payload: three 16-bit fields
	VersionInfoSize = 6

	// DateTimeSize is the date/time record size
	DateTimeSize = 7

	// IntensitySize is the intensity payload: a single scalar byte
	IntensitySize = 1

	// PPMSize is the size of a float32 PPM calibration value
	PPMSize = 4

	// LastCalibrationSize is a timestamp plus the PPM value applied then
	LastCalibrationSize = DateTimeSize + PPMSize

	// PageNumberSize is the size of a 16-bit flash page number
	PageNumberSize = 2

	// FlashPageDataSize is the data portion of one flash configuration page
	FlashPageDataSize = 64

	// FlashConfigPageSize is a page number plus the page data
	FlashConfigPageSize = PageNumberSize + FlashPageDataSize

	// FlashClockConfigSize is a page number plus one page of clock config
	FlashClockConfigSize = PageNumberSize + FlashPageDataSize
)

// LED matrix geometry. Preview frames are one bit per pixel, row-major,
// most significant bit first.
const (
	// MatrixRows is the number of LED matrix rows
	MatrixRows = 16

	// MatrixColumns is the number of LED matrix columns
	MatrixColumns = 16

	// MatrixBitmapSize is the packed preview frame size (32 bytes)
	MatrixBitmapSize = MatrixRows * MatrixColumns / 8
)

// Intensity range. The device accepts sixteen brightness steps.
const (
	// IntensityMin is the dimmest setting
	IntensityMin = 0

	// IntensityMax is the brightest setting
	IntensityMax = 15
)

// Standby configuration layout: one on/off window per weekday, Monday
// first.
const (
	// StandbyDays is the number of per-weekday standby windows
	StandbyDays = 7

	// StandbyWindowSize is one window: on hour/minute, off hour/minute
	StandbyWindowSize = 4

	// StandbyConfigSize is the full standby table
	StandbyConfigSize = StandbyDays * StandbyWindowSize
)

// Appointment table layout.
const (
	// AppointmentCount is the fixed number of appointment slots
	AppointmentCount = 25

	// AppointmentSize is one entry: month, day, hour, minute
	AppointmentSize = 4

	// AppointmentsConfigSize is the full appointment table
	AppointmentsConfigSize = AppointmentCount * AppointmentSize
)

// PPMLimit is the largest RTC calibration magnitude the device accepts.
// Values beyond it are saturated, not rejected.
const PPMLimit = 189.0
