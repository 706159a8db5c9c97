package device

import (
	"context"
	"fmt"
	"time"

	"github.com/yasdfgr/id100/protocol"
)

// Client drives an ID100 clock through a Transport. All operations are
// synchronous round trips; exactly one request is in flight at a time.
type Client struct {
	transport Transport
	config    Config
}

// New creates a new Client over the given transport.
//
// Example:
//
//	link := serial.NewLink(serial.Config{Device: "/dev/ttyACM0"})
//	client := device.New(link,
//	    device.WithLogger(log.Sugar()),
//	)
func New(transport Transport, opts ...Option) *Client {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{
		transport: transport,
		config:    cfg,
	}
}

// Connect establishes the transport link.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.transport.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	return nil
}

// Close tears the transport link down.
func (c *Client) Close() error {
	return c.transport.Disconnect()
}

// exchange is the single choke point every operation flows through: send
// the tagged request, receive the response, then validate that the echoed
// tag matches and the payload has the exact expected length.
func (c *Client) exchange(tag byte, request []byte, respLen int) ([]byte, error) {
	if err := c.transport.Send(tag, request); err != nil {
		return nil, fmt.Errorf("send '%c': %w", tag, err)
	}

	if c.config.CommandDelay > 0 {
		time.Sleep(c.config.CommandDelay)
	}

	buf := make([]byte, respLen)
	recvTag, n, err := c.transport.Receive(buf)
	if err != nil {
		return nil, fmt.Errorf("receive '%c': %w", tag, err)
	}

	if recvTag != tag {
		return nil, &TagMismatchError{Sent: tag, Received: recvTag}
	}
	if n != respLen {
		return nil, &LengthMismatchError{Tag: tag, Expected: respLen, Received: n}
	}

	c.logDebug("exchange complete",
		"tag", string(tag),
		"request_len", len(request),
		"response_len", n,
	)

	return buf, nil
}

// GetVersion queries the firmware version.
func (c *Client) GetVersion() (*protocol.VersionInfo, error) {
	data, err := c.exchange(protocol.TagGetVersion, nil, protocol.VersionInfoSize)
	if err != nil {
		return nil, err
	}

	return protocol.DecodeVersionInfo(data)
}

// GetDateTime reads the device's current date and time.
func (c *Client) GetDateTime() (*protocol.DateTime, error) {
	data, err := c.exchange(protocol.TagGetDateTime, nil, protocol.DateTimeSize)
	if err != nil {
		return nil, err
	}

	return protocol.DecodeDateTime(data)
}

// SetDateTime sets the device's date and time.
func (c *Client) SetDateTime(dt *protocol.DateTime) error {
	if dt == nil {
		return fmt.Errorf("date/time cannot be nil")
	}

	_, err := c.exchange(protocol.TagSetDateTime, protocol.EncodeDateTime(dt), 0)
	return err
}

// SetNormalMode switches the display to normal clock mode.
func (c *Client) SetNormalMode() error {
	_, err := c.exchange(protocol.TagSetNormalMode, nil, 0)
	return err
}

// SetPreviewMode switches the display to preview mode. The device then
// shows whatever frame was last uploaded with SetPreviewMatrix.
func (c *Client) SetPreviewMode() error {
	_, err := c.exchange(protocol.TagSetPreviewMode, nil, 0)
	return err
}

// FactoryReset restores factory defaults. The device forgets all
// configuration, including flash pages and appointments.
func (c *Client) FactoryReset() error {
	_, err := c.exchange(protocol.TagFactoryReset, nil, 0)
	return err
}

// ActivateBootloader reboots the device into its bootloader. The
// application protocol is unavailable until the device resets.
func (c *Client) ActivateBootloader() error {
	_, err := c.exchange(protocol.TagActivateBootloader, nil, 0)
	return err
}

// SetPreviewMatrix uploads a preview frame for the LED matrix.
func (c *Client) SetPreviewMatrix(matrix *protocol.MatrixBitmap) error {
	if matrix == nil {
		return fmt.Errorf("matrix cannot be nil")
	}

	_, err := c.exchange(protocol.TagSetPreviewMatrix, matrix[:], 0)
	return err
}

// GetIntensity reads the standard display intensity (0-15).
func (c *Client) GetIntensity() (byte, error) {
	data, err := c.exchange(protocol.TagGetIntensity, nil, protocol.IntensitySize)
	if err != nil {
		return 0, err
	}

	return protocol.DecodeIntensity(data)
}

// SetIntensity sets the standard display intensity (0-15).
func (c *Client) SetIntensity(intensity byte) error {
	_, err := c.exchange(protocol.TagSetIntensity, protocol.EncodeIntensity(intensity), 0)
	return err
}

// GetLastCalibration reads the last RTC calibration record.
func (c *Client) GetLastCalibration() (*protocol.LastCalibration, error) {
	data, err := c.exchange(protocol.TagGetLastCalibration, nil, protocol.LastCalibrationSize)
	if err != nil {
		return nil, err
	}

	return protocol.DecodeLastCalibration(data)
}

// SetRtcCalibration sets the RTC calibration PPM offset. Values outside
// [-189, +189] are silently saturated to the limit before transmission.
func (c *Client) SetRtcCalibration(ppm float32) error {
	clamped := protocol.ClampPPM(ppm)
	if clamped != ppm {
		c.logDebug("PPM value saturated", "requested", ppm, "sent", clamped)
	}

	_, err := c.exchange(protocol.TagSetRtcCalibration, protocol.EncodeRtcCalibration(ppm), 0)
	return err
}

// GetStandby reads the standby time windows.
func (c *Client) GetStandby() (*protocol.StandbyConfig, error) {
	data, err := c.exchange(protocol.TagGetStandby, nil, protocol.StandbyConfigSize)
	if err != nil {
		return nil, err
	}

	return protocol.DecodeStandbyConfig(data)
}

// SetStandby sets the standby time windows.
func (c *Client) SetStandby(standby *protocol.StandbyConfig) error {
	if standby == nil {
		return fmt.Errorf("standby config cannot be nil")
	}

	_, err := c.exchange(protocol.TagSetStandby, protocol.EncodeStandbyConfig(standby), 0)
	return err
}

// GetFlashConfigPage reads one flash configuration page. The device must
// echo the requested page number; a different echo fails the operation.
func (c *Client) GetFlashConfigPage(page uint16) (*protocol.FlashConfigPage, error) {
	data, err := c.exchange(protocol.TagGetFlashConfigPage, protocol.EncodePageNumber(page), protocol.FlashConfigPageSize)
	if err != nil {
		return nil, err
	}

	config, err := protocol.DecodeFlashConfigPage(data)
	if err != nil {
		return nil, err
	}

	if config.PageNumber != page {
		return nil, &PageMismatchError{Requested: page, Received: config.PageNumber}
	}

	return config, nil
}

// EraseFlashConfigSector erases the flash configuration sector starting
// at the given page. The device echoes the start page; a different echo
// fails the operation.
func (c *Client) EraseFlashConfigSector(startPage uint16) error {
	data, err := c.exchange(protocol.TagEraseFlashSector, protocol.EncodePageNumber(startPage), protocol.PageNumberSize)
	if err != nil {
		return err
	}

	erased, err := protocol.DecodePageNumber(data)
	if err != nil {
		return err
	}

	if erased != startPage {
		return &PageMismatchError{Requested: startPage, Received: erased}
	}

	return nil
}

// SetFlashClockConfig writes one clock configuration page to flash. The
// page number is converted to wire order in the encode buffer only; the
// caller's record is never modified. The device echoes the page number;
// a different echo fails the operation.
func (c *Client) SetFlashClockConfig(config *protocol.FlashClockConfig) error {
	if config == nil {
		return fmt.Errorf("clock config cannot be nil")
	}

	data, err := c.exchange(protocol.TagSetFlashClockConfig, protocol.EncodeFlashClockConfig(config), protocol.PageNumberSize)
	if err != nil {
		return err
	}

	written, err := protocol.DecodePageNumber(data)
	if err != nil {
		return err
	}

	if written != config.PageNumber {
		return &PageMismatchError{Requested: config.PageNumber, Received: written}
	}

	return nil
}

// GetAppointments reads the appointment table.
func (c *Client) GetAppointments() (*protocol.AppointmentsConfig, error) {
	data, err := c.exchange(protocol.TagGetAppointments, nil, protocol.AppointmentsConfigSize)
	if err != nil {
		return nil, err
	}

	return protocol.DecodeAppointments(data)
}

// SetAppointments writes the appointment table.
func (c *Client) SetAppointments(appointments *protocol.AppointmentsConfig) error {
	if appointments == nil {
		return fmt.Errorf("appointments cannot be nil")
	}

	_, err := c.exchange(protocol.TagSetAppointments, protocol.EncodeAppointments(appointments), 0)
	return err
}

// logDebug logs a debug message if a logger is configured.
func (c *Client) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debugw(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (c *Client) logError(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Errorw(msg, keysAndValues...)
	}
}
