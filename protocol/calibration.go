package protocol

import (
	"encoding/binary"
	"math"
)

// ClampPPM saturates an RTC calibration offset to the closed range
// [-PPMLimit, +PPMLimit]. In-range values pass through unchanged; the
// saturation is silent, matching device behavior.
func ClampPPM(ppm float32) float32 {
	if ppm > PPMLimit {
		return PPMLimit
	}
	if ppm < -PPMLimit {
		return -PPMLimit
	}
	return ppm
}

// EncodeRtcCalibration encodes a Set RTC Calibration request payload.
// The PPM value is clamped to the device's accepted range and carried as
// a little-endian float32.
func EncodeRtcCalibration(ppm float32) []byte {
	data := make([]byte, PPMSize)
	binary.LittleEndian.PutUint32(data, math.Float32bits(ClampPPM(ppm)))
	return data
}
