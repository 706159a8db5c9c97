package protocol

import "encoding/binary"

// hostBigEndian is resolved once at startup by probing the native byte
// order. Conversion helpers become no-ops on big-endian hosts.
var hostBigEndian = binary.NativeEndian.Uint16([]byte{0x01, 0x02}) == 0x0102

// Swap16 reverses the byte order of a 16-bit value. It is its own inverse:
// Swap16(Swap16(v)) == v for all v.
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// HostToWire16 converts a 16-bit value from host order to the device's
// big-endian wire order.
func HostToWire16(v uint16) uint16 {
	if hostBigEndian {
		return v
	}
	return Swap16(v)
}

// WireToHost16 converts a 16-bit value from wire order back to host order.
// It is the symmetric counterpart of HostToWire16.
func WireToHost16(v uint16) uint16 {
	return HostToWire16(v)
}

// putUint16 writes v at data[offset:] in wire order.
func putUint16(data []byte, offset int, v uint16) {
	binary.NativeEndian.PutUint16(data[offset:offset+2], HostToWire16(v))
}

// getUint16 reads a wire-order value at data[offset:] into host order.
func getUint16(data []byte, offset int) uint16 {
	return WireToHost16(binary.NativeEndian.Uint16(data[offset : offset+2]))
}
