// Package protocol implements the ID100 application-layer command protocol.
//
// # Protocol Overview
//
// The ID100 clock speaks a simple tagged request/response protocol. Every
// request is a single ASCII tag byte plus an optional fixed-size payload;
// the device answers with the same tag and a fixed-size response payload:
//
//	Request:  [TAG][PAYLOAD...]
//	Response: [TAG][PAYLOAD...]
//
// Payload sizes are fixed per tag, there is no length negotiation. All
// 16-bit integer fields cross the wire big-endian; single-byte fields are
// carried verbatim; the two floating-point calibration fields are carried
// little-endian (the device's float convention).
//
// # Encoders and Decoders
//
// Use the Encode* functions to build request payloads:
//
//	payload := protocol.EncodeDateTime(&dt)
//	payload := protocol.EncodePageNumber(5)
//	// ... etc
//
// and the Decode* functions to validate and unpack response payloads:
//
//	version, err := protocol.DecodeVersionInfo(data)
//	page, err := protocol.DecodeFlashConfigPage(data)
//	// ... etc
//
// Every decoder checks the exact expected payload length before touching
// the data. Field offsets and widths are explicit; nothing relies on
// in-memory struct layout.
//
// # Endianness
//
// Swap16 reverses the byte order of a 16-bit value and is its own inverse.
// HostToWire16 and WireToHost16 apply it only when the host is
// little-endian, so conversion is symmetric and a no-op on big-endian
// hosts. The codec applies them to exactly the fields the device documents
// as big-endian: the three version fields and every flash page number.
package protocol
