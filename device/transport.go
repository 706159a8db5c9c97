package device

import "context"

// Transport moves tagged frames between the host and the device. The
// serial package provides the real implementation; tests and simulators
// supply in-memory ones.
type Transport interface {
	// Connect establishes the link. Called once before the first command.
	Connect(ctx context.Context) error

	// Disconnect tears the link down. Called once at the end.
	Disconnect() error

	// Send transmits one request: a command tag plus an optional payload.
	Send(tag byte, payload []byte) error

	// Receive reads the next response into buf and returns the response
	// tag and the full payload length. When the response is larger than
	// buf, the copy is truncated but the returned length still reports
	// the full size, so callers can detect over-long responses.
	Receive(buf []byte) (tag byte, n int, err error)
}
