// Package serial provides the framed serial link to an ID100 clock.
//
// # Link Framing
//
// The ID100 link wraps every application command and answer in a simple
// frame:
//
//	[STX][TAG][LEN_H][LEN_L][PAYLOAD...][SUM][ETX]
//
// Where:
//   - STX = frame start marker (0x02)
//   - ETX = frame end marker (0x03)
//   - LEN = 16-bit payload length, big-endian
//   - SUM = 8-bit checksum: 2's complement of the byte sum over TAG,
//     LEN and PAYLOAD
//
// EncodeFrame and ReadFrame implement the framing over any byte stream;
// Link binds it to a serial port and implements device.Transport.
//
// # Serial Port
//
// Open configures a raw 8N1 tty via termios (no echo, no flow control)
// with poll-based reads and a configurable timeout. The ID100 enumerates
// as a USB CDC ACM device, typically /dev/ttyACM0.
//
// # Usage
//
//	link := serial.NewLink(serial.Config{Device: "/dev/ttyACM0"})
//	client := device.New(link)
//	if err := client.Connect(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
package serial
