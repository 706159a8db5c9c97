// Package device provides a high-level client for the ID100 clock.
//
// # Overview
//
// Client exposes one typed method per device operation: version query,
// date/time get/set, display-mode switches, preview upload, intensity,
// RTC calibration, standby scheduling, flash configuration access and
// appointment-table transfer. Every method is a single synchronous
// request/response round trip through one internal exchange primitive
// that validates the echoed command tag and the response length.
//
// # Basic Usage
//
//	link := serial.NewLink(serial.Config{Device: "/dev/ttyACM0"})
//	client := device.New(link)
//
//	if err := client.Connect(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	version, err := client.GetVersion()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("firmware %d.%d.%d\n", version.Major, version.Minor, version.Revision)
//
// # Transport Independence
//
// The client does not implement hardware communication. Callers provide a
// Transport; the serial package supplies one for the real device, and any
// in-memory implementation works for tests and simulators.
//
// # Error Handling
//
// Validation failures surface as typed errors:
//   - TagMismatchError: the response carried a different command tag
//   - LengthMismatchError: the response payload had an unexpected length
//   - PageMismatchError: the device echoed a different flash page number
//
// The client never retries and never terminates the process; callers
// decide how fatal a failure is.
//
// # Concurrency
//
// The protocol allows exactly one in-flight request per connection.
// Client performs no internal locking; callers must serialize access.
package device
