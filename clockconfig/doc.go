// Package clockconfig provides parsing for ID100 clock-configuration
// files.
//
// # File Format
//
// A clock-configuration file is a text file with one flash page per
// line, hex-encoded. Blank lines and lines starting with '#' are
// ignored.
//
// Page line format (134 hex characters):
//
//	[PageNumber(2 bytes, big-endian)][Data(64 bytes)][Checksum(1 byte)]
//
// The checksum is the 2's complement of the byte sum over page number
// and data, so a valid line sums to zero.
//
// Example line (page 5, first data byte 0xAA):
//
//	0005AA00...0051
//
// # Usage
//
// Parse a file from disk:
//
//	cfg, err := clockconfig.Parse("clock.id100cfg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, page := range cfg.Pages {
//	    fmt.Printf("page %d\n", page.Number)
//	}
//
// Each parsed page maps directly onto one Set Flash Clock Config
// command.
package clockconfig
