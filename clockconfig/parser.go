package clockconfig

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yasdfgr/id100/protocol"
)

// Constants for clock-configuration file parsing.
const (
	// PageLineBytes is the decoded size of one page line:
	// page number (2) + data (64) + checksum (1)
	PageLineBytes = protocol.PageNumberSize + protocol.FlashPageDataSize + 1

	// PageLineLength is the length of one page line in hex characters
	PageLineLength = PageLineBytes * 2
)

// Parse parses a clock-configuration file from the given file path.
//
// Example:
//
//	cfg, err := clockconfig.Parse("clock.id100cfg")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Parse(path string) (*ClockConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a clock-configuration file from any io.Reader.
// This is useful for testing and reading from non-file sources.
func ParseReader(r io.Reader) (*ClockConfig, error) {
	scanner := bufio.NewScanner(r)
	cfg := &ClockConfig{}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip blanks and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		page, err := parsePageLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		cfg.Pages = append(cfg.Pages, page)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(cfg.Pages) == 0 {
		return nil, fmt.Errorf("no pages found in file")
	}

	return cfg, nil
}

// parsePageLine parses a single hex-encoded page line.
//
// Line format:
//
//	[PageNumber(2 bytes, big-endian)][Data(64 bytes)][Checksum(1 byte)]
func parsePageLine(line string) (*Page, error) {
	if len(line) != PageLineLength {
		return nil, fmt.Errorf("invalid page line length: got %d characters, expected %d", len(line), PageLineLength)
	}

	data, err := hex.DecodeString(line)
	if err != nil {
		return nil, fmt.Errorf("invalid hex data: %w", err)
	}

	checksum := data[len(data)-1]
	calculated := calculatePageChecksum(data[:len(data)-1])
	if checksum != calculated {
		return nil, fmt.Errorf("checksum mismatch: got 0x%02X, expected 0x%02X", checksum, calculated)
	}

	page := &Page{
		Number: uint16(data[0])<<8 | uint16(data[1]), // big-endian in the file
	}
	copy(page.Data[:], data[protocol.PageNumberSize:len(data)-1])

	return page, nil
}

// calculatePageChecksum computes the 8-bit checksum for a page line.
// Uses basic summation with 2's complement.
func calculatePageChecksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return ^sum + 1
}
