package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yasdfgr/id100/device"
	"github.com/yasdfgr/id100/protocol"
)

var cmdIntensity = &cobra.Command{
	Use:   "intensity",
	Short: "Read or set the display intensity",
}

var cmdIntensityGet = &cobra.Command{
	Use:   "get",
	Short: "Show the current display intensity",
	Args:  cobra.NoArgs,
	RunE:  runIntensityGet,
}

var cmdIntensitySet = &cobra.Command{
	Use:   "set <0-15>",
	Short: "Set the display intensity",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntensitySet,
}

var cmdPreview = &cobra.Command{
	Use:   "preview <file>",
	Short: "Upload a bitmap file and show it on the display",
	Long: `Upload a bitmap file and show it on the display.

The file holds one row per line, 16 characters each: '#' for a lit
pixel, '.' for a dark one. Blank lines are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(cmdIntensity, cmdPreview)
	cmdIntensity.AddCommand(cmdIntensityGet, cmdIntensitySet)
}

func runIntensityGet(ccmd *cobra.Command, args []string) error {
	return withClient(func(c *device.Client) error {
		intensity, err := c.GetIntensity()
		if err != nil {
			return err
		}

		fmt.Printf("intensity %d\n", intensity)
		return nil
	})
}

func runIntensitySet(ccmd *cobra.Command, args []string) error {
	value, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil || value > protocol.IntensityMax {
		return fmt.Errorf("invalid intensity %q (expected %d-%d)", args[0], protocol.IntensityMin, protocol.IntensityMax)
	}

	return withClient(func(c *device.Client) error {
		return c.SetIntensity(byte(value))
	})
}

func runPreview(ccmd *cobra.Command, args []string) error {
	matrix, err := parseMatrixFile(args[0])
	if err != nil {
		return err
	}

	return withClient(func(c *device.Client) error {
		if err := c.SetPreviewMatrix(matrix); err != nil {
			return err
		}
		return c.SetPreviewMode()
	})
}

// parseMatrixFile reads a bitmap file for the LED matrix.
func parseMatrixFile(path string) (*protocol.MatrixBitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	matrix, err := parseMatrixReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return matrix, nil
}

func parseMatrixReader(r io.Reader) (*protocol.MatrixBitmap, error) {
	matrix := &protocol.MatrixBitmap{}

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" {
			continue
		}
		if row >= protocol.MatrixRows {
			return nil, fmt.Errorf("too many rows: expected %d", protocol.MatrixRows)
		}
		if len(line) != protocol.MatrixColumns {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", row+1, len(line), protocol.MatrixColumns)
		}

		for col, ch := range line {
			switch ch {
			case '#':
				matrix.SetPixel(row, col, true)
			case '.':
				// dark
			default:
				return nil, fmt.Errorf("row %d: invalid character %q (expected '#' or '.')", row+1, ch)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if row != protocol.MatrixRows {
		return nil, fmt.Errorf("found %d rows, expected %d", row, protocol.MatrixRows)
	}

	return matrix, nil
}
