package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yasdfgr/id100/device"
	"github.com/yasdfgr/id100/protocol"
)

var cmdCalibration = &cobra.Command{
	Use:   "calibration",
	Short: "Read or set the RTC calibration",
}

var cmdCalibrationGet = &cobra.Command{
	Use:   "get",
	Short: "Show the last RTC calibration",
	Args:  cobra.NoArgs,
	RunE:  runCalibrationGet,
}

var cmdCalibrationSet = &cobra.Command{
	Use:   "set <ppm>",
	Short: "Set the RTC calibration offset in PPM",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalibrationSet,
}

func init() {
	rootCmd.AddCommand(cmdCalibration)
	cmdCalibration.AddCommand(cmdCalibrationGet, cmdCalibrationSet)
}

func runCalibrationGet(ccmd *cobra.Command, args []string) error {
	return withClient(func(c *device.Client) error {
		cal, err := c.GetLastCalibration()
		if err != nil {
			return err
		}

		ts := cal.Timestamp
		fmt.Printf("calibrated %+.1f ppm at %04d-%02d-%02d %02d:%02d:%02d\n",
			cal.PPM,
			2000+int(ts.Year), ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second)
		return nil
	})
}

func runCalibrationSet(ccmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return fmt.Errorf("invalid PPM value %q", args[0])
	}

	ppm := float32(value)
	applied := protocol.ClampPPM(ppm)

	return withClient(func(c *device.Client) error {
		if err := c.SetRtcCalibration(ppm); err != nil {
			return err
		}

		if applied != ppm {
			fmt.Printf("calibration saturated to %+.1f ppm (limit %.1f)\n", applied, protocol.PPMLimit)
		} else {
			fmt.Printf("calibration set to %+.1f ppm\n", applied)
		}
		return nil
	})
}
