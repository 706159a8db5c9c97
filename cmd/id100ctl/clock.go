package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yasdfgr/id100/device"
	"github.com/yasdfgr/id100/protocol"
)

var cmdClock = &cobra.Command{
	Use:   "clock",
	Short: "Read or set the device clock",
}

var cmdClockGet = &cobra.Command{
	Use:   "get",
	Short: "Show the device's current date and time",
	Args:  cobra.NoArgs,
	RunE:  runClockGet,
}

var cmdClockSet = &cobra.Command{
	Use:   "set [\"YYYY-MM-DD HH:MM:SS\"]",
	Short: "Set the device clock (defaults to the host clock)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClockSet,
}

func init() {
	rootCmd.AddCommand(cmdClock)
	cmdClock.AddCommand(cmdClockGet, cmdClockSet)
}

func runClockGet(ccmd *cobra.Command, args []string) error {
	return withClient(func(c *device.Client) error {
		dt, err := c.GetDateTime()
		if err != nil {
			return err
		}

		fmt.Printf("%04d-%02d-%02d %02d:%02d:%02d (weekday %d)\n",
			2000+int(dt.Year), dt.Month, dt.Day,
			dt.Hour, dt.Minute, dt.Second, dt.Weekday)
		return nil
	})
}

func runClockSet(ccmd *cobra.Command, args []string) error {
	now := time.Now()
	if len(args) == 1 {
		parsed, err := time.ParseInLocation("2006-01-02 15:04:05", args[0], time.Local)
		if err != nil {
			return fmt.Errorf("invalid date/time %q (expected \"YYYY-MM-DD HH:MM:SS\")", args[0])
		}
		now = parsed
	}

	dt, err := dateTimeFromTime(now)
	if err != nil {
		return err
	}

	return withClient(func(c *device.Client) error {
		if err := c.SetDateTime(dt); err != nil {
			return err
		}

		fmt.Printf("clock set to %s\n", now.Format("2006-01-02 15:04:05"))
		return nil
	})
}

// dateTimeFromTime converts a host time to the device record. The device
// counts years from 2000 and weekdays from Monday = 1.
func dateTimeFromTime(t time.Time) (*protocol.DateTime, error) {
	if t.Year() < 2000 || t.Year() > 2255 {
		return nil, fmt.Errorf("year %d is outside the device range 2000-2255", t.Year())
	}

	weekday := byte(t.Weekday())
	if weekday == 0 {
		weekday = 7 // time.Sunday is 0, the device uses 7
	}

	return &protocol.DateTime{
		Year:    byte(t.Year() - 2000),
		Month:   byte(t.Month()),
		Day:     byte(t.Day()),
		Weekday: weekday,
		Hour:    byte(t.Hour()),
		Minute:  byte(t.Minute()),
		Second:  byte(t.Second()),
	}, nil
}
