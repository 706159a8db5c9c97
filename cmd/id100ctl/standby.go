package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/yasdfgr/id100/device"
	"github.com/yasdfgr/id100/protocol"
)

var cmdStandby = &cobra.Command{
	Use:   "standby",
	Short: "Read or set the standby time windows",
}

var cmdStandbyGet = &cobra.Command{
	Use:   "get",
	Short: "Show the standby windows per weekday",
	Args:  cobra.NoArgs,
	RunE:  runStandbyGet,
}

var cmdStandbySet = &cobra.Command{
	Use:   "set <file>",
	Short: "Set the standby windows from a TOML file",
	Long: `Set the standby windows from a TOML file.

The file holds one table per weekday; omitted days get no standby:

	[monday]
	on = "22:30"
	off = "06:30"`,
	Args: cobra.ExactArgs(1),
	RunE: runStandbySet,
}

func init() {
	rootCmd.AddCommand(cmdStandby)
	cmdStandby.AddCommand(cmdStandbyGet, cmdStandbySet)
}

// weekdayNames is ordered to match the device's standby table, Monday first.
var weekdayNames = [protocol.StandbyDays]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

func runStandbyGet(ccmd *cobra.Command, args []string) error {
	return withClient(func(c *device.Client) error {
		standby, err := c.GetStandby()
		if err != nil {
			return err
		}

		for i, window := range standby {
			if window.Disabled() {
				fmt.Printf("%-9s -\n", weekdayNames[i])
				continue
			}
			fmt.Printf("%-9s %02d:%02d - %02d:%02d\n",
				weekdayNames[i],
				window.OnHour, window.OnMinute,
				window.OffHour, window.OffMinute)
		}
		return nil
	})
}

func runStandbySet(ccmd *cobra.Command, args []string) error {
	standby, err := loadStandbyFile(args[0])
	if err != nil {
		return err
	}

	return withClient(func(c *device.Client) error {
		return c.SetStandby(standby)
	})
}

// standbyWindowFile is one weekday table of the standby TOML file.
type standbyWindowFile struct {
	On  string `toml:"on"`
	Off string `toml:"off"`
}

// standbyFile is the standby TOML file key mapping.
type standbyFile struct {
	Monday    standbyWindowFile `toml:"monday"`
	Tuesday   standbyWindowFile `toml:"tuesday"`
	Wednesday standbyWindowFile `toml:"wednesday"`
	Thursday  standbyWindowFile `toml:"thursday"`
	Friday    standbyWindowFile `toml:"friday"`
	Saturday  standbyWindowFile `toml:"saturday"`
	Sunday    standbyWindowFile `toml:"sunday"`
}

func loadStandbyFile(path string) (*protocol.StandbyConfig, error) {
	var raw standbyFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load standby file: %w", err)
	}

	days := [protocol.StandbyDays]standbyWindowFile{
		raw.Monday, raw.Tuesday, raw.Wednesday,
		raw.Thursday, raw.Friday, raw.Saturday, raw.Sunday,
	}

	standby := &protocol.StandbyConfig{}
	for i, day := range days {
		if !meta.IsDefined(weekdayNames[i]) {
			continue
		}

		window, err := parseStandbyWindow(day)
		if err != nil {
			return nil, fmt.Errorf("load standby file: %s: %w", weekdayNames[i], err)
		}
		standby[i] = window
	}

	return standby, nil
}

func parseStandbyWindow(raw standbyWindowFile) (protocol.StandbyWindow, error) {
	onHour, onMinute, err := parseClockTime(raw.On)
	if err != nil {
		return protocol.StandbyWindow{}, fmt.Errorf("on: %w", err)
	}

	offHour, offMinute, err := parseClockTime(raw.Off)
	if err != nil {
		return protocol.StandbyWindow{}, fmt.Errorf("off: %w", err)
	}

	return protocol.StandbyWindow{
		OnHour:    onHour,
		OnMinute:  onMinute,
		OffHour:   offHour,
		OffMinute: offMinute,
	}, nil
}

// parseClockTime parses a "HH:MM" time of day.
func parseClockTime(s string) (hour, minute byte, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}

	return byte(h), byte(m), nil
}
