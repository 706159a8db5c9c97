package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/yasdfgr/id100/device"
	"github.com/yasdfgr/id100/protocol"
)

var cmdAppointments = &cobra.Command{
	Use:   "appointments",
	Short: "Read or set the appointment table",
}

var cmdAppointmentsGet = &cobra.Command{
	Use:   "get",
	Short: "Show the stored appointments",
	Args:  cobra.NoArgs,
	RunE:  runAppointmentsGet,
}

var cmdAppointmentsSet = &cobra.Command{
	Use:   "set <file>",
	Short: "Set the appointment table from a TOML file",
	Long: `Set the appointment table from a TOML file.

The file holds up to 25 entries; unused slots stay empty:

	[[appointment]]
	month = 12
	day = 24
	hour = 18
	minute = 0`,
	Args: cobra.ExactArgs(1),
	RunE: runAppointmentsSet,
}

var cmdAppointmentsClear = &cobra.Command{
	Use:   "clear",
	Short: "Remove all appointments",
	Args:  cobra.NoArgs,
	RunE:  runAppointmentsClear,
}

func init() {
	rootCmd.AddCommand(cmdAppointments)
	cmdAppointments.AddCommand(cmdAppointmentsGet, cmdAppointmentsSet, cmdAppointmentsClear)
}

func runAppointmentsGet(ccmd *cobra.Command, args []string) error {
	return withClient(func(c *device.Client) error {
		appointments, err := c.GetAppointments()
		if err != nil {
			return err
		}

		count := 0
		for _, appointment := range appointments {
			if appointment.Empty() {
				continue
			}
			count++
			fmt.Printf("%02d-%02d %02d:%02d\n",
				appointment.Month, appointment.Day,
				appointment.Hour, appointment.Minute)
		}

		if count == 0 {
			fmt.Println("no appointments stored")
		}
		return nil
	})
}

func runAppointmentsSet(ccmd *cobra.Command, args []string) error {
	appointments, err := loadAppointmentsFile(args[0])
	if err != nil {
		return err
	}

	return withClient(func(c *device.Client) error {
		return c.SetAppointments(appointments)
	})
}

func runAppointmentsClear(ccmd *cobra.Command, args []string) error {
	return withClient(func(c *device.Client) error {
		return c.SetAppointments(&protocol.AppointmentsConfig{})
	})
}

// appointmentFile is one [[appointment]] entry of the TOML file.
type appointmentFile struct {
	Month  int `toml:"month"`
	Day    int `toml:"day"`
	Hour   int `toml:"hour"`
	Minute int `toml:"minute"`
}

// appointmentsFile is the appointments TOML file key mapping.
type appointmentsFile struct {
	Appointments []appointmentFile `toml:"appointment"`
}

func loadAppointmentsFile(path string) (*protocol.AppointmentsConfig, error) {
	var raw appointmentsFile
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("load appointments file: %w", err)
	}

	if len(raw.Appointments) > protocol.AppointmentCount {
		return nil, fmt.Errorf("load appointments file: %d entries, the device holds at most %d",
			len(raw.Appointments), protocol.AppointmentCount)
	}

	appointments := &protocol.AppointmentsConfig{}
	for i, entry := range raw.Appointments {
		if entry.Month < 1 || entry.Month > 12 {
			return nil, fmt.Errorf("load appointments file: entry %d: month %d out of range 1-12", i+1, entry.Month)
		}
		if entry.Day < 1 || entry.Day > 31 {
			return nil, fmt.Errorf("load appointments file: entry %d: day %d out of range 1-31", i+1, entry.Day)
		}
		if entry.Hour < 0 || entry.Hour > 23 {
			return nil, fmt.Errorf("load appointments file: entry %d: hour %d out of range 0-23", i+1, entry.Hour)
		}
		if entry.Minute < 0 || entry.Minute > 59 {
			return nil, fmt.Errorf("load appointments file: entry %d: minute %d out of range 0-59", i+1, entry.Minute)
		}

		appointments[i] = protocol.Appointment{
			Month:  byte(entry.Month),
			Day:    byte(entry.Day),
			Hour:   byte(entry.Hour),
			Minute: byte(entry.Minute),
		}
	}

	return appointments, nil
}
