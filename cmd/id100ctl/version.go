package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yasdfgr/id100/device"
)

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Show the device firmware version",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(cmdVersion)
}

func runVersion(ccmd *cobra.Command, args []string) error {
	return withClient(func(c *device.Client) error {
		version, err := c.GetVersion()
		if err != nil {
			return err
		}

		fmt.Printf("firmware %d.%d.%d\n", version.Major, version.Minor, version.Revision)
		return nil
	})
}
