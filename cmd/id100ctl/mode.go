package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yasdfgr/id100/device"
)

var cmdMode = &cobra.Command{
	Use:   "mode",
	Short: "Switch the display mode",
}

var cmdModeNormal = &cobra.Command{
	Use:   "normal",
	Short: "Switch to normal clock mode",
	Args:  cobra.NoArgs,
	RunE:  runModeNormal,
}

var cmdModePreview = &cobra.Command{
	Use:   "preview",
	Short: "Switch to preview mode",
	Args:  cobra.NoArgs,
	RunE:  runModePreview,
}

var cmdFactoryReset = &cobra.Command{
	Use:   "factory-reset",
	Short: "Restore factory defaults",
	Args:  cobra.NoArgs,
	RunE:  runFactoryReset,
}

var factoryResetConfirmed bool

var cmdBootloader = &cobra.Command{
	Use:   "bootloader",
	Short: "Reboot the device into its bootloader",
	Args:  cobra.NoArgs,
	RunE:  runBootloader,
}

func init() {
	rootCmd.AddCommand(cmdMode, cmdFactoryReset, cmdBootloader)
	cmdMode.AddCommand(cmdModeNormal, cmdModePreview)
	cmdFactoryReset.Flags().BoolVar(&factoryResetConfirmed, "yes", false, "Confirm erasing all device configuration")
}

func runModeNormal(ccmd *cobra.Command, args []string) error {
	return withClient(func(c *device.Client) error {
		return c.SetNormalMode()
	})
}

func runModePreview(ccmd *cobra.Command, args []string) error {
	return withClient(func(c *device.Client) error {
		return c.SetPreviewMode()
	})
}

func runFactoryReset(ccmd *cobra.Command, args []string) error {
	if !factoryResetConfirmed {
		return fmt.Errorf("factory reset erases all device configuration; re-run with --yes")
	}

	return withClient(func(c *device.Client) error {
		if err := c.FactoryReset(); err != nil {
			return err
		}

		fmt.Println("factory defaults restored")
		return nil
	})
}

func runBootloader(ccmd *cobra.Command, args []string) error {
	return withClient(func(c *device.Client) error {
		if err := c.ActivateBootloader(); err != nil {
			return err
		}

		fmt.Println("device rebooting into bootloader")
		return nil
	})
}
