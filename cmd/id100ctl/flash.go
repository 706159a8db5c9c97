package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yasdfgr/id100/clockconfig"
	"github.com/yasdfgr/id100/device"
)

var cmdFlash = &cobra.Command{
	Use:   "flash",
	Short: "Access the flash configuration area",
}

var cmdFlashRead = &cobra.Command{
	Use:   "read <page>",
	Short: "Read one flash configuration page",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlashRead,
}

var cmdFlashErase = &cobra.Command{
	Use:   "erase <start-page>",
	Short: "Erase the flash sector starting at the given page",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlashErase,
}

var flashEraseConfirmed bool

var cmdFlashWriteClock = &cobra.Command{
	Use:   "write-clock <file>",
	Short: "Write a clock configuration file to flash",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlashWriteClock,
}

func init() {
	rootCmd.AddCommand(cmdFlash)
	cmdFlash.AddCommand(cmdFlashRead, cmdFlashErase, cmdFlashWriteClock)
	cmdFlashErase.Flags().BoolVar(&flashEraseConfirmed, "yes", false, "Confirm erasing the sector")
}

// parsePageArg parses a flash page number argument.
func parsePageArg(arg string) (uint16, error) {
	page, err := strconv.ParseUint(arg, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid page number %q", arg)
	}
	return uint16(page), nil
}

func runFlashRead(ccmd *cobra.Command, args []string) error {
	page, err := parsePageArg(args[0])
	if err != nil {
		return err
	}

	return withClient(func(c *device.Client) error {
		config, err := c.GetFlashConfigPage(page)
		if err != nil {
			return err
		}

		fmt.Printf("page %d:\n%s", config.PageNumber, hex.Dump(config.Data[:]))
		return nil
	})
}

func runFlashErase(ccmd *cobra.Command, args []string) error {
	startPage, err := parsePageArg(args[0])
	if err != nil {
		return err
	}

	if !flashEraseConfirmed {
		return fmt.Errorf("erasing destroys the sector's configuration; re-run with --yes")
	}

	return withClient(func(c *device.Client) error {
		if err := c.EraseFlashConfigSector(startPage); err != nil {
			return err
		}

		fmt.Printf("sector at page %d erased\n", startPage)
		return nil
	})
}

func runFlashWriteClock(ccmd *cobra.Command, args []string) error {
	cfg, err := clockconfig.Parse(args[0])
	if err != nil {
		return err
	}

	return withClient(func(c *device.Client) error {
		for _, page := range cfg.Pages {
			log.Infow("writing clock config page", "page", page.Number)

			if err := c.SetFlashClockConfig(page.Record()); err != nil {
				return fmt.Errorf("page %d: %w", page.Number, err)
			}
		}

		fmt.Printf("%d pages written\n", len(cfg.Pages))
		return nil
	})
}
