package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yasdfgr/id100/device"
	"github.com/yasdfgr/id100/internal/logging"
	"github.com/yasdfgr/id100/serial"
)

var rootCmd = &cobra.Command{
	Use:           "id100ctl",
	Short:         "Control an ID100 LED clock over its serial protocol.",
	Long:          ``,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	flagConfig       string
	flagPort         string
	flagBaud         int
	flagCommandDelay time.Duration
	flagLogLevel     string
	flagLogFormat    string
	flagLogFile      string

	cfg runtimeConfig
	log *zap.SugaredLogger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to a TOML configuration file")
	rootCmd.PersistentFlags().StringVarP(&flagPort, "port", "p", "", "Serial device (e.g. /dev/ttyACM0)")
	rootCmd.PersistentFlags().IntVarP(&flagBaud, "baud", "b", 115200, "Serial baud rate")
	rootCmd.PersistentFlags().DurationVar(&flagCommandDelay, "command-delay", 0, "Pause between request and response (e.g. 10ms)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "console", "Log format: console or json")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Also write logs to this file, with rotation")

	rootCmd.PersistentPreRunE = setup
}

func Execute() error {
	return rootCmd.Execute()
}

// setup resolves the runtime configuration (defaults, then the config
// file, then explicit flags) and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = flagPort
	}
	if flags.Changed("baud") {
		cfg.Baud = flagBaud
	}
	if flags.Changed("command-delay") {
		cfg.CommandDelay = flagCommandDelay
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = flagLogFormat
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return err
	}
	log = logger.Sugar()

	return nil
}

// withClient opens the serial link, runs fn against the device and tears
// the link down again. Every device command funnels through here.
func withClient(fn func(*device.Client) error) error {
	if cfg.Port == "" {
		return fmt.Errorf("no serial port configured (use --port or a config file)")
	}

	link := serial.NewLink(serial.Config{
		Device:      cfg.Port,
		BaudRate:    cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})

	client := device.New(link,
		device.WithLogger(log),
		device.WithCommandDelay(cfg.CommandDelay),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Errorw("failed to close serial link", "error", err)
		}
	}()

	return fn(client)
}
