// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// envConfig provides environment defaults for the connection flags, so a
// bench setup can pin its port once instead of repeating it per invocation.
type envConfig struct {
	Port     string `env:"STOKER_PORT"`
	Baud     int    `env:"STOKER_BAUD" envDefault:"115200"`
	URL      string `env:"STOKER_URL"`
	Username string `env:"STOKER_USERNAME"`
	Image    string `env:"STOKER_IMAGE" envDefault:"stoker-eeprom.bin"`
}

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket connection flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// EEPROM image used by the startup commands and console built-ins
	imagePath string
)

var rootCmd = &cobra.Command{
	Use:   "stoker",
	Short: "Cinder Console Tool",
	Long: `Stoker - A CLI tool for the Cinder text command console.

Cinder is the line-oriented command console on Thermoquad appliance firmware.
Stoker drives the reference Go interpreter: an interactive console (plain or
TUI), startup-command storage in an EEPROM image file, and a checksum utility
for firmware authors embedding command hashes at compile time.

Connection modes:
  Local:     no connection flags (console runs on stdin/stdout)
  Serial:    --port /dev/ttyUSB0 [--baud 115200]
  WebSocket: --url ws://host/path [--username user]

Flags default from STOKER_PORT, STOKER_BAUD, STOKER_URL, STOKER_USERNAME and
STOKER_IMAGE. For WebSocket authentication, the password is read from the
STOKER_PASSWORD environment variable, or prompted interactively if not set.
The --password flag is intentionally not provided to avoid leaking
credentials in shell history.`,
	Version: "1.0.0",
}

func init() {
	cfg := envConfig{}
	if err := env.Parse(&cfg); err != nil {
		log.Printf("Ignoring malformed environment config: %v", err)
		cfg = envConfig{Baud: 115200, Image: "stoker-eeprom.bin"}
	}

	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", cfg.Port, "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", cfg.Baud, "Baud rate (serial only)")

	// WebSocket connection flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", cfg.URL, "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", cfg.Username, "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	// Persistence flags
	rootCmd.PersistentFlags().StringVar(&imagePath, "image", cfg.Image, "EEPROM image file for startup commands")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
