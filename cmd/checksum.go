// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"

	"github.com/Thermoquad/stoker/pkg/cinder"
	"github.com/spf13/cobra"
)

var checksumCmd = &cobra.Command{
	Use:   "checksum <name>...",
	Short: "Print the registration checksum for command names",
	Long: `Print the case-insensitive CRC-32 checksum Cinder uses as a registry key.

Firmware registers commands by this value at compile time; use this to embed
the constants without running the hash on-target.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			fmt.Printf("0x%08X  %s\n", cinder.Checksum(name), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(checksumCmd)
}
