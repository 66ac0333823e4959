// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad
//
// Stoker - Cinder Console Tool
//
// A CLI tool for talking to the Cinder text command console on Thermoquad
// appliance firmware, and for exercising the reference interpreter locally.

package main

import (
	"os"

	"github.com/Thermoquad/stoker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
