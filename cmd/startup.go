// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Thermoquad/stoker/pkg/cinder"
	"github.com/spf13/cobra"
)

var startupAppend bool

var startupCmd = &cobra.Command{
	Use:   "startup",
	Short: "Manage the persisted startup command",
	Long: `Manage the startup command persisted in the EEPROM image.

The image file (--image) mirrors the appliance's EEPROM layout: a presence
flag byte followed by a NUL-terminated command sequence. Sub-commands are
separated with ';' and executed in order on replay.`,
}

var startupStoreCmd = &cobra.Command{
	Use:   "store <commands>",
	Short: "Store a startup command sequence",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStartupStore,
}

var startupShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored startup command",
	Args:  cobra.NoArgs,
	RunE:  runStartupShow,
}

var startupWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Invalidate the stored startup command",
	Args:  cobra.NoArgs,
	RunE:  runStartupWipe,
}

var startupReplayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay the stored startup command through the console",
	Long: `Replay the stored startup command exactly as firmware does at boot:
bytes stream through the interpreter one at a time and each sub-command
executes as its terminator arrives. Execution stops at the first failing
sub-command; the traversal still completes.`,
	Args: cobra.NoArgs,
	RunE: runStartupReplay,
}

func init() {
	startupStoreCmd.Flags().BoolVar(&startupAppend, "append", false, "Append after the current record instead of replacing it")

	startupCmd.AddCommand(startupStoreCmd)
	startupCmd.AddCommand(startupShowCmd)
	startupCmd.AddCommand(startupWipeCmd)
	startupCmd.AddCommand(startupReplayCmd)
	rootCmd.AddCommand(startupCmd)
}

func runStartupStore(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if strings.ContainsRune(text, cinder.Terminator) {
		return fmt.Errorf("startup command must not contain newlines (use ';' between sub-commands)")
	}

	err := withImage(func(s *cinder.Startup) error { return s.Store(text, startupAppend) })
	if err != nil {
		if errors.Is(err, cinder.ErrStorageFull) {
			return fmt.Errorf("startup storage full: %q does not fit in %s", text, imagePath)
		}
		return err
	}

	fmt.Printf("Stored %q in %s\n", text, imagePath)
	return nil
}

func runStartupShow(cmd *cobra.Command, args []string) error {
	return withImage(func(s *cinder.Startup) error {
		record, present, err := s.Fetch()
		if err != nil {
			return err
		}
		if !present {
			fmt.Printf("No startup command stored in %s\n", imagePath)
			return nil
		}

		fmt.Printf("Startup command in %s:\n", imagePath)
		for i, sub := range strings.Split(record, string(cinder.Terminator)) {
			fmt.Printf("  %d: %s\n", i+1, sub)
		}
		return nil
	})
}

func runStartupWipe(cmd *cobra.Command, args []string) error {
	if err := withImage(func(s *cinder.Startup) error { return s.Wipe() }); err != nil {
		return err
	}
	fmt.Printf("Wiped startup command in %s\n", imagePath)
	return nil
}

func runStartupReplay(cmd *cobra.Command, args []string) error {
	it, err := newConsoleInterpreter(os.Stdout)
	if err != nil {
		return err
	}

	err = withImage(func(s *cinder.Startup) error { return s.Replay(it) })
	if err != nil {
		if errors.Is(err, cinder.ErrNoCommandWaiting) {
			fmt.Printf("No startup command stored in %s\n", imagePath)
			return nil
		}
		return fmt.Errorf("replay failed: %v", err)
	}

	fmt.Printf("Replay complete\n")
	return nil
}
