// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"io"

	"github.com/Thermoquad/stoker/pkg/cinder"
)

// consoleVersion is reported by *idn?
const consoleVersion = "1.0.0"

// builtinHelp drives the help command. The registry itself only stores
// checksums, so the readable names live here.
var builtinHelp = []struct {
	usage string
	desc  string
}{
	{"*idn?", "identify the console"},
	{"help", "list available commands"},
	{"echo [args...]", "echo arguments back"},
	{"startup?", "show the stored startup command"},
	{"startup_store <cmds>", "replace the startup command (';' separates sub-commands)"},
	{"startup_append <cmds>", "append to the startup command"},
	{"startup_wipe", "invalidate the stored startup command"},
}

// withImage runs fn against the EEPROM image named by --image.
func withImage(fn func(*cinder.Startup) error) error {
	store, err := cinder.OpenFileStorage(imagePath, cinder.DefaultStoreSize)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(cinder.NewStartup(store))
}

// newConsoleInterpreter builds an interpreter carrying the standard console
// command set. Handlers report through out; Execute errors are the caller's
// to surface.
func newConsoleInterpreter(out io.Writer) (*cinder.Interpreter, error) {
	it := cinder.NewInterpreter(0, 0)
	reg := it.Registry()

	register := func(name string, nParams int, fn cinder.Handler) error {
		return reg.RegisterName(name, nParams, fn)
	}

	if err := register("*idn?", 0, func(*cinder.Tokenizer) {
		fmt.Fprintf(out, "Thermoquad,stoker,0,%s\n", consoleVersion)
	}); err != nil {
		return nil, err
	}

	if err := register("help", 0, func(*cinder.Tokenizer) {
		for _, b := range builtinHelp {
			fmt.Fprintf(out, "  %-24s %s\n", b.usage, b.desc)
		}
	}); err != nil {
		return nil, err
	}

	if err := register("echo", cinder.Variadic, func(tok *cinder.Tokenizer) {
		params, _ := tok.Field(cinder.AllParams)
		fmt.Fprintf(out, "%s\n", params)
	}); err != nil {
		return nil, err
	}

	if err := register("startup?", 0, func(*cinder.Tokenizer) {
		err := withImage(func(s *cinder.Startup) error {
			record, present, err := s.Fetch()
			if err != nil {
				return err
			}
			if !present {
				fmt.Fprintf(out, "no startup command stored\n")
				return nil
			}
			fmt.Fprintf(out, "%q\n", record)
			return nil
		})
		if err != nil {
			fmt.Fprintf(out, "startup storage error: %v\n", err)
		}
	}); err != nil {
		return nil, err
	}

	if err := register("startup_store", cinder.Variadic, func(tok *cinder.Tokenizer) {
		storeStartup(out, tok, false)
	}); err != nil {
		return nil, err
	}

	if err := register("startup_append", cinder.Variadic, func(tok *cinder.Tokenizer) {
		storeStartup(out, tok, true)
	}); err != nil {
		return nil, err
	}

	if err := register("startup_wipe", 0, func(*cinder.Tokenizer) {
		if err := withImage(func(s *cinder.Startup) error { return s.Wipe() }); err != nil {
			fmt.Fprintf(out, "startup storage error: %v\n", err)
			return
		}
		fmt.Fprintf(out, "startup command wiped\n")
	}); err != nil {
		return nil, err
	}

	return it, nil
}

func storeStartup(out io.Writer, tok *cinder.Tokenizer, appendTo bool) {
	text, ok := tok.Field(cinder.AllParams)
	if !ok {
		fmt.Fprintf(out, "nothing to store\n")
		return
	}
	err := withImage(func(s *cinder.Startup) error { return s.Store(text, appendTo) })
	if err != nil {
		fmt.Fprintf(out, "startup storage error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "stored %q\n", text)
}

// formatResult renders an Execute result the way the firmware console does.
func formatResult(err error) string {
	if err == nil {
		return "OK"
	}
	return fmt.Sprintf("ERROR: %v", err)
}
