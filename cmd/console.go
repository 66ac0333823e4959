// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Thermoquad/stoker/pkg/cinder"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the interactive Cinder console",
	Long: `Run the Cinder interpreter as an interactive console.

Without connection flags the console attaches to the local terminal: the
terminal is switched to raw mode and every keystroke is fed to the
interpreter one byte at a time, exactly as a UART would deliver it. Exit
with Ctrl+C or Ctrl+D.

With --port or --url the interpreter sits on the remote byte stream instead,
answering whatever the far side types. Handler output and result codes are
written back over the same connection.

The standard command set is registered (see 'help' at the prompt); startup
commands persist in the EEPROM image named by --image.`,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

// crlfWriter expands LF to CRLF for raw-mode terminals.
type crlfWriter struct {
	w io.Writer
}

func (c *crlfWriter) Write(p []byte) (int, error) {
	expanded := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	if _, err := c.w.Write(expanded); err != nil {
		return 0, err
	}
	return len(p), nil
}

func runConsole(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}

	if conn == nil {
		return runLocalConsole()
	}
	defer conn.Close()

	fmt.Printf("Stoker - Cinder Console\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	return serveConnection(conn)
}

// serveConnection runs the interpreter against a remote byte stream,
// answering over the same connection.
func serveConnection(conn Connection) error {
	it, err := newConsoleInterpreter(&crlfWriter{w: conn})
	if err != nil {
		return err
	}

	buf := make([]byte, 128)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			// For WebSocket connections, a read error usually means
			// the connection is permanently closed - exit gracefully
			if errors.Is(err, ErrConnectionClosed) {
				log.Printf("Connection closed")
				return nil
			}
			log.Printf("Read error: %v", err)
			time.Sleep(10 * time.Millisecond)
			continue
		}

		for i := 0; i < n; i++ {
			feedConsoleByte(it, conn, buf[i])
		}
	}
}

// feedConsoleByte pushes one byte into the interpreter and executes any
// completed line, reporting the result code to out.
func feedConsoleByte(it *cinder.Interpreter, out io.Writer, b byte) {
	if err := it.Feed(b); err != nil {
		// ErrBufferFull cannot happen here (every ready line is executed
		// immediately); ErrLineTooLong repeats until the terminator and is
		// reported once by Execute.
		return
	}
	if it.Ready() {
		result := it.Execute()
		fmt.Fprintf(&crlfWriter{w: out}, "%s\n", formatResult(result))
	}
}

// runLocalConsole attaches the interpreter to the local terminal in raw
// mode, emulating the firmware's UART console.
func runLocalConsole() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return runPipedConsole()
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %v", err)
	}
	defer term.Restore(fd, oldState)

	out := &crlfWriter{w: os.Stdout}
	it, err := newConsoleInterpreter(out)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Stoker - Cinder Console (local)\n")
	fmt.Fprintf(out, "Type 'help' for commands, Ctrl+C to exit\n\n> ")

	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("stdin read error: %v", err)
		}
		b := buf[0]

		switch b {
		case 0x03, 0x04: // Ctrl+C, Ctrl+D
			fmt.Fprintf(out, "\n")
			return nil

		case '\r':
			// Raw-mode Enter sends CR; the interpreter wants the
			// terminator.
			b = cinder.Terminator
			fmt.Fprintf(out, "\n")

		default:
			// Raw mode disables echo.
			os.Stdout.Write(buf)
		}

		if err := it.Feed(b); err != nil {
			continue
		}
		if it.Ready() {
			result := it.Execute()
			fmt.Fprintf(out, "%s\n> ", formatResult(result))
		}
	}
}

// runPipedConsole handles non-terminal stdin (scripts piped into the
// console). No raw mode, no prompt, one result line per command.
func runPipedConsole() error {
	it, err := newConsoleInterpreter(os.Stdout)
	if err != nil {
		return err
	}

	buf := make([]byte, 128)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("stdin read error: %v", err)
		}
		for i := 0; i < n; i++ {
			if err := it.Feed(buf[i]); err != nil {
				continue
			}
			if it.Ready() {
				fmt.Printf("%s\n", formatResult(it.Execute()))
			}
		}
	}
}
