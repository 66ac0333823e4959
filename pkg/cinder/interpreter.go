// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cinder

// Interpreter implements the Cinder line assembler state machine. It is fed
// one byte at a time, flags when a complete line is waiting, and on request
// tokenizes and dispatches the line through its Registry.
//
// The line buffer is allocated once at construction and reused for every
// line, mirroring the firmware's static buffer. The interpreter is
// single-threaded and fully synchronous: Feed, Ready and Execute must be
// called from one goroutine, and a handler must not call back into Feed or
// Execute on the same interpreter.
type Interpreter struct {
	buf      []byte
	length   int
	ready    bool
	tooLong  bool
	registry *Registry
}

// NewInterpreter creates an interpreter with the given line buffer size and
// registry capacity. One buffer byte is reserved for the terminator, so the
// longest accepted line is lineSize-1 bytes. Zero or negative arguments
// select DefaultLineSize and DefaultMaxEntries.
func NewInterpreter(lineSize, maxEntries int) *Interpreter {
	if lineSize <= 0 {
		lineSize = DefaultLineSize
	}
	return &Interpreter{
		buf:      make([]byte, lineSize),
		registry: NewRegistry(maxEntries),
	}
}

// Registry returns the interpreter's command registry for registration.
func (it *Interpreter) Registry() *Registry {
	return it.registry
}

// Feed consumes one byte from the transport.
//
// A Terminator completes the line without being stored. A CarriageReturn is
// silently dropped. While a completed line is waiting to be executed, Feed
// returns ErrBufferFull and does not consume the byte; the transport must
// retry after Execute. A byte that would overrun the buffer latches the
// overflow state and returns ErrLineTooLong, as does every further byte of
// the same line until its terminator arrives.
func (it *Interpreter) Feed(b byte) error {
	if it.ready {
		return ErrBufferFull
	}

	switch b {
	case Terminator:
		it.ready = true
		return nil

	case CarriageReturn:
		return nil

	default:
		if it.tooLong || it.length >= len(it.buf)-1 {
			it.tooLong = true
			return ErrLineTooLong
		}
		it.buf[it.length] = b
		it.length++
		return nil
	}
}

// Ready reports whether a completed line is waiting to be executed.
func (it *Interpreter) Ready() bool {
	return it.ready
}

// Overflowed reports whether the line currently being assembled (or waiting)
// overran the buffer.
func (it *Interpreter) Overflowed() bool {
	return it.tooLong
}

// Execute tokenizes and dispatches the waiting line.
//
// It fails with ErrLineTooLong if the line overran the buffer, with
// ErrNoCommandWaiting if no terminator has arrived, and with ErrEmptyCommand
// on a zero-length line. The interpreter is reset to empty afterwards
// regardless of the outcome, so no input sequence can wedge it.
func (it *Interpreter) Execute() error {
	defer it.Reset()

	// Overflow outranks the ready check: a line that overran mid-assembly
	// reports too-long even before its terminator arrives.
	if it.tooLong {
		return ErrLineTooLong
	}
	if !it.ready {
		return ErrNoCommandWaiting
	}
	if it.length == 0 {
		return ErrEmptyCommand
	}

	tok := NewTokenizer(it.buf[:it.length])
	return it.registry.Dispatch(tok)
}

// Reset discards any assembled or waiting line and clears the overflow
// state.
func (it *Interpreter) Reset() {
	it.length = 0
	it.ready = false
	it.tooLong = false
}
