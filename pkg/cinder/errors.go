// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cinder

import "errors"

// Result errors returned by the interpreter. Every mutating or dispatching
// operation reports failure through exactly one of these; callers compare
// with errors.Is.
var (
	// ErrCommandNotFound means no registry entry matches the command word.
	ErrCommandNotFound = errors.New("command not found")

	// ErrWrongParamCount means the line carried a different number of
	// parameters than the matched command was registered with.
	ErrWrongParamCount = errors.New("wrong number of parameters")

	// ErrParse means the completed line could not be tokenized.
	ErrParse = errors.New("error parsing command")

	// ErrEmptyCommand means Execute was called on a zero-length line.
	ErrEmptyCommand = errors.New("empty command string")

	// ErrNoCommandWaiting means Execute or Replay found no completed line
	// or stored record to act on.
	ErrNoCommandWaiting = errors.New("no command waiting")

	// ErrRegistryFull means the registry's fixed capacity is exhausted.
	ErrRegistryFull = errors.New("registry full")

	// ErrBufferFull means a completed line is waiting to be executed and
	// the fed byte was not consumed. Backpressure: retry after Execute.
	ErrBufferFull = errors.New("line buffer full")

	// ErrLineTooLong means the line overran the buffer. Bytes are discarded
	// until the next terminator.
	ErrLineTooLong = errors.New("command too long")

	// ErrStorageFull means the startup record would not fit in the
	// non-volatile region.
	ErrStorageFull = errors.New("startup storage full")

	// ErrUnknown covers states the interpreter should never reach.
	ErrUnknown = errors.New("unknown error")
)
