// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

// Package cinder provides a reference Go implementation of the Cinder text
// console protocol.
//
// Cinder is the line-oriented command console spoken by Thermoquad appliance
// firmware on its maintenance UART. A console session is a stream of single
// bytes; the interpreter assembles them into lines, splits each line into a
// command word and parameters in place, resolves the command word against a
// fixed-capacity registry keyed by a case-insensitive CRC-32 checksum, checks
// the parameter count, and invokes the registered handler. One command
// sequence can be persisted in a small non-volatile region and replayed at
// boot through the same path.
//
// This package mirrors the firmware's constraints: fixed buffers sized at
// construction, no allocation while parsing, and explicit result errors for
// every failure mode.
//
// See the Cinder specification at origin/documentation/source/specifications/cinder/
package cinder

// Line framing bytes
const (
	Terminator     = '\n' // completes a line
	CarriageReturn = '\r' // discarded on receipt
	SubDelimiter   = ';'  // separates sub-commands in a stored startup sequence
)

// Default capacities, matching the firmware's build-time defaults
const (
	DefaultLineSize   = 150 // bytes reserved for one command line, incl. NUL slot
	DefaultMaxEntries = 32  // registry entries
	DefaultStoreSize  = 256 // usable non-volatile region, incl. flag byte
)

// Variadic disables the parameter-count check for a registered command.
const Variadic = -1

// Checksum configuration (reflected CRC-32)
const (
	checksumPolynomial = 0xEDB88320
	checksumInitial    = 0xFFFFFFFF
)

// Startup record layout within the storage region
const (
	flagOffset   = 0 // presence flag byte
	recordOffset = 1 // first record byte
)

// Presence flag encoding. Erased EEPROM reads 0xFF, which is neither value;
// any byte other than these two is treated as "no record".
const (
	flagTrue  = 0x01
	flagFalse = 0x00
)
