// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cinder

// Handler is the callback invoked when a command line matches a registered
// command. The Tokenizer and its underlying buffer are only valid for the
// duration of the call; handlers must not retain them. Results are reported
// through side effects (typically writing to the console), not a return
// value.
type Handler func(*Tokenizer)

type entry struct {
	hash    uint32
	nParams int
	fn      Handler
}

// Registry maps command-name checksums to handlers. Capacity is fixed at
// construction; entries are appended in registration order and never removed.
// Checksum collisions are not detected, the first registered entry wins.
type Registry struct {
	entries []entry
}

// NewRegistry creates a registry holding at most maxEntries commands.
// maxEntries <= 0 selects DefaultMaxEntries.
func NewRegistry(maxEntries int) *Registry {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Registry{entries: make([]entry, 0, maxEntries)}
}

// Register adds a command under a precomputed checksum. nParams is the exact
// parameter count the command expects, or Variadic to accept any count.
// Returns ErrRegistryFull once the fixed capacity is reached.
func (r *Registry) Register(hash uint32, nParams int, fn Handler) error {
	if len(r.entries) >= cap(r.entries) {
		return ErrRegistryFull
	}
	r.entries = append(r.entries, entry{hash: hash, nParams: nParams, fn: fn})
	return nil
}

// RegisterName adds a command by name, hashing it with Checksum. Prefer
// Register with a precomputed hash where the name string would otherwise be
// kept alive only for registration.
func (r *Registry) RegisterName(name string, nParams int, fn Handler) error {
	return r.Register(Checksum(name), nParams, fn)
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Dispatch resolves the tokenized line's command word and invokes its
// handler. The scan is linear in registration order; at console scale the
// table is small enough that this beats maintaining a map.
func (r *Registry) Dispatch(tok *Tokenizer) error {
	name, ok := tok.Field(0)
	if !ok {
		return ErrParse
	}

	hash := Checksum(name)
	for i := range r.entries {
		e := &r.entries[i]
		if e.hash != hash {
			continue
		}
		if e.nParams != Variadic && e.nParams != tok.Count()-1 {
			return ErrWrongParamCount
		}
		e.fn(tok)
		return nil
	}

	return ErrCommandNotFound
}
