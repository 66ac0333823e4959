// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cinder

// Startup persists one command sequence in a Storage region and replays it
// through an Interpreter at boot.
//
// Region layout: a presence flag byte at offset 0 (flagTrue when a record is
// stored), followed by the record bytes terminated by a NUL. Sub-commands
// within the sequence are separated by SubDelimiter in the API and by
// Terminator in storage. The last two usable bytes of the region are
// reserved for the trailing Terminator and NUL.
type Startup struct {
	store Storage
}

// NewStartup wraps a Storage region.
func NewStartup(store Storage) *Startup {
	return &Startup{store: store}
}

// update writes value at offset only if it differs from what is stored,
// sparing EEPROM write cycles.
func (s *Startup) update(offset int, value byte) error {
	current, err := s.store.ReadByte(offset)
	if err != nil {
		return err
	}
	if current == value {
		return nil
	}
	return s.store.WriteByte(offset, value)
}

// recordLimit is the highest record index that may hold command bytes; the
// two bytes after it hold the trailing Terminator and NUL.
func (s *Startup) recordLimit() int {
	return s.store.Size() - recordOffset - 2
}

// Store persists text as the startup command sequence. Sub-commands are
// separated with SubDelimiter (';'), translated to Terminator in storage;
// the text itself must not contain newlines. When appendTo is true the text
// is written after the end of the current record, otherwise it replaces it.
// Returns ErrStorageFull when the text does not fit in the region.
func (s *Startup) Store(text string, appendTo bool) error {
	ptr := 0

	if appendTo {
		for ptr < s.recordLimit() {
			b, err := s.store.ReadByte(recordOffset + ptr)
			if err != nil {
				return err
			}
			if b == 0 {
				break
			}
			ptr++
		}
	}

	if len(text) > s.recordLimit()-ptr {
		return ErrStorageFull
	}

	if err := s.update(flagOffset, flagTrue); err != nil {
		return err
	}

	for i := 0; i < len(text) && ptr < s.recordLimit(); i++ {
		b := text[i]
		if b == SubDelimiter {
			b = Terminator
		}
		if err := s.update(recordOffset+ptr, b); err != nil {
			return err
		}
		ptr++
	}

	if err := s.update(recordOffset+ptr, Terminator); err != nil {
		return err
	}
	return s.update(recordOffset+ptr+1, 0)
}

// Wipe invalidates any stored startup command by clearing the presence
// flag. The record bytes are left in place.
func (s *Startup) Wipe() error {
	return s.update(flagOffset, flagFalse)
}

// Fetch returns the stored record and whether one is present. The trailing
// terminator Store appends is stripped, so the result is the sequence as
// stored, sub-commands separated by Terminator. A flag byte that is neither
// canonical value (for example 0xFF from erased EEPROM) is treated as
// absent.
func (s *Startup) Fetch() (string, bool, error) {
	flag, err := s.store.ReadByte(flagOffset)
	if err != nil {
		return "", false, err
	}
	if flag != flagTrue {
		return "", false, nil
	}

	record := make([]byte, 0, s.store.Size()-recordOffset)
	for off := recordOffset; off < s.store.Size(); off++ {
		b, err := s.store.ReadByte(off)
		if err != nil {
			return "", false, err
		}
		if b == 0 {
			break
		}
		record = append(record, b)
	}

	if n := len(record); n > 0 && record[n-1] == Terminator {
		record = record[:n-1]
	}
	return string(record), true, nil
}

// Replay streams the stored record through the interpreter's Feed exactly as
// a live byte stream would, executing each sub-command as its terminator
// arrives. The first failing sub-command's error is recorded and returned;
// later sub-commands are still fed so the traversal completes, but are
// discarded instead of executed. An unterminated record is flushed with a
// synthesized terminator at the end of the region.
//
// Returns ErrNoCommandWaiting when no record is present.
func (s *Startup) Replay(it *Interpreter) error {
	flag, err := s.store.ReadByte(flagOffset)
	if err != nil {
		return err
	}
	if flag != flagTrue {
		return ErrNoCommandWaiting
	}

	var result error
	pending := false
	for off := recordOffset; ; off++ {
		if off >= s.store.Size() {
			// Record never hit its NUL. Flush whatever was assembled with
			// a synthesized terminator.
			if pending {
				it.Feed(Terminator)
				result = s.flush(it, result)
			}
			break
		}

		b, err := s.store.ReadByte(off)
		if err != nil {
			return err
		}
		if b == 0 {
			break
		}

		// Feed errors surface through Execute (an overlong sub-command
		// reports ErrLineTooLong there), so they are not checked here.
		it.Feed(b)
		if b != CarriageReturn {
			pending = true
		}
		if it.Ready() {
			result = s.flush(it, result)
			pending = false
		}
	}

	return result
}

// flush consumes a completed line: executed while no failure has been
// recorded, discarded afterwards so the interpreter cannot wedge on an
// unconsumed line.
func (s *Startup) flush(it *Interpreter, result error) error {
	if !it.Ready() {
		return result
	}
	if result == nil {
		return it.Execute()
	}
	it.Reset()
	return result
}
