// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cinder

// Special Field indices.
const (
	// WholeLine requests the entire line with whitespace restored.
	WholeLine = -1
	// AllParams requests everything after the command word, whitespace
	// restored, as a single string.
	AllParams = -2
)

// Tokenizer splits a completed command line into a command word and
// parameters without copying the line. It wraps the line buffer it is given
// and mutates it in place: delimiting replaces each whitespace byte with NUL,
// restoring puts spaces back. The two transformations are idempotent and
// reverse each other as long as nothing else writes to the buffer.
//
// Field 0 is the command word; parameters are 1-indexed. Firmware-side
// implementations hand out pointers into the buffer; here fields are returned
// as strings, so a restored buffer never invalidates a previously returned
// field value.
type Tokenizer struct {
	buf       []byte
	delimited bool
	count     int
}

// NewTokenizer wraps line and delimits it. The Tokenizer owns line until it
// is discarded; the caller must not modify line while the Tokenizer is live.
func NewTokenizer(line []byte) *Tokenizer {
	t := &Tokenizer{buf: line}
	t.delimit()
	return t
}

// Count returns the number of fields including the command word, so the
// parameter count is Count()-1.
func (t *Tokenizer) Count() int {
	if !t.delimited {
		t.delimit()
	}
	return t.count
}

// Field returns the idx-th field. Index 0 is the command word, parameters
// start at 1. The special indices WholeLine and AllParams return restored
// views of the buffer. The second return is false when the field does not
// exist.
func (t *Tokenizer) Field(idx int) (string, bool) {
	switch {
	case idx == WholeLine:
		t.restore()
		return string(t.buf), true

	case idx == AllParams:
		if !t.delimited {
			t.delimit()
		}
		start, _, ok := t.bounds(1)
		t.restore()
		if !ok {
			return "", false
		}
		return string(t.buf[start:]), true

	case idx >= 0:
		if !t.delimited {
			t.delimit()
		}
		start, end, ok := t.bounds(idx)
		if !ok {
			return "", false
		}
		return string(t.buf[start:end]), true

	default:
		return "", false
	}
}

// delimit replaces every space and tab with NUL and counts the fields. A new
// field is counted where a non-empty run begins, so consecutive whitespace
// collapses to a single boundary.
func (t *Tokenizer) delimit() {
	if t.delimited {
		return
	}

	count := 0
	inField := false
	for i, b := range t.buf {
		switch b {
		case ' ', '\t':
			t.buf[i] = 0
			inField = false
		case 0:
			inField = false
		default:
			if !inField {
				count++
				inField = true
			}
		}
	}

	t.count = count
	t.delimited = true
}

// restore replaces every NUL with a space. Tabs come back as plain spaces;
// field boundaries are preserved, the exact whitespace bytes are not.
func (t *Tokenizer) restore() {
	if !t.delimited {
		return
	}

	for i, b := range t.buf {
		if b == 0 {
			t.buf[i] = ' '
		}
	}

	t.delimited = false
}

// bounds locates the idx-th field in the delimited buffer.
func (t *Tokenizer) bounds(idx int) (start, end int, ok bool) {
	if idx < 0 || idx >= t.count {
		return 0, 0, false
	}

	field := -1
	inField := false
	for i, b := range t.buf {
		if b == 0 {
			if inField && field == idx {
				return start, i, true
			}
			inField = false
			continue
		}
		if !inField {
			inField = true
			field++
			if field == idx {
				start = i
			}
		}
	}

	if inField && field == idx {
		return start, len(t.buf), true
	}
	return 0, 0, false
}
