// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cinder

import "testing"

func TestTokenizer_Fields(t *testing.T) {
	tok := NewTokenizer([]byte("VOLT? 1 2.872 hello"))

	if tok.Count() != 4 {
		t.Fatalf("expected 4 fields, got %d", tok.Count())
	}

	expected := []string{"VOLT?", "1", "2.872", "hello"}
	for i, want := range expected {
		got, ok := tok.Field(i)
		if !ok {
			t.Errorf("field %d should exist", i)
			continue
		}
		if got != want {
			t.Errorf("field %d: expected %q, got %q", i, want, got)
		}
	}

	if _, ok := tok.Field(4); ok {
		t.Error("field 4 should be absent")
	}
}

func TestTokenizer_WhitespaceCollapsing(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		count  int
		fields []string
	}{
		{
			name:   "single spaces",
			line:   "set mode fan",
			count:  3,
			fields: []string{"set", "mode", "fan"},
		},
		{
			name:   "repeated spaces",
			line:   "set   mode    fan",
			count:  3,
			fields: []string{"set", "mode", "fan"},
		},
		{
			name:   "tabs",
			line:   "set\tmode\tfan",
			count:  3,
			fields: []string{"set", "mode", "fan"},
		},
		{
			name:   "mixed spaces and tabs",
			line:   "set \t mode\t \tfan",
			count:  3,
			fields: []string{"set", "mode", "fan"},
		},
		{
			name:   "leading whitespace",
			line:   "  set mode",
			count:  2,
			fields: []string{"set", "mode"},
		},
		{
			name:   "trailing whitespace",
			line:   "set mode  ",
			count:  2,
			fields: []string{"set", "mode"},
		},
		{
			name:   "command only",
			line:   "*idn?",
			count:  1,
			fields: []string{"*idn?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := NewTokenizer([]byte(tt.line))
			if tok.Count() != tt.count {
				t.Fatalf("expected %d fields, got %d", tt.count, tok.Count())
			}
			for i, want := range tt.fields {
				got, ok := tok.Field(i)
				if !ok || got != want {
					t.Errorf("field %d: expected %q, got %q (ok=%v)", i, want, got, ok)
				}
			}
			if _, ok := tok.Field(tt.count); ok {
				t.Errorf("field %d should be absent", tt.count)
			}
		})
	}
}

func TestTokenizer_WholeLine(t *testing.T) {
	tok := NewTokenizer([]byte("set mode fan"))

	whole, ok := tok.Field(WholeLine)
	if !ok {
		t.Fatal("WholeLine should always be available")
	}
	if whole != "set mode fan" {
		t.Errorf("expected %q, got %q", "set mode fan", whole)
	}
}

func TestTokenizer_AllParams(t *testing.T) {
	tok := NewTokenizer([]byte("echo hello console world"))

	params, ok := tok.Field(AllParams)
	if !ok {
		t.Fatal("AllParams should exist when parameters are present")
	}
	if params != "hello console world" {
		t.Errorf("expected %q, got %q", "hello console world", params)
	}
}

func TestTokenizer_AllParams_NoParams(t *testing.T) {
	tok := NewTokenizer([]byte("*idn?"))

	if _, ok := tok.Field(AllParams); ok {
		t.Error("AllParams should be absent for a bare command")
	}
}

// Delimit, restore, delimit again must reproduce the original field
// boundaries exactly.
func TestTokenizer_RoundTrip(t *testing.T) {
	tok := NewTokenizer([]byte("VOLT? 1\t2.872  hello"))

	count := tok.Count()
	first := make([]string, count)
	for i := range first {
		first[i], _ = tok.Field(i)
	}

	// Restore...
	if _, ok := tok.Field(WholeLine); !ok {
		t.Fatal("WholeLine failed")
	}

	// ...and re-delimit.
	if tok.Count() != count {
		t.Fatalf("field count changed after round trip: %d != %d", tok.Count(), count)
	}
	for i, want := range first {
		got, ok := tok.Field(i)
		if !ok || got != want {
			t.Errorf("field %d after round trip: expected %q, got %q (ok=%v)", i, want, got, ok)
		}
	}
}

func TestTokenizer_NegativeIndex(t *testing.T) {
	tok := NewTokenizer([]byte("set mode"))

	if _, ok := tok.Field(-3); ok {
		t.Error("index -3 should be absent")
	}
}
