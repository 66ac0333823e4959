// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cinder

import "testing"

func TestChecksum_KnownValue(t *testing.T) {
	// Case folding does not touch digits, so the standard CRC-32 check
	// value applies unchanged.
	crc := Checksum("123456789")
	if crc != 0xCBF43926 {
		t.Errorf("checksum mismatch: expected 0xCBF43926, got 0x%08X", crc)
	}
}

func TestChecksum_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{name: "query command", a: "VOLT?", b: "volt?"},
		{name: "mixed case", a: "StoreStartup", b: "storestartup"},
		{name: "identity query", a: "*IDN?", b: "*idn?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Checksum(tt.a) != Checksum(tt.b) {
				t.Errorf("checksums differ: %q=0x%08X %q=0x%08X",
					tt.a, Checksum(tt.a), tt.b, Checksum(tt.b))
			}
		})
	}
}

func TestChecksum_DistinctNames(t *testing.T) {
	names := []string{"volt?", "curr?", "temp?", "echo", "help", "*idn?"}
	seen := map[uint32]string{}
	for _, name := range names {
		crc := Checksum(name)
		if prev, ok := seen[crc]; ok {
			t.Errorf("collision between %q and %q (0x%08X)", prev, name, crc)
		}
		seen[crc] = name
	}
}

func TestChecksum_Deterministic(t *testing.T) {
	if Checksum("volt?") != Checksum("volt?") {
		t.Error("checksum should be deterministic")
	}
}

func TestChecksum_Empty(t *testing.T) {
	// Empty input never mixes a byte, leaving the complemented initial value.
	if crc := Checksum(""); crc != 0 {
		t.Errorf("checksum of empty string should be 0, got 0x%08X", crc)
	}
}
