// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cinder

// Checksum computes the case-insensitive CRC-32 of a command name.
//
// This is the reflected CRC-32 (polynomial 0xEDB88320, initial 0xFFFFFFFF,
// final one's-complement) with each ASCII letter lower-cased before mixing,
// computed bitwise without a lookup table. Firmware registers commands by
// this value at compile time, so the algorithm must match bit for bit.
func Checksum(name string) uint32 {
	crc := uint32(checksumInitial)
	for i := 0; i < len(name); i++ {
		b := name[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		crc ^= uint32(b)
		for j := 0; j < 8; j++ {
			mask := -(crc & 1)
			crc = (crc >> 1) ^ (checksumPolynomial & mask)
		}
	}
	return ^crc
}
