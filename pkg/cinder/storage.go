// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Kaz Walker, Thermoquad

package cinder

import (
	"fmt"
	"os"
)

// Storage is the bounded byte-addressable non-volatile region the startup
// protocol persists into, typically EEPROM on the firmware side. A read at
// an offset must observe the most recent write to that offset; asynchronous
// write buffering is not supported.
type Storage interface {
	// ReadByte returns the byte at offset.
	ReadByte(offset int) (byte, error)
	// WriteByte stores value at offset.
	WriteByte(offset int, value byte) error
	// Size returns the usable region size in bytes.
	Size() int
}

// MemStorage is an in-memory Storage, initialized to 0xFF like erased
// EEPROM.
type MemStorage struct {
	data []byte
}

// NewMemStorage creates a MemStorage of the given size. size <= 0 selects
// DefaultStoreSize.
func NewMemStorage(size int) *MemStorage {
	if size <= 0 {
		size = DefaultStoreSize
	}
	data := make([]byte, size)
	for i := range data {
		data[i] = 0xFF
	}
	return &MemStorage{data: data}
}

func (m *MemStorage) ReadByte(offset int) (byte, error) {
	if offset < 0 || offset >= len(m.data) {
		return 0, fmt.Errorf("read offset %d out of range [0,%d)", offset, len(m.data))
	}
	return m.data[offset], nil
}

func (m *MemStorage) WriteByte(offset int, value byte) error {
	if offset < 0 || offset >= len(m.data) {
		return fmt.Errorf("write offset %d out of range [0,%d)", offset, len(m.data))
	}
	m.data[offset] = value
	return nil
}

func (m *MemStorage) Size() int {
	return len(m.data)
}

// FileStorage is a Storage backed by an EEPROM image file, so a stored
// startup command survives across runs of the console tool.
type FileStorage struct {
	f    *os.File
	size int
}

// OpenFileStorage opens (or creates) an image file of the given size. A new
// or short image is padded with 0xFF out to size. size <= 0 selects
// DefaultStoreSize.
func OpenFileStorage(path string, size int) (*FileStorage, error) {
	if size <= 0 {
		size = DefaultStoreSize
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %v", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat image %s: %v", path, err)
	}

	if info.Size() < int64(size) {
		pad := make([]byte, int64(size)-info.Size())
		for i := range pad {
			pad[i] = 0xFF
		}
		if _, err := f.WriteAt(pad, info.Size()); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to pad image %s: %v", path, err)
		}
	}

	return &FileStorage{f: f, size: size}, nil
}

func (s *FileStorage) ReadByte(offset int) (byte, error) {
	if offset < 0 || offset >= s.size {
		return 0, fmt.Errorf("read offset %d out of range [0,%d)", offset, s.size)
	}
	var b [1]byte
	if _, err := s.f.ReadAt(b[:], int64(offset)); err != nil {
		return 0, fmt.Errorf("image read at %d: %v", offset, err)
	}
	return b[0], nil
}

func (s *FileStorage) WriteByte(offset int, value byte) error {
	if offset < 0 || offset >= s.size {
		return fmt.Errorf("write offset %d out of range [0,%d)", offset, s.size)
	}
	b := [1]byte{value}
	if _, err := s.f.WriteAt(b[:], int64(offset)); err != nil {
		return fmt.Errorf("image write at %d: %v", offset, err)
	}
	return nil
}

func (s *FileStorage) Size() int {
	return s.size
}

// Close closes the underlying image file.
func (s *FileStorage) Close() error {
	return s.f.Close()
}
