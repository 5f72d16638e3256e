// Package mmap maps model files into memory read-only, so that large files
// can be inspected and parsed without first reading them into a buffer.
package mmap

import (
	"fmt"
	"os"
)

type Options uint

const (
	// SequentialAccess is a hint requesting aggressive read-ahead.
	// Incompatible with RandomAccess. Maps to MADV_SEQUENTIAL on Unix.
	SequentialAccess Options = 1 << 0

	// RandomAccess is a hint that read ahead is less useful than normally.
	// Maps to MADV_RANDOM on Unix.
	RandomAccess Options = 1 << 1
)

func (o Options) Has(v Options) bool {
	return o&v != 0
}

// File is a read-only mapping of a whole file.
type File struct {
	f    *os.File
	data []byte
}

// Open maps the file at path. An empty file yields an empty, unmapped File.
func Open(path string, opt Options) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	size := fi.Size()
	if size > MaxSize {
		f.Close()
		return nil, fmt.Errorf("mmap: %s is too large (%d bytes)", path, size)
	}
	m := &File{f: f}
	if size == 0 {
		return m, nil
	}
	m.data, err = mmap(f, int(size), opt)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap: %s: %w", path, err)
	}
	return m, nil
}

// Bytes returns the mapped contents. The slice is invalid after Close, and
// writing to it faults.
func (m *File) Bytes() []byte {
	return m.data
}

func (m *File) Len() int {
	return len(m.data)
}

func (m *File) Close() error {
	var err error
	if m.data != nil {
		err = munmap(m.data)
		m.data = nil
	}
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	return err
}
