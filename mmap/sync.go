package mmap

import "os"

// Fdatasync flushes the data written to f, skipping metadata where the
// operating system allows it.
//
// Errors are not recoverable: after a failed sync the page cache may no
// longer reflect what is on disk. Treat the file as lost.
func Fdatasync(f *os.File) error {
	return fdatasync(f)
}
