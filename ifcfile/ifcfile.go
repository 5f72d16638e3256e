// Package ifcfile reads and writes documents on disk.
package ifcfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/mmap"
)

var magic = []byte("ISO-10303-21")

// Load parses the file at path. The file is mapped rather than read; a file
// that does not start with the exchange structure magic is rejected before
// any of it is copied.
func Load(path string, scm *ifc.Schema, opt ifc.Options) (*ifc.Document, error) {
	m, err := mmap.Open(path, mmap.SequentialAccess)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	data := m.Bytes()
	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), magic) {
		return nil, fmt.Errorf("%s: not an ISO-10303-21 file", path)
	}

	// parsed records may keep substrings of the text, so it must outlive the mapping
	doc, err := ifc.Parse(string(data), scm, opt)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", path, err)
	}
	return doc, nil
}

// Save writes doc to path atomically: the canonical rendering goes to a
// temporary file in the same directory, which is synced and renamed over
// path.
func Save(path string, doc *ifc.Document) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	ok := false
	defer func() {
		if !ok {
			f.Close()
			os.Remove(tmp)
		}
	}()

	_, err = doc.WriteTo(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	err = mmap.Fdatasync(f)
	if err != nil {
		return fmt.Errorf("%s: sync: %w", path, err)
	}
	err = f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	err = os.Chmod(tmp, 0o644)
	if err != nil {
		return err
	}
	err = os.Rename(tmp, path)
	if err != nil {
		return err
	}
	ok = true
	return nil
}
