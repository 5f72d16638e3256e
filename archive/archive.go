// Package archive keeps parsed documents in a key-value store, one record per
// key, so that a collection of models can be listed and reloaded without
// keeping the original files around.
//
// Each document lives in its own bucket keyed by big-endian record ID. A
// catalog bucket maps document names to their header, record count, ID
// high-water mark and an xxhash checksum of the canonical rendering. Put uses
// the checksum to skip rewriting unchanged documents; Get uses it to verify
// that the reloaded document renders exactly as the stored one did.
package archive

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/andreyvit/ifc"
	"github.com/cespare/xxhash/v2"
	"github.com/gosimple/slug"
	"go.etcd.io/bbolt"
)

const (
	catalogBucket   = "catalog"
	documentsBucket = "documents"
)

type Options struct {
	Logf    func(format string, args ...any)
	Verbose bool

	// IsTesting trades durability for speed.
	IsTesting bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// Archive is safe for concurrent use; the backend serializes writers.
type Archive struct {
	be      backend
	schema  *ifc.Schema
	logf    func(format string, args ...any)
	verbose bool
	now     func() time.Time
}

// Entry describes a stored document.
type Entry struct {
	Name     string    `json:"name" yaml:"name"`
	Schema   string    `json:"schema" yaml:"schema"`
	FileName string    `json:"file_name" yaml:"file_name"`
	Records  int       `json:"records" yaml:"records"`
	MaxID    ifc.ID    `json:"max_id" yaml:"max_id"`
	Size     int       `json:"size" yaml:"size"`
	Checksum uint64    `json:"checksum" yaml:"checksum"`
	Updated  time.Time `json:"updated" yaml:"updated"`
}

// NotFoundError is returned for operations on a name that isn't stored.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("archive: document %q not found", e.Name)
}

// Open opens or creates a Bolt-backed archive at path.
func Open(path string, scm *ifc.Schema, opt Options) (*Archive, error) {
	bopt := &bbolt.Options{}
	*bopt = *bbolt.DefaultOptions
	bopt.Timeout = 10 * time.Second
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
	} else {
		bopt.FreelistType = bbolt.FreelistMapType
	}

	bdb, err := bbolt.Open(path, 0666, bopt)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	return newArchive(&boltBackend{bdb}, scm, opt), nil
}

// OpenMemory returns an archive that lives only as long as the process.
func OpenMemory(scm *ifc.Schema, opt Options) *Archive {
	return newArchive(newMemBackend(), scm, opt)
}

func newArchive(be backend, scm *ifc.Schema, opt Options) *Archive {
	a := &Archive{
		be:      be,
		schema:  scm,
		logf:    opt.Logf,
		verbose: opt.Verbose,
		now:     opt.Now,
	}
	if a.logf == nil {
		a.logf = func(format string, args ...any) {
			slog.Debug(fmt.Sprintf(format, args...))
		}
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

func (a *Archive) Close() error {
	return a.be.Close()
}

// NameFor derives a document name from a file path: the base name without
// extension, slugified.
func NameFor(path string) string {
	base := filepath.Base(path)
	return slug.Make(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Put stores doc under name, replacing any document stored there before.
// It reports whether anything changed: storing a document that renders
// identically to the stored one is a no-op.
func (a *Archive) Put(name string, doc *ifc.Document) (changed bool, err error) {
	if !slug.IsSlug(name) {
		return false, fmt.Errorf("archive: invalid document name %q", name)
	}
	text := doc.AppendTo(nil)
	sum := xxhash.Sum64(text)

	err = a.be.Update(func(tx backendTx) error {
		catalog, err := tx.Catalog()
		if err != nil {
			return err
		}
		if raw := catalog.Get([]byte(name)); raw != nil {
			var old docMeta
			if err := decodeValue(raw, &old); err != nil {
				return err
			}
			if old.Checksum == sum && old.Schema == doc.Schema().Name() {
				return nil
			}
			if err := tx.DropDocument(name); err != nil {
				return err
			}
		}

		records, err := tx.Document(name, true)
		if err != nil {
			return err
		}
		for id, rec := range doc.RecordStore().All() {
			// bbolt holds on to values until commit
			value := encodeValue(nil, storedRecord{
				Keyword: rec.Keyword(),
				Attrs:   string(ifc.AppendRecordAttrs(nil, rec)),
			})
			if err := records.Put(recordKey(id), value); err != nil {
				return err
			}
		}

		meta := docMeta{
			Header:   doc.Header,
			Schema:   doc.Schema().Name(),
			Checksum: sum,
			Count:    doc.Len(),
			MaxID:    doc.RecordStore().HighWater(),
			Size:     len(text),
			Updated:  a.now().UTC(),
		}
		changed = true
		return catalog.Put([]byte(name), encodeValue(nil, &meta))
	})
	if err != nil {
		return false, fmt.Errorf("archive: put %s: %w", name, err)
	}
	if a.verbose {
		if changed {
			a.logf("archive: PUT %s (%d records)", name, doc.Len())
		} else {
			a.logf("archive: PUT %s unchanged", name)
		}
	}
	return changed, nil
}

// Get reloads the document stored under name, reparsing every record
// through the archive's schema.
func (a *Archive) Get(name string, opt ifc.Options) (*ifc.Document, error) {
	var doc *ifc.Document
	err := a.be.View(func(tx backendTx) error {
		meta, err := loadMeta(tx, name)
		if err != nil {
			return err
		}
		if meta.Schema != a.schema.Name() {
			return fmt.Errorf("stored with schema %s, archive uses %s", meta.Schema, a.schema.Name())
		}

		doc = ifc.New(a.schema, opt)
		doc.Header = meta.Header
		store := doc.RecordStore()
		records, err := tx.Document(name, false)
		if err != nil {
			return err
		}
		if records != nil {
			err = records.Each(func(k, v []byte) error {
				id, err := decodeRecordKey(k)
				if err != nil {
					return err
				}
				var sr storedRecord
				if err := decodeValue(v, &sr); err != nil {
					return fmt.Errorf("%v: %w", id, err)
				}
				rec, err := a.schema.ParseRecord(sr.Keyword, sr.Attrs)
				if err != nil {
					return fmt.Errorf("%v: %w", id, err)
				}
				store.Put(id, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		if meta.MaxID > ifc.MaxID {
			return fmt.Errorf("catalog high-water mark %v is out of range", meta.MaxID)
		}
		store.Observe(meta.MaxID)

		if doc.Len() != meta.Count {
			return fmt.Errorf("catalog says %d records, found %d", meta.Count, doc.Len())
		}
		if sum := xxhash.Sum64(doc.AppendTo(nil)); sum != meta.Checksum {
			return fmt.Errorf("checksum mismatch: stored %016x, reloaded %016x", meta.Checksum, sum)
		}
		return nil
	})
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, err
		}
		return nil, fmt.Errorf("archive: get %s: %w", name, err)
	}
	if a.verbose {
		a.logf("archive: GET %s (%d records)", name, doc.Len())
	}
	return doc, nil
}

// Stat returns the catalog entry of name without loading its records.
func (a *Archive) Stat(name string) (Entry, error) {
	var e Entry
	err := a.be.View(func(tx backendTx) error {
		meta, err := loadMeta(tx, name)
		if err != nil {
			return err
		}
		e = meta.entry(name)
		return nil
	})
	return e, err
}

// Delete removes the document stored under name.
func (a *Archive) Delete(name string) error {
	err := a.be.Update(func(tx backendTx) error {
		if _, err := loadMeta(tx, name); err != nil {
			return err
		}
		if err := tx.DropDocument(name); err != nil {
			return err
		}
		catalog, err := tx.Catalog()
		if err != nil {
			return err
		}
		return catalog.Delete([]byte(name))
	})
	if err != nil {
		return err
	}
	if a.verbose {
		a.logf("archive: DELETE %s", name)
	}
	return nil
}

// List returns all stored documents sorted by name.
func (a *Archive) List() ([]Entry, error) {
	entries := []Entry{}
	err := a.be.View(func(tx backendTx) error {
		catalog, err := tx.Catalog()
		if err != nil || catalog == nil {
			return err
		}
		entries = slices.Grow(entries, catalog.Len())
		return catalog.Each(func(k, v []byte) error {
			var meta docMeta
			if err := decodeValue(v, &meta); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			entries = append(entries, meta.entry(string(k)))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	return entries, nil
}

func loadMeta(tx backendTx, name string) (*docMeta, error) {
	catalog, err := tx.Catalog()
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, &NotFoundError{Name: name}
	}
	raw := catalog.Get([]byte(name))
	if raw == nil {
		return nil, &NotFoundError{Name: name}
	}
	meta := new(docMeta)
	err = decodeValue(raw, meta)
	if err != nil {
		return nil, err
	}
	return meta, nil
}

func (meta *docMeta) entry(name string) Entry {
	fileName, err := ifc.DecodeText(meta.Header.Name)
	if err != nil {
		fileName = meta.Header.Name
	}
	return Entry{
		Name:     name,
		Schema:   meta.Schema,
		FileName: fileName,
		Records:  meta.Count,
		MaxID:    meta.MaxID,
		Size:     meta.Size,
		Checksum: meta.Checksum,
		Updated:  meta.Updated,
	}
}
