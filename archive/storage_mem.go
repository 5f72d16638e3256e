package archive

import (
	"errors"
	"maps"
	"slices"
	"sync"
)

var errClosed = errors.New("archive closed")

// memBackend keeps tables in maps. Update works on copies of the tables it
// touches and swaps them in on success, so a failed update leaves nothing
// behind and readers never see a partial one.
type memBackend struct {
	mu     sync.RWMutex
	tables map[string]*memTable // catalogBucket, or documentsBucket+"/"+name
	closed bool
}

func newMemBackend() *memBackend {
	return &memBackend{tables: make(map[string]*memTable)}
}

func (be *memBackend) View(f func(tx backendTx) error) error {
	be.mu.RLock()
	defer be.mu.RUnlock()
	if be.closed {
		return errClosed
	}
	return f(&memTx{tables: be.tables})
}

func (be *memBackend) Update(f func(tx backendTx) error) error {
	be.mu.Lock()
	defer be.mu.Unlock()
	if be.closed {
		return errClosed
	}
	tx := &memTx{
		writable: true,
		tables:   maps.Clone(be.tables),
		copied:   make(map[string]bool),
	}
	err := f(tx)
	if err != nil {
		return err
	}
	be.tables = tx.tables
	return nil
}

func (be *memBackend) Close() error {
	be.mu.Lock()
	defer be.mu.Unlock()
	be.closed = true
	be.tables = nil
	return nil
}

type memTx struct {
	writable bool
	tables   map[string]*memTable
	copied   map[string]bool // tables already private to this tx
}

// table returns the named table, copying it first if this tx is going to
// write to it.
func (tx *memTx) table(key string, create bool) *memTable {
	t := tx.tables[key]
	if !tx.writable {
		return t
	}
	switch {
	case t == nil && create:
		t = &memTable{rows: make(map[string][]byte)}
	case t != nil && !tx.copied[key]:
		t = &memTable{rows: maps.Clone(t.rows)}
	default:
		return t
	}
	tx.tables[key] = t
	tx.copied[key] = true
	return t
}

func (tx *memTx) Catalog() (table, error) {
	t := tx.table(catalogBucket, true)
	if t == nil {
		return nil, nil
	}
	return t, nil
}

func (tx *memTx) Document(name string, create bool) (table, error) {
	t := tx.table(documentsBucket+"/"+name, create)
	if t == nil {
		return nil, nil
	}
	return t, nil
}

func (tx *memTx) DropDocument(name string) error {
	delete(tx.tables, documentsBucket+"/"+name)
	return nil
}

type memTable struct {
	rows map[string][]byte
}

func (t *memTable) Get(key []byte) []byte {
	return t.rows[string(key)]
}

func (t *memTable) Put(key, value []byte) error {
	t.rows[string(key)] = slices.Clone(value)
	return nil
}

func (t *memTable) Delete(key []byte) error {
	delete(t.rows, string(key))
	return nil
}

func (t *memTable) Len() int {
	return len(t.rows)
}

func (t *memTable) Each(f func(key, value []byte) error) error {
	for _, k := range slices.Sorted(maps.Keys(t.rows)) {
		err := f([]byte(k), t.rows[k])
		if err != nil {
			return err
		}
	}
	return nil
}
