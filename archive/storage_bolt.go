package archive

import (
	"errors"
	"unsafe"

	"go.etcd.io/bbolt"
)

// Bolt layout: a root bucket "catalog", and a root bucket "documents" holding
// one nested bucket per document.
type boltBackend struct {
	bdb *bbolt.DB
}

func (be *boltBackend) View(f func(tx backendTx) error) error {
	return be.bdb.View(func(btx *bbolt.Tx) error {
		return f(boltTx{btx})
	})
}

func (be *boltBackend) Update(f func(tx backendTx) error) error {
	return be.bdb.Update(func(btx *bbolt.Tx) error {
		return f(boltTx{btx})
	})
}

func (be *boltBackend) Close() error {
	return be.bdb.Close()
}

type boltTx struct {
	btx *bbolt.Tx
}

func (tx boltTx) root(name string, create bool) (*bbolt.Bucket, error) {
	if b := tx.btx.Bucket(stringBytes(name)); b != nil || !create {
		return b, nil
	}
	return tx.btx.CreateBucket([]byte(name))
}

func (tx boltTx) Catalog() (table, error) {
	b, err := tx.root(catalogBucket, tx.btx.Writable())
	if err != nil || b == nil {
		return nil, err
	}
	return boltTable{b}, nil
}

func (tx boltTx) Document(name string, create bool) (table, error) {
	docs, err := tx.root(documentsBucket, create)
	if err != nil || docs == nil {
		return nil, err
	}
	b := docs.Bucket(stringBytes(name))
	if b == nil && create {
		b, err = docs.CreateBucket([]byte(name))
		if err != nil {
			return nil, err
		}
	}
	if b == nil {
		return nil, nil
	}
	return boltTable{b}, nil
}

func (tx boltTx) DropDocument(name string) error {
	docs := tx.btx.Bucket(stringBytes(documentsBucket))
	if docs == nil {
		return nil
	}
	err := docs.DeleteBucket(stringBytes(name))
	if errors.Is(err, bbolt.ErrBucketNotFound) {
		return nil
	}
	return err
}

type boltTable struct {
	b *bbolt.Bucket
}

func (t boltTable) Get(key []byte) []byte       { return t.b.Get(key) }
func (t boltTable) Put(key, value []byte) error { return t.b.Put(key, value) }
func (t boltTable) Delete(key []byte) error     { return t.b.Delete(key) }
func (t boltTable) Len() int                    { return t.b.Stats().KeyN }

func (t boltTable) Each(f func(key, value []byte) error) error {
	return t.b.ForEach(f)
}

// stringBytes is only for lookups; bbolt copies keys it stores.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
