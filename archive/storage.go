package archive

// backend is where an archive keeps its tables: Bolt on disk, or maps in
// memory for tests and scratch archives.
//
// Tables are flat sorted key-value collections. The catalog is one table;
// every stored document gets a table of its own, named after the document.
type backend interface {
	// View runs f in a read-only transaction.
	View(f func(tx backendTx) error) error

	// Update runs f in a read-write transaction, committing if f returns nil.
	// Writers are serialized.
	Update(f func(tx backendTx) error) error

	Close() error
}

type backendTx interface {
	// Catalog returns the catalog table, or nil if nothing was ever stored
	// and the transaction is read-only.
	Catalog() (table, error)

	// Document returns the record table of a document, or nil if there is
	// none. With create set, a missing table is created.
	Document(name string, create bool) (table, error)

	// DropDocument removes the record table of a document, if any.
	DropDocument(name string) error
}

// table is a sorted key-value collection. Slices returned by Get and Each are
// only valid until the transaction ends; values passed to Put must stay
// untouched until then.
type table interface {
	Get(key []byte) []byte
	Put(key, value []byte) error
	Delete(key []byte) error

	// Each calls f for every pair in ascending key order, stopping at the
	// first error.
	Each(f func(key, value []byte) error) error

	Len() int
}
