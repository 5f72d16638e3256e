package ifc

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Record is a value that can be held by a Store. Implementations are pointer
// types; the keyword is the record's kind tag in the text format.
type Record interface {
	Keyword() string
	ParseAttrs(r *Reader) error
	AppendAttrs(buf []byte) []byte
}

// RecordPtr constrains PT to be *T implementing Record.
type RecordPtr[T any] interface {
	*T
	Record
}

// Defaulter is implemented by kinds whose default value is not the zero value.
type Defaulter interface {
	SetDefaults()
}

// Storish is anything that can hand out its record store; both *Store and
// *Document qualify.
type Storish interface {
	RecordStore() *Store
}

// Store maps IDs to records of arbitrary kinds and iterates them in
// ascending ID order.
type Store struct {
	recs  map[ID]Record
	ids   []ID // sorted
	alloc Allocator

	logf    func(format string, args ...any)
	verbose bool
}

func NewStore() *Store {
	return &Store{
		recs: make(map[ID]Record),
	}
}

// RecordStore implements Storish
func (s *Store) RecordStore() *Store {
	return s
}

func (s *Store) Len() int {
	return len(s.ids)
}

func (s *Store) Contains(id ID) bool {
	_, found := s.recs[id]
	return found
}

// Max returns the largest ID present, or zero if the store is empty.
func (s *Store) Max() ID {
	if n := len(s.ids); n > 0 {
		return s.ids[n-1]
	}
	return 0
}

// NewID allocates an ID greater than every ID this store has seen.
func (s *Store) NewID() ID {
	id := s.alloc.Next()
	if s.verbose {
		s.logf("ifc: NEWID %v", id)
	}
	return id
}

// Observe advances the allocator past id without storing anything, e.g. to
// restore the high-water mark of a store whose last records were removed.
func (s *Store) Observe(id ID) {
	s.alloc.Observe(id)
}

// HighWater returns the largest ID this store has ever allocated or seen.
func (s *Store) HighWater() ID {
	return s.alloc.Peek() - 1
}

// Put stores rec under id without any kind checks and returns the record it
// replaced, if any.
func (s *Store) Put(id ID, rec Record) Record {
	if id == 0 {
		panic("ifc: attempt to store a record under zero ID")
	}
	if id > MaxID {
		panic(fmt.Errorf("ifc: attempt to store a record under %v, above MaxID", id))
	}
	if isNilRecord(rec) {
		panic(fmt.Errorf("ifc: attempt to store nil record under %v", id))
	}
	prev, found := s.recs[id]
	s.recs[id] = rec
	if !found {
		s.addID(id)
	}
	s.alloc.Observe(id)
	if s.verbose {
		if found {
			s.logf("ifc: REPLACE %v=%s (was %s)", id, rec.Keyword(), prev.Keyword())
		} else {
			s.logf("ifc: INSERT %v=%s", id, rec.Keyword())
		}
	}
	return prev
}

// Untyped returns the record stored under id, or nil.
func (s *Store) Untyped(id ID) Record {
	return s.recs[id]
}

// RemoveUntyped removes the record under id regardless of its kind. Returns
// nil if there was none.
func (s *Store) RemoveUntyped(id ID) Record {
	rec, found := s.recs[id]
	if !found {
		return nil
	}
	delete(s.recs, id)
	if i, ok := slices.BinarySearch(s.ids, id); ok {
		s.ids = slices.Delete(s.ids, i, i+1)
	}
	if s.verbose {
		s.logf("ifc: REMOVE %v=%s", id, rec.Keyword())
	}
	return rec
}

// All iterates records in ascending ID order. Records inserted during
// iteration are not visited; removed ones are skipped.
func (s *Store) All() iter.Seq2[ID, Record] {
	return func(yield func(ID, Record) bool) {
		for _, id := range slices.Clone(s.ids) {
			rec, found := s.recs[id]
			if !found {
				continue
			}
			if !yield(id, rec) {
				return
			}
		}
	}
}

// IDs returns a copy of all IDs in ascending order.
func (s *Store) IDs() []ID {
	return slices.Clone(s.ids)
}

func (s *Store) addID(id ID) {
	n := len(s.ids)
	if n == 0 || s.ids[n-1] < id {
		s.ids = append(s.ids, id)
		return
	}
	i, found := slices.BinarySearch(s.ids, id)
	if !found {
		s.ids = slices.Insert(s.ids, i, id)
	}
}

// Insert stores rec under id, returning the previous record if there was
// one. The previous record must be of the same kind.
func Insert[T Record](sh Storish, id ID, rec T) (T, bool) {
	s := sh.RecordStore()
	var old T
	prev, found := s.recs[id]
	if found {
		var ok bool
		old, ok = prev.(T)
		if !ok {
			panic(&KindError{ID: id, Want: kindName[T](), Got: prev.Keyword()})
		}
	}
	s.Put(id, rec)
	return old, found
}

// InsertDefaultIfAbsent makes sure a record of kind PT exists under id,
// inserting a default one if needed, and returns it.
func InsertDefaultIfAbsent[T any, PT RecordPtr[T]](sh Storish, id ID) PT {
	s := sh.RecordStore()
	if !s.Contains(id) {
		rec := PT(new(T))
		if d, ok := any(rec).(Defaulter); ok {
			d.SetDefaults()
		}
		s.Put(id, rec)
		return rec
	}
	return Get[PT](s, id)
}

// Add inserts rec under a freshly allocated ID.
func Add[T Record](sh Storish, rec T) Ref[T] {
	s := sh.RecordStore()
	id := s.NewID()
	s.Put(id, rec)
	return Ref[T]{id: id}
}

// Get returns the record stored under id. A missing record or a record of
// another kind is a programming error and panics with *KindError.
func Get[T Record](sh Storish, id ID) T {
	rec, err := TryGet[T](sh, id)
	if err != nil {
		panic(err)
	}
	return rec
}

// TryGet is like Get, but returns *KindError instead of panicking.
func TryGet[T Record](sh Storish, id ID) (T, error) {
	s := sh.RecordStore()
	var zero T
	rec, found := s.recs[id]
	if !found {
		return zero, &KindError{ID: id, Want: kindName[T]()}
	}
	v, ok := rec.(T)
	if !ok {
		return zero, &KindError{ID: id, Want: kindName[T](), Got: rec.Keyword()}
	}
	return v, nil
}

// Remove removes the record stored under id, which must be of kind T if
// present.
func Remove[T Record](sh Storish, id ID) (T, bool) {
	s := sh.RecordStore()
	var zero T
	rec, found := s.recs[id]
	if !found {
		return zero, false
	}
	v, ok := rec.(T)
	if !ok {
		panic(&KindError{ID: id, Want: kindName[T](), Got: rec.Keyword()})
	}
	s.RemoveUntyped(id)
	return v, true
}

// All iterates the records of kind T in ascending ID order.
func All[T Record](sh Storish) iter.Seq2[Ref[T], T] {
	return func(yield func(Ref[T], T) bool) {
		for id, rec := range sh.RecordStore().All() {
			if v, ok := rec.(T); ok {
				if !yield(Ref[T]{id: id}, v) {
					return
				}
			}
		}
	}
}

func kindName[T any]() string {
	return reflect.TypeFor[T]().String()
}

func isNilRecord(rec Record) bool {
	if rec == nil {
		return true
	}
	v := reflect.ValueOf(rec)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
