package ifc

import "fmt"

// Ref points at a stored record of kind T. It never owns the record; the
// store does. The zero Ref points at nothing.
type Ref[T Record] struct {
	id ID
}

// RefTo wraps id without checking that a record of kind T exists there. Use
// it when the record is about to be inserted, e.g. for records that refer to
// each other.
func RefTo[T Record](id ID) Ref[T] {
	return Ref[T]{id: id}
}

func (r Ref[T]) ID() ID {
	return r.id
}

// RefID returns the referenced ID; used by whole-document passes that walk
// references without knowing their kinds.
func (r Ref[T]) RefID() ID {
	return r.id
}

func (r Ref[T]) IsZero() bool {
	return r.id == 0
}

// Get resolves the reference. Panics with *KindError if the record is
// missing or of another kind.
func (r Ref[T]) Get(sh Storish) T {
	return Get[T](sh, r.id)
}

// TryGet resolves the reference, returning *KindError on failure.
func (r Ref[T]) TryGet(sh Storish) (T, error) {
	return TryGet[T](sh, r.id)
}

// Resolvable reports whether the reference can be resolved in sh.
func (r Ref[T]) Resolvable(sh Storish) error {
	_, err := TryGet[T](sh, r.id)
	return err
}

// Or wraps the reference into a RefOr.
func (r Ref[T]) Or() RefOr[T] {
	return RefOf(r)
}

func (r Ref[T]) String() string {
	return r.id.String()
}

// RefOr is either a reference to a stored record or a record value that has
// not been stored yet. Calling Ref stores a pending value exactly once and
// caches the result, so RefOr must be used via a pointer (or addressable
// variable) to get that guarantee.
type RefOr[T Record] struct {
	ref   Ref[T]
	value T
	isRef bool
}

func RefOf[T Record](ref Ref[T]) RefOr[T] {
	return RefOr[T]{ref: ref, isRef: true}
}

func ValueOf[T Record](v T) RefOr[T] {
	if isNilRecord(v) {
		panic(fmt.Errorf("ifc: ValueOf(nil %s)", kindName[T]()))
	}
	return RefOr[T]{value: v}
}

func (o RefOr[T]) IsRef() bool {
	return o.isRef
}

func (o RefOr[T]) IsZero() bool {
	return !o.isRef && isNilRecord(o.value)
}

// Value returns the pending value, if this RefOr has not been materialized.
func (o RefOr[T]) Value() (T, bool) {
	if o.isRef {
		var zero T
		return zero, false
	}
	return o.value, !isNilRecord(o.value)
}

// Ref returns the reference, inserting the pending value under a fresh ID
// first if needed. Subsequent calls return the same reference.
func (o *RefOr[T]) Ref(sh Storish) Ref[T] {
	if o.isRef {
		return o.ref
	}
	if isNilRecord(o.value) {
		panic(fmt.Errorf("ifc: materializing empty RefOr[%s]", kindName[T]()))
	}
	o.ref = Add(sh, o.value)
	o.isRef = true
	var zero T
	o.value = zero
	return o.ref
}

// Get resolves the reference or returns the pending value.
func (o RefOr[T]) Get(sh Storish) T {
	if o.isRef {
		return o.ref.Get(sh)
	}
	return o.value
}

// RefID returns the referenced ID, or zero for a pending value.
func (o RefOr[T]) RefID() ID {
	if o.isRef {
		return o.ref.id
	}
	return 0
}

// Resolvable reports whether the reference can be resolved in sh. Pending
// values always can.
func (o RefOr[T]) Resolvable(sh Storish) error {
	if !o.isRef {
		return nil
	}
	return o.ref.Resolvable(sh)
}

// InlineRecord returns the pending value, or nil.
func (o RefOr[T]) InlineRecord() Record {
	if o.isRef || isNilRecord(o.value) {
		return nil
	}
	return o.value
}

// ParseRefOr parses either a `#id` reference or an inline `KEYWORD(...)`
// record. Inline records are decoded through the reader's schema and must be
// of kind T.
func ParseRefOr[T Record](r *Reader) (RefOr[T], error) {
	if r.peek() == '#' {
		ref, err := ParseRef[T](r)
		if err != nil {
			return RefOr[T]{}, err
		}
		return RefOf(ref), nil
	}
	start := r.off
	rec, err := r.InlineRecord()
	if err != nil {
		return RefOr[T]{}, err
	}
	v, ok := rec.(T)
	if !ok {
		return RefOr[T]{}, r.errorAt(start, nil, "inline %s is not a %s", rec.Keyword(), kindName[T]())
	}
	return RefOr[T]{value: v}, nil
}

func AppendRefOr[T Record](buf []byte, o RefOr[T]) []byte {
	if o.isRef {
		return AppendID(buf, o.ref.id)
	}
	if isNilRecord(o.value) {
		panic(fmt.Errorf("ifc: rendering empty RefOr[%s]", kindName[T]()))
	}
	return AppendInline(buf, o.value)
}

func ParseRef[T Record](r *Reader) (Ref[T], error) {
	id, err := ParseID(r)
	if err != nil {
		return Ref[T]{}, err
	}
	return Ref[T]{id: id}, nil
}

func AppendRef[T Record](buf []byte, ref Ref[T]) []byte {
	return AppendID(buf, ref.id)
}
