package ifc

// Optional is an attribute that may be `$` (not present). A present empty
// string is distinct from an absent one.
type Optional[T any] struct {
	Value   T
	Present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// IsPresent is Present, for code that inspects optionals without knowing T.
func (o Optional[T]) IsPresent() bool {
	return o.Present
}

func (o Optional[T]) OrElse(def T) T {
	if o.Present {
		return o.Value
	}
	return def
}

func ParseOptional[T any](r *Reader, elem ParseFunc[T]) (Optional[T], error) {
	if r.Consume('$') {
		return Optional[T]{}, nil
	}
	v, err := elem(r)
	if err != nil {
		return Optional[T]{}, err
	}
	return Optional[T]{Value: v, Present: true}, nil
}

func OptionalOf[T any](elem ParseFunc[T]) ParseFunc[Optional[T]] {
	return func(r *Reader) (Optional[T], error) {
		return ParseOptional(r, elem)
	}
}

func AppendOptional[T any](buf []byte, o Optional[T], elem AppendFunc[T]) []byte {
	if !o.Present {
		return append(buf, '$')
	}
	return elem(buf, o.Value)
}

func AppendOptionalOf[T any](elem AppendFunc[T]) AppendFunc[Optional[T]] {
	return func(buf []byte, o Optional[T]) []byte {
		return AppendOptional(buf, o, elem)
	}
}
