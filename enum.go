package ifc

import (
	"fmt"
	"slices"
)

// Enum maps a closed set of `.TOKEN.` constants to Go values, one to one.
type Enum[T comparable] struct {
	name    string
	byToken map[string]T
	tokens  map[T]string
}

// NewEnum defines an enumeration. Tokens are given without the dots.
func NewEnum[T comparable](name string, tokens map[T]string) *Enum[T] {
	e := &Enum[T]{
		name:    name,
		byToken: make(map[string]T, len(tokens)),
		tokens:  make(map[T]string, len(tokens)),
	}
	for v, tok := range tokens {
		if _, dup := e.byToken[tok]; dup {
			panic(fmt.Errorf("%s: duplicate token .%s.", name, tok))
		}
		e.byToken[tok] = v
		e.tokens[v] = tok
	}
	return e
}

func (e *Enum[T]) Name() string {
	return e.name
}

// Token returns the token for v, without dots.
func (e *Enum[T]) Token(v T) string {
	tok, ok := e.tokens[v]
	if !ok {
		panic(fmt.Errorf("%s: invalid value %v", e.name, v))
	}
	return tok
}

// Lookup finds the value for tok (without dots).
func (e *Enum[T]) Lookup(tok string) (T, bool) {
	v, ok := e.byToken[tok]
	return v, ok
}

// Tokens returns all tokens, sorted.
func (e *Enum[T]) Tokens() []string {
	result := make([]string, 0, len(e.byToken))
	for tok := range e.byToken {
		result = append(result, tok)
	}
	slices.Sort(result)
	return result
}

func (e *Enum[T]) Parse(r *Reader) (T, error) {
	r.skipSpace()
	start := r.off
	tok, err := r.enumToken()
	if err != nil {
		var zero T
		return zero, err
	}
	v, ok := e.byToken[tok]
	if !ok {
		var zero T
		return zero, r.errorAt(start, nil, "unknown %s value .%s.", e.name, tok)
	}
	return v, nil
}

func (e *Enum[T]) Append(buf []byte, v T) []byte {
	buf = append(buf, '.')
	buf = append(buf, e.Token(v)...)
	return append(buf, '.')
}

type Logical int8

const (
	False Logical = iota
	True
	Unknown
)

var (
	Bools    = NewEnum("BOOLEAN", map[bool]string{true: "T", false: "F"})
	Logicals = NewEnum("LOGICAL", map[Logical]string{True: "T", False: "F", Unknown: "U"})
)

func ParseBool(r *Reader) (bool, error) {
	return Bools.Parse(r)
}

func AppendBool(buf []byte, v bool) []byte {
	return Bools.Append(buf, v)
}
