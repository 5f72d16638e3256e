package ifc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseFunc parses one attribute value.
type ParseFunc[T any] func(r *Reader) (T, error)

// AppendFunc renders one attribute value.
type AppendFunc[T any] func(buf []byte, v T) []byte

// Omitted is an attribute that is always `$` in the records we model.
type Omitted struct{}

func ParseOmitted(r *Reader) (Omitted, error) {
	if !r.Consume('$') {
		return Omitted{}, r.Errorf("expected $, got %s", r.describe())
	}
	return Omitted{}, nil
}

func AppendOmitted(buf []byte, _ Omitted) []byte {
	return append(buf, '$')
}

// Derived is an attribute that is always `*`, i.e. its value is derived by
// the schema for this subtype.
type Derived struct{}

func ParseDerived(r *Reader) (Derived, error) {
	if !r.Consume('*') {
		return Derived{}, r.Errorf("expected *, got %s", r.describe())
	}
	return Derived{}, nil
}

func AppendDerived(buf []byte, _ Derived) []byte {
	return append(buf, '*')
}

// ParseID reads `#123`.
func ParseID(r *Reader) (ID, error) {
	if r.peek() != '#' {
		return 0, r.Errorf("expected reference, got %s", r.describe())
	}
	start := r.off
	r.off++
	digitsStart := r.off
	if r.skipDigits() == 0 {
		return 0, r.errorAt(start, nil, "malformed reference")
	}
	v, err := strconv.ParseUint(r.src[digitsStart:r.off], 10, 64)
	if err != nil {
		return 0, r.errorAt(start, err, "malformed reference")
	}
	if v == 0 {
		return 0, r.errorAt(start, nil, "invalid reference #0")
	}
	if ID(v) > MaxID {
		return 0, r.errorAt(start, nil, "reference #%d out of range", v)
	}
	return ID(v), nil
}

func AppendID(buf []byte, id ID) []byte {
	buf = append(buf, '#')
	return strconv.AppendUint(buf, uint64(id), 10)
}

func ParseInteger(r *Reader) (int64, error) {
	r.skipSpace()
	start := r.off
	tok, err := r.numberToken()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, r.errorAt(start, err, "expected integer, got %q", tok)
	}
	return v, nil
}

func AppendInteger(buf []byte, v int64) []byte {
	return strconv.AppendInt(buf, v, 10)
}

func ParseReal(r *Reader) (float64, error) {
	r.skipSpace()
	start := r.off
	tok, err := r.numberToken()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, r.errorAt(start, err, "malformed real %q", tok)
	}
	return v, nil
}

// AppendReal renders v in canonical form: shortest round-tripping digits,
// always with a decimal point, exponent form outside [1e-5, 1e15).
func AppendReal(buf []byte, v float64) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Errorf("ifc: %v cannot be represented in STEP", v))
	}
	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-5 && abs < 1e15) {
		start := len(buf)
		buf = strconv.AppendFloat(buf, v, 'f', -1, 64)
		if !strings.ContainsRune(string(buf[start:]), '.') {
			buf = append(buf, '.', '0')
		}
		return buf
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
	buf = append(buf, mant...)
	if !strings.Contains(mant, ".") {
		buf = append(buf, '.')
	}
	buf = append(buf, 'E')
	return append(buf, exp...)
}

// ParseString reads a single-quoted string, undoubling embedded quotes.
// Backslash escapes are kept as is; see DecodeText.
func ParseString(r *Reader) (string, error) {
	if r.peek() != '\'' {
		return "", r.Errorf("expected string, got %s", r.describe())
	}
	start := r.off
	r.off++
	var buf strings.Builder
	chunk := r.off
	for r.off < len(r.src) {
		if r.src[r.off] != '\'' {
			r.off++
			continue
		}
		buf.WriteString(r.src[chunk:r.off])
		r.off++
		if r.off < len(r.src) && r.src[r.off] == '\'' {
			buf.WriteByte('\'')
			r.off++
			chunk = r.off
			continue
		}
		return buf.String(), nil
	}
	return "", r.errorAt(start, nil, "unterminated string")
}

func AppendString(buf []byte, s string) []byte {
	buf = append(buf, '\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			buf = append(buf, '\'', '\'')
		} else {
			buf = append(buf, s[i])
		}
	}
	return append(buf, '\'')
}

// ParseList reads `(a,b,...)`. A trailing comma before `)` is an error.
func ParseList[T any](r *Reader, elem ParseFunc[T]) ([]T, error) {
	r.skipSpace()
	start := r.off
	err := r.Expect('(')
	if err != nil {
		return nil, err
	}
	var items []T
	if r.Consume(')') {
		return items, nil
	}
	for {
		if r.AtEnd() {
			return nil, r.errorAt(start, nil, "unterminated list")
		}
		v, err := elem(r)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		if r.Consume(',') {
			if r.peek() == ')' {
				return nil, r.Errorf("trailing comma in list")
			}
			continue
		}
		if r.Consume(')') {
			return items, nil
		}
		if r.AtEnd() {
			return nil, r.errorAt(start, nil, "unterminated list")
		}
		return nil, r.Errorf("expected ',' or ')' in list, got %s", r.describe())
	}
}

func ListOf[T any](elem ParseFunc[T]) ParseFunc[[]T] {
	return func(r *Reader) ([]T, error) {
		return ParseList(r, elem)
	}
}

func AppendList[T any](buf []byte, items []T, elem AppendFunc[T]) []byte {
	buf = append(buf, '(')
	for i, v := range items {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = elem(buf, v)
	}
	return append(buf, ')')
}

func AppendListOf[T any](elem AppendFunc[T]) AppendFunc[[]T] {
	return func(buf []byte, items []T) []byte {
		return AppendList(buf, items, elem)
	}
}

// AppendInline renders rec in attribute position as `KEYWORD(attrs)`.
func AppendInline(buf []byte, rec Record) []byte {
	buf = append(buf, rec.Keyword()...)
	buf = append(buf, '(')
	buf = rec.AppendAttrs(buf)
	return append(buf, ')')
}

// Placeholder keeps the raw text of an attribute that is not modeled, so
// that it survives a round trip. The zero Placeholder renders as `$`.
type Placeholder struct {
	raw string
}

func RawPlaceholder(raw string) Placeholder {
	return Placeholder{raw: raw}
}

func (p Placeholder) Raw() string {
	if p.raw == "" {
		return "$"
	}
	return p.raw
}

func (p Placeholder) IsOmitted() bool {
	return p.raw == "" || p.raw == "$"
}

func ParsePlaceholder(r *Reader) (Placeholder, error) {
	r.skipSpace()
	start := r.off
	err := r.SkipValue()
	if err != nil {
		return Placeholder{}, err
	}
	return Placeholder{raw: r.src[start:r.off]}, nil
}

func AppendPlaceholder(buf []byte, p Placeholder) []byte {
	return append(buf, p.Raw()...)
}
