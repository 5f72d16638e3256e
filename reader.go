package ifc

import (
	"fmt"
	"strconv"
	"strings"
)

// Reader is a cursor into STEP text. Whitespace and comments between tokens
// are skipped implicitly by every operation.
type Reader struct {
	src    string
	off    int
	schema *Schema

	// commentErr is set once an unterminated comment has swallowed the rest
	// of the input; every later error is reported as it.
	commentErr *ParseError
}

// NewReader returns a reader over src. The schema is only needed to decode
// inline records (see ParseRefOr) and may be nil otherwise.
func NewReader(src string, scm *Schema) *Reader {
	return &Reader{src: src, schema: scm}
}

func (r *Reader) Offset() int {
	return r.off
}

func (r *Reader) Schema() *Schema {
	return r.schema
}

// AtEnd reports whether only whitespace and comments remain.
func (r *Reader) AtEnd() bool {
	r.skipSpace()
	return r.off >= len(r.src)
}

// Finish checks that nothing but whitespace and complete comments remains.
func (r *Reader) Finish() error {
	if !r.AtEnd() {
		return r.Errorf("unexpected %s", r.describe())
	}
	if r.commentErr != nil {
		return r.commentErr
	}
	return nil
}

func (r *Reader) skipSpace() {
	for r.off < len(r.src) {
		c := r.src[r.off]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			r.off++
		case c == '/' && r.off+1 < len(r.src) && r.src[r.off+1] == '*':
			end := indexFrom(r.src, r.off+2, "*/")
			if end < 0 {
				if r.commentErr == nil {
					r.commentErr = r.newError(r.off, nil, "unterminated comment")
				}
				r.off = len(r.src)
			} else {
				r.off = end + 2
			}
		case c == '/' && r.off+1 < len(r.src) && r.src[r.off+1] == '/':
			end := indexFrom(r.src, r.off+2, "\n")
			if end < 0 {
				r.off = len(r.src)
			} else {
				r.off = end + 1
			}
		default:
			return
		}
	}
}

// peek returns the next significant byte, or 0 at the end of input.
func (r *Reader) peek() byte {
	r.skipSpace()
	if r.off >= len(r.src) {
		return 0
	}
	return r.src[r.off]
}

// Consume skips c if it is the next significant byte.
func (r *Reader) Consume(c byte) bool {
	if r.peek() == c {
		r.off++
		return true
	}
	return false
}

func (r *Reader) Expect(c byte) error {
	if !r.Consume(c) {
		return r.Errorf("expected %q, got %s", c, r.describe())
	}
	return nil
}

// ExpectToken consumes the literal tok, e.g. "DATA;".
func (r *Reader) ExpectToken(tok string) error {
	if !r.ConsumeToken(tok) {
		return r.Errorf("expected %s, got %s", tok, r.describe())
	}
	return nil
}

func (r *Reader) ConsumeToken(tok string) bool {
	r.skipSpace()
	if len(r.src)-r.off >= len(tok) && r.src[r.off:r.off+len(tok)] == tok {
		r.off += len(tok)
		return true
	}
	return false
}

// HasPrefix reports whether the next significant text starts with tok,
// without consuming it.
func (r *Reader) HasPrefix(tok string) bool {
	r.skipSpace()
	return len(r.src)-r.off >= len(tok) && r.src[r.off:r.off+len(tok)] == tok
}

// Keyword reads an entity or header keyword such as IFCWALL or FILE_NAME.
func (r *Reader) Keyword() (string, error) {
	r.skipSpace()
	start := r.off
	for r.off < len(r.src) {
		c := r.src[r.off]
		if isUpper(c) || c == '_' || (r.off > start && (isDigit(c) || c == '-')) {
			r.off++
		} else {
			break
		}
	}
	if r.off == start {
		return "", r.Errorf("expected keyword, got %s", r.describe())
	}
	return r.src[start:r.off], nil
}

// InlineRecord parses `KEYWORD(attrs)` in attribute position.
func (r *Reader) InlineRecord() (Record, error) {
	r.skipSpace()
	start := r.off
	kw, err := r.Keyword()
	if err != nil {
		return nil, err
	}
	if r.schema == nil {
		return nil, r.errorAt(start, nil, "inline %s: no schema to decode it with", kw)
	}
	kind := r.schema.KindNamed(kw)
	if kind == nil {
		return nil, r.errorAt(start, nil, "unknown keyword %s", kw)
	}
	rec := kind.New()
	err = r.Expect('(')
	if err != nil {
		return nil, err
	}
	err = rec.ParseAttrs(r)
	if err != nil {
		return nil, err
	}
	err = r.closeAttrs()
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *Reader) closeAttrs() error {
	if r.Consume(')') {
		return nil
	}
	if r.peek() == ',' {
		return r.Errorf("too many attributes")
	}
	return r.Errorf("expected ')', got %s", r.describe())
}

// Attr parses one attribute (or, for Inherited, a whole inherited span).
type Attr func(r *Reader) error

// Attrs parses comma-separated attributes in order.
func (r *Reader) Attrs(attrs ...Attr) error {
	for i, attr := range attrs {
		if i > 0 && !r.Consume(',') {
			if c := r.peek(); c == ')' || c == 0 {
				return r.Errorf("too few attributes")
			}
			return r.Errorf("expected ',', got %s", r.describe())
		}
		err := attr(r)
		if err != nil {
			return err
		}
	}
	return nil
}

// Field parses one attribute with p and stores it into dst.
func Field[T any](dst *T, p ParseFunc[T]) Attr {
	return func(r *Reader) error {
		v, err := p(r)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// Inherited parses the attribute span of a general kind embedded into a
// more specific one.
func Inherited(parent interface{ ParseAttrs(r *Reader) error }) Attr {
	return parent.ParseAttrs
}

// SkipValue skips one attribute value of any shape.
func (r *Reader) SkipValue() error {
	switch c := r.peek(); {
	case c == '$' || c == '*':
		r.off++
		return nil
	case c == '#':
		_, err := ParseID(r)
		return err
	case c == '\'':
		_, err := ParseString(r)
		return err
	case c == '"':
		return r.skipBinary()
	case c == '.':
		_, err := r.enumToken()
		return err
	case c == '(':
		_, err := ParseList(r, func(r *Reader) (struct{}, error) {
			return struct{}{}, r.SkipValue()
		})
		return err
	case c == '+' || c == '-' || isDigit(c):
		_, err := r.numberToken()
		return err
	case isUpper(c):
		_, err := r.Keyword()
		if err != nil {
			return err
		}
		_, err = ParseList(r, func(r *Reader) (struct{}, error) {
			return struct{}{}, r.SkipValue()
		})
		return err
	default:
		return r.Errorf("expected attribute value, got %s", r.describe())
	}
}

func (r *Reader) skipBinary() error {
	start := r.off
	r.off++
	end := indexFrom(r.src, r.off, `"`)
	if end < 0 {
		return r.errorAt(start, nil, "unterminated binary literal")
	}
	r.off = end + 1
	return nil
}

// enumToken reads `.TOKEN.` and returns TOKEN.
func (r *Reader) enumToken() (string, error) {
	r.skipSpace()
	start := r.off
	if r.off >= len(r.src) || r.src[r.off] != '.' {
		return "", r.Errorf("expected enumeration, got %s", r.describe())
	}
	r.off++
	tokStart := r.off
	for r.off < len(r.src) && (isUpper(r.src[r.off]) || isDigit(r.src[r.off]) || r.src[r.off] == '_') {
		r.off++
	}
	if r.off == tokStart || r.off >= len(r.src) || r.src[r.off] != '.' {
		return "", r.errorAt(start, nil, "malformed enumeration")
	}
	tok := r.src[tokStart:r.off]
	r.off++
	return tok, nil
}

// numberToken reads an integer or real literal.
func (r *Reader) numberToken() (string, error) {
	r.skipSpace()
	start := r.off
	if r.off < len(r.src) && (r.src[r.off] == '+' || r.src[r.off] == '-') {
		r.off++
	}
	digits := r.skipDigits()
	if r.off < len(r.src) && r.src[r.off] == '.' {
		r.off++
		digits += r.skipDigits()
	}
	if digits == 0 {
		r.off = start
		return "", r.Errorf("expected number, got %s", r.describe())
	}
	if r.off < len(r.src) && (r.src[r.off] == 'E' || r.src[r.off] == 'e') {
		r.off++
		if r.off < len(r.src) && (r.src[r.off] == '+' || r.src[r.off] == '-') {
			r.off++
		}
		if r.skipDigits() == 0 {
			return "", r.errorAt(start, nil, "malformed exponent in %q", r.src[start:r.off])
		}
	}
	return r.src[start:r.off], nil
}

func (r *Reader) skipDigits() int {
	n := 0
	for r.off < len(r.src) && isDigit(r.src[r.off]) {
		r.off++
		n++
	}
	return n
}

// Errorf returns a *ParseError at the current position.
func (r *Reader) Errorf(format string, args ...any) error {
	return r.errorAt(r.off, nil, format, args...)
}

func (r *Reader) errorAt(off int, err error, format string, args ...any) error {
	if r.commentErr != nil {
		return r.commentErr
	}
	return r.newError(off, err, format, args...)
}

func (r *Reader) newError(off int, err error, format string, args ...any) *ParseError {
	line, col := lineCol(r.src, off)
	return &ParseError{
		Off:  off,
		Line: line,
		Col:  col,
		Msg:  fmt.Sprintf(format, args...),
		Err:  err,
	}
}

func (r *Reader) describe() string {
	r.skipSpace()
	if r.off >= len(r.src) {
		return "end of input"
	}
	const maxLen = 16
	s := r.src[r.off:]
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return strconv.Quote(s)
}

func lineCol(src string, off int) (int, int) {
	if off > len(src) {
		off = len(src)
	}
	line, col := 1, 1
	for i := 0; i < off; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func indexFrom(s string, from int, sub string) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], sub)
	if i < 0 {
		return -1
	}
	return from + i
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
