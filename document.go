package ifc

import (
	"fmt"
	"io"
	"log/slog"
)

const (
	magicKeyword = "ISO-10303-21"
	endKeyword   = "END-ISO-10303-21"
)

type Options struct {
	Logf    func(format string, args ...any)
	Verbose bool
}

// Document is a header plus a store of records. See the package docs.
type Document struct {
	Header Header

	schema  *Schema
	store   *Store
	logf    func(format string, args ...any)
	verbose bool
}

// New returns an empty document with the default header for scm.
func New(scm *Schema, opt Options) *Document {
	logf := opt.Logf
	if logf == nil {
		logf = slogf
	}
	store := NewStore()
	store.logf = logf
	store.verbose = opt.Verbose
	return &Document{
		Header:  DefaultHeader(scm),
		schema:  scm,
		store:   store,
		logf:    logf,
		verbose: opt.Verbose,
	}
}

func slogf(format string, args ...any) {
	slog.Debug(fmt.Sprintf(format, args...))
}

// RecordStore implements Storish
func (doc *Document) RecordStore() *Store {
	return doc.store
}

func (doc *Document) Schema() *Schema {
	return doc.schema
}

func (doc *Document) Len() int {
	return doc.store.Len()
}

// NewID allocates an ID greater than any ID in the document, including ones
// read from text.
func (doc *Document) NewID() ID {
	return doc.store.NewID()
}

// Parse reads a whole document. On failure no document is returned; the
// error is a *ParseError.
func Parse(text string, scm *Schema, opt Options) (*Document, error) {
	doc := New(scm, opt)
	doc.Header = Header{}
	r := NewReader(text, scm)

	err := r.expectSection(magicKeyword)
	if err != nil {
		return nil, err
	}
	err = doc.Header.parse(r)
	if err != nil {
		return nil, err
	}
	err = r.expectSection("DATA")
	if err != nil {
		return nil, err
	}
	for r.peek() == '#' {
		err = doc.parseRecord(r)
		if err != nil {
			return nil, err
		}
	}
	if r.AtEnd() {
		return nil, r.Errorf("unterminated DATA section")
	}
	err = r.expectSection("ENDSEC")
	if err != nil {
		return nil, err
	}
	err = r.expectSection(endKeyword)
	if err != nil {
		return nil, err
	}
	if !r.AtEnd() {
		return nil, r.Errorf("unexpected %s after %s", r.describe(), endKeyword)
	}
	if r.commentErr != nil {
		return nil, r.commentErr
	}
	return doc, nil
}

// MustParse is Parse for trusted input, e.g. literals in tests.
func MustParse(text string, scm *Schema, opt Options) *Document {
	return must(Parse(text, scm, opt))
}

func (doc *Document) parseRecord(r *Reader) error {
	start := r.Offset()
	id, err := ParseID(r)
	if err != nil {
		return err
	}
	err = r.Expect('=')
	if err != nil {
		return withRecord(err, id, "")
	}
	r.skipSpace()
	kwStart := r.Offset()
	kw, err := r.Keyword()
	if err != nil {
		return withRecord(err, id, "")
	}
	kind := doc.schema.KindNamed(kw)
	if kind == nil {
		return withRecord(r.errorAt(kwStart, nil, "unknown keyword"), id, kw)
	}
	rec := kind.New()
	err = r.Expect('(')
	if err == nil {
		err = rec.ParseAttrs(r)
	}
	if err == nil {
		err = r.closeAttrs()
	}
	if err == nil {
		err = r.Expect(';')
	}
	if err != nil {
		return withRecord(err, id, kw)
	}
	if doc.store.Contains(id) {
		return withRecord(r.errorAt(start, nil, "duplicate ID"), id, kw)
	}
	if doc.verbose {
		doc.logf("ifc: PARSE %v=%s", id, kw)
	}
	doc.store.Put(id, rec)
	return nil
}

// expectSection consumes `NAME;`.
func (r *Reader) expectSection(name string) error {
	r.skipSpace()
	start := r.off
	kw, err := r.Keyword()
	if err != nil || kw != name {
		r.off = start
		return r.Errorf("expected %s;, got %s", name, r.describe())
	}
	return r.Expect(';')
}

// AppendTo renders the document in canonical form.
func (doc *Document) AppendTo(buf []byte) []byte {
	buf = append(buf, magicKeyword...)
	buf = append(buf, ";\n"...)
	buf = doc.Header.appendTo(buf)
	buf = append(buf, "DATA;\n"...)
	for id, rec := range doc.store.All() {
		buf = AppendID(buf, id)
		buf = append(buf, '=')
		buf = append(buf, rec.Keyword()...)
		buf = append(buf, '(')
		buf = rec.AppendAttrs(buf)
		buf = append(buf, ");\n"...)
	}
	buf = append(buf, "ENDSEC;\n"...)
	buf = append(buf, endKeyword...)
	return append(buf, ";\n"...)
}

func (doc *Document) Render() string {
	buf := doc.AppendTo(renderBufPool.Get().([]byte))
	s := string(buf)
	releaseRenderBuf(buf)
	if doc.verbose {
		doc.logf("ifc: RENDER %d records, %d bytes", doc.store.Len(), len(s))
	}
	return s
}

func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	buf := doc.AppendTo(renderBufPool.Get().([]byte))
	defer releaseRenderBuf(buf)
	n, err := w.Write(buf)
	return int64(n), err
}

// RenderRecord renders a single record line without the trailing newline.
func RenderRecord(id ID, rec Record) string {
	buf := AppendID(nil, id)
	buf = append(buf, '=')
	buf = AppendInline(buf, rec)
	return string(append(buf, ';'))
}
