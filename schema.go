package ifc

import (
	"fmt"
	"reflect"
	"slices"
)

// Schema is the closed set of record kinds a document may contain, keyed by
// keyword. It also carries the FILE_SCHEMA identifier written into headers.
type Schema struct {
	name          string
	kinds         []*Kind
	kindsByName   map[string]*Kind
	kindsByGoType map[reflect.Type]*Kind
}

func NewSchema(name string) *Schema {
	return &Schema{
		name:          name,
		kindsByName:   make(map[string]*Kind),
		kindsByGoType: make(map[reflect.Type]*Kind),
	}
}

func (scm *Schema) Name() string {
	return scm.name
}

func (scm *Schema) Kinds() []*Kind {
	return slices.Clone(scm.kinds)
}

// KindNamed returns the kind for keyword, or nil.
func (scm *Schema) KindNamed(keyword string) *Kind {
	return scm.kindsByName[keyword]
}

// KindOf returns the kind rec was registered under. Records whose Go type
// was never registered are a programming error.
func (scm *Schema) KindOf(rec Record) *Kind {
	if kind := scm.kindsByName[rec.Keyword()]; kind != nil && kind.goType == reflect.TypeOf(rec) {
		return kind
	}
	kind := scm.kindsByGoType[reflect.TypeOf(rec)]
	if kind == nil {
		panic(fmt.Errorf("no kind defined for %T", rec))
	}
	return kind
}

// Kind is one registered record kind.
type Kind struct {
	schema  *Schema
	keyword string
	pos     int
	goType  reflect.Type
	factory func() Record
}

func (kind *Kind) Keyword() string {
	return kind.keyword
}

func (kind *Kind) GoType() reflect.Type {
	return kind.goType
}

// New returns a fresh, empty record of this kind, ready for ParseAttrs.
func (kind *Kind) New() Record {
	return kind.factory()
}

func (kind *Kind) String() string {
	return kind.keyword
}

// AddKind registers *T under keyword.
func AddKind[T any, PT RecordPtr[T]](scm *Schema, keyword string) *Kind {
	return AddKindFunc(scm, keyword, func() Record {
		return PT(new(T))
	})
}

// AddKindFunc registers a kind built by factory. Several keywords may share
// one Go type as long as factory sets up the keyword (typed measures do
// that).
func AddKindFunc(scm *Schema, keyword string, factory func() Record) *Kind {
	if scm.kindsByName[keyword] != nil {
		panic(fmt.Errorf("%s: kind %s already defined", scm.name, keyword))
	}
	sample := factory()
	if sample.Keyword() != keyword {
		panic(fmt.Errorf("%s: %T registered as %s reports keyword %q", scm.name, sample, keyword, sample.Keyword()))
	}
	kind := &Kind{
		schema:  scm,
		keyword: keyword,
		pos:     len(scm.kinds),
		goType:  reflect.TypeOf(sample),
		factory: factory,
	}
	scm.kinds = append(scm.kinds, kind)
	scm.kindsByName[keyword] = kind
	if scm.kindsByGoType[kind.goType] == nil {
		scm.kindsByGoType[kind.goType] = kind
	}
	return kind
}

// ParseRecord decodes a record from its keyword and the text between the
// parentheses.
func (scm *Schema) ParseRecord(keyword, attrs string) (Record, error) {
	kind := scm.KindNamed(keyword)
	if kind == nil {
		return nil, &ParseError{Line: 1, Col: 1, Keyword: keyword, Msg: "unknown keyword"}
	}
	r := NewReader(attrs, scm)
	rec := kind.New()
	err := rec.ParseAttrs(r)
	if err == nil && r.peek() == ',' {
		err = r.Errorf("too many attributes")
	}
	if err == nil {
		err = r.Finish()
	}
	if err != nil {
		return nil, withRecord(err, 0, keyword)
	}
	return rec, nil
}

// AppendRecordAttrs renders the text between the parentheses.
func AppendRecordAttrs(buf []byte, rec Record) []byte {
	return rec.AppendAttrs(buf)
}
