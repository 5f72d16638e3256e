package ifc

import (
	"reflect"
	"strings"
	"testing"
)

var testSchema = NewSchema("TEST1")

var (
	_ = AddKind[testMaterial](testSchema, "IFCMATERIAL")
	_ = AddKind[testPoint](testSchema, "IFCCARTESIANPOINT")
	_ = AddKind[testWall](testSchema, "IFCWALL")
	_ = AddKind[testProfile](testSchema, "IFCRECTANGLEPROFILEDEF")
	_ = AddKind[testProperty](testSchema, "IFCPROPERTYSINGLEVALUE")
	_ = AddKind[testSettings](testSchema, "IFCTESTSETTINGS")
	_ = AddKindFunc(testSchema, "IFCLENGTHMEASURE", newTestMeasure("IFCLENGTHMEASURE"))
	_ = AddKindFunc(testSchema, "IFCAREAMEASURE", newTestMeasure("IFCAREAMEASURE"))
)

type testMaterial struct {
	Name        string
	Description Optional[string]
	Category    Optional[string]
}

func (*testMaterial) Keyword() string { return "IFCMATERIAL" }

func (m *testMaterial) ParseAttrs(r *Reader) error {
	return r.Attrs(
		Field(&m.Name, ParseString),
		Field(&m.Description, OptionalOf(ParseString)),
		Field(&m.Category, OptionalOf(ParseString)),
	)
}

func (m *testMaterial) AppendAttrs(buf []byte) []byte {
	buf = AppendString(buf, m.Name)
	buf = append(buf, ',')
	buf = AppendOptional(buf, m.Description, AppendString)
	buf = append(buf, ',')
	return AppendOptional(buf, m.Category, AppendString)
}

type testPoint struct {
	Coords []float64
}

func (*testPoint) Keyword() string { return "IFCCARTESIANPOINT" }

func (p *testPoint) ParseAttrs(r *Reader) error {
	return r.Attrs(Field(&p.Coords, ListOf(ParseReal)))
}

func (p *testPoint) AppendAttrs(buf []byte) []byte {
	return AppendList(buf, p.Coords, AppendReal)
}

// testNamed is a general kind; it has no keyword of its own.
type testNamed struct {
	GlobalID string
	Name     Optional[string]
}

func (n *testNamed) ParseAttrs(r *Reader) error {
	return r.Attrs(
		Field(&n.GlobalID, ParseString),
		Field(&n.Name, OptionalOf(ParseString)),
	)
}

func (n *testNamed) AppendAttrs(buf []byte) []byte {
	buf = AppendString(buf, n.GlobalID)
	buf = append(buf, ',')
	return AppendOptional(buf, n.Name, AppendString)
}

type testWallKind int

const (
	testWallStandard testWallKind = iota
	testWallPartitioning
	testWallNotDefined
)

var testWallKinds = NewEnum("WALLTYPE", map[testWallKind]string{
	testWallStandard:     "STANDARD",
	testWallPartitioning: "PARTITIONING",
	testWallNotDefined:   "NOTDEFINED",
})

type testWall struct {
	testNamed
	Material Ref[*testMaterial]
	Height   float64
	Origin   Optional[RefOr[*testPoint]]
	Kind     testWallKind
	Tag      Placeholder
}

func (*testWall) Keyword() string { return "IFCWALL" }

func (w *testWall) ParseAttrs(r *Reader) error {
	return r.Attrs(
		Inherited(&w.testNamed),
		Field(&w.Material, ParseRef[*testMaterial]),
		Field(&w.Height, ParseReal),
		Field(&w.Origin, OptionalOf(ParseRefOr[*testPoint])),
		Field(&w.Kind, testWallKinds.Parse),
		Field(&w.Tag, ParsePlaceholder),
	)
}

func (w *testWall) AppendAttrs(buf []byte) []byte {
	buf = w.testNamed.AppendAttrs(buf)
	buf = append(buf, ',')
	buf = AppendRef(buf, w.Material)
	buf = append(buf, ',')
	buf = AppendReal(buf, w.Height)
	buf = append(buf, ',')
	buf = AppendOptional(buf, w.Origin, AppendRefOr[*testPoint])
	buf = append(buf, ',')
	buf = testWallKinds.Append(buf, w.Kind)
	buf = append(buf, ',')
	return AppendPlaceholder(buf, w.Tag)
}

type testProfileType int

const (
	testProfileCurve testProfileType = iota
	testProfileArea
)

var testProfileTypes = NewEnum("PROFILETYPE", map[testProfileType]string{
	testProfileCurve: "CURVE",
	testProfileArea:  "AREA",
})

type testProfile struct {
	ProfileType testProfileType
	ProfileName Optional[string]
	Position    Optional[RefOr[*testPoint]]
	XDim        float64
	YDim        float64
}

func (*testProfile) Keyword() string { return "IFCRECTANGLEPROFILEDEF" }

func (p *testProfile) ParseAttrs(r *Reader) error {
	return r.Attrs(
		Field(&p.ProfileType, testProfileTypes.Parse),
		Field(&p.ProfileName, OptionalOf(ParseString)),
		Field(&p.Position, OptionalOf(ParseRefOr[*testPoint])),
		Field(&p.XDim, ParseReal),
		Field(&p.YDim, ParseReal),
	)
}

func (p *testProfile) AppendAttrs(buf []byte) []byte {
	buf = testProfileTypes.Append(buf, p.ProfileType)
	buf = append(buf, ',')
	buf = AppendOptional(buf, p.ProfileName, AppendString)
	buf = append(buf, ',')
	buf = AppendOptional(buf, p.Position, AppendRefOr[*testPoint])
	buf = append(buf, ',')
	buf = AppendReal(buf, p.XDim)
	buf = append(buf, ',')
	return AppendReal(buf, p.YDim)
}

type testMeasure struct {
	keyword string
	Value   float64
}

func newTestMeasure(keyword string) func() Record {
	return func() Record {
		return &testMeasure{keyword: keyword}
	}
}

func (m *testMeasure) Keyword() string { return m.keyword }

func (m *testMeasure) ParseAttrs(r *Reader) error {
	return r.Attrs(Field(&m.Value, ParseReal))
}

func (m *testMeasure) AppendAttrs(buf []byte) []byte {
	return AppendReal(buf, m.Value)
}

type testProperty struct {
	Name  string
	Value Optional[RefOr[*testMeasure]]
}

func (*testProperty) Keyword() string { return "IFCPROPERTYSINGLEVALUE" }

func (p *testProperty) ParseAttrs(r *Reader) error {
	return r.Attrs(
		Field(&p.Name, ParseString),
		Field(&p.Value, OptionalOf(ParseRefOr[*testMeasure])),
	)
}

func (p *testProperty) AppendAttrs(buf []byte) []byte {
	buf = AppendString(buf, p.Name)
	buf = append(buf, ',')
	return AppendOptional(buf, p.Value, AppendRefOr[*testMeasure])
}

type testSettings struct {
	Precision float64
}

func (*testSettings) Keyword() string { return "IFCTESTSETTINGS" }

func (s *testSettings) SetDefaults() {
	s.Precision = 1e-5
}

func (s *testSettings) ParseAttrs(r *Reader) error {
	return r.Attrs(Field(&s.Precision, ParseReal))
}

func (s *testSettings) AppendAttrs(buf []byte) []byte {
	return AppendReal(buf, s.Precision)
}

const testHeader = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION(('ViewDefinition [CoordinationView]'),'2;1');
FILE_NAME('model.ifc','2024-01-01T00:00:00',(''),(''),'','','');
FILE_SCHEMA(('TEST1'));
ENDSEC;
DATA;
`

const testFooter = `ENDSEC;
END-ISO-10303-21;
`

func testDoc(records ...string) string {
	var buf strings.Builder
	buf.WriteString(testHeader)
	for _, rec := range records {
		buf.WriteString(rec)
		buf.WriteByte('\n')
	}
	buf.WriteString(testFooter)
	return buf.String()
}

func newTestDoc(t testing.TB) *Document {
	return New(testSchema, Options{Logf: t.Logf, Verbose: testing.Verbose()})
}

func parseAttrs[T any, PT RecordPtr[T]](t testing.TB, attrs string) PT {
	t.Helper()
	rec := PT(new(T))
	r := NewReader(attrs, testSchema)
	err := rec.ParseAttrs(r)
	if err != nil {
		t.Fatalf("ParseAttrs(%q) failed: %v", attrs, err)
	}
	if !r.AtEnd() {
		t.Fatalf("ParseAttrs(%q) stopped at offset %d", attrs, r.Offset())
	}
	return rec
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}

func eq[T comparable](t testing.TB, a, e T) {
	if a != e {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}

func isnil[T any, P ~*T](t testing.TB, a P) {
	if a != nil {
		t.Helper()
		t.Errorf("** got &%v, wanted nil", *a)
	}
}

func isnonnil[T any](t testing.TB, a *T) {
	if a == nil {
		t.Helper()
		t.Errorf("** got nil %T, wanted non-nil", a)
	}
}

func success(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		t.Fatalf("** %v", err)
	}
}

func expectPanic[E error](t testing.TB, f func()) (result E) {
	t.Helper()
	defer func() {
		t.Helper()
		v := recover()
		if v == nil {
			t.Fatalf("** no panic, wanted %T", result)
		}
		e, ok := v.(E)
		if !ok {
			t.Fatalf("** panicked with %T %v, wanted %T", v, v, result)
		}
		result = e
	}()
	f()
	return
}
