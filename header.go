package ifc

// Header is the HEADER section of a document. Strings are kept undecoded,
// like record strings.
type Header struct {
	Description         []string // FILE_DESCRIPTION.description
	ImplementationLevel string   // FILE_DESCRIPTION.implementation_level

	Name                string
	TimeStamp           string
	Author              []string
	Organization        []string
	PreprocessorVersion string
	OriginatingSystem   string
	Authorization       string

	Schemas []string // FILE_SCHEMA
}

const (
	fileDescriptionKeyword = "FILE_DESCRIPTION"
	fileNameKeyword        = "FILE_NAME"
	fileSchemaKeyword      = "FILE_SCHEMA"
)

// DefaultHeader returns the header New uses for a document of schema scm.
func DefaultHeader(scm *Schema) Header {
	return Header{
		Description:         []string{"ViewDefinition [CoordinationView]"},
		ImplementationLevel: "2;1",
		Author:              []string{""},
		Organization:        []string{""},
		Schemas:             []string{scm.Name()},
	}
}

func (h *Header) parseEntry(r *Reader, keyword string) error {
	switch keyword {
	case fileDescriptionKeyword:
		return r.Attrs(
			Field(&h.Description, ListOf(ParseString)),
			Field(&h.ImplementationLevel, ParseString),
		)
	case fileNameKeyword:
		return r.Attrs(
			Field(&h.Name, ParseString),
			Field(&h.TimeStamp, ParseString),
			Field(&h.Author, ListOf(ParseString)),
			Field(&h.Organization, ListOf(ParseString)),
			Field(&h.PreprocessorVersion, ParseString),
			Field(&h.OriginatingSystem, ParseString),
			Field(&h.Authorization, ParseString),
		)
	case fileSchemaKeyword:
		return r.Attrs(
			Field(&h.Schemas, ListOf(ParseString)),
		)
	default:
		return r.Errorf("unknown header entry %s", keyword)
	}
}

func (h *Header) parse(r *Reader) error {
	err := r.expectSection("HEADER")
	if err != nil {
		return err
	}
	seen := make(map[string]bool, 3)
	for {
		r.skipSpace()
		start := r.Offset()
		kw, err := r.Keyword()
		if err != nil {
			return err
		}
		if kw == "ENDSEC" {
			return r.Expect(';')
		}
		if seen[kw] {
			return r.errorAt(start, nil, "duplicate header entry %s", kw)
		}
		seen[kw] = true
		err = r.Expect('(')
		if err == nil {
			err = h.parseEntry(r, kw)
		}
		if err == nil {
			err = r.closeAttrs()
		}
		if err == nil {
			err = r.Expect(';')
		}
		if err != nil {
			return withRecord(err, 0, kw)
		}
	}
}

func (h *Header) appendTo(buf []byte) []byte {
	buf = append(buf, "HEADER;\n"...)

	buf = append(buf, fileDescriptionKeyword...)
	buf = append(buf, '(')
	buf = AppendList(buf, h.Description, AppendString)
	buf = append(buf, ',')
	buf = AppendString(buf, h.ImplementationLevel)
	buf = append(buf, ");\n"...)

	buf = append(buf, fileNameKeyword...)
	buf = append(buf, '(')
	buf = AppendString(buf, h.Name)
	buf = append(buf, ',')
	buf = AppendString(buf, h.TimeStamp)
	buf = append(buf, ',')
	buf = AppendList(buf, h.Author, AppendString)
	buf = append(buf, ',')
	buf = AppendList(buf, h.Organization, AppendString)
	buf = append(buf, ',')
	buf = AppendString(buf, h.PreprocessorVersion)
	buf = append(buf, ',')
	buf = AppendString(buf, h.OriginatingSystem)
	buf = append(buf, ',')
	buf = AppendString(buf, h.Authorization)
	buf = append(buf, ");\n"...)

	buf = append(buf, fileSchemaKeyword...)
	buf = append(buf, '(')
	buf = AppendList(buf, h.Schemas, AppendString)
	buf = append(buf, ");\n"...)

	return append(buf, "ENDSEC;\n"...)
}
