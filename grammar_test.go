package ifc

import (
	"errors"
	"strings"
	"testing"
)

func TestAppendReal(t *testing.T) {
	tests := []struct {
		v float64
		e string
	}{
		{0, "0.0"},
		{4, "4.0"},
		{0.5, "0.5"},
		{-1.25, "-1.25"},
		{123456.789, "123456.789"},
		{0.00001, "0.00001"},
		{1e-7, "1.E-07"},
		{1.5e-7, "1.5E-07"},
		{1e15, "1.E+15"},
		{2.5e20, "2.5E+20"},
		{-3e-9, "-3.E-09"},
	}
	for _, tt := range tests {
		a := string(AppendReal(nil, tt.v))
		if a != tt.e {
			t.Errorf("AppendReal(%v) = %q, wanted %q", tt.v, a, tt.e)
		}
		back, err := ParseReal(NewReader(a, nil))
		if err != nil {
			t.Errorf("ParseReal(%q) failed: %v", a, err)
		} else if back != tt.v {
			t.Errorf("ParseReal(%q) = %v, wanted %v", a, back, tt.v)
		}
	}
}

func TestParseReal(t *testing.T) {
	tests := []struct {
		in string
		e  float64
	}{
		{"4.", 4},
		{"4.0", 4},
		{"-0.5", -0.5},
		{"+2", 2},
		{"1.E+20", 1e20},
		{"1.5e-3", 0.0015},
		{"  7.25 ", 7.25},
	}
	for _, tt := range tests {
		a, err := ParseReal(NewReader(tt.in, nil))
		if err != nil {
			t.Errorf("ParseReal(%q) failed: %v", tt.in, err)
		} else if a != tt.e {
			t.Errorf("ParseReal(%q) = %v, wanted %v", tt.in, a, tt.e)
		}
	}

	for _, in := range []string{"", "abc", "1.5E", "-"} {
		if _, err := ParseReal(NewReader(in, nil)); err == nil {
			t.Errorf("ParseReal(%q) succeeded, wanted error", in)
		}
	}
}

func TestParseInteger(t *testing.T) {
	v, err := ParseInteger(NewReader("-42", nil))
	success(t, err)
	eq(t, v, int64(-42))
	eq(t, string(AppendInteger(nil, v)), "-42")

	_, err = ParseInteger(NewReader("4.5", nil))
	if err == nil {
		t.Fatalf("ParseInteger(4.5) succeeded")
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		in string
		e  string
	}{
		{`''`, ""},
		{`'Masonry'`, "Masonry"},
		{`'it''s'`, "it's"},
		{`''''`, "'"},
		{`'a\X2\00E9\X0\b'`, `a\X2\00E9\X0\b`},
		{`'/* not a comment */'`, "/* not a comment */"},
	}
	for _, tt := range tests {
		a, err := ParseString(NewReader(tt.in, nil))
		if err != nil {
			t.Errorf("ParseString(%s) failed: %v", tt.in, err)
			continue
		}
		if a != tt.e {
			t.Errorf("ParseString(%s) = %q, wanted %q", tt.in, a, tt.e)
		}
		if back := string(AppendString(nil, a)); back != tt.in {
			t.Errorf("AppendString(%q) = %s, wanted %s", a, back, tt.in)
		}
	}

	_, err := ParseString(NewReader(`'abc`, nil))
	if err == nil || !strings.Contains(err.Error(), "unterminated string") {
		t.Fatalf("err = %v, wanted unterminated string", err)
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID(NewReader(" #12", nil))
	success(t, err)
	eq(t, id, ID(12))

	for _, in := range []string{"#0", "12", "#", "#x", "#18446744073709551615", "#18446744073709551616"} {
		if _, err := ParseID(NewReader(in, nil)); err == nil {
			t.Errorf("ParseID(%q) succeeded, wanted error", in)
		}
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		in  string
		e   []int64
		out string
	}{
		{"()", nil, "()"},
		{"(1)", []int64{1}, "(1)"},
		{"(1,2,3)", []int64{1, 2, 3}, "(1,2,3)"},
		{"( 1 ,\n 2 )", []int64{1, 2}, "(1,2)"},
		{"(1,/* two */2)", []int64{1, 2}, "(1,2)"},
	}
	for _, tt := range tests {
		a, err := ParseList(NewReader(tt.in, nil), ParseInteger)
		if err != nil {
			t.Errorf("ParseList(%q) failed: %v", tt.in, err)
			continue
		}
		deepEqual(t, a, tt.e)
		if out := string(AppendList(nil, a, AppendInteger)); out != tt.out {
			t.Errorf("AppendList(%v) = %q, wanted %q", a, out, tt.out)
		}
	}

	for _, in := range []string{"(1,2", "(", "(1 2)", "1,2", "(1,2,)", "(,)"} {
		_, err := ParseList(NewReader(in, nil), ParseInteger)
		if err == nil {
			t.Errorf("ParseList(%q) succeeded, wanted error", in)
		}
	}
}

func TestParseList_Nested(t *testing.T) {
	p := ListOf(ListOf(ParseReal))
	a, err := p(NewReader("((0.,0.),(1.,0.5))", nil))
	success(t, err)
	deepEqual(t, a, [][]float64{{0, 0}, {1, 0.5}})
	eq(t, string(AppendListOf(AppendListOf(AppendReal))(nil, a)), "((0.0,0.0),(1.0,0.5))")
}

func TestOptional_Distinction(t *testing.T) {
	absent, err := ParseOptional(NewReader("$", nil), ParseString)
	success(t, err)
	empty, err := ParseOptional(NewReader("''", nil), ParseString)
	success(t, err)

	eq(t, absent.Present, false)
	eq(t, empty.Present, true)
	eq(t, empty.Value, "")
	if absent == empty {
		t.Fatalf("absent and present-but-empty are equal")
	}
	eq(t, string(AppendOptional(nil, absent, AppendString)), "$")
	eq(t, string(AppendOptional(nil, empty, AppendString)), "''")

	eq(t, absent.OrElse("x"), "x")
	eq(t, Some("y").OrElse("x"), "y")
	eq(t, None[string]().Present, false)
}

func TestOmittedAndDerived(t *testing.T) {
	_, err := ParseOmitted(NewReader("$", nil))
	success(t, err)
	_, err = ParseOmitted(NewReader("'a'", nil))
	if err == nil {
		t.Fatalf("ParseOmitted('a') succeeded")
	}
	eq(t, string(AppendOmitted(nil, Omitted{})), "$")

	_, err = ParseDerived(NewReader("*", nil))
	success(t, err)
	eq(t, string(AppendDerived(nil, Derived{})), "*")
}

func TestPlaceholder(t *testing.T) {
	tests := []string{
		"$",
		"*",
		"#15",
		"'text, with ''quotes'''",
		".ELEMENT.",
		"(#1,#2,(3.,4.))",
		"IFCLABEL('x')",
		"-1.5E-03",
		`"0FF"`,
	}
	for _, in := range tests {
		r := NewReader(in+",next", nil)
		p, err := ParsePlaceholder(r)
		if err != nil {
			t.Errorf("ParsePlaceholder(%q) failed: %v", in, err)
			continue
		}
		eq(t, p.Raw(), in)
		eq(t, string(AppendPlaceholder(nil, p)), in)
		if !r.Consume(',') {
			t.Errorf("ParsePlaceholder(%q) consumed too much", in)
		}
	}

	var zero Placeholder
	eq(t, zero.Raw(), "$")
	eq(t, zero.IsOmitted(), true)
	eq(t, RawPlaceholder("#3").IsOmitted(), false)
}

func TestReader_Comments(t *testing.T) {
	r := NewReader("/* a */ 'x' // line\n , \t/**/ 'y'", nil)
	var a, b string
	err := r.Attrs(Field(&a, ParseString), Field(&b, ParseString))
	success(t, err)
	eq(t, a, "x")
	eq(t, b, "y")
	eq(t, r.AtEnd(), true)
}

func TestReader_AttrCountErrors(t *testing.T) {
	parse := func(src string) error {
		var a, b int64
		r := NewReader(src, nil)
		err := r.Attrs(Field(&a, ParseInteger), Field(&b, ParseInteger))
		if err == nil {
			err = r.closeAttrs()
		}
		return err
	}
	success(t, parse("1,2)"))

	err := parse("1)")
	if err == nil || !strings.Contains(err.Error(), "too few attributes") {
		t.Errorf("err = %v, wanted too few attributes", err)
	}
	err = parse("1,2,3)")
	if err == nil || !strings.Contains(err.Error(), "too many attributes") {
		t.Errorf("err = %v, wanted too many attributes", err)
	}
}

func TestReader_ErrorPosition(t *testing.T) {
	r := NewReader("'a',\n  'b',\n  x", nil)
	var a, b, c string
	err := r.Attrs(Field(&a, ParseString), Field(&b, ParseString), Field(&c, ParseString))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %T, wanted *ParseError", err)
	}
	eq(t, perr.Line, 3)
	eq(t, perr.Col, 3)
	eq(t, perr.Off, 14)
}
