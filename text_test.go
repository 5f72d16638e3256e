package ifc

import (
	"testing"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		in string
		e  string
	}{
		{`plain`, "plain"},
		{`caf\X2\00E9\X0\`, "café"},
		{`\X\E9t\X\E9`, "été"},
		{`\S\i`, "é"},
		{`a\\b`, `a\b`},
		{`\X2\041F04400438\X0\`, "При"},
		{`\X4\0001F600\X0\`, "😀"},
		{`\PA\x`, "x"},
		{`line\X\0Abreak`, "line\nbreak"},
	}
	for _, tt := range tests {
		a, err := DecodeText(tt.in)
		if err != nil {
			t.Errorf("DecodeText(%q) failed: %v", tt.in, err)
		} else if a != tt.e {
			t.Errorf("DecodeText(%q) = %q, wanted %q", tt.in, a, tt.e)
		}
	}

	for _, in := range []string{`\X2\00E9`, `\X\ZZ`, `\Q\`} {
		if _, err := DecodeText(in); err == nil {
			t.Errorf("DecodeText(%q) succeeded, wanted error", in)
		}
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		in string
		e  string
	}{
		{"plain", "plain"},
		{"café", `caf\X2\00E9\X0\`},
		{`a\b`, `a\\b`},
		{"tab\there", `tab\X\09here`},
		{"При", `\X2\041F04400438\X0\`},
	}
	for _, tt := range tests {
		a := EncodeText(tt.in)
		if a != tt.e {
			t.Errorf("EncodeText(%q) = %q, wanted %q", tt.in, a, tt.e)
		}
		back, err := DecodeText(a)
		if err != nil || back != tt.in {
			t.Errorf("DecodeText(EncodeText(%q)) = %q, %v", tt.in, back, err)
		}
	}
}

func TestEncodeText_Astral(t *testing.T) {
	s := "snow ☃ and 😀"
	back, err := DecodeText(EncodeText(s))
	success(t, err)
	eq(t, back, s)
}
