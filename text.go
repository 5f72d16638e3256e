package ifc

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var (
	utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	utf32be = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
)

// DecodeText resolves STEP string escapes (`\\`, `\S\c`, `\X\hh`,
// `\X2\...\X0\`, `\X4\...\X0\`, `\PA\`) into plain UTF-8. Strings in records
// are stored undecoded so that they render back exactly.
func DecodeText(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var buf strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			buf.WriteByte(c)
			i++
			continue
		}
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, `\\`):
			buf.WriteByte('\\')
			i += 2
		case strings.HasPrefix(rest, `\S\`) && len(rest) >= 4:
			buf.WriteRune(charmap.ISO8859_1.DecodeByte(rest[3] + 0x80))
			i += 4
		case strings.HasPrefix(rest, `\X\`) && len(rest) >= 5:
			b, err := hex.DecodeString(rest[3:5])
			if err != nil {
				return "", fmt.Errorf("invalid \\X\\ escape at %d: %w", i, err)
			}
			buf.WriteRune(charmap.ISO8859_1.DecodeByte(b[0]))
			i += 5
		case strings.HasPrefix(rest, `\X2\`), strings.HasPrefix(rest, `\X4\`):
			end := strings.Index(rest[4:], `\X0\`)
			if end < 0 {
				return "", fmt.Errorf("unterminated %s escape at %d", rest[:4], i)
			}
			raw, err := hex.DecodeString(rest[4 : 4+end])
			if err != nil {
				return "", fmt.Errorf("invalid %s escape at %d: %w", rest[:4], i, err)
			}
			dec := utf16be.NewDecoder()
			if rest[2] == '4' {
				dec = utf32be.NewDecoder()
			}
			out, err := dec.Bytes(raw)
			if err != nil {
				return "", fmt.Errorf("invalid %s escape at %d: %w", rest[:4], i, err)
			}
			buf.Write(out)
			i += 4 + end + 4
		case strings.HasPrefix(rest, `\P`) && len(rest) >= 4 && rest[3] == '\\':
			i += 4
		default:
			return "", fmt.Errorf("invalid escape at %d", i)
		}
	}
	return buf.String(), nil
}

// EncodeText escapes arbitrary UTF-8 text for storage in a STEP string.
// Printable ASCII is kept, everything else goes into `\X2\` runs.
func EncodeText(s string) string {
	var buf strings.Builder
	var run []rune
	flush := func() {
		if len(run) == 0 {
			return
		}
		raw, err := utf16be.NewEncoder().String(string(run))
		if err != nil {
			panic(fmt.Errorf("ifc: encoding %q: %w", string(run), err))
		}
		buf.WriteString(`\X2\`)
		buf.WriteString(strings.ToUpper(hex.EncodeToString([]byte(raw))))
		buf.WriteString(`\X0\`)
		run = run[:0]
	}
	for _, r := range s {
		switch {
		case r == '\\':
			flush()
			buf.WriteString(`\\`)
		case r >= 0x20 && r < 0x7F:
			flush()
			buf.WriteRune(r)
		case r < 0x20:
			flush()
			fmt.Fprintf(&buf, `\X\%02X`, r)
		default:
			run = append(run, r)
		}
	}
	flush()
	return buf.String()
}
