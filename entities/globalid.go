package entities

import (
	"fmt"

	"github.com/google/uuid"
)

const globalIDChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_$"

// NewGlobalID returns a fresh 22-character IfcGloballyUniqueId.
func NewGlobalID() string {
	return EncodeGlobalID(uuid.New())
}

// EncodeGlobalID compresses a UUID into the 22-character IFC form: the first
// byte becomes two characters, each following 3-byte group becomes four.
func EncodeGlobalID(u uuid.UUID) string {
	var out [22]byte
	out[0] = globalIDChars[u[0]>>6]
	out[1] = globalIDChars[u[0]&63]
	for i := 0; i < 5; i++ {
		n := uint32(u[1+3*i])<<16 | uint32(u[2+3*i])<<8 | uint32(u[3+3*i])
		for j := 3; j >= 0; j-- {
			out[2+4*i+j] = globalIDChars[n&63]
			n >>= 6
		}
	}
	return string(out[:])
}

// DecodeGlobalID is the inverse of EncodeGlobalID.
func DecodeGlobalID(s string) (uuid.UUID, error) {
	var u uuid.UUID
	if len(s) != 22 {
		return u, fmt.Errorf("invalid GlobalId %q: length %d, wanted 22", s, len(s))
	}
	var vals [22]uint32
	for i := 0; i < len(s); i++ {
		v := globalIDValue(s[i])
		if v < 0 {
			return u, fmt.Errorf("invalid GlobalId %q: bad character %q", s, s[i])
		}
		vals[i] = uint32(v)
	}
	if vals[0] > 3 {
		return u, fmt.Errorf("invalid GlobalId %q: out of range", s)
	}
	u[0] = byte(vals[0]<<6 | vals[1])
	for i := 0; i < 5; i++ {
		n := vals[2+4*i]<<18 | vals[3+4*i]<<12 | vals[4+4*i]<<6 | vals[5+4*i]
		u[1+3*i] = byte(n >> 16)
		u[2+3*i] = byte(n >> 8)
		u[3+3*i] = byte(n)
	}
	return u, nil
}

func globalIDValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 36
	case c == '_':
		return 62
	case c == '$':
		return 63
	default:
		return -1
	}
}
