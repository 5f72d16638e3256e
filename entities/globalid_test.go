package entities

import (
	"testing"

	"github.com/google/uuid"
)

func TestGlobalID_RoundTrip(t *testing.T) {
	tests := []struct {
		uuid string
		gid  string
	}{
		{"00000000-0000-0000-0000-000000000000", "0000000000000000000000"},
		{"ffffffff-ffff-ffff-ffff-ffffffffffff", "3$$$$$$$$$$$$$$$$$$$$$"},
	}
	for _, tt := range tests {
		u := uuid.MustParse(tt.uuid)
		eq(t, EncodeGlobalID(u), tt.gid)
		back, err := DecodeGlobalID(tt.gid)
		success(t, err)
		eq(t, back, u)
	}
}

func TestGlobalID_Random(t *testing.T) {
	for range 100 {
		u := uuid.New()
		gid := EncodeGlobalID(u)
		eq(t, len(gid), 22)
		back, err := DecodeGlobalID(gid)
		success(t, err)
		eq(t, back, u)
	}
	if NewGlobalID() == NewGlobalID() {
		t.Errorf("** NewGlobalID returned the same value twice")
	}
}

func TestGlobalID_Invalid(t *testing.T) {
	for _, s := range []string{"", "short", "4000000000000000000000", "000000000000000000000!"} {
		_, err := DecodeGlobalID(s)
		if err == nil {
			t.Errorf("** DecodeGlobalID(%q) succeeded, wanted error", s)
		}
	}
}
