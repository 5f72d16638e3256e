package ifc

import (
	"errors"
	"strconv"
	"testing"
)

func TestParseError_ErrorAndUnwrap(t *testing.T) {
	t.Run("record context", func(t *testing.T) {
		inner := errors.New("inner")
		err := error(&ParseError{Line: 8, Col: 21, ID: 3, Keyword: "IFCWALL", Msg: "oops", Err: inner})
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("err = %T, wanted *ParseError", err)
		}
		if !errors.Is(err, inner) {
			t.Fatalf("errors.Is(err, inner) = false, wanted true")
		}
		eq(t, err.Error(), "8:21: #3=IFCWALL: oops: inner")
	})

	t.Run("keyword only", func(t *testing.T) {
		err := &ParseError{Line: 2, Col: 1, Keyword: "FILE_NAME", Msg: "too few attributes"}
		eq(t, err.Error(), "2:1: FILE_NAME: too few attributes")
	})

	t.Run("position only", func(t *testing.T) {
		err := &ParseError{Line: 1, Col: 1, Msg: "expected ISO-10303-21;"}
		eq(t, err.Error(), "1:1: expected ISO-10303-21;")
	})
}

func TestParseError_WrapsStrconv(t *testing.T) {
	_, err := ParseInteger(NewReader("99999999999999999999", nil))
	if !errors.Is(err, strconv.ErrRange) {
		t.Fatalf("err = %v, wanted strconv.ErrRange", err)
	}
}

func TestKindError(t *testing.T) {
	err := &KindError{ID: 7, Want: "*entities.Wall", Got: "IFCWINDOW"}
	eq(t, err.Error(), "#7: record is IFCWINDOW, wanted *entities.Wall")
	eq(t, err.Missing(), false)

	err = &KindError{ID: 7, Want: "*entities.Wall"}
	eq(t, err.Error(), "#7: no such record, wanted *entities.Wall")
	eq(t, err.Missing(), true)
}

func TestWithRecord(t *testing.T) {
	err := withRecord(&ParseError{Line: 1, Col: 1, Msg: "x"}, 5, "IFCMATERIAL")
	eq(t, err.Error(), "1:1: #5=IFCMATERIAL: x")

	// inner context wins
	err = withRecord(&ParseError{Line: 1, Col: 1, ID: 2, Keyword: "IFCLABEL", Msg: "x"}, 5, "IFCMATERIAL")
	eq(t, err.Error(), "1:1: #2=IFCLABEL: x")

	plain := errors.New("plain")
	eq(t, withRecord(plain, 5, "IFCMATERIAL"), plain)
}
