package ifc

import (
	"errors"
	"strings"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func rpad(s string, n int, pad rune) string {
	rem := n - len(s)
	if rem <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), rem)
}

// withRecord tags a parse error with the record it occurred in.
func withRecord(err error, id ID, keyword string) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		if perr.ID == 0 {
			perr.ID = id
		}
		if perr.Keyword == "" {
			perr.Keyword = keyword
		}
	}
	return err
}
