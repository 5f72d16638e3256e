package ifc

import (
	"fmt"
	"strings"
)

// ParseError reports malformed input. Off is a byte offset into the parsed
// text; Line and Col are 1-based. ID and Keyword identify the record being
// parsed, when known.
type ParseError struct {
	Off     int
	Line    int
	Col     int
	ID      ID
	Keyword string
	Msg     string
	Err     error
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%d:%d", e.Line, e.Col)
	if e.ID != 0 {
		buf.WriteString(": ")
		buf.WriteString(e.ID.String())
		if e.Keyword != "" {
			buf.WriteByte('=')
			buf.WriteString(e.Keyword)
		}
	} else if e.Keyword != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Keyword)
	}
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
	}
	if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}

// KindError is the panic value of Get and friends (and the error returned by
// TryGet) when a record is missing or is not of the requested kind.
type KindError struct {
	ID   ID
	Want string
	Got  string // keyword of the stored record; empty if missing
}

func (e *KindError) Missing() bool {
	return e.Got == ""
}

func (e *KindError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("%v: no such record, wanted %s", e.ID, e.Want)
	}
	return fmt.Sprintf("%v: record is %s, wanted %s", e.ID, e.Got, e.Want)
}
