// Package check finds references that do not resolve: ones pointing at a
// missing record, or at a record of a kind the attribute does not allow.
// The parser accepts such files (forward references are legal, and it has
// no way to know a file is complete until it ends), so this is a separate
// pass over a parsed document.
package check

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/andreyvit/ifc"
)

// Problem is one unresolvable reference.
type Problem struct {
	ID      ifc.ID // record holding the reference
	Keyword string
	Path    string // attribute path within the record, e.g. RelatedObjects[2]
	Target  ifc.ID
	Err     error // usually *ifc.KindError
}

func (p Problem) Error() string {
	return fmt.Sprintf("%v=%s.%s: %v", p.ID, p.Keyword, p.Path, p.Err)
}

func (p Problem) Unwrap() error {
	return p.Err
}

// Dangling returns every unresolvable reference in sh, in ascending ID
// order of the records holding them.
func Dangling(sh ifc.Storish) []Problem {
	w := &walker{sh: sh}
	for id, rec := range sh.RecordStore().All() {
		w.id, w.keyword = id, rec.Keyword()
		w.walk(reflect.ValueOf(rec), "")
	}
	return w.problems
}

// Err returns nil if sh has no dangling references, or all problems joined
// into one error.
func Err(sh ifc.Storish) error {
	problems := Dangling(sh)
	if len(problems) == 0 {
		return nil
	}
	errs := make([]error, len(problems))
	for i, p := range problems {
		errs[i] = p
	}
	return errors.Join(errs...)
}

// References calls f for every non-zero reference rec holds, inline values
// included.
func References(rec ifc.Record, f func(path string, id ifc.ID)) {
	w := &walker{visit: f}
	w.walk(reflect.ValueOf(rec), "")
}

type walker struct {
	sh       ifc.Storish
	visit    func(path string, id ifc.ID)
	id       ifc.ID
	keyword  string
	problems []Problem
}

func (w *walker) walk(v reflect.Value, path string) {
	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		w.walk(v.Elem(), path)
		return
	}

	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case optional:
			if !x.IsPresent() {
				return
			}
			w.walk(v.FieldByName("Value"), path)
			return
		case reference:
			if rec := inlineRecord(x); rec != nil {
				w.walk(reflect.ValueOf(rec), path)
				return
			}
			w.reference(x, path)
			return
		}
	}

	switch v.Kind() {
	case reflect.Struct:
		for _, f := range reflectType(v.Type()).fields {
			w.walk(v.FieldByIndex(f.index), join(path, f.name))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			w.walk(v.Index(i), path+"["+strconv.Itoa(i)+"]")
		}
	}
}

func (w *walker) reference(ref reference, path string) {
	target := ref.RefID()
	if w.visit != nil {
		if target != 0 {
			w.visit(path, target)
		}
		return
	}
	err := ref.Resolvable(w.sh)
	if err != nil {
		w.problems = append(w.problems, Problem{
			ID:      w.id,
			Keyword: w.keyword,
			Path:    path,
			Target:  target,
			Err:     err,
		})
	}
}

func inlineRecord(ref reference) ifc.Record {
	if in, ok := ref.(inline); ok {
		return in.InlineRecord()
	}
	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
