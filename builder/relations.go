package builder

import (
	"iter"

	"github.com/andreyvit/ifc"
)

// relation is one relating record with its related records, in the order
// they were added.
type relation struct {
	relating ifc.ID
	related  []ifc.ID
}

// relations groups related records by relating record, keeping first-seen
// order of both so that Build output is stable.
type relations struct {
	order []*relation
	byID  map[ifc.ID]*relation
}

// declare registers relating without any related records yet.
func (rs *relations) declare(relating ifc.ID) *relation {
	if rs.byID == nil {
		rs.byID = make(map[ifc.ID]*relation)
	}
	rel := rs.byID[relating]
	if rel == nil {
		rel = &relation{relating: relating}
		rs.byID[relating] = rel
		rs.order = append(rs.order, rel)
	}
	return rel
}

func (rs *relations) add(relating, related ifc.ID) {
	rel := rs.declare(relating)
	rel.related = append(rel.related, related)
}

// all yields non-empty relations.
func (rs *relations) all() iter.Seq[*relation] {
	return func(yield func(*relation) bool) {
		for _, rel := range rs.order {
			if len(rel.related) == 0 {
				continue
			}
			if !yield(rel) {
				return
			}
		}
	}
}

// retype reinterprets a reference as pointing at a more general kind. The
// record does not change, so this always resolves when ref does.
func retype[U, T ifc.Record](ref ifc.Ref[T]) ifc.Ref[U] {
	return ifc.RefTo[U](ref.ID())
}

func retypeIDs[U ifc.Record](ids []ifc.ID) []ifc.Ref[U] {
	refs := make([]ifc.Ref[U], 0, len(ids))
	for _, id := range ids {
		refs = append(refs, ifc.RefTo[U](id))
	}
	return refs
}
