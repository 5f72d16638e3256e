package ifc

import (
	"slices"
	"testing"
)

func TestStore_InsertGetRemove(t *testing.T) {
	doc := newTestDoc(t)

	_, existed := Insert(doc, 3, &testMaterial{Name: "Brick"})
	eq(t, existed, false)

	m := Get[*testMaterial](doc, 3)
	eq(t, m.Name, "Brick")

	m.Name = "Concrete"
	eq(t, Get[*testMaterial](doc, 3).Name, "Concrete")

	prev, existed := Insert(doc, 3, &testMaterial{Name: "Timber"})
	eq(t, existed, true)
	eq(t, prev.Name, "Concrete")
	eq(t, Get[*testMaterial](doc, 3).Name, "Timber")

	old, found := Remove[*testMaterial](doc, 3)
	eq(t, found, true)
	eq(t, old.Name, "Timber")
	eq(t, doc.RecordStore().Contains(3), false)

	_, found = Remove[*testMaterial](doc, 3)
	eq(t, found, false)
}

func TestStore_IterationOrder(t *testing.T) {
	s := NewStore()
	for _, id := range []ID{7, 2, 9, 1, 5} {
		s.Put(id, &testPoint{Coords: []float64{float64(id)}})
	}
	var ids []ID
	for id := range s.All() {
		ids = append(ids, id)
	}
	deepEqual(t, ids, []ID{1, 2, 5, 7, 9})
	deepEqual(t, s.IDs(), []ID{1, 2, 5, 7, 9})
	eq(t, s.Max(), ID(9))
	eq(t, s.Len(), 5)
}

func TestStore_RemoveDuringIteration(t *testing.T) {
	s := NewStore()
	for id := ID(1); id <= 4; id++ {
		s.Put(id, &testPoint{})
	}
	var visited []ID
	for id := range s.All() {
		visited = append(visited, id)
		if id == 2 {
			s.RemoveUntyped(3)
			s.Put(10, &testPoint{})
		}
	}
	deepEqual(t, visited, []ID{1, 2, 4})
	deepEqual(t, s.IDs(), []ID{1, 2, 4, 10})
}

func TestStore_NewIDAfterExplicitInsert(t *testing.T) {
	doc := newTestDoc(t)
	Insert(doc, 10, &testMaterial{Name: "Brick"})
	id := doc.NewID()
	if id <= 10 {
		t.Fatalf("NewID() = %v, wanted > #10", id)
	}

	// lower explicit IDs do not move the allocator back
	Insert(doc, 4, &testMaterial{Name: "Glass"})
	next := doc.NewID()
	if next <= id {
		t.Fatalf("NewID() = %v, wanted > %v", next, id)
	}
}

func TestStore_AllocatorNeverCollides(t *testing.T) {
	doc := newTestDoc(t)
	seen := make(map[ID]bool)
	for i := 0; i < 50; i++ {
		var id ID
		if i%7 == 3 {
			id = doc.RecordStore().Max() + ID(i)
			Insert(doc, id, &testPoint{})
		} else {
			id = Add(doc, &testPoint{}).ID()
		}
		if seen[id] {
			t.Fatalf("ID %v handed out twice", id)
		}
		seen[id] = true
		if a := doc.RecordStore().alloc.Peek(); a <= doc.RecordStore().Max() {
			t.Fatalf("allocator at %v, max ID is %v", a, doc.RecordStore().Max())
		}
	}
	eq(t, doc.Len(), 50)
}

func TestStore_RemovedIDsAreNotReused(t *testing.T) {
	doc := newTestDoc(t)
	ref := Add(doc, &testPoint{})
	Remove[*testPoint](doc, ref.ID())
	eq(t, doc.Len(), 0)
	next := Add(doc, &testPoint{})
	if next.ID() == ref.ID() {
		t.Fatalf("removed ID %v reused", ref.ID())
	}
}

func TestStore_HighWater(t *testing.T) {
	doc := newTestDoc(t)
	s := doc.RecordStore()
	eq(t, s.HighWater(), ID(0))
	ref := Add(doc, &testPoint{})
	Remove[*testPoint](doc, ref.ID())
	eq(t, s.HighWater(), ref.ID())

	s.Observe(40)
	eq(t, s.HighWater(), ID(40))
	eq(t, s.NewID(), ID(41))
}

func TestGet_WrongKindPanics(t *testing.T) {
	doc := newTestDoc(t)
	Insert(doc, 1, &testPoint{})
	err := expectPanic[*KindError](t, func() {
		Get[*testMaterial](doc, 1)
	})
	eq(t, err.ID, ID(1))
	eq(t, err.Got, "IFCCARTESIANPOINT")
	eq(t, err.Want, "*ifc.testMaterial")
	eq(t, err.Missing(), false)
}

func TestGet_MissingPanics(t *testing.T) {
	doc := newTestDoc(t)
	err := expectPanic[*KindError](t, func() {
		Get[*testMaterial](doc, 42)
	})
	eq(t, err.Missing(), true)
	eq(t, err.Error(), "#42: no such record, wanted *ifc.testMaterial")
}

func TestTryGet(t *testing.T) {
	doc := newTestDoc(t)
	Insert(doc, 1, &testPoint{Coords: []float64{1, 2}})

	p, err := TryGet[*testPoint](doc, 1)
	success(t, err)
	deepEqual(t, p.Coords, []float64{1, 2})

	m, err := TryGet[*testMaterial](doc, 1)
	isnil(t, m)
	if err == nil {
		t.Fatalf("TryGet succeeded for a record of another kind")
	}
	eq(t, err.Error(), "#1: record is IFCCARTESIANPOINT, wanted *ifc.testMaterial")
}

func TestInsert_ReplacingOtherKindPanics(t *testing.T) {
	doc := newTestDoc(t)
	Insert(doc, 1, &testPoint{})
	expectPanic[*KindError](t, func() {
		Insert(doc, 1, &testMaterial{})
	})
}

func TestRemove_OtherKindPanics(t *testing.T) {
	doc := newTestDoc(t)
	Insert(doc, 1, &testPoint{})
	expectPanic[*KindError](t, func() {
		Remove[*testMaterial](doc, 1)
	})
	eq(t, doc.RecordStore().Contains(1), true)
}

func TestInsertDefaultIfAbsent(t *testing.T) {
	doc := newTestDoc(t)

	s := InsertDefaultIfAbsent[testSettings](doc, 5)
	eq(t, s.Precision, 1e-5)

	s.Precision = 0.01
	again := InsertDefaultIfAbsent[testSettings](doc, 5)
	eq(t, again, s)
	eq(t, again.Precision, 0.01)

	m := InsertDefaultIfAbsent[testMaterial](doc, 6)
	eq(t, m.Name, "")
	eq(t, m.Description.Present, false)
}

func TestRemoveUntyped(t *testing.T) {
	doc := newTestDoc(t)
	Insert(doc, 1, &testMaterial{Name: "Brick"})
	rec := doc.RecordStore().RemoveUntyped(1)
	eq(t, rec.Keyword(), "IFCMATERIAL")
	eq(t, string(rec.AppendAttrs(nil)), "'Brick',$,$")
	if rec := doc.RecordStore().RemoveUntyped(1); rec != nil {
		t.Fatalf("RemoveUntyped(#1) = %v, wanted nil", rec)
	}
}

func TestAllOfKind(t *testing.T) {
	doc := newTestDoc(t)
	Insert(doc, 4, &testMaterial{Name: "B"})
	Insert(doc, 1, &testPoint{})
	Insert(doc, 2, &testMaterial{Name: "A"})

	var names []string
	var ids []ID
	for ref, m := range All[*testMaterial](doc) {
		ids = append(ids, ref.ID())
		names = append(names, m.Name)
	}
	deepEqual(t, ids, []ID{2, 4})
	deepEqual(t, names, []string{"A", "B"})
}

func TestStore_PutInvalid(t *testing.T) {
	s := NewStore()
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("Put(#0) did not panic")
			}
		}()
		s.Put(0, &testPoint{})
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("Put(nil) did not panic")
			}
		}()
		var p *testPoint
		s.Put(1, p)
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("Put(MaxID+1) did not panic")
			}
		}()
		s.Put(MaxID+1, &testPoint{})
	}()
	eq(t, s.Len(), 0)
}

func TestAllocator(t *testing.T) {
	var a Allocator
	eq(t, a.Peek(), ID(1))
	eq(t, a.Next(), ID(1))
	a.Observe(7)
	eq(t, a.Next(), ID(8))
	a.Observe(3)
	eq(t, a.Next(), ID(9))
	ids := []ID{a.Next(), a.Next()}
	if !slices.IsSorted(ids) || ids[0] == ids[1] {
		t.Fatalf("Next() = %v, wanted increasing", ids)
	}
}

func TestAllocator_Exhausted(t *testing.T) {
	var a Allocator
	a.Observe(MaxID - 1)
	eq(t, a.Next(), MaxID)
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("Next() after MaxID did not panic")
			}
		}()
		a.Next()
	}()

	var b Allocator
	b.Observe(MaxID)
	eq(t, b.Peek(), MaxID+1)
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("Next() after Observe(MaxID) did not panic")
			}
		}()
		b.Next()
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("Observe(MaxID+1) did not panic")
			}
		}()
		b.Observe(MaxID + 1)
	}()
}
