package builder

import (
	"strings"
	"testing"
	"time"

	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/entities"
)

func newTestProject(t testing.TB) *Project {
	return New(Options{
		Name:         "Test",
		Author:       "Jane Doe",
		Organization: "ACME",
		Now:          func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) },
		Logf:         t.Logf,
		Verbose:      testing.Verbose(),
	})
}

func wallSetup(st *Storey) (ifc.Ref[*entities.MaterialLayerSetUsage], ifc.Ref[*entities.WallType]) {
	layer := st.MaterialLayer("ExampleMaterial", 0.02, false)
	set := st.MaterialLayerSet(layer)
	usage := st.MaterialLayerSetUsage(set, entities.Axis2, entities.Positive, 0)
	wallType := st.WallType(set, "ExampleWallType", entities.WallNotDefined)
	return usage, wallType
}

func TestBuild_Walls(t *testing.T) {
	p := newTestProject(t)
	st := p.Site("test", entities.Vec3{}).Building("test", entities.Vec3{}).Storey("test", 0)
	usage, wallType := wallSetup(st)
	wall := st.VerticalWall(usage, wallType, "ExampleWallDefault", VerticalWallParameter{
		Height: 2, Length: 4,
	})

	s := p.Build()
	roundTrip(t, s)

	doc := p.Document()
	w := wall.Get(doc)
	eq(t, w.Name.Value, "ExampleWallDefault")
	eq(t, w.PredefinedType.Value, entities.WallNotDefined)
	eq(t, countKind[*entities.RelDefinesByType](doc), 1)
	eq(t, countKind[*entities.RelAssociatesMaterial](doc), 2)
	eq(t, countKind[*entities.RelContainedInSpatialStructure](doc), 1)
	eq(t, countKind[*entities.RelAggregates](doc), 3)
}

func TestBuild_Windows(t *testing.T) {
	p := newTestProject(t)
	st := p.Site("test", entities.Vec3{}).Building("test", entities.Vec3{}).Storey("test", 0)
	usage, wallType := wallSetup(st)
	wall := st.VerticalWall(usage, wallType, "ExampleWallDefault", VerticalWallParameter{
		Height: 2, Length: 4,
	})
	opening := st.VerticalWallOpening(wall, "ExampleOpeningElement", VerticalOpeningParameter{
		Height: 0.5, Length: 0.5, Placement: entities.Vec3{X: 2, Z: 0.5},
	})
	windowType := st.WindowType("ExampleWindowType", entities.WindowWindow, entities.SinglePanel)
	constituent := st.MaterialConstituent("Wood", "Framing")
	constituentSet := st.MaterialConstituentSet(constituent)
	st.WallWindow(constituentSet, windowType, opening, "ExampleWindow", WindowParameter{
		Height: 0.5, Width: 0.5,
	})
	st.WallWindowWithOpening(constituentSet, windowType, wall, "Second", WindowParameter{
		Height: 1, Width: 0.8, Placement: entities.Vec3{X: 0.5, Z: 0.8},
	})

	s := p.Build()
	roundTrip(t, s)

	doc := p.Document()
	eq(t, countKind[*entities.OpeningElement](doc), 2)
	eq(t, countKind[*entities.Window](doc), 2)
	eq(t, countKind[*entities.RelVoidsElement](doc), 2)
	eq(t, countKind[*entities.RelFillsElement](doc), 2)

	for _, rel := range ifc.All[*entities.RelVoidsElement](doc) {
		eq(t, rel.RelatingBuildingElement.ID(), wall.ID())
	}
	for _, op := range ifc.All[*entities.OpeningElement](doc) {
		if op.Name.Value == "OpeningElementOfWindowSecond" {
			return
		}
	}
	t.Errorf("** opening for the second window not found")
}

func TestBuild_Spaces(t *testing.T) {
	p := newTestProject(t)
	st := p.Site("test", entities.Vec3{}).Building("test", entities.Vec3{}).Storey("test", 0)
	spaceType := st.SpaceType("ExampleSpaceType", entities.SpaceSpace)
	space := st.Space(spaceType, "ExampleSpaceDefault", SpaceParameter{
		Coords: []entities.Vec2{{0, 0}, {0, 4}, {2, 6}, {4, 4}, {4, 0}, {0, 0}},
		Height: 4,
	})

	s := p.Build()
	roundTrip(t, s)

	doc := p.Document()
	sp := space.Get(doc)
	eq(t, sp.PredefinedType.Value, entities.SpaceSpace)
	shape := sp.Representation.Value.Get(doc)
	repr := shape.Representations[0].Get(doc)
	solid := repr.Items[0].Get(doc).(*entities.ExtrudedAreaSolid)
	eq(t, solid.Depth, 4.0)
	profile := solid.SweptArea.Get(doc).(*entities.ArbitraryClosedProfileDef)
	curve := profile.OuterCurve.Get(doc).(*entities.IndexedPolyCurve)
	eq(t, len(curve.Points.Get(doc).CoordList), 6)
}

func TestBuild_SharedDirectionMaterializedOnce(t *testing.T) {
	p := newTestProject(t)
	st := p.Site("test", entities.Vec3{}).Building("test", entities.Vec3{}).Storey("test", 0)
	usage, wallType := wallSetup(st)
	for range 3 {
		st.VerticalWall(usage, wallType, "Wall", VerticalWallParameter{Height: 2, Length: 4})
	}
	p.Build()

	var zAxes int
	for _, d := range ifc.All[*entities.Direction](p.Document()) {
		if len(d.DirectionRatios) == 3 && d.DirectionRatios[2] == 1 {
			zAxes++
		}
	}
	eq(t, zAxes, 1)
}

func TestBuild_Idempotent(t *testing.T) {
	p := newTestProject(t)
	p.Site("test", entities.Vec3{})
	a := p.Build()
	b := p.Build()
	eq(t, a, b)
}

func TestBuild_Header(t *testing.T) {
	p := New(Options{
		Name:   "Haus Müller",
		Author: "Jane Doe",
		Now:    func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) },
	})
	s := p.Build()
	if !strings.Contains(s, `FILE_NAME('Haus M\X2\00FC\X0\ller.ifc','2024-01-01T00:00:00',('Jane Doe'),(''),`) {
		t.Errorf("** unexpected header in:\n%s", s)
	}
	if !strings.Contains(s, "FILE_SCHEMA(('IFC4'));") {
		t.Errorf("** FILE_SCHEMA missing in:\n%s", s)
	}
	name, err := ifc.DecodeText(p.Document().Header.Name)
	success(t, err)
	eq(t, name, "Haus Müller.ifc")
}

func TestVerticalWallOpening_UnknownWall(t *testing.T) {
	p := newTestProject(t)
	st := p.Site("test", entities.Vec3{}).Building("test", entities.Vec3{}).Storey("test", 0)
	defer func() {
		if recover() == nil {
			t.Errorf("** no panic for a foreign wall")
		}
	}()
	st.VerticalWallOpening(ifc.RefTo[*entities.Wall](999), "x", VerticalOpeningParameter{})
}

func roundTrip(t testing.TB, s string) {
	t.Helper()
	doc, err := ifc.Parse(s, entities.Schema, ifc.Options{})
	success(t, err)
	eq(t, doc.Render(), s)
}

func countKind[T ifc.Record](sh ifc.Storish) int {
	var n int
	for range ifc.All[T](sh) {
		n++
	}
	return n
}

func eq[T comparable](t testing.TB, a, e T) {
	if a != e {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}

func success(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		t.Fatalf("** %v", err)
	}
}
