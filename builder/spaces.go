package builder

import (
	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/entities"
)

type SpaceParameter struct {
	// Coords is the closed footprint outline.
	Coords []entities.Vec2
	Height float64
	// Placement is relative to the storey.
	Placement entities.Vec3
}

func (st *Storey) SpaceType(name string, predefined entities.SpacePredefinedType) ifc.Ref[*entities.SpaceType] {
	p := st.project
	t := &entities.SpaceType{PredefinedType: predefined}
	t.Root = p.root(name)
	ref := ifc.Add(p.doc, t)
	p.types.declare(ref.ID())
	return ref
}

// Space adds a space whose footprint is extruded up by Height.
func (st *Storey) Space(spaceType ifc.Ref[*entities.SpaceType], name string, param SpaceParameter) ifc.Ref[*entities.Space] {
	p := st.project
	points := ifc.Add(p.doc, entities.PointList2D(param.Coords))
	curve := ifc.Add(p.doc, &entities.IndexedPolyCurve{Points: points})
	profile := &entities.ArbitraryClosedProfileDef{OuterCurve: retype[entities.AnyCurve](curve)}
	profile.ProfileType = entities.ProfileArea
	shape := p.extrusion(retype[entities.AnyProfileDef](ifc.Add(p.doc, profile)), param.Height)
	placement := p.placement(ifc.Some(st.placement), param.Placement)

	space := &entities.Space{PredefinedType: ifc.Some(spaceType.Get(p.doc).PredefinedType)}
	space.Product = p.product(name, placement, shape)
	space.CompositionType = ifc.Some(entities.CompositionElement)
	ref := ifc.Add(p.doc, space)

	st.spaces = append(st.spaces, ref.ID())
	p.types.add(spaceType.ID(), ref.ID())
	return ref
}
