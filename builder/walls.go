package builder

import (
	"fmt"

	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/entities"
)

type VerticalWallParameter struct {
	Height float64
	Length float64
	// Placement is relative to the storey.
	Placement entities.Vec3
}

type VerticalOpeningParameter struct {
	Height float64
	Length float64
	// Placement is relative to the wall.
	Placement entities.Vec3
}

// WallType adds a wall type made of set.
func (st *Storey) WallType(set ifc.Ref[*entities.MaterialLayerSet], name string, predefined entities.WallPredefinedType) ifc.Ref[*entities.WallType] {
	p := st.project
	wt := &entities.WallType{PredefinedType: predefined}
	wt.Root = p.root(name)
	ref := ifc.Add(p.doc, wt)
	p.types.declare(ref.ID())
	p.materials.add(set.ID(), ref.ID())
	return ref
}

// VerticalWall adds a straight wall running along +X from its placement,
// as thick as the layer set behind usage.
func (st *Storey) VerticalWall(usage ifc.Ref[*entities.MaterialLayerSetUsage], wallType ifc.Ref[*entities.WallType], name string, param VerticalWallParameter) ifc.Ref[*entities.Wall] {
	p := st.project
	thickness := p.layerSetThickness(usage)
	shape := p.extrusion(p.centeredRectangle(param.Length, thickness), param.Height)
	placement := p.placement(ifc.Some(st.placement), param.Placement)

	wall := &entities.Wall{}
	wall.Product = p.product(name, placement, shape)
	wall.PredefinedType = ifc.Some(wallType.Get(p.doc).PredefinedType)
	ref := ifc.Add(p.doc, wall)

	st.elements = append(st.elements, ref.ID())
	p.materials.add(usage.ID(), ref.ID())
	p.types.add(wallType.ID(), ref.ID())
	p.wallUsage[ref.ID()] = usage
	return ref
}

// VerticalWallOpening cuts an opening through the full thickness of wall.
func (st *Storey) VerticalWallOpening(wall ifc.Ref[*entities.Wall], name string, param VerticalOpeningParameter) ifc.Ref[*entities.OpeningElement] {
	p := st.project
	usage, ok := p.wallUsage[wall.ID()]
	if !ok {
		panic(fmt.Errorf("builder: %v is not a wall built by this project", wall.ID()))
	}
	thickness := p.layerSetThickness(usage)
	shape := p.extrusion(p.centeredRectangle(param.Length, thickness), param.Height)
	wallPlacement := wall.Get(p.doc).ObjectPlacement
	placement := p.placement(wallPlacement, param.Placement)

	opening := &entities.OpeningElement{PredefinedType: ifc.Some(entities.OpeningOpening)}
	opening.Product = p.product(name, placement, shape)
	ref := ifc.Add(p.doc, opening)

	p.voids = append(p.voids, [2]ifc.ID{wall.ID(), ref.ID()})
	p.openingToWall[ref.ID()] = wall
	return ref
}
