package builder

import (
	"fmt"

	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/entities"
)

type WindowParameter struct {
	Height float64
	Width  float64
	// Placement is relative to the opening.
	Placement entities.Vec3
}

func (st *Storey) WindowType(name string, predefined entities.WindowPredefinedType, partitioning entities.WindowPartitioning) ifc.Ref[*entities.WindowType] {
	p := st.project
	wt := &entities.WindowType{
		PredefinedType:   predefined,
		PartitioningType: partitioning,
	}
	wt.Root = p.root(name)
	ref := ifc.Add(p.doc, wt)
	p.types.declare(ref.ID())
	return ref
}

// WallWindow fills opening, which must belong to a wall, with a window a
// third as thick as the wall, centered in the wall's depth.
func (st *Storey) WallWindow(material ifc.Ref[*entities.MaterialConstituentSet], windowType ifc.Ref[*entities.WindowType], opening ifc.Ref[*entities.OpeningElement], name string, param WindowParameter) ifc.Ref[*entities.Window] {
	p := st.project
	wall, ok := p.openingToWall[opening.ID()]
	if !ok {
		panic(fmt.Errorf("builder: %v is not an opening in a wall", opening.ID()))
	}
	thickness := p.layerSetThickness(p.wallUsage[wall.ID()]) / 3
	shape := p.extrusion(p.centeredRectangle(param.Width, thickness), param.Height)
	placement := p.placement(opening.Get(p.doc).ObjectPlacement, param.Placement.Add(entities.Vec3{Y: thickness}))

	wt := windowType.Get(p.doc)
	window := &entities.Window{
		OverallHeight:    ifc.Some(param.Height),
		OverallWidth:     ifc.Some(param.Width),
		PredefinedType:   ifc.Some(wt.PredefinedType),
		PartitioningType: ifc.Some(wt.PartitioningType),
	}
	window.Product = p.product(name, placement, shape)
	ref := ifc.Add(p.doc, window)

	ifc.Add(p.doc, &entities.RelFillsElement{
		Root:                   p.root(""),
		RelatingOpeningElement: opening,
		RelatedBuildingElement: retype[entities.AnyElement](ref),
	})
	st.elements = append(st.elements, ref.ID())
	p.materials.add(material.ID(), ref.ID())
	p.types.add(windowType.ID(), ref.ID())
	return ref
}

// WallWindowWithOpening cuts a window-sized opening into wall and fills it.
func (st *Storey) WallWindowWithOpening(material ifc.Ref[*entities.MaterialConstituentSet], windowType ifc.Ref[*entities.WindowType], wall ifc.Ref[*entities.Wall], name string, param WindowParameter) ifc.Ref[*entities.Window] {
	opening := st.VerticalWallOpening(wall, "OpeningElementOfWindow"+name, VerticalOpeningParameter{
		Height:    param.Height,
		Length:    param.Width,
		Placement: param.Placement,
	})
	return st.WallWindow(material, windowType, opening, name, WindowParameter{
		Height: param.Height,
		Width:  param.Width,
	})
}
