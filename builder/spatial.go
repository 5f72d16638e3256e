package builder

import (
	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/entities"
)

type Site struct {
	project   *Project
	ref       ifc.Ref[*entities.Site]
	placement ifc.Ref[*entities.LocalPlacement]
	buildings []*Building
}

// Site adds a site placed at placement in world coordinates.
func (p *Project) Site(name string, placement entities.Vec3) *Site {
	s := &Site{project: p}
	s.placement = p.placement(ifc.None[ifc.Ref[*entities.LocalPlacement]](), placement)
	site := &entities.Site{}
	site.Product = p.product(name, s.placement, ifc.Ref[*entities.ProductDefinitionShape]{})
	site.CompositionType = ifc.Some(entities.CompositionElement)
	s.ref = ifc.Add(p.doc, site)
	p.sites = append(p.sites, s)
	return s
}

func (s *Site) Ref() ifc.Ref[*entities.Site] {
	return s.ref
}

func (s *Site) emitRelationships() {
	var ids []ifc.ID
	for _, b := range s.buildings {
		ids = append(ids, b.ref.ID())
	}
	s.project.aggregate(s.ref.ID(), ids)
	for _, b := range s.buildings {
		b.emitRelationships()
	}
}

type Building struct {
	project   *Project
	ref       ifc.Ref[*entities.Building]
	placement ifc.Ref[*entities.LocalPlacement]
	storeys   []*Storey
}

// Building adds a building placed relative to the site.
func (s *Site) Building(name string, placement entities.Vec3) *Building {
	p := s.project
	b := &Building{project: p}
	b.placement = p.placement(ifc.Some(s.placement), placement)
	building := &entities.Building{}
	building.Product = p.product(name, b.placement, ifc.Ref[*entities.ProductDefinitionShape]{})
	building.CompositionType = ifc.Some(entities.CompositionElement)
	b.ref = ifc.Add(p.doc, building)
	s.buildings = append(s.buildings, b)
	return b
}

func (b *Building) Ref() ifc.Ref[*entities.Building] {
	return b.ref
}

func (b *Building) emitRelationships() {
	var ids []ifc.ID
	for _, st := range b.storeys {
		ids = append(ids, st.ref.ID())
	}
	b.project.aggregate(b.ref.ID(), ids)
	for _, st := range b.storeys {
		st.emitRelationships()
	}
}

// Storey is where walls, openings, windows and spaces are created.
type Storey struct {
	project   *Project
	ref       ifc.Ref[*entities.BuildingStorey]
	placement ifc.Ref[*entities.LocalPlacement]

	elements []ifc.ID // contained walls and windows
	spaces   []ifc.ID
}

// Storey adds a storey at the given elevation above the building.
func (b *Building) Storey(name string, elevation float64) *Storey {
	p := b.project
	st := &Storey{project: p}
	st.placement = p.placement(ifc.Some(b.placement), entities.Vec3{Z: elevation})
	storey := &entities.BuildingStorey{}
	storey.Product = p.product(name, st.placement, ifc.Ref[*entities.ProductDefinitionShape]{})
	storey.CompositionType = ifc.Some(entities.CompositionElement)
	storey.Elevation = ifc.Some(elevation)
	st.ref = ifc.Add(p.doc, storey)
	b.storeys = append(b.storeys, st)
	return st
}

func (st *Storey) Ref() ifc.Ref[*entities.BuildingStorey] {
	return st.ref
}

func (st *Storey) emitRelationships() {
	st.project.contain(st.ref.ID(), st.elements)
	st.project.aggregate(st.ref.ID(), st.spaces)
}
