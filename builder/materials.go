package builder

import (
	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/entities"
)

// MaterialLayer adds a layer of a new material called name.
func (st *Storey) MaterialLayer(name string, thickness float64, ventilated bool) ifc.Ref[*entities.MaterialLayer] {
	p := st.project
	material := ifc.Add(p.doc, &entities.Material{Name: text(name)})
	isVentilated := ifc.False
	if ventilated {
		isVentilated = ifc.True
	}
	return ifc.Add(p.doc, &entities.MaterialLayer{
		Material:       ifc.Some(material),
		LayerThickness: thickness,
		IsVentilated:   ifc.Some(isVentilated),
	})
}

func (st *Storey) MaterialLayerSet(layers ...ifc.Ref[*entities.MaterialLayer]) ifc.Ref[*entities.MaterialLayerSet] {
	return ifc.Add(st.project.doc, &entities.MaterialLayerSet{MaterialLayers: layers})
}

func (st *Storey) MaterialLayerSetUsage(set ifc.Ref[*entities.MaterialLayerSet], direction entities.LayerSetDirection, sense entities.DirectionSense, offset float64) ifc.Ref[*entities.MaterialLayerSetUsage] {
	return ifc.Add(st.project.doc, &entities.MaterialLayerSetUsage{
		ForLayerSet:             set,
		LayerSetDirection:       direction,
		DirectionSense:          sense,
		OffsetFromReferenceLine: offset,
	})
}

// MaterialConstituent adds a constituent made of a new material called name.
func (st *Storey) MaterialConstituent(name, category string) ifc.Ref[*entities.MaterialConstituent] {
	p := st.project
	material := ifc.Add(p.doc, &entities.Material{Name: text(name)})
	return ifc.Add(p.doc, &entities.MaterialConstituent{
		Material: material,
		Category: optText(category),
	})
}

func (st *Storey) MaterialConstituentSet(constituents ...ifc.Ref[*entities.MaterialConstituent]) ifc.Ref[*entities.MaterialConstituentSet] {
	return ifc.Add(st.project.doc, &entities.MaterialConstituentSet{
		MaterialConstituents: ifc.Some(constituents),
	})
}

// layerSetThickness is the total thickness of the layer set behind usage.
func (p *Project) layerSetThickness(usage ifc.Ref[*entities.MaterialLayerSetUsage]) float64 {
	set := usage.Get(p.doc).ForLayerSet.Get(p.doc)
	return set.TotalThickness(p.doc)
}
