package entities

import "github.com/andreyvit/ifc"

// AnyMaterial is anything IfcRelAssociatesMaterial can point at
// (IfcMaterialSelect).
type AnyMaterial interface {
	ifc.Record
	materialSelect()
}

type Material struct {
	Name        string
	Description ifc.Optional[string]
	Category    ifc.Optional[string]
}

func (*Material) Keyword() string { return "IFCMATERIAL" }
func (*Material) materialSelect() {}

func (v *Material) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Name, ifc.ParseString),
		ifc.Field(&v.Description, parseOptString),
		ifc.Field(&v.Category, parseOptString),
	)
}

func (v *Material) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendString(buf, v.Name))
	buf = comma(appendOptString(buf, v.Description))
	return appendOptString(buf, v.Category)
}

type MaterialLayer struct {
	Material       ifc.Optional[ifc.Ref[*Material]]
	LayerThickness float64
	IsVentilated   ifc.Optional[ifc.Logical]
	Name           ifc.Optional[string]
	Description    ifc.Optional[string]
	Category       ifc.Optional[string]
	Priority       ifc.Optional[int64]
}

func (*MaterialLayer) Keyword() string { return "IFCMATERIALLAYER" }
func (*MaterialLayer) materialSelect() {}

func (v *MaterialLayer) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Material, parseOptRef[*Material]),
		ifc.Field(&v.LayerThickness, ifc.ParseReal),
		ifc.Field(&v.IsVentilated, parseOptEnum(ifc.Logicals)),
		ifc.Field(&v.Name, parseOptString),
		ifc.Field(&v.Description, parseOptString),
		ifc.Field(&v.Category, parseOptString),
		ifc.Field(&v.Priority, parseOptInteger),
	)
}

func (v *MaterialLayer) AppendAttrs(buf []byte) []byte {
	buf = comma(appendOptRef(buf, v.Material))
	buf = comma(ifc.AppendReal(buf, v.LayerThickness))
	buf = comma(appendOptEnum(buf, ifc.Logicals, v.IsVentilated))
	buf = comma(appendOptString(buf, v.Name))
	buf = comma(appendOptString(buf, v.Description))
	buf = comma(appendOptString(buf, v.Category))
	return appendOptInteger(buf, v.Priority)
}

type MaterialLayerSet struct {
	MaterialLayers []ifc.Ref[*MaterialLayer]
	LayerSetName   ifc.Optional[string]
	Description    ifc.Optional[string]
}

func (*MaterialLayerSet) Keyword() string { return "IFCMATERIALLAYERSET" }
func (*MaterialLayerSet) materialSelect() {}

// TotalThickness sums the thickness of every layer.
func (v *MaterialLayerSet) TotalThickness(sh ifc.Storish) float64 {
	var total float64
	for _, ref := range v.MaterialLayers {
		total += ref.Get(sh).LayerThickness
	}
	return total
}

func (v *MaterialLayerSet) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.MaterialLayers, parseRefs[*MaterialLayer]),
		ifc.Field(&v.LayerSetName, parseOptString),
		ifc.Field(&v.Description, parseOptString),
	)
}

func (v *MaterialLayerSet) AppendAttrs(buf []byte) []byte {
	buf = comma(appendRefs(buf, v.MaterialLayers))
	buf = comma(appendOptString(buf, v.LayerSetName))
	return appendOptString(buf, v.Description)
}

type MaterialLayerSetUsage struct {
	ForLayerSet             ifc.Ref[*MaterialLayerSet]
	LayerSetDirection       LayerSetDirection
	DirectionSense          DirectionSense
	OffsetFromReferenceLine float64
	ReferenceExtent         ifc.Optional[float64]
}

func (*MaterialLayerSetUsage) Keyword() string { return "IFCMATERIALLAYERSETUSAGE" }
func (*MaterialLayerSetUsage) materialSelect() {}

func (v *MaterialLayerSetUsage) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.ForLayerSet, ifc.ParseRef[*MaterialLayerSet]),
		ifc.Field(&v.LayerSetDirection, LayerSetDirections.Parse),
		ifc.Field(&v.DirectionSense, DirectionSenses.Parse),
		ifc.Field(&v.OffsetFromReferenceLine, ifc.ParseReal),
		ifc.Field(&v.ReferenceExtent, parseOptReal),
	)
}

func (v *MaterialLayerSetUsage) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendRef(buf, v.ForLayerSet))
	buf = comma(LayerSetDirections.Append(buf, v.LayerSetDirection))
	buf = comma(DirectionSenses.Append(buf, v.DirectionSense))
	buf = comma(ifc.AppendReal(buf, v.OffsetFromReferenceLine))
	return appendOptReal(buf, v.ReferenceExtent)
}

type MaterialConstituent struct {
	Name        ifc.Optional[string]
	Description ifc.Optional[string]
	Material    ifc.Ref[*Material]
	Fraction    ifc.Optional[float64]
	Category    ifc.Optional[string]
}

func (*MaterialConstituent) Keyword() string { return "IFCMATERIALCONSTITUENT" }
func (*MaterialConstituent) materialSelect() {}

func (v *MaterialConstituent) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Name, parseOptString),
		ifc.Field(&v.Description, parseOptString),
		ifc.Field(&v.Material, ifc.ParseRef[*Material]),
		ifc.Field(&v.Fraction, parseOptReal),
		ifc.Field(&v.Category, parseOptString),
	)
}

func (v *MaterialConstituent) AppendAttrs(buf []byte) []byte {
	buf = comma(appendOptString(buf, v.Name))
	buf = comma(appendOptString(buf, v.Description))
	buf = comma(ifc.AppendRef(buf, v.Material))
	buf = comma(appendOptReal(buf, v.Fraction))
	return appendOptString(buf, v.Category)
}

type MaterialConstituentSet struct {
	Name                 ifc.Optional[string]
	Description          ifc.Optional[string]
	MaterialConstituents ifc.Optional[[]ifc.Ref[*MaterialConstituent]]
}

func (*MaterialConstituentSet) Keyword() string { return "IFCMATERIALCONSTITUENTSET" }
func (*MaterialConstituentSet) materialSelect() {}

func (v *MaterialConstituentSet) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Name, parseOptString),
		ifc.Field(&v.Description, parseOptString),
		ifc.Field(&v.MaterialConstituents, parseOptRefs[*MaterialConstituent]),
	)
}

func (v *MaterialConstituentSet) AppendAttrs(buf []byte) []byte {
	buf = comma(appendOptString(buf, v.Name))
	buf = comma(appendOptString(buf, v.Description))
	return appendOptRefs(buf, v.MaterialConstituents)
}
