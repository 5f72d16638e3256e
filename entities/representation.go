package entities

import "github.com/andreyvit/ifc"

type AnyRepresentationContext interface {
	ifc.Record
	representationContext()
}

type GeometricRepresentationContext struct {
	ContextIdentifier        ifc.Optional[string]
	ContextType              ifc.Optional[string]
	CoordinateSpaceDimension int64
	Precision                ifc.Optional[float64]
	WorldCoordinateSystem    ifc.Ref[AnyPlacement]
	TrueNorth                ifc.Optional[ifc.Ref[*Direction]]
}

func (*GeometricRepresentationContext) Keyword() string {
	return "IFCGEOMETRICREPRESENTATIONCONTEXT"
}

func (*GeometricRepresentationContext) representationContext() {}

func (v *GeometricRepresentationContext) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.ContextIdentifier, parseOptString),
		ifc.Field(&v.ContextType, parseOptString),
		ifc.Field(&v.CoordinateSpaceDimension, ifc.ParseInteger),
		ifc.Field(&v.Precision, parseOptReal),
		ifc.Field(&v.WorldCoordinateSystem, ifc.ParseRef[AnyPlacement]),
		ifc.Field(&v.TrueNorth, parseOptRef[*Direction]),
	)
}

func (v *GeometricRepresentationContext) AppendAttrs(buf []byte) []byte {
	buf = comma(appendOptString(buf, v.ContextIdentifier))
	buf = comma(appendOptString(buf, v.ContextType))
	buf = comma(ifc.AppendInteger(buf, v.CoordinateSpaceDimension))
	buf = comma(appendOptReal(buf, v.Precision))
	buf = comma(ifc.AppendRef(buf, v.WorldCoordinateSystem))
	return appendOptRef(buf, v.TrueNorth)
}

// GeometricRepresentationSubContext inherits the placement, dimension,
// precision and north of its parent; those four attributes are always `*`.
type GeometricRepresentationSubContext struct {
	ContextIdentifier        ifc.Optional[string]
	ContextType              ifc.Optional[string]
	CoordinateSpaceDimension ifc.Derived
	Precision                ifc.Derived
	WorldCoordinateSystem    ifc.Derived
	TrueNorth                ifc.Derived
	ParentContext            ifc.Ref[*GeometricRepresentationContext]
	TargetScale              ifc.Optional[float64]
	TargetView               GeometricProjection
	UserDefinedTargetView    ifc.Optional[string]
}

func (*GeometricRepresentationSubContext) Keyword() string {
	return "IFCGEOMETRICREPRESENTATIONSUBCONTEXT"
}

func (*GeometricRepresentationSubContext) representationContext() {}

func (v *GeometricRepresentationSubContext) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.ContextIdentifier, parseOptString),
		ifc.Field(&v.ContextType, parseOptString),
		ifc.Field(&v.CoordinateSpaceDimension, ifc.ParseDerived),
		ifc.Field(&v.Precision, ifc.ParseDerived),
		ifc.Field(&v.WorldCoordinateSystem, ifc.ParseDerived),
		ifc.Field(&v.TrueNorth, ifc.ParseDerived),
		ifc.Field(&v.ParentContext, ifc.ParseRef[*GeometricRepresentationContext]),
		ifc.Field(&v.TargetScale, parseOptReal),
		ifc.Field(&v.TargetView, GeometricProjections.Parse),
		ifc.Field(&v.UserDefinedTargetView, parseOptString),
	)
}

func (v *GeometricRepresentationSubContext) AppendAttrs(buf []byte) []byte {
	buf = comma(appendOptString(buf, v.ContextIdentifier))
	buf = comma(appendOptString(buf, v.ContextType))
	buf = comma(ifc.AppendDerived(buf, v.CoordinateSpaceDimension))
	buf = comma(ifc.AppendDerived(buf, v.Precision))
	buf = comma(ifc.AppendDerived(buf, v.WorldCoordinateSystem))
	buf = comma(ifc.AppendDerived(buf, v.TrueNorth))
	buf = comma(ifc.AppendRef(buf, v.ParentContext))
	buf = comma(appendOptReal(buf, v.TargetScale))
	buf = comma(GeometricProjections.Append(buf, v.TargetView))
	return appendOptString(buf, v.UserDefinedTargetView)
}

type ShapeRepresentation struct {
	ContextOfItems           ifc.Ref[AnyRepresentationContext]
	RepresentationIdentifier ifc.Optional[string]
	RepresentationType       ifc.Optional[string]
	Items                    []ifc.Ref[AnyRepresentationItem]
}

func (*ShapeRepresentation) Keyword() string { return "IFCSHAPEREPRESENTATION" }

func (v *ShapeRepresentation) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.ContextOfItems, ifc.ParseRef[AnyRepresentationContext]),
		ifc.Field(&v.RepresentationIdentifier, parseOptString),
		ifc.Field(&v.RepresentationType, parseOptString),
		ifc.Field(&v.Items, parseRefs[AnyRepresentationItem]),
	)
}

func (v *ShapeRepresentation) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendRef(buf, v.ContextOfItems))
	buf = comma(appendOptString(buf, v.RepresentationIdentifier))
	buf = comma(appendOptString(buf, v.RepresentationType))
	return appendRefs(buf, v.Items)
}

type ProductDefinitionShape struct {
	Name            ifc.Optional[string]
	Description     ifc.Optional[string]
	Representations []ifc.Ref[*ShapeRepresentation]
}

func (*ProductDefinitionShape) Keyword() string { return "IFCPRODUCTDEFINITIONSHAPE" }

func (v *ProductDefinitionShape) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Name, parseOptString),
		ifc.Field(&v.Description, parseOptString),
		ifc.Field(&v.Representations, parseRefs[*ShapeRepresentation]),
	)
}

func (v *ProductDefinitionShape) AppendAttrs(buf []byte) []byte {
	buf = comma(appendOptString(buf, v.Name))
	buf = comma(appendOptString(buf, v.Description))
	return appendRefs(buf, v.Representations)
}
