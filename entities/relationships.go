package entities

import "github.com/andreyvit/ifc"

// RelAggregates decomposes RelatingObject into RelatedObjects (project into
// sites, site into buildings and so on).
type RelAggregates struct {
	Root
	RelatingObject ifc.Ref[AnyObject]
	RelatedObjects []ifc.Ref[AnyObject]
}

func (*RelAggregates) Keyword() string { return "IFCRELAGGREGATES" }

func (v *RelAggregates) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Root),
		ifc.Field(&v.RelatingObject, ifc.ParseRef[AnyObject]),
		ifc.Field(&v.RelatedObjects, parseRefs[AnyObject]),
	)
}

func (v *RelAggregates) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Root.AppendAttrs(buf))
	buf = comma(ifc.AppendRef(buf, v.RelatingObject))
	return appendRefs(buf, v.RelatedObjects)
}

type RelContainedInSpatialStructure struct {
	Root
	RelatedElements   []ifc.Ref[AnyProduct]
	RelatingStructure ifc.Ref[AnySpatialElement]
}

func (*RelContainedInSpatialStructure) Keyword() string {
	return "IFCRELCONTAINEDINSPATIALSTRUCTURE"
}

func (v *RelContainedInSpatialStructure) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Root),
		ifc.Field(&v.RelatedElements, parseRefs[AnyProduct]),
		ifc.Field(&v.RelatingStructure, ifc.ParseRef[AnySpatialElement]),
	)
}

func (v *RelContainedInSpatialStructure) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Root.AppendAttrs(buf))
	buf = comma(appendRefs(buf, v.RelatedElements))
	return ifc.AppendRef(buf, v.RelatingStructure)
}

type RelAssociatesMaterial struct {
	Root
	RelatedObjects   []ifc.Ref[AnyRoot]
	RelatingMaterial ifc.Ref[AnyMaterial]
}

func (*RelAssociatesMaterial) Keyword() string { return "IFCRELASSOCIATESMATERIAL" }

func (v *RelAssociatesMaterial) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Root),
		ifc.Field(&v.RelatedObjects, parseRefs[AnyRoot]),
		ifc.Field(&v.RelatingMaterial, ifc.ParseRef[AnyMaterial]),
	)
}

func (v *RelAssociatesMaterial) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Root.AppendAttrs(buf))
	buf = comma(appendRefs(buf, v.RelatedObjects))
	return ifc.AppendRef(buf, v.RelatingMaterial)
}

type RelDefinesByType struct {
	Root
	RelatedObjects []ifc.Ref[AnyObject]
	RelatingType   ifc.Ref[AnyTypeObject]
}

func (*RelDefinesByType) Keyword() string { return "IFCRELDEFINESBYTYPE" }

func (v *RelDefinesByType) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Root),
		ifc.Field(&v.RelatedObjects, parseRefs[AnyObject]),
		ifc.Field(&v.RelatingType, ifc.ParseRef[AnyTypeObject]),
	)
}

func (v *RelDefinesByType) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Root.AppendAttrs(buf))
	buf = comma(appendRefs(buf, v.RelatedObjects))
	return ifc.AppendRef(buf, v.RelatingType)
}

type RelDefinesByProperties struct {
	Root
	RelatedObjects             []ifc.Ref[AnyObject]
	RelatingPropertyDefinition ifc.Ref[*PropertySet]
}

func (*RelDefinesByProperties) Keyword() string { return "IFCRELDEFINESBYPROPERTIES" }

func (v *RelDefinesByProperties) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Root),
		ifc.Field(&v.RelatedObjects, parseRefs[AnyObject]),
		ifc.Field(&v.RelatingPropertyDefinition, ifc.ParseRef[*PropertySet]),
	)
}

func (v *RelDefinesByProperties) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Root.AppendAttrs(buf))
	buf = comma(appendRefs(buf, v.RelatedObjects))
	return ifc.AppendRef(buf, v.RelatingPropertyDefinition)
}

type RelVoidsElement struct {
	Root
	RelatingBuildingElement ifc.Ref[AnyElement]
	RelatedOpeningElement   ifc.Ref[*OpeningElement]
}

func (*RelVoidsElement) Keyword() string { return "IFCRELVOIDSELEMENT" }

func (v *RelVoidsElement) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Root),
		ifc.Field(&v.RelatingBuildingElement, ifc.ParseRef[AnyElement]),
		ifc.Field(&v.RelatedOpeningElement, ifc.ParseRef[*OpeningElement]),
	)
}

func (v *RelVoidsElement) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Root.AppendAttrs(buf))
	buf = comma(ifc.AppendRef(buf, v.RelatingBuildingElement))
	return ifc.AppendRef(buf, v.RelatedOpeningElement)
}

type RelFillsElement struct {
	Root
	RelatingOpeningElement ifc.Ref[*OpeningElement]
	RelatedBuildingElement ifc.Ref[AnyElement]
}

func (*RelFillsElement) Keyword() string { return "IFCRELFILLSELEMENT" }

func (v *RelFillsElement) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Root),
		ifc.Field(&v.RelatingOpeningElement, ifc.ParseRef[*OpeningElement]),
		ifc.Field(&v.RelatedBuildingElement, ifc.ParseRef[AnyElement]),
	)
}

func (v *RelFillsElement) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Root.AppendAttrs(buf))
	buf = comma(ifc.AppendRef(buf, v.RelatingOpeningElement))
	return ifc.AppendRef(buf, v.RelatedBuildingElement)
}
