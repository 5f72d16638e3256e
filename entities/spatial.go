package entities

import "github.com/andreyvit/ifc"

type Project struct {
	Context
}

func (*Project) Keyword() string { return "IFCPROJECT" }

var parseCompoundAngle = ifc.OptionalOf(ifc.ListOf(ifc.ParseInteger))

type Site struct {
	SpatialStructureElement
	RefLatitude     ifc.Optional[[]int64]
	RefLongitude    ifc.Optional[[]int64]
	RefElevation    ifc.Optional[float64]
	LandTitleNumber ifc.Optional[string]
	SiteAddress     ifc.Optional[ifc.Ref[*PostalAddress]]
}

func (*Site) Keyword() string { return "IFCSITE" }

func (v *Site) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.SpatialStructureElement),
		ifc.Field(&v.RefLatitude, parseCompoundAngle),
		ifc.Field(&v.RefLongitude, parseCompoundAngle),
		ifc.Field(&v.RefElevation, parseOptReal),
		ifc.Field(&v.LandTitleNumber, parseOptString),
		ifc.Field(&v.SiteAddress, parseOptRef[*PostalAddress]),
	)
}

func (v *Site) AppendAttrs(buf []byte) []byte {
	buf = comma(v.SpatialStructureElement.AppendAttrs(buf))
	buf = comma(appendOptIntegers(buf, v.RefLatitude))
	buf = comma(appendOptIntegers(buf, v.RefLongitude))
	buf = comma(appendOptReal(buf, v.RefElevation))
	buf = comma(appendOptString(buf, v.LandTitleNumber))
	return appendOptRef(buf, v.SiteAddress)
}

type Building struct {
	SpatialStructureElement
	ElevationOfRefHeight ifc.Optional[float64]
	ElevationOfTerrain   ifc.Optional[float64]
	BuildingAddress      ifc.Optional[ifc.Ref[*PostalAddress]]
}

func (*Building) Keyword() string { return "IFCBUILDING" }

func (v *Building) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.SpatialStructureElement),
		ifc.Field(&v.ElevationOfRefHeight, parseOptReal),
		ifc.Field(&v.ElevationOfTerrain, parseOptReal),
		ifc.Field(&v.BuildingAddress, parseOptRef[*PostalAddress]),
	)
}

func (v *Building) AppendAttrs(buf []byte) []byte {
	buf = comma(v.SpatialStructureElement.AppendAttrs(buf))
	buf = comma(appendOptReal(buf, v.ElevationOfRefHeight))
	buf = comma(appendOptReal(buf, v.ElevationOfTerrain))
	return appendOptRef(buf, v.BuildingAddress)
}

type BuildingStorey struct {
	SpatialStructureElement
	Elevation ifc.Optional[float64]
}

func (*BuildingStorey) Keyword() string { return "IFCBUILDINGSTOREY" }

func (v *BuildingStorey) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.SpatialStructureElement),
		ifc.Field(&v.Elevation, parseOptReal),
	)
}

func (v *BuildingStorey) AppendAttrs(buf []byte) []byte {
	buf = comma(v.SpatialStructureElement.AppendAttrs(buf))
	return appendOptReal(buf, v.Elevation)
}

type Space struct {
	SpatialStructureElement
	PredefinedType        ifc.Optional[SpacePredefinedType]
	ElevationWithFlooring ifc.Optional[float64]
}

func (*Space) Keyword() string { return "IFCSPACE" }

func (v *Space) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.SpatialStructureElement),
		ifc.Field(&v.PredefinedType, parseOptEnum(SpaceTypes)),
		ifc.Field(&v.ElevationWithFlooring, parseOptReal),
	)
}

func (v *Space) AppendAttrs(buf []byte) []byte {
	buf = comma(v.SpatialStructureElement.AppendAttrs(buf))
	buf = comma(appendOptEnum(buf, SpaceTypes, v.PredefinedType))
	return appendOptReal(buf, v.ElevationWithFlooring)
}

type SpaceType struct {
	ElementType
	PredefinedType SpacePredefinedType
	LongName       ifc.Optional[string]
}

func (*SpaceType) Keyword() string { return "IFCSPACETYPE" }

func (v *SpaceType) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.ElementType),
		ifc.Field(&v.PredefinedType, SpaceTypes.Parse),
		ifc.Field(&v.LongName, parseOptString),
	)
}

func (v *SpaceType) AppendAttrs(buf []byte) []byte {
	buf = comma(v.ElementType.AppendAttrs(buf))
	buf = comma(SpaceTypes.Append(buf, v.PredefinedType))
	return appendOptString(buf, v.LongName)
}
