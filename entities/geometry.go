package entities

import "github.com/andreyvit/ifc"

// Vec2 and Vec3 are plain coordinate tuples; the package does no geometry
// math beyond what the builder needs.
type Vec2 struct{ X, Y float64 }

type Vec3 struct{ X, Y, Z float64 }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// AnyRepresentationItem is anything a shape representation can list.
type AnyRepresentationItem interface {
	ifc.Record
	representationItem()
}

// AnyPlacement is IfcAxis2Placement: a 2D or a 3D axis placement.
type AnyPlacement interface {
	ifc.Record
	axis2Placement()
}

type AnyCurve interface {
	AnyRepresentationItem
	curve()
}

type CartesianPoint struct {
	Coordinates []float64
}

func Point2(p Vec2) *CartesianPoint {
	return &CartesianPoint{Coordinates: []float64{p.X, p.Y}}
}

func Point3(p Vec3) *CartesianPoint {
	return &CartesianPoint{Coordinates: []float64{p.X, p.Y, p.Z}}
}

func (*CartesianPoint) Keyword() string     { return "IFCCARTESIANPOINT" }
func (*CartesianPoint) representationItem() {}

func (v *CartesianPoint) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(ifc.Field(&v.Coordinates, parseReals))
}

func (v *CartesianPoint) AppendAttrs(buf []byte) []byte {
	return appendReals(buf, v.Coordinates)
}

type Direction struct {
	DirectionRatios []float64
}

func Direction2(d Vec2) *Direction {
	return &Direction{DirectionRatios: []float64{d.X, d.Y}}
}

func Direction3(d Vec3) *Direction {
	return &Direction{DirectionRatios: []float64{d.X, d.Y, d.Z}}
}

func (*Direction) Keyword() string     { return "IFCDIRECTION" }
func (*Direction) representationItem() {}

func (v *Direction) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(ifc.Field(&v.DirectionRatios, parseReals))
}

func (v *Direction) AppendAttrs(buf []byte) []byte {
	return appendReals(buf, v.DirectionRatios)
}

type Axis2Placement2D struct {
	Location     ifc.Ref[*CartesianPoint]
	RefDirection ifc.Optional[ifc.Ref[*Direction]]
}

func (*Axis2Placement2D) Keyword() string     { return "IFCAXIS2PLACEMENT2D" }
func (*Axis2Placement2D) representationItem() {}
func (*Axis2Placement2D) axis2Placement()     {}

func (v *Axis2Placement2D) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Location, ifc.ParseRef[*CartesianPoint]),
		ifc.Field(&v.RefDirection, parseOptRef[*Direction]),
	)
}

func (v *Axis2Placement2D) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendRef(buf, v.Location))
	return appendOptRef(buf, v.RefDirection)
}

type Axis2Placement3D struct {
	Location     ifc.Ref[*CartesianPoint]
	Axis         ifc.Optional[ifc.Ref[*Direction]]
	RefDirection ifc.Optional[ifc.Ref[*Direction]]
}

func (*Axis2Placement3D) Keyword() string     { return "IFCAXIS2PLACEMENT3D" }
func (*Axis2Placement3D) representationItem() {}
func (*Axis2Placement3D) axis2Placement()     {}

func (v *Axis2Placement3D) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Location, ifc.ParseRef[*CartesianPoint]),
		ifc.Field(&v.Axis, parseOptRef[*Direction]),
		ifc.Field(&v.RefDirection, parseOptRef[*Direction]),
	)
}

func (v *Axis2Placement3D) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendRef(buf, v.Location))
	buf = comma(appendOptRef(buf, v.Axis))
	return appendOptRef(buf, v.RefDirection)
}

type LocalPlacement struct {
	PlacementRelTo    ifc.Optional[ifc.Ref[*LocalPlacement]]
	RelativePlacement ifc.Ref[AnyPlacement]
}

func (*LocalPlacement) Keyword() string { return "IFCLOCALPLACEMENT" }

func (v *LocalPlacement) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.PlacementRelTo, parseOptRef[*LocalPlacement]),
		ifc.Field(&v.RelativePlacement, ifc.ParseRef[AnyPlacement]),
	)
}

func (v *LocalPlacement) AppendAttrs(buf []byte) []byte {
	buf = comma(appendOptRef(buf, v.PlacementRelTo))
	return ifc.AppendRef(buf, v.RelativePlacement)
}

type CartesianPointList2D struct {
	CoordList [][]float64
}

func PointList2D(points []Vec2) *CartesianPointList2D {
	v := &CartesianPointList2D{CoordList: make([][]float64, 0, len(points))}
	for _, p := range points {
		v.CoordList = append(v.CoordList, []float64{p.X, p.Y})
	}
	return v
}

func (*CartesianPointList2D) Keyword() string     { return "IFCCARTESIANPOINTLIST2D" }
func (*CartesianPointList2D) representationItem() {}

func (v *CartesianPointList2D) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(ifc.Field(&v.CoordList, ifc.ListOf(parseReals)))
}

func (v *CartesianPointList2D) AppendAttrs(buf []byte) []byte {
	return ifc.AppendList(buf, v.CoordList, appendReals)
}

// IndexedPolyCurve keeps Segments as raw text: the IfcSegmentIndexSelect
// values (IFCLINEINDEX, IFCARCINDEX) are not modeled.
type IndexedPolyCurve struct {
	Points        ifc.Ref[*CartesianPointList2D]
	Segments      ifc.Placeholder
	SelfIntersect ifc.Optional[bool]
}

func (*IndexedPolyCurve) Keyword() string     { return "IFCINDEXEDPOLYCURVE" }
func (*IndexedPolyCurve) representationItem() {}
func (*IndexedPolyCurve) curve()              {}

func (v *IndexedPolyCurve) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Points, ifc.ParseRef[*CartesianPointList2D]),
		ifc.Field(&v.Segments, ifc.ParsePlaceholder),
		ifc.Field(&v.SelfIntersect, ifc.OptionalOf(ifc.ParseBool)),
	)
}

func (v *IndexedPolyCurve) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendRef(buf, v.Points))
	buf = comma(ifc.AppendPlaceholder(buf, v.Segments))
	return ifc.AppendOptional(buf, v.SelfIntersect, ifc.AppendBool)
}

// ProfileDef is the general part of 2D profiles.
type ProfileDef struct {
	ProfileType ProfileType
	ProfileName ifc.Optional[string]
}

func (v *ProfileDef) ProfileDefPart() *ProfileDef { return v }

func (v *ProfileDef) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.ProfileType, ProfileTypes.Parse),
		ifc.Field(&v.ProfileName, parseOptString),
	)
}

func (v *ProfileDef) AppendAttrs(buf []byte) []byte {
	buf = comma(ProfileTypes.Append(buf, v.ProfileType))
	return appendOptString(buf, v.ProfileName)
}

type AnyProfileDef interface {
	ifc.Record
	ProfileDefPart() *ProfileDef
}

type RectangleProfileDef struct {
	ProfileDef
	Position ifc.Optional[ifc.Ref[*Axis2Placement2D]]
	XDim     float64
	YDim     float64
}

func (*RectangleProfileDef) Keyword() string { return "IFCRECTANGLEPROFILEDEF" }

func (v *RectangleProfileDef) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.ProfileDef),
		ifc.Field(&v.Position, parseOptRef[*Axis2Placement2D]),
		ifc.Field(&v.XDim, ifc.ParseReal),
		ifc.Field(&v.YDim, ifc.ParseReal),
	)
}

func (v *RectangleProfileDef) AppendAttrs(buf []byte) []byte {
	buf = comma(v.ProfileDef.AppendAttrs(buf))
	buf = comma(appendOptRef(buf, v.Position))
	buf = comma(ifc.AppendReal(buf, v.XDim))
	return ifc.AppendReal(buf, v.YDim)
}

type ArbitraryClosedProfileDef struct {
	ProfileDef
	OuterCurve ifc.Ref[AnyCurve]
}

func (*ArbitraryClosedProfileDef) Keyword() string { return "IFCARBITRARYCLOSEDPROFILEDEF" }

func (v *ArbitraryClosedProfileDef) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.ProfileDef),
		ifc.Field(&v.OuterCurve, ifc.ParseRef[AnyCurve]),
	)
}

func (v *ArbitraryClosedProfileDef) AppendAttrs(buf []byte) []byte {
	buf = comma(v.ProfileDef.AppendAttrs(buf))
	return ifc.AppendRef(buf, v.OuterCurve)
}

type ExtrudedAreaSolid struct {
	SweptArea         ifc.Ref[AnyProfileDef]
	Position          ifc.Optional[ifc.Ref[*Axis2Placement3D]]
	ExtrudedDirection ifc.Ref[*Direction]
	Depth             float64
}

func (*ExtrudedAreaSolid) Keyword() string     { return "IFCEXTRUDEDAREASOLID" }
func (*ExtrudedAreaSolid) representationItem() {}

func (v *ExtrudedAreaSolid) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.SweptArea, ifc.ParseRef[AnyProfileDef]),
		ifc.Field(&v.Position, parseOptRef[*Axis2Placement3D]),
		ifc.Field(&v.ExtrudedDirection, ifc.ParseRef[*Direction]),
		ifc.Field(&v.Depth, ifc.ParseReal),
	)
}

func (v *ExtrudedAreaSolid) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendRef(buf, v.SweptArea))
	buf = comma(appendOptRef(buf, v.Position))
	buf = comma(ifc.AppendRef(buf, v.ExtrudedDirection))
	return ifc.AppendReal(buf, v.Depth)
}
