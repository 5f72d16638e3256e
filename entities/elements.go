package entities

import "github.com/andreyvit/ifc"

type Wall struct {
	Element
	PredefinedType ifc.Optional[WallPredefinedType]
}

func (*Wall) Keyword() string { return "IFCWALL" }

func (v *Wall) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Element),
		ifc.Field(&v.PredefinedType, parseOptEnum(WallTypes)),
	)
}

func (v *Wall) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Element.AppendAttrs(buf))
	return appendOptEnum(buf, WallTypes, v.PredefinedType)
}

type WallType struct {
	ElementType
	PredefinedType WallPredefinedType
}

func (*WallType) Keyword() string { return "IFCWALLTYPE" }

func (v *WallType) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.ElementType),
		ifc.Field(&v.PredefinedType, WallTypes.Parse),
	)
}

func (v *WallType) AppendAttrs(buf []byte) []byte {
	buf = comma(v.ElementType.AppendAttrs(buf))
	return WallTypes.Append(buf, v.PredefinedType)
}

type Window struct {
	Element
	OverallHeight               ifc.Optional[float64]
	OverallWidth                ifc.Optional[float64]
	PredefinedType              ifc.Optional[WindowPredefinedType]
	PartitioningType            ifc.Optional[WindowPartitioning]
	UserDefinedPartitioningType ifc.Optional[string]
}

func (*Window) Keyword() string { return "IFCWINDOW" }

func (v *Window) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Element),
		ifc.Field(&v.OverallHeight, parseOptReal),
		ifc.Field(&v.OverallWidth, parseOptReal),
		ifc.Field(&v.PredefinedType, parseOptEnum(WindowTypes)),
		ifc.Field(&v.PartitioningType, parseOptEnum(WindowPartitionings)),
		ifc.Field(&v.UserDefinedPartitioningType, parseOptString),
	)
}

func (v *Window) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Element.AppendAttrs(buf))
	buf = comma(appendOptReal(buf, v.OverallHeight))
	buf = comma(appendOptReal(buf, v.OverallWidth))
	buf = comma(appendOptEnum(buf, WindowTypes, v.PredefinedType))
	buf = comma(appendOptEnum(buf, WindowPartitionings, v.PartitioningType))
	return appendOptString(buf, v.UserDefinedPartitioningType)
}

type WindowType struct {
	ElementType
	PredefinedType              WindowPredefinedType
	PartitioningType            WindowPartitioning
	ParameterTakesPrecedence    ifc.Optional[bool]
	UserDefinedPartitioningType ifc.Optional[string]
}

func (*WindowType) Keyword() string { return "IFCWINDOWTYPE" }

func (v *WindowType) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.ElementType),
		ifc.Field(&v.PredefinedType, WindowTypes.Parse),
		ifc.Field(&v.PartitioningType, WindowPartitionings.Parse),
		ifc.Field(&v.ParameterTakesPrecedence, ifc.OptionalOf(ifc.ParseBool)),
		ifc.Field(&v.UserDefinedPartitioningType, parseOptString),
	)
}

func (v *WindowType) AppendAttrs(buf []byte) []byte {
	buf = comma(v.ElementType.AppendAttrs(buf))
	buf = comma(WindowTypes.Append(buf, v.PredefinedType))
	buf = comma(WindowPartitionings.Append(buf, v.PartitioningType))
	buf = comma(ifc.AppendOptional(buf, v.ParameterTakesPrecedence, ifc.AppendBool))
	return appendOptString(buf, v.UserDefinedPartitioningType)
}

type OpeningElement struct {
	Element
	PredefinedType ifc.Optional[OpeningPredefinedType]
}

func (*OpeningElement) Keyword() string { return "IFCOPENINGELEMENT" }

func (v *OpeningElement) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Element),
		ifc.Field(&v.PredefinedType, parseOptEnum(OpeningTypes)),
	)
}

func (v *OpeningElement) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Element.AppendAttrs(buf))
	return appendOptEnum(buf, OpeningTypes, v.PredefinedType)
}
