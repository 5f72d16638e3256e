package entities

import "github.com/andreyvit/ifc"

type PropertySingleValue struct {
	Name         string
	Description  ifc.Optional[string]
	NominalValue ifc.Optional[ifc.RefOr[*Measure]]
	Unit         ifc.Optional[ifc.Ref[AnyUnit]]
}

func (*PropertySingleValue) Keyword() string { return "IFCPROPERTYSINGLEVALUE" }

func (v *PropertySingleValue) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Name, ifc.ParseString),
		ifc.Field(&v.Description, parseOptString),
		ifc.Field(&v.NominalValue, ifc.OptionalOf(ifc.ParseRefOr[*Measure])),
		ifc.Field(&v.Unit, parseOptRef[AnyUnit]),
	)
}

func (v *PropertySingleValue) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendString(buf, v.Name))
	buf = comma(appendOptString(buf, v.Description))
	buf = comma(ifc.AppendOptional(buf, v.NominalValue, ifc.AppendRefOr[*Measure]))
	return appendOptRef(buf, v.Unit)
}

type PropertySet struct {
	Root
	HasProperties []ifc.Ref[*PropertySingleValue]
}

func (*PropertySet) Keyword() string { return "IFCPROPERTYSET" }

func (v *PropertySet) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Root),
		ifc.Field(&v.HasProperties, parseRefs[*PropertySingleValue]),
	)
}

func (v *PropertySet) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Root.AppendAttrs(buf))
	return appendRefs(buf, v.HasProperties)
}
