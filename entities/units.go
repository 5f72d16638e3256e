package entities

import (
	"fmt"

	"github.com/andreyvit/ifc"
)

// AnyUnit is IfcUnit as listed by IfcUnitAssignment.
type AnyUnit interface {
	ifc.Record
	unit()
}

type SIUnit struct {
	Dimensions ifc.Derived
	UnitType   UnitType
	Prefix     ifc.Optional[SIPrefix]
	Name       SIUnitName
}

func (*SIUnit) Keyword() string { return "IFCSIUNIT" }
func (*SIUnit) unit()           {}

func (v *SIUnit) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Dimensions, ifc.ParseDerived),
		ifc.Field(&v.UnitType, UnitTypes.Parse),
		ifc.Field(&v.Prefix, parseOptEnum(SIPrefixes)),
		ifc.Field(&v.Name, SIUnitNames.Parse),
	)
}

func (v *SIUnit) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendDerived(buf, v.Dimensions))
	buf = comma(UnitTypes.Append(buf, v.UnitType))
	buf = comma(appendOptEnum(buf, SIPrefixes, v.Prefix))
	return SIUnitNames.Append(buf, v.Name)
}

type DimensionalExponents struct {
	LengthExponent                   int64
	MassExponent                     int64
	TimeExponent                     int64
	ElectricCurrentExponent          int64
	ThermodynamicTemperatureExponent int64
	AmountOfSubstanceExponent        int64
	LuminousIntensityExponent        int64
}

func (*DimensionalExponents) Keyword() string { return "IFCDIMENSIONALEXPONENTS" }

func (v *DimensionalExponents) fields() []*int64 {
	return []*int64{
		&v.LengthExponent,
		&v.MassExponent,
		&v.TimeExponent,
		&v.ElectricCurrentExponent,
		&v.ThermodynamicTemperatureExponent,
		&v.AmountOfSubstanceExponent,
		&v.LuminousIntensityExponent,
	}
}

func (v *DimensionalExponents) ParseAttrs(r *ifc.Reader) error {
	var attrs []ifc.Attr
	for _, p := range v.fields() {
		attrs = append(attrs, ifc.Field(p, ifc.ParseInteger))
	}
	return r.Attrs(attrs...)
}

func (v *DimensionalExponents) AppendAttrs(buf []byte) []byte {
	for i, p := range v.fields() {
		if i > 0 {
			buf = comma(buf)
		}
		buf = ifc.AppendInteger(buf, *p)
	}
	return buf
}

type MeasureWithUnit struct {
	ValueComponent ifc.RefOr[*Measure]
	UnitComponent  ifc.Ref[AnyUnit]
}

func (*MeasureWithUnit) Keyword() string { return "IFCMEASUREWITHUNIT" }

func (v *MeasureWithUnit) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.ValueComponent, ifc.ParseRefOr[*Measure]),
		ifc.Field(&v.UnitComponent, ifc.ParseRef[AnyUnit]),
	)
}

func (v *MeasureWithUnit) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendRefOr(buf, v.ValueComponent))
	return ifc.AppendRef(buf, v.UnitComponent)
}

type ConversionBasedUnit struct {
	Dimensions       ifc.Ref[*DimensionalExponents]
	UnitType         UnitType
	Name             string
	ConversionFactor ifc.Ref[*MeasureWithUnit]
}

func (*ConversionBasedUnit) Keyword() string { return "IFCCONVERSIONBASEDUNIT" }
func (*ConversionBasedUnit) unit()           {}

func (v *ConversionBasedUnit) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.Dimensions, ifc.ParseRef[*DimensionalExponents]),
		ifc.Field(&v.UnitType, UnitTypes.Parse),
		ifc.Field(&v.Name, ifc.ParseString),
		ifc.Field(&v.ConversionFactor, ifc.ParseRef[*MeasureWithUnit]),
	)
}

func (v *ConversionBasedUnit) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendRef(buf, v.Dimensions))
	buf = comma(UnitTypes.Append(buf, v.UnitType))
	buf = comma(ifc.AppendString(buf, v.Name))
	return ifc.AppendRef(buf, v.ConversionFactor)
}

type UnitAssignment struct {
	Units []ifc.Ref[AnyUnit]
}

func (*UnitAssignment) Keyword() string { return "IFCUNITASSIGNMENT" }

func (v *UnitAssignment) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(ifc.Field(&v.Units, parseRefs[AnyUnit]))
}

func (v *UnitAssignment) AppendAttrs(buf []byte) []byte {
	return appendRefs(buf, v.Units)
}

// ValueKind is the underlying STEP type of a measure.
type ValueKind int

const (
	RealValue ValueKind = iota
	IntegerValue
	StringValue
	BooleanValue
	LogicalValue
)

// MeasureType is one defined type usable as an inline typed value, e.g.
// IFCLENGTHMEASURE(2.5) or IFCLABEL('Brick').
type MeasureType struct {
	Keyword string
	Kind    ValueKind
}

var (
	LengthMeasure         = &MeasureType{"IFCLENGTHMEASURE", RealValue}
	PositiveLengthMeasure = &MeasureType{"IFCPOSITIVELENGTHMEASURE", RealValue}
	AreaMeasure           = &MeasureType{"IFCAREAMEASURE", RealValue}
	VolumeMeasure         = &MeasureType{"IFCVOLUMEMEASURE", RealValue}
	PlaneAngleMeasure     = &MeasureType{"IFCPLANEANGLEMEASURE", RealValue}
	RatioMeasure          = &MeasureType{"IFCRATIOMEASURE", RealValue}
	ThermalTransmittance  = &MeasureType{"IFCTHERMALTRANSMITTANCEMEASURE", RealValue}
	RealMeasure           = &MeasureType{"IFCREAL", RealValue}
	CountMeasure          = &MeasureType{"IFCCOUNTMEASURE", IntegerValue}
	IntegerMeasure        = &MeasureType{"IFCINTEGER", IntegerValue}
	LabelMeasure          = &MeasureType{"IFCLABEL", StringValue}
	TextMeasure           = &MeasureType{"IFCTEXT", StringValue}
	IdentifierMeasure     = &MeasureType{"IFCIDENTIFIER", StringValue}
	BooleanMeasure        = &MeasureType{"IFCBOOLEAN", BooleanValue}
	LogicalMeasure        = &MeasureType{"IFCLOGICAL", LogicalValue}
)

// MeasureTypes lists every registered measure type.
var MeasureTypes = []*MeasureType{
	LengthMeasure,
	PositiveLengthMeasure,
	AreaMeasure,
	VolumeMeasure,
	PlaneAngleMeasure,
	RatioMeasure,
	ThermalTransmittance,
	RealMeasure,
	CountMeasure,
	IntegerMeasure,
	LabelMeasure,
	TextMeasure,
	IdentifierMeasure,
	BooleanMeasure,
	LogicalMeasure,
}

// Measure is a typed value. One Go type serves every MeasureType; the
// keyword comes from Type. Only the field matching Type.Kind is used.
type Measure struct {
	Type    *MeasureType
	Real    float64
	Integer int64
	Text    string
	Logical ifc.Logical
}

func Length(v float64) *Measure     { return &Measure{Type: LengthMeasure, Real: v} }
func PlaneAngle(v float64) *Measure { return &Measure{Type: PlaneAngleMeasure, Real: v} }
func Area(v float64) *Measure       { return &Measure{Type: AreaMeasure, Real: v} }
func Label(s string) *Measure       { return &Measure{Type: LabelMeasure, Text: s} }
func Text(s string) *Measure        { return &Measure{Type: TextMeasure, Text: s} }

func Boolean(b bool) *Measure {
	m := &Measure{Type: BooleanMeasure, Logical: ifc.False}
	if b {
		m.Logical = ifc.True
	}
	return m
}

func (m *Measure) Keyword() string { return m.Type.Keyword }

func (m *Measure) String() string {
	return string(m.AppendAttrs([]byte(m.Type.Keyword + "("))) + ")"
}

func (m *Measure) ParseAttrs(r *ifc.Reader) error {
	switch m.Type.Kind {
	case RealValue:
		return r.Attrs(ifc.Field(&m.Real, ifc.ParseReal))
	case IntegerValue:
		return r.Attrs(ifc.Field(&m.Integer, ifc.ParseInteger))
	case StringValue:
		return r.Attrs(ifc.Field(&m.Text, ifc.ParseString))
	case BooleanValue:
		var b bool
		err := r.Attrs(ifc.Field(&b, ifc.ParseBool))
		m.Logical = ifc.False
		if b {
			m.Logical = ifc.True
		}
		return err
	case LogicalValue:
		return r.Attrs(ifc.Field(&m.Logical, ifc.Logicals.Parse))
	default:
		panic(fmt.Errorf("%s: unhandled value kind %d", m.Type.Keyword, m.Type.Kind))
	}
}

func (m *Measure) AppendAttrs(buf []byte) []byte {
	switch m.Type.Kind {
	case RealValue:
		return ifc.AppendReal(buf, m.Real)
	case IntegerValue:
		return ifc.AppendInteger(buf, m.Integer)
	case StringValue:
		return ifc.AppendString(buf, m.Text)
	case BooleanValue:
		return ifc.AppendBool(buf, m.Logical == ifc.True)
	case LogicalValue:
		return ifc.Logicals.Append(buf, m.Logical)
	default:
		panic(fmt.Errorf("%s: unhandled value kind %d", m.Type.Keyword, m.Type.Kind))
	}
}
