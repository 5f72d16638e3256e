package entities

import "github.com/andreyvit/ifc"

var (
	parseOptString    = ifc.OptionalOf(ifc.ParseString)
	appendOptString   = ifc.AppendOptionalOf(ifc.AppendString)
	parseOptReal      = ifc.OptionalOf(ifc.ParseReal)
	appendOptReal     = ifc.AppendOptionalOf(ifc.AppendReal)
	parseOptInteger   = ifc.OptionalOf(ifc.ParseInteger)
	appendOptInteger  = ifc.AppendOptionalOf(ifc.AppendInteger)
	parseStrings      = ifc.ListOf(ifc.ParseString)
	appendStrings     = ifc.AppendListOf(ifc.AppendString)
	parseOptStrings   = ifc.OptionalOf(parseStrings)
	appendOptStrings  = ifc.AppendOptionalOf(appendStrings)
	parseReals        = ifc.ListOf(ifc.ParseReal)
	appendReals       = ifc.AppendListOf(ifc.AppendReal)
	parseOptIntegers  = ifc.OptionalOf(ifc.ListOf(ifc.ParseInteger))
	appendOptIntegers = ifc.AppendOptionalOf(ifc.AppendListOf(ifc.AppendInteger))
)

func parseOptRef[T ifc.Record](r *ifc.Reader) (ifc.Optional[ifc.Ref[T]], error) {
	return ifc.ParseOptional(r, ifc.ParseRef[T])
}

func appendOptRef[T ifc.Record](buf []byte, o ifc.Optional[ifc.Ref[T]]) []byte {
	return ifc.AppendOptional(buf, o, ifc.AppendRef[T])
}

func parseRefs[T ifc.Record](r *ifc.Reader) ([]ifc.Ref[T], error) {
	return ifc.ParseList(r, ifc.ParseRef[T])
}

func appendRefs[T ifc.Record](buf []byte, refs []ifc.Ref[T]) []byte {
	return ifc.AppendList(buf, refs, ifc.AppendRef[T])
}

func parseOptRefs[T ifc.Record](r *ifc.Reader) (ifc.Optional[[]ifc.Ref[T]], error) {
	return ifc.ParseOptional(r, parseRefs[T])
}

func appendOptRefs[T ifc.Record](buf []byte, o ifc.Optional[[]ifc.Ref[T]]) []byte {
	return ifc.AppendOptional(buf, o, appendRefs[T])
}

func parseOptEnum[T comparable](e *ifc.Enum[T]) ifc.ParseFunc[ifc.Optional[T]] {
	return ifc.OptionalOf(e.Parse)
}

func appendOptEnum[T comparable](buf []byte, e *ifc.Enum[T], o ifc.Optional[T]) []byte {
	return ifc.AppendOptional(buf, o, e.Append)
}

func comma(buf []byte) []byte {
	return append(buf, ',')
}
