package check

import (
	"reflect"
	"sync"

	"github.com/andreyvit/ifc"
)

var typeInfoCache sync.Map

// structInfo lists the fields of a record struct worth walking, with
// embedded general parts flattened in attribute order.
type structInfo struct {
	fields []fieldInfo
}

type fieldInfo struct {
	name  string
	index []int
}

var (
	referenceType = reflect.TypeFor[reference]()
	optionalType  = reflect.TypeFor[optional]()
)

// reference is implemented by ifc.Ref and ifc.RefOr.
type reference interface {
	RefID() ifc.ID
	Resolvable(sh ifc.Storish) error
}

// inline is implemented by ifc.RefOr.
type inline interface {
	InlineRecord() ifc.Record
}

// optional is implemented by ifc.Optional.
type optional interface {
	IsPresent() bool
}

func reflectType(typ reflect.Type) *structInfo {
	if v, ok := typeInfoCache.Load(typ); ok {
		return v.(*structInfo)
	}
	info := reflectTypeWithoutCache(typ)
	actual, _ := typeInfoCache.LoadOrStore(typ, info)
	return actual.(*structInfo)
}

func reflectTypeWithoutCache(typ reflect.Type) *structInfo {
	info := &structInfo{}
	collectFields(info, typ, nil)
	return info
}

func collectFields(info *structInfo, typ reflect.Type, prefix []int) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		index := append(append([]int(nil), prefix...), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct && !isLeaf(f.Type) {
			collectFields(info, f.Type, index)
			continue
		}
		if !mayHoldReferences(f.Type) {
			continue
		}
		info.fields = append(info.fields, fieldInfo{name: f.Name, index: index})
	}
}

// isLeaf reports whether typ is handled as a unit rather than field by
// field.
func isLeaf(typ reflect.Type) bool {
	return typ.Implements(referenceType) || typ.Implements(optionalType)
}

func mayHoldReferences(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Struct:
		return true
	case reflect.Slice, reflect.Array:
		return mayHoldReferences(typ.Elem())
	case reflect.Interface, reflect.Pointer:
		return true
	default:
		return false
	}
}
