package entities

import "github.com/andreyvit/ifc"

// Root is the general part of every independent record: identity, ownership
// and naming. More specific kinds embed it, directly or through Object,
// TypeObject or Relationship.
type Root struct {
	GlobalID     string
	OwnerHistory ifc.Optional[ifc.Ref[*OwnerHistory]]
	Name         ifc.Optional[string]
	Description  ifc.Optional[string]
}

// NewRoot returns a Root with a fresh GlobalID.
func NewRoot(name string) Root {
	root := Root{GlobalID: NewGlobalID()}
	if name != "" {
		root.Name = ifc.Some(name)
	}
	return root
}

func (v *Root) RootPart() *Root { return v }

func (v *Root) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Field(&v.GlobalID, ifc.ParseString),
		ifc.Field(&v.OwnerHistory, parseOptRef[*OwnerHistory]),
		ifc.Field(&v.Name, parseOptString),
		ifc.Field(&v.Description, parseOptString),
	)
}

func (v *Root) AppendAttrs(buf []byte) []byte {
	buf = comma(ifc.AppendString(buf, v.GlobalID))
	buf = comma(appendOptRef(buf, v.OwnerHistory))
	buf = comma(appendOptString(buf, v.Name))
	return appendOptString(buf, v.Description)
}

// Object is a semantically treated occurrence or process.
type Object struct {
	Root
	ObjectType ifc.Optional[string]
}

func (v *Object) ObjectPart() *Object { return v }

func (v *Object) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Root),
		ifc.Field(&v.ObjectType, parseOptString),
	)
}

func (v *Object) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Root.AppendAttrs(buf))
	return appendOptString(buf, v.ObjectType)
}

// Product is an object that has a placement and a shape.
type Product struct {
	Object
	ObjectPlacement ifc.Optional[ifc.Ref[*LocalPlacement]]
	Representation  ifc.Optional[ifc.Ref[*ProductDefinitionShape]]
}

func (v *Product) ProductPart() *Product { return v }

func (v *Product) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Object),
		ifc.Field(&v.ObjectPlacement, parseOptRef[*LocalPlacement]),
		ifc.Field(&v.Representation, parseOptRef[*ProductDefinitionShape]),
	)
}

func (v *Product) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Object.AppendAttrs(buf))
	buf = comma(appendOptRef(buf, v.ObjectPlacement))
	return appendOptRef(buf, v.Representation)
}

// Element is a physical component of a building.
type Element struct {
	Product
	Tag ifc.Optional[string]
}

func (v *Element) ElementPart() *Element { return v }

func (v *Element) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Product),
		ifc.Field(&v.Tag, parseOptString),
	)
}

func (v *Element) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Product.AppendAttrs(buf))
	return appendOptString(buf, v.Tag)
}

type SpatialElement struct {
	Product
	LongName ifc.Optional[string]
}

func (v *SpatialElement) SpatialElementPart() *SpatialElement { return v }

func (v *SpatialElement) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Product),
		ifc.Field(&v.LongName, parseOptString),
	)
}

func (v *SpatialElement) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Product.AppendAttrs(buf))
	return appendOptString(buf, v.LongName)
}

type SpatialStructureElement struct {
	SpatialElement
	CompositionType ifc.Optional[ElementComposition]
}

func (v *SpatialStructureElement) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.SpatialElement),
		ifc.Field(&v.CompositionType, parseOptEnum(ElementCompositions)),
	)
}

func (v *SpatialStructureElement) AppendAttrs(buf []byte) []byte {
	buf = comma(v.SpatialElement.AppendAttrs(buf))
	return appendOptEnum(buf, ElementCompositions, v.CompositionType)
}

// TypeObject is the general part of type definitions (wall types, window
// types and so on).
type TypeObject struct {
	Root
	ApplicableOccurrence ifc.Optional[string]
	HasPropertySets      ifc.Optional[[]ifc.Ref[*PropertySet]]
}

func (v *TypeObject) TypeObjectPart() *TypeObject { return v }

func (v *TypeObject) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Root),
		ifc.Field(&v.ApplicableOccurrence, parseOptString),
		ifc.Field(&v.HasPropertySets, parseOptRefs[*PropertySet]),
	)
}

func (v *TypeObject) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Root.AppendAttrs(buf))
	buf = comma(appendOptString(buf, v.ApplicableOccurrence))
	return appendOptRefs(buf, v.HasPropertySets)
}

type TypeProduct struct {
	TypeObject
	RepresentationMaps ifc.Placeholder
	Tag                ifc.Optional[string]
}

func (v *TypeProduct) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.TypeObject),
		ifc.Field(&v.RepresentationMaps, ifc.ParsePlaceholder),
		ifc.Field(&v.Tag, parseOptString),
	)
}

func (v *TypeProduct) AppendAttrs(buf []byte) []byte {
	buf = comma(v.TypeObject.AppendAttrs(buf))
	buf = comma(ifc.AppendPlaceholder(buf, v.RepresentationMaps))
	return appendOptString(buf, v.Tag)
}

// ElementType is also the layout of IfcSpatialElementType.
type ElementType struct {
	TypeProduct
	ElementTypeName ifc.Optional[string] // ElementType attribute
}

func (v *ElementType) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.TypeProduct),
		ifc.Field(&v.ElementTypeName, parseOptString),
	)
}

func (v *ElementType) AppendAttrs(buf []byte) []byte {
	buf = comma(v.TypeProduct.AppendAttrs(buf))
	return appendOptString(buf, v.ElementTypeName)
}

// Context is the general part of projects.
type Context struct {
	Object
	LongName               ifc.Optional[string]
	Phase                  ifc.Optional[string]
	RepresentationContexts ifc.Optional[[]ifc.Ref[AnyRepresentationContext]]
	UnitsInContext         ifc.Optional[ifc.Ref[*UnitAssignment]]
}

func (v *Context) ParseAttrs(r *ifc.Reader) error {
	return r.Attrs(
		ifc.Inherited(&v.Object),
		ifc.Field(&v.LongName, parseOptString),
		ifc.Field(&v.Phase, parseOptString),
		ifc.Field(&v.RepresentationContexts, parseOptRefs[AnyRepresentationContext]),
		ifc.Field(&v.UnitsInContext, parseOptRef[*UnitAssignment]),
	)
}

func (v *Context) AppendAttrs(buf []byte) []byte {
	buf = comma(v.Object.AppendAttrs(buf))
	buf = comma(appendOptString(buf, v.LongName))
	buf = comma(appendOptString(buf, v.Phase))
	buf = comma(appendOptRefs(buf, v.RepresentationContexts))
	return appendOptRef(buf, v.UnitsInContext)
}

// AnyRoot is any record that has a Root part.
type AnyRoot interface {
	ifc.Record
	RootPart() *Root
}

type AnyObject interface {
	ifc.Record
	ObjectPart() *Object
}

type AnyProduct interface {
	ifc.Record
	ProductPart() *Product
}

type AnyElement interface {
	ifc.Record
	ElementPart() *Element
}

type AnySpatialElement interface {
	ifc.Record
	SpatialElementPart() *SpatialElement
}

type AnyTypeObject interface {
	ifc.Record
	TypeObjectPart() *TypeObject
}
