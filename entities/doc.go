/*
Package entities is the catalog of IFC4 record kinds understood by this
module, registered in Schema.

Abstract supertypes (IfcRoot, IfcObject, IfcProduct, IfcElement and so on)
are plain structs without a keyword. Concrete kinds embed them and splice
their attribute span first, so that a Wall's attribute list reads
Root, Object, Product, Element, then its own PredefinedType.

SELECT types and abstract reference targets are interfaces (AnyProduct,
AnyUnit, AnyMaterial, ...); use them as the type argument of ifc.Ref when
an attribute may point at several kinds.

Typed values like IFCLENGTHMEASURE(2.5) share one Go type, Measure, whose
keyword comes from its MeasureType.
*/
package entities
