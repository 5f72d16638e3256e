package entities

import "github.com/andreyvit/ifc"

// Schema holds every kind this package defines.
var Schema = ifc.NewSchema("IFC4")

func init() {
	// actors
	ifc.AddKind[Person](Schema, "IFCPERSON")
	ifc.AddKind[Organization](Schema, "IFCORGANIZATION")
	ifc.AddKind[PersonAndOrganization](Schema, "IFCPERSONANDORGANIZATION")
	ifc.AddKind[Application](Schema, "IFCAPPLICATION")
	ifc.AddKind[OwnerHistory](Schema, "IFCOWNERHISTORY")
	ifc.AddKind[ActorRole](Schema, "IFCACTORROLE")
	ifc.AddKind[PostalAddress](Schema, "IFCPOSTALADDRESS")
	ifc.AddKind[TelecomAddress](Schema, "IFCTELECOMADDRESS")

	// materials
	ifc.AddKind[Material](Schema, "IFCMATERIAL")
	ifc.AddKind[MaterialLayer](Schema, "IFCMATERIALLAYER")
	ifc.AddKind[MaterialLayerSet](Schema, "IFCMATERIALLAYERSET")
	ifc.AddKind[MaterialLayerSetUsage](Schema, "IFCMATERIALLAYERSETUSAGE")
	ifc.AddKind[MaterialConstituent](Schema, "IFCMATERIALCONSTITUENT")
	ifc.AddKind[MaterialConstituentSet](Schema, "IFCMATERIALCONSTITUENTSET")

	// geometry and representations
	ifc.AddKind[CartesianPoint](Schema, "IFCCARTESIANPOINT")
	ifc.AddKind[Direction](Schema, "IFCDIRECTION")
	ifc.AddKind[Axis2Placement2D](Schema, "IFCAXIS2PLACEMENT2D")
	ifc.AddKind[Axis2Placement3D](Schema, "IFCAXIS2PLACEMENT3D")
	ifc.AddKind[LocalPlacement](Schema, "IFCLOCALPLACEMENT")
	ifc.AddKind[CartesianPointList2D](Schema, "IFCCARTESIANPOINTLIST2D")
	ifc.AddKind[IndexedPolyCurve](Schema, "IFCINDEXEDPOLYCURVE")
	ifc.AddKind[RectangleProfileDef](Schema, "IFCRECTANGLEPROFILEDEF")
	ifc.AddKind[ArbitraryClosedProfileDef](Schema, "IFCARBITRARYCLOSEDPROFILEDEF")
	ifc.AddKind[ExtrudedAreaSolid](Schema, "IFCEXTRUDEDAREASOLID")
	ifc.AddKind[ShapeRepresentation](Schema, "IFCSHAPEREPRESENTATION")
	ifc.AddKind[ProductDefinitionShape](Schema, "IFCPRODUCTDEFINITIONSHAPE")
	ifc.AddKind[GeometricRepresentationContext](Schema, "IFCGEOMETRICREPRESENTATIONCONTEXT")
	ifc.AddKind[GeometricRepresentationSubContext](Schema, "IFCGEOMETRICREPRESENTATIONSUBCONTEXT")

	// units and measures
	ifc.AddKind[SIUnit](Schema, "IFCSIUNIT")
	ifc.AddKind[DimensionalExponents](Schema, "IFCDIMENSIONALEXPONENTS")
	ifc.AddKind[MeasureWithUnit](Schema, "IFCMEASUREWITHUNIT")
	ifc.AddKind[ConversionBasedUnit](Schema, "IFCCONVERSIONBASEDUNIT")
	ifc.AddKind[UnitAssignment](Schema, "IFCUNITASSIGNMENT")
	for _, mt := range MeasureTypes {
		ifc.AddKindFunc(Schema, mt.Keyword, func() ifc.Record {
			return &Measure{Type: mt}
		})
	}

	// spatial structure and elements
	ifc.AddKind[Project](Schema, "IFCPROJECT")
	ifc.AddKind[Site](Schema, "IFCSITE")
	ifc.AddKind[Building](Schema, "IFCBUILDING")
	ifc.AddKind[BuildingStorey](Schema, "IFCBUILDINGSTOREY")
	ifc.AddKind[Space](Schema, "IFCSPACE")
	ifc.AddKind[SpaceType](Schema, "IFCSPACETYPE")
	ifc.AddKind[Wall](Schema, "IFCWALL")
	ifc.AddKind[WallType](Schema, "IFCWALLTYPE")
	ifc.AddKind[Window](Schema, "IFCWINDOW")
	ifc.AddKind[WindowType](Schema, "IFCWINDOWTYPE")
	ifc.AddKind[OpeningElement](Schema, "IFCOPENINGELEMENT")

	// relationships and properties
	ifc.AddKind[RelAggregates](Schema, "IFCRELAGGREGATES")
	ifc.AddKind[RelContainedInSpatialStructure](Schema, "IFCRELCONTAINEDINSPATIALSTRUCTURE")
	ifc.AddKind[RelAssociatesMaterial](Schema, "IFCRELASSOCIATESMATERIAL")
	ifc.AddKind[RelDefinesByType](Schema, "IFCRELDEFINESBYTYPE")
	ifc.AddKind[RelDefinesByProperties](Schema, "IFCRELDEFINESBYPROPERTIES")
	ifc.AddKind[RelVoidsElement](Schema, "IFCRELVOIDSELEMENT")
	ifc.AddKind[RelFillsElement](Schema, "IFCRELFILLSELEMENT")
	ifc.AddKind[PropertySingleValue](Schema, "IFCPROPERTYSINGLEVALUE")
	ifc.AddKind[PropertySet](Schema, "IFCPROPERTYSET")
}
