package entities

import "github.com/andreyvit/ifc"

type ProfileType int

const (
	ProfileCurve ProfileType = iota
	ProfileArea
)

var ProfileTypes = ifc.NewEnum("IfcProfileTypeEnum", map[ProfileType]string{
	ProfileCurve: "CURVE",
	ProfileArea:  "AREA",
})

type AccessState int

const (
	ReadWrite AccessState = iota
	ReadOnly
	Locked
	ReadWriteLocked
	ReadOnlyLocked
)

var AccessStates = ifc.NewEnum("IfcStateEnum", map[AccessState]string{
	ReadWrite:       "READWRITE",
	ReadOnly:        "READONLY",
	Locked:          "LOCKED",
	ReadWriteLocked: "READWRITELOCKED",
	ReadOnlyLocked:  "READONLYLOCKED",
})

type ChangeAction int

const (
	ChangeNotDefined ChangeAction = iota
	NoChange
	Modified
	Added
	Deleted
)

var ChangeActions = ifc.NewEnum("IfcChangeActionEnum", map[ChangeAction]string{
	ChangeNotDefined: "NOTDEFINED",
	NoChange:         "NOCHANGE",
	Modified:         "MODIFIED",
	Added:            "ADDED",
	Deleted:          "DELETED",
})

type Role int

const (
	RoleUserDefined Role = iota
	RoleSupplier
	RoleManufacturer
	RoleContractor
	RoleSubcontractor
	RoleArchitect
	RoleStructuralEngineer
	RoleCostEngineer
	RoleClient
	RoleBuildingOwner
	RoleBuildingOperator
	RoleMechanicalEngineer
	RoleElectricalEngineer
	RoleProjectManager
	RoleFacilitiesManager
	RoleCivilEngineer
	RoleCommissioningEngineer
	RoleEngineer
	RoleOwner
	RoleConsultant
	RoleConstructionManager
	RoleFieldConstructionManager
	RoleReseller
)

var Roles = ifc.NewEnum("IfcRoleEnum", map[Role]string{
	RoleUserDefined:              "USERDEFINED",
	RoleSupplier:                 "SUPPLIER",
	RoleManufacturer:             "MANUFACTURER",
	RoleContractor:               "CONTRACTOR",
	RoleSubcontractor:            "SUBCONTRACTOR",
	RoleArchitect:                "ARCHITECT",
	RoleStructuralEngineer:       "STRUCTURALENGINEER",
	RoleCostEngineer:             "COSTENGINEER",
	RoleClient:                   "CLIENT",
	RoleBuildingOwner:            "BUILDINGOWNER",
	RoleBuildingOperator:         "BUILDINGOPERATOR",
	RoleMechanicalEngineer:       "MECHANICALENGINEER",
	RoleElectricalEngineer:       "ELECTRICALENGINEER",
	RoleProjectManager:           "PROJECTMANAGER",
	RoleFacilitiesManager:        "FACILITIESMANAGER",
	RoleCivilEngineer:            "CIVILENGINEER",
	RoleCommissioningEngineer:    "COMMISSIONINGENGINEER",
	RoleEngineer:                 "ENGINEER",
	RoleOwner:                    "OWNER",
	RoleConsultant:               "CONSULTANT",
	RoleConstructionManager:      "CONSTRUCTIONMANAGER",
	RoleFieldConstructionManager: "FIELDCONSTRUCTIONMANAGER",
	RoleReseller:                 "RESELLER",
})

type AddressType int

const (
	AddressUserDefined AddressType = iota
	AddressOffice
	AddressSite
	AddressHome
	AddressDistributionPoint
)

var AddressTypes = ifc.NewEnum("IfcAddressTypeEnum", map[AddressType]string{
	AddressUserDefined:       "USERDEFINED",
	AddressOffice:            "OFFICE",
	AddressSite:              "SITE",
	AddressHome:              "HOME",
	AddressDistributionPoint: "DISTRIBUTIONPOINT",
})

type LayerSetDirection int

const (
	Axis1 LayerSetDirection = iota + 1
	Axis2
	Axis3
)

var LayerSetDirections = ifc.NewEnum("IfcLayerSetDirectionEnum", map[LayerSetDirection]string{
	Axis1: "AXIS1",
	Axis2: "AXIS2",
	Axis3: "AXIS3",
})

type DirectionSense int

const (
	Positive DirectionSense = iota
	Negative
)

var DirectionSenses = ifc.NewEnum("IfcDirectionSenseEnum", map[DirectionSense]string{
	Positive: "POSITIVE",
	Negative: "NEGATIVE",
})

type ElementComposition int

const (
	CompositionElement ElementComposition = iota
	CompositionComplex
	CompositionPartial
)

var ElementCompositions = ifc.NewEnum("IfcElementCompositionEnum", map[ElementComposition]string{
	CompositionElement: "ELEMENT",
	CompositionComplex: "COMPLEX",
	CompositionPartial: "PARTIAL",
})

type WallPredefinedType int

const (
	WallNotDefined WallPredefinedType = iota
	WallMovable
	WallParapet
	WallPartitioning
	WallPlumbingWall
	WallShear
	WallSolidWall
	WallStandard
	WallPolygonal
	WallElementedWall
	WallUserDefined
)

var WallTypes = ifc.NewEnum("IfcWallTypeEnum", map[WallPredefinedType]string{
	WallNotDefined:    "NOTDEFINED",
	WallMovable:       "MOVABLE",
	WallParapet:       "PARAPET",
	WallPartitioning:  "PARTITIONING",
	WallPlumbingWall:  "PLUMBINGWALL",
	WallShear:         "SHEAR",
	WallSolidWall:     "SOLIDWALL",
	WallStandard:      "STANDARD",
	WallPolygonal:     "POLYGONAL",
	WallElementedWall: "ELEMENTEDWALL",
	WallUserDefined:   "USERDEFINED",
})

type WindowPredefinedType int

const (
	WindowNotDefined WindowPredefinedType = iota
	WindowWindow
	WindowSkylight
	WindowLightDome
	WindowUserDefined
)

var WindowTypes = ifc.NewEnum("IfcWindowTypeEnum", map[WindowPredefinedType]string{
	WindowNotDefined:  "NOTDEFINED",
	WindowWindow:      "WINDOW",
	WindowSkylight:    "SKYLIGHT",
	WindowLightDome:   "LIGHTDOME",
	WindowUserDefined: "USERDEFINED",
})

type WindowPartitioning int

const (
	PartitioningNotDefined WindowPartitioning = iota
	SinglePanel
	DoublePanelVertical
	DoublePanelHorizontal
	TriplePanelVertical
	TriplePanelBottom
	TriplePanelTop
	TriplePanelLeft
	TriplePanelRight
	TriplePanelHorizontal
	PartitioningUserDefined
)

var WindowPartitionings = ifc.NewEnum("IfcWindowTypePartitioningEnum", map[WindowPartitioning]string{
	PartitioningNotDefined:  "NOTDEFINED",
	SinglePanel:             "SINGLE_PANEL",
	DoublePanelVertical:     "DOUBLE_PANEL_VERTICAL",
	DoublePanelHorizontal:   "DOUBLE_PANEL_HORIZONTAL",
	TriplePanelVertical:     "TRIPLE_PANEL_VERTICAL",
	TriplePanelBottom:       "TRIPLE_PANEL_BOTTOM",
	TriplePanelTop:          "TRIPLE_PANEL_TOP",
	TriplePanelLeft:         "TRIPLE_PANEL_LEFT",
	TriplePanelRight:        "TRIPLE_PANEL_RIGHT",
	TriplePanelHorizontal:   "TRIPLE_PANEL_HORIZONTAL",
	PartitioningUserDefined: "USERDEFINED",
})

type OpeningPredefinedType int

const (
	OpeningNotDefined OpeningPredefinedType = iota
	OpeningOpening
	OpeningRecess
	OpeningUserDefined
)

var OpeningTypes = ifc.NewEnum("IfcOpeningElementTypeEnum", map[OpeningPredefinedType]string{
	OpeningNotDefined:  "NOTDEFINED",
	OpeningOpening:     "OPENING",
	OpeningRecess:      "RECESS",
	OpeningUserDefined: "USERDEFINED",
})

type SpacePredefinedType int

const (
	SpaceNotDefined SpacePredefinedType = iota
	SpaceSpace
	SpaceParking
	SpaceGFA
	SpaceInternal
	SpaceExternal
	SpaceUserDefined
)

var SpaceTypes = ifc.NewEnum("IfcSpaceTypeEnum", map[SpacePredefinedType]string{
	SpaceNotDefined:  "NOTDEFINED",
	SpaceSpace:       "SPACE",
	SpaceParking:     "PARKING",
	SpaceGFA:         "GFA",
	SpaceInternal:    "INTERNAL",
	SpaceExternal:    "EXTERNAL",
	SpaceUserDefined: "USERDEFINED",
})

type GeometricProjection int

const (
	ProjectionNotDefined GeometricProjection = iota
	GraphView
	SketchView
	ModelView
	PlanView
	ReflectedPlanView
	SectionView
	ElevationView
	ProjectionUserDefined
)

var GeometricProjections = ifc.NewEnum("IfcGeometricProjectionEnum", map[GeometricProjection]string{
	ProjectionNotDefined:  "NOTDEFINED",
	GraphView:             "GRAPH_VIEW",
	SketchView:            "SKETCH_VIEW",
	ModelView:             "MODEL_VIEW",
	PlanView:              "PLAN_VIEW",
	ReflectedPlanView:     "REFLECTED_PLAN_VIEW",
	SectionView:           "SECTION_VIEW",
	ElevationView:         "ELEVATION_VIEW",
	ProjectionUserDefined: "USERDEFINED",
})

type UnitType int

const (
	UnitUserDefined UnitType = iota
	LengthUnit
	AreaUnit
	VolumeUnit
	PlaneAngleUnit
	SolidAngleUnit
	MassUnit
	TimeUnit
	ThermodynamicTemperatureUnit
	LuminousIntensityUnit
	AmountOfSubstanceUnit
	ElectricCurrentUnit
)

var UnitTypes = ifc.NewEnum("IfcUnitEnum", map[UnitType]string{
	UnitUserDefined:              "USERDEFINED",
	LengthUnit:                   "LENGTHUNIT",
	AreaUnit:                     "AREAUNIT",
	VolumeUnit:                   "VOLUMEUNIT",
	PlaneAngleUnit:               "PLANEANGLEUNIT",
	SolidAngleUnit:               "SOLIDANGLEUNIT",
	MassUnit:                     "MASSUNIT",
	TimeUnit:                     "TIMEUNIT",
	ThermodynamicTemperatureUnit: "THERMODYNAMICTEMPERATUREUNIT",
	LuminousIntensityUnit:        "LUMINOUSINTENSITYUNIT",
	AmountOfSubstanceUnit:        "AMOUNTOFSUBSTANCEUNIT",
	ElectricCurrentUnit:          "ELECTRICCURRENTUNIT",
})

type SIPrefix int

const (
	Exa SIPrefix = iota + 1
	Peta
	Tera
	Giga
	Mega
	Kilo
	Hecto
	Deca
	Deci
	Centi
	Milli
	Micro
	Nano
	Pico
	Femto
	Atto
)

var SIPrefixes = ifc.NewEnum("IfcSIPrefix", map[SIPrefix]string{
	Exa:   "EXA",
	Peta:  "PETA",
	Tera:  "TERA",
	Giga:  "GIGA",
	Mega:  "MEGA",
	Kilo:  "KILO",
	Hecto: "HECTO",
	Deca:  "DECA",
	Deci:  "DECI",
	Centi: "CENTI",
	Milli: "MILLI",
	Micro: "MICRO",
	Nano:  "NANO",
	Pico:  "PICO",
	Femto: "FEMTO",
	Atto:  "ATTO",
})

type SIUnitName int

const (
	Metre SIUnitName = iota + 1
	SquareMetre
	CubicMetre
	Gram
	Second
	Radian
	Steradian
	Kelvin
	DegreeCelsius
	Ampere
	Mole
	Candela
)

var SIUnitNames = ifc.NewEnum("IfcSIUnitName", map[SIUnitName]string{
	Metre:         "METRE",
	SquareMetre:   "SQUARE_METRE",
	CubicMetre:    "CUBIC_METRE",
	Gram:          "GRAM",
	Second:        "SECOND",
	Radian:        "RADIAN",
	Steradian:     "STERADIAN",
	Kelvin:        "KELVIN",
	DegreeCelsius: "DEGREE_CELSIUS",
	Ampere:        "AMPERE",
	Mole:          "MOLE",
	Candela:       "CANDELA",
})
