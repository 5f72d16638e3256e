package builder

import (
	"time"

	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/entities"
)

type Options struct {
	Name         string
	Author       string
	Organization string
	Application  string
	Version      string

	// Now defaults to time.Now; tests pin it.
	Now func() time.Time

	Logf    func(format string, args ...any)
	Verbose bool
}

// Project accumulates a model and renders it with Build. Sites, buildings
// and storeys hang off it; relationships between them are only written out
// by Build.
type Project struct {
	doc  *ifc.Document
	opt  Options
	done bool

	ownerHistory ifc.Ref[*entities.OwnerHistory]
	project      ifc.Ref[*entities.Project]
	context      ifc.Ref[*entities.GeometricRepresentationContext]
	body         ifc.Ref[*entities.GeometricRepresentationSubContext]

	origin ifc.RefOr[*entities.CartesianPoint]
	zAxis  ifc.RefOr[*entities.Direction]

	sites []*Site

	materials relations // material -> associated objects and types
	types     relations // type -> typed occurrences
	voids     [][2]ifc.ID

	wallUsage     map[ifc.ID]ifc.Ref[*entities.MaterialLayerSetUsage]
	openingToWall map[ifc.ID]ifc.Ref[*entities.Wall]
}

// New starts a project: header, owner history, SI units and a 3D model
// context with a Body sub-context.
func New(opt Options) *Project {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Name == "" {
		opt.Name = "Project"
	}
	if opt.Application == "" {
		opt.Application = "ifctool"
	}
	if opt.Version == "" {
		opt.Version = "1.0"
	}
	p := &Project{
		doc:           ifc.New(entities.Schema, ifc.Options{Logf: opt.Logf, Verbose: opt.Verbose}),
		opt:           opt,
		origin:        ifc.ValueOf(entities.Point3(entities.Vec3{})),
		zAxis:         ifc.ValueOf(entities.Direction3(entities.Vec3{Z: 1})),
		wallUsage:     make(map[ifc.ID]ifc.Ref[*entities.MaterialLayerSetUsage]),
		openingToWall: make(map[ifc.ID]ifc.Ref[*entities.Wall]),
	}
	now := opt.Now()

	h := &p.doc.Header
	h.Name = text(opt.Name + ".ifc")
	h.TimeStamp = now.UTC().Format("2006-01-02T15:04:05")
	h.Author = []string{text(opt.Author)}
	h.Organization = []string{text(opt.Organization)}
	h.PreprocessorVersion = text(opt.Application + " " + opt.Version)
	h.OriginatingSystem = text(opt.Application)

	person := ifc.Add(p.doc, &entities.Person{FamilyName: optText(opt.Author)})
	org := ifc.Add(p.doc, &entities.Organization{Name: text(orDefault(opt.Organization, opt.Application))})
	user := ifc.Add(p.doc, &entities.PersonAndOrganization{ThePerson: person, TheOrganization: org})
	app := ifc.Add(p.doc, &entities.Application{
		ApplicationDeveloper:  org,
		Version:               text(opt.Version),
		ApplicationFullName:   text(opt.Application),
		ApplicationIdentifier: text(opt.Application),
	})
	p.ownerHistory = ifc.Add(p.doc, &entities.OwnerHistory{
		OwningUser:        user,
		OwningApplication: app,
		ChangeAction:      ifc.Some(entities.Added),
		CreationDate:      now.Unix(),
	})

	units := ifc.Add(p.doc, &entities.UnitAssignment{Units: []ifc.Ref[entities.AnyUnit]{
		p.siUnit(entities.LengthUnit, entities.Metre),
		p.siUnit(entities.AreaUnit, entities.SquareMetre),
		p.siUnit(entities.VolumeUnit, entities.CubicMetre),
		p.siUnit(entities.PlaneAngleUnit, entities.Radian),
	}})

	world := ifc.Add(p.doc, &entities.Axis2Placement3D{Location: p.origin.Ref(p.doc)})
	north := ifc.Add(p.doc, entities.Direction2(entities.Vec2{Y: 1}))
	p.context = ifc.Add(p.doc, &entities.GeometricRepresentationContext{
		ContextType:              ifc.Some("Model"),
		CoordinateSpaceDimension: 3,
		Precision:                ifc.Some(0.00001),
		WorldCoordinateSystem:    retype[entities.AnyPlacement](world),
		TrueNorth:                ifc.Some(north),
	})
	p.body = ifc.Add(p.doc, &entities.GeometricRepresentationSubContext{
		ContextIdentifier: ifc.Some("Body"),
		ContextType:       ifc.Some("Model"),
		ParentContext:     p.context,
		TargetView:        entities.ModelView,
	})

	proj := &entities.Project{}
	proj.Root = p.root(opt.Name)
	proj.RepresentationContexts = ifc.Some([]ifc.Ref[entities.AnyRepresentationContext]{retype[entities.AnyRepresentationContext](p.context)})
	proj.UnitsInContext = ifc.Some(units)
	p.project = ifc.Add(p.doc, proj)
	return p
}

// Document returns the model under construction.
func (p *Project) Document() *ifc.Document {
	return p.doc
}

// Build writes out the relationships collected so far and renders the
// document. Calling it again re-renders without adding anything.
func (p *Project) Build() string {
	if !p.done {
		p.done = true
		p.emitRelationships()
	}
	return p.doc.Render()
}

func (p *Project) emitRelationships() {
	sites := make([]ifc.ID, 0, len(p.sites))
	for _, site := range p.sites {
		sites = append(sites, site.ref.ID())
	}
	p.aggregate(p.project.ID(), sites)

	for _, site := range p.sites {
		site.emitRelationships()
	}

	for rel := range p.materials.all() {
		r := &entities.RelAssociatesMaterial{
			Root:             p.root(""),
			RelatedObjects:   retypeIDs[entities.AnyRoot](rel.related),
			RelatingMaterial: ifc.RefTo[entities.AnyMaterial](rel.relating),
		}
		ifc.Add(p.doc, r)
	}
	for rel := range p.types.all() {
		ifc.Add(p.doc, &entities.RelDefinesByType{
			Root:           p.root(""),
			RelatedObjects: retypeIDs[entities.AnyObject](rel.related),
			RelatingType:   ifc.RefTo[entities.AnyTypeObject](rel.relating),
		})
	}
	for _, pair := range p.voids {
		ifc.Add(p.doc, &entities.RelVoidsElement{
			Root:                    p.root(""),
			RelatingBuildingElement: ifc.RefTo[entities.AnyElement](pair[0]),
			RelatedOpeningElement:   ifc.RefTo[*entities.OpeningElement](pair[1]),
		})
	}
}

func (p *Project) aggregate(relating ifc.ID, related []ifc.ID) {
	if len(related) == 0 {
		return
	}
	ifc.Add(p.doc, &entities.RelAggregates{
		Root:           p.root(""),
		RelatingObject: ifc.RefTo[entities.AnyObject](relating),
		RelatedObjects: retypeIDs[entities.AnyObject](related),
	})
}

func (p *Project) contain(structure ifc.ID, elements []ifc.ID) {
	if len(elements) == 0 {
		return
	}
	ifc.Add(p.doc, &entities.RelContainedInSpatialStructure{
		Root:              p.root(""),
		RelatedElements:   retypeIDs[entities.AnyProduct](elements),
		RelatingStructure: ifc.RefTo[entities.AnySpatialElement](structure),
	})
}

func (p *Project) root(name string) entities.Root {
	root := entities.NewRoot(text(name))
	root.OwnerHistory = ifc.Some(p.ownerHistory)
	return root
}

func (p *Project) siUnit(ut entities.UnitType, name entities.SIUnitName) ifc.Ref[entities.AnyUnit] {
	return retype[entities.AnyUnit](ifc.Add(p.doc, &entities.SIUnit{UnitType: ut, Name: name}))
}

// placement adds a local placement at offset, relative to parent if given.
func (p *Project) placement(parent ifc.Optional[ifc.Ref[*entities.LocalPlacement]], offset entities.Vec3) ifc.Ref[*entities.LocalPlacement] {
	var location ifc.Ref[*entities.CartesianPoint]
	if offset == (entities.Vec3{}) {
		location = p.origin.Ref(p.doc)
	} else {
		location = ifc.Add(p.doc, entities.Point3(offset))
	}
	axis := ifc.Add(p.doc, &entities.Axis2Placement3D{Location: location})
	return ifc.Add(p.doc, &entities.LocalPlacement{
		PlacementRelTo:    parent,
		RelativePlacement: retype[entities.AnyPlacement](axis),
	})
}

// extrusion wraps a profile into a Body shape extruded along +Z.
func (p *Project) extrusion(profile ifc.Ref[entities.AnyProfileDef], depth float64) ifc.Ref[*entities.ProductDefinitionShape] {
	solid := ifc.Add(p.doc, &entities.ExtrudedAreaSolid{
		SweptArea:         profile,
		ExtrudedDirection: p.zAxis.Ref(p.doc),
		Depth:             depth,
	})
	shape := ifc.Add(p.doc, &entities.ShapeRepresentation{
		ContextOfItems:           retype[entities.AnyRepresentationContext](p.body),
		RepresentationIdentifier: ifc.Some("Body"),
		RepresentationType:       ifc.Some("SweptSolid"),
		Items:                    []ifc.Ref[entities.AnyRepresentationItem]{retype[entities.AnyRepresentationItem](solid)},
	})
	return ifc.Add(p.doc, &entities.ProductDefinitionShape{
		Representations: []ifc.Ref[*entities.ShapeRepresentation]{shape},
	})
}

// centeredRectangle is a width×depth rectangle with its corner at the
// placement origin.
func (p *Project) centeredRectangle(width, depth float64) ifc.Ref[entities.AnyProfileDef] {
	center := ifc.Add(p.doc, entities.Point2(entities.Vec2{X: width * 0.5, Y: depth * 0.5}))
	position := ifc.Add(p.doc, &entities.Axis2Placement2D{Location: center})
	profile := &entities.RectangleProfileDef{
		Position: ifc.Some(position),
		XDim:     width,
		YDim:     depth,
	}
	profile.ProfileType = entities.ProfileArea
	return retype[entities.AnyProfileDef](ifc.Add(p.doc, profile))
}

func (p *Project) product(name string, placement ifc.Ref[*entities.LocalPlacement], shape ifc.Ref[*entities.ProductDefinitionShape]) entities.Product {
	var v entities.Product
	v.Root = p.root(name)
	v.ObjectPlacement = ifc.Some(placement)
	if !shape.IsZero() {
		v.Representation = ifc.Some(shape)
	}
	return v
}

func text(s string) string {
	return ifc.EncodeText(s)
}

func optText(s string) ifc.Optional[string] {
	if s == "" {
		return ifc.None[string]()
	}
	return ifc.Some(text(s))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
