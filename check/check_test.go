package check

import (
	"errors"
	"strings"
	"testing"

	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/entities"
)

func parse(t testing.TB, records ...string) *ifc.Document {
	t.Helper()
	var buf strings.Builder
	buf.WriteString("ISO-10303-21;\nHEADER;\n")
	buf.WriteString("FILE_DESCRIPTION(('ViewDefinition [CoordinationView]'),'2;1');\n")
	buf.WriteString("FILE_NAME('model.ifc','2024-01-01T00:00:00',(''),(''),'','','');\n")
	buf.WriteString("FILE_SCHEMA(('IFC4'));\nENDSEC;\nDATA;\n")
	for _, rec := range records {
		buf.WriteString(rec)
		buf.WriteByte('\n')
	}
	buf.WriteString("ENDSEC;\nEND-ISO-10303-21;\n")
	doc, err := ifc.Parse(buf.String(), entities.Schema, ifc.Options{})
	if err != nil {
		t.Fatalf("** %v", err)
	}
	return doc
}

func TestDangling_Clean(t *testing.T) {
	doc := parse(t,
		`#1=IFCCARTESIANPOINT((0.0,0.0,0.0));`,
		`#2=IFCAXIS2PLACEMENT3D(#1,$,$);`,
		`#3=IFCLOCALPLACEMENT($,#2);`,
		`#4=IFCWALL('2O2Fr$t4X7Zf8NOew3FLOH',$,'Wall',$,$,#3,$,$,$);`,
	)
	problems := Dangling(doc)
	if len(problems) != 0 {
		t.Fatalf("** got %v, wanted no problems", problems)
	}
	if err := Err(doc); err != nil {
		t.Fatalf("** Err = %v", err)
	}
}

func TestDangling_Missing(t *testing.T) {
	doc := parse(t,
		`#1=IFCWALL('2O2Fr$t4X7Zf8NOew3FLOH',$,'Wall',$,$,#9,$,$,$);`,
		`#2=IFCMATERIALLAYERSET((#10,#11),$,$);`,
		`#10=IFCMATERIALLAYER($,0.1,$,$,$,$,$);`,
	)
	problems := Dangling(doc)
	if len(problems) != 2 {
		t.Fatalf("** got %d problems %v, wanted 2", len(problems), problems)
	}

	p := problems[0]
	eq(t, p.ID, ifc.ID(1))
	eq(t, p.Keyword, "IFCWALL")
	eq(t, p.Path, "ObjectPlacement")
	eq(t, p.Target, ifc.ID(9))
	var ke *ifc.KindError
	if !errors.As(p, &ke) || !ke.Missing() {
		t.Errorf("** got %v, wanted missing-record KindError", p.Err)
	}

	eq(t, problems[1].Path, "MaterialLayers[1]")
	eq(t, problems[1].Target, ifc.ID(11))
}

func TestDangling_WrongKind(t *testing.T) {
	doc := parse(t,
		`#1=IFCMATERIAL('Brick',$,$);`,
		`#2=IFCRELAGGREGATES('2a8wKcoXb6z9ZSi1oRmG8C',$,$,$,#1,(#1));`,
	)
	problems := Dangling(doc)
	eq(t, len(problems), 2)
	for _, p := range problems {
		var ke *ifc.KindError
		if !errors.As(p, &ke) || ke.Got != "IFCMATERIAL" {
			t.Errorf("** %v: wanted kind mismatch", p)
		}
	}
	eq(t, problems[0].Path, "RelatingObject")
	eq(t, problems[1].Path, "RelatedObjects[0]")

	err := Err(doc)
	if err == nil || !strings.Contains(err.Error(), "#2=IFCRELAGGREGATES.RelatingObject") {
		t.Errorf("** Err = %v", err)
	}
}

func TestDangling_InlineValues(t *testing.T) {
	doc := parse(t,
		`#1=IFCSIUNIT(*,.PLANEANGLEUNIT.,$,.RADIAN.);`,
		`#2=IFCMEASUREWITHUNIT(IFCPLANEANGLEMEASURE(0.0174533),#1);`,
		`#3=IFCMEASUREWITHUNIT(IFCPLANEANGLEMEASURE(1.0),#7);`,
	)
	problems := Dangling(doc)
	eq(t, len(problems), 1)
	eq(t, problems[0].Path, "UnitComponent")
}

func TestReferences(t *testing.T) {
	doc := parse(t,
		`#1=IFCPERSON($,'Doe',$,$,$,$,$,$);`,
		`#2=IFCORGANIZATION($,'ACME',$,$,$);`,
		`#3=IFCPERSONANDORGANIZATION(#1,#2,$);`,
		`#4=IFCRELAGGREGATES('2a8wKcoXb6z9ZSi1oRmG8C',#9,$,$,#5,(#6,#7));`,
	)
	var got []string
	References(doc.RecordStore().Untyped(4), func(path string, id ifc.ID) {
		got = append(got, path+"="+id.String())
	})
	eq(t, strings.Join(got, " "), "OwnerHistory=#9 RelatingObject=#5 RelatedObjects[0]=#6 RelatedObjects[1]=#7")

	got = nil
	References(doc.RecordStore().Untyped(3), func(path string, id ifc.ID) {
		got = append(got, path+"="+id.String())
	})
	eq(t, strings.Join(got, " "), "ThePerson=#1 TheOrganization=#2")
}

func eq[T comparable](t testing.TB, a, e T) {
	if a != e {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}
