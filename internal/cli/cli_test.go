package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/entities"
)

const canonical = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION(('ViewDefinition [CoordinationView]'),'2;1');
FILE_NAME('model.ifc','2024-01-01T00:00:00',(''),(''),'','','');
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCMATERIAL('Masonry',$,$);
#2=IFCMATERIAL('Glass',$,$);
ENDSEC;
END-ISO-10303-21;
`

const messy = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION(('ViewDefinition [CoordinationView]'), '2;1');
FILE_NAME('model.ifc','2024-01-01T00:00:00',(''),(''),'','','');
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
/* materials */
#1= IFCMATERIAL ('Masonry', $, $);
#2=IFCMATERIAL('Glass',$,$);
ENDSEC;
END-ISO-10303-21;
`

type env struct {
	t      *testing.T
	dir    string
	config string
}

func newEnv(t *testing.T) *env {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(config, []byte(`
archive = "store/archive.db"

[header]
author = "Jane Doe"
organization = "ACME"
`), 0o644))
	return &env{t: t, dir: dir, config: config}
}

func (e *env) file(name, content string) string {
	path := filepath.Join(e.dir, name)
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (e *env) run(args ...string) (string, error) {
	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", e.config}, args...))
	err := root.Execute()
	return stdout.String(), err
}

func TestFmt(t *testing.T) {
	e := newEnv(t)
	path := e.file("model.ifc", messy)

	out, err := e.run("fmt", path)
	require.NoError(t, err)
	require.Equal(t, canonical, out)

	out, err = e.run("fmt", "-l", path)
	require.NoError(t, err)
	require.Equal(t, path+"\n", out)

	_, err = e.run("fmt", "-w", path)
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, canonical, string(raw))

	out, err = e.run("fmt", "-l", path)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestFmt_ParseError(t *testing.T) {
	e := newEnv(t)
	path := e.file("bad.ifc", strings.Replace(canonical, "IFCMATERIAL('Glass',$,$)", "IFCMATERIAL('Glass',$)", 1))
	_, err := e.run("fmt", path)
	require.ErrorContains(t, err, "too few attributes")
}

func TestStats(t *testing.T) {
	e := newEnv(t)
	path := e.file("model.ifc", canonical)

	out, err := e.run("stats", path)
	require.NoError(t, err)
	require.Contains(t, out, "IFCMATERIAL")
	require.Contains(t, out, "2 records")

	out, err = e.run("stats", "-f", "json", path)
	require.NoError(t, err)
	var js []struct {
		File    string `json:"file"`
		Records int    `json:"records"`
		Kinds   []ifc.KindStats
	}
	require.NoError(t, json.Unmarshal([]byte(out), &js))
	require.Len(t, js, 1)
	require.Equal(t, path, js[0].File)
	require.Equal(t, 2, js[0].Records)
	require.Equal(t, "IFCMATERIAL", js[0].Kinds[0].Keyword)

	out, err = e.run("stats", "-f", "yaml", path)
	require.NoError(t, err)
	var ys []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &ys))
	require.Len(t, ys, 1)
	require.Equal(t, 2, ys[0]["records"])

	_, err = e.run("stats", "-f", "xml", path)
	require.ErrorContains(t, err, "unknown output format")
}

func TestCheck(t *testing.T) {
	e := newEnv(t)
	good := e.file("good.ifc", canonical)
	_, err := e.run("check", good)
	require.NoError(t, err)

	bad := e.file("bad.ifc", strings.Replace(canonical,
		"#2=IFCMATERIAL('Glass',$,$);",
		"#2=IFCMATERIALLAYER(#1,0.2,$,$,$,$,$);\n#3=IFCMATERIALLAYERSET((#2,#7),$,$);", 1))
	out, err := e.run("check", bad)
	require.ErrorIs(t, err, errProblemsFound)
	require.Contains(t, out, "#3=IFCMATERIALLAYERSET.MaterialLayers[1]")

	out, err = e.run("check", "-f", "json", bad)
	require.ErrorIs(t, err, errProblemsFound)
	var reports []problemReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	require.Equal(t, ifc.ID(3), reports[0].ID)
	require.Equal(t, ifc.ID(7), reports[0].Target)
}

func TestArchive(t *testing.T) {
	e := newEnv(t)
	path := e.file("Office Block.ifc", canonical)

	out, err := e.run("archive", "put", path)
	require.NoError(t, err)
	require.Contains(t, out, "stored as office-block (2 records)")

	out, err = e.run("archive", "put", path)
	require.NoError(t, err)
	require.Contains(t, out, "unchanged")

	out, err = e.run("archive", "ls")
	require.NoError(t, err)
	require.Contains(t, out, "office-block")
	require.Contains(t, out, "model.ifc")

	out, err = e.run("archive", "get", "office-block")
	require.NoError(t, err)
	require.Equal(t, canonical, out)

	copyPath := filepath.Join(e.dir, "copy.ifc")
	_, err = e.run("archive", "get", "office-block", "-o", copyPath)
	require.NoError(t, err)
	raw, err := os.ReadFile(copyPath)
	require.NoError(t, err)
	require.Equal(t, canonical, string(raw))

	_, err = e.run("archive", "rm", "office-block")
	require.NoError(t, err)
	out, err = e.run("archive", "ls", "-f", "json")
	require.NoError(t, err)
	require.JSONEq(t, "[]", out)

	_, err = e.run("archive", "get", "office-block")
	require.ErrorContains(t, err, "not found")

	require.FileExists(t, filepath.Join(e.dir, "store", "archive.db"))
}

func TestDemo(t *testing.T) {
	e := newEnv(t)
	out, err := e.run("demo", "--name", "Sample")
	require.NoError(t, err)
	require.Contains(t, out, "FILE_NAME('Sample.ifc',")
	require.Contains(t, out, "('Jane Doe'),('ACME')")

	doc, err := ifc.Parse(out, entities.Schema, ifc.Options{})
	require.NoError(t, err)
	require.Equal(t, out, doc.Render())

	path := filepath.Join(e.dir, "demo.ifc")
	_, err = e.run("demo", "-o", path)
	require.NoError(t, err)
	_, err = e.run("check", path)
	require.NoError(t, err)
}

func TestMissingConfig(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.toml"), "demo"})
	require.Error(t, root.Execute())
}
