package groups_test

import (
	"testing"

	svgattr "github.com/reoring/svgattr"
	"github.com/reoring/svgattr/groups"
)

const jsonTable = `{
  "groups": [
    {"name": "core", "attributes": [{"name": "id"}, {"name": "class"}]},
    {"name": "events", "attributes": [{"name": "onclick", "type": "script"}]}
  ],
  "elements": [
    {"tag": "path", "groups": ["core", "events"], "attributes": [{"name": "d"}, {"name": "pathLength"}]},
    {"tag": "g", "groups": ["core"], "hasContent": true}
  ]
}`

const yamlTable = `groups:
  - name: core
    attributes:
      - name: id
elements:
  - tag: path
    groups: [core]
    attributes:
      - name: d
        docs: https://www.w3.org/TR/SVG11/paths.html#DAttribute
`

// A second document in the stream extends the first.
const yamlTableMulti = yamlTable + `---
elements:
  - tag: g
    groups: [core]
    hasContent: true
`

const tomlTable = `
[[groups]]
name = "core"

  [[groups.attributes]]
  name = "id"

[[elements]]
tag = "path"
groups = ["core"]

  [[elements.attributes]]
  name = "d"
`

func TestImportJSON(t *testing.T) {
	tab, err := groups.ImportJSON([]byte(jsonTable))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(tab.Groups) != 2 || len(tab.Elements) != 2 {
		t.Fatalf("unexpected table shape: %d groups, %d elements", len(tab.Groups), len(tab.Elements))
	}
	if tab.Groups[1].Attributes[0].Type != "script" {
		t.Fatalf("attribute type lost: %+v", tab.Groups[1].Attributes[0])
	}
	if !tab.Elements[1].HasContent {
		t.Fatalf("hasContent lost")
	}
}

func TestImportJSON_Invalid(t *testing.T) {
	_, err := groups.ImportJSON([]byte("{"))
	iss, ok := svgattr.AsIssues(err)
	if !ok || iss[0].Code != svgattr.CodeParseError || iss[0].Cause == nil {
		t.Fatalf("expected parse issue with cause, got %v", err)
	}
}

func TestImportYAML(t *testing.T) {
	tab, err := groups.ImportYAML([]byte(yamlTable))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(tab.Groups) != 1 || len(tab.Elements) != 1 {
		t.Fatalf("unexpected table shape: %+v", tab)
	}
	if tab.Elements[0].Attributes[0].Docs == "" {
		t.Fatalf("docs link lost")
	}
}

func TestImportYAML_MultiDocument(t *testing.T) {
	tab, err := groups.ImportYAML([]byte(yamlTableMulti))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(tab.Groups) != 1 || len(tab.Elements) != 2 {
		t.Fatalf("documents not concatenated: %d groups, %d elements", len(tab.Groups), len(tab.Elements))
	}
	if tab.Elements[1].Tag != "g" {
		t.Fatalf("stream order lost: %+v", tab.Elements)
	}
}

func TestImportYAML_Invalid(t *testing.T) {
	_, err := groups.ImportYAML([]byte("groups: ["))
	iss, ok := svgattr.AsIssues(err)
	if !ok || iss[0].Code != svgattr.CodeParseError {
		t.Fatalf("expected parse issue, got %v", err)
	}
}

func TestImportTOML(t *testing.T) {
	tab, err := groups.ImportTOML([]byte(tomlTable))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(tab.Groups) != 1 || len(tab.Elements) != 1 {
		t.Fatalf("unexpected table shape: %+v", tab)
	}
	if tab.Elements[0].Groups[0] != "core" {
		t.Fatalf("group reference lost: %+v", tab.Elements[0])
	}
}

func TestImportTOML_Invalid(t *testing.T) {
	_, err := groups.ImportTOML([]byte("= broken"))
	iss, ok := svgattr.AsIssues(err)
	if !ok || iss[0].Code != svgattr.CodeParseError {
		t.Fatalf("expected parse issue, got %v", err)
	}
}
