package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/schema"
)

const blocklogYAML = `
name: blocklog
description: Block log contract
views:
  - name: getBlockInfo
    params:
      - {name: blockIndex, key: n, type: Uint32}
    results:
      - {name: blockIndex, key: n, type: Uint32}
      - {name: blockInfo, key: i, type: Bytes}
  - name: getRequestReceipt
    params:
      - {name: requestID, key: u, type: RequestID}
    results:
      - {name: requestReceipt, key: d, type: Bytes}
`

func TestParse_YAML(t *testing.T) {
	c, err := schema.Parse([]byte(blocklogYAML), schema.FormatYAML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Name != "blocklog" || len(c.Views) != 2 || len(c.Funcs) != 0 {
		t.Fatalf("unexpected contract: %+v", c)
	}
	params := c.Params()
	if len(params) != 2 || params[0].Name != "blockIndex" || params[1].WireKey() != "u" {
		t.Fatalf("unexpected params: %+v", params)
	}
	results := c.Results()
	if len(results) != 3 {
		t.Fatalf("expected 3 distinct results, got %+v", results)
	}
}

func TestParse_JSONAndDefaultKey(t *testing.T) {
	js := `{"name":"blob","funcs":[{"name":"storeBlob","results":[{"name":"hash","type":"Hash"}]}]}`
	c, err := schema.Parse([]byte(js), schema.FormatJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if k := c.Funcs[0].Results[0].WireKey(); k != "hash" {
		t.Fatalf("key must default to the name, got %q", k)
	}
}

func TestParse_RejectsUnknownSchemaFields(t *testing.T) {
	if _, err := schema.Parse([]byte("name: x\nfunctions: []\n"), schema.FormatYAML); err == nil {
		t.Fatalf("expected error for unknown yaml field")
	}
	if _, err := schema.Parse([]byte(`{"name":"x","functions":[]}`), schema.FormatJSON); err == nil {
		t.Fatalf("expected error for unknown json field")
	}
}

func TestValidate_Issues(t *testing.T) {
	c := &schema.Contract{
		Funcs: []schema.Func{
			{Name: "f", Params: []schema.Field{{Name: "a", Key: "x"}, {Name: "a"}}},
			{Name: "g", Params: []schema.Field{{Name: "a", Key: "y"}}},
		},
		Views: []schema.Func{{Name: "f"}, {}},
	}
	err := c.Validate()
	iss, ok := scbind.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	paths := map[string]string{}
	for _, it := range iss {
		paths[it.Path] = it.Code
	}
	want := map[string]string{
		"/name":                  scbind.CodeRequired,
		"/funcs/0/params/1/name": scbind.CodeDuplicateKey,
		"/funcs/1/params/0/key":  scbind.CodeDuplicateKey,
		"/views/0/name":          scbind.CodeDuplicateKey,
		"/views/1/name":          scbind.CodeRequired,
	}
	for p, code := range want {
		if paths[p] != code {
			t.Fatalf("expected %s at %s, got issues %v", code, p, iss)
		}
	}
}

func TestLoad_PicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "blocklog.yaml")
	if err := os.WriteFile(p, []byte(blocklogYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := schema.Load(p); err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if schema.FormatFromPath("x.JSON") != schema.FormatJSON {
		t.Fatalf("extension match must be case-insensitive")
	}
	if _, err := schema.Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
