package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/reoring/scbind/registry"
	"github.com/reoring/scbind/schema"
)

func render(t *testing.T, c *schema.Contract, opt Options) string {
	t.Helper()
	tbl, err := registry.FromSchema(c)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	out, err := Render(c, tbl, opt)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "consts.go", out, parser.AllErrors); err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, out)
	}
	return string(out)
}

func TestRender_Blocklog(t *testing.T) {
	c := &schema.Contract{
		Name:        "blocklog",
		Description: "Block log contract",
		Views: []schema.Func{
			{Name: "getRequestReceipt", Params: []schema.Field{{Name: "requestID", Key: "u"}}, Results: []schema.Field{{Name: "requestReceipt", Key: "d"}}},
			{Name: "getBlockInfo", Params: []schema.Field{{Name: "blockIndex", Key: "n"}}},
		},
	}
	out := render(t, c, Options{})
	for _, want := range []string{
		DefaultHeader,
		"package coreblocklog",
		`import "github.com/reoring/scbind/hname"`,
		"HScName       = hname.Hname(0xf538ef2b)",
		`ParamBlockIndex = "n"`,
		"HViewGetBlockInfo      = hname.Hname(0xbe89f9b3)",
		"HParamBlockIndex = hname.Hname(0x8fde9315)",
		"HParamRequestID  = hname.Hname(0x986cd755)",
		`ResultRequestReceipt = "d"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	// views are sorted by name
	if strings.Index(out, "ViewGetBlockInfo ") > strings.Index(out, "ViewGetRequestReceipt ") {
		t.Fatalf("views not sorted:\n%s", out)
	}
	if strings.Contains(out, "Func") {
		t.Fatalf("empty function block must be skipped:\n%s", out)
	}
}

func TestRender_Options(t *testing.T) {
	c := &schema.Contract{Name: "blob", Funcs: []schema.Func{{Name: "storeBlob"}}}
	out := render(t, c, Options{Package: "blob", HnameImport: "example.com/x/hname", Header: "// custom header"})
	if !strings.HasPrefix(out, "// custom header\n") || !strings.Contains(out, "package blob\n") || !strings.Contains(out, `import "example.com/x/hname"`) {
		t.Fatalf("options not applied:\n%s", out)
	}
}

func TestRender_TableMismatch(t *testing.T) {
	a := &schema.Contract{Name: "a"}
	tbl, err := registry.FromSchema(&schema.Contract{Name: "b"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Render(a, tbl, Options{}); err == nil {
		t.Fatalf("expected error for a table of another contract")
	}
}

func TestExport(t *testing.T) {
	tests := map[string]string{
		"deployContract": "DeployContract",
		"vmType":         "VMType",
		"evmChainId":     "EVMChainId",
		"id":             "ID",
		"identity":       "Identity",
		"accessAPI":      "AccessAPI",
		"setEVMGasRatio": "SetEVMGasRatio",
		"urlPath":        "URLPath",
		"field-name":     "FieldName",
		"this":           "This",
	}
	for in, want := range tests {
		if got := Export(in); got != want {
			t.Fatalf("Export(%q) = %q, want %q", in, got, want)
		}
	}
}
