// Package gen renders the constants module of a contract: names, keys and
// their selectors as Go constants.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/reoring/scbind/registry"
	"github.com/reoring/scbind/schema"
)

const (
	DefaultHeader      = "// Code generated by scbind; DO NOT EDIT."
	DefaultHnameImport = "github.com/reoring/scbind/hname"
)

// Options controls the rendered file.
type Options struct {
	Package     string // defaults to "core" + contract name
	HnameImport string
	Header      string
}

type line struct {
	Name  string
	Value string
}

type file struct {
	Header      string
	Package     string
	HnameImport string
	Blocks      [][]line
}

var tmpl = template.Must(template.New("consts").Parse(`{{.Header}}

package {{.Package}}

import "{{.HnameImport}}"
{{range .Blocks}}
const (
{{- range .}}
	{{.Name}} = {{.Value}}
{{- end}}
)
{{end}}`))

// Render returns the gofmt'ed constants file of c. Selectors are taken from
// tbl, which must have been built from c.
func Render(c *schema.Contract, tbl *registry.Table, opt Options) ([]byte, error) {
	if opt.Package == "" {
		opt.Package = "core" + strings.ToLower(c.Name)
	}
	if opt.HnameImport == "" {
		opt.HnameImport = DefaultHnameImport
	}
	if opt.Header == "" {
		opt.Header = DefaultHeader
	}
	ct, ok := tbl.Contract()
	if !ok || ct.Name != c.Name {
		return nil, fmt.Errorf("gen: table was not built for contract %q", c.Name)
	}

	sel := func(ns registry.Namespace, key string) (string, error) {
		h, ok := tbl.Selector(ns, key)
		if !ok {
			return "", fmt.Errorf("gen: no %s selector for %q", ns, key)
		}
		return fmt.Sprintf("hname.Hname(0x%s)", h), nil
	}

	f := file{Header: opt.Header, Package: opt.Package, HnameImport: opt.HnameImport}
	f.Blocks = append(f.Blocks, []line{
		{"ScName", quote(c.Name)},
		{"ScDescription", quote(c.Description)},
		{"HScName", fmt.Sprintf("hname.Hname(0x%s)", ct.Selector)},
	})

	var params, results, names, hnames, hparams, hresults []line
	for _, p := range c.Params() {
		params = append(params, line{"Param" + Export(p.Name), quote(p.WireKey())})
		h, err := sel(registry.NamespaceParam, p.WireKey())
		if err != nil {
			return nil, err
		}
		hparams = append(hparams, line{"HParam" + Export(p.Name), h})
	}
	for _, r := range c.Results() {
		results = append(results, line{"Result" + Export(r.Name), quote(r.WireKey())})
		h, err := sel(registry.NamespaceResult, r.WireKey())
		if err != nil {
			return nil, err
		}
		hresults = append(hresults, line{"HResult" + Export(r.Name), h})
	}
	for _, g := range []struct {
		prefix string
		fns    []schema.Func
	}{{"Func", c.Funcs}, {"View", c.Views}} {
		sorted := append([]schema.Func(nil), g.fns...)
		sort.Slice(sorted, func(i, k int) bool { return sorted[i].Name < sorted[k].Name })
		for _, fn := range sorted {
			names = append(names, line{g.prefix + Export(fn.Name), quote(fn.Name)})
			h, err := sel(registry.NamespaceFunction, fn.Name)
			if err != nil {
				return nil, err
			}
			hnames = append(hnames, line{"H" + g.prefix + Export(fn.Name), h})
		}
	}
	for _, b := range [][]line{params, results, names, hnames, hparams, hresults} {
		if len(b) > 0 {
			f.Blocks = append(f.Blocks, b)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w", err)
	}
	return src, nil
}

func quote(s string) string { return fmt.Sprintf("%q", s) }

// initialisms are upper-cased as a whole when they lead a name.
var initialisms = []string{"evm", "api", "url", "vm", "id"}

// Export turns a schema name into an exported Go identifier: vmType becomes
// VMType and deployContract becomes DeployContract. Characters that cannot
// appear in an identifier are dropped and start a new word.
func Export(name string) string {
	for _, in := range initialisms {
		if rest, ok := strings.CutPrefix(name, in); ok && (rest == "" || unicode.IsUpper(rune(rest[0])) || unicode.IsDigit(rune(rest[0]))) {
			return strings.ToUpper(in) + Export(rest)
		}
	}
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
