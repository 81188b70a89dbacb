// Package schema holds the contract description consumed by the selector
// registry and the constants generator.
package schema

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/i18n"
)

// Field is one parameter or result of a function.
type Field struct {
	Name    string `yaml:"name" json:"name"`
	Key     string `yaml:"key,omitempty" json:"key,omitempty"` // wire key; defaults to Name
	Type    string `yaml:"type,omitempty" json:"type,omitempty"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// WireKey returns the key used on the wire and hashed into the selector.
func (f Field) WireKey() string {
	if f.Key != "" {
		return f.Key
	}
	return f.Name
}

// Func describes a function or a view.
type Func struct {
	Name    string  `yaml:"name" json:"name"`
	Comment string  `yaml:"comment,omitempty" json:"comment,omitempty"`
	Params  []Field `yaml:"params,omitempty" json:"params,omitempty"`
	Results []Field `yaml:"results,omitempty" json:"results,omitempty"`
}

// Contract is the full declaration of one contract.
type Contract struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Funcs       []Func `yaml:"funcs,omitempty" json:"funcs,omitempty"`
	Views       []Func `yaml:"views,omitempty" json:"views,omitempty"`
}

// Format selects the schema file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFromPath picks JSON for .json files and YAML otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads and validates a schema file.
func Load(path string) (*Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	c, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a schema document.
func Parse(data []byte, format Format) (*Contract, error) {
	var c Contract
	switch format {
	case FormatJSON:
		dec := j.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return nil, err
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the build-time invariants: names are non-empty, function
// and view names are unique, and a parameter or result name always maps to
// the same wire key.
func (c *Contract) Validate() error {
	var iss scbind.Issues
	if c.Name == "" {
		iss = append(iss, required("/name"))
	}
	seen := map[string]string{}
	params := map[string]string{}
	results := map[string]string{}
	check := func(kind string, fns []Func) {
		for i, fn := range fns {
			base := "/" + kind + "/" + strconv.Itoa(i)
			if fn.Name == "" {
				iss = append(iss, required(base+"/name"))
				continue
			}
			if prev, dup := seen[fn.Name]; dup {
				iss = append(iss, duplicate(base+"/name", fn.Name, prev))
			} else {
				seen[fn.Name] = base
			}
			iss = append(iss, checkFields(base+"/params", fn.Params, params)...)
			iss = append(iss, checkFields(base+"/results", fn.Results, results)...)
		}
	}
	check("funcs", c.Funcs)
	check("views", c.Views)
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func checkFields(base string, fields []Field, keys map[string]string) scbind.Issues {
	var iss scbind.Issues
	local := map[string]struct{}{}
	for i, f := range fields {
		p := base + "/" + strconv.Itoa(i)
		if f.Name == "" {
			iss = append(iss, required(p+"/name"))
			continue
		}
		if _, dup := local[f.Name]; dup {
			iss = append(iss, duplicate(p+"/name", f.Name, base))
			continue
		}
		local[f.Name] = struct{}{}
		if k, ok := keys[f.Name]; ok && k != f.WireKey() {
			iss = append(iss, scbind.Issue{
				Path:    p + "/key",
				Code:    scbind.CodeDuplicateKey,
				Message: fmt.Sprintf("field %q already declared with key %q", f.Name, k),
			})
			continue
		}
		keys[f.Name] = f.WireKey()
	}
	return iss
}

func required(path string) scbind.Issue {
	return scbind.Issue{Path: path, Code: scbind.CodeRequired, Message: i18n.T(scbind.CodeRequired, nil)}
}

func duplicate(path, name, prev string) scbind.Issue {
	return scbind.Issue{
		Path:    path,
		Code:    scbind.CodeDuplicateKey,
		Message: fmt.Sprintf("%q already declared at %s", name, prev),
	}
}

// Params returns every distinct parameter field of the contract, sorted by name.
func (c *Contract) Params() []Field {
	return c.collect(func(fn Func) []Field { return fn.Params })
}

// Results returns every distinct result field of the contract, sorted by name.
func (c *Contract) Results() []Field {
	return c.collect(func(fn Func) []Field { return fn.Results })
}

func (c *Contract) collect(pick func(Func) []Field) []Field {
	byName := map[string]Field{}
	for _, fns := range [][]Func{c.Funcs, c.Views} {
		for _, fn := range fns {
			for _, f := range pick(fn) {
				if _, ok := byName[f.Name]; !ok {
					byName[f.Name] = f
				}
			}
		}
	}
	out := make([]Field, 0, len(byName))
	for _, f := range byName {
		out = append(out, f)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Name < out[k].Name })
	return out
}
