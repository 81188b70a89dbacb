// Package registry maps every name declared by one contract to its selector
// and rejects selector collisions before any artifact is generated.
package registry

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/reoring/scbind/hname"
	"github.com/reoring/scbind/schema"
)

// Namespace scopes name uniqueness within a contract.
type Namespace uint8

const (
	NamespaceContract Namespace = iota
	NamespaceFunction           // functions and views
	NamespaceParam
	NamespaceResult
)

var namespaceNames = [...]string{"contract", "function", "param", "result"}

func (ns Namespace) String() string {
	if int(ns) < len(namespaceNames) {
		return namespaceNames[ns]
	}
	return fmt.Sprintf("namespace(%d)", uint8(ns))
}

// Decl is one declared name. Key is the text that is hashed; it defaults to
// Name and differs only for parameter and result fields with a short wire key.
type Decl struct {
	Namespace Namespace
	Name      string
	Key       string
}

// HashKey returns the text the selector is computed from.
func (d Decl) HashKey() string {
	if d.Key != "" {
		return d.Key
	}
	return d.Name
}

// Entry is a declaration together with its selector.
type Entry struct {
	Decl
	Selector hname.Hname
}

var (
	ErrEmptyName         = errors.New("registry: empty name")
	ErrMultipleContracts = errors.New("registry: more than one contract name")
)

// CollisionError reports two distinct keys of one namespace that hash to the
// same selector. It is fatal: no constants may be generated from the table.
type CollisionError struct {
	Namespace Namespace
	First     Decl
	Second    Decl
	Selector  hname.Hname
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("registry: %s selector collision %s: %q and %q",
		e.Namespace, e.Selector, e.First.HashKey(), e.Second.HashKey())
}

type nsKey struct {
	ns  Namespace
	key string
}

type nsSel struct {
	ns  Namespace
	sel hname.Hname
}

// Table is the immutable result of Build. It is safe for concurrent use.
type Table struct {
	entries []Entry
	byKey   map[nsKey]int
	bySel   map[nsSel]int
}

type options struct {
	log *zap.Logger
}

// Option configures Build.
type Option func(*options)

// WithLogger logs every entry at debug level and collisions at error level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Build hashes every declaration. Declarations sharing namespace and key map
// to one selector and are kept as aliases.
func Build(decls []Decl, opts ...Option) (*Table, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	t := &Table{
		entries: make([]Entry, 0, len(decls)),
		byKey:   make(map[nsKey]int, len(decls)),
		bySel:   make(map[nsSel]int, len(decls)),
	}
	for _, d := range decls {
		if d.Name == "" {
			return nil, fmt.Errorf("%w in %s namespace", ErrEmptyName, d.Namespace)
		}
		if d.Namespace == NamespaceContract {
			if c, ok := t.Contract(); ok && c.Name != d.Name {
				return nil, fmt.Errorf("%w: %q and %q", ErrMultipleContracts, c.Name, d.Name)
			}
		}
		k := nsKey{d.Namespace, d.HashKey()}
		if i, ok := t.byKey[k]; ok {
			if t.entries[i].Name != d.Name {
				t.entries = append(t.entries, Entry{Decl: d, Selector: t.entries[i].Selector})
				o.log.Debug("selector alias",
					zap.Stringer("namespace", d.Namespace),
					zap.String("name", d.Name),
					zap.String("aliasOf", t.entries[i].Name))
			}
			continue
		}
		sel := hname.Hn(k.key)
		if i, ok := t.bySel[nsSel{d.Namespace, sel}]; ok {
			err := &CollisionError{Namespace: d.Namespace, First: t.entries[i].Decl, Second: d, Selector: sel}
			o.log.Error("selector collision", zap.Error(err))
			return nil, err
		}
		t.byKey[k] = len(t.entries)
		t.bySel[nsSel{d.Namespace, sel}] = len(t.entries)
		t.entries = append(t.entries, Entry{Decl: d, Selector: sel})
		o.log.Debug("selector",
			zap.Stringer("namespace", d.Namespace),
			zap.String("name", d.Name),
			zap.String("key", k.key),
			zap.Stringer("hname", sel))
	}
	return t, nil
}

// Decls enumerates every name of a contract in a stable order: the contract,
// functions then views, then each function's params and results.
func Decls(c *schema.Contract) []Decl {
	decls := []Decl{{Namespace: NamespaceContract, Name: c.Name}}
	fns := append(append([]schema.Func{}, c.Funcs...), c.Views...)
	for _, fn := range fns {
		decls = append(decls, Decl{Namespace: NamespaceFunction, Name: fn.Name})
	}
	for _, fn := range fns {
		for _, f := range fn.Params {
			decls = append(decls, Decl{Namespace: NamespaceParam, Name: f.Name, Key: f.WireKey()})
		}
		for _, f := range fn.Results {
			decls = append(decls, Decl{Namespace: NamespaceResult, Name: f.Name, Key: f.WireKey()})
		}
	}
	return decls
}

// FromSchema builds the table of a validated contract.
func FromSchema(c *schema.Contract, opts ...Option) (*Table, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return Build(Decls(c), opts...)
}

// Contract returns the contract entry, if one was declared.
func (t *Table) Contract() (Entry, bool) {
	for _, e := range t.entries {
		if e.Namespace == NamespaceContract {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns the entries of one namespace in declaration order,
// including aliases.
func (t *Table) Entries(ns Namespace) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Namespace == ns {
			out = append(out, e)
		}
	}
	return out
}

// Selector returns the selector of a key (or name, for contract and function
// namespaces).
func (t *Table) Selector(ns Namespace, key string) (hname.Hname, bool) {
	i, ok := t.byKey[nsKey{ns, key}]
	if !ok {
		return hname.Nil, false
	}
	return t.entries[i].Selector, true
}

// Lookup resolves a selector back to the first declaration that produced it.
func (t *Table) Lookup(ns Namespace, sel hname.Hname) (Entry, bool) {
	i, ok := t.bySel[nsSel{ns, sel}]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}
