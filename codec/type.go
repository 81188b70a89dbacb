package codec

import (
	"fmt"
	"sort"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/i18n"
)

// Type is the attribute table of T. Build it once with NewType and share it.
type Type[T any] struct {
	name  string
	attrs []Attr[T]
	index map[string]int
}

// NewType builds the attribute table of T. It panics on an empty or duplicate
// wire name since both are programming errors.
func NewType[T any](name string, attrs ...Attr[T]) *Type[T] {
	t := &Type[T]{
		name:  name,
		attrs: append([]Attr[T](nil), attrs...),
		index: make(map[string]int, len(attrs)),
	}
	for i, a := range t.attrs {
		w := a.desc.WireName
		if w == "" {
			panic(fmt.Sprintf("codec: %s.%s: empty wire name", name, a.desc.FieldName))
		}
		if prev, dup := t.index[w]; dup {
			panic(fmt.Sprintf("codec: %s: wire name %q used by %s and %s",
				name, w, t.attrs[prev].desc.FieldName, a.desc.FieldName))
		}
		t.index[w] = i
	}
	return t
}

// Name returns the type name given to NewType.
func (t *Type[T]) Name() string { return t.name }

// Descriptors returns the attribute metadata in declaration order.
func (t *Type[T]) Descriptors() []Descriptor {
	out := make([]Descriptor, len(t.attrs))
	for i, a := range t.attrs {
		out[i] = a.desc
	}
	return out
}

// Encode writes every attribute of v under its wire name. Optional attributes
// holding their zero value are left out.
func (t *Type[T]) Encode(v T) Record {
	rec := make(Record, len(t.attrs))
	for _, a := range t.attrs {
		if a.desc.Optional && a.zero(&v) {
			continue
		}
		rec[a.desc.WireName] = a.encode(&v)
	}
	return rec
}

// EncodeOrdered is Encode in declaration order, for human-readable output.
func (t *Type[T]) EncodeOrdered(v T) Ordered {
	out := make(Ordered, 0, len(t.attrs))
	for _, a := range t.attrs {
		if a.desc.Optional && a.zero(&v) {
			continue
		}
		enc := a.ordered
		if enc == nil {
			enc = a.encode
		}
		out = append(out, Pair{Key: a.desc.WireName, Value: enc(&v)})
	}
	return out
}

// Decode builds a T from rec. The returned error is scbind.Issues with JSON
// Pointer paths relative to rec.
func (t *Type[T]) Decode(rec Record, opts ...scbind.DecodeOpt) (T, error) {
	v, iss := t.decode(rec, scbind.PickOpt(opts))
	if len(iss) > 0 {
		var zero T
		return zero, iss
	}
	return v, nil
}

func (t *Type[T]) decode(rec Record, opt scbind.DecodeOpt) (T, scbind.Issues) {
	var v T
	var iss scbind.Issues
	for _, a := range t.attrs {
		path := pointer(a.desc.WireName)
		raw, ok := rec[a.desc.WireName]
		switch {
		case !ok && a.desc.Optional:
			continue
		case !ok:
			iss = append(iss, scbind.Issue{
				Path:     path,
				Code:     scbind.CodeRequired,
				Message:  i18n.T(scbind.CodeRequired, nil),
				Expected: a.desc.expected(),
			})
		case raw == nil && a.desc.Optional:
			continue
		case raw == nil:
			iss = append(iss, typeIssue(a.desc, nil).Rebase(path)...)
		default:
			iss = append(iss, a.decode(&v, raw, opt).Rebase(path)...)
		}
		if opt.FailFast && len(iss) > 0 {
			return v, iss
		}
	}
	if opt.Unknown == scbind.UnknownStrict {
		for _, k := range sortedKeys(rec) {
			if _, known := t.index[k]; known {
				continue
			}
			iss = append(iss, scbind.Issue{
				Path:    pointer(k),
				Code:    scbind.CodeUnknownKey,
				Message: i18n.T(scbind.CodeUnknownKey, nil),
				Actual:  k,
			})
			if opt.FailFast {
				return v, iss
			}
		}
	}
	return v, iss
}

func sortedKeys(rec Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
