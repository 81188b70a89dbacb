package codec

import (
	"fmt"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/i18n"
)

// Case is one variant of a Union. Build it with CaseOf.
type Case[V any] struct {
	tag      string
	typeName string
	wire     map[string]int
	match    func(V) bool
	encode   func(V) Record
	ordered  func(V) Ordered
	decode   func(Record, scbind.DecodeOpt) (V, scbind.Issues)
}

// CaseOf declares that records tagged tag decode as U, which must implement V.
func CaseOf[V, U any](tag string, typ *Type[U]) Case[V] {
	var u U
	if _, ok := any(u).(V); !ok {
		panic(fmt.Sprintf("codec: case %q: %s does not implement the union interface", tag, typ.Name()))
	}
	return Case[V]{
		tag:      tag,
		typeName: typ.Name(),
		wire:     typ.index,
		match:    func(v V) bool { _, ok := any(v).(U); return ok },
		encode:   func(v V) Record { return typ.Encode(any(v).(U)) },
		ordered:  func(v V) Ordered { return typ.EncodeOrdered(any(v).(U)) },
		decode: func(rec Record, opt scbind.DecodeOpt) (V, scbind.Issues) {
			u, iss := typ.decode(rec, opt)
			return any(u).(V), iss
		},
	}
}

// Union is a closed set of object shapes told apart by a discriminator key.
type Union[V any] struct {
	name  string
	key   string
	cases []Case[V]
	byTag map[string]int
}

// NewUnion builds a union over cases. It panics on an empty key, a duplicate
// tag, or a case type that uses the discriminator key as a wire name.
func NewUnion[V any](name, key string, cases ...Case[V]) *Union[V] {
	if key == "" {
		panic(fmt.Sprintf("codec: union %s: empty discriminator key", name))
	}
	u := &Union[V]{name: name, key: key, cases: cases, byTag: make(map[string]int, len(cases))}
	for i, c := range cases {
		if _, dup := u.byTag[c.tag]; dup {
			panic(fmt.Sprintf("codec: union %s: duplicate tag %q", name, c.tag))
		}
		if _, clash := c.wire[key]; clash {
			panic(fmt.Sprintf("codec: union %s: %s uses discriminator key %q", name, c.typeName, key))
		}
		u.byTag[c.tag] = i
	}
	return u
}

// Name returns the union name.
func (u *Union[V]) Name() string { return u.name }

// Key returns the discriminator wire key.
func (u *Union[V]) Key() string { return u.key }

// Tags lists the discriminator values in declaration order.
func (u *Union[V]) Tags() []string {
	out := make([]string, len(u.cases))
	for i, c := range u.cases {
		out[i] = c.tag
	}
	return out
}

func (u *Union[V]) caseOf(v V) Case[V] {
	for _, c := range u.cases {
		if c.match(v) {
			return c
		}
	}
	panic(fmt.Sprintf("codec: union %s: no case for %T", u.name, v))
}

// Encode writes v with its discriminator. It panics if v matches no case.
func (u *Union[V]) Encode(v V) Record {
	c := u.caseOf(v)
	rec := c.encode(v)
	rec[u.key] = c.tag
	return rec
}

// EncodeOrdered writes the discriminator first, then the case attributes.
func (u *Union[V]) EncodeOrdered(v V) Ordered {
	c := u.caseOf(v)
	return append(Ordered{{Key: u.key, Value: c.tag}}, c.ordered(v)...)
}

// Decode selects the case named by the discriminator and decodes the rest of
// rec with it.
func (u *Union[V]) Decode(rec Record, opts ...scbind.DecodeOpt) (V, error) {
	var zero V
	path := pointer(u.key)
	raw, ok := rec[u.key]
	if !ok || raw == nil {
		return zero, scbind.Issues{{
			Path:    path,
			Code:    scbind.CodeDiscriminatorMissing,
			Message: i18n.T(scbind.CodeDiscriminatorMissing, nil),
		}}
	}
	tag, ok := raw.(string)
	if !ok {
		return zero, typeIssue(Descriptor{Tag: TagString}, raw).Rebase(path)
	}
	i, ok := u.byTag[tag]
	if !ok {
		return zero, scbind.Issues{{
			Path:    path,
			Code:    scbind.CodeDiscriminatorUnknown,
			Message: i18n.T(scbind.CodeDiscriminatorUnknown, nil),
			Actual:  tag,
			Params:  map[string]any{"value": tag, "allowed": u.Tags()},
		}}
	}
	body := make(Record, len(rec)-1)
	for k, v := range rec {
		if k != u.key {
			body[k] = v
		}
	}
	v, iss := u.cases[i].decode(body, scbind.PickOpt(opts))
	if len(iss) > 0 {
		return zero, iss
	}
	return v, nil
}
