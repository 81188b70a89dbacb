package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/hname"
	"github.com/reoring/scbind/i18n"
)

// Attr binds one field of T to a wire name. Attrs are created by the typed
// constructors in this file and passed to NewType.
type Attr[T any] struct {
	desc Descriptor
	// encode returns the wire value of the field.
	encode func(*T) any
	// ordered is encode for EncodeOrdered; nil means encode.
	ordered func(*T) any
	// decode stores raw into the field. Issue paths are relative to the
	// attribute.
	decode func(*T, any, scbind.DecodeOpt) scbind.Issues
	// zero reports whether the field holds its zero value; optional
	// attributes are omitted from the record then.
	zero func(*T) bool
}

// Descriptor returns the static metadata of the attribute.
func (a Attr[T]) Descriptor() Descriptor { return a.desc }

// Optional marks the attribute as allowed to be absent.
func (a Attr[T]) Optional() Attr[T] {
	a.desc.Optional = true
	return a
}

func typeIssue(d Descriptor, raw any) scbind.Issues {
	return scbind.Issues{{
		Code:     scbind.CodeInvalidType,
		Message:  i18n.T(scbind.CodeInvalidType, nil),
		Expected: d.expected(),
		Actual:   kind(raw),
	}}
}

func rangeIssue(d Descriptor, raw any) scbind.Issues {
	return scbind.Issues{{
		Code:     scbind.CodeOverflow,
		Message:  i18n.T(scbind.CodeOverflow, nil),
		Expected: d.expected(),
		Actual:   fmt.Sprint(raw),
		Params:   map[string]any{"format": string(d.Format), "got": fmt.Sprint(raw)},
	}}
}

func formatIssue(d Descriptor, err error) scbind.Issues {
	return scbind.Issues{{
		Code:     scbind.CodeInvalidFormat,
		Message:  i18n.T(scbind.CodeInvalidFormat, nil),
		Expected: d.expected(),
		Actual:   "string",
		Cause:    err,
	}}
}

// String binds a string field.
func String[T any](field, wire string, get func(*T) *string) Attr[T] {
	d := Descriptor{FieldName: field, WireName: wire, Tag: TagString}
	return Attr[T]{
		desc:   d,
		encode: func(v *T) any { return *get(v) },
		decode: func(v *T, raw any, _ scbind.DecodeOpt) scbind.Issues {
			s, ok := raw.(string)
			if !ok {
				return typeIssue(d, raw)
			}
			*get(v) = s
			return nil
		},
		zero: func(v *T) bool { return *get(v) == "" },
	}
}

// Bool binds a bool field.
func Bool[T any](field, wire string, get func(*T) *bool) Attr[T] {
	d := Descriptor{FieldName: field, WireName: wire, Tag: TagBool}
	return Attr[T]{
		desc:   d,
		encode: func(v *T) any { return *get(v) },
		decode: func(v *T, raw any, _ scbind.DecodeOpt) scbind.Issues {
			b, ok := raw.(bool)
			if !ok {
				return typeIssue(d, raw)
			}
			*get(v) = b
			return nil
		},
		zero: func(v *T) bool { return !*get(v) },
	}
}

type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func intAttr[T any, F signedInt](field, wire string, f Format, bits int, get func(*T) *F) Attr[T] {
	d := Descriptor{FieldName: field, WireName: wire, Tag: TagInt, Format: f}
	return Attr[T]{
		desc:   d,
		encode: func(v *T) any { return int64(*get(v)) },
		decode: func(v *T, raw any, _ scbind.DecodeOpt) scbind.Issues {
			n, code := toInteger(raw)
			switch code {
			case scbind.CodeInvalidType:
				return typeIssue(d, raw)
			case scbind.CodeOverflow:
				return rangeIssue(d, raw)
			}
			i, ok := n.signed(bits)
			if !ok {
				return rangeIssue(d, raw)
			}
			*get(v) = F(i)
			return nil
		},
		zero: func(v *T) bool { return *get(v) == 0 },
	}
}

func uintAttr[T any, F unsignedInt](field, wire string, f Format, bits int, get func(*T) *F) Attr[T] {
	d := Descriptor{FieldName: field, WireName: wire, Tag: TagUint, Format: f}
	return Attr[T]{
		desc:   d,
		encode: func(v *T) any { return uint64(*get(v)) },
		decode: func(v *T, raw any, _ scbind.DecodeOpt) scbind.Issues {
			n, code := toInteger(raw)
			switch code {
			case scbind.CodeInvalidType:
				return typeIssue(d, raw)
			case scbind.CodeOverflow:
				return rangeIssue(d, raw)
			}
			u, ok := n.unsigned(bits)
			if !ok {
				return rangeIssue(d, raw)
			}
			*get(v) = F(u)
			return nil
		},
		zero: func(v *T) bool { return *get(v) == 0 },
	}
}

func Int8[T any](field, wire string, get func(*T) *int8) Attr[T] {
	return intAttr(field, wire, FormatInt8, 8, get)
}

func Int16[T any](field, wire string, get func(*T) *int16) Attr[T] {
	return intAttr(field, wire, FormatInt16, 16, get)
}

func Int32[T any](field, wire string, get func(*T) *int32) Attr[T] {
	return intAttr(field, wire, FormatInt32, 32, get)
}

func Int64[T any](field, wire string, get func(*T) *int64) Attr[T] {
	return intAttr(field, wire, FormatInt64, 64, get)
}

func Uint8[T any](field, wire string, get func(*T) *uint8) Attr[T] {
	return uintAttr(field, wire, FormatUint8, 8, get)
}

func Uint16[T any](field, wire string, get func(*T) *uint16) Attr[T] {
	return uintAttr(field, wire, FormatUint16, 16, get)
}

func Uint32[T any](field, wire string, get func(*T) *uint32) Attr[T] {
	return uintAttr(field, wire, FormatUint32, 32, get)
}

func Uint64[T any](field, wire string, get func(*T) *uint64) Attr[T] {
	return uintAttr(field, wire, FormatUint64, 64, get)
}

func encodeBytes(f Format, b []byte) string {
	if f == FormatBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}
	return "0x" + hex.EncodeToString(b)
}

func decodeBytes(f Format, s string) ([]byte, error) {
	if f == FormatBase64 {
		return base64.StdEncoding.DecodeString(s)
	}
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

// Bytes binds a byte slice field written as hex (the default) or base64 text.
func Bytes[T any](field, wire string, f Format, get func(*T) *[]byte) Attr[T] {
	if f == FormatNone {
		f = FormatHex
	}
	if f != FormatHex && f != FormatBase64 {
		panic(fmt.Sprintf("codec: %s: format %q is not a byte encoding", field, f))
	}
	d := Descriptor{FieldName: field, WireName: wire, Tag: TagBytes, Format: f}
	return Attr[T]{
		desc:   d,
		encode: func(v *T) any { return encodeBytes(f, *get(v)) },
		decode: func(v *T, raw any, _ scbind.DecodeOpt) scbind.Issues {
			switch x := raw.(type) {
			case []byte:
				*get(v) = append([]byte(nil), x...)
				return nil
			case string:
				b, err := decodeBytes(f, x)
				if err != nil {
					return formatIssue(d, err)
				}
				if len(b) == 0 {
					b = nil
				}
				*get(v) = b
				return nil
			}
			return typeIssue(d, raw)
		},
		zero: func(v *T) bool { return len(*get(v)) == 0 },
	}
}

// Hname binds a selector field written as 8 hex digits.
func Hname[T any](field, wire string, get func(*T) *hname.Hname) Attr[T] {
	d := Descriptor{FieldName: field, WireName: wire, Tag: TagHname}
	return Attr[T]{
		desc:   d,
		encode: func(v *T) any { return get(v).String() },
		decode: func(v *T, raw any, _ scbind.DecodeOpt) scbind.Issues {
			switch x := raw.(type) {
			case hname.Hname:
				*get(v) = x
				return nil
			case string:
				h, err := hname.FromString(x)
				if err != nil {
					return formatIssue(d, err)
				}
				*get(v) = h
				return nil
			}
			return typeIssue(d, raw)
		},
		zero: func(v *T) bool { return get(v).IsNil() },
	}
}

// Object binds a nested object field described by typ.
func Object[T, U any](field, wire string, typ *Type[U], get func(*T) *U) Attr[T] {
	d := Descriptor{FieldName: field, WireName: wire, Tag: TagObject, TypeName: typ.Name()}
	return Attr[T]{
		desc:    d,
		encode:  func(v *T) any { return typ.Encode(*get(v)) },
		ordered: func(v *T) any { return typ.EncodeOrdered(*get(v)) },
		decode: func(v *T, raw any, opt scbind.DecodeOpt) scbind.Issues {
			rec, ok := asRecord(raw)
			if !ok {
				return typeIssue(d, raw)
			}
			u, iss := typ.decode(rec, opt)
			if len(iss) > 0 {
				return iss
			}
			*get(v) = u
			return nil
		},
		zero: func(*T) bool { return false },
	}
}

// ObjectPtr binds an optional nested object held by pointer. A nil pointer is
// the absent value.
func ObjectPtr[T, U any](field, wire string, typ *Type[U], get func(*T) **U) Attr[T] {
	d := Descriptor{FieldName: field, WireName: wire, Tag: TagObject, TypeName: typ.Name(), Optional: true}
	return Attr[T]{
		desc: d,
		encode: func(v *T) any {
			if p := *get(v); p != nil {
				return typ.Encode(*p)
			}
			return nil
		},
		ordered: func(v *T) any {
			if p := *get(v); p != nil {
				return typ.EncodeOrdered(*p)
			}
			return nil
		},
		decode: func(v *T, raw any, opt scbind.DecodeOpt) scbind.Issues {
			rec, ok := asRecord(raw)
			if !ok {
				return typeIssue(d, raw)
			}
			u, iss := typ.decode(rec, opt)
			if len(iss) > 0 {
				return iss
			}
			*get(v) = &u
			return nil
		},
		zero: func(v *T) bool { return *get(v) == nil },
	}
}

// List binds a slice of nested objects.
func List[T, U any](field, wire string, typ *Type[U], get func(*T) *[]U) Attr[T] {
	d := Descriptor{FieldName: field, WireName: wire, Tag: TagList, TypeName: typ.Name()}
	enc := func(ordered bool) func(*T) any {
		return func(v *T) any {
			items := *get(v)
			out := make([]any, len(items))
			for i, it := range items {
				if ordered {
					out[i] = typ.EncodeOrdered(it)
				} else {
					out[i] = typ.Encode(it)
				}
			}
			return out
		}
	}
	return Attr[T]{
		desc:    d,
		encode:  enc(false),
		ordered: enc(true),
		decode: func(v *T, raw any, opt scbind.DecodeOpt) scbind.Issues {
			list, ok := asList(raw)
			if !ok {
				return typeIssue(d, raw)
			}
			if len(list) == 0 {
				*get(v) = nil
				return nil
			}
			var iss scbind.Issues
			items := make([]U, len(list))
			for i, e := range list {
				var sub scbind.Issues
				if rec, ok := asRecord(e); ok {
					items[i], sub = typ.decode(rec, opt)
				} else {
					sub = typeIssue(Descriptor{Tag: TagObject, TypeName: typ.Name()}, e)
				}
				iss = append(iss, sub.Rebase("/"+strconv.Itoa(i))...)
				if opt.FailFast && len(iss) > 0 {
					return iss
				}
			}
			if len(iss) > 0 {
				return iss
			}
			*get(v) = items
			return nil
		},
		zero: func(v *T) bool { return len(*get(v)) == 0 },
	}
}

// Map binds a string-keyed map of byte values, each written like Bytes.
func Map[T any](field, wire string, f Format, get func(*T) *map[string][]byte) Attr[T] {
	if f == FormatNone {
		f = FormatHex
	}
	d := Descriptor{FieldName: field, WireName: wire, Tag: TagMap, Format: f}
	elem := Descriptor{Tag: TagBytes, Format: f}
	return Attr[T]{
		desc: d,
		encode: func(v *T) any {
			m := *get(v)
			rec := make(Record, len(m))
			for k, b := range m {
				rec[k] = encodeBytes(f, b)
			}
			return rec
		},
		decode: func(v *T, raw any, opt scbind.DecodeOpt) scbind.Issues {
			rec, ok := asRecord(raw)
			if !ok {
				return typeIssue(d, raw)
			}
			if len(rec) == 0 {
				*get(v) = nil
				return nil
			}
			var iss scbind.Issues
			m := make(map[string][]byte, len(rec))
			for _, k := range sortedKeys(rec) {
				var sub scbind.Issues
				switch x := rec[k].(type) {
				case []byte:
					m[k] = append([]byte(nil), x...)
				case string:
					b, err := decodeBytes(f, x)
					if err != nil {
						sub = formatIssue(elem, err)
					}
					if len(b) == 0 {
						b = nil
					}
					m[k] = b
				default:
					sub = typeIssue(elem, x)
				}
				iss = append(iss, sub.Rebase(pointer(k))...)
				if opt.FailFast && len(iss) > 0 {
					return iss
				}
			}
			if len(iss) > 0 {
				return iss
			}
			*get(v) = m
			return nil
		},
		zero: func(v *T) bool { return len(*get(v)) == 0 },
	}
}
