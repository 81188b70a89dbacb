// Package codec maps typed data-transfer objects to wire records and back.
//
// Every object type is described once by a table of attributes built with
// NewType. The table is immutable after construction and is shared by every
// Encode and Decode call, which makes a *Type safe for concurrent use.
package codec

import (
	"bytes"
	"strings"

	j "github.com/goccy/go-json"
)

// Record is the wire form of an object: wire name to encoded value.
type Record map[string]any

// TypeTag is the semantic type of an attribute.
type TypeTag uint8

const (
	TagString TypeTag = iota + 1
	TagInt
	TagUint
	TagBool
	TagBytes
	TagHname
	TagObject
	TagList
	TagMap
)

var tagNames = [...]string{"", "string", "int", "uint", "bool", "bytes", "hname", "object", "list", "map"}

func (t TypeTag) String() string {
	if int(t) < len(tagNames) && t != 0 {
		return tagNames[t]
	}
	return "unknown"
}

// Format narrows the wire representation of a tag: integer width or byte
// encoding.
type Format string

const (
	FormatNone    Format = ""
	FormatInt8    Format = "int8"
	FormatInt16   Format = "int16"
	FormatInt32   Format = "int32"
	FormatInt64   Format = "int64"
	FormatUint8   Format = "uint8"
	FormatUint16  Format = "uint16"
	FormatUint32  Format = "uint32"
	FormatUint64  Format = "uint64"
	FormatHex     Format = "hex"    // "0x"-prefixed lowercase hex
	FormatBase64  Format = "base64" // standard padded alphabet
	FormatRFC3339 Format = "rfc3339"
)

// Descriptor is the static metadata of one attribute.
type Descriptor struct {
	FieldName string // Go field name, used in diagnostics
	WireName  string // key in the Record
	Tag       TypeTag
	Format    Format
	TypeName  string // element type for object and list attributes
	Optional  bool   // may be absent; decoding keeps the zero value
}

// expected is the declared shape reported in type and range issues.
func (d Descriptor) expected() string {
	switch {
	case d.Format != FormatNone:
		return string(d.Format)
	case d.TypeName != "":
		return d.TypeName
	default:
		return d.Tag.String()
	}
}

// Pair is one entry of an Ordered record.
type Pair struct {
	Key   string
	Value any
}

// Ordered is a Record that keeps attribute declaration order when written as
// JSON.
type Ordered []Pair

// Record converts o to an unordered Record, recursively.
func (o Ordered) Record() Record {
	rec := make(Record, len(o))
	for _, p := range o {
		rec[p.Key] = unorder(p.Value)
	}
	return rec
}

func unorder(v any) any {
	switch x := v.(type) {
	case Ordered:
		return x.Record()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = unorder(e)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON writes the pairs in order.
func (o Ordered) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := j.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := j.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// pointer escapes a wire name as a JSON Pointer reference token.
func pointer(name string) string {
	if strings.ContainsAny(name, "~/") {
		name = strings.NewReplacer("~", "~0", "/", "~1").Replace(name)
	}
	return "/" + name
}

func asRecord(raw any) (Record, bool) {
	switch r := raw.(type) {
	case Record:
		return r, true
	case map[string]any:
		return Record(r), true
	case Ordered:
		return r.Record(), true
	}
	return nil, false
}

func asList(raw any) ([]any, bool) {
	switch l := raw.(type) {
	case []any:
		return l, true
	case []Record:
		out := make([]any, len(l))
		for i, r := range l {
			out[i] = r
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, r := range l {
			out[i] = r
		}
		return out, true
	}
	return nil, false
}

// kind names the shape of a raw value for the Actual field of an issue.
func kind(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, j.Number:
		return "number"
	case []byte:
		return "bytes"
	case Record, map[string]any, Ordered:
		return "object"
	case []any, []Record, []map[string]any:
		return "list"
	default:
		return "unknown"
	}
}
